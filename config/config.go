/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration for syntax generation runs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/sentaurus-syntax/extract"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// ErrInvalidConfig indicates a configuration value is unusable.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultModes are the modes a grammar is generated for by default.
var DefaultModes = []string{"sde", "sdevice", "sprocess", "emw", "inspect"}

const (
	// DefaultInput is the directory holding mode definition files.
	DefaultInput = "modes"

	// DefaultOutput is the directory generated files are written to.
	DefaultOutput = "syntaxes"

	// DefaultReference is the file name of the consolidated token reference.
	DefaultReference = "all_keywords.json"
)

// Config describes one generation run.
type Config struct {
	// Input is the directory scanned for *.xml mode files.
	Input string `yaml:"input" json:"input"`

	// Output is the directory generated files are written to. It is created
	// if absent.
	Output string `yaml:"output" json:"output"`

	// Reference is the file name of the consolidated token reference,
	// relative to Output.
	Reference string `yaml:"reference" json:"reference"`

	// Modes lists the modes to generate grammars for, in order.
	Modes ModeList `yaml:"modes" json:"modes"`

	// Exclude lists glob patterns of mode file names to skip.
	Exclude []string `yaml:"exclude" json:"exclude"`

	// Decode is the invalid UTF-8 policy: "ignore" (default) or "replace".
	Decode string `yaml:"decode" json:"decode"`

	// KeepGoing continues past unreadable mode files instead of aborting.
	KeepGoing bool `yaml:"keepGoing" json:"keepGoing"`

	// Contributes writes a VS Code contributes fragment for the emitted grammars.
	Contributes bool `yaml:"contributes" json:"contributes"`

	// SyntaxDir is the grammar directory referenced by the contributes fragment.
	SyntaxDir string `yaml:"syntaxDir" json:"syntaxDir"`

	// TokenColors writes token color customizations for the emitted grammars.
	// Implied when Colors is set.
	TokenColors bool `yaml:"tokenColors" json:"tokenColors"`

	// Colors maps category labels to CSS colors for token color customizations.
	Colors map[string]string `yaml:"colors" json:"colors"`
}

// ModeList is a list of mode names. In config files it may be written as a
// list or as a single comma-separated string.
type ModeList []string

// UnmarshalYAML handles both string and sequence forms for ModeList.
func (m *ModeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*m = splitModes(node.Value)
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*m = list
	return nil
}

// UnmarshalJSON handles both string and array forms for ModeList.
func (m *ModeList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = splitModes(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*m = list
	return nil
}

func splitModes(s string) []string {
	var modes []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			modes = append(modes, part)
		}
	}
	return modes
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:     DefaultInput,
		Output:    DefaultOutput,
		Reference: DefaultReference,
		Modes:     slices.Clone(DefaultModes),
		Decode:    string(extract.DecodeIgnore),
	}
}

// ApplyDefaults fills unset fields with their default values.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Reference == "" {
		c.Reference = d.Reference
	}
	if c.Modes == nil {
		c.Modes = d.Modes
	}
	if c.Decode == "" {
		c.Decode = d.Decode
	}
}

// Resolve makes relative Input and Output paths relative to rootDir.
func (c *Config) Resolve(rootDir string) {
	if c.Input != "" && !filepath.IsAbs(c.Input) {
		c.Input = filepath.Join(rootDir, c.Input)
	}
	if c.Output != "" && !filepath.IsAbs(c.Output) {
		c.Output = filepath.Join(rootDir, c.Output)
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input directory is empty", ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output directory is empty", ErrInvalidConfig)
	}
	if c.Reference == "" || strings.ContainsAny(c.Reference, `/\`) {
		return fmt.Errorf("%w: reference must be a plain file name, got %q", ErrInvalidConfig, c.Reference)
	}
	if _, err := c.DecodePolicy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.CategoryColors(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DecodePolicy returns the parsed decode policy.
func (c *Config) DecodePolicy() (extract.DecodePolicy, error) {
	return extract.ParseDecodePolicy(c.Decode)
}

// CategoryColors returns Colors keyed by parsed category.
func (c *Config) CategoryColors() (map[mode.Category]string, error) {
	if len(c.Colors) == 0 {
		return nil, nil
	}
	colors := make(map[mode.Category]string, len(c.Colors))
	for label, color := range c.Colors {
		category, err := mode.ParseCategory(label)
		if err != nil {
			return nil, err
		}
		colors[category] = color
	}
	return colors, nil
}

// EmitTokenColors reports whether token color customizations are wanted.
func (c *Config) EmitTokenColors() bool {
	return c.TokenColors || len(c.Colors) > 0
}
