/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline runs a complete generation: aggregate the mode files,
// write the token reference and write one grammar per target mode.
package pipeline

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/sentaurus-syntax/aggregate"
	"bennypowers.dev/sentaurus-syntax/config"
	"bennypowers.dev/sentaurus-syntax/convert"
	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	"bennypowers.dev/sentaurus-syntax/convert/formatter/tmlanguage"
	"bennypowers.dev/sentaurus-syntax/fs"
	"bennypowers.dev/sentaurus-syntax/internal/logger"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// File names of the optional editor artifacts, relative to the output directory.
const (
	ContributesFile = "contributes.json"
	TokenColorsFile = "token-colors.json"
)

// Result summarizes a run.
type Result struct {
	// Registry is every mode found in the input directory.
	Registry mode.Registry

	// Grammars lists the modes a grammar was written for, in target order.
	Grammars []string

	// Missing lists target modes with no mode file.
	Missing []string

	// Written lists every file written, in order.
	Written []string

	// Failures lists unreadable mode files (KeepGoing only).
	Failures []*aggregate.FileError
}

// Run executes the pipeline described by cfg against filesystem.
//
// Missing target modes produce a warning and no file; they do not fail the
// run. Any other error aborts the run.
func Run(filesystem fs.FileSystem, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := cfg.DecodePolicy()
	if err != nil {
		return nil, err
	}
	colors, err := cfg.CategoryColors()
	if err != nil {
		return nil, err
	}

	if err := filesystem.MkdirAll(cfg.Output, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", cfg.Output, err)
	}

	agg, err := aggregate.Aggregate(filesystem, cfg.Input, aggregate.Options{
		Decode:    policy,
		Exclude:   cfg.Exclude,
		KeepGoing: cfg.KeepGoing,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("read %d mode files from %s", len(agg.Files), cfg.Input)

	result := &Result{
		Registry: agg.Registry,
		Failures: agg.Failures,
	}
	w := &writer{filesystem: filesystem, dir: cfg.Output, result: result}

	if err := w.write(cfg.Reference, agg.Registry, convert.FormatReference, formatter.Options{}); err != nil {
		return nil, err
	}

	for _, name := range cfg.Modes {
		if _, ok := agg.Registry[name]; !ok {
			logger.Warn("No keywords found for mode '%s'", name)
			result.Missing = append(result.Missing, name)
			continue
		}
		opts := formatter.Options{Modes: []string{name}}
		if err := w.write(tmlanguage.FileName(name), agg.Registry, convert.FormatTMLanguage, opts); err != nil {
			return nil, err
		}
		result.Grammars = append(result.Grammars, name)
		logger.Info("Created TextMate grammar for %s", name)
	}

	if len(result.Grammars) == 0 {
		if cfg.Contributes || cfg.EmitTokenColors() {
			logger.Warn("No grammars created; skipping editor artifacts")
		}
		return result, nil
	}

	editorOpts := formatter.Options{
		Modes:     result.Grammars,
		SyntaxDir: cfg.SyntaxDir,
		Colors:    colors,
	}
	if cfg.Contributes {
		if err := w.write(ContributesFile, agg.Registry, convert.FormatContributes, editorOpts); err != nil {
			return nil, err
		}
	}
	if cfg.EmitTokenColors() {
		if err := w.write(TokenColorsFile, agg.Registry, convert.FormatTokenColors, editorOpts); err != nil {
			return nil, err
		}
	}

	return result, nil
}

type writer struct {
	filesystem fs.FileSystem
	dir        string
	result     *Result
}

// write renders one artifact into the output directory.
func (w *writer) write(name string, registry mode.Registry, format convert.Format, opts formatter.Options) error {
	data, err := convert.FormatRegistry(registry, format, opts)
	if err != nil {
		return fmt.Errorf("error formatting %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name)
	if err := w.filesystem.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", path, err)
	}
	w.result.Written = append(w.result.Written, path)
	return nil
}
