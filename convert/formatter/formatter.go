/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for
// syntax artifact formatters.
package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"bennypowers.dev/sentaurus-syntax/mode"
)

// Sentinel errors shared by formatters.
var (
	// ErrModeRequired indicates a per-mode format was called without exactly one mode.
	ErrModeRequired = errors.New("exactly one mode required")

	// ErrUnknownMode indicates a requested mode is absent from the registry.
	ErrUnknownMode = errors.New("mode not found")

	// ErrInvalidColor indicates a configured color could not be parsed.
	ErrInvalidColor = errors.New("invalid color")
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format renders the registry (or the selected modes of it).
	Format(registry mode.Registry, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Modes selects the modes to render. Formatters that work on the whole
	// registry ignore it when empty.
	Modes []string

	// SyntaxDir is the grammar directory referenced from editor manifests.
	// Zero value is "./syntaxes".
	SyntaxDir string

	// Colors overrides the foreground color of a category.
	// Values may use any CSS color syntax.
	Colors map[mode.Category]string
}

// MarshalJSON encodes v with 2-space indentation and a trailing newline.
// HTML characters are written as-is, since tokens may contain '&'.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SelectModes returns the selected modes that exist in the registry, in
// the order given. An empty selection yields all modes, sorted.
func SelectModes(registry mode.Registry, modes []string) []string {
	if len(modes) == 0 {
		return registry.Names()
	}
	selected := make([]string, 0, len(modes))
	for _, name := range modes {
		if _, ok := registry[name]; ok {
			selected = append(selected, name)
		}
	}
	return selected
}

// SingleMode returns the category map of the only mode in opts.Modes.
func SingleMode(registry mode.Registry, opts Options) (string, mode.CategoryMap, error) {
	if len(opts.Modes) != 1 {
		return "", nil, fmt.Errorf("%w: got %d", ErrModeRequired, len(opts.Modes))
	}
	name := opts.Modes[0]
	categories, ok := registry[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
	return name, categories, nil
}
