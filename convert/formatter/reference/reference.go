/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package reference renders the consolidated token reference of all modes.
package reference

import (
	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// Formatter outputs every mode's categories as sorted token lists.
type Formatter struct{}

// New creates a new reference formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders {mode: {category: [tokens...]}}. When opts.Modes is set,
// only those modes are included.
func (f *Formatter) Format(registry mode.Registry, opts formatter.Options) ([]byte, error) {
	out := make(map[string]map[string][]string)
	for _, name := range formatter.SelectModes(registry, opts.Modes) {
		out[name] = registry[name].Lists()
	}
	return formatter.MarshalJSON(out)
}
