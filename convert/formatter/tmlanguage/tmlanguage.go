/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tmlanguage renders a TextMate grammar for a single mode.
package tmlanguage

import (
	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	"bennypowers.dev/sentaurus-syntax/grammar"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// FileSuffix is appended to the mode name to form the grammar file name.
const FileSuffix = ".tmLanguage.json"

// Formatter outputs a TextMate grammar.
type Formatter struct{}

// New creates a new TextMate grammar formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format synthesizes and renders the grammar of the single mode in opts.Modes.
func (f *Formatter) Format(registry mode.Registry, opts formatter.Options) ([]byte, error) {
	name, categories, err := formatter.SingleMode(registry, opts)
	if err != nil {
		return nil, err
	}
	return formatter.MarshalJSON(grammar.Synthesize(name, categories))
}

// FileName returns the grammar file name for a mode, e.g. "sde.tmLanguage.json".
func FileName(modeName string) string {
	return modeName + FileSuffix
}
