/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package contributes renders the VS Code extension manifest fragment that
// registers the generated grammars.
package contributes

import (
	"strings"

	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	"bennypowers.dev/sentaurus-syntax/convert/formatter/tmlanguage"
	"bennypowers.dev/sentaurus-syntax/grammar"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// DefaultSyntaxDir is where the manifest expects grammar files.
const DefaultSyntaxDir = "./syntaxes"

// Contributes is the "contributes" object of a VS Code package.json.
type Contributes struct {
	Languages []Language `json:"languages"`
	Grammars  []Grammar  `json:"grammars"`
}

// Language declares an editor language.
type Language struct {
	ID         string   `json:"id"`
	Aliases    []string `json:"aliases"`
	Extensions []string `json:"extensions,omitempty"`
}

// Grammar binds a grammar file to a language.
type Grammar struct {
	Language  string `json:"language"`
	ScopeName string `json:"scopeName"`
	Path      string `json:"path"`
}

// Formatter outputs the contributes fragment.
type Formatter struct{}

// New creates a new contributes formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders one language and one grammar entry per selected mode.
func (f *Formatter) Format(registry mode.Registry, opts formatter.Options) ([]byte, error) {
	return formatter.MarshalJSON(Build(formatter.SelectModes(registry, opts.Modes), opts.SyntaxDir))
}

// Build creates the contributes fragment for the given modes.
func Build(modes []string, syntaxDir string) *Contributes {
	if syntaxDir == "" {
		syntaxDir = DefaultSyntaxDir
	}
	syntaxDir = strings.TrimSuffix(syntaxDir, "/")

	c := &Contributes{
		Languages: make([]Language, 0, len(modes)),
		Grammars:  make([]Grammar, 0, len(modes)),
	}
	for _, name := range modes {
		id := LanguageID(name)
		c.Languages = append(c.Languages, Language{
			ID:      id,
			Aliases: []string{grammar.DisplayName(name), name},
		})
		c.Grammars = append(c.Grammars, Grammar{
			Language:  id,
			ScopeName: grammar.ScopeName(name),
			Path:      syntaxDir + "/" + tmlanguage.FileName(name),
		})
	}
	return c
}

// LanguageID returns the editor language id for a mode.
func LanguageID(modeName string) string {
	return "sentaurus-" + strings.ToLower(modeName)
}
