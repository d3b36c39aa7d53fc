/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package grammar synthesizes TextMate grammars from extracted mode tokens.
package grammar

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/sentaurus-syntax/mode"
)

// SchemaURL is the JSON schema reference written into every grammar.
const SchemaURL = "https://raw.githubusercontent.com/martinring/tmlanguage/master/tmlanguage.json"

const (
	displayPrefix = "Sentaurus "
	scopeRoot     = "source.sentaurus."
)

// Document is a TextMate grammar.
type Document struct {
	Schema     string             `json:"$schema"`
	Name       string             `json:"name"`
	Patterns   []Pattern          `json:"patterns"`
	Repository map[string]Pattern `json:"repository"`
	ScopeName  string             `json:"scopeName"`
}

// Pattern is a single grammar rule: either a match rule or a
// begin/end rule with nested patterns.
type Pattern struct {
	Name     string    `json:"name,omitempty"`
	Match    string    `json:"match,omitempty"`
	Begin    string    `json:"begin,omitempty"`
	End      string    `json:"end,omitempty"`
	Patterns []Pattern `json:"patterns,omitempty"`

	// Token marks a per-category token rule. Token rules serialize as
	// {"match", "name"}; every other rule leads with "name".
	Token bool `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (p Pattern) MarshalJSON() ([]byte, error) {
	if p.Token {
		return marshal(struct {
			Match string `json:"match"`
			Name  string `json:"name"`
		}{p.Match, p.Name})
	}
	type rule Pattern
	return marshal(rule(p))
}

// marshal encodes v without HTML escaping so tokens such as "<" and "&"
// stay literal in the grammar.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

var scopePrefixes = map[mode.Category]string{
	mode.Keyword1: "keyword.control",
	mode.Keyword2: "keyword.other",
	mode.Keyword3: "entity.name.tag",
	mode.Keyword4: "support.class",
	mode.Literal1: "constant.character",
	mode.Literal2: "constant.numeric",
	mode.Literal3: "string.quoted",
	mode.Function: "entity.name.function",
}

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// ScopePrefix returns the TextMate scope prefix for a known category.
func ScopePrefix(c mode.Category) (string, bool) {
	prefix, ok := scopePrefixes[c]
	return prefix, ok
}

// DisplayName returns the grammar name for a mode, e.g. "Sentaurus SDE".
func DisplayName(modeName string) string {
	return displayPrefix + upper.String(modeName)
}

// ScopeName returns the root scope for a mode, e.g. "source.sentaurus.sde".
func ScopeName(modeName string) string {
	return scopeRoot + lower.String(modeName)
}

// TokenScope returns the scope assigned to tokens of category c in a mode,
// e.g. "keyword.control.sde".
func TokenScope(c mode.Category, modeName string) string {
	return scopePrefixes[c] + "." + lower.String(modeName)
}

// Synthesize builds the grammar for one mode.
//
// One alternation rule is emitted per non-empty known category, in category
// declaration order, followed by the fixed comment rules and the
// double-quoted string rule. Tokens are sorted so output is reproducible.
func Synthesize(modeName string, categories mode.CategoryMap) *Document {
	doc := &Document{
		Schema:     SchemaURL,
		Name:       DisplayName(modeName),
		Patterns:   []Pattern{},
		Repository: map[string]Pattern{},
		ScopeName:  ScopeName(modeName),
	}

	for _, c := range mode.Categories() {
		set, ok := categories[c]
		if !ok || set.Len() == 0 {
			continue
		}
		doc.Patterns = append(doc.Patterns, Pattern{
			Name:  TokenScope(c, modeName),
			Match: Alternation(set.Sorted()),
			Token: true,
		})
	}

	doc.Patterns = append(doc.Patterns, commentPatterns()...)
	doc.Patterns = append(doc.Patterns, stringPattern())
	return doc
}

// Alternation builds a whole-word pattern matching any of tokens literally.
func Alternation(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return `\b(` + strings.Join(quoted, "|") + `)\b`
}

func commentPatterns() []Pattern {
	return []Pattern{
		{Name: "comment.line.hash", Match: `#.*$`},
		{Name: "comment.line.asterisk", Match: `\*.*$`},
		{Name: "comment.line.double-slash", Match: `//.*$`},
	}
}

func stringPattern() Pattern {
	return Pattern{
		Name:  "string.quoted.double",
		Begin: `"`,
		End:   `"`,
		Patterns: []Pattern{
			{Name: "constant.character.escape", Match: `\\.`},
		},
	}
}
