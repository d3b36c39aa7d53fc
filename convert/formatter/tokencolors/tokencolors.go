/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokencolors renders VS Code token color customizations for the
// scopes emitted by the generated grammars.
package tokencolors

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	"bennypowers.dev/sentaurus-syntax/grammar"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// Settings is the style applied to a scope.
type Settings struct {
	Foreground string `json:"foreground"`
}

// Rule assigns settings to a scope.
type Rule struct {
	Scope    string   `json:"scope"`
	Settings Settings `json:"settings"`
}

// Customizations is the editor.tokenColorCustomizations value.
type Customizations struct {
	TextMateRules []Rule `json:"textMateRules"`
}

// Document is the settings.json fragment.
type Document struct {
	TokenColorCustomizations Customizations `json:"editor.tokenColorCustomizations"`
}

// Formatter outputs token color rules.
type Formatter struct{}

// New creates a new token colors formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders one rule per non-empty known category of each selected mode.
func (f *Formatter) Format(registry mode.Registry, opts formatter.Options) ([]byte, error) {
	palette, err := Palette(opts.Colors)
	if err != nil {
		return nil, err
	}

	doc := Document{TokenColorCustomizations: Customizations{TextMateRules: []Rule{}}}
	for _, name := range formatter.SelectModes(registry, opts.Modes) {
		categories := registry[name]
		for _, c := range mode.Categories() {
			if set, ok := categories[c]; !ok || set.Len() == 0 {
				continue
			}
			doc.TokenColorCustomizations.TextMateRules = append(doc.TokenColorCustomizations.TextMateRules, Rule{
				Scope:    grammar.TokenScope(c, name),
				Settings: Settings{Foreground: palette[c]},
			})
		}
	}
	return formatter.MarshalJSON(doc)
}

// Palette returns a hex color for every known category. Configured colors
// are normalized to hex; the rest are spread evenly around the HCL hue circle.
func Palette(overrides map[mode.Category]string) (map[mode.Category]string, error) {
	categories := mode.Categories()
	palette := make(map[mode.Category]string, len(categories))
	step := 360.0 / float64(len(categories))

	for i, c := range categories {
		palette[c] = colorful.Hcl(float64(i)*step, 0.6, 0.65).Clamped().Hex()
	}

	for c, value := range overrides {
		if !c.IsKnown() {
			return nil, fmt.Errorf("%w for %s: %w", formatter.ErrInvalidColor, c, mode.ErrUnknownCategory)
		}
		parsed, err := csscolorparser.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %q", formatter.ErrInvalidColor, c, value)
		}
		palette[c] = parsed.HexString()
	}
	return palette, nil
}
