/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	"bennypowers.dev/sentaurus-syntax/convert/formatter/contributes"
	"bennypowers.dev/sentaurus-syntax/convert/formatter/reference"
	"bennypowers.dev/sentaurus-syntax/convert/formatter/tmlanguage"
	"bennypowers.dev/sentaurus-syntax/convert/formatter/tokencolors"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// ErrUnknownFormat indicates an unrecognized output format.
var ErrUnknownFormat = errors.New("unknown format")

// Format represents an output artifact format.
type Format string

const (
	// FormatReference outputs the consolidated token reference of all modes.
	FormatReference Format = "reference"

	// FormatTMLanguage outputs a TextMate grammar for one mode.
	FormatTMLanguage Format = "tmlanguage"

	// FormatContributes outputs a VS Code manifest contributes fragment.
	FormatContributes Format = "contributes"

	// FormatTokenColors outputs VS Code token color customizations.
	FormatTokenColors Format = "token-colors"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatReference),
		string(FormatTMLanguage),
		string(FormatContributes),
		string(FormatTokenColors),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "reference", "keywords", "":
		return FormatReference, nil
	case "tmlanguage", "textmate", "grammar":
		return FormatTMLanguage, nil
	case "contributes", "manifest":
		return FormatContributes, nil
	case "token-colors", "tokencolors", "colors":
		return FormatTokenColors, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
	}
}

// GetFormatter returns the formatter for the given format.
func GetFormatter(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatReference:
		return reference.New(), nil
	case FormatTMLanguage:
		return tmlanguage.New(), nil
	case FormatContributes:
		return contributes.New(), nil
	case FormatTokenColors:
		return tokencolors.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatRegistry renders the registry in the requested format.
func FormatRegistry(registry mode.Registry, format Format, opts formatter.Options) ([]byte, error) {
	f, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(registry, opts)
}
