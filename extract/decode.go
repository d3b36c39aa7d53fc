/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DecodePolicy controls how invalid UTF-8 in mode files is handled.
type DecodePolicy string

const (
	// DecodeIgnore drops invalid byte sequences.
	DecodeIgnore DecodePolicy = "ignore"
	// DecodeReplace substitutes U+FFFD for invalid byte sequences.
	DecodeReplace DecodePolicy = "replace"
)

// ValidPolicies returns all valid decode policy strings.
func ValidPolicies() []string {
	return []string{string(DecodeIgnore), string(DecodeReplace)}
}

// ParseDecodePolicy converts a string to a DecodePolicy.
// The empty string selects DecodeIgnore.
func ParseDecodePolicy(s string) (DecodePolicy, error) {
	switch strings.ToLower(s) {
	case "", "ignore", "drop":
		return DecodeIgnore, nil
	case "replace":
		return DecodeReplace, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownDecodePolicy, s, strings.Join(ValidPolicies(), ", "))
	}
}

// Decode converts raw file bytes to text. It never fails: invalid sequences
// are dropped or replaced according to policy. U+FFFD characters encoded
// correctly in the input are kept under both policies.
func Decode(data []byte, policy DecodePolicy) string {
	if utf8.Valid(data) {
		return string(data)
	}
	if policy != DecodeReplace {
		return strings.ToValidUTF8(string(data), "")
	}

	out, _, err := transform.String(runes.ReplaceIllFormed(), string(data))
	if err != nil {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))
	}
	return out
}
