/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mode

import (
	"maps"
	"slices"
)

// TokenSet is a set of distinct token strings.
type TokenSet map[string]struct{}

// NewTokenSet creates a set holding the given tokens.
func NewTokenSet(tokens ...string) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, tok := range tokens {
		s.Add(tok)
	}
	return s
}

// Add inserts tok. Adding a token twice has no effect.
func (s TokenSet) Add(tok string) {
	s[tok] = struct{}{}
}

// Has reports whether tok is in the set.
func (s TokenSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Len returns the number of tokens.
func (s TokenSet) Len() int {
	return len(s)
}

// Sorted returns the tokens in lexicographic order.
func (s TokenSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether both sets hold the same tokens.
func (s TokenSet) Equal(other TokenSet) bool {
	if len(s) != len(other) {
		return false
	}
	for tok := range s {
		if !other.Has(tok) {
			return false
		}
	}
	return true
}
