/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mode

import (
	"cmp"
	"maps"
	"slices"
)

// CategoryMap maps each observed category to its tokens.
// Categories without tokens are absent rather than empty.
type CategoryMap map[Category]TokenSet

// Add records tok under category c, creating the set on first use.
func (m CategoryMap) Add(c Category, tok string) {
	set, ok := m[c]
	if !ok {
		set = make(TokenSet)
		m[c] = set
	}
	set.Add(tok)
}

// Tokens returns the sorted tokens for c, or nil if c is absent.
func (m CategoryMap) Tokens(c Category) []string {
	set, ok := m[c]
	if !ok {
		return nil
	}
	return set.Sorted()
}

// Categories returns the observed categories. Known categories come first in
// declaration order, followed by any others sorted by label.
func (m CategoryMap) Categories() []Category {
	result := make([]Category, 0, len(m))
	for _, c := range categories {
		if _, ok := m[c]; ok {
			result = append(result, c)
		}
	}
	var extra []Category
	for c := range m {
		if !c.IsKnown() {
			extra = append(extra, c)
		}
	}
	slices.SortFunc(extra, func(a, b Category) int { return cmp.Compare(a, b) })
	return append(result, extra...)
}

// Count returns the total number of tokens across all categories.
func (m CategoryMap) Count() int {
	n := 0
	for _, set := range m {
		n += set.Len()
	}
	return n
}

// Lists converts the map to plain sorted string lists, suitable for JSON.
func (m CategoryMap) Lists() map[string][]string {
	out := make(map[string][]string, len(m))
	for c, set := range m {
		out[string(c)] = set.Sorted()
	}
	return out
}

// CategoryMapFromLists builds a CategoryMap from plain lists.
// Duplicate entries collapse into one token.
func CategoryMapFromLists(lists map[string][]string) CategoryMap {
	m := make(CategoryMap, len(lists))
	for label, tokens := range lists {
		m[Category(label)] = NewTokenSet(tokens...)
	}
	return m
}

// Registry maps a mode name to its category map.
type Registry map[string]CategoryMap

// Names returns the mode names in sorted order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Lists converts every mode's categories to plain sorted lists.
func (r Registry) Lists() map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(r))
	for name, cm := range r {
		out[name] = cm.Lists()
	}
	return out
}

// RegistryFromLists builds a Registry from its plain list form.
func RegistryFromLists(lists map[string]map[string][]string) Registry {
	r := make(Registry, len(lists))
	for name, cm := range lists {
		r[name] = CategoryMapFromLists(cm)
	}
	return r
}
