/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mode provides the data model for extracted mode token categories.
package mode

import (
	"fmt"
	"slices"
	"strings"
)

// Category labels a class of tokens, such as KEYWORD1 or FUNCTION.
type Category string

const (
	// Keyword1 holds primary control keywords.
	Keyword1 Category = "KEYWORD1"
	// Keyword2 holds secondary keywords.
	Keyword2 Category = "KEYWORD2"
	// Keyword3 holds tag-like keywords.
	Keyword3 Category = "KEYWORD3"
	// Keyword4 holds class-like keywords.
	Keyword4 Category = "KEYWORD4"
	// Literal1 holds character literals.
	Literal1 Category = "LITERAL1"
	// Literal2 holds numeric literals.
	Literal2 Category = "LITERAL2"
	// Literal3 holds quoted string literals.
	Literal3 Category = "LITERAL3"
	// Function holds built-in function names.
	Function Category = "FUNCTION"
)

var categories = []Category{
	Keyword1, Keyword2, Keyword3, Keyword4,
	Literal1, Literal2, Literal3,
	Function,
}

// Categories returns the known categories in declaration order.
// Grammar patterns are emitted in this order.
func Categories() []Category {
	return slices.Clone(categories)
}

// IsKnown reports whether c is one of the eight known categories.
func (c Category) IsKnown() bool {
	return slices.Contains(categories, c)
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a label such as "keyword1" to a known Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsKnown() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Numbered returns the category for a tag family and digit, e.g. ("KEYWORD", "3").
func Numbered(family, digit string) Category {
	return Category(family + digit)
}
