/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract scans mode definition text for tagged keyword spans.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"bennypowers.dev/sentaurus-syntax/mode"
)

// Opening and closing digits are captured separately; RE2 has no
// back-references, so spans whose digits differ are discarded after matching.
// Any decimal digit is accepted and named by its value, so <KEYWORD٣> is KEYWORD3.
var (
	keywordPattern  = regexp.MustCompile(`<KEYWORD(\p{Nd})>([^<]+)</KEYWORD(\p{Nd})>`)
	literalPattern  = regexp.MustCompile(`<LITERAL(\p{Nd})>([^<]+)</LITERAL(\p{Nd})>`)
	functionPattern = regexp.MustCompile(`<FUNCTION>([^<]+)</FUNCTION>`)
)

// Extract returns the token categories found in content.
//
// Each tag family is scanned independently over the whole text. Inner text
// is trimmed, so a whitespace-only span yields the empty token.
func Extract(content string) mode.CategoryMap {
	result := make(mode.CategoryMap)
	scanNumbered(result, content, keywordPattern, "KEYWORD")
	scanNumbered(result, content, literalPattern, "LITERAL")
	for _, m := range functionPattern.FindAllStringSubmatch(content, -1) {
		result.Add(mode.Function, strings.TrimSpace(m[1]))
	}
	return result
}

// ExtractBytes decodes data with the given policy and extracts from it.
func ExtractBytes(data []byte, policy DecodePolicy) mode.CategoryMap {
	return Extract(Decode(data, policy))
}

func scanNumbered(result mode.CategoryMap, content string, re *regexp.Regexp, family string) {
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		// m[1] opening digit, m[2] inner text, m[3] closing digit
		if m[1] != m[3] {
			continue
		}
		result.Add(mode.Numbered(family, asciiDigit(m[1])), strings.TrimSpace(m[2]))
	}
}

// asciiDigit returns the ASCII form of a single decimal digit. Decimal
// digits come in contiguous runs of ten starting at zero.
func asciiDigit(digit string) string {
	r, _ := utf8.DecodeRuneInString(digit)
	if r <= '9' {
		return digit
	}
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return string('0' + (r-zero)%10)
}
