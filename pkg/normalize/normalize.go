// Copyright (c) 2026 TXSN. All rights reserved.

// Package normalize folds Unicode strings for comparison and matching.
//
// # Usage
//
// The directory is bilingual, so user-typed filters must match accented
// Spanish text ("region" should find "región"). Folding lowercases and
// strips combining marks before comparison.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold converts a Unicode string into a lowercase, accent-free form
// suitable for case- and diacritic-insensitive comparison.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, err := transform.String(t, s)
	if err != nil {
		// Fall back to plain lowercasing on malformed input.
		return strings.ToLower(s)
	}
	return strings.ToLower(result)
}

// Contains reports whether needle occurs in haystack after folding both.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Equal reports whether two strings are identical after folding.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
