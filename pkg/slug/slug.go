// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives the ASCII identifiers used in club and tag URLs
// (e.g. "Robotics & Coding" → "robotics-coding").
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented letters and drops the combining marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

/*
From converts name into a lowercase slug of [a-z0-9] runs joined by single
hyphens. Letters with diacritics are folded to their base letter; every other
rune is a separator. The result is empty when name holds no usable rune.

Example:

	From("Échecs Club")   // "echecs-club"
	From("  -- STEM --")  // "stem"
	From("日本語")         // ""
*/
func From(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	var builder strings.Builder
	builder.Grow(len(folded))

	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if !isSlugRune(r) {
			pendingHyphen = builder.Len() > 0
			continue
		}
		if pendingHyphen {
			builder.WriteByte('-')
			pendingHyphen = false
		}
		builder.WriteRune(r)
	}

	return builder.String()
}

// Valid reports whether value is already in the form produced by [From].
func Valid(value string) bool {
	return value != "" && From(value) == value
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
