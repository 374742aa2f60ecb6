// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives the URL identifiers used for profiles, categories and
// tags, e.g. "Maxamed Cabdullaahi Farmaajo" becomes "maxamed-cabdullaahi-farmaajo".
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented letters and drops the combining marks.
var stripMarks = transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}))

// From converts a display name into a lowercase ASCII slug.
//
// Apostrophes are dropped so "Xasan's" stays one word. Every other run of
// separators or non-ASCII symbols becomes a single hyphen, and the result
// never starts or ends with one. A name with no usable letters yields "".
func From(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false

	for _, r := range strings.ToLower(folded) {
		switch {
		case r == '\'' || r == '’' || r == '`':
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}

// Set hands out slugs that are unique within one collection.
type Set map[string]struct{}

// Add records an explicit slug and reports false if it was already taken.
func (s Set) Add(slug string) bool {
	if _, taken := s[slug]; taken {
		return false
	}
	s[slug] = struct{}{}
	return true
}

// Unique returns base, or base suffixed with "-2", "-3" and so on when base is
// already in the set, and records the result. An empty base is returned as is.
func (s Set) Unique(base string) string {
	if base == "" {
		return base
	}

	candidate := base
	for n := 2; ; n++ {
		if s.Add(candidate) {
			return candidate
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
}
