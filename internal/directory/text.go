// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Initials takes the first character of each space-separated word of name,
// keeps the first two and upper-cases them.
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Split(name, " ") {
		if word == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(word)
		initials = append(initials, first)
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}

// SectionTitle turns a section key such as "public_influence" into "Public Influence".
//
// Words are title-cased by Unicode word rules, so "people's_choice" becomes
// "People's Choice" and "taariikh_nololeed" becomes "Taariikh Nololeed". Existing
// capitals are kept.
func SectionTitle(key string) string {
	// Casers are stateful, so each call gets its own.
	caser := cases.Title(language.Und, cases.NoLower)
	return caser.String(strings.ReplaceAll(key, "_", " "))
}

// RowTags splits tags into the ones shown in a table row and the overflow count.
func RowTags(tags []string, limit int) ([]string, int) {
	if len(tags) <= limit {
		return tags, 0
	}
	return tags[:limit], len(tags) - limit
}
