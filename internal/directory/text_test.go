// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/somalitag/internal/directory"
)

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Mohamed Abdullahi Farmaajo": "MA",
		"Dr. Ali Jibril":             "DA",
		"asha":                       "A",
		"  fartun  abdi":             "FA",
		"":                           "",
		"عبدي ورسمة":                 "عو",
	}

	for name, want := range tests {
		assert.Equal(t, want, directory.Initials(name), name)
	}
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "Early Life", directory.SectionTitle("early_life"))
	assert.Equal(t, "Public Influence", directory.SectionTitle("public_influence"))
	assert.Equal(t, "Career", directory.SectionTitle("career"))
	assert.Equal(t, "Awards BBC", directory.SectionTitle("awards_BBC"))
	assert.Equal(t, "People's Choice", directory.SectionTitle("people's_choice"))
	assert.Equal(t, "Life 1960s", directory.SectionTitle("life_1960s"))
}

func TestRowTags(t *testing.T) {
	shown, more := directory.RowTags([]string{"a", "b", "c", "d", "e"}, 3)
	assert.Equal(t, []string{"a", "b", "c"}, shown)
	assert.Equal(t, 2, more)

	shown, more = directory.RowTags([]string{"a"}, 3)
	assert.Equal(t, []string{"a"}, shown)
	assert.Zero(t, more)
}
