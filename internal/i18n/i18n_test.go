// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/somalitag/internal/i18n"
)

// emptyStrings walks a bundle and returns the paths of blank string fields.
func emptyStrings(value reflect.Value, path string) []string {
	switch value.Kind() {
	case reflect.String:
		if value.String() == "" {
			return []string{path}
		}
	case reflect.Struct:
		var empty []string
		for i := 0; i < value.NumField(); i++ {
			empty = append(empty, emptyStrings(value.Field(i), path+"."+value.Type().Field(i).Name)...)
		}
		return empty
	}
	return nil
}

/*
TestTranslate_Complete verifies every language fills every string.
*/
func TestTranslate_Complete(t *testing.T) {
	for _, language := range i18n.Languages {
		t.Run(string(language), func(t *testing.T) {
			bundle := i18n.Translate(language)
			assert.Empty(t, emptyStrings(reflect.ValueOf(bundle), string(language)))
		})
	}
}

/*
TestTranslate_Distinct verifies each language resolves to its own bundle.
*/
func TestTranslate_Distinct(t *testing.T) {
	assert.Equal(t, "Knowledge Hub", i18n.Translate(i18n.English).KnowledgeHub)
	assert.Equal(t, "Xarunta Aqoonta", i18n.Translate(i18n.Somali).KnowledgeHub)
	assert.Equal(t, "مركز المعرفة", i18n.Translate(i18n.Arabic).KnowledgeHub)
	assert.Equal(t, i18n.Translate(i18n.Somali), i18n.Translate("fr"))
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "rtl", i18n.Arabic.Direction())
	assert.Equal(t, "ltr", i18n.Somali.Direction())
	assert.Equal(t, "ltr", i18n.English.Direction())

	assert.True(t, i18n.English.Valid())
	assert.False(t, i18n.Language("fr").Valid())
	assert.False(t, i18n.Language("").Valid())
}

func TestLabels(t *testing.T) {
	bundle := i18n.Translate(i18n.Somali)
	assert.Equal(t, "qeybaha", bundle.Nav.Label("categories"))
	assert.Equal(t, "Geeriyooday", bundle.Profiles.StatusLabel("Deceased"))
	assert.Equal(t, "Unknown", bundle.Profiles.StatusLabel("Unknown"))
}
