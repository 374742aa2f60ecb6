// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/somalitag/internal/directory"
)

/*
TestState_FilterChangesResetPage verifies query, role and status edits return to page 1.
*/
func TestState_FilterChangesResetPage(t *testing.T) {
	start := directory.State{View: directory.ViewProfiles, Page: 3, Selected: 2}

	tests := []struct {
		name  string
		apply func(directory.State) directory.State
	}{
		{"query", func(s directory.State) directory.State { return s.SetQuery("farm") }},
		{"role", func(s directory.State) directory.State { return s.SetRole("Business") }},
		{"status", func(s directory.State) directory.State { return s.SetStatus("Alive") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.apply(start)
			assert.Equal(t, 1, next.Page)
			assert.Equal(t, 2, next.Selected)
		})
	}
}

/*
TestState_SelectCategory covers the category chip (scenario D).
*/
func TestState_SelectCategory(t *testing.T) {
	start := directory.State{View: directory.ViewCategories, Query: "poet", Status: "Alive", Page: 4}

	next := start.SelectCategory("Politics")

	assert.Equal(t, "Politics", next.Role)
	assert.Empty(t, next.Query)
	assert.Equal(t, directory.ViewProfiles, next.View)
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, "Alive", next.Status)
}

/*
TestState_SelectTag covers the tag chip.
*/
func TestState_SelectTag(t *testing.T) {
	start := directory.State{View: directory.ViewTags, Role: "Politics", Page: 2}

	next := start.SelectTag("Mogadishu")

	assert.Equal(t, "Mogadishu", next.Query)
	assert.Empty(t, next.Role)
	assert.Equal(t, directory.ViewProfiles, next.View)
	assert.Equal(t, 1, next.Page)
}

/*
TestState_SwitchViewKeepsFilters verifies plain tab switches leave filters alone.
*/
func TestState_SwitchViewKeepsFilters(t *testing.T) {
	start := directory.State{View: directory.ViewProfiles, Query: "a", Role: "Sports", Status: "Alive", Page: 2}

	next := start.SwitchView(directory.ViewAPI)
	assert.Equal(t, directory.ViewAPI, next.View)
	assert.Equal(t, start.Filter(), next.Filter())
	assert.Equal(t, 2, next.Page)

	assert.Equal(t, start, start.SwitchView("settings"))
}

/*
TestState_PrevNextClamp verifies the pagination controls are idempotent at the bounds.
*/
func TestState_PrevNextClamp(t *testing.T) {
	first := directory.State{Page: 1}
	assert.Equal(t, first, first.Prev())

	last := directory.State{Page: 3}
	assert.Equal(t, last, last.Next(3))
	assert.Equal(t, 2, last.Prev().Page)

	assert.Equal(t, 2, first.Next(3).Page)
	assert.Equal(t, 1, first.Next(0).Page)
}

/*
TestState_OpenClose verifies selection leaves filters and page untouched.
*/
func TestState_OpenClose(t *testing.T) {
	start := directory.State{View: directory.ViewProfiles, Query: "x", Page: 2}

	opened := start.Open(4)
	assert.Equal(t, 4, opened.Selected)
	assert.Equal(t, start.Filter(), opened.Filter())
	assert.Equal(t, start.Page, opened.Page)

	assert.Equal(t, start, opened.Close())
	assert.Equal(t, start, start.Open(0))
}

/*
TestState_ShowHero verifies the landing block visibility rule.
*/
func TestState_ShowHero(t *testing.T) {
	assert.True(t, directory.DefaultState().ShowHero())
	assert.True(t, directory.DefaultState().SetStatus("Alive").ShowHero())
	assert.False(t, directory.DefaultState().SetQuery("x").ShowHero())
	assert.False(t, directory.DefaultState().SetRole("Sports").ShowHero())
	assert.False(t, directory.DefaultState().SwitchView(directory.ViewTags).ShowHero())
}
