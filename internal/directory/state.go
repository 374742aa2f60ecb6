// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package directory is the view-state controller of the profile browser.

A [State] captures everything that decides what is rendered: the active tab,
the three filters, the current page and the open profile. Every user action is
a pure transition returning a new State, and every result set is a pure
function of (catalog, State).

# Transition Rules

  - Changing the query, role or status resets the page to 1.
  - A category chip sets the role, clears the query, shows the profiles tab and resets the page.
  - A tag chip sets the query, clears the role, shows the profiles tab and resets the page.
  - A plain tab switch keeps filters and page.
  - Prev and Next clamp at the first and last page.
  - Opening or closing a profile never touches filters or page.
*/
package directory

// # Views

// View is one of the four navigation tabs.
type View string

const (
	ViewProfiles   View = "profiles"
	ViewCategories View = "categories"
	ViewTags       View = "tags"
	ViewAPI        View = "api"
)

// Views lists the tabs in navigation order.
var Views = []View{ViewProfiles, ViewCategories, ViewTags, ViewAPI}

// Valid reports whether v is a known tab.
func (v View) Valid() bool {
	switch v {
	case ViewProfiles, ViewCategories, ViewTags, ViewAPI:
		return true
	}
	return false
}

// # State

// State is the complete navigation, filter and selection state.
//
// Selected holds the id of the open profile, or 0 when the overlay is closed.
type State struct {
	View     View
	Query    string
	Role     string
	Status   string
	Page     int
	Selected int
}

// DefaultState is the state of a fresh session.
func DefaultState() State {
	return State{View: ViewProfiles, Page: 1}
}

// Filter returns the filter part of the state.
func (s State) Filter() Filter {
	return Filter{Query: s.Query, Role: s.Role, Status: s.Status}
}

// ShowHero reports whether the landing block is visible: profiles tab with no query or role.
func (s State) ShowHero() bool {
	return s.View == ViewProfiles && s.Query == "" && s.Role == ""
}

// # Transitions

// SwitchView changes tab and keeps filters, page and selection.
func (s State) SwitchView(view View) State {
	if !view.Valid() {
		return s
	}
	s.View = view
	return s
}

// SetQuery replaces the free-text query and returns to page 1.
func (s State) SetQuery(query string) State {
	s.Query = query
	s.Page = 1
	return s
}

// SetRole replaces the role filter and returns to page 1.
func (s State) SetRole(role string) State {
	s.Role = role
	s.Page = 1
	return s
}

// SetStatus replaces the status filter and returns to page 1.
func (s State) SetStatus(status string) State {
	s.Status = status
	s.Page = 1
	return s
}

// SelectCategory applies a category chip.
func (s State) SelectCategory(category string) State {
	s.Role = category
	s.Query = ""
	s.View = ViewProfiles
	s.Page = 1
	return s
}

// SelectTag applies a tag chip.
func (s State) SelectTag(tag string) State {
	s.Query = tag
	s.Role = ""
	s.View = ViewProfiles
	s.Page = 1
	return s
}

// Prev moves one page back. It is a no-op on page 1.
func (s State) Prev() State {
	if s.Page > 1 {
		s.Page--
	}
	return s
}

// Next moves one page forward. It is a no-op on the last page or when there are no pages.
func (s State) Next(totalPages int) State {
	if s.Page < totalPages {
		s.Page++
	}
	return s
}

// Open selects a profile for the detail overlay.
func (s State) Open(profileID int) State {
	if profileID > 0 {
		s.Selected = profileID
	}
	return s
}

// Close clears the selection.
func (s State) Close() State {
	s.Selected = 0
	return s
}
