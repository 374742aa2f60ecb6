// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/directory"
	"github.com/taibuivan/somalitag/internal/i18n"
	"github.com/taibuivan/somalitag/internal/platform/constants"
	"github.com/taibuivan/somalitag/internal/preference"
	"github.com/taibuivan/somalitag/pkg/slice"
)

// placeholder is shown for absent optional fields.
const placeholder = "—"

// # View Models

type page struct {
	T            i18n.Bundle
	Presentation preference.Presentation
	Languages    []option
	NextTheme    preference.Theme
	DarkTheme    bool
	ReturnPath   string
	HomeURL      string
	Nav          []link
	ScrollLocked bool
	Year         int

	Hero       *heroView
	Directory  *directoryView
	Categories []link
	Tags       []link
	ShowAPI    bool
	Overlay    *overlayView
}

type link struct {
	Label  string
	URL    string
	Active bool
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type heroView struct {
	Counts catalog.Counts
	APIURL string
}

type directoryView struct {
	Query    string
	Roles    []option
	Statuses []option
	Rows     []row
	Shown    int
	Total    int
	PrevURL  string
	NextURL  string
	HasPrev  bool
	HasNext  bool
}

type row struct {
	Name        string
	IsVerified  bool
	PrimaryRole string
	SubCategory string
	Tags        []string
	MoreTags    int
	Status      string
	Alive       bool
	OpenURL     string
}

type overlayView struct {
	Name        string
	IsVerified  bool
	Initials    string
	Subtitle    string
	Aka         string
	PrimaryRole string
	DOB         string
	POB         string
	Status      string
	Alive       bool
	Tags        []string
	Relations   []catalog.Relation
	Summary     string
	Media       []catalog.Media
	Sections    []sectionView
	CloseURL    string
	EscapeURL   string
}

type sectionView struct {
	Title string
	Body  string
}

// # Builders

// buildPage assembles everything the layout renders for one state.
func buildPage(controller *directory.Controller, state directory.State, settings preference.Settings, selected *catalog.Profile, scrollLocked bool, year int) page {
	bundle := i18n.Translate(settings.Language)
	c := controller.Catalog()

	p := page{
		T:            bundle,
		Presentation: settings.Presentation(),
		NextTheme:    settings.Theme.Toggled(),
		DarkTheme:    settings.Theme == preference.ThemeDark,
		ReturnPath:   state.URL(),
		HomeURL:      state.SwitchView(directory.ViewProfiles).URL(),
		ScrollLocked: scrollLocked,
		Year:         year,
	}

	for _, language := range i18n.Languages {
		p.Languages = append(p.Languages, option{
			Value:    string(language),
			Label:    language.NativeName(),
			Selected: language == settings.Language,
		})
	}

	for _, view := range directory.Views {
		p.Nav = append(p.Nav, link{
			Label:  bundle.Nav.Label(string(view)),
			URL:    state.SwitchView(view).URL(),
			Active: state.View == view,
		})
	}

	switch state.View {
	case directory.ViewProfiles:
		if state.ShowHero() {
			p.Hero = &heroView{Counts: c.Counts(), APIURL: state.SwitchView(directory.ViewAPI).URL()}
		}
		p.Directory = buildDirectory(controller, state, bundle)

	case directory.ViewCategories:
		p.Categories = slice.Map(c.TopLevelCategories(), func(name string) link {
			return link{Label: name, URL: state.SelectCategory(name).URL()}
		})

	case directory.ViewTags:
		p.Tags = slice.Map(c.TagNames(), func(name string) link {
			return link{Label: name, URL: state.SelectTag(name).URL()}
		})

	case directory.ViewAPI:
		p.ShowAPI = true
	}

	if selected != nil {
		p.Overlay = buildOverlay(state, *selected)
	}

	return p
}

func buildDirectory(controller *directory.Controller, state directory.State, bundle i18n.Bundle) *directoryView {
	result := controller.Derive(state)

	view := &directoryView{
		Query:   state.Query,
		Shown:   len(result.Items),
		Total:   result.Total,
		HasPrev: result.HasPrev(),
		HasNext: result.HasNext(),
	}

	// The page may have been clamped; navigation starts from the page actually shown.
	shown := state
	shown.Page = result.Page
	view.PrevURL = shown.Prev().URL()
	view.NextURL = shown.Next(result.TotalPages).URL()

	view.Roles = append(view.Roles, option{Value: "", Label: bundle.Profiles.AllRoles, Selected: state.Role == ""})
	for _, name := range controller.Catalog().TopLevelCategories() {
		view.Roles = append(view.Roles, option{Value: name, Label: name, Selected: state.Role == name})
	}

	view.Statuses = append(view.Statuses, option{Value: "", Label: bundle.Profiles.AllStatus, Selected: state.Status == ""})
	for _, status := range catalog.Statuses {
		view.Statuses = append(view.Statuses, option{
			Value:    string(status),
			Label:    bundle.Profiles.StatusLabel(string(status)),
			Selected: state.Status == string(status),
		})
	}

	view.Rows = slice.Map(result.Items, func(profile catalog.Profile) row {
		tags, more := directory.RowTags(profile.Tags, constants.RowTagLimit)
		return row{
			Name:        profile.Name,
			IsVerified:  profile.IsVerified,
			PrimaryRole: profile.PrimaryRole,
			SubCategory: orPlaceholder(profile.SubCategory),
			Tags:        tags,
			MoreTags:    more,
			Status:      string(profile.Status),
			Alive:       profile.Status == catalog.StatusAlive,
			OpenURL:     shown.Open(profile.ID).URL(),
		}
	})

	return view
}

func buildOverlay(state directory.State, profile catalog.Profile) *overlayView {
	subtitle := profile.SubCategory
	if subtitle == "" {
		subtitle = profile.PrimaryRole
	}

	escape := state.Values()
	escape.Set(directory.ParamKey, directory.KeyEscape)

	return &overlayView{
		Name:        profile.Name,
		IsVerified:  profile.IsVerified,
		Initials:    directory.Initials(profile.Name),
		Subtitle:    subtitle,
		Aka:         orPlaceholder(profile.Aka),
		PrimaryRole: profile.PrimaryRole,
		DOB:         profile.DOB,
		POB:         profile.POB,
		Status:      string(profile.Status),
		Alive:       profile.Status == catalog.StatusAlive,
		Tags:        profile.Tags,
		Relations:   profile.Relations,
		Summary:     profile.Summary,
		Media:       profile.Media,
		Sections: slice.Map(profile.Sections.Visible(), func(section catalog.Section) sectionView {
			return sectionView{Title: directory.SectionTitle(section.Key), Body: section.Body}
		}),
		CloseURL:  state.Close().URL(),
		EscapeURL: "/?" + escape.Encode(),
	}
}

func orPlaceholder(value string) string {
	if value == "" {
		return placeholder
	}
	return value
}
