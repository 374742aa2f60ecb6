// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n is the localization table for Somali, English and Arabic.

Every language provides a complete [Bundle]. The bundle is a plain struct, so a
missing string is a compile error or an empty field caught by the package tests,
never a runtime fallback. Strings are pre-composed: callers concatenate
fragments such as [Hero.TitleStart], [Hero.TitleHighlight] and [Hero.TitleEnd]
themselves.
*/
package i18n

// # Languages

// Language is a supported UI language code.
type Language string

const (
	Somali  Language = "so"
	English Language = "en"
	Arabic  Language = "ar"
)

// Languages lists the supported languages in selector order.
var Languages = []Language{Somali, English, Arabic}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == Somali || l == English || l == Arabic
}

// Direction returns the text direction for the language: "rtl" for Arabic, "ltr" otherwise.
func (l Language) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// NativeName is the name of the language in itself, as shown in the selector.
func (l Language) NativeName() string {
	switch l {
	case Somali:
		return "Soomaali"
	case English:
		return "English"
	case Arabic:
		return "العربية"
	}
	return string(l)
}

// # Bundle

// Bundle is the full set of UI strings for one language.
type Bundle struct {
	AppTitle     string
	KnowledgeHub string
	Nav          Nav
	Hero         Hero
	Profiles     Profiles
	Categories   Categories
	Tags         Tags
	API          API
	Modal        Modal
	Footer       string
}

// Nav holds the tab labels.
type Nav struct {
	Profiles   string
	Categories string
	Tags       string
	API        string
}

// Hero holds the landing block copy.
type Hero struct {
	Kicker             string
	TitleStart         string
	TitleHighlight     string
	TitleEnd           string
	Subtitle           string
	SearchBtn          string
	APIBtn             string
	StatProfiles       string
	StatProfilesDesc   string
	StatCategories     string
	StatCategoriesDesc string
	StatTags           string
	StatTagsDesc       string
	APIStatus          string
	APIReady           string
	APIPath            string
}

// Profiles holds the directory table copy.
type Profiles struct {
	Title             string
	Subtitle          string
	SearchPlaceholder string
	AllRoles          string
	AllStatus         string
	Alive             string
	Deceased          string
	Showing           string
	Of                string
	Items             string
	Prev              string
	Next              string
	NoResults         string
	TableHeaders      TableHeaders
}

// TableHeaders holds the directory column titles.
type TableHeaders struct {
	Name        string
	Role        string
	SubCategory string
	Tags        string
	Status      string
}

// Categories holds the category browser copy.
type Categories struct {
	Title     string
	Subtitle  string
	NoteTitle string
	NoteBody  string
}

// Tags holds the tag browser copy.
type Tags struct {
	Title    string
	Subtitle string
}

// API holds the API description copy.
type API struct {
	Title           string
	Subtitle        string
	CoreSchema      string
	Endpoints       string
	EndpointList    string
	EndpointDetails string
	EndpointSearch  string
}

// Modal holds the detail overlay labels.
type Modal struct {
	Aka       string
	Role      string
	Born      string
	Place     string
	Status    string
	Tags      string
	Relations string
	Summary   string
	Media     string
	Close     string
}

// Label returns the tab label for a view name.
func (n Nav) Label(view string) string {
	switch view {
	case "profiles":
		return n.Profiles
	case "categories":
		return n.Categories
	case "tags":
		return n.Tags
	case "api":
		return n.API
	}
	return view
}

// StatusLabel returns the localized label for a profile status value.
func (p Profiles) StatusLabel(status string) string {
	switch status {
	case "Alive":
		return p.Alive
	case "Deceased":
		return p.Deceased
	}
	return status
}

// Translate returns the bundle for a language. Unsupported codes get the Somali bundle.
func Translate(language Language) Bundle {
	switch language {
	case English:
		return english
	case Arabic:
		return arabic
	default:
		return somali
	}
}
