// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package preference persists the visitor's theme and language and derives the
document-level presentation attributes from them.

# Architecture

  - [Settings] is the explicit settings value handed to the rendering layer.
  - [Store] is the durable key-value adapter (cookies, Redis or memory).
  - [Preferences] binds the two. Its setters are the only way to change a
    setting, and each one persists the value and updates the presentation in
    a single step: a failed write leaves both untouched.

Unknown or missing persisted values silently fall back to the defaults
(dark theme, Somali language) and are never reported to the visitor.
*/
package preference

import (
	"context"
	"log/slog"

	"github.com/taibuivan/somalitag/internal/i18n"
	"github.com/taibuivan/somalitag/internal/platform/apperr"
	"github.com/taibuivan/somalitag/internal/platform/constants"
	"github.com/taibuivan/somalitag/internal/platform/ctxutil"
	"github.com/taibuivan/somalitag/internal/platform/metrics"
)

// # Values

// Theme is the color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Language is the UI language preference.
type Language = i18n.Language

const (
	DefaultTheme    = ThemeDark
	DefaultLanguage = i18n.Somali
)

// Settings is the resolved pair of preferences for one visitor.
type Settings struct {
	Theme    Theme
	Language Language
}

// DefaultSettings returns the settings of a first-time visitor.
func DefaultSettings() Settings {
	return Settings{Theme: DefaultTheme, Language: DefaultLanguage}
}

// Presentation holds the document-level attributes driven by the settings.
type Presentation struct {
	// ColorScheme is the value of the data-theme attribute.
	ColorScheme string
	// Lang is the value of the lang attribute.
	Lang string
	// Dir is the value of the dir attribute: "rtl" for Arabic, "ltr" otherwise.
	Dir string
}

// Presentation derives the document attributes for the settings.
func (s Settings) Presentation() Presentation {
	return Presentation{
		ColorScheme: string(s.Theme),
		Lang:        string(s.Language),
		Dir:         s.Language.Direction(),
	}
}

// # Loading

// LoadTheme reads the persisted theme, falling back to [DefaultTheme].
func LoadTheme(ctx context.Context, store Store) Theme {
	value, found := read(ctx, store, constants.PreferenceKeyTheme)
	if theme := Theme(value); found && theme.Valid() {
		return theme
	}
	return DefaultTheme
}

// LoadLanguage reads the persisted language, falling back to [DefaultLanguage].
func LoadLanguage(ctx context.Context, store Store) Language {
	value, found := read(ctx, store, constants.PreferenceKeyLanguage)
	if language := Language(value); found && language.Valid() {
		return language
	}
	return DefaultLanguage
}

// read swallows store failures; an unreadable preference is an absent one.
func read(ctx context.Context, store Store, key string) (string, bool) {
	value, found, err := store.Get(ctx, key)
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "preference_read_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return "", false
	}
	return value, found
}

// # Preferences

// Preferences is the settings of one visitor bound to their store.
type Preferences struct {
	store    Store
	settings Settings
}

// Load reads both preferences from the store.
func Load(ctx context.Context, store Store) *Preferences {
	return &Preferences{
		store: store,
		settings: Settings{
			Theme:    LoadTheme(ctx, store),
			Language: LoadLanguage(ctx, store),
		},
	}
}

// Settings returns the current settings.
func (p *Preferences) Settings() Settings {
	return p.settings
}

// Presentation returns the document attributes for the current settings.
func (p *Preferences) Presentation() Presentation {
	return p.settings.Presentation()
}

// SetTheme persists and applies a theme.
func (p *Preferences) SetTheme(ctx context.Context, theme Theme) error {
	if !theme.Valid() {
		return apperr.ValidationError("Unsupported theme",
			apperr.FieldError{Field: constants.PreferenceKeyTheme, Message: "Must be one of: light, dark"})
	}

	return p.apply(ctx, constants.PreferenceKeyTheme, string(theme), func(s *Settings) { s.Theme = theme })
}

// SetLanguage persists and applies a language.
func (p *Preferences) SetLanguage(ctx context.Context, language Language) error {
	if !language.Valid() {
		return apperr.ValidationError("Unsupported language",
			apperr.FieldError{Field: constants.PreferenceKeyLanguage, Message: "Must be one of: so, en, ar"})
	}

	return p.apply(ctx, constants.PreferenceKeyLanguage, string(language), func(s *Settings) { s.Language = language })
}

// apply is the single write path: persist first, then update the settings.
func (p *Preferences) apply(ctx context.Context, key, value string, update func(*Settings)) error {
	if err := p.store.Set(ctx, key, value); err != nil {
		return apperr.Internal(err)
	}

	update(&p.settings)
	metrics.PreferenceUpdates.WithLabelValues(key, value).Inc()

	ctxutil.GetLogger(ctx).InfoContext(ctx, "preference_updated",
		slog.String("key", key),
		slog.String("value", value),
	)
	return nil
}
