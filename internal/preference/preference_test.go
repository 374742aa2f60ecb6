// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/somalitag/internal/i18n"
	"github.com/taibuivan/somalitag/internal/platform/apperr"
	"github.com/taibuivan/somalitag/internal/platform/constants"
	"github.com/taibuivan/somalitag/internal/platform/ctxutil"
	"github.com/taibuivan/somalitag/internal/preference"
)

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("storage unavailable")
}

/*
TestLoad_Defaults verifies absent, invalid and unreadable values fall back silently.
*/
func TestLoad_Defaults(t *testing.T) {
	ctx := context.Background()

	empty := preference.NewMemoryStore()
	assert.Equal(t, preference.ThemeDark, preference.LoadTheme(ctx, empty))
	assert.Equal(t, i18n.Somali, preference.LoadLanguage(ctx, empty))

	invalid := preference.NewMemoryStore()
	require.NoError(t, invalid.Set(ctx, constants.PreferenceKeyTheme, "sepia"))
	require.NoError(t, invalid.Set(ctx, constants.PreferenceKeyLanguage, "fr"))
	assert.Equal(t, preference.ThemeDark, preference.LoadTheme(ctx, invalid))
	assert.Equal(t, i18n.Somali, preference.LoadLanguage(ctx, invalid))

	assert.Equal(t, preference.DefaultSettings(), preference.Load(ctx, brokenStore{}).Settings())
}

/*
TestRoundTrip_Memory verifies a written value is read back by a new session.
*/
func TestRoundTrip_Memory(t *testing.T) {
	ctx := context.Background()

	for _, theme := range []preference.Theme{preference.ThemeLight, preference.ThemeDark} {
		store := preference.NewMemoryStore()
		require.NoError(t, preference.Load(ctx, store).SetTheme(ctx, theme))
		assert.Equal(t, theme, preference.LoadTheme(ctx, store))
	}

	for _, language := range i18n.Languages {
		store := preference.NewMemoryStore()
		require.NoError(t, preference.Load(ctx, store).SetLanguage(ctx, language))
		assert.Equal(t, language, preference.LoadLanguage(ctx, store))
	}
}

/*
TestMemoryBackend verifies preferences are kept per visitor and anonymous writes fail.
*/
func TestMemoryBackend(t *testing.T) {
	backend := preference.NewMemoryBackend()
	assert.Equal(t, "memory", backend.Name())

	visit := func(visitor string) *http.Request {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		if visitor == "" {
			return request
		}
		return request.WithContext(ctxutil.WithVisitorID(request.Context(), visitor))
	}

	asha := visit("visitor-asha")
	require.NoError(t, preference.Load(asha.Context(), backend.Open(nil, asha)).SetLanguage(asha.Context(), i18n.English))

	again := visit("visitor-asha")
	assert.Equal(t, i18n.English, preference.LoadLanguage(again.Context(), backend.Open(nil, again)))

	other := visit("visitor-hodan")
	assert.Equal(t, preference.DefaultSettings().Language, preference.LoadLanguage(other.Context(), backend.Open(nil, other)))

	anonymous := visit("")
	err := preference.Load(anonymous.Context(), backend.Open(nil, anonymous)).SetTheme(anonymous.Context(), preference.ThemeLight)
	assert.ErrorIs(t, err, preference.ErrNoVisitor)
}

/*
TestRoundTrip_Cookie verifies cookies written in one request restore the settings in the next.
*/
func TestRoundTrip_Cookie(t *testing.T) {
	backend := preference.CookieBackend{TTL: constants.DefaultPreferenceTTL}

	first := httptest.NewRequest(http.MethodPost, "/preferences/language", nil)
	recorder := httptest.NewRecorder()
	prefs := preference.Load(first.Context(), backend.Open(recorder, first))

	require.NoError(t, prefs.SetLanguage(first.Context(), i18n.Arabic))
	require.NoError(t, prefs.SetTheme(first.Context(), preference.ThemeLight))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		second.AddCookie(cookie)
	}

	restored := preference.Load(second.Context(), backend.Open(httptest.NewRecorder(), second))
	assert.Equal(t, preference.Settings{Theme: preference.ThemeLight, Language: i18n.Arabic}, restored.Settings())
}

/*
TestSetter_AppliesPresentation verifies the setter updates the document attributes.
*/
func TestSetter_AppliesPresentation(t *testing.T) {
	ctx := context.Background()
	prefs := preference.Load(ctx, preference.NewMemoryStore())

	assert.Equal(t, preference.Presentation{ColorScheme: "dark", Lang: "so", Dir: "ltr"}, prefs.Presentation())

	require.NoError(t, prefs.SetLanguage(ctx, i18n.Arabic))
	assert.Equal(t, preference.Presentation{ColorScheme: "dark", Lang: "ar", Dir: "rtl"}, prefs.Presentation())

	require.NoError(t, prefs.SetTheme(ctx, preference.ThemeLight))
	require.NoError(t, prefs.SetTheme(ctx, preference.ThemeLight))
	require.NoError(t, prefs.SetLanguage(ctx, i18n.English))
	assert.Equal(t, preference.Presentation{ColorScheme: "light", Lang: "en", Dir: "ltr"}, prefs.Presentation())
}

/*
TestSetter_FailedWriteChangesNothing verifies persistence and presentation move together.
*/
func TestSetter_FailedWriteChangesNothing(t *testing.T) {
	ctx := context.Background()
	prefs := preference.Load(ctx, brokenStore{})

	err := prefs.SetLanguage(ctx, i18n.Arabic)
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
	assert.Equal(t, "ltr", prefs.Presentation().Dir)
	assert.Equal(t, i18n.Somali, prefs.Settings().Language)
}

/*
TestSetter_RejectsUnknownValues verifies invalid input never reaches the store.
*/
func TestSetter_RejectsUnknownValues(t *testing.T) {
	ctx := context.Background()
	store := preference.NewMemoryStore()
	prefs := preference.Load(ctx, store)

	err := prefs.SetTheme(ctx, "sepia")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	require.Error(t, prefs.SetLanguage(ctx, "fr"))

	_, found, _ := store.Get(ctx, constants.PreferenceKeyTheme)
	assert.False(t, found)
}

func TestTheme(t *testing.T) {
	assert.Equal(t, preference.ThemeLight, preference.ThemeDark.Toggled())
	assert.Equal(t, preference.ThemeDark, preference.ThemeLight.Toggled())
	assert.False(t, preference.Theme("").Valid())
}
