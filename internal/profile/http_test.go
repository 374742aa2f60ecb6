// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/directory"
	"github.com/taibuivan/somalitag/internal/profile"
	"github.com/taibuivan/somalitag/pkg/pointer"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]int  `json:"meta"`
	Code  string          `json:"code"`
	Error string          `json:"error"`
}

func serve(t *testing.T, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	router := chi.NewRouter()
	profile.NewHandler(newService(t)).RegisterRoutes(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

/*
TestHandler_ListProfiles verifies the paginated envelope and both tag syntaxes.
*/
func TestHandler_ListProfiles(t *testing.T) {
	recorder, body := serve(t, "/profiles?limit=2&page=3")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, map[string]int{"page": 3, "limit": 2, "total": 6, "total_pages": 3}, body.Meta)

	var items []struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].ID)

	for _, target := range []string{"/profiles?tags=Mogadishu,Entrepreneur", "/profiles?tags=Mogadishu&tags=Entrepreneur"} {
		_, body := serve(t, target)
		assert.Equal(t, 1, body.Meta["total"], target)
	}
}

/*
TestHandler_PageBeyondRange verifies that huge page numbers yield an empty page instead of failing.
*/
func TestHandler_PageBeyondRange(t *testing.T) {
	for _, target := range []string{
		"/profiles?page=9223372036854775807&limit=100",
		"/profiles?page=4611686018427387904&limit=2",
		"/search?q=a&page=9223372036854775807&limit=100",
	} {
		recorder, body := serve(t, target)
		require.Equal(t, http.StatusOK, recorder.Code, target)
		assert.JSONEq(t, `[]`, string(body.Data), target)
		assert.Positive(t, body.Meta["total"], target)
	}
}

/*
TestHandler_GetProfile verifies the detail route keeps section order and reports unknown profiles.
*/
func TestHandler_GetProfile(t *testing.T) {
	recorder, body := serve(t, "/profiles/mohamed-abdullahi-farmaajo")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, string(body.Data), `"sections":{"early_life":`)

	recorder, body = serve(t, "/profiles/404")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

/*
TestHandler_Search verifies search results and the empty-query rejection.
*/
func TestHandler_Search(t *testing.T) {
	recorder, body := serve(t, "/search?q=poet")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, body.Meta["total"])
	assert.Contains(t, string(body.Data), `"name":"Abdi Warsame"`)

	recorder, body = serve(t, "/search")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

/*
TestHandler_Taxonomy verifies the category and tag routes.
*/
func TestHandler_Taxonomy(t *testing.T) {
	recorder, body := serve(t, "/categories")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, string(body.Data), `"name":"Politics"`)
	assert.Contains(t, string(body.Data), `"children":[]`)

	recorder, body = serve(t, "/tags")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, string(body.Data), `"slug":"federal-parliament"`)
}

/*
TestHandler_ListProfiles_Descendants verifies the descendants flag widens the role filter to subcategories.
*/
func TestHandler_ListProfiles_Descendants(t *testing.T) {
	c, err := catalog.New(catalog.Dataset{
		Profiles: []catalog.Profile{
			{ID: 1, Name: "A", Status: catalog.StatusAlive, PrimaryRole: "Politics"},
			{ID: 2, Name: "B", Status: catalog.StatusAlive, PrimaryRole: "Parliament"},
			{ID: 3, Name: "C", Status: catalog.StatusAlive, PrimaryRole: "Sports"},
		},
		Categories: []catalog.Category{
			{ID: 1, Name: "Politics"},
			{ID: 2, Name: "Parliament", ParentID: pointer.To(1)},
			{ID: 3, Name: "Sports"},
		},
	})
	require.NoError(t, err)

	router := chi.NewRouter()
	service := profile.NewService(directory.NewController(c), slog.New(slog.NewTextHandler(io.Discard, nil)))
	profile.NewHandler(service).RegisterRoutes(router)

	tests := []struct {
		target string
		total  int
	}{
		{"/profiles?role=Politics", 1},
		{"/profiles?role=Politics&descendants=false", 1},
		{"/profiles?role=Politics&descendants=yes", 1},
		{"/profiles?role=Politics&descendants=true", 2},
		{"/profiles?role=Politics&descendants=1", 2},
	}

	for _, tt := range tests {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

		var body envelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, tt.total, body.Meta["total"], tt.target)
	}
}
