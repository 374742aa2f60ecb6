// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/directory"
	"github.com/taibuivan/somalitag/internal/platform/apperr"
	"github.com/taibuivan/somalitag/internal/profile"
	"github.com/taibuivan/somalitag/pkg/pagination"
)

func newService(t *testing.T) *profile.Service {
	t.Helper()

	c, err := catalog.New(catalog.Shipped())
	require.NoError(t, err)

	return profile.NewService(directory.NewController(c), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ids(profiles []catalog.Profile) []int {
	out := make([]int, len(profiles))
	for i, p := range profiles {
		out[i] = p.ID
	}
	return out
}

/*
TestService_List verifies filtering, tag intersection and paging.
*/
func TestService_List(t *testing.T) {
	service := newService(t)
	ctx := context.Background()
	all := pagination.Params{Page: 1, Limit: pagination.DefaultLimit}

	tests := []struct {
		name   string
		filter profile.ListFilter
		want   []int
	}{
		{"no filter", profile.ListFilter{}, []int{1, 2, 3, 4, 5, 6}},
		{"status", profile.ListFilter{Filter: directory.Filter{Status: "Deceased"}}, []int{3, 6}},
		{"role", profile.ListFilter{Filter: directory.Filter{Role: "Business"}}, []int{2}},
		{"one tag", profile.ListFilter{Tags: []string{"mogadishu"}}, []int{1, 2}},
		{"all tags", profile.ListFilter{Tags: []string{"Mogadishu", "Tech Startup"}}, []int{2}},
		{"unknown tag", profile.ListFilter{Tags: []string{"Nowhere"}}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := service.List(ctx, tt.filter, all)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(items))
			assert.Equal(t, len(tt.want), total)
		})
	}

	t.Run("second page", func(t *testing.T) {
		items, total, err := service.List(ctx, profile.ListFilter{}, pagination.Params{Page: 2, Limit: 4})

		require.NoError(t, err)
		assert.Equal(t, []int{5, 6}, ids(items))
		assert.Equal(t, 6, total)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, _, err := service.List(ctx, profile.ListFilter{Filter: directory.Filter{Status: "Unknown"}}, all)

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_Get verifies lookup by id and by slug.
*/
func TestService_Get(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	byID, err := service.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Asha Ahmed", byID.Name)

	bySlug, err := service.Get(ctx, "Asha-Ahmed")
	require.NoError(t, err)
	assert.Equal(t, 2, bySlug.ID)

	for _, identifier := range []string{"99", "nobody"} {
		_, err := service.Get(ctx, identifier)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	}
}

/*
TestService_Search verifies search ignores nothing but requires a query.
*/
func TestService_Search(t *testing.T) {
	service := newService(t)
	ctx := context.Background()
	params := pagination.Params{Page: 1, Limit: pagination.DefaultLimit}

	results, total, err := service.Search(ctx, "scholar", params)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Sheikh Abdullahi Hassan", results[0].Name)
	assert.Equal(t, catalog.StatusDeceased, results[0].Status)

	_, _, err = service.Search(ctx, "  ", params)
	require.Error(t, err)

	_, _, err = service.Search(ctx, strings.Repeat("x", 201), params)
	require.Error(t, err)
}

/*
TestService_Taxonomy verifies the category forest and tag vocabulary are exposed.
*/
func TestService_Taxonomy(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	assert.Len(t, service.CategoryTree(ctx), 10)
	assert.Len(t, service.Tags(ctx), 17)
}
