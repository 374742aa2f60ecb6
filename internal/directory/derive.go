// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/platform/constants"
	"github.com/taibuivan/somalitag/internal/platform/metrics"
	"github.com/taibuivan/somalitag/pkg/pagination"
	"github.com/taibuivan/somalitag/pkg/slice"
)

// PageSize is the number of rows on one directory page.
const PageSize = constants.DirectoryPageSize

// memoLimit bounds the number of cached filter results.
const memoLimit = 256

// # Filtering

// Filter holds the three directory predicates. Empty fields do not filter.
//
// Role matching is an exact, case-sensitive comparison with primary_role.
// MatchDescendants widens it to the named category and every category below it.
type Filter struct {
	Query            string
	Role             string
	Status           string
	MatchDescendants bool
}

// Haystack is the lowercase text a free-text query is matched against:
// name, aka, primary role, sub-category and tags, single-space separated.
func Haystack(profile catalog.Profile) string {
	parts := []string{profile.Name, profile.Aka, profile.PrimaryRole, profile.SubCategory, strings.Join(profile.Tags, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}

// Match returns the profiles satisfying every predicate, in input order.
//
// expand maps a role to its match set when MatchDescendants is set; it may be
// nil, in which case only the role itself matches.
func Match(profiles []catalog.Profile, filter Filter, expand func(string) []string) []catalog.Profile {
	query := strings.ToLower(filter.Query)

	roles := []string{filter.Role}
	if filter.MatchDescendants && filter.Role != "" && expand != nil {
		roles = expand(filter.Role)
	}

	return slice.Filter(profiles, func(profile catalog.Profile) bool {
		matchesSearch := query == "" || strings.Contains(Haystack(profile), query)
		matchesRole := filter.Role == "" || slices.Contains(roles, profile.PrimaryRole)
		matchesStatus := filter.Status == "" || string(profile.Status) == filter.Status

		return matchesSearch && matchesRole && matchesStatus
	})
}

// # Pagination

// Result is one rendered page of the directory.
type Result struct {
	Items      []catalog.Profile
	Total      int
	Page       int
	TotalPages int
}

// HasPrev reports whether the previous-page control is enabled.
func (r Result) HasPrev() bool {
	return r.Page > 1
}

// HasNext reports whether the next-page control is enabled.
func (r Result) HasNext() bool {
	return r.TotalPages > 0 && r.Page < r.TotalPages
}

// Empty reports whether no profile matched.
func (r Result) Empty() bool {
	return r.Total == 0
}

// Paginate cuts a page out of a filtered sequence.
//
// A page past the end is clamped to the last page; a page below 1 becomes 1.
func Paginate(filtered []catalog.Profile, page int) Result {
	totalPages := pagination.TotalPages(len(filtered), PageSize)

	page = max(page, 1)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	return Result{
		Items:      pagination.Window(filtered, page, PageSize),
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
	}
}

// # Controller

// Controller derives directory results from an immutable catalog.
//
// Filtered sets are memoised per [Filter]. The catalog never changes, so the
// cache is never invalidated; it is only cleared when it reaches its bound.
type Controller struct {
	catalog *catalog.Catalog

	mu   sync.Mutex
	memo map[Filter][]catalog.Profile
}

func NewController(c *catalog.Catalog) *Controller {
	return &Controller{
		catalog: c,
		memo:    make(map[Filter][]catalog.Profile),
	}
}

// Catalog returns the catalog the controller reads from.
func (controller *Controller) Catalog() *catalog.Catalog {
	return controller.catalog
}

// Filtered returns every profile matching filter, in catalog order.
func (controller *Controller) Filtered(filter Filter) []catalog.Profile {
	controller.mu.Lock()
	cached, found := controller.memo[filter]
	controller.mu.Unlock()

	if found {
		return cached
	}

	filtered := Match(controller.catalog.Profiles(), filter, controller.catalog.Descendants)

	controller.mu.Lock()
	if len(controller.memo) >= memoLimit {
		clear(controller.memo)
	}
	controller.memo[filter] = filtered
	controller.mu.Unlock()

	return filtered
}

// Derive computes the page shown for a state.
func (controller *Controller) Derive(state State) Result {
	result := Paginate(controller.Filtered(state.Filter()), state.Page)

	outcome := "matched"
	if result.Empty() {
		outcome = "empty"
	}
	metrics.DirectoryQueries.WithLabelValues(string(state.View), outcome).Inc()

	return result
}

// Selected resolves the open profile of a state.
func (controller *Controller) Selected(state State) (catalog.Profile, bool) {
	if state.Selected <= 0 {
		return catalog.Profile{}, false
	}
	return controller.catalog.Profile(state.Selected)
}
