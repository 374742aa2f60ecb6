// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/directory"
)

// ListFilter narrows the profile listing.
type ListFilter struct {
	directory.Filter

	// Tags must all be present on a profile. Comparison ignores case.
	Tags []string
}

// Summary is the compact projection returned by search.
type Summary struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	IsVerified  bool           `json:"is_verified"`
	PrimaryRole string         `json:"primary_role"`
	SubCategory string         `json:"sub_category,omitempty"`
	Status      catalog.Status `json:"status"`
}

// Summarize projects a profile onto a [Summary].
func Summarize(p catalog.Profile) Summary {
	return Summary{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		IsVerified:  p.IsVerified,
		PrimaryRole: p.PrimaryRole,
		SubCategory: p.SubCategory,
		Status:      p.Status,
	}
}
