// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// Category classifies a profile's primary role.
//
// Categories form a tree through ParentID. The shipped vocabulary is flat,
// so every shipped category is a root.
type Category struct {
	ID       int    `json:"id"        yaml:"id"`
	Name     string `json:"name"      yaml:"name"`
	Slug     string `json:"slug"      yaml:"slug,omitempty"`
	ParentID *int   `json:"parent_id" yaml:"parent_id,omitempty"`
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryNode is a category together with its direct children.
type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children"`
}

// Tag is a free-text discovery label. Membership in [Profile.Tags] is by name.
type Tag struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug,omitempty"`
}

// Counts summarises the size of a catalog.
type Counts struct {
	Profiles   int `json:"profiles"`
	Categories int `json:"categories"`
	Tags       int `json:"tags"`
}
