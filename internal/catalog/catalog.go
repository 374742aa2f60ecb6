// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds the immutable directory of profiles, categories and tags.

A [Catalog] is built once at startup from a [Source] (the shipped dataset, a
YAML file, or a Postgres snapshot), validated, and then shared read-only for
the lifetime of the process. Nothing in the package mutates a catalog after
[New] returns.

# Invariants

  - Profile ids are positive and unique.
  - Profile status is exactly one of [StatusAlive] or [StatusDeceased].
  - Tags, Media, Relations and Sections are never nil.
  - Slugs are derived from names when absent and are unique per collection.
  - Category parent references resolve and contain no cycles.
*/
package catalog

import (
	"fmt"
	"slices"

	"github.com/taibuivan/somalitag/internal/platform/validate"
	"github.com/taibuivan/somalitag/pkg/slug"
)

// Dataset is the raw, unvalidated content of a catalog as authored.
type Dataset struct {
	Profiles   []Profile  `json:"profiles"   yaml:"profiles"`
	Categories []Category `json:"categories" yaml:"categories"`
	Tags       []Tag      `json:"tags"       yaml:"tags"`
}

// Catalog is the validated, read-only directory.
type Catalog struct {
	profiles   []Profile
	categories []Category
	tags       []Tag

	profileByID   map[int]int
	profileBySlug map[string]int
	categoryByID  map[int]int
	childrenOf    map[int][]int
}

// New normalises and validates a dataset and returns the resulting catalog.
//
// The dataset is copied; later changes to it do not affect the catalog.
// All invariant violations are reported together as a single VALIDATION_ERROR.
func New(dataset Dataset) (*Catalog, error) {
	catalog := &Catalog{
		profiles:      append(make([]Profile, 0, len(dataset.Profiles)), dataset.Profiles...),
		categories:    append(make([]Category, 0, len(dataset.Categories)), dataset.Categories...),
		tags:          append(make([]Tag, 0, len(dataset.Tags)), dataset.Tags...),
		profileByID:   make(map[int]int, len(dataset.Profiles)),
		profileBySlug: make(map[string]int, len(dataset.Profiles)),
		categoryByID:  make(map[int]int, len(dataset.Categories)),
		childrenOf:    make(map[int][]int),
	}

	v := &validate.Validator{}
	catalog.indexProfiles(v)
	catalog.indexCategories(v)
	catalog.indexTags(v)

	if err := v.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}

// # Indexing

func (c *Catalog) indexProfiles(v *validate.Validator) {
	slugs := slug.Set{}

	// Explicit slugs are claimed first so derived ones number around them.
	for _, profile := range c.profiles {
		if profile.Slug != "" {
			slugs.Add(profile.Slug)
		}
	}

	for i := range c.profiles {
		profile := &c.profiles[i]
		field := fmt.Sprintf("profiles[%d]", i)

		profile.normalize()
		if profile.Slug == "" {
			profile.Slug = slugs.Unique(slug.From(profile.Name))
		}

		_, duplicateID := c.profileByID[profile.ID]
		_, duplicateSlug := c.profileBySlug[profile.Slug]

		v.Custom(field+".id", profile.ID <= 0, "Profile id must be positive").
			Custom(field+".id", duplicateID, fmt.Sprintf("Duplicate profile id %d", profile.ID)).
			Required(field+".name", profile.Name).
			Custom(field+".status", !profile.Status.Valid(), "Status must be Alive or Deceased").
			Slug(field+".slug", profile.Slug).
			Custom(field+".slug", duplicateSlug, fmt.Sprintf("Duplicate profile slug %q", profile.Slug))

		if !duplicateID {
			c.profileByID[profile.ID] = i
		}
		if !duplicateSlug {
			c.profileBySlug[profile.Slug] = i
		}
	}
}

func (c *Catalog) indexCategories(v *validate.Validator) {
	names := make(map[string]bool, len(c.categories))

	for i := range c.categories {
		category := &c.categories[i]
		field := fmt.Sprintf("categories[%d]", i)

		if category.Slug == "" {
			category.Slug = slug.From(category.Name)
		}

		_, duplicateID := c.categoryByID[category.ID]

		v.Custom(field+".id", duplicateID, fmt.Sprintf("Duplicate category id %d", category.ID)).
			Required(field+".name", category.Name).
			Custom(field+".name", names[category.Name], fmt.Sprintf("Duplicate category %q", category.Name)).
			Slug(field+".slug", category.Slug)

		names[category.Name] = true
		if !duplicateID {
			c.categoryByID[category.ID] = i
		}
	}

	for i, category := range c.categories {
		if category.ParentID == nil {
			continue
		}

		field := fmt.Sprintf("categories[%d].parent_id", i)
		parent, found := c.categoryByID[*category.ParentID]

		v.Custom(field, !found, fmt.Sprintf("Unknown parent category %d", *category.ParentID)).
			Custom(field, found && c.hasCycle(i), "Category hierarchy contains a cycle")

		if found {
			c.childrenOf[c.categories[parent].ID] = append(c.childrenOf[c.categories[parent].ID], i)
		}
	}
}

// hasCycle follows parent links from the category at index start.
func (c *Catalog) hasCycle(start int) bool {
	seen := map[int]bool{}
	current := start

	for {
		if seen[current] {
			return true
		}
		seen[current] = true

		parentID := c.categories[current].ParentID
		if parentID == nil {
			return false
		}

		next, found := c.categoryByID[*parentID]
		if !found {
			return false
		}
		current = next
	}
}

func (c *Catalog) indexTags(v *validate.Validator) {
	names := make(map[string]bool, len(c.tags))

	for i := range c.tags {
		tag := &c.tags[i]
		field := fmt.Sprintf("tags[%d]", i)

		if tag.Slug == "" {
			tag.Slug = slug.From(tag.Name)
		}

		v.Required(field+".name", tag.Name).
			Custom(field+".name", names[tag.Name], fmt.Sprintf("Duplicate tag %q", tag.Name)).
			Slug(field+".slug", tag.Slug)

		names[tag.Name] = true
	}
}

// # Read Access

// Profiles returns every profile in catalog order.
//
// The slice is a copy. Nested collections are shared and must be treated as read-only.
func (c *Catalog) Profiles() []Profile {
	return slices.Clone(c.profiles)
}

// Profile returns the profile with the given id.
func (c *Catalog) Profile(id int) (Profile, bool) {
	index, found := c.profileByID[id]
	if !found {
		return Profile{}, false
	}
	return c.profiles[index], true
}

// ProfileBySlug returns the profile with the given slug.
func (c *Catalog) ProfileBySlug(s string) (Profile, bool) {
	index, found := c.profileBySlug[s]
	if !found {
		return Profile{}, false
	}
	return c.profiles[index], true
}

// Categories returns every category in authoring order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// TopLevelCategories returns the names of root categories in authoring order.
func (c *Catalog) TopLevelCategories() []string {
	names := make([]string, 0, len(c.categories))
	for _, category := range c.categories {
		if category.IsRoot() {
			names = append(names, category.Name)
		}
	}
	return names
}

// CategoryTree returns the root categories with their descendants attached.
func (c *Catalog) CategoryTree() []*CategoryNode {
	roots := make([]*CategoryNode, 0)
	for i, category := range c.categories {
		if category.IsRoot() {
			roots = append(roots, c.buildNode(i))
		}
	}
	return roots
}

func (c *Catalog) buildNode(index int) *CategoryNode {
	node := &CategoryNode{Category: c.categories[index], Children: make([]*CategoryNode, 0)}
	for _, child := range c.childrenOf[node.ID] {
		node.Children = append(node.Children, c.buildNode(child))
	}
	return node
}

// Descendants returns name followed by the names of every category below it.
//
// A name that is not a known category yields just itself, so callers can use
// the result as a match set for free-text roles.
func (c *Catalog) Descendants(name string) []string {
	result := []string{name}

	for i, category := range c.categories {
		if category.Name != name {
			continue
		}

		queue := slices.Clone(c.childrenOf[c.categories[i].ID])
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]

			result = append(result, c.categories[next].Name)
			queue = append(queue, c.childrenOf[c.categories[next].ID]...)
		}
		break
	}

	return result
}

// Tags returns the tag vocabulary in authoring order.
func (c *Catalog) Tags() []Tag {
	return slices.Clone(c.tags)
}

// TagNames returns the tag vocabulary as plain names.
func (c *Catalog) TagNames() []string {
	names := make([]string, len(c.tags))
	for i, tag := range c.tags {
		names[i] = tag.Name
	}
	return names
}

// Counts returns the number of profiles, top-level categories and tags.
func (c *Catalog) Counts() Counts {
	return Counts{
		Profiles:   len(c.profiles),
		Categories: len(c.TopLevelCategories()),
		Tags:       len(c.tags),
	}
}

// Dataset returns a copy of the catalog content, suitable for export.
func (c *Catalog) Dataset() Dataset {
	return Dataset{
		Profiles:   c.Profiles(),
		Categories: c.Categories(),
		Tags:       c.Tags(),
	}
}
