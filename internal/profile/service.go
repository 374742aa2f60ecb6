// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/directory"
	"github.com/taibuivan/somalitag/internal/platform/apperr"
	"github.com/taibuivan/somalitag/internal/platform/validate"
	"github.com/taibuivan/somalitag/pkg/pagination"
	"github.com/taibuivan/somalitag/pkg/slice"
)

// maxQueryLength bounds free-text input.
const maxQueryLength = 200

// Service answers read queries over the loaded catalog.
type Service struct {
	controller *directory.Controller
	logger     *slog.Logger
}

func NewService(controller *directory.Controller, logger *slog.Logger) *Service {
	return &Service{
		controller: controller,
		logger:     logger,
	}
}

// List returns one page of profiles matching the filter, plus the total match count.
func (service *Service) List(_ context.Context, filter ListFilter, params pagination.Params) ([]catalog.Profile, int, error) {
	validator := &validate.Validator{}
	validator.MaxLen("q", filter.Query, maxQueryLength)
	if filter.Status != "" {
		validator.OneOf("status", filter.Status, string(catalog.StatusAlive), string(catalog.StatusDeceased))
	}
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	matches := service.controller.Filtered(filter.Filter)
	if len(filter.Tags) > 0 {
		matches = slice.Filter(matches, func(p catalog.Profile) bool {
			return hasAllTags(p, filter.Tags)
		})
	}

	return pagination.Window(matches, params.Page, params.Limit), len(matches), nil
}

// Get resolves a profile by numeric id or slug.
func (service *Service) Get(_ context.Context, identifier string) (*catalog.Profile, error) {
	c := service.controller.Catalog()

	if id, err := strconv.Atoi(identifier); err == nil {
		if p, ok := c.Profile(id); ok {
			return &p, nil
		}
		return nil, apperr.NotFound("Profile")
	}

	if p, ok := c.ProfileBySlug(strings.ToLower(identifier)); ok {
		return &p, nil
	}
	return nil, apperr.NotFound("Profile")
}

// Search matches free text across every profile, ignoring role and status.
func (service *Service) Search(ctx context.Context, query string, params pagination.Params) ([]Summary, int, error) {
	validator := &validate.Validator{}
	validator.Required("q", query).MaxLen("q", query, maxQueryLength)
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	matches, total, err := service.List(ctx, ListFilter{Filter: directory.Filter{Query: query}}, params)
	if err != nil {
		return nil, 0, err
	}

	service.logger.Debug("profile_search",
		slog.String("query", query),
		slog.Int("total", total),
	)

	return slice.Map(matches, Summarize), total, nil
}

// CategoryTree returns the category forest.
func (service *Service) CategoryTree(_ context.Context) []*catalog.CategoryNode {
	return service.controller.Catalog().CategoryTree()
}

// Tags returns the tag vocabulary.
func (service *Service) Tags(_ context.Context) []catalog.Tag {
	return service.controller.Catalog().Tags()
}

func hasAllTags(p catalog.Profile, wanted []string) bool {
	for _, tag := range wanted {
		found := false
		for _, have := range p.Tags {
			if strings.EqualFold(have, tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
