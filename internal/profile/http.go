// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile provides the read-only JSON API over the profile catalog.

# Routes

  - GET /profiles               Paginated listing (q, role, status, tags, descendants, page, limit)
  - GET /profiles/{identifier}  Full profile by numeric id or slug
  - GET /search                 Free-text search across all profiles
  - GET /categories             Category tree
  - GET /tags                   Tag vocabulary
*/
package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/somalitag/internal/directory"
	requestutil "github.com/taibuivan/somalitag/internal/platform/request"
	"github.com/taibuivan/somalitag/internal/platform/respond"
	"github.com/taibuivan/somalitag/pkg/convert"
	"github.com/taibuivan/somalitag/pkg/pagination"
	"github.com/taibuivan/somalitag/pkg/query"
)

// # Handler Implementation

// Handler translates HTTP requests into [Service] calls.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/profiles", handler.listProfiles)
	router.Get("/profiles/{identifier}", handler.getProfile)
	router.Get("/search", handler.search)
	router.Get("/categories", handler.listCategories)
	router.Get("/tags", handler.listTags)
}

func (handler *Handler) listProfiles(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	params := pagination.FromRequest(request)

	// Tags accept both ?tags=a,b and ?tags=a&tags=b.
	var tags []string
	for _, raw := range values["tags"] {
		tags = append(tags, query.StringSlice(raw)...)
	}

	filter := ListFilter{
		Filter: directory.Filter{
			Query:  values.Get(directory.ParamQuery),
			Role:   values.Get(directory.ParamRole),
			Status: values.Get(directory.ParamStatus),
			// descendants=true widens role to the whole category subtree.
			MatchDescendants: convert.ToBool(values.Get("descendants")),
		},
		Tags: tags,
	}

	profiles, total, err := handler.service.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, profiles, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.Get(request.Context(), requestutil.ID(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	results, total, err := handler.service.Search(request.Context(), request.URL.Query().Get(directory.ParamQuery), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, results, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.CategoryTree(request.Context()))
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Tags(request.Context()))
}
