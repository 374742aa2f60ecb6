// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package web serves the server-rendered directory UI.

Every piece of view state (tab, query, role, status, page, open profile) lives
in the URL, so each screen is reachable by link and survives a reload. Theme
and language are persisted through a [preference.Backend].

# Routes

  - GET  /                      Directory, taxonomy and API views
  - POST /preferences/theme     Persist the color scheme
  - POST /preferences/language  Persist the UI language
  - GET  /static/*              Stylesheet and script
*/
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/directory"
	"github.com/taibuivan/somalitag/internal/i18n"
	"github.com/taibuivan/somalitag/internal/platform/apperr"
	"github.com/taibuivan/somalitag/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/somalitag/internal/platform/request"
	"github.com/taibuivan/somalitag/internal/platform/respond"
	"github.com/taibuivan/somalitag/internal/preference"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Form fields of the preference endpoints.
const (
	fieldTheme    = "theme"
	fieldLanguage = "language"
	fieldReturn   = "return"
)

// # Handler Implementation

// Handler renders the directory UI.
type Handler struct {
	controller *directory.Controller
	backend    preference.Backend
	templates  *template.Template
	logger     *slog.Logger
	now        func() time.Time
}

// NewHandler parses the embedded templates and returns a ready [Handler].
func NewHandler(controller *directory.Controller, backend preference.Backend, logger *slog.Logger) (*Handler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}

	return &Handler{
		controller: controller,
		backend:    backend,
		templates:  templates,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// RegisterRoutes mounts the UI on the router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	static, _ := fs.Sub(staticFS, "static")

	router.Get("/", handler.index)
	router.Post("/preferences/theme", handler.setTheme)
	router.Post("/preferences/language", handler.setLanguage)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	router.NotFound(handler.notFound)
}

// # Directory

func (handler *Handler) index(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	state := directory.Decode(query)
	prefs := preference.Load(request.Context(), handler.backend.Open(writer, request))

	scroll := &directory.BodyScroll{}
	overlay := directory.NewOverlay(scroll)
	defer overlay.Teardown()

	if profile, ok := handler.controller.Selected(state); ok {
		overlay.Open(profile)
	}

	// Key presses arrive as a one-shot parameter and are folded back into a clean URL.
	if key := query.Get(directory.ParamKey); key != "" {
		if overlay.HandleKey(key) {
			state = state.Close()
		}
		http.Redirect(writer, request, state.URL(), http.StatusSeeOther)
		return
	}

	var selected *catalog.Profile
	if profile, ok := overlay.Profile(); ok {
		selected = &profile
	}

	view := buildPage(handler.controller, state, prefs.Settings(), selected, scroll.Locked(), handler.now().Year())
	handler.render(writer, request, http.StatusOK, "index", view)
}

func (handler *Handler) notFound(writer http.ResponseWriter, request *http.Request) {
	if strings.HasPrefix(request.URL.Path, "/api/") {
		respond.Error(writer, request, apperr.NotFound("Route"))
		return
	}

	prefs := preference.Load(request.Context(), handler.backend.Open(writer, request))
	view := buildPage(handler.controller, directory.DefaultState(), prefs.Settings(), nil, false, handler.now().Year())
	handler.render(writer, request, http.StatusNotFound, "notfound", view)
}

// # Preferences

func (handler *Handler) setTheme(writer http.ResponseWriter, request *http.Request) {
	prefs := preference.Load(request.Context(), handler.backend.Open(writer, request))

	theme := preference.Theme(requestutil.FormValue(request, fieldTheme))
	if err := prefs.SetTheme(request.Context(), theme); err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.Redirect(writer, request, requestutil.ReturnPath(request, fieldReturn), http.StatusSeeOther)
}

func (handler *Handler) setLanguage(writer http.ResponseWriter, request *http.Request) {
	prefs := preference.Load(request.Context(), handler.backend.Open(writer, request))

	language := i18n.Language(requestutil.FormValue(request, fieldLanguage))
	if err := prefs.SetLanguage(request.Context(), language); err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.Redirect(writer, request, requestutil.ReturnPath(request, fieldReturn), http.StatusSeeOther)
}

// # Rendering

// render executes a template into a buffer so a failure never leaves a half-written page.
func (handler *Handler) render(writer http.ResponseWriter, request *http.Request, status int, name string, view page) {
	var buffer bytes.Buffer
	if err := handler.templates.ExecuteTemplate(&buffer, name, view); err != nil {
		handler.logger.Error("template_render_failed",
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.String("template", name),
			slog.Any("error", err),
		)
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.Header().Set("Content-Language", view.Presentation.Lang)
	writer.Header().Set("Cache-Control", "no-store")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}
