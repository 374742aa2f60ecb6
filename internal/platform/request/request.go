// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
form handling patterns, ensuring consistent behaviour across handlers.
*/
package requestutil

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

/*
ID retrieves a named URL parameter (numeric ID or slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
FormValue returns the trimmed value of a submitted form field.
*/
func FormValue(request *http.Request, name string) string {
	return strings.TrimSpace(request.FormValue(name))
}

/*
ReturnPath reads a post-action redirect target from the named form field.

Only same-origin relative paths are accepted. Anything else (absolute URLs,
protocol-relative "//host" forms, empty values) resolves to "/".
*/
func ReturnPath(request *http.Request, name string) string {
	raw := FormValue(request, name)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return "/"
	}

	return parsed.RequestURI()
}
