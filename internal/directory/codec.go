// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"net/url"
	"strconv"

	"github.com/taibuivan/somalitag/pkg/convert"
)

// Query parameter names carrying the view state.
const (
	ParamView    = "view"
	ParamQuery   = "q"
	ParamRole    = "role"
	ParamStatus  = "status"
	ParamPage    = "page"
	ParamProfile = "profile"
	ParamKey     = "key"
)

// Decode rebuilds a state from query parameters.
//
// Decoding never fails: an unknown view becomes the profiles tab, a page
// below 1 or garbage becomes 1, and a non-positive profile id closes the overlay.
func Decode(values url.Values) State {
	state := DefaultState()

	if view := View(values.Get(ParamView)); view.Valid() {
		state.View = view
	}

	state.Query = values.Get(ParamQuery)
	state.Role = values.Get(ParamRole)
	state.Status = values.Get(ParamStatus)
	state.Page = max(convert.ToIntD(values.Get(ParamPage), 1), 1)
	state.Selected = max(convert.ToIntD(values.Get(ParamProfile), 0), 0)

	return state
}

// Values encodes the state, omitting parameters that hold their default.
func (s State) Values() url.Values {
	values := url.Values{}

	if s.View != "" && s.View != ViewProfiles {
		values.Set(ParamView, string(s.View))
	}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	if s.Role != "" {
		values.Set(ParamRole, s.Role)
	}
	if s.Status != "" {
		values.Set(ParamStatus, s.Status)
	}
	if s.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(s.Page))
	}
	if s.Selected > 0 {
		values.Set(ParamProfile, strconv.Itoa(s.Selected))
	}

	return values
}

// URL returns the root-relative link that reproduces the state.
func (s State) URL() string {
	encoded := s.Values().Encode()
	if encoded == "" {
		return "/"
	}
	return "/?" + encoded
}
