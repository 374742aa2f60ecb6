// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/somalitag/internal/platform/constants"
	"github.com/taibuivan/somalitag/internal/platform/ctxutil"
)

// VisitorID issues an anonymous visitor cookie and puts its value in the request context.
//
// A missing or malformed cookie is replaced with a fresh UUID.
func VisitorID(ttl time.Duration, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			visitor := ""
			if cookie, err := request.Cookie(constants.VisitorCookieName); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					visitor = cookie.Value
				}
			}

			if visitor == "" {
				visitor = uuid.NewString()
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.VisitorCookieName,
					Value:    visitor,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ctxutil.WithVisitorID(request.Context(), visitor)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
