package httpserver

import (
	"net/http"
	"net/url"

	"consignment-server/internal/shared_kernel/domain"
)

const LoginPath = "/auth/login"

// RequireSession redirects anonymous requests to the login page before the
// wrapped handler runs.
func RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := domain.SessionFromContext(r.Context()); !ok {
			RedirectToLogin(w, r)
			return
		}

		next(w, r)
	}
}

func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	location := LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())

	if IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	RedirectSeeOther(w, r, location)
}
