package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"consignment-server/internal/auth/usecases"
	"consignment-server/internal/infra/httpserver"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

const SessionCookieName = "session"

// NewSessionMiddleware attaches the session carried by the session cookie to the
// request context. Requests without a valid cookie continue anonymously.
func NewSessionMiddleware(service usecases.AuthService) httpserver.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := service.ResolveSession(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, usecases.ErrInvalidSession) {
					slog.Error("resolving session", slog.String("error", err.Error()))
				}
				clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(shareddomain.ContextWithSession(r.Context(), session)))
		})
	}
}

func setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
