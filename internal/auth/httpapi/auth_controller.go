package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"consignment-server/internal/auth/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

const (
	DashboardPath = "/admin-panel/"

	_loginView = "auth/login"
	_errorView = "errors/error"

	invalidCredentialsErrMessage = "Invalid username or password."
	loginFailedErrMessage        = "Login failed, please try again."
	loggedOutMessage             = "You have been logged out."
)

func NewAuthController(service usecases.AuthService, renderer render.Renderer) *AuthController {
	return &AuthController{
		service:  service,
		renderer: renderer,
	}
}

var _ httpserver.Controller = &AuthController{}

type AuthController struct {
	service  usecases.AuthService
	renderer render.Renderer
}

func (c *AuthController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /auth/login", c.loginForm())
	router.Handle("POST /auth/login", c.login())
	router.Handle("POST /auth/logout", c.logout())
}

func (c *AuthController) loginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next := httpserver.GetQueryParam(r, "next")

		if _, ok := shareddomain.SessionFromContext(r.Context()); ok {
			httpserver.RedirectSeeOther(w, r, httpserver.SafeRedirectTarget(next, DashboardPath))
			return
		}

		c.renderer.Render(w, http.StatusOK, _loginView, map[string]any{
			"Next":  next,
			"Flash": httpserver.PopFlash(w, r),
		})
	}
}

func (c *AuthController) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimSpace(httpserver.GetFormValue(r, "username"))
		password := httpserver.GetFormValue(r, "password")
		next := httpserver.GetFormValue(r, "next")

		issued, err := c.service.Authenticate(r.Context(), username, password)
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			slog.Warn("failed login attempt", slog.String("username", username))
			c.renderer.Render(w, http.StatusUnauthorized, _loginView, map[string]any{
				"Error":    invalidCredentialsErrMessage,
				"Username": username,
				"Next":     next,
			})
			return
		}
		if err != nil {
			slog.Error("authenticating operator", slog.String("error", err.Error()))
			c.renderer.Render(w, http.StatusInternalServerError, _errorView, map[string]any{
				"Message": loginFailedErrMessage,
			})
			return
		}

		setSessionCookie(w, issued.Token, issued.Session.ExpiresAt)
		slog.Info("operator logged in", slog.String("username", issued.Session.Username))
		httpserver.RedirectSeeOther(w, r, httpserver.SafeRedirectTarget(next, DashboardPath))
	}
}

func (c *AuthController) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w)
		httpserver.SetFlash(w, loggedOutMessage)
		httpserver.RedirectSeeOther(w, r, "/")
	}
}
