package httpapi

import (
	"net/http"

	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
)

func NewDashboardController(service usecases.DashboardService, renderer render.Renderer) *DashboardController {
	return &DashboardController{
		service:  service,
		renderer: renderer,
	}
}

var _ httpserver.Controller = &DashboardController{}

type DashboardController struct {
	service  usecases.DashboardService
	renderer render.Renderer
}

func (c *DashboardController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /admin-panel/{$}", httpserver.RequireSession(c.getDashboard()))
}

func (c *DashboardController) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := c.service.GetDashboard(r.Context())
		if err != nil {
			renderFailure(w, r, c.renderer, "getting dashboard", err)
			return
		}

		c.renderer.Render(w, http.StatusOK, _dashboardView, newPage(w, r, map[string]any{
			"Dashboard": dashboard,
		}))
	}
}
