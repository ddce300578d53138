package httpapi

import (
	"net/http"

	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

func NewPublicController(service usecases.ConsignmentService, renderer render.Renderer) *PublicController {
	return &PublicController{
		service:  service,
		renderer: renderer,
	}
}

var _ httpserver.Controller = &PublicController{}

// PublicController serves the read-only consignment pages to visitors.
type PublicController struct {
	service  usecases.ConsignmentService
	renderer render.Renderer
}

func (c *PublicController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /{$}", c.listConsignments())
	router.Handle("GET /consignments/{id}", c.getConsignment())
}

func (c *PublicController) listConsignments() http.HandlerFunc {
	return listConsignmentsPage(c.service, c.renderer, _publicListView)
}

func (c *PublicController) getConsignment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		detail, err := c.service.GetConsignmentDetail(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "getting consignment detail", err)
			return
		}

		c.renderer.Render(w, http.StatusOK, _publicDetailView, newPage(w, r, map[string]any{
			"Detail": detail,
		}))
	}
}

// listConsignmentsPage renders a searchable, paginated consignment list into view.
func listConsignmentsPage(service usecases.ConsignmentService, renderer render.Renderer, view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := httpserver.GetQueryParam(r, "search")
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: paginationParams.Offset(),
		}

		consignments, total, err := service.ListConsignments(r.Context(), search, pagination)
		if err != nil {
			renderFailure(w, r, renderer, "listing consignments", err)
			return
		}

		renderer.Render(w, http.StatusOK, view, newPage(w, r, map[string]any{
			"Consignments": consignments,
			"Search":       search,
			"Pager":        httpserver.NewPager(paginationParams, total),
		}))
	}
}
