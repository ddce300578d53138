package httpapi

import (
	"log/slog"
	"net/http"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/consignment/httpapi/internal"
	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
)

func NewFieldToggleController(workflow usecases.CreationWorkflowService, renderer render.Renderer) *FieldToggleController {
	return &FieldToggleController{
		workflow: workflow,
		renderer: renderer,
	}
}

const loadFieldsErrMessage = "failed to load selected fields"

var _ httpserver.Controller = &FieldToggleController{}

// FieldToggleController answers the creation form's checkbox changes with the
// value inputs for the currently selected templates.
type FieldToggleController struct {
	workflow usecases.CreationWorkflowService
	renderer render.Renderer
}

func (c *FieldToggleController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /admin-panel/htmx/field-toggle/{$}", httpserver.RequireSession(c.toggleFields()))
}

func (c *FieldToggleController) toggleFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, invalidFormErrMessage, http.StatusBadRequest)
			return
		}

		templates, err := c.workflow.SelectedTemplates(r.Context(), internal.SelectedTemplateIDs(r.PostForm))
		if err != nil {
			slog.Error("loading selected templates", slog.String("error", err.Error()))
			http.Error(w, loadFieldsErrMessage, http.StatusInternalServerError)
			return
		}

		inputs := make([]domain.FieldInput, len(templates))
		for i, t := range templates {
			inputs[i] = domain.NewFieldInput(t)
		}

		c.renderer.RenderFragment(w, http.StatusOK, _fieldValueInputsFragment, map[string]any{
			"SelectedFields": inputs,
			"Values":         internal.FieldValues(r.PostForm),
		})
	}
}
