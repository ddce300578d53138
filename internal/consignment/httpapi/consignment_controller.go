package httpapi

import (
	"net/http"

	"consignment-server/internal/consignment/httpapi/internal"
	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

func NewConsignmentController(
	service usecases.ConsignmentService,
	workflow usecases.CreationWorkflowService,
	renderer render.Renderer,
) *ConsignmentController {
	return &ConsignmentController{
		service:  service,
		workflow: workflow,
		renderer: renderer,
	}
}

var _ httpserver.Controller = &ConsignmentController{}

// ConsignmentController is the operator side of the consignment registry,
// including the multi-field creation form.
type ConsignmentController struct {
	service  usecases.ConsignmentService
	workflow usecases.CreationWorkflowService
	renderer render.Renderer
}

func (c *ConsignmentController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /admin-panel/consignments/{$}", httpserver.RequireSession(c.listConsignments()))
	router.Handle("GET /admin-panel/consignments/create/{$}", httpserver.RequireSession(c.creationForm()))
	router.Handle("POST /admin-panel/consignments/create/{$}", httpserver.RequireSession(c.submitCreationForm()))
	router.Handle("GET /admin-panel/consignments/{id}/edit/{$}", httpserver.RequireSession(c.editConsignmentForm()))
	router.Handle("POST /admin-panel/consignments/{id}/edit/{$}", httpserver.RequireSession(c.updateConsignment()))
	router.Handle("GET /admin-panel/consignments/{id}/delete/{$}", httpserver.RequireSession(c.confirmDeleteConsignment()))
	router.Handle("POST /admin-panel/consignments/{id}/delete/{$}", httpserver.RequireSession(c.deleteConsignment()))
}

func (c *ConsignmentController) listConsignments() http.HandlerFunc {
	return listConsignmentsPage(c.service, c.renderer, _consignmentManageView)
}

func (c *ConsignmentController) creationForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.renderCreationForm(w, r, http.StatusOK, usecases.CreationSubmission{}, nil, nil)
	}
}

func (c *ConsignmentController) submitCreationForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderBadForm(w, r, c.renderer)
			return
		}

		submission := internal.ParseCreationSubmission(r.PostForm)

		consignment, err := c.workflow.SubmitCreationForm(r.Context(), submission)
		if err != nil {
			if status, errs, ok := formFailure(err); ok {
				c.renderCreationForm(w, r, status, submission, internal.FieldValues(r.PostForm), errs)
				return
			}
			renderFailure(w, r, c.renderer, "submitting creation form", err)
			return
		}

		httpserver.SetFlash(w, "Consignment \""+consignment.Name.String()+"\" created.")
		httpserver.RedirectSeeOther(w, r, consignmentEditPath(consignment.ID))
	}
}

func (c *ConsignmentController) renderCreationForm(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	submission usecases.CreationSubmission,
	values map[string]string,
	errs map[string]string,
) {
	form, err := c.workflow.BuildCreationForm(r.Context())
	if err != nil {
		renderFailure(w, r, c.renderer, "building creation form", err)
		return
	}

	if values == nil {
		values = map[string]string{}
	}

	rows := internal.NewFieldRows(form, submission)
	c.renderer.Render(w, status, _consignmentFormView, newPage(w, r, map[string]any{
		"Fields":         rows,
		"SelectedFields": internal.SelectedInputs(rows),
		"Values":         values,
		"Name":           submission.Name,
		"Errors":         errs,
	}))
}

func (c *ConsignmentController) editConsignmentForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		detail, err := c.service.GetConsignmentDetail(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "getting consignment detail", err)
			return
		}

		c.renderer.Render(w, http.StatusOK, _consignmentEditView, newPage(w, r, map[string]any{
			"Detail": detail,
			"Name":   detail.Consignment.Name.String(),
		}))
	}
}

func (c *ConsignmentController) updateConsignment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))
		name := httpserver.GetFormValue(r, "name")

		consignment, err := c.service.UpdateConsignment(r.Context(), id, name)
		if err != nil {
			status, errs, ok := formFailure(err)
			if !ok {
				renderFailure(w, r, c.renderer, "updating consignment", err)
				return
			}

			detail, err := c.service.GetConsignmentDetail(r.Context(), id)
			if err != nil {
				renderFailure(w, r, c.renderer, "getting consignment detail", err)
				return
			}

			c.renderer.Render(w, status, _consignmentEditView, newPage(w, r, map[string]any{
				"Detail": detail,
				"Name":   name,
				"Errors": errs,
			}))
			return
		}

		httpserver.SetFlash(w, "Consignment \""+consignment.Name.String()+"\" updated.")
		httpserver.RedirectSeeOther(w, r, consignmentEditPath(consignment.ID))
	}
}

func (c *ConsignmentController) confirmDeleteConsignment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		detail, err := c.service.GetConsignmentDetail(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "getting consignment detail", err)
			return
		}

		c.renderer.Render(w, http.StatusOK, _consignmentConfirmView, newPage(w, r, map[string]any{
			"Detail": detail,
		}))
	}
}

func (c *ConsignmentController) deleteConsignment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		err := c.service.DeleteConsignment(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "deleting consignment", err)
			return
		}

		httpserver.SetFlash(w, "Consignment deleted.")
		httpserver.RedirectSeeOther(w, r, _consignmentsPath)
	}
}
