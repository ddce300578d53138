package httpapi

import (
	"net/http"

	"consignment-server/internal/consignment/httpapi/internal"
	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

func NewMeasurementController(
	service usecases.MeasurementService,
	consignmentService usecases.ConsignmentService,
	templateService usecases.FieldTemplateService,
	renderer render.Renderer,
) *MeasurementController {
	return &MeasurementController{
		service:            service,
		consignmentService: consignmentService,
		templateService:    templateService,
		renderer:           renderer,
	}
}

var _ httpserver.Controller = &MeasurementController{}

type MeasurementController struct {
	service            usecases.MeasurementService
	consignmentService usecases.ConsignmentService
	templateService    usecases.FieldTemplateService
	renderer           render.Renderer
}

func (c *MeasurementController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /admin-panel/consignments/{id}/measurements/add/{$}", httpserver.RequireSession(c.addMeasurementForm()))
	router.Handle("POST /admin-panel/consignments/{id}/measurements/add/{$}", httpserver.RequireSession(c.addMeasurement()))
	router.Handle("GET /admin-panel/measurements/{id}/edit/{$}", httpserver.RequireSession(c.editMeasurementForm()))
	router.Handle("POST /admin-panel/measurements/{id}/edit/{$}", httpserver.RequireSession(c.updateMeasurement()))
	router.Handle("GET /admin-panel/measurements/{id}/delete/{$}", httpserver.RequireSession(c.confirmDeleteMeasurement()))
	router.Handle("POST /admin-panel/measurements/{id}/delete/{$}", httpserver.RequireSession(c.deleteMeasurement()))
}

func (c *MeasurementController) addMeasurementForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consignmentID := shareddomain.ID(r.PathValue("id"))
		c.renderAddForm(w, r, http.StatusOK, consignmentID, usecases.MeasurementInput{}, nil)
	}
}

func (c *MeasurementController) addMeasurement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consignmentID := shareddomain.ID(r.PathValue("id"))
		if err := r.ParseForm(); err != nil {
			renderBadForm(w, r, c.renderer)
			return
		}
		input := internal.ParseMeasurementInput(r.PostForm)

		_, err := c.service.AddMeasurement(r.Context(), consignmentID, input)
		if err != nil {
			if status, errs, ok := formFailure(err); ok {
				c.renderAddForm(w, r, status, consignmentID, input, errs)
				return
			}
			renderFailure(w, r, c.renderer, "adding measurement", err)
			return
		}

		httpserver.SetFlash(w, "Measurement added.")
		httpserver.RedirectSeeOther(w, r, consignmentEditPath(consignmentID))
	}
}

func (c *MeasurementController) renderAddForm(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	consignmentID shareddomain.ID,
	input usecases.MeasurementInput,
	errs map[string]string,
) {
	consignment, err := c.consignmentService.GetConsignment(r.Context(), consignmentID)
	if err != nil {
		renderFailure(w, r, c.renderer, "getting consignment", err)
		return
	}

	templates, err := c.templateService.ListFieldTemplates(r.Context())
	if err != nil {
		renderFailure(w, r, c.renderer, "listing field templates", err)
		return
	}

	c.renderer.Render(w, status, _addMeasurementView, newPage(w, r, map[string]any{
		"Consignment": consignment,
		"Templates":   templates,
		"Input":       input,
		"Errors":      errs,
	}))
}

func (c *MeasurementController) editMeasurementForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))
		c.renderEditForm(w, r, http.StatusOK, id, nil, nil)
	}
}

func (c *MeasurementController) updateMeasurement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))
		if err := r.ParseForm(); err != nil {
			renderBadForm(w, r, c.renderer)
			return
		}
		input := internal.ParseMeasurementInput(r.PostForm)

		measurement, err := c.service.UpdateMeasurement(r.Context(), id, input)
		if err != nil {
			if status, errs, ok := formFailure(err); ok {
				c.renderEditForm(w, r, status, id, &input, errs)
				return
			}
			renderFailure(w, r, c.renderer, "updating measurement", err)
			return
		}

		httpserver.SetFlash(w, "Measurement updated.")
		httpserver.RedirectSeeOther(w, r, consignmentEditPath(measurement.ConsignmentID))
	}
}

// renderEditForm shows the stored values unless a rejected submission is given.
func (c *MeasurementController) renderEditForm(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	id shareddomain.ID,
	submitted *usecases.MeasurementInput,
	errs map[string]string,
) {
	detail, err := c.service.GetMeasurement(r.Context(), id)
	if err != nil {
		renderFailure(w, r, c.renderer, "getting measurement", err)
		return
	}

	templates, err := c.templateService.ListFieldTemplates(r.Context())
	if err != nil {
		renderFailure(w, r, c.renderer, "listing field templates", err)
		return
	}

	input := internal.MeasurementInputFrom(detail.Measurement)
	if submitted != nil {
		input = *submitted
	}

	c.renderer.Render(w, status, _measurementEditView, newPage(w, r, map[string]any{
		"Measurement": detail,
		"Templates":   templates,
		"Input":       input,
		"Errors":      errs,
	}))
}

func (c *MeasurementController) confirmDeleteMeasurement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		detail, err := c.service.GetMeasurement(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "getting measurement", err)
			return
		}

		c.renderer.Render(w, http.StatusOK, _measurementConfirmView, newPage(w, r, map[string]any{
			"Measurement": detail,
		}))
	}
}

func (c *MeasurementController) deleteMeasurement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		detail, err := c.service.GetMeasurement(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "getting measurement", err)
			return
		}

		if err := c.service.DeleteMeasurement(r.Context(), id); err != nil {
			renderFailure(w, r, c.renderer, "deleting measurement", err)
			return
		}

		httpserver.SetFlash(w, "Measurement deleted.")
		httpserver.RedirectSeeOther(w, r, consignmentEditPath(detail.Measurement.ConsignmentID))
	}
}
