package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

const (
	_publicListView   = "public/consignment_list"
	_publicDetailView = "public/consignment_detail"

	_dashboardView            = "admin/dashboard"
	_fieldTemplateListView    = "admin/field_template_list"
	_fieldTemplateFormView    = "admin/field_template_form"
	_fieldTemplateConfirmView = "admin/field_template_confirm_delete"
	_consignmentManageView    = "admin/consignment_manage"
	_consignmentFormView      = "admin/consignment_form"
	_consignmentEditView      = "admin/consignment_edit"
	_consignmentConfirmView   = "admin/consignment_confirm_delete"
	_addMeasurementView       = "admin/add_measurement"
	_measurementEditView      = "admin/measurement_edit"
	_measurementConfirmView   = "admin/measurement_confirm_delete"
	_fieldValueInputsFragment = "field_value_inputs"
	_notFoundView             = "errors/not_found"
	_errorView                = "errors/error"

	_formErrorKey = "_form"

	conflictErrMessage              = "A record with these values already exists."
	invalidFormErrMessage           = "The submitted form could not be read."
	consignmentNotFoundErrMessage   = "Consignment not found."
	fieldTemplateNotFoundErrMessage = "Field template not found."
	measurementNotFoundErrMessage   = "Measurement not found."
)

const (
	_fieldTemplatesPath = "/admin-panel/field-templates/"
	_consignmentsPath   = "/admin-panel/consignments/"
)

func consignmentEditPath(id shareddomain.ID) string {
	return _consignmentsPath + id.String() + "/edit/"
}

// newPage seeds the view data every page layout expects.
func newPage(w http.ResponseWriter, r *http.Request, data map[string]any) map[string]any {
	if data == nil {
		data = make(map[string]any)
	}

	if session, ok := shareddomain.SessionFromContext(r.Context()); ok {
		data["Operator"] = session.Username
	}

	if flash := httpserver.PopFlash(w, r); flash != "" {
		data["Flash"] = flash
	}

	return data
}

func notFoundMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, usecases.ErrConsignmentNotFound):
		return consignmentNotFoundErrMessage, true
	case errors.Is(err, usecases.ErrFieldTemplateNotFound):
		return fieldTemplateNotFoundErrMessage, true
	case errors.Is(err, usecases.ErrMeasurementNotFound):
		return measurementNotFoundErrMessage, true
	default:
		return "", false
	}
}

// renderFailure answers a lookup or store error with the not found or error page.
func renderFailure(w http.ResponseWriter, r *http.Request, renderer render.Renderer, action string, err error) {
	if message, ok := notFoundMessage(err); ok {
		renderer.Render(w, http.StatusNotFound, _notFoundView, newPage(w, r, map[string]any{
			"Message": message,
		}))
		return
	}

	slog.Error(action, slog.String("error", err.Error()))
	renderer.Render(w, http.StatusInternalServerError, _errorView, newPage(w, r, nil))
}

// formFailure maps a rejected submission to the status and field messages
// used to redisplay the form.
func formFailure(err error) (int, map[string]string, bool) {
	if validationErr, ok := usecases.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity, validationErr.Fields, true
	}

	if errors.Is(err, usecases.ErrConflict) {
		return http.StatusConflict, map[string]string{_formErrorKey: conflictErrMessage}, true
	}

	return 0, nil, false
}

func renderBadForm(w http.ResponseWriter, r *http.Request, renderer render.Renderer) {
	renderer.Render(w, http.StatusBadRequest, _errorView, newPage(w, r, map[string]any{
		"Message": invalidFormErrMessage,
	}))
}
