package httpapi

import (
	"net/http"

	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

func NewFieldTemplateController(service usecases.FieldTemplateService, renderer render.Renderer) *FieldTemplateController {
	return &FieldTemplateController{
		service:  service,
		renderer: renderer,
	}
}

var _ httpserver.Controller = &FieldTemplateController{}

// FieldTemplateController manages the field library.
type FieldTemplateController struct {
	service  usecases.FieldTemplateService
	renderer render.Renderer
}

func (c *FieldTemplateController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /admin-panel/field-templates/{$}", httpserver.RequireSession(c.listFieldTemplates()))
	router.Handle("POST /admin-panel/field-templates/create/{$}", httpserver.RequireSession(c.createFieldTemplate()))
	router.Handle("GET /admin-panel/field-templates/{id}/edit/{$}", httpserver.RequireSession(c.editFieldTemplateForm()))
	router.Handle("POST /admin-panel/field-templates/{id}/edit/{$}", httpserver.RequireSession(c.updateFieldTemplate()))
	router.Handle("GET /admin-panel/field-templates/{id}/delete/{$}", httpserver.RequireSession(c.confirmDeleteFieldTemplate()))
	router.Handle("POST /admin-panel/field-templates/{id}/delete/{$}", httpserver.RequireSession(c.deleteFieldTemplate()))
}

func (c *FieldTemplateController) listFieldTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.renderList(w, r, http.StatusOK, "", nil)
	}
}

func (c *FieldTemplateController) createFieldTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httpserver.GetFormValue(r, "name")

		template, err := c.service.CreateFieldTemplate(r.Context(), name)
		if err != nil {
			if status, errs, ok := formFailure(err); ok {
				c.renderList(w, r, status, name, errs)
				return
			}
			renderFailure(w, r, c.renderer, "creating field template", err)
			return
		}

		httpserver.SetFlash(w, "Field \""+template.Name.String()+"\" added to the library.")
		httpserver.RedirectSeeOther(w, r, _fieldTemplatesPath)
	}
}

func (c *FieldTemplateController) renderList(w http.ResponseWriter, r *http.Request, status int, name string, errs map[string]string) {
	templates, err := c.service.ListFieldTemplates(r.Context())
	if err != nil {
		renderFailure(w, r, c.renderer, "listing field templates", err)
		return
	}

	c.renderer.Render(w, status, _fieldTemplateListView, newPage(w, r, map[string]any{
		"Templates": templates,
		"Name":      name,
		"Errors":    errs,
	}))
}

func (c *FieldTemplateController) editFieldTemplateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		template, err := c.service.GetFieldTemplate(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "getting field template", err)
			return
		}

		c.renderer.Render(w, http.StatusOK, _fieldTemplateFormView, newPage(w, r, map[string]any{
			"Template": template,
			"Name":     template.Name.String(),
		}))
	}
}

func (c *FieldTemplateController) updateFieldTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))
		name := httpserver.GetFormValue(r, "name")

		template, err := c.service.UpdateFieldTemplate(r.Context(), id, name)
		if err != nil {
			status, errs, ok := formFailure(err)
			if !ok {
				renderFailure(w, r, c.renderer, "updating field template", err)
				return
			}

			current, err := c.service.GetFieldTemplate(r.Context(), id)
			if err != nil {
				renderFailure(w, r, c.renderer, "getting field template", err)
				return
			}

			c.renderer.Render(w, status, _fieldTemplateFormView, newPage(w, r, map[string]any{
				"Template": current,
				"Name":     name,
				"Errors":   errs,
			}))
			return
		}

		httpserver.SetFlash(w, "Field \""+template.Name.String()+"\" updated.")
		httpserver.RedirectSeeOther(w, r, _fieldTemplatesPath)
	}
}

func (c *FieldTemplateController) confirmDeleteFieldTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		impact, err := c.service.GetDeletionImpact(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "getting field template deletion impact", err)
			return
		}

		c.renderer.Render(w, http.StatusOK, _fieldTemplateConfirmView, newPage(w, r, map[string]any{
			"Impact": impact,
		}))
	}
}

func (c *FieldTemplateController) deleteFieldTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		err := c.service.DeleteFieldTemplate(r.Context(), id)
		if err != nil {
			renderFailure(w, r, c.renderer, "deleting field template", err)
			return
		}

		httpserver.SetFlash(w, "Field template deleted.")
		httpserver.RedirectSeeOther(w, r, _fieldTemplatesPath)
	}
}
