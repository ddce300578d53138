package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/consignment/httpapi"
	"consignment-server/internal/consignment/usecases"
	shareddomain "consignment-server/internal/shared_kernel/domain"
	mockusecases "consignment-server/test/unit/doubles/consignment/usecases"
	mockrender "consignment-server/test/unit/doubles/infra/render"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FieldTemplateController", func() {
	var (
		ctrl         *gomock.Controller
		mockService  *mockusecases.MockFieldTemplateService
		mockRenderer *mockrender.MockRenderer
		router       *http.ServeMux
		recorder     *httptest.ResponseRecorder
		data         map[string]any
		weight       domain.FieldTemplate
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockFieldTemplateService(ctrl)
		mockRenderer = mockrender.NewMockRenderer(ctrl)
		router = http.NewServeMux()
		httpapi.NewFieldTemplateController(mockService, mockRenderer).AddRoutes(router)
		recorder = httptest.NewRecorder()
		data = nil
		weight = domain.FieldTemplate{ID: "t-1", Name: "weight"}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("lists the field library", func() {
		mockService.EXPECT().ListFieldTemplates(gomock.Any()).Return([]domain.FieldTemplate{weight}, nil)
		mockRenderer.EXPECT().
			Render(gomock.Any(), http.StatusOK, "admin/field_template_list", gomock.Any()).
			Do(captureData(&data))

		router.ServeHTTP(recorder, operatorGet("/admin-panel/field-templates/"))

		Expect(data).To(HaveKeyWithValue("Templates", []domain.FieldTemplate{weight}))
	})

	Context("creating", func() {
		It("redirects back to the library with a flash", func() {
			mockService.EXPECT().CreateFieldTemplate(gomock.Any(), "weight").Return(weight, nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/field-templates/create/", url.Values{"name": {"weight"}}))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/field-templates/"))
			Expect(recorder.Result().Cookies()).NotTo(BeEmpty())
		})

		It("redisplays the list with 422 and the field message on a validation error", func() {
			mockService.EXPECT().
				CreateFieldTemplate(gomock.Any(), "weight").
				Return(domain.FieldTemplate{}, usecases.NewValidationError(usecases.FieldName, "a field template with this name already exists"))
			mockService.EXPECT().ListFieldTemplates(gomock.Any()).Return([]domain.FieldTemplate{weight}, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusUnprocessableEntity, "admin/field_template_list", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorPost("/admin-panel/field-templates/create/", url.Values{"name": {"weight"}}))

			Expect(data).To(HaveKeyWithValue("Name", "weight"))
			Expect(data["Errors"]).To(HaveKeyWithValue("name", "a field template with this name already exists"))
		})

		It("redisplays with 409 when the store reports a conflict", func() {
			mockService.EXPECT().
				CreateFieldTemplate(gomock.Any(), "weight").
				Return(domain.FieldTemplate{}, usecases.ErrConflict)
			mockService.EXPECT().ListFieldTemplates(gomock.Any()).Return(nil, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusConflict, "admin/field_template_list", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorPost("/admin-panel/field-templates/create/", url.Values{"name": {"weight"}}))

			Expect(data["Errors"]).To(HaveKey("_form"))
		})
	})

	Context("editing", func() {
		It("pre-fills the form with the current name", func() {
			mockService.EXPECT().GetFieldTemplate(gomock.Any(), shareddomain.ID("t-1")).Return(weight, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "admin/field_template_form", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorGet("/admin-panel/field-templates/t-1/edit/"))

			Expect(data).To(HaveKeyWithValue("Name", "weight"))
		})

		It("renames and redirects", func() {
			mockService.EXPECT().
				UpdateFieldTemplate(gomock.Any(), shareddomain.ID("t-1"), "mass").
				Return(domain.FieldTemplate{ID: "t-1", Name: "mass"}, nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/field-templates/t-1/edit/", url.Values{"name": {"mass"}}))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
		})

		It("keeps the submitted name when the rename is rejected", func() {
			mockService.EXPECT().
				UpdateFieldTemplate(gomock.Any(), shareddomain.ID("t-1"), "").
				Return(domain.FieldTemplate{}, usecases.NewValidationError(usecases.FieldName, "name is required"))
			mockService.EXPECT().GetFieldTemplate(gomock.Any(), shareddomain.ID("t-1")).Return(weight, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusUnprocessableEntity, "admin/field_template_form", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorPost("/admin-panel/field-templates/t-1/edit/", url.Values{"name": {""}}))

			Expect(data).To(HaveKeyWithValue("Name", ""))
			Expect(data).To(HaveKeyWithValue("Template", weight))
		})

		It("answers 404 for an unknown template", func() {
			mockService.EXPECT().
				UpdateFieldTemplate(gomock.Any(), shareddomain.ID("missing"), "mass").
				Return(domain.FieldTemplate{}, usecases.ErrFieldTemplateNotFound)
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusNotFound, "errors/not_found", gomock.Any())

			router.ServeHTTP(recorder, operatorPost("/admin-panel/field-templates/missing/edit/", url.Values{"name": {"mass"}}))
		})
	})

	Context("deleting", func() {
		It("shows the cascade impact before deleting", func() {
			impact := domain.FieldTemplateDeletionImpact{Template: weight, MeasurementCount: 3, ConsignmentCount: 2}
			mockService.EXPECT().GetDeletionImpact(gomock.Any(), shareddomain.ID("t-1")).Return(impact, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "admin/field_template_confirm_delete", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorGet("/admin-panel/field-templates/t-1/delete/"))

			Expect(data).To(HaveKeyWithValue("Impact", impact))
		})

		It("deletes and redirects to the library", func() {
			mockService.EXPECT().DeleteFieldTemplate(gomock.Any(), shareddomain.ID("t-1")).Return(nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/field-templates/t-1/delete/", nil))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/field-templates/"))
		})

		It("renders the error page when deletion fails", func() {
			mockService.EXPECT().DeleteFieldTemplate(gomock.Any(), shareddomain.ID("t-1")).Return(errors.New("boom"))
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusInternalServerError, "errors/error", gomock.Any())

			router.ServeHTTP(recorder, operatorPost("/admin-panel/field-templates/t-1/delete/", nil))
		})
	})
})
