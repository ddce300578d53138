package httpapi_test

import (
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

var _ = Describe("MeasurementController", func() {
	var (
		ctrl             *gomock.Controller
		mockService      *mockusecases.MockMeasurementService
		mockConsignments *mockusecases.MockConsignmentService
		mockTemplates    *mockusecases.MockFieldTemplateService
		mockRenderer     *mockrender.MockRenderer
		router           *http.ServeMux
		recorder         *httptest.ResponseRecorder
		data             map[string]any
		abz              domain.Consignment
		weight           domain.FieldTemplate
		measurement      domain.MeasurementDetail
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockMeasurementService(ctrl)
		mockConsignments = mockusecases.NewMockConsignmentService(ctrl)
		mockTemplates = mockusecases.NewMockFieldTemplateService(ctrl)
		mockRenderer = mockrender.NewMockRenderer(ctrl)
		router = http.NewServeMux()
		httpapi.NewMeasurementController(mockService, mockConsignments, mockTemplates, mockRenderer).AddRoutes(router)
		recorder = httptest.NewRecorder()
		data = nil

		abz = domain.Consignment{ID: "c-1", Name: "ABZ"}
		weight = domain.FieldTemplate{ID: "t-1", Name: "weight"}
		measurement = domain.MeasurementDetail{
			Measurement: domain.Measurement{ID: "m-1", ConsignmentID: "c-1", Field: domain.ByTemplate{TemplateID: "t-1"}, Value: "10kg"},
			FieldName:   "weight",
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("adding", func() {
		It("renders an empty form for the consignment", func() {
			mockConsignments.EXPECT().GetConsignment(gomock.Any(), shareddomain.ID("c-1")).Return(abz, nil)
			mockTemplates.EXPECT().ListFieldTemplates(gomock.Any()).Return([]domain.FieldTemplate{weight}, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "admin/add_measurement", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorGet("/admin-panel/consignments/c-1/measurements/add/"))

			Expect(data).To(HaveKeyWithValue("Consignment", abz))
			Expect(data).To(HaveKeyWithValue("Input", usecases.MeasurementInput{}))
		})

		It("answers 404 when the consignment does not exist", func() {
			mockConsignments.EXPECT().
				GetConsignment(gomock.Any(), shareddomain.ID("missing")).
				Return(domain.Consignment{}, usecases.ErrConsignmentNotFound)
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusNotFound, "errors/not_found", gomock.Any())

			router.ServeHTTP(recorder, operatorGet("/admin-panel/consignments/missing/measurements/add/"))
		})

		It("adds a custom field measurement and returns to the consignment", func() {
			mockService.EXPECT().
				AddMeasurement(gomock.Any(), shareddomain.ID("c-1"), usecases.MeasurementInput{CustomFieldName: "color", Value: "blue"}).
				Return(domain.Measurement{ID: "m-2", ConsignmentID: "c-1"}, nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/c-1/measurements/add/", url.Values{
				"field_template_id": {""},
				"custom_field_name": {" color "},
				"value":             {"blue"},
			}))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/consignments/c-1/edit/"))
		})

		It("redisplays with 422 when both identities are given", func() {
			input := usecases.MeasurementInput{TemplateID: "t-1", CustomFieldName: "color", Value: "blue"}
			mockService.EXPECT().
				AddMeasurement(gomock.Any(), shareddomain.ID("c-1"), input).
				Return(domain.Measurement{}, usecases.NewValidationError(usecases.FieldIdentity, domain.ErrFieldIdentityAmbiguous.Error()))
			mockConsignments.EXPECT().GetConsignment(gomock.Any(), shareddomain.ID("c-1")).Return(abz, nil)
			mockTemplates.EXPECT().ListFieldTemplates(gomock.Any()).Return([]domain.FieldTemplate{weight}, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusUnprocessableEntity, "admin/add_measurement", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/c-1/measurements/add/", url.Values{
				"field_template_id": {"t-1"},
				"custom_field_name": {"color"},
				"value":             {"blue"},
			}))

			Expect(data).To(HaveKeyWithValue("Input", input))
			Expect(data["Errors"]).To(HaveKey("field"))
		})

		It("redisplays with 409 when the field is already recorded", func() {
			mockService.EXPECT().
				AddMeasurement(gomock.Any(), shareddomain.ID("c-1"), gomock.Any()).
				Return(domain.Measurement{}, usecases.ErrConflict)
			mockConsignments.EXPECT().GetConsignment(gomock.Any(), shareddomain.ID("c-1")).Return(abz, nil)
			mockTemplates.EXPECT().ListFieldTemplates(gomock.Any()).Return(nil, nil)
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusConflict, "admin/add_measurement", gomock.Any())

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/c-1/measurements/add/", url.Values{"field_template_id": {"t-1"}}))
		})
	})

	Context("editing", func() {
		It("pre-fills the form from the stored measurement", func() {
			mockService.EXPECT().GetMeasurement(gomock.Any(), shareddomain.ID("m-1")).Return(measurement, nil)
			mockTemplates.EXPECT().ListFieldTemplates(gomock.Any()).Return([]domain.FieldTemplate{weight}, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "admin/measurement_edit", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorGet("/admin-panel/measurements/m-1/edit/"))

			Expect(data).To(HaveKeyWithValue("Input", usecases.MeasurementInput{TemplateID: "t-1", Value: "10kg"}))
		})

		It("updates and returns to the owning consignment", func() {
			mockService.EXPECT().
				UpdateMeasurement(gomock.Any(), shareddomain.ID("m-1"), usecases.MeasurementInput{TemplateID: "t-1", Value: "12kg"}).
				Return(domain.Measurement{ID: "m-1", ConsignmentID: "c-1"}, nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/measurements/m-1/edit/", url.Values{
				"field_template_id": {"t-1"},
				"value":             {"12kg"},
			}))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/consignments/c-1/edit/"))
		})

		It("keeps the rejected submission on the redisplayed form", func() {
			submitted := usecases.MeasurementInput{Value: "12kg"}
			mockService.EXPECT().
				UpdateMeasurement(gomock.Any(), shareddomain.ID("m-1"), submitted).
				Return(domain.Measurement{}, usecases.NewValidationError(usecases.FieldIdentity, domain.ErrFieldIdentityRequired.Error()))
			mockService.EXPECT().GetMeasurement(gomock.Any(), shareddomain.ID("m-1")).Return(measurement, nil)
			mockTemplates.EXPECT().ListFieldTemplates(gomock.Any()).Return(nil, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusUnprocessableEntity, "admin/measurement_edit", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorPost("/admin-panel/measurements/m-1/edit/", url.Values{"value": {"12kg"}}))

			Expect(data).To(HaveKeyWithValue("Input", submitted))
		})
	})

	Context("deleting", func() {
		It("confirms with the measurement shown", func() {
			mockService.EXPECT().GetMeasurement(gomock.Any(), shareddomain.ID("m-1")).Return(measurement, nil)
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusOK, "admin/measurement_confirm_delete", gomock.Any())

			router.ServeHTTP(recorder, operatorGet("/admin-panel/measurements/m-1/delete/"))
		})

		It("deletes and returns to the owning consignment", func() {
			mockService.EXPECT().GetMeasurement(gomock.Any(), shareddomain.ID("m-1")).Return(measurement, nil)
			mockService.EXPECT().DeleteMeasurement(gomock.Any(), shareddomain.ID("m-1")).Return(nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/measurements/m-1/delete/", nil))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/consignments/c-1/edit/"))
		})

		It("answers 404 for an unknown measurement", func() {
			mockService.EXPECT().
				GetMeasurement(gomock.Any(), shareddomain.ID("missing")).
				Return(domain.MeasurementDetail{}, usecases.ErrMeasurementNotFound)
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusNotFound, "errors/not_found", gomock.Any())

			router.ServeHTTP(recorder, operatorPost("/admin-panel/measurements/missing/delete/", nil))
		})
	})
})
