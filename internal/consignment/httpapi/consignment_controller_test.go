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

var _ = Describe("ConsignmentController", func() {
	var (
		ctrl         *gomock.Controller
		mockService  *mockusecases.MockConsignmentService
		mockWorkflow *mockusecases.MockCreationWorkflowService
		mockRenderer *mockrender.MockRenderer
		router       *http.ServeMux
		recorder     *httptest.ResponseRecorder
		data         map[string]any
		weight       domain.FieldInput
		length       domain.FieldInput
		abz          domain.Consignment
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockConsignmentService(ctrl)
		mockWorkflow = mockusecases.NewMockCreationWorkflowService(ctrl)
		mockRenderer = mockrender.NewMockRenderer(ctrl)
		router = http.NewServeMux()
		httpapi.NewConsignmentController(mockService, mockWorkflow, mockRenderer).AddRoutes(router)
		recorder = httptest.NewRecorder()
		data = nil

		length = domain.NewFieldInput(domain.FieldTemplate{ID: "t-length", Name: "length"})
		weight = domain.NewFieldInput(domain.FieldTemplate{ID: "t-weight", Name: "weight"})
		abz = domain.Consignment{ID: "c-1", Name: "ABZ"}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("lists consignments for management with the search term", func() {
		mockService.EXPECT().
			ListConsignments(gomock.Any(), "AB", usecases.Pagination{Limit: 50, Offset: 0}).
			Return([]domain.Consignment{abz}, 1, nil)
		mockRenderer.EXPECT().
			Render(gomock.Any(), http.StatusOK, "admin/consignment_manage", gomock.Any()).
			Do(captureData(&data))

		router.ServeHTTP(recorder, operatorGet("/admin-panel/consignments/?search=AB"))

		Expect(data).To(HaveKeyWithValue("Consignments", []domain.Consignment{abz}))
	})

	Context("creation form", func() {
		It("renders one unselected row per template", func() {
			mockWorkflow.EXPECT().
				BuildCreationForm(gomock.Any()).
				Return(domain.CreationForm{Fields: []domain.FieldInput{length, weight}}, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "admin/consignment_form", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorGet("/admin-panel/consignments/create/"))

			Expect(data["Fields"]).To(HaveLen(2))
			Expect(data["SelectedFields"]).To(BeEmpty())
			Expect(data).To(HaveKeyWithValue("Name", ""))
		})

		It("submits only the toggled templates with their trimmed values", func() {
			mockWorkflow.EXPECT().
				SubmitCreationForm(gomock.Any(), usecases.CreationSubmission{
					Name: "ABZ",
					Selections: map[shareddomain.ID]domain.FieldSelection{
						"t-weight": {Selected: true, Value: ""},
						"t-length": {Selected: true, Value: "4.5cm"},
					},
				}).
				Return(abz, nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/create/", url.Values{
				"name":           {"ABZ"},
				"field_t-weight": {"on"},
				"field_t-length": {"on"},
				"value_t-length": {" 4.5cm "},
				"value_t-color":  {"ignored"},
			}))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/consignments/c-1/edit/"))
		})

		It("keeps the selections and values when the name is rejected", func() {
			mockWorkflow.EXPECT().
				SubmitCreationForm(gomock.Any(), gomock.Any()).
				Return(domain.Consignment{}, usecases.NewValidationError(usecases.FieldName, "name is required"))
			mockWorkflow.EXPECT().
				BuildCreationForm(gomock.Any()).
				Return(domain.CreationForm{Fields: []domain.FieldInput{length, weight}}, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusUnprocessableEntity, "admin/consignment_form", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/create/", url.Values{
				"name":           {""},
				"field_t-weight": {"on"},
				"value_t-weight": {"10kg"},
			}))

			Expect(data["Errors"]).To(HaveKeyWithValue("name", "name is required"))
			Expect(data["SelectedFields"]).To(Equal([]domain.FieldInput{weight}))
			Expect(data["Values"]).To(HaveKeyWithValue("value_t-weight", "10kg"))
		})

		It("answers 409 when the name was taken concurrently", func() {
			mockWorkflow.EXPECT().SubmitCreationForm(gomock.Any(), gomock.Any()).Return(domain.Consignment{}, usecases.ErrConflict)
			mockWorkflow.EXPECT().BuildCreationForm(gomock.Any()).Return(domain.CreationForm{}, nil)
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusConflict, "admin/consignment_form", gomock.Any())

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/create/", url.Values{"name": {"ABZ"}}))
		})
	})

	Context("editing", func() {
		var detail domain.ConsignmentDetail

		BeforeEach(func() {
			detail = domain.ConsignmentDetail{Consignment: abz}
		})

		It("shows the name and the measurements", func() {
			mockService.EXPECT().GetConsignmentDetail(gomock.Any(), shareddomain.ID("c-1")).Return(detail, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "admin/consignment_edit", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorGet("/admin-panel/consignments/c-1/edit/"))

			Expect(data).To(HaveKeyWithValue("Name", "ABZ"))
			Expect(data).To(HaveKeyWithValue("Detail", detail))
		})

		It("renames and returns to the edit page", func() {
			mockService.EXPECT().
				UpdateConsignment(gomock.Any(), shareddomain.ID("c-1"), "ABX").
				Return(domain.Consignment{ID: "c-1", Name: "ABX"}, nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/c-1/edit/", url.Values{"name": {"ABX"}}))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/consignments/c-1/edit/"))
		})

		It("redisplays with 422 on a duplicate name", func() {
			mockService.EXPECT().
				UpdateConsignment(gomock.Any(), shareddomain.ID("c-1"), "XYZ").
				Return(domain.Consignment{}, usecases.NewValidationError(usecases.FieldName, "a consignment with this name already exists"))
			mockService.EXPECT().GetConsignmentDetail(gomock.Any(), shareddomain.ID("c-1")).Return(detail, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusUnprocessableEntity, "admin/consignment_edit", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/c-1/edit/", url.Values{"name": {"XYZ"}}))

			Expect(data).To(HaveKeyWithValue("Name", "XYZ"))
		})
	})

	Context("deleting", func() {
		It("lists the measurements that go with it", func() {
			detail := domain.ConsignmentDetail{Consignment: abz}
			mockService.EXPECT().GetConsignmentDetail(gomock.Any(), shareddomain.ID("c-1")).Return(detail, nil)
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusOK, "admin/consignment_confirm_delete", gomock.Any())

			router.ServeHTTP(recorder, operatorGet("/admin-panel/consignments/c-1/delete/"))
		})

		It("deletes and returns to the list", func() {
			mockService.EXPECT().DeleteConsignment(gomock.Any(), shareddomain.ID("c-1")).Return(nil)

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/c-1/delete/", nil))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/consignments/"))
		})

		It("answers 404 for an unknown consignment", func() {
			mockService.EXPECT().DeleteConsignment(gomock.Any(), shareddomain.ID("missing")).Return(usecases.ErrConsignmentNotFound)
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusNotFound, "errors/not_found", gomock.Any())

			router.ServeHTTP(recorder, operatorPost("/admin-panel/consignments/missing/delete/", nil))
		})
	})
})
