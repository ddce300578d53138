package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/consignment/httpapi"
	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	shareddomain "consignment-server/internal/shared_kernel/domain"
	mockusecases "consignment-server/test/unit/doubles/consignment/usecases"
	mockrender "consignment-server/test/unit/doubles/infra/render"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("PublicController", func() {
	var (
		ctrl         *gomock.Controller
		mockService  *mockusecases.MockConsignmentService
		mockRenderer *mockrender.MockRenderer
		router       *http.ServeMux
		recorder     *httptest.ResponseRecorder
		data         map[string]any
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockConsignmentService(ctrl)
		mockRenderer = mockrender.NewMockRenderer(ctrl)
		router = http.NewServeMux()
		httpapi.NewPublicController(mockService, mockRenderer).AddRoutes(router)
		recorder = httptest.NewRecorder()
		data = nil
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("GET /", func() {
		It("lists every consignment with default pagination when no search is given", func() {
			consignments := []domain.Consignment{{ID: "c-1", Name: "ABZ"}, {ID: "c-2", Name: "XYZ"}}
			mockService.EXPECT().
				ListConsignments(gomock.Any(), "", usecases.Pagination{Limit: 50, Offset: 0}).
				Return(consignments, 2, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "public/consignment_list", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

			Expect(data).To(HaveKeyWithValue("Consignments", consignments))
			Expect(data).To(HaveKeyWithValue("Search", ""))
			Expect(data).NotTo(HaveKey("Operator"))
			pager := data["Pager"].(httpserver.Pager)
			Expect(pager.Total).To(Equal(2))
			Expect(pager.TotalPages).To(Equal(1))
		})

		It("passes the trimmed search term and page window to the service", func() {
			mockService.EXPECT().
				ListConsignments(gomock.Any(), "B", usecases.Pagination{Limit: 10, Offset: 10}).
				Return([]domain.Consignment{}, 12, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "public/consignment_list", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?search=+B+&page=2&limit=10", nil))

			Expect(data).To(HaveKeyWithValue("Search", "B"))
			Expect(data["Pager"].(httpserver.Pager).HasPrev).To(BeTrue())
		})

		It("shows the operator name when a session is present", func() {
			mockService.EXPECT().ListConsignments(gomock.Any(), "", gomock.Any()).Return(nil, 0, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "public/consignment_list", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, operatorGet("/"))

			Expect(data).To(HaveKeyWithValue("Operator", "admin"))
		})

		It("renders the error page when the store fails", func() {
			mockService.EXPECT().ListConsignments(gomock.Any(), "", gomock.Any()).Return(nil, 0, errors.New("boom"))
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusInternalServerError, "errors/error", gomock.Any())

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	Context("GET /consignments/{id}", func() {
		It("renders the consignment with its measurements", func() {
			detail := domain.ConsignmentDetail{
				Consignment: domain.Consignment{ID: "c-1", Name: "ABZ"},
				Measurements: []domain.MeasurementDetail{{
					Measurement: domain.Measurement{ID: "m-1", ConsignmentID: "c-1", Field: domain.ByCustomName{Name: "color"}, Value: "blue"},
					FieldName:   "color",
				}},
			}
			mockService.EXPECT().GetConsignmentDetail(gomock.Any(), shareddomain.ID("c-1")).Return(detail, nil)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "public/consignment_detail", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/consignments/c-1", nil))

			Expect(data).To(HaveKeyWithValue("Detail", detail))
		})

		It("renders the not found page for an unknown id", func() {
			mockService.EXPECT().
				GetConsignmentDetail(gomock.Any(), shareddomain.ID("missing")).
				Return(domain.ConsignmentDetail{}, usecases.ErrConsignmentNotFound)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusNotFound, "errors/not_found", gomock.Any()).
				Do(captureData(&data))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/consignments/missing", nil))

			Expect(data).To(HaveKeyWithValue("Message", "Consignment not found."))
		})
	})
})
