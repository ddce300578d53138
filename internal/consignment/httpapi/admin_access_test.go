package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"consignment-server/internal/consignment/httpapi"
	"consignment-server/internal/infra/httpserver"
	mockusecases "consignment-server/test/unit/doubles/consignment/usecases"
	mockrender "consignment-server/test/unit/doubles/infra/render"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Admin panel access", func() {
	var (
		ctrl   *gomock.Controller
		router *http.ServeMux
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		renderer := mockrender.NewMockRenderer(ctrl)
		consignments := mockusecases.NewMockConsignmentService(ctrl)
		templates := mockusecases.NewMockFieldTemplateService(ctrl)
		measurements := mockusecases.NewMockMeasurementService(ctrl)
		workflow := mockusecases.NewMockCreationWorkflowService(ctrl)
		dashboard := mockusecases.NewMockDashboardService(ctrl)

		router = http.NewServeMux()
		for _, controller := range []httpserver.Controller{
			httpapi.NewDashboardController(dashboard, renderer),
			httpapi.NewFieldTemplateController(templates, renderer),
			httpapi.NewConsignmentController(consignments, workflow, renderer),
			httpapi.NewMeasurementController(measurements, consignments, templates, renderer),
			httpapi.NewFieldToggleController(workflow, renderer),
		} {
			controller.AddRoutes(router)
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	DescribeTable("redirects anonymous requests to login without touching any service",
		func(method, target string) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(method, target, strings.NewReader("name=ABZ"))
			request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/auth/login?next=" + url.QueryEscape(target)))
		},
		Entry("dashboard", http.MethodGet, "/admin-panel/"),
		Entry("field library", http.MethodGet, "/admin-panel/field-templates/"),
		Entry("create field template", http.MethodPost, "/admin-panel/field-templates/create/"),
		Entry("edit field template", http.MethodPost, "/admin-panel/field-templates/t-1/edit/"),
		Entry("delete field template", http.MethodPost, "/admin-panel/field-templates/t-1/delete/"),
		Entry("manage consignments", http.MethodGet, "/admin-panel/consignments/?search=AB"),
		Entry("creation form", http.MethodGet, "/admin-panel/consignments/create/"),
		Entry("submit creation form", http.MethodPost, "/admin-panel/consignments/create/"),
		Entry("edit consignment", http.MethodPost, "/admin-panel/consignments/c-1/edit/"),
		Entry("delete consignment", http.MethodPost, "/admin-panel/consignments/c-1/delete/"),
		Entry("add measurement", http.MethodPost, "/admin-panel/consignments/c-1/measurements/add/"),
		Entry("edit measurement", http.MethodPost, "/admin-panel/measurements/m-1/edit/"),
		Entry("delete measurement", http.MethodPost, "/admin-panel/measurements/m-1/delete/"),
		Entry("field toggle", http.MethodPost, "/admin-panel/htmx/field-toggle/"),
	)

	It("asks htmx to redirect instead of following a 303", func() {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/admin-panel/htmx/field-toggle/", nil)
		request.Header.Set("HX-Request", "true")

		router.ServeHTTP(recorder, request)

		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		Expect(recorder.Header().Get("HX-Redirect")).To(HavePrefix("/auth/login?next="))
	})
})
