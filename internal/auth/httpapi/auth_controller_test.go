package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"consignment-server/internal/auth/httpapi"
	"consignment-server/internal/auth/usecases"
	shareddomain "consignment-server/internal/shared_kernel/domain"
	mockusecases "consignment-server/test/unit/doubles/auth/usecases"
	mockrender "consignment-server/test/unit/doubles/infra/render"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("AuthController", func() {
	var (
		ctrl         *gomock.Controller
		mockService  *mockusecases.MockAuthService
		mockRenderer *mockrender.MockRenderer
		router       *http.ServeMux
		recorder     *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockAuthService(ctrl)
		mockRenderer = mockrender.NewMockRenderer(ctrl)
		router = http.NewServeMux()
		httpapi.NewAuthController(mockService, mockRenderer).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	postLogin := func(form url.Values) *http.Request {
		request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return request
	}

	Context("GET /auth/login", func() {
		It("renders the login form carrying the next target", func() {
			var data map[string]any
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusOK, "auth/login", gomock.Any()).
				Do(func(_ http.ResponseWriter, _ int, _ string, d map[string]any) { data = d })

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/auth/login?next=/admin-panel/consignments/", nil))

			Expect(data).To(HaveKeyWithValue("Next", "/admin-panel/consignments/"))
		})

		It("sends an authenticated operator straight to the dashboard", func() {
			request := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
			request = request.WithContext(shareddomain.ContextWithSession(request.Context(), shareddomain.Session{Username: "admin"}))

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/"))
		})
	})

	Context("POST /auth/login", func() {
		It("sets the session cookie and follows next", func() {
			expiresAt := time.Now().Add(time.Hour)
			mockService.EXPECT().
				Authenticate(gomock.Any(), "admin", "s3cret").
				Return(usecases.IssuedSession{
					Session: shareddomain.Session{OperatorID: "op-1", Username: "admin", ExpiresAt: expiresAt},
					Token:   "signed-token",
				}, nil)

			router.ServeHTTP(recorder, postLogin(url.Values{
				"username": {" admin "},
				"password": {"s3cret"},
				"next":     {"/admin-panel/field-templates/"},
			}))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/field-templates/"))

			cookies := recorder.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal(httpapi.SessionCookieName))
			Expect(cookies[0].Value).To(Equal("signed-token"))
			Expect(cookies[0].HttpOnly).To(BeTrue())
		})

		It("ignores an off-site next target", func() {
			mockService.EXPECT().
				Authenticate(gomock.Any(), "admin", "s3cret").
				Return(usecases.IssuedSession{Token: "signed-token"}, nil)

			router.ServeHTTP(recorder, postLogin(url.Values{
				"username": {"admin"},
				"password": {"s3cret"},
				"next":     {"//evil.example.com/"},
			}))

			Expect(recorder.Header().Get("Location")).To(Equal("/admin-panel/"))
		})

		It("re-renders the form with 401 on bad credentials", func() {
			var data map[string]any
			mockService.EXPECT().
				Authenticate(gomock.Any(), "admin", "wrong").
				Return(usecases.IssuedSession{}, usecases.ErrInvalidCredentials)
			mockRenderer.EXPECT().
				Render(gomock.Any(), http.StatusUnauthorized, "auth/login", gomock.Any()).
				Do(func(_ http.ResponseWriter, _ int, _ string, d map[string]any) { data = d })

			router.ServeHTTP(recorder, postLogin(url.Values{"username": {"admin"}, "password": {"wrong"}}))

			Expect(data).To(HaveKeyWithValue("Username", "admin"))
			Expect(data).To(HaveKey("Error"))
			Expect(recorder.Result().Cookies()).To(BeEmpty())
		})

		It("renders the error page when authentication breaks", func() {
			mockService.EXPECT().
				Authenticate(gomock.Any(), "admin", "s3cret").
				Return(usecases.IssuedSession{}, errors.New("database down"))
			mockRenderer.EXPECT().Render(gomock.Any(), http.StatusInternalServerError, "errors/error", gomock.Any())

			router.ServeHTTP(recorder, postLogin(url.Values{"username": {"admin"}, "password": {"s3cret"}}))
		})
	})

	Context("POST /auth/logout", func() {
		It("expires the session cookie and redirects home", func() {
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

			Expect(recorder.Code).To(Equal(http.StatusSeeOther))
			Expect(recorder.Header().Get("Location")).To(Equal("/"))

			var session *http.Cookie
			for _, cookie := range recorder.Result().Cookies() {
				if cookie.Name == httpapi.SessionCookieName {
					session = cookie
				}
			}
			Expect(session).NotTo(BeNil())
			Expect(session.MaxAge).To(BeNumerically("<", 0))
		})
	})
})
