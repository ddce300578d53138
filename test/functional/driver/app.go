package driver

import (
	"fmt"
	"net/http/httptest"
	"time"

	authHTTPAPI "consignment-server/internal/auth/httpapi"
	authPersistence "consignment-server/internal/auth/persistence"
	authUsecases "consignment-server/internal/auth/usecases"
	"consignment-server/internal/consignment/httpapi"
	"consignment-server/internal/consignment/persistence"
	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
	"consignment-server/internal/infra/sql"
)

const _sessionSecret = "functional-session-secret"

// App is a complete server running in-process against a private in-memory store.
type App struct {
	Server         *httptest.Server
	FieldTemplates usecases.FieldTemplateService
	Consignments   usecases.ConsignmentService
	Measurements   usecases.MeasurementService
	Auth           authUsecases.AuthService
}

func StartApp() (*App, error) {
	orm, err := sql.NewMemoryORM(sql.Options{LogLevel: "silent", QueryTimeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	templateRepository, err := persistence.NewFieldTemplateRepository(orm)
	if err != nil {
		return nil, err
	}
	consignmentRepository, err := persistence.NewConsignmentRepository(orm)
	if err != nil {
		return nil, err
	}
	measurementRepository, err := persistence.NewMeasurementRepository(orm)
	if err != nil {
		return nil, err
	}
	operatorRepository, err := authPersistence.NewOperatorRepository(orm)
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	templateService := usecases.NewFieldTemplateService(templateRepository, measurementRepository)
	consignmentService := usecases.NewConsignmentService(consignmentRepository, measurementRepository, templateRepository)
	measurementService := usecases.NewMeasurementService(measurementRepository, consignmentRepository, templateRepository)
	workflow := usecases.NewCreationWorkflowService(consignmentRepository, templateRepository)
	dashboard := usecases.NewDashboardService(consignmentRepository, templateRepository, measurementRepository)
	authService := authUsecases.NewAuthService(operatorRepository, authUsecases.AuthConfig{
		Secret:     []byte(_sessionSecret),
		SessionTTL: time.Hour,
	})

	server := httpserver.NewServer(
		httpserver.ServerOptions{
			AllowedOrigins: []string{"*"},
			HealthChecker:  orm,
			Middlewares: []httpserver.Middleware{
				authHTTPAPI.NewSessionMiddleware(authService),
			},
		},
		httpapi.NewPublicController(consignmentService, renderer),
		authHTTPAPI.NewAuthController(authService, renderer),
		httpapi.NewDashboardController(dashboard, renderer),
		httpapi.NewFieldTemplateController(templateService, renderer),
		httpapi.NewConsignmentController(consignmentService, workflow, renderer),
		httpapi.NewMeasurementController(measurementService, consignmentService, templateService, renderer),
		httpapi.NewFieldToggleController(workflow, renderer),
	)

	return &App{
		Server:         httptest.NewServer(server.Handler()),
		FieldTemplates: templateService,
		Consignments:   consignmentService,
		Measurements:   measurementService,
		Auth:           authService,
	}, nil
}

func (a *App) Close() {
	a.Server.Close()
}
