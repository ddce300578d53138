//go:build wireinject
// +build wireinject

package wire

import (
	authHTTPAPI "consignment-server/internal/auth/httpapi"
	authPersistence "consignment-server/internal/auth/persistence"
	authUsecases "consignment-server/internal/auth/usecases"
	consignmentHTTPAPI "consignment-server/internal/consignment/httpapi"
	consignmentPersistence "consignment-server/internal/consignment/persistence"
	consignmentUsecases "consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"

	"github.com/google/wire"
)

var RendererSet = wire.NewSet(
	provideRenderer,
	wire.Bind(new(render.Renderer), new(*render.TemplateRenderer)),
)

var RepositorySet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	consignmentPersistence.NewFieldTemplateRepository,
	wire.Bind(new(consignmentUsecases.FieldTemplateRepository), new(*consignmentPersistence.SimpleFieldTemplateRepository)),
	consignmentPersistence.NewConsignmentRepository,
	wire.Bind(new(consignmentUsecases.ConsignmentRepository), new(*consignmentPersistence.SimpleConsignmentRepository)),
	consignmentPersistence.NewMeasurementRepository,
	wire.Bind(new(consignmentUsecases.MeasurementRepository), new(*consignmentPersistence.SimpleMeasurementRepository)),
)

var ConsignmentServiceSet = wire.NewSet(
	consignmentUsecases.NewConsignmentService,
	wire.Bind(new(consignmentUsecases.ConsignmentService), new(*consignmentUsecases.SimpleConsignmentService)),
)

var FieldTemplateServiceSet = wire.NewSet(
	consignmentUsecases.NewFieldTemplateService,
	wire.Bind(new(consignmentUsecases.FieldTemplateService), new(*consignmentUsecases.SimpleFieldTemplateService)),
)

var CreationWorkflowServiceSet = wire.NewSet(
	consignmentUsecases.NewCreationWorkflowService,
	wire.Bind(new(consignmentUsecases.CreationWorkflowService), new(*consignmentUsecases.SimpleCreationWorkflowService)),
)

var AuthServiceSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	provideAuthConfig,
	authPersistence.NewOperatorRepository,
	wire.Bind(new(authUsecases.OperatorRepository), new(*authPersistence.SimpleOperatorRepository)),
	authUsecases.NewAuthService,
)

func InitializePublicController() (*consignmentHTTPAPI.PublicController, error) {
	wire.Build(
		RepositorySet,
		ConsignmentServiceSet,
		RendererSet,
		consignmentHTTPAPI.NewPublicController,
	)
	return nil, nil
}

func InitializeDashboardController() (*consignmentHTTPAPI.DashboardController, error) {
	wire.Build(
		RepositorySet,
		consignmentUsecases.NewDashboardService,
		wire.Bind(new(consignmentUsecases.DashboardService), new(*consignmentUsecases.SimpleDashboardService)),
		RendererSet,
		consignmentHTTPAPI.NewDashboardController,
	)
	return nil, nil
}

func InitializeFieldTemplateController() (*consignmentHTTPAPI.FieldTemplateController, error) {
	wire.Build(
		RepositorySet,
		FieldTemplateServiceSet,
		RendererSet,
		consignmentHTTPAPI.NewFieldTemplateController,
	)
	return nil, nil
}

func InitializeConsignmentController() (*consignmentHTTPAPI.ConsignmentController, error) {
	wire.Build(
		RepositorySet,
		ConsignmentServiceSet,
		CreationWorkflowServiceSet,
		RendererSet,
		consignmentHTTPAPI.NewConsignmentController,
	)
	return nil, nil
}

func InitializeMeasurementController() (*consignmentHTTPAPI.MeasurementController, error) {
	wire.Build(
		RepositorySet,
		consignmentUsecases.NewMeasurementService,
		wire.Bind(new(consignmentUsecases.MeasurementService), new(*consignmentUsecases.SimpleMeasurementService)),
		ConsignmentServiceSet,
		FieldTemplateServiceSet,
		RendererSet,
		consignmentHTTPAPI.NewMeasurementController,
	)
	return nil, nil
}

func InitializeFieldToggleController() (*consignmentHTTPAPI.FieldToggleController, error) {
	wire.Build(
		RepositorySet,
		CreationWorkflowServiceSet,
		RendererSet,
		consignmentHTTPAPI.NewFieldToggleController,
	)
	return nil, nil
}

func InitializeAuthService() (*authUsecases.SimpleAuthService, error) {
	wire.Build(AuthServiceSet)
	return nil, nil
}

func InitializeAuthController() (*authHTTPAPI.AuthController, error) {
	wire.Build(
		AuthServiceSet,
		wire.Bind(new(authUsecases.AuthService), new(*authUsecases.SimpleAuthService)),
		RendererSet,
		authHTTPAPI.NewAuthController,
	)
	return nil, nil
}

func InitializeHealthChecker() httpserver.HealthChecker {
	wire.Build(
		provideAppConfig,
		provideHealthChecker,
	)
	return nil
}
