package usecases

//go:generate mockgen -source=./dashboard_service.go -destination=../../../test/unit/doubles/consignment/usecases/dashboard_service_mock.go -package=usecases -mock_names=DashboardService=MockDashboardService

import (
	"context"
	"fmt"
	"log/slog"

	"consignment-server/internal/consignment/domain"
)

const _recentConsignments = 5

type Dashboard struct {
	ConsignmentCount   int
	FieldTemplateCount int
	MeasurementCount   int
	RecentConsignments []domain.Consignment
}

type DashboardService interface {
	GetDashboard(ctx context.Context) (Dashboard, error)
}

func NewDashboardService(
	consignmentRepository ConsignmentRepository,
	templateRepository FieldTemplateRepository,
	measurementRepository MeasurementRepository,
) *SimpleDashboardService {
	return &SimpleDashboardService{
		consignmentRepository: consignmentRepository,
		templateRepository:    templateRepository,
		measurementRepository: measurementRepository,
	}
}

var _ DashboardService = (*SimpleDashboardService)(nil)

type SimpleDashboardService struct {
	consignmentRepository ConsignmentRepository
	templateRepository    FieldTemplateRepository
	measurementRepository MeasurementRepository
}

func (s *SimpleDashboardService) GetDashboard(ctx context.Context) (Dashboard, error) {
	consignments, err := s.consignmentRepository.Count(ctx)
	if err != nil {
		slog.Error("counting consignments", slog.String("error", err.Error()))
		return Dashboard{}, fmt.Errorf("counting consignments: %w", err)
	}

	templates, err := s.templateRepository.Count(ctx)
	if err != nil {
		slog.Error("counting field templates", slog.String("error", err.Error()))
		return Dashboard{}, fmt.Errorf("counting field templates: %w", err)
	}

	measurements, err := s.measurementRepository.Count(ctx)
	if err != nil {
		slog.Error("counting measurements", slog.String("error", err.Error()))
		return Dashboard{}, fmt.Errorf("counting measurements: %w", err)
	}

	recent, err := s.consignmentRepository.FindRecent(ctx, _recentConsignments)
	if err != nil {
		slog.Error("listing recent consignments", slog.String("error", err.Error()))
		return Dashboard{}, fmt.Errorf("listing recent consignments: %w", err)
	}

	return Dashboard{
		ConsignmentCount:   consignments,
		FieldTemplateCount: templates,
		MeasurementCount:   measurements,
		RecentConsignments: recent,
	}, nil
}
