package usecases

//go:generate mockgen -source=./consignment_service.go -destination=../../../test/unit/doubles/consignment/usecases/consignment_service_mock.go -package=usecases -mock_names=ConsignmentService=MockConsignmentService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"consignment-server/internal/consignment/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

const _duplicateConsignmentName = "a consignment with this name already exists"

type ConsignmentService interface {
	ListConsignments(ctx context.Context, search string, pagination Pagination) ([]domain.Consignment, int, error)
	GetConsignment(ctx context.Context, id shareddomain.ID) (domain.Consignment, error)
	GetConsignmentDetail(ctx context.Context, id shareddomain.ID) (domain.ConsignmentDetail, error)
	CreateConsignment(ctx context.Context, name string) (domain.Consignment, error)
	UpdateConsignment(ctx context.Context, id shareddomain.ID, name string) (domain.Consignment, error)
	DeleteConsignment(ctx context.Context, id shareddomain.ID) error
}

func NewConsignmentService(
	repository ConsignmentRepository,
	measurementRepository MeasurementRepository,
	templateRepository FieldTemplateRepository,
) *SimpleConsignmentService {
	return &SimpleConsignmentService{
		repository:            repository,
		measurementRepository: measurementRepository,
		templateRepository:    templateRepository,
	}
}

var _ ConsignmentService = (*SimpleConsignmentService)(nil)

type SimpleConsignmentService struct {
	repository            ConsignmentRepository
	measurementRepository MeasurementRepository
	templateRepository    FieldTemplateRepository
}

func (s *SimpleConsignmentService) ListConsignments(
	ctx context.Context,
	search string,
	pagination Pagination,
) ([]domain.Consignment, int, error) {
	filter := ConsignmentFilter{
		Search:     strings.TrimSpace(search),
		Pagination: pagination,
	}

	consignments, total, err := s.repository.FindAll(ctx, filter)
	if err != nil {
		slog.Error("listing consignments", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing consignments: %w", err)
	}

	return consignments, total, nil
}

func (s *SimpleConsignmentService) GetConsignment(ctx context.Context, id shareddomain.ID) (domain.Consignment, error) {
	consignment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrConsignmentNotFound) {
			return domain.Consignment{}, ErrConsignmentNotFound
		}
		slog.Error("getting consignment", slog.String("error", err.Error()))
		return domain.Consignment{}, fmt.Errorf("getting consignment: %w", err)
	}

	return consignment, nil
}

func (s *SimpleConsignmentService) GetConsignmentDetail(ctx context.Context, id shareddomain.ID) (domain.ConsignmentDetail, error) {
	consignment, err := s.GetConsignment(ctx, id)
	if err != nil {
		return domain.ConsignmentDetail{}, err
	}

	measurements, err := s.measurementRepository.FindAllByConsignment(ctx, id)
	if err != nil {
		slog.Error("listing consignment measurements", slog.String("error", err.Error()))
		return domain.ConsignmentDetail{}, fmt.Errorf("listing consignment measurements: %w", err)
	}

	details, err := describeMeasurements(ctx, s.templateRepository, measurements)
	if err != nil {
		return domain.ConsignmentDetail{}, err
	}

	return domain.ConsignmentDetail{
		Consignment:  consignment,
		Measurements: details,
	}, nil
}

func (s *SimpleConsignmentService) CreateConsignment(ctx context.Context, name string) (domain.Consignment, error) {
	consignment, err := domain.NewConsignmentBuilder().WithName(name).Build()
	if err != nil {
		return domain.Consignment{}, asValidation(FieldName, err)
	}

	if err := ensureConsignmentNameAvailable(ctx, s.repository, consignment.Name, ""); err != nil {
		return domain.Consignment{}, err
	}

	if err := s.repository.Create(ctx, consignment); err != nil {
		if errors.Is(err, ErrConflict) {
			return domain.Consignment{}, ErrConflict
		}
		slog.Error("creating consignment", slog.String("error", err.Error()))
		return domain.Consignment{}, fmt.Errorf("creating consignment: %w", err)
	}

	slog.Info("consignment created",
		slog.String("id", consignment.ID.String()),
		slog.String("name", consignment.Name.String()))

	return consignment, nil
}

func (s *SimpleConsignmentService) UpdateConsignment(ctx context.Context, id shareddomain.ID, name string) (domain.Consignment, error) {
	consignment, err := s.GetConsignment(ctx, id)
	if err != nil {
		return domain.Consignment{}, err
	}

	if err := consignment.Rename(name); err != nil {
		return domain.Consignment{}, asValidation(FieldName, err)
	}

	if err := ensureConsignmentNameAvailable(ctx, s.repository, consignment.Name, consignment.ID); err != nil {
		return domain.Consignment{}, err
	}

	if err := s.repository.Update(ctx, consignment); err != nil {
		switch {
		case errors.Is(err, ErrConflict):
			return domain.Consignment{}, ErrConflict
		case errors.Is(err, ErrConsignmentNotFound):
			return domain.Consignment{}, ErrConsignmentNotFound
		}
		slog.Error("updating consignment", slog.String("error", err.Error()))
		return domain.Consignment{}, fmt.Errorf("updating consignment: %w", err)
	}

	return consignment, nil
}

func (s *SimpleConsignmentService) DeleteConsignment(ctx context.Context, id shareddomain.ID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrConsignmentNotFound) {
			return ErrConsignmentNotFound
		}
		slog.Error("deleting consignment", slog.String("error", err.Error()))
		return fmt.Errorf("deleting consignment: %w", err)
	}

	slog.Info("consignment deleted", slog.String("id", id.String()))
	return nil
}

func ensureConsignmentNameAvailable(
	ctx context.Context,
	repository ConsignmentRepository,
	name shareddomain.Name,
	excludeID shareddomain.ID,
) error {
	exists, err := repository.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("checking consignment name: %w", err)
	}
	if exists {
		return NewValidationError(FieldName, _duplicateConsignmentName)
	}
	return nil
}

// describeMeasurements resolves the effective field name of every measurement
// with a single template lookup.
func describeMeasurements(
	ctx context.Context,
	templateRepository FieldTemplateRepository,
	measurements []domain.Measurement,
) ([]domain.MeasurementDetail, error) {
	templateIDs := make([]shareddomain.ID, 0, len(measurements))
	seen := make(map[shareddomain.ID]struct{}, len(measurements))
	for _, m := range measurements {
		if id, ok := m.TemplateID(); ok {
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				templateIDs = append(templateIDs, id)
			}
		}
	}

	names := make(map[shareddomain.ID]shareddomain.Name, len(templateIDs))
	if len(templateIDs) > 0 {
		templates, err := templateRepository.FindByIDs(ctx, templateIDs)
		if err != nil {
			slog.Error("resolving field names", slog.String("error", err.Error()))
			return nil, fmt.Errorf("resolving field names: %w", err)
		}
		for _, t := range templates {
			names[t.ID] = t.Name
		}
	}

	details := make([]domain.MeasurementDetail, len(measurements))
	for i, m := range measurements {
		details[i] = domain.MeasurementDetail{
			Measurement: m,
			FieldName:   m.FieldName(names),
		}
	}

	return details, nil
}
