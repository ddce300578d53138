package usecases

//go:generate mockgen -source=./measurement_service.go -destination=../../../test/unit/doubles/consignment/usecases/measurement_service_mock.go -package=usecases -mock_names=MeasurementService=MockMeasurementService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"consignment-server/internal/consignment/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

const _unknownTemplate = "select a valid field template"

// MeasurementInput is the raw measurement form: a template id or a custom name, and a value.
type MeasurementInput struct {
	TemplateID      string
	CustomFieldName string
	Value           string
}

type MeasurementService interface {
	GetMeasurement(ctx context.Context, id shareddomain.ID) (domain.MeasurementDetail, error)
	AddMeasurement(ctx context.Context, consignmentID shareddomain.ID, input MeasurementInput) (domain.Measurement, error)
	UpdateMeasurement(ctx context.Context, id shareddomain.ID, input MeasurementInput) (domain.Measurement, error)
	DeleteMeasurement(ctx context.Context, id shareddomain.ID) error
}

func NewMeasurementService(
	repository MeasurementRepository,
	consignmentRepository ConsignmentRepository,
	templateRepository FieldTemplateRepository,
) *SimpleMeasurementService {
	return &SimpleMeasurementService{
		repository:            repository,
		consignmentRepository: consignmentRepository,
		templateRepository:    templateRepository,
	}
}

var _ MeasurementService = (*SimpleMeasurementService)(nil)

type SimpleMeasurementService struct {
	repository            MeasurementRepository
	consignmentRepository ConsignmentRepository
	templateRepository    FieldTemplateRepository
}

func (s *SimpleMeasurementService) GetMeasurement(ctx context.Context, id shareddomain.ID) (domain.MeasurementDetail, error) {
	measurement, err := s.getMeasurement(ctx, id)
	if err != nil {
		return domain.MeasurementDetail{}, err
	}

	details, err := describeMeasurements(ctx, s.templateRepository, []domain.Measurement{measurement})
	if err != nil {
		return domain.MeasurementDetail{}, err
	}

	return details[0], nil
}

func (s *SimpleMeasurementService) AddMeasurement(
	ctx context.Context,
	consignmentID shareddomain.ID,
	input MeasurementInput,
) (domain.Measurement, error) {
	if _, err := s.consignmentRepository.GetByID(ctx, consignmentID); err != nil {
		if errors.Is(err, ErrConsignmentNotFound) {
			return domain.Measurement{}, ErrConsignmentNotFound
		}
		return domain.Measurement{}, fmt.Errorf("getting consignment: %w", err)
	}

	field, err := s.parseField(ctx, input)
	if err != nil {
		return domain.Measurement{}, err
	}

	measurement, err := domain.NewMeasurementBuilder().
		WithConsignmentID(consignmentID).
		WithField(field).
		WithValue(input.Value).
		Build()
	if err != nil {
		return domain.Measurement{}, asValidation(FieldIdentity, err)
	}

	if err := s.repository.Create(ctx, measurement); err != nil {
		if errors.Is(err, ErrConflict) {
			return domain.Measurement{}, ErrConflict
		}
		slog.Error("creating measurement", slog.String("error", err.Error()))
		return domain.Measurement{}, fmt.Errorf("creating measurement: %w", err)
	}

	slog.Info("measurement added",
		slog.String("id", measurement.ID.String()),
		slog.String("consignment_id", consignmentID.String()))

	return measurement, nil
}

func (s *SimpleMeasurementService) UpdateMeasurement(
	ctx context.Context,
	id shareddomain.ID,
	input MeasurementInput,
) (domain.Measurement, error) {
	measurement, err := s.getMeasurement(ctx, id)
	if err != nil {
		return domain.Measurement{}, err
	}

	field, err := s.parseField(ctx, input)
	if err != nil {
		return domain.Measurement{}, err
	}

	if err := measurement.Update(field, input.Value); err != nil {
		return domain.Measurement{}, asValidation(FieldIdentity, err)
	}

	if err := s.repository.Update(ctx, measurement); err != nil {
		switch {
		case errors.Is(err, ErrConflict):
			return domain.Measurement{}, ErrConflict
		case errors.Is(err, ErrMeasurementNotFound):
			return domain.Measurement{}, ErrMeasurementNotFound
		}
		slog.Error("updating measurement", slog.String("error", err.Error()))
		return domain.Measurement{}, fmt.Errorf("updating measurement: %w", err)
	}

	return measurement, nil
}

func (s *SimpleMeasurementService) DeleteMeasurement(ctx context.Context, id shareddomain.ID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			return ErrMeasurementNotFound
		}
		slog.Error("deleting measurement", slog.String("error", err.Error()))
		return fmt.Errorf("deleting measurement: %w", err)
	}

	return nil
}

func (s *SimpleMeasurementService) getMeasurement(ctx context.Context, id shareddomain.ID) (domain.Measurement, error) {
	measurement, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			return domain.Measurement{}, ErrMeasurementNotFound
		}
		slog.Error("getting measurement", slog.String("error", err.Error()))
		return domain.Measurement{}, fmt.Errorf("getting measurement: %w", err)
	}
	return measurement, nil
}

func (s *SimpleMeasurementService) parseField(ctx context.Context, input MeasurementInput) (domain.FieldIdentity, error) {
	field, err := domain.ParseFieldIdentity(input.TemplateID, input.CustomFieldName)
	if err != nil {
		if errors.Is(err, domain.ErrNameTooLong) {
			return nil, asValidation(FieldCustomFieldName, err)
		}
		return nil, asValidation(FieldIdentity, err)
	}

	byTemplate, ok := field.(domain.ByTemplate)
	if !ok {
		return field, nil
	}

	if _, err := s.templateRepository.GetByID(ctx, byTemplate.TemplateID); err != nil {
		if errors.Is(err, ErrFieldTemplateNotFound) {
			return nil, NewValidationError(FieldTemplateID, _unknownTemplate)
		}
		return nil, fmt.Errorf("getting field template: %w", err)
	}

	return field, nil
}
