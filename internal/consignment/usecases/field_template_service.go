package usecases

//go:generate mockgen -source=./field_template_service.go -destination=../../../test/unit/doubles/consignment/usecases/field_template_service_mock.go -package=usecases -mock_names=FieldTemplateService=MockFieldTemplateService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"consignment-server/internal/consignment/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

const _duplicateTemplateName = "a field template with this name already exists"

type FieldTemplateService interface {
	ListFieldTemplates(ctx context.Context) ([]domain.FieldTemplate, error)
	GetFieldTemplate(ctx context.Context, id shareddomain.ID) (domain.FieldTemplate, error)
	CreateFieldTemplate(ctx context.Context, name string) (domain.FieldTemplate, error)
	UpdateFieldTemplate(ctx context.Context, id shareddomain.ID, name string) (domain.FieldTemplate, error)
	DeleteFieldTemplate(ctx context.Context, id shareddomain.ID) error
	GetDeletionImpact(ctx context.Context, id shareddomain.ID) (domain.FieldTemplateDeletionImpact, error)
}

func NewFieldTemplateService(
	repository FieldTemplateRepository,
	measurementRepository MeasurementRepository,
) *SimpleFieldTemplateService {
	return &SimpleFieldTemplateService{
		repository:            repository,
		measurementRepository: measurementRepository,
	}
}

var _ FieldTemplateService = (*SimpleFieldTemplateService)(nil)

type SimpleFieldTemplateService struct {
	repository            FieldTemplateRepository
	measurementRepository MeasurementRepository
}

func (s *SimpleFieldTemplateService) ListFieldTemplates(ctx context.Context) ([]domain.FieldTemplate, error) {
	templates, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("listing field templates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing field templates: %w", err)
	}

	return templates, nil
}

func (s *SimpleFieldTemplateService) GetFieldTemplate(ctx context.Context, id shareddomain.ID) (domain.FieldTemplate, error) {
	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFieldTemplateNotFound) {
			return domain.FieldTemplate{}, ErrFieldTemplateNotFound
		}
		slog.Error("getting field template", slog.String("error", err.Error()))
		return domain.FieldTemplate{}, fmt.Errorf("getting field template: %w", err)
	}

	return template, nil
}

func (s *SimpleFieldTemplateService) CreateFieldTemplate(ctx context.Context, name string) (domain.FieldTemplate, error) {
	template, err := domain.NewFieldTemplateBuilder().WithName(name).Build()
	if err != nil {
		return domain.FieldTemplate{}, asValidation(FieldName, err)
	}

	if err := s.ensureNameAvailable(ctx, template.Name, ""); err != nil {
		return domain.FieldTemplate{}, err
	}

	if err := s.repository.Create(ctx, template); err != nil {
		if errors.Is(err, ErrConflict) {
			return domain.FieldTemplate{}, ErrConflict
		}
		slog.Error("creating field template", slog.String("error", err.Error()))
		return domain.FieldTemplate{}, fmt.Errorf("creating field template: %w", err)
	}

	slog.Info("field template created",
		slog.String("id", template.ID.String()),
		slog.String("name", template.Name.String()))

	return template, nil
}

func (s *SimpleFieldTemplateService) UpdateFieldTemplate(ctx context.Context, id shareddomain.ID, name string) (domain.FieldTemplate, error) {
	template, err := s.GetFieldTemplate(ctx, id)
	if err != nil {
		return domain.FieldTemplate{}, err
	}

	if err := template.Rename(name); err != nil {
		return domain.FieldTemplate{}, asValidation(FieldName, err)
	}

	if err := s.ensureNameAvailable(ctx, template.Name, template.ID); err != nil {
		return domain.FieldTemplate{}, err
	}

	if err := s.repository.Update(ctx, template); err != nil {
		switch {
		case errors.Is(err, ErrConflict):
			return domain.FieldTemplate{}, ErrConflict
		case errors.Is(err, ErrFieldTemplateNotFound):
			return domain.FieldTemplate{}, ErrFieldTemplateNotFound
		}
		slog.Error("updating field template", slog.String("error", err.Error()))
		return domain.FieldTemplate{}, fmt.Errorf("updating field template: %w", err)
	}

	return template, nil
}

func (s *SimpleFieldTemplateService) DeleteFieldTemplate(ctx context.Context, id shareddomain.ID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrFieldTemplateNotFound) {
			return ErrFieldTemplateNotFound
		}
		slog.Error("deleting field template", slog.String("error", err.Error()))
		return fmt.Errorf("deleting field template: %w", err)
	}

	slog.Info("field template deleted", slog.String("id", id.String()))
	return nil
}

func (s *SimpleFieldTemplateService) GetDeletionImpact(ctx context.Context, id shareddomain.ID) (domain.FieldTemplateDeletionImpact, error) {
	template, err := s.GetFieldTemplate(ctx, id)
	if err != nil {
		return domain.FieldTemplateDeletionImpact{}, err
	}

	measurements, consignments, err := s.measurementRepository.CountByTemplate(ctx, id)
	if err != nil {
		slog.Error("counting template measurements", slog.String("error", err.Error()))
		return domain.FieldTemplateDeletionImpact{}, fmt.Errorf("counting template measurements: %w", err)
	}

	return domain.FieldTemplateDeletionImpact{
		Template:         template,
		MeasurementCount: measurements,
		ConsignmentCount: consignments,
	}, nil
}

func (s *SimpleFieldTemplateService) ensureNameAvailable(ctx context.Context, name shareddomain.Name, excludeID shareddomain.ID) error {
	exists, err := s.repository.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("checking field template name: %w", err)
	}
	if exists {
		return NewValidationError(FieldName, _duplicateTemplateName)
	}
	return nil
}
