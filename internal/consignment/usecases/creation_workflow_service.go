package usecases

//go:generate mockgen -source=./creation_workflow_service.go -destination=../../../test/unit/doubles/consignment/usecases/creation_workflow_service_mock.go -package=usecases -mock_names=CreationWorkflowService=MockCreationWorkflowService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"consignment-server/internal/consignment/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// CreationSubmission is a decoded creation form. Selections are keyed by
// template id; templates absent from the map are unselected.
type CreationSubmission struct {
	Name       string
	Selections map[shareddomain.ID]domain.FieldSelection
}

// CreationWorkflowService creates a consignment together with measurements for
// any subset of the field templates, in one request.
type CreationWorkflowService interface {
	BuildCreationForm(ctx context.Context) (domain.CreationForm, error)
	SubmitCreationForm(ctx context.Context, submission CreationSubmission) (domain.Consignment, error)
	SelectedTemplates(ctx context.Context, ids []shareddomain.ID) ([]domain.FieldTemplate, error)
}

func NewCreationWorkflowService(
	consignmentRepository ConsignmentRepository,
	templateRepository FieldTemplateRepository,
) *SimpleCreationWorkflowService {
	return &SimpleCreationWorkflowService{
		consignmentRepository: consignmentRepository,
		templateRepository:    templateRepository,
	}
}

var _ CreationWorkflowService = (*SimpleCreationWorkflowService)(nil)

type SimpleCreationWorkflowService struct {
	consignmentRepository ConsignmentRepository
	templateRepository    FieldTemplateRepository
}

func (s *SimpleCreationWorkflowService) BuildCreationForm(ctx context.Context) (domain.CreationForm, error) {
	templates, err := s.templateRepository.FindAll(ctx)
	if err != nil {
		slog.Error("building creation form", slog.String("error", err.Error()))
		return domain.CreationForm{}, fmt.Errorf("building creation form: %w", err)
	}

	fields := make([]domain.FieldInput, len(templates))
	for i, t := range templates {
		fields[i] = domain.NewFieldInput(t)
	}

	return domain.CreationForm{Fields: fields}, nil
}

func (s *SimpleCreationWorkflowService) SubmitCreationForm(
	ctx context.Context,
	submission CreationSubmission,
) (domain.Consignment, error) {
	consignment, err := domain.NewConsignmentBuilder().WithName(submission.Name).Build()
	if err != nil {
		return domain.Consignment{}, asValidation(FieldName, err)
	}

	if err := ensureConsignmentNameAvailable(ctx, s.consignmentRepository, consignment.Name, ""); err != nil {
		return domain.Consignment{}, err
	}

	// the template set may have changed since the form was rendered
	templates, err := s.templateRepository.FindAll(ctx)
	if err != nil {
		slog.Error("loading field templates", slog.String("error", err.Error()))
		return domain.Consignment{}, fmt.Errorf("loading field templates: %w", err)
	}

	measurements := make([]domain.Measurement, 0, len(templates))
	for _, t := range templates {
		selection, ok := submission.Selections[t.ID]
		if !ok || !selection.Selected {
			continue
		}

		measurement, err := domain.NewMeasurementBuilder().
			WithConsignmentID(consignment.ID).
			WithField(domain.ByTemplate{TemplateID: t.ID}).
			WithValue(selection.Value).
			Build()
		if err != nil {
			return domain.Consignment{}, fmt.Errorf("building measurement: %w", err)
		}
		measurements = append(measurements, measurement)
	}

	if err := s.consignmentRepository.CreateWithMeasurements(ctx, consignment, measurements); err != nil {
		if errors.Is(err, ErrConflict) {
			return domain.Consignment{}, ErrConflict
		}
		slog.Error("creating consignment with measurements", slog.String("error", err.Error()))
		return domain.Consignment{}, fmt.Errorf("creating consignment with measurements: %w", err)
	}

	slog.Info("consignment created from form",
		slog.String("id", consignment.ID.String()),
		slog.String("name", consignment.Name.String()),
		slog.Int("measurements", len(measurements)))

	return consignment, nil
}

func (s *SimpleCreationWorkflowService) SelectedTemplates(
	ctx context.Context,
	ids []shareddomain.ID,
) ([]domain.FieldTemplate, error) {
	if len(ids) == 0 {
		return []domain.FieldTemplate{}, nil
	}

	templates, err := s.templateRepository.FindByIDs(ctx, ids)
	if err != nil {
		slog.Error("loading selected templates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading selected templates: %w", err)
	}

	return templates, nil
}
