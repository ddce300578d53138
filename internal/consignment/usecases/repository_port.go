package usecases

import (
	"context"
	"errors"

	"consignment-server/internal/consignment/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

var (
	ErrFieldTemplateNotFound = errors.New("field template not found")
	ErrConsignmentNotFound   = errors.New("consignment not found")
	ErrMeasurementNotFound   = errors.New("measurement not found")
)

// Pagination with a zero Limit means "everything".
type Pagination struct {
	Limit  int
	Offset int
}

type ConsignmentFilter struct {
	// Search matches a case-insensitive substring of the name. Empty matches all.
	Search     string
	Pagination Pagination
}

type FieldTemplateRepository interface {
	Create(ctx context.Context, template domain.FieldTemplate) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.FieldTemplate, error)
	FindAll(ctx context.Context) ([]domain.FieldTemplate, error)
	FindByIDs(ctx context.Context, ids []shareddomain.ID) ([]domain.FieldTemplate, error)
	ExistsByName(ctx context.Context, name shareddomain.Name, excludeID shareddomain.ID) (bool, error)
	Update(ctx context.Context, template domain.FieldTemplate) error
	Delete(ctx context.Context, id shareddomain.ID) error
	Count(ctx context.Context) (int, error)
}

type ConsignmentRepository interface {
	Create(ctx context.Context, consignment domain.Consignment) error
	// CreateWithMeasurements stores the consignment and its measurements atomically.
	CreateWithMeasurements(ctx context.Context, consignment domain.Consignment, measurements []domain.Measurement) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Consignment, error)
	FindAll(ctx context.Context, filter ConsignmentFilter) ([]domain.Consignment, int, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Consignment, error)
	ExistsByName(ctx context.Context, name shareddomain.Name, excludeID shareddomain.ID) (bool, error)
	Update(ctx context.Context, consignment domain.Consignment) error
	Delete(ctx context.Context, id shareddomain.ID) error
	Count(ctx context.Context) (int, error)
}

type MeasurementRepository interface {
	Create(ctx context.Context, measurement domain.Measurement) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Measurement, error)
	// FindAllByConsignment returns measurements ordered by creation time, then id.
	FindAllByConsignment(ctx context.Context, consignmentID shareddomain.ID) ([]domain.Measurement, error)
	CountByTemplate(ctx context.Context, templateID shareddomain.ID) (measurements int, consignments int, err error)
	Update(ctx context.Context, measurement domain.Measurement) error
	Delete(ctx context.Context, id shareddomain.ID) error
	Count(ctx context.Context) (int, error)
}
