package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/consignment/persistence/internal"
	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/sql"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

var _likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func NewConsignmentRepository(orm sql.ORM) (*SimpleConsignmentRepository, error) {
	err := orm.AutoMigrate(internal.Models()...)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleConsignmentRepository{
		orm: orm,
	}, nil
}

var _ usecases.ConsignmentRepository = (*SimpleConsignmentRepository)(nil)

type SimpleConsignmentRepository struct {
	orm sql.ORM
}

func (r *SimpleConsignmentRepository) Create(ctx context.Context, consignment domain.Consignment) error {
	entity := internal.FromConsignment(consignment)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return translateWriteError("creating consignment", err)
	}

	return nil
}

func (r *SimpleConsignmentRepository) CreateWithMeasurements(
	ctx context.Context,
	consignment domain.Consignment,
	measurements []domain.Measurement,
) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		entity := internal.FromConsignment(consignment)
		if err := tx.Create(&entity).Error(); err != nil {
			return translateWriteError("creating consignment", err)
		}

		if len(measurements) == 0 {
			return nil
		}

		entities := make([]internal.Measurement, len(measurements))
		for i, m := range measurements {
			entities[i] = internal.FromMeasurement(m)
		}

		if err := tx.Create(&entities).Error(); err != nil {
			return translateWriteError("creating measurements", err)
		}

		return nil
	})
}

func (r *SimpleConsignmentRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Consignment, error) {
	var entity internal.Consignment
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Consignment{}, usecases.ErrConsignmentNotFound
	}

	if err != nil {
		return domain.Consignment{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleConsignmentRepository) FindAll(
	ctx context.Context,
	filter usecases.ConsignmentFilter,
) ([]domain.Consignment, int, error) {
	filtered := func() sql.ORM {
		query := r.orm.WithContext(ctx).Model(&internal.Consignment{})
		if filter.Search != "" {
			pattern := "%" + _likeEscaper.Replace(internal.SearchKey(filter.Search)) + "%"
			query = query.Where(`search_name LIKE ? ESCAPE '\'`, pattern)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	query := filtered().Order("name ASC")
	if filter.Pagination.Limit > 0 {
		query = query.Limit(filter.Pagination.Limit).Offset(filter.Pagination.Offset)
	}

	var entities []internal.Consignment
	if err := query.Find(&entities).Error(); err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	return toConsignments(entities), int(total), nil
}

func (r *SimpleConsignmentRepository) FindRecent(ctx context.Context, limit int) ([]domain.Consignment, error) {
	var entities []internal.Consignment
	err := r.orm.
		WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toConsignments(entities), nil
}

func (r *SimpleConsignmentRepository) ExistsByName(
	ctx context.Context,
	name shareddomain.Name,
	excludeID shareddomain.ID,
) (bool, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.Consignment{}).
		Where("name = ?", name.String())

	if !excludeID.IsEmpty() {
		query = query.Where("id <> ?", excludeID.String())
	}

	var count int64
	if err := query.Count(&count).Error(); err != nil {
		return false, fmt.Errorf("count query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleConsignmentRepository) Update(ctx context.Context, consignment domain.Consignment) error {
	if _, err := r.GetByID(ctx, consignment.ID); err != nil {
		return err
	}

	entity := internal.FromConsignment(consignment)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return translateWriteError("updating consignment", err)
	}

	return nil
}

// Delete removes the consignment together with the measurements it owns.
func (r *SimpleConsignmentRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var entity internal.Consignment
		err := tx.First(&entity, "id = ?", id.String()).Error()
		if errors.Is(err, sql.ErrRecordNotFound) {
			return usecases.ErrConsignmentNotFound
		}
		if err != nil {
			return fmt.Errorf("database query: %w", err)
		}

		err = tx.Where("consignment_id = ?", id.String()).Delete(&internal.Measurement{}).Error()
		if err != nil {
			return fmt.Errorf("deleting consignment measurements: %w", err)
		}

		err = tx.Delete(&internal.Consignment{}, "id = ?", id.String()).Error()
		if err != nil {
			return fmt.Errorf("deleting consignment: %w", err)
		}

		return nil
	})
}

func (r *SimpleConsignmentRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.orm.WithContext(ctx).Model(&internal.Consignment{}).Count(&count).Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}

	return int(count), nil
}

func toConsignments(entities []internal.Consignment) []domain.Consignment {
	result := make([]domain.Consignment, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result
}
