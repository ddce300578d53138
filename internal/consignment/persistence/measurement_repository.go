package persistence

import (
	"context"
	"errors"
	"fmt"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/consignment/persistence/internal"
	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/sql"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

func NewMeasurementRepository(orm sql.ORM) (*SimpleMeasurementRepository, error) {
	err := orm.AutoMigrate(internal.Models()...)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleMeasurementRepository{
		orm: orm,
	}, nil
}

var _ usecases.MeasurementRepository = (*SimpleMeasurementRepository)(nil)

type SimpleMeasurementRepository struct {
	orm sql.ORM
}

func (r *SimpleMeasurementRepository) Create(ctx context.Context, measurement domain.Measurement) error {
	entity := internal.FromMeasurement(measurement)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return translateWriteError("creating measurement", err)
	}

	return nil
}

func (r *SimpleMeasurementRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Measurement, error) {
	var entity internal.Measurement
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Measurement{}, usecases.ErrMeasurementNotFound
	}

	if err != nil {
		return domain.Measurement{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleMeasurementRepository) FindAllByConsignment(
	ctx context.Context,
	consignmentID shareddomain.ID,
) ([]domain.Measurement, error) {
	var entities []internal.Measurement
	err := r.orm.
		WithContext(ctx).
		Where("consignment_id = ?", consignmentID.String()).
		Order("created_at ASC, id ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Measurement, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleMeasurementRepository) CountByTemplate(
	ctx context.Context,
	templateID shareddomain.ID,
) (int, int, error) {
	var measurements int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Measurement{}).
		Where("field_template_id = ?", templateID.String()).
		Count(&measurements).
		Error()
	if err != nil {
		return 0, 0, fmt.Errorf("count query: %w", err)
	}

	var consignments int64
	err = r.orm.
		WithContext(ctx).
		Model(&internal.Measurement{}).
		Distinct("consignment_id").
		Where("field_template_id = ?", templateID.String()).
		Count(&consignments).
		Error()
	if err != nil {
		return 0, 0, fmt.Errorf("count query: %w", err)
	}

	return int(measurements), int(consignments), nil
}

func (r *SimpleMeasurementRepository) Update(ctx context.Context, measurement domain.Measurement) error {
	if _, err := r.GetByID(ctx, measurement.ID); err != nil {
		return err
	}

	entity := internal.FromMeasurement(measurement)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return translateWriteError("updating measurement", err)
	}

	return nil
}

func (r *SimpleMeasurementRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	result := r.orm.WithContext(ctx).Delete(&internal.Measurement{}, "id = ?", id.String())
	if err := result.Error(); err != nil {
		return fmt.Errorf("deleting measurement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return usecases.ErrMeasurementNotFound
	}

	return nil
}

func (r *SimpleMeasurementRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.orm.WithContext(ctx).Model(&internal.Measurement{}).Count(&count).Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}

	return int(count), nil
}
