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

func NewFieldTemplateRepository(orm sql.ORM) (*SimpleFieldTemplateRepository, error) {
	err := orm.AutoMigrate(internal.Models()...)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldTemplateRepository{
		orm: orm,
	}, nil
}

var _ usecases.FieldTemplateRepository = (*SimpleFieldTemplateRepository)(nil)

type SimpleFieldTemplateRepository struct {
	orm sql.ORM
}

func (r *SimpleFieldTemplateRepository) Create(ctx context.Context, template domain.FieldTemplate) error {
	entity := internal.FromFieldTemplate(template)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return translateWriteError("creating field template", err)
	}

	return nil
}

func (r *SimpleFieldTemplateRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.FieldTemplate, error) {
	var entity internal.FieldTemplate
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldTemplate{}, usecases.ErrFieldTemplateNotFound
	}

	if err != nil {
		return domain.FieldTemplate{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldTemplateRepository) FindAll(ctx context.Context) ([]domain.FieldTemplate, error) {
	var entities []internal.FieldTemplate
	err := r.orm.
		WithContext(ctx).
		Order("name ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toFieldTemplates(entities), nil
}

func (r *SimpleFieldTemplateRepository) FindByIDs(ctx context.Context, ids []shareddomain.ID) ([]domain.FieldTemplate, error) {
	if len(ids) == 0 {
		return []domain.FieldTemplate{}, nil
	}

	var entities []internal.FieldTemplate
	err := r.orm.
		WithContext(ctx).
		Where("id IN ?", idStrings(ids)).
		Order("name ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toFieldTemplates(entities), nil
}

func (r *SimpleFieldTemplateRepository) ExistsByName(
	ctx context.Context,
	name shareddomain.Name,
	excludeID shareddomain.ID,
) (bool, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.FieldTemplate{}).
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

func (r *SimpleFieldTemplateRepository) Update(ctx context.Context, template domain.FieldTemplate) error {
	if _, err := r.GetByID(ctx, template.ID); err != nil {
		return err
	}

	entity := internal.FromFieldTemplate(template)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return translateWriteError("updating field template", err)
	}

	return nil
}

// Delete removes the template and every measurement that references it.
func (r *SimpleFieldTemplateRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var entity internal.FieldTemplate
		err := tx.First(&entity, "id = ?", id.String()).Error()
		if errors.Is(err, sql.ErrRecordNotFound) {
			return usecases.ErrFieldTemplateNotFound
		}
		if err != nil {
			return fmt.Errorf("database query: %w", err)
		}

		err = tx.Where("field_template_id = ?", id.String()).Delete(&internal.Measurement{}).Error()
		if err != nil {
			return fmt.Errorf("deleting template measurements: %w", err)
		}

		err = tx.Delete(&internal.FieldTemplate{}, "id = ?", id.String()).Error()
		if err != nil {
			return fmt.Errorf("deleting field template: %w", err)
		}

		return nil
	})
}

func (r *SimpleFieldTemplateRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.orm.WithContext(ctx).Model(&internal.FieldTemplate{}).Count(&count).Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}

	return int(count), nil
}

func toFieldTemplates(entities []internal.FieldTemplate) []domain.FieldTemplate {
	result := make([]domain.FieldTemplate, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result
}
