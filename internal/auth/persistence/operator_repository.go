package persistence

import (
	"context"
	"errors"
	"fmt"

	"consignment-server/internal/auth/domain"
	"consignment-server/internal/auth/persistence/internal"
	"consignment-server/internal/auth/usecases"
	"consignment-server/internal/infra/sql"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

func NewOperatorRepository(orm sql.ORM) (*SimpleOperatorRepository, error) {
	err := orm.AutoMigrate(&internal.Operator{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleOperatorRepository{
		orm: orm,
	}, nil
}

var _ usecases.OperatorRepository = (*SimpleOperatorRepository)(nil)

type SimpleOperatorRepository struct {
	orm sql.ORM
}

func (r *SimpleOperatorRepository) Create(ctx context.Context, operator domain.Operator) error {
	entity := internal.FromOperator(operator)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating operator: %w", err)
	}

	return nil
}

func (r *SimpleOperatorRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Operator, error) {
	return r.getBy(ctx, "id = ?", id.String())
}

func (r *SimpleOperatorRepository) GetByUsername(ctx context.Context, username string) (domain.Operator, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *SimpleOperatorRepository) getBy(ctx context.Context, query string, value string) (domain.Operator, error) {
	var entity internal.Operator
	err := r.orm.
		WithContext(ctx).
		First(&entity, query, value).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Operator{}, usecases.ErrOperatorNotFound
	}

	if err != nil {
		return domain.Operator{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}
