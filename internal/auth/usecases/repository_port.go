package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/auth/usecases/repository_port_mock.go -package=usecases -mock_names=OperatorRepository=MockOperatorRepository

import (
	"context"
	"errors"

	"consignment-server/internal/auth/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

var ErrOperatorNotFound = errors.New("operator not found")

type OperatorRepository interface {
	Create(ctx context.Context, operator domain.Operator) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Operator, error)
	GetByUsername(ctx context.Context, username string) (domain.Operator, error)
}
