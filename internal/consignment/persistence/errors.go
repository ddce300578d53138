package persistence

import (
	"errors"
	"fmt"

	"consignment-server/internal/consignment/usecases"
	"consignment-server/internal/infra/sql"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// translateWriteError maps store constraint violations onto the usecase conflict.
func translateWriteError(action string, err error) error {
	switch {
	case errors.Is(err, sql.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", action, usecases.ErrConflict)
	case errors.Is(err, sql.ErrForeignKeyViolation):
		return fmt.Errorf("%s: referenced record no longer exists: %w", action, usecases.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}

func idStrings(ids []shareddomain.ID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.String()
	}
	return result
}
