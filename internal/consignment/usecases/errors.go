package usecases

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"consignment-server/internal/consignment/domain"
)

// ErrConflict reports a store uniqueness violation, typically a racing duplicate.
var ErrConflict = errors.New("conflicting record already exists")

const (
	FieldName            = "name"
	FieldIdentity        = "field"
	FieldTemplateID      = "field_template_id"
	FieldCustomFieldName = "custom_field_name"
)

// ValidationError carries per-field messages for redisplaying a form.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

var _domainValidationErrors = []error{
	domain.ErrNameRequired,
	domain.ErrNameTooLong,
	domain.ErrFieldIdentityRequired,
	domain.ErrFieldIdentityAmbiguous,
	domain.ErrTemplateIDRequired,
	domain.ErrCustomFieldNameRequired,
}

// asValidation attributes a domain rule violation to a form field. Other errors
// pass through untouched.
func asValidation(field string, err error) error {
	for _, target := range _domainValidationErrors {
		if errors.Is(err, target) {
			return NewValidationError(field, err.Error())
		}
	}
	return err
}
