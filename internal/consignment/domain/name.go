package domain

import (
	"unicode/utf8"

	shareddomain "consignment-server/internal/shared_kernel/domain"
)

const MaxNameLength = 200

// ValidateName applies the rules shared by template, consignment and custom field names.
func ValidateName(name shareddomain.Name) error {
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name.String()) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
