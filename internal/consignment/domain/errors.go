package domain

import "errors"

var (
	ErrNameRequired            = errors.New("name is required")
	ErrNameTooLong             = errors.New("name must be at most 200 characters")
	ErrConsignmentIDRequired   = errors.New("consignment ID is required")
	ErrFieldIdentityRequired   = errors.New("select a field template or enter a custom field name")
	ErrFieldIdentityAmbiguous  = errors.New("use either a field template or a custom field name, not both")
	ErrTemplateIDRequired      = errors.New("field template ID is required")
	ErrCustomFieldNameRequired = errors.New("custom field name is required")
)
