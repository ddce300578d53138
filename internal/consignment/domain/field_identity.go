package domain

import (
	"strings"
	"unicode/utf8"

	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// FieldIdentity names what a measurement measures. It is either a reference to
// a FieldTemplate or a free-text custom name, never both.
type FieldIdentity interface {
	// Key is unique per identity and used as part of the store's uniqueness constraint.
	Key() string
	isFieldIdentity()
}

type ByTemplate struct {
	TemplateID shareddomain.ID
}

func (ByTemplate) isFieldIdentity() {}

func (f ByTemplate) Key() string {
	return "t:" + f.TemplateID.String()
}

type ByCustomName struct {
	Name string
}

func (ByCustomName) isFieldIdentity() {}

func (f ByCustomName) Key() string {
	return "c:" + f.Name
}

func NewByTemplate(templateID shareddomain.ID) (ByTemplate, error) {
	if templateID.IsEmpty() {
		return ByTemplate{}, ErrTemplateIDRequired
	}
	return ByTemplate{TemplateID: templateID}, nil
}

func NewByCustomName(name string) (ByCustomName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ByCustomName{}, ErrCustomFieldNameRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return ByCustomName{}, ErrNameTooLong
	}
	return ByCustomName{Name: trimmed}, nil
}

// ParseFieldIdentity turns raw form input into an identity. A blank custom
// name counts as absent.
func ParseFieldIdentity(templateID, customName string) (FieldIdentity, error) {
	hasTemplate := strings.TrimSpace(templateID) != ""
	hasCustom := strings.TrimSpace(customName) != ""

	switch {
	case hasTemplate && hasCustom:
		return nil, ErrFieldIdentityAmbiguous
	case hasTemplate:
		return NewByTemplate(shareddomain.ID(strings.TrimSpace(templateID)))
	case hasCustom:
		return NewByCustomName(customName)
	default:
		return nil, ErrFieldIdentityRequired
	}
}
