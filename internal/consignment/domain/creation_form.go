package domain

import (
	"fmt"
	"strings"

	shareddomain "consignment-server/internal/shared_kernel/domain"
)

const (
	_toggleKeyPrefix = "field_"
	_valueKeyPrefix  = "value_"
)

// FieldInput describes the toggle and value inputs emitted for one template.
type FieldInput struct {
	TemplateID shareddomain.ID
	Label      string
	ToggleKey  string
	ValueKey   string
}

func NewFieldInput(template FieldTemplate) FieldInput {
	return FieldInput{
		TemplateID: template.ID,
		Label:      template.Name.String(),
		ToggleKey:  ToggleKey(template.ID),
		ValueKey:   ValueKey(template.ID),
	}
}

type CreationForm struct {
	Fields []FieldInput
}

func ToggleKey(templateID shareddomain.ID) string {
	return fmt.Sprintf("%s%s", _toggleKeyPrefix, templateID)
}

func ValueKey(templateID shareddomain.ID) string {
	return fmt.Sprintf("%s%s", _valueKeyPrefix, templateID)
}

// FieldSelection is the submitted state of one template's inputs.
type FieldSelection struct {
	Selected bool
	Value    string
}

// IsToggleOn reports whether a submitted toggle value means "selected".
func IsToggleOn(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}

// TemplateIDFromToggleKey extracts the template id from a "field_<id>" key.
func TemplateIDFromToggleKey(key string) (shareddomain.ID, bool) {
	if !strings.HasPrefix(key, _toggleKeyPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(key, _toggleKeyPrefix)
	if id == "" {
		return "", false
	}
	return shareddomain.ID(id), true
}
