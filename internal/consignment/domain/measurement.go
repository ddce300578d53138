package domain

import (
	"time"

	"consignment-server/internal/infra/utils"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// Measurement is one field/value pair recorded against a consignment. Values
// are opaque text and may be empty.
type Measurement struct {
	ID            shareddomain.ID
	ConsignmentID shareddomain.ID
	Field         FieldIdentity
	Value         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Update replaces identity and value. UpdatedAt moves even when nothing changed.
func (m *Measurement) Update(field FieldIdentity, value string) error {
	if field == nil {
		return ErrFieldIdentityRequired
	}
	m.Field = field
	m.Value = value
	m.UpdatedAt = time.Now()
	return nil
}

func (m Measurement) TemplateID() (shareddomain.ID, bool) {
	if f, ok := m.Field.(ByTemplate); ok {
		return f.TemplateID, true
	}
	return "", false
}

func (m Measurement) CustomFieldName() (string, bool) {
	if f, ok := m.Field.(ByCustomName); ok {
		return f.Name, true
	}
	return "", false
}

// FieldName resolves the display name, given a lookup of template names.
func (m Measurement) FieldName(templateNames map[shareddomain.ID]shareddomain.Name) string {
	switch f := m.Field.(type) {
	case ByTemplate:
		return templateNames[f.TemplateID].String()
	case ByCustomName:
		return f.Name
	default:
		return ""
	}
}

func NewMeasurementBuilder() *measurementBuilder {
	return &measurementBuilder{}
}

type measurementBuilder struct {
	actions []measurementHandler
}

type measurementHandler func(v *Measurement) error

func (b *measurementBuilder) WithConsignmentID(value shareddomain.ID) *measurementBuilder {
	b.actions = append(b.actions, func(d *Measurement) error {
		if value.IsEmpty() {
			return ErrConsignmentIDRequired
		}
		d.ConsignmentID = value
		return nil
	})
	return b
}

func (b *measurementBuilder) WithField(value FieldIdentity) *measurementBuilder {
	b.actions = append(b.actions, func(d *Measurement) error {
		d.Field = value
		return nil
	})
	return b
}

func (b *measurementBuilder) WithValue(value string) *measurementBuilder {
	b.actions = append(b.actions, func(d *Measurement) error {
		d.Value = value
		return nil
	})
	return b
}

func (b *measurementBuilder) Build() (Measurement, error) {
	now := time.Now()
	result := Measurement{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Measurement{}, err
		}
	}

	if result.ConsignmentID.IsEmpty() {
		return Measurement{}, ErrConsignmentIDRequired
	}

	if result.Field == nil {
		return Measurement{}, ErrFieldIdentityRequired
	}

	return result, nil
}

// MeasurementDetail pairs a measurement with its effective field name.
type MeasurementDetail struct {
	Measurement Measurement
	FieldName   string
}
