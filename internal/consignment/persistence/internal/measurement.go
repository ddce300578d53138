package internal

import (
	"time"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/infra/utils"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// Measurement stores the field identity as a nullable template reference plus a
// custom name. FieldKey mirrors the identity so the unique index also covers
// custom fields, which would otherwise slip through on NULL template ids.
type Measurement struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	ConsignmentID   string    `json:"consignment_id" gorm:"not null;uniqueIndex:idx_measurements_field,priority:1"`
	FieldTemplateID *string   `json:"field_template_id,omitempty" gorm:"index"`
	CustomFieldName string    `json:"custom_field_name" gorm:"size:200;not null;default:''"`
	FieldKey        string    `json:"-" gorm:"not null;uniqueIndex:idx_measurements_field,priority:2"`
	Value           string    `json:"value" gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Measurement) TableName() string {
	return "measurements"
}

func FromMeasurement(value domain.Measurement) Measurement {
	entity := Measurement{
		ID:            value.ID.String(),
		ConsignmentID: value.ConsignmentID.String(),
		Value:         value.Value,
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}

	switch f := value.Field.(type) {
	case domain.ByTemplate:
		entity.FieldTemplateID = utils.StringPtr(f.TemplateID.String())
	case domain.ByCustomName:
		entity.CustomFieldName = f.Name
	}

	if value.Field != nil {
		entity.FieldKey = value.Field.Key()
	}

	return entity
}

func (m Measurement) ToDomain() domain.Measurement {
	var field domain.FieldIdentity
	if m.FieldTemplateID != nil {
		field = domain.ByTemplate{TemplateID: shareddomain.ID(*m.FieldTemplateID)}
	} else {
		field = domain.ByCustomName{Name: m.CustomFieldName}
	}

	return domain.Measurement{
		ID:            shareddomain.ID(m.ID),
		ConsignmentID: shareddomain.ID(m.ConsignmentID),
		Field:         field,
		Value:         m.Value,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
