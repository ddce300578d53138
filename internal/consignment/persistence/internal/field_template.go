package internal

import (
	"time"

	"consignment-server/internal/consignment/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

type FieldTemplate struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"size:200;not null;uniqueIndex"`
	CreatedAt    time.Time     `json:"created_at"`
	Measurements []Measurement `json:"-" gorm:"foreignKey:FieldTemplateID;constraint:OnDelete:CASCADE"`
}

func (FieldTemplate) TableName() string {
	return "field_templates"
}

func FromFieldTemplate(value domain.FieldTemplate) FieldTemplate {
	return FieldTemplate{
		ID:        value.ID.String(),
		Name:      value.Name.String(),
		CreatedAt: value.CreatedAt,
	}
}

func (t FieldTemplate) ToDomain() domain.FieldTemplate {
	return domain.FieldTemplate{
		ID:        shareddomain.ID(t.ID),
		Name:      shareddomain.Name(t.Name),
		CreatedAt: t.CreatedAt,
	}
}
