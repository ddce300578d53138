package domain

import (
	"time"

	"consignment-server/internal/infra/utils"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// FieldTemplate is a reusable, named measurement kind such as "weight".
type FieldTemplate struct {
	ID        shareddomain.ID
	Name      shareddomain.Name
	CreatedAt time.Time
}

func (t *FieldTemplate) Rename(value string) error {
	name := shareddomain.NormalizeName(value)
	if err := ValidateName(name); err != nil {
		return err
	}
	t.Name = name
	return nil
}

func NewFieldTemplateBuilder() *fieldTemplateBuilder {
	return &fieldTemplateBuilder{}
}

type fieldTemplateBuilder struct {
	actions []fieldTemplateHandler
}

type fieldTemplateHandler func(v *FieldTemplate) error

func (b *fieldTemplateBuilder) WithID(value shareddomain.ID) *fieldTemplateBuilder {
	b.actions = append(b.actions, func(d *FieldTemplate) error {
		d.ID = value
		return nil
	})
	return b
}

func (b *fieldTemplateBuilder) WithName(value string) *fieldTemplateBuilder {
	b.actions = append(b.actions, func(d *FieldTemplate) error {
		d.Name = shareddomain.NormalizeName(value)
		return nil
	})
	return b
}

func (b *fieldTemplateBuilder) Build() (FieldTemplate, error) {
	result := FieldTemplate{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: time.Now(),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldTemplate{}, err
		}
	}

	if err := ValidateName(result.Name); err != nil {
		return FieldTemplate{}, err
	}

	return result, nil
}

// FieldTemplateDeletionImpact summarises what a template deletion cascades to.
type FieldTemplateDeletionImpact struct {
	Template         FieldTemplate
	MeasurementCount int
	ConsignmentCount int
}

func (i FieldTemplateDeletionImpact) HasDependents() bool {
	return i.MeasurementCount > 0
}
