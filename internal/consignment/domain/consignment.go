package domain

import (
	"time"

	"consignment-server/internal/infra/utils"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// Consignment is a named production batch that owns its measurements.
type Consignment struct {
	ID        shareddomain.ID
	Name      shareddomain.Name
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Consignment) Rename(value string) error {
	name := shareddomain.NormalizeName(value)
	if err := ValidateName(name); err != nil {
		return err
	}
	c.Name = name
	c.Touch()
	return nil
}

func (c *Consignment) Touch() {
	c.UpdatedAt = time.Now()
}

func NewConsignmentBuilder() *consignmentBuilder {
	return &consignmentBuilder{}
}

type consignmentBuilder struct {
	actions []consignmentHandler
}

type consignmentHandler func(v *Consignment) error

func (b *consignmentBuilder) WithID(value shareddomain.ID) *consignmentBuilder {
	b.actions = append(b.actions, func(d *Consignment) error {
		d.ID = value
		return nil
	})
	return b
}

func (b *consignmentBuilder) WithName(value string) *consignmentBuilder {
	b.actions = append(b.actions, func(d *Consignment) error {
		d.Name = shareddomain.NormalizeName(value)
		return nil
	})
	return b
}

func (b *consignmentBuilder) Build() (Consignment, error) {
	now := time.Now()
	result := Consignment{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Consignment{}, err
		}
	}

	if err := ValidateName(result.Name); err != nil {
		return Consignment{}, err
	}

	return result, nil
}

// ConsignmentDetail is a consignment with its measurements in creation order.
type ConsignmentDetail struct {
	Consignment  Consignment
	Measurements []MeasurementDetail
}
