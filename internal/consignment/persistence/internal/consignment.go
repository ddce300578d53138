package internal

import (
	"strings"
	"time"

	"consignment-server/internal/consignment/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// Consignment keeps SearchName, the Unicode lowercase form of Name, so that
// case-insensitive search does not depend on the store's LOWER().
type Consignment struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"size:200;not null;uniqueIndex"`
	SearchName   string        `json:"-" gorm:"size:800;not null;default:''"`
	CreatedAt    time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Measurements []Measurement `json:"-" gorm:"foreignKey:ConsignmentID;constraint:OnDelete:CASCADE"`
}

func (Consignment) TableName() string {
	return "consignments"
}

func FromConsignment(value domain.Consignment) Consignment {
	return Consignment{
		ID:         value.ID.String(),
		Name:       value.Name.String(),
		SearchName: SearchKey(value.Name.String()),
		CreatedAt:  value.CreatedAt,
		UpdatedAt:  value.UpdatedAt,
	}
}

func SearchKey(value string) string {
	return strings.ToLower(value)
}

func (c Consignment) ToDomain() domain.Consignment {
	return domain.Consignment{
		ID:        shareddomain.ID(c.ID),
		Name:      shareddomain.Name(c.Name),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
