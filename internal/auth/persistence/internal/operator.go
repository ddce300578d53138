package internal

import (
	"time"

	"consignment-server/internal/auth/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

type Operator struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Operator) TableName() string {
	return "operators"
}

func FromOperator(value domain.Operator) Operator {
	return Operator{
		ID:           value.ID.String(),
		Username:     value.Username,
		PasswordHash: value.PasswordHash,
		CreatedAt:    value.CreatedAt,
	}
}

func (o Operator) ToDomain() domain.Operator {
	return domain.Operator{
		ID:           shareddomain.ID(o.ID),
		Username:     o.Username,
		PasswordHash: o.PasswordHash,
		CreatedAt:    o.CreatedAt,
	}
}
