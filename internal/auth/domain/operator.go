package domain

import (
	"fmt"
	"strings"
	"time"

	"consignment-server/internal/infra/utils"
	shareddomain "consignment-server/internal/shared_kernel/domain"

	"golang.org/x/crypto/bcrypt"
)

// Operator is a back-office account allowed into the admin panel.
type Operator struct {
	ID           shareddomain.ID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

func (o Operator) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)) == nil
}

func NewOperatorBuilder() *operatorBuilder {
	return &operatorBuilder{}
}

type operatorBuilder struct {
	actions []operatorHandler
}

type operatorHandler func(v *Operator) error

func (b *operatorBuilder) WithID(value shareddomain.ID) *operatorBuilder {
	b.actions = append(b.actions, func(d *Operator) error {
		d.ID = value
		return nil
	})
	return b
}

func (b *operatorBuilder) WithUsername(value string) *operatorBuilder {
	b.actions = append(b.actions, func(d *Operator) error {
		d.Username = strings.TrimSpace(value)
		return nil
	})
	return b
}

// WithPassword hashes the plain text password with bcrypt.
func (b *operatorBuilder) WithPassword(value string) *operatorBuilder {
	b.actions = append(b.actions, func(d *Operator) error {
		if value == "" {
			return ErrPasswordRequired
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		d.PasswordHash = string(hash)
		return nil
	})
	return b
}

func (b *operatorBuilder) Build() (Operator, error) {
	result := Operator{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: time.Now(),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Operator{}, err
		}
	}

	if result.Username == "" {
		return Operator{}, ErrUsernameRequired
	}
	if result.PasswordHash == "" {
		return Operator{}, ErrPasswordRequired
	}

	return result, nil
}
