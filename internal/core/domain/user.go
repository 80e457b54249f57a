package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                int
	UUID              uuid.UUID
	Email             string `validate:"required,email,max=255"`
	EncryptedPassword string `validate:"required"`
	FirstName         string
	LastName          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserPatch carries a partial profile update, same semantics as TodoPatch.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}
