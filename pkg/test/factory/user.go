package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todoapi/internal/core/domain"
)

// DefaultPassword is the plaintext behind every factory user's
// EncryptedPassword unless a test overrides it.
const DefaultPassword = "12345678"

func NewUser(customData ...map[string]any) domain.User {
	encryptedPassword, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)

	now := time.Now().UTC()

	defaults := map[string]any{
		"UUID":              uuid.New(),
		"EncryptedPassword": string(encryptedPassword),
		"CreatedAt":         now,
		"UpdatedAt":         now,
	}

	instance := fab.New(domain.User{})

	for _, custom := range customData {
		for key, value := range custom {
			defaults[key] = value
		}
	}

	return instance.Build(defaults)
}
