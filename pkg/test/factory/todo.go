package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"

	"todoapi/internal/core/domain"
)

func NewTodo(customData ...map[string]any) domain.Todo {
	now := time.Now().UTC()

	defaults := map[string]any{
		"UUID":      uuid.New(),
		"Completed": false,
		"CreatedAt": now,
		"UpdatedAt": now,
	}

	instance := fab.New(domain.Todo{})

	for _, custom := range customData {
		for key, value := range custom {
			defaults[key] = value
		}
	}

	return instance.Build(defaults)
}
