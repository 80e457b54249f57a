package domain

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID          int       `json:"id"`
	UUID        uuid.UUID `json:"uuid"`
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description" validate:"max=1000"`
	Completed   bool      `json:"completed"`
	UserId      int       `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Todo) BelongsToUser(userId int) bool {
	return t.UserId == userId
}

// TodoPatch carries a partial update. Nil fields are left untouched,
// present fields overwrite the stored value.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
