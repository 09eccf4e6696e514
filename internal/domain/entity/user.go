package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the owning identity for every other entity. Its lifecycle (signup,
// credentials, sessions) is managed by the identity collaborator; this core
// only ever reads it.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}
