package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns one hosted wallet (derived from Mnemonic) and any number of apps.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Mnemonic     string    `json:"-"` // wallet seed material, never serialized
	CreatedAt    time.Time `json:"created_at"`
}
