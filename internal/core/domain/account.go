package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered bidder/seller identity. Address is the account's
// identity at the custody collaborators; AccessKey/SecretKeyEnc authenticate
// signed API requests.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Address      string    `json:"address"`
	AccessKey    string    `json:"access_key"`
	SecretKeyEnc string    `json:"-"` // AES-256-GCM encrypted, never exposed
	CreatedAt    time.Time `json:"created_at"`
}
