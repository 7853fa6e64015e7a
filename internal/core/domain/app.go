package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// App is a registered third-party application connected to a user's wallet.
// ClientPubkey identifies the app on the relay; ServiceSecret is the secret
// key the wallet service uses for this app's channel.
type App struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"`
	ClientPubkey  string    `json:"client_pubkey"`
	ServiceSecret string    `json:"-"` // never exposed after creation
	CreatedAt     time.Time `json:"created_at"`
}

// ConnectionURL builds the nostr+walletconnect URL handed to the client app
// exactly once, at creation time.
func ConnectionURL(servicePubkey, relayURL, clientSecret string) string {
	return fmt.Sprintf("nostr+walletconnect://%s?relay=%s&secret=%s", servicePubkey, relayURL, clientSecret)
}
