package ports

import (
	"context"
	"time"

	"nwc-wallet-service/internal/core/domain"

	"github.com/google/uuid"
)

// Transfer status values reported by the Lightning backend.
const (
	TransferCompleted = "TRANSFER_COMPLETED"
	TransferFailed    = "TRANSFER_FAILED"
	TransferPending   = "TRANSFER_PENDING"
)

// BackendInvoice is the backend's answer to an invoice-creation call.
type BackendInvoice struct {
	EncodedInvoice string
	RequestID      string
}

// TransferStatus is the backend's answer to a settlement status query.
// FeeSat is only meaningful for send requests.
type TransferStatus struct {
	Status   string
	Preimage string
	FeeSat   int64
}

// SendResult is the backend's answer to a payment submission.
type SendResult struct {
	RequestID string
	FeeSat    int64
}

// LNBackend is the wallet capability: an opaque, eventually-consistent
// Lightning wallet. Amounts cross this boundary in whole satoshi.
type LNBackend interface {
	GetIdentityPubkey(ctx context.Context) (string, error)
	CreateInvoice(ctx context.Context, amountSat int64, memo string) (*BackendInvoice, error)
	ReceiveStatus(ctx context.Context, requestID string) (*TransferStatus, error)
	SendStatus(ctx context.Context, requestID string) (*TransferStatus, error)
	EstimateSendFee(ctx context.Context, invoice string) (int64, error)
	// SubmitPayment invokes onRequestID as soon as the backend assigns a
	// request id, before the submission itself resolves, so the caller can
	// persist it and keep the payment reconcilable across a crash.
	SubmitPayment(ctx context.Context, invoice string, maxFeeSat int64, onRequestID func(requestID string)) (*SendResult, error)
	GetBalance(ctx context.Context) (int64, error)
}

// LNBackendFactory builds one LNBackend per wallet seed. A fresh instance is
// required after credential rotation; there is no in-place hot swap.
type LNBackendFactory interface {
	New(ctx context.Context, mnemonic string) (LNBackend, error)
}

// ChannelKeys identify one protocol channel: the wallet side signs with
// ServiceSecret, the app side is addressed by ClientPubkey.
type ChannelKeys struct {
	ServiceSecret string
	ClientPubkey  string
}

// RequestResponder turns one decrypted protocol request payload into a
// response payload. Implementations must never return a fault: all failure
// is encoded inside the response envelope.
type RequestResponder interface {
	Respond(ctx context.Context, payload []byte) []byte
}

// UnsubscribeFunc tears down one protocol listener.
type UnsubscribeFunc func()

// NWCTransport is the relay carrying the wallet-control protocol.
type NWCTransport interface {
	PublishInfoEvent(ctx context.Context, serviceSecret string, methods []string) error
	Subscribe(ctx context.Context, keys ChannelKeys, responder RequestResponder) (UnsubscribeFunc, error)
}

// SubscriptionManager maintains exactly one protocol listener per app.
type SubscriptionManager interface {
	// Subscribe is idempotent per client pubkey: an existing subscription is
	// returned untouched.
	Subscribe(ctx context.Context, clientPubkey, serviceSecret string, backend LNBackend, ownerID, appID uuid.UUID) (UnsubscribeFunc, error)
	// Unsubscribe of an unknown pubkey is a no-op.
	Unsubscribe(clientPubkey string)
}

// LookupCache is the fast path for settled-transaction lookups. Settled rows
// are immutable, so cached entries can never go stale.
type LookupCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TokenService handles management-API session tokens.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (uuid.UUID, error)
}

// HashService handles password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// --- Management services ---

// AuthService covers signup, login and wallet-seed management.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (string, time.Time, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error)
	GetMnemonic(ctx context.Context, userID uuid.UUID) (string, error)
	// RotateMnemonic swaps the wallet seed and re-subscribes every app of the
	// owner against a freshly built backend.
	RotateMnemonic(ctx context.Context, userID uuid.UUID, mnemonic string) error
}

// CreatedApp is the one-time creation result; ConnectionURL embeds the
// client secret and is never reconstructable later.
type CreatedApp struct {
	App           domain.App
	ConnectionURL string
}

// AppService covers app registration and its subscription lifecycle.
type AppService interface {
	CreateApp(ctx context.Context, ownerID uuid.UUID, name string) (*CreatedApp, error)
	ListApps(ctx context.Context, ownerID uuid.UUID) ([]domain.App, error)
	DeleteApp(ctx context.Context, ownerID uuid.UUID, clientPubkey string) error
	// ResubscribeAll rebuilds the in-memory subscription map from the app
	// registry at process startup.
	ResubscribeAll(ctx context.Context) error
}
