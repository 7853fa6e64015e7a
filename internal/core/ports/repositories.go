package ports

import (
	"context"
	"time"

	"nwc-wallet-service/internal/core/domain"

	"github.com/google/uuid"
)

// LedgerRepository persists the transaction ledger. Row lookups are always
// scoped to (owner, app); cross-app isolation relies on this scoping.
// Get methods return (nil, nil) when no row matches.
type LedgerRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByPaymentHash(ctx context.Context, ownerID, appID uuid.UUID, paymentHash string) (*domain.Transaction, error)
	GetByInvoice(ctx context.Context, ownerID, appID uuid.UUID, invoice string) (*domain.Transaction, error)
	// ListByApp returns rows in insertion order plus the unpaginated total.
	// limit <= 0 means no limit.
	ListByApp(ctx context.Context, ownerID, appID uuid.UUID, limit, offset int) ([]domain.Transaction, int64, error)
	SetBackendRequestID(ctx context.Context, id uuid.UUID, backendRequestID string) error
	MarkSettled(ctx context.Context, id uuid.UUID, preimage string, feesPaidMsat int64, settledAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

// AppRepository persists registered applications (the app registry).
type AppRepository interface {
	Create(ctx context.Context, app *domain.App) error
	GetByClientPubkey(ctx context.Context, clientPubkey string) (*domain.App, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.App, error)
	// ListAll is used once at startup to rebuild every subscription.
	ListAll(ctx context.Context) ([]domain.App, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository persists wallet owners.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateMnemonic(ctx context.Context, id uuid.UUID, mnemonic string) error
}
