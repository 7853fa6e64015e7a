package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionDirection tells whether money moved into or out of the wallet.
type TransactionDirection string

const (
	DirectionIncoming TransactionDirection = "incoming"
	DirectionOutgoing TransactionDirection = "outgoing"
)

// TransactionState is the ledger lifecycle state. The protocol exposes the
// same strings, so they are lowercase on purpose.
type TransactionState string

const (
	StatePending TransactionState = "pending"
	StateSettled TransactionState = "settled"
	StateFailed  TransactionState = "failed"
)

// Transaction is a ledger row: one per invoice, incoming or outgoing.
// Amounts are millisatoshi everywhere inside the service; the Lightning
// backend's native satoshi are converted at the adapter boundary.
type Transaction struct {
	ID               uuid.UUID            `json:"id"`
	OwnerID          uuid.UUID            `json:"owner_id"`
	AppID            uuid.UUID            `json:"app_id"`
	Direction        TransactionDirection `json:"direction"`
	State            TransactionState     `json:"state"`
	Invoice          string               `json:"invoice"`
	PaymentHash      string               `json:"payment_hash"`
	AmountMsat       int64                `json:"amount_msat"`
	FeesPaidMsat     *int64               `json:"fees_paid_msat,omitempty"`
	Description      string               `json:"description"`
	Preimage         *string              `json:"preimage,omitempty"`
	BackendRequestID *string              `json:"backend_request_id,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	ExpiresAt        time.Time            `json:"expires_at"`
	SettledAt        *time.Time           `json:"settled_at,omitempty"`
}

// IsTerminal returns true if the transaction can no longer change state.
func (t *Transaction) IsTerminal() bool {
	return t.State == StateSettled || t.State == StateFailed
}

// Reconcilable returns true if a backend status query can move this row out
// of pending. A pending row without a backend request id is an orphan that
// only manual intervention can heal.
func (t *Transaction) Reconcilable() bool {
	return t.State == StatePending && t.BackendRequestID != nil && *t.BackendRequestID != ""
}

// MsatToSat floors a millisatoshi amount to whole satoshi. The floor is
// applied exactly once, at the backend boundary.
func MsatToSat(msat int64) int64 {
	return msat / 1000
}

// SatToMsat converts the backend's satoshi into millisatoshi.
func SatToMsat(sat int64) int64 {
	return sat * 1000
}
