package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nwc-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const ledgerColumns = `id, owner_id, app_id, direction, state, invoice, payment_hash, amount_msat, fees_paid_msat, description, preimage, backend_request_id, created_at, expires_at, settled_at`

// Create inserts a new ledger row. The unique indexes on
// (owner_id, app_id, payment_hash) and (owner_id, app_id, invoice) surface
// duplicates as constraint violations.
func (r *LedgerRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, owner_id, app_id, direction, state, invoice, payment_hash,
		amount_msat, fees_paid_msat, description, preimage, backend_request_id, created_at, expires_at, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.OwnerID, t.AppID, t.Direction, t.State,
		t.Invoice, t.PaymentHash, t.AmountMsat, t.FeesPaidMsat,
		t.Description, t.Preimage, t.BackendRequestID,
		t.CreatedAt, t.ExpiresAt, t.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByPaymentHash fetches one ledger row scoped to (owner, app).
func (r *LedgerRepo) GetByPaymentHash(ctx context.Context, ownerID, appID uuid.UUID, paymentHash string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE owner_id = $1 AND app_id = $2 AND payment_hash = $3`, ledgerColumns)

	return r.scanTransaction(r.pool.QueryRow(ctx, query, ownerID, appID, paymentHash))
}

// GetByInvoice fetches one ledger row scoped to (owner, app).
func (r *LedgerRepo) GetByInvoice(ctx context.Context, ownerID, appID uuid.UUID, invoice string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE owner_id = $1 AND app_id = $2 AND invoice = $3`, ledgerColumns)

	return r.scanTransaction(r.pool.QueryRow(ctx, query, ownerID, appID, invoice))
}

// ListByApp fetches an app's rows in insertion order plus the unpaginated
// total. limit <= 0 disables the limit.
func (r *LedgerRepo) ListByApp(ctx context.Context, ownerID, appID uuid.UUID, limit, offset int) ([]domain.Transaction, int64, error) {
	countQuery := `SELECT COUNT(*) FROM transactions WHERE owner_id = $1 AND app_id = $2`
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, ownerID, appID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE owner_id = $1 AND app_id = $2 ORDER BY created_at, id`, ledgerColumns)
	args := []any{ownerID, appID}
	if limit > 0 {
		query += " LIMIT $3 OFFSET $4"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " OFFSET $3"
		args = append(args, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.OwnerID, &t.AppID, &t.Direction, &t.State,
			&t.Invoice, &t.PaymentHash, &t.AmountMsat, &t.FeesPaidMsat,
			&t.Description, &t.Preimage, &t.BackendRequestID,
			&t.CreatedAt, &t.ExpiresAt, &t.SettledAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// SetBackendRequestID stores the backend's request id the moment it is
// known, keeping the row reconcilable across a crash.
func (r *LedgerRepo) SetBackendRequestID(ctx context.Context, id uuid.UUID, backendRequestID string) error {
	query := `UPDATE transactions SET backend_request_id = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, backendRequestID, id)
	if err != nil {
		return fmt.Errorf("set backend request id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// MarkSettled moves a row to the settled state. Repeating the update with
// the same backend-derived values is harmless.
func (r *LedgerRepo) MarkSettled(ctx context.Context, id uuid.UUID, preimage string, feesPaidMsat int64, settledAt time.Time) error {
	query := `UPDATE transactions SET state = $1, preimage = $2, fees_paid_msat = $3, settled_at = $4 WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, domain.StateSettled, preimage, feesPaidMsat, settledAt, id)
	if err != nil {
		return fmt.Errorf("mark transaction settled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// MarkFailed moves a row to the failed state.
func (r *LedgerRepo) MarkFailed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE transactions SET state = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, domain.StateFailed, id)
	if err != nil {
		return fmt.Errorf("mark transaction failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// scanTransaction is a helper to scan a single row into a Transaction.
func (r *LedgerRepo) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.AppID, &t.Direction, &t.State,
		&t.Invoice, &t.PaymentHash, &t.AmountMsat, &t.FeesPaidMsat,
		&t.Description, &t.Preimage, &t.BackendRequestID,
		&t.CreatedAt, &t.ExpiresAt, &t.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}
