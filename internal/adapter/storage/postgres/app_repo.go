package postgres

import (
	"context"
	"errors"
	"fmt"

	"nwc-wallet-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AppRepo implements ports.AppRepository.
type AppRepo struct {
	pool Pool
}

// NewAppRepo creates a new AppRepo.
func NewAppRepo(pool Pool) *AppRepo {
	return &AppRepo{pool: pool}
}

// Create inserts a new app registration.
func (r *AppRepo) Create(ctx context.Context, app *domain.App) error {
	query := `INSERT INTO apps (id, owner_id, name, client_pubkey, service_secret, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		app.ID, app.OwnerID, app.Name, app.ClientPubkey, app.ServiceSecret, app.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert app: %w", err)
	}
	return nil
}

// GetByClientPubkey fetches an app by its client pubkey, the key the
// subscription map is built on.
func (r *AppRepo) GetByClientPubkey(ctx context.Context, clientPubkey string) (*domain.App, error) {
	query := `SELECT id, owner_id, name, client_pubkey, service_secret, created_at FROM apps WHERE client_pubkey = $1`

	return r.scanApp(r.pool.QueryRow(ctx, query, clientPubkey))
}

// ListByOwner fetches all apps registered by one owner.
func (r *AppRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.App, error) {
	query := `SELECT id, owner_id, name, client_pubkey, service_secret, created_at FROM apps WHERE owner_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}
	defer rows.Close()

	return r.collectApps(rows)
}

// ListAll fetches every registered app. Used once at startup to rebuild the
// subscription map.
func (r *AppRepo) ListAll(ctx context.Context) ([]domain.App, error) {
	query := `SELECT id, owner_id, name, client_pubkey, service_secret, created_at FROM apps ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all apps: %w", err)
	}
	defer rows.Close()

	return r.collectApps(rows)
}

// Delete removes an app registration. The ledger keeps the app's rows for
// audit.
func (r *AppRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM apps WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete app: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("app not found: %s", id)
	}
	return nil
}

func (r *AppRepo) scanApp(row pgx.Row) (*domain.App, error) {
	a := &domain.App{}
	err := row.Scan(&a.ID, &a.OwnerID, &a.Name, &a.ClientPubkey, &a.ServiceSecret, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan app: %w", err)
	}
	return a, nil
}

func (r *AppRepo) collectApps(rows pgx.Rows) ([]domain.App, error) {
	var apps []domain.App
	for rows.Next() {
		a := domain.App{}
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Name, &a.ClientPubkey, &a.ServiceSecret, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan app row: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate app rows: %w", err)
	}
	return apps, nil
}
