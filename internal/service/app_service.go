package service

import (
	"context"
	"fmt"
	"time"

	"nwc-wallet-service/internal/core/domain"
	"nwc-wallet-service/internal/core/ports"
	"nwc-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	gonostr "github.com/nbd-wtf/go-nostr"
	"github.com/rs/zerolog"
)

// AppServiceImpl implements ports.AppService.
type AppServiceImpl struct {
	appRepo  ports.AppRepository
	provider *BackendProvider
	subs     ports.SubscriptionManager
	relayURL string
	log      zerolog.Logger
}

// NewAppService creates a new AppServiceImpl.
func NewAppService(
	appRepo ports.AppRepository,
	provider *BackendProvider,
	subs ports.SubscriptionManager,
	relayURL string,
	log zerolog.Logger,
) *AppServiceImpl {
	return &AppServiceImpl{
		appRepo:  appRepo,
		provider: provider,
		subs:     subs,
		relayURL: relayURL,
		log:      log,
	}
}

// CreateApp registers an app, starts its protocol listener and builds the
// one-time connection URL. The client secret is embedded in the URL and
// never stored, so the URL cannot be reconstructed later.
func (s *AppServiceImpl) CreateApp(ctx context.Context, ownerID uuid.UUID, name string) (*ports.CreatedApp, error) {
	if name == "" {
		return nil, apperror.Validation("app name is required")
	}

	backend, err := s.provider.For(ctx, ownerID)
	if err != nil {
		return nil, apperror.ErrBackendUnavailable(err)
	}

	clientSecret := gonostr.GeneratePrivateKey()
	clientPubkey, err := gonostr.GetPublicKey(clientSecret)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive client pubkey: %w", err))
	}
	serviceSecret := gonostr.GeneratePrivateKey()
	servicePubkey, err := gonostr.GetPublicKey(serviceSecret)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive service pubkey: %w", err))
	}

	app := &domain.App{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		ClientPubkey:  clientPubkey,
		ServiceSecret: serviceSecret,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create app: %w", err))
	}

	// An app without a listener is useless: creation fails as a whole when
	// the subscription cannot start, and the registration is rolled back.
	if _, err := s.subs.Subscribe(ctx, clientPubkey, serviceSecret, backend, ownerID, app.ID); err != nil {
		if delErr := s.appRepo.Delete(ctx, app.ID); delErr != nil {
			s.log.Error().Err(delErr).Str("app_id", app.ID.String()).Msg("failed to roll back app registration")
		}
		return nil, apperror.InternalError(fmt.Errorf("subscribe app: %w", err))
	}

	s.log.Info().
		Str("app_id", app.ID.String()).
		Str("client_pubkey", clientPubkey).
		Msg("app registered")

	return &ports.CreatedApp{
		App:           *app,
		ConnectionURL: domain.ConnectionURL(servicePubkey, s.relayURL, clientSecret),
	}, nil
}

// ListApps returns the owner's registered apps.
func (s *AppServiceImpl) ListApps(ctx context.Context, ownerID uuid.UUID) ([]domain.App, error) {
	apps, err := s.appRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list apps: %w", err))
	}
	return apps, nil
}

// DeleteApp tears down the listener and removes the registration. Ledger
// rows of the app are kept.
func (s *AppServiceImpl) DeleteApp(ctx context.Context, ownerID uuid.UUID, clientPubkey string) error {
	app, err := s.appRepo.GetByClientPubkey(ctx, clientPubkey)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load app: %w", err))
	}
	// An app belonging to someone else is indistinguishable from a missing
	// one, by ownership scoping.
	if app == nil || app.OwnerID != ownerID {
		return apperror.ErrNotFound("app")
	}

	s.subs.Unsubscribe(clientPubkey)

	if err := s.appRepo.Delete(ctx, app.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete app: %w", err))
	}

	s.log.Info().Str("client_pubkey", clientPubkey).Msg("app deleted")
	return nil
}

// ResubscribeAll rebuilds the subscription map from the app registry. Runs
// once at startup; one broken app must not keep the rest offline, so
// failures are logged and skipped.
func (s *AppServiceImpl) ResubscribeAll(ctx context.Context) error {
	apps, err := s.appRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list apps: %w", err)
	}

	var restored int
	for _, app := range apps {
		backend, err := s.provider.For(ctx, app.OwnerID)
		if err != nil {
			s.log.Error().Err(err).
				Str("app_id", app.ID.String()).
				Str("owner_id", app.OwnerID.String()).
				Msg("failed to open wallet session for app")
			continue
		}
		if _, err := s.subs.Subscribe(ctx, app.ClientPubkey, app.ServiceSecret, backend, app.OwnerID, app.ID); err != nil {
			s.log.Error().Err(err).
				Str("app_id", app.ID.String()).
				Msg("failed to resubscribe app")
			continue
		}
		restored++
	}

	s.log.Info().Int("total", len(apps)).Int("restored", restored).Msg("subscriptions rebuilt")
	return nil
}
