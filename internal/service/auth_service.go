package service

import (
	"context"
	"fmt"
	"time"

	"nwc-wallet-service/internal/core/domain"
	"nwc-wallet-service/internal/core/ports"
	"nwc-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tyler-smith/go-bip39"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	userRepo ports.UserRepository
	appRepo  ports.AppRepository
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	factory  ports.LNBackendFactory
	provider *BackendProvider
	subs     ports.SubscriptionManager
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.UserRepository,
	appRepo ports.AppRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	factory ports.LNBackendFactory,
	provider *BackendProvider,
	subs ports.SubscriptionManager,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		appRepo:  appRepo,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		factory:  factory,
		provider: provider,
		subs:     subs,
		log:      log,
	}
}

// Signup creates a wallet owner with a freshly generated seed and returns a
// session token. The wallet session is opened before the user row is
// persisted: a seed the backend rejects never reaches the database.
func (s *AuthServiceImpl) Signup(ctx context.Context, username, password string) (string, time.Time, error) {
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return "", time.Time{}, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate entropy: %w", err))
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate mnemonic: %w", err))
	}

	backend, err := s.factory.New(ctx, mnemonic)
	if err != nil {
		return "", time.Time{}, apperror.ErrBackendUnavailable(err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Mnemonic:     mnemonic,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	s.provider.Replace(user.ID, backend)
	s.log.Info().Str("user_id", user.ID.String()).Msg("user signed up")

	token, expiry, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, user.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

// GetMnemonic returns the owner's wallet seed for backup.
func (s *AuthServiceImpl) GetMnemonic(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("load user: %w", err))
	}
	if user == nil {
		return "", apperror.ErrNotFound("user")
	}
	return user.Mnemonic, nil
}

// RotateMnemonic swaps the wallet seed and re-subscribes every app of the
// owner against a freshly opened wallet session. Already-rotated apps keep
// working if a later one fails; failures are logged per app.
func (s *AuthServiceImpl) RotateMnemonic(ctx context.Context, userID uuid.UUID, mnemonic string) error {
	if !bip39.IsMnemonicValid(mnemonic) {
		return apperror.ErrInvalidMnemonic()
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load user: %w", err))
	}
	if user == nil {
		return apperror.ErrNotFound("user")
	}

	backend, err := s.factory.New(ctx, mnemonic)
	if err != nil {
		return apperror.ErrBackendUnavailable(err)
	}

	if err := s.userRepo.UpdateMnemonic(ctx, userID, mnemonic); err != nil {
		return apperror.InternalError(fmt.Errorf("update mnemonic: %w", err))
	}
	s.provider.Replace(userID, backend)

	apps, err := s.appRepo.ListByOwner(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list apps: %w", err))
	}
	for _, app := range apps {
		s.subs.Unsubscribe(app.ClientPubkey)
		if _, err := s.subs.Subscribe(ctx, app.ClientPubkey, app.ServiceSecret, backend, userID, app.ID); err != nil {
			s.log.Error().Err(err).
				Str("client_pubkey", app.ClientPubkey).
				Msg("failed to resubscribe app after seed rotation")
		}
	}

	s.log.Info().Str("user_id", userID.String()).Int("apps", len(apps)).Msg("wallet seed rotated")
	return nil
}
