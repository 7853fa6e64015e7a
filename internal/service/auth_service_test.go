package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nwc-wallet-service/internal/core/domain"
	"nwc-wallet-service/internal/core/ports"
	"nwc-wallet-service/internal/core/ports/mocks"
	"nwc-wallet-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	ctrl     *gomock.Controller
	userRepo *mocks.MockUserRepository
	appRepo  *mocks.MockAppRepository
	hashSvc  *mocks.MockHashService
	tokenSvc *mocks.MockTokenService
	factory  *mocks.MockLNBackendFactory
	backend  *mocks.MockLNBackend
	subs     *mocks.MockSubscriptionManager
	svc      *AuthServiceImpl
}

func testExpiry() time.Time { return time.Now().Add(time.Hour) }

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		ctrl:     ctrl,
		userRepo: mocks.NewMockUserRepository(ctrl),
		appRepo:  mocks.NewMockAppRepository(ctrl),
		hashSvc:  mocks.NewMockHashService(ctrl),
		tokenSvc: mocks.NewMockTokenService(ctrl),
		factory:  mocks.NewMockLNBackendFactory(ctrl),
		backend:  mocks.NewMockLNBackend(ctrl),
		subs:     mocks.NewMockSubscriptionManager(ctrl),
	}
	provider := NewBackendProvider(f.userRepo, f.factory)
	f.svc = NewAuthService(f.userRepo, f.appRepo, f.hashSvc, f.tokenSvc, f.factory, provider, f.subs, zerolog.Nop())
	return f
}

func TestAuthService_Signup(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	f.hashSvc.EXPECT().Hash("hunter2").Return("hashed", nil)

	var seenMnemonic string
	f.factory.EXPECT().
		New(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mnemonic string) (ports.LNBackend, error) {
			seenMnemonic = mnemonic
			return f.backend, nil
		})

	var created *domain.User
	f.userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			created = u
			return nil
		})
	f.tokenSvc.EXPECT().Generate(gomock.Any()).Return("jwt-token", testExpiry(), nil)

	token, _, err := f.svc.Signup(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	require.NotNil(t, created)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "hashed", created.PasswordHash)
	// The generated seed is a valid BIP39 phrase and the same one the wallet
	// session was opened with.
	assert.True(t, bip39.IsMnemonicValid(created.Mnemonic))
	assert.Equal(t, seenMnemonic, created.Mnemonic)
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&domain.User{ID: uuid.New(), Username: "alice"}, nil)

	_, _, err := f.svc.Signup(context.Background(), "alice", "hunter2")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestAuthService_Signup_BackendFailureCreatesNoUser(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	f.hashSvc.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	// No userRepo.Create expectation: a rejected seed never reaches the
	// database.
	f.factory.EXPECT().New(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("daemon down"))

	_, _, err := f.svc.Signup(context.Background(), "alice", "hunter2")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_002", appErr.Code)
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()

	f.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&domain.User{ID: userID, Username: "alice", PasswordHash: "hashed"}, nil)
	f.hashSvc.EXPECT().Verify("hunter2", "hashed").Return(true, nil)
	f.tokenSvc.EXPECT().Generate(userID).Return("jwt-token", testExpiry(), nil)

	token, _, err := f.svc.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&domain.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
	f.hashSvc.EXPECT().Verify("wrong", "hashed").Return(false, nil)

	_, _, err := f.svc.Login(context.Background(), "alice", "wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	f.userRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	_, _, err := f.svc.Login(context.Background(), "ghost", "whatever")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_GetMnemonic(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()

	f.userRepo.EXPECT().GetByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Mnemonic: testMnemonic}, nil)

	mnemonic, err := f.svc.GetMnemonic(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestAuthService_RotateMnemonic_InvalidPhrase(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.RotateMnemonic(context.Background(), uuid.New(), "not a valid phrase")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_004", appErr.Code)
}

func TestAuthService_RotateMnemonic_ResubscribesApps(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()
	apps := []domain.App{
		{ID: uuid.New(), OwnerID: userID, ClientPubkey: "pub-1", ServiceSecret: "sec-1"},
		{ID: uuid.New(), OwnerID: userID, ClientPubkey: "pub-2", ServiceSecret: "sec-2"},
	}

	f.userRepo.EXPECT().GetByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Mnemonic: "old"}, nil)
	f.factory.EXPECT().New(gomock.Any(), testMnemonic).Return(f.backend, nil)
	f.userRepo.EXPECT().UpdateMnemonic(gomock.Any(), userID, testMnemonic).Return(nil)
	f.appRepo.EXPECT().ListByOwner(gomock.Any(), userID).Return(apps, nil)

	for _, app := range apps {
		f.subs.EXPECT().Unsubscribe(app.ClientPubkey)
		f.subs.EXPECT().
			Subscribe(gomock.Any(), app.ClientPubkey, app.ServiceSecret, f.backend, userID, app.ID).
			Return(ports.UnsubscribeFunc(func() {}), nil)
	}

	err := f.svc.RotateMnemonic(context.Background(), userID, testMnemonic)
	require.NoError(t, err)
}

func TestAuthService_RotateMnemonic_BackendRejectsSeed(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()

	f.userRepo.EXPECT().GetByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Mnemonic: "old"}, nil)
	// No UpdateMnemonic expectation: the stored seed is untouched.
	f.factory.EXPECT().New(gomock.Any(), testMnemonic).Return(nil, fmt.Errorf("daemon down"))

	err := f.svc.RotateMnemonic(context.Background(), userID, testMnemonic)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_002", appErr.Code)
}
