package service

import (
	"context"
	"fmt"
	"sync"

	"nwc-wallet-service/internal/core/ports"

	"github.com/google/uuid"
)

// BackendProvider builds and caches one live LNBackend per wallet owner.
// Backend sessions are expensive to open, so every consumer of an owner's
// wallet shares the same instance until the seed rotates.
type BackendProvider struct {
	users   ports.UserRepository
	factory ports.LNBackendFactory

	mu       sync.Mutex
	backends map[uuid.UUID]ports.LNBackend
}

// NewBackendProvider creates the provider.
func NewBackendProvider(users ports.UserRepository, factory ports.LNBackendFactory) *BackendProvider {
	return &BackendProvider{
		users:    users,
		factory:  factory,
		backends: make(map[uuid.UUID]ports.LNBackend),
	}
}

// For returns the owner's backend, opening a session from the stored seed on
// first use.
func (p *BackendProvider) For(ctx context.Context, ownerID uuid.UUID) (ports.LNBackend, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if backend, ok := p.backends[ownerID]; ok {
		return backend, nil
	}

	user, err := p.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %s", ownerID)
	}

	backend, err := p.factory.New(ctx, user.Mnemonic)
	if err != nil {
		return nil, fmt.Errorf("open wallet session: %w", err)
	}

	p.backends[ownerID] = backend
	return backend, nil
}

// Replace swaps the owner's cached backend. Used at signup and after seed
// rotation; there is no in-place hot swap of a session.
func (p *BackendProvider) Replace(ownerID uuid.UUID, backend ports.LNBackend) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.backends[ownerID] = backend
}
