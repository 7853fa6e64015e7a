package nwc

import (
	"context"
	"fmt"
	"sync"

	"nwc-wallet-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletService is the subscription manager: it maintains exactly one active
// protocol listener per registered app, each bound to a dedicated
// RequestHandler. The map is in-memory only and rebuilt at startup by
// re-subscribing every app in the registry.
type WalletService struct {
	transport ports.NWCTransport
	ledger    ports.LedgerRepository
	cache     ports.LookupCache
	cfg       HandlerConfig
	log       zerolog.Logger

	mu   sync.Mutex
	subs map[string]ports.UnsubscribeFunc // keyed by client pubkey
}

// NewWalletService creates the subscription manager.
func NewWalletService(
	transport ports.NWCTransport,
	ledger ports.LedgerRepository,
	cache ports.LookupCache,
	cfg HandlerConfig,
	log zerolog.Logger,
) *WalletService {
	return &WalletService{
		transport: transport,
		ledger:    ledger,
		cache:     cache,
		cfg:       cfg,
		log:       log,
		subs:      make(map[string]ports.UnsubscribeFunc),
	}
}

// Subscribe starts a protocol listener for one app, bound to a fresh
// RequestHandler closing over the app's owner, its id and the given backend.
// Subscribing an already-subscribed client pubkey is a no-op returning the
// existing handle; the idempotency check and the map mutation are atomic
// relative to concurrent calls.
func (s *WalletService) Subscribe(
	ctx context.Context,
	clientPubkey, serviceSecret string,
	backend ports.LNBackend,
	ownerID, appID uuid.UUID,
) (ports.UnsubscribeFunc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.subs[clientPubkey]; ok {
		s.log.Warn().Str("client_pubkey", clientPubkey).Msg("already subscribed")
		return existing, nil
	}

	if err := s.transport.PublishInfoEvent(ctx, serviceSecret, SupportedMethods()); err != nil {
		return nil, fmt.Errorf("publish info event: %w", err)
	}

	handler := NewRequestHandler(backend, s.ledger, s.cache, ownerID, appID, s.cfg, s.log)

	keys := ports.ChannelKeys{ServiceSecret: serviceSecret, ClientPubkey: clientPubkey}
	unsub, err := s.transport.Subscribe(ctx, keys, handler)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", clientPubkey, err)
	}

	s.subs[clientPubkey] = unsub
	s.log.Info().Str("client_pubkey", clientPubkey).Msg("subscribed protocol listener")
	return unsub, nil
}

// Unsubscribe tears down the listener for one client pubkey. A missing entry
// is a warn-level no-op; teardown faults are swallowed (best-effort cleanup).
func (s *WalletService) Unsubscribe(clientPubkey string) {
	s.mu.Lock()
	unsub, ok := s.subs[clientPubkey]
	if ok {
		delete(s.subs, clientPubkey)
	}
	s.mu.Unlock()

	if !ok {
		s.log.Warn().Str("client_pubkey", clientPubkey).Msg("no active subscription")
		return
	}

	unsub()
	s.log.Info().Str("client_pubkey", clientPubkey).Msg("unsubscribed protocol listener")
}

// ActiveSubscriptions reports how many listeners are currently running.
func (s *WalletService) ActiveSubscriptions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Shutdown tears down every listener. Used on graceful process exit.
func (s *WalletService) Shutdown() {
	s.mu.Lock()
	subs := s.subs
	s.subs = make(map[string]ports.UnsubscribeFunc)
	s.mu.Unlock()

	for pubkey, unsub := range subs {
		unsub()
		s.log.Debug().Str("client_pubkey", pubkey).Msg("unsubscribed on shutdown")
	}
}
