// Package nostr carries the wallet-control protocol over a relay. Requests
// arrive as kind-23194 events encrypted to the service key; responses go
// back as kind-23195 events encrypted to the client key. Capabilities are
// announced in a replaceable kind-13194 info event.
package nostr

import (
	"context"
	"fmt"
	"strings"

	"nwc-wallet-service/internal/core/ports"

	gonostr "github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip04"
	"github.com/rs/zerolog"
)

// Protocol event kinds.
const (
	KindInfo     = 13194
	KindRequest  = 23194
	KindResponse = 23195
)

// RelayTransport implements ports.NWCTransport against one relay.
type RelayTransport struct {
	relay *gonostr.Relay
	log   zerolog.Logger
}

// NewRelayTransport connects to the relay. The connection is shared by
// every subscription.
func NewRelayTransport(ctx context.Context, url string, log zerolog.Logger) (*RelayTransport, error) {
	relay, err := gonostr.RelayConnect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connecting to relay %s: %w", url, err)
	}

	log.Info().Str("relay_url", url).Msg("relay connection established")
	return &RelayTransport{relay: relay, log: log}, nil
}

// Close tears down the relay connection.
func (t *RelayTransport) Close() error {
	return t.relay.Close()
}

// PublishInfoEvent announces the service's capabilities for one channel.
// Kind 13194 is replaceable, so republishing after a restart is harmless.
func (t *RelayTransport) PublishInfoEvent(ctx context.Context, serviceSecret string, methods []string) error {
	ev, err := buildInfoEvent(serviceSecret, methods)
	if err != nil {
		return err
	}
	if err := t.relay.Publish(ctx, ev); err != nil {
		return fmt.Errorf("publish info event: %w", err)
	}
	return nil
}

// Subscribe listens for requests on one channel and answers them through
// the responder. The returned function cancels the relay subscription.
func (t *RelayTransport) Subscribe(ctx context.Context, keys ports.ChannelKeys, responder ports.RequestResponder) (ports.UnsubscribeFunc, error) {
	servicePubkey, err := gonostr.GetPublicKey(keys.ServiceSecret)
	if err != nil {
		return nil, fmt.Errorf("derive service pubkey: %w", err)
	}
	shared, err := nip04.ComputeSharedSecret(keys.ClientPubkey, keys.ServiceSecret)
	if err != nil {
		return nil, fmt.Errorf("compute shared secret: %w", err)
	}

	since := gonostr.Now()
	filters := gonostr.Filters{{
		Kinds:   []int{KindRequest},
		Authors: []string{keys.ClientPubkey},
		Tags:    gonostr.TagMap{"p": []string{servicePubkey}},
		Since:   &since,
	}}

	sub, err := t.relay.Subscribe(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("subscribe to relay: %w", err)
	}

	go func() {
		for ev := range sub.Events {
			if ev == nil {
				continue
			}
			resp, err := handleRequestEvent(ctx, ev, keys, shared, responder)
			if err != nil {
				t.log.Warn().Err(err).Str("event_id", ev.ID).Msg("dropping unprocessable request event")
				continue
			}
			if err := t.relay.Publish(ctx, resp); err != nil {
				t.log.Error().Err(err).Str("event_id", ev.ID).Msg("failed to publish response event")
			}
		}
	}()

	return func() { sub.Unsub() }, nil
}

// buildInfoEvent builds and signs the capability announcement.
func buildInfoEvent(serviceSecret string, methods []string) (gonostr.Event, error) {
	ev := gonostr.Event{
		CreatedAt: gonostr.Now(),
		Kind:      KindInfo,
		Content:   strings.Join(methods, " "),
		Tags:      gonostr.Tags{},
	}
	if err := ev.Sign(serviceSecret); err != nil {
		return gonostr.Event{}, fmt.Errorf("sign info event: %w", err)
	}
	return ev, nil
}

// handleRequestEvent decrypts one request, runs it through the responder and
// builds the signed response event. The response tags the client (p) and the
// request event it answers (e).
func handleRequestEvent(
	ctx context.Context,
	ev *gonostr.Event,
	keys ports.ChannelKeys,
	shared []byte,
	responder ports.RequestResponder,
) (gonostr.Event, error) {
	plaintext, err := nip04.Decrypt(ev.Content, shared)
	if err != nil {
		return gonostr.Event{}, fmt.Errorf("decrypt request: %w", err)
	}

	payload := responder.Respond(ctx, []byte(plaintext))

	ciphertext, err := nip04.Encrypt(string(payload), shared)
	if err != nil {
		return gonostr.Event{}, fmt.Errorf("encrypt response: %w", err)
	}

	resp := gonostr.Event{
		CreatedAt: gonostr.Now(),
		Kind:      KindResponse,
		Content:   ciphertext,
		Tags: gonostr.Tags{
			gonostr.Tag{"p", keys.ClientPubkey},
			gonostr.Tag{"e", ev.ID},
		},
	}
	if err := resp.Sign(keys.ServiceSecret); err != nil {
		return gonostr.Event{}, fmt.Errorf("sign response event: %w", err)
	}
	return resp, nil
}
