// Package ln adapts the Spark wallet daemon's REST RPC to the LNBackend
// port. One wallet session exists per owner seed; every session is addressed
// by the wallet id the daemon hands out at init.
package ln

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"nwc-wallet-service/config"
	"nwc-wallet-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SparkClient is the shared daemon connection. It is safe for concurrent
// use; per-wallet state lives in SparkBackend.
type SparkClient struct {
	baseURL    string
	network    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewSparkClient creates a daemon client from config.
func NewSparkClient(cfg config.SparkConfig, httpClient HTTPClient, log zerolog.Logger) *SparkClient {
	return &SparkClient{
		baseURL:    cfg.BaseURL,
		network:    cfg.Network,
		httpClient: httpClient,
		log:        log,
	}
}

// New implements ports.LNBackendFactory: it opens a wallet session for the
// given seed and returns a backend bound to it. Rotating the seed means
// calling New again; sessions are never mutated in place.
func (c *SparkClient) New(ctx context.Context, mnemonic string) (ports.LNBackend, error) {
	var out struct {
		WalletID string `json:"wallet_id"`
	}
	in := map[string]string{"mnemonic": mnemonic, "network": c.network}
	if err := c.call(ctx, http.MethodPost, "/v1/wallets", in, &out); err != nil {
		return nil, fmt.Errorf("init wallet session: %w", err)
	}
	if out.WalletID == "" {
		return nil, fmt.Errorf("init wallet session: daemon returned empty wallet id")
	}
	return &SparkBackend{client: c, walletID: out.WalletID}, nil
}

// Name returns the dependency name.
func (c *SparkClient) Name() string {
	return "spark"
}

// Healthy checks daemon reachability.
func (c *SparkClient) Healthy(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/v1/health", nil, nil)
}

// call performs one JSON round trip against the daemon.
func (c *SparkClient) call(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		blob, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(blob)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spark rpc %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		blob, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("spark rpc %s %s: status %d: %s", method, path, resp.StatusCode, blob)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// SparkBackend implements ports.LNBackend for one wallet session.
type SparkBackend struct {
	client   *SparkClient
	walletID string
}

func (b *SparkBackend) path(suffix string) string {
	return fmt.Sprintf("/v1/wallets/%s%s", b.walletID, suffix)
}

// GetIdentityPubkey returns the wallet's identity public key.
func (b *SparkBackend) GetIdentityPubkey(ctx context.Context) (string, error) {
	var out struct {
		Pubkey string `json:"pubkey"`
	}
	if err := b.client.call(ctx, http.MethodGet, b.path("/identity"), nil, &out); err != nil {
		return "", err
	}
	return out.Pubkey, nil
}

// CreateInvoice asks the daemon for a BOLT11 invoice. The returned request
// id is the handle for later settlement queries.
func (b *SparkBackend) CreateInvoice(ctx context.Context, amountSat int64, memo string) (*ports.BackendInvoice, error) {
	var out struct {
		ID             string `json:"id"`
		EncodedInvoice string `json:"encoded_invoice"`
	}
	in := map[string]any{"amount_sats": amountSat, "memo": memo}
	if err := b.client.call(ctx, http.MethodPost, b.path("/invoices"), in, &out); err != nil {
		return nil, err
	}
	return &ports.BackendInvoice{EncodedInvoice: out.EncodedInvoice, RequestID: out.ID}, nil
}

// ReceiveStatus queries a receive request's settlement status. Pending
// transfers are claimed first so the answer reflects funds already in
// flight.
func (b *SparkBackend) ReceiveStatus(ctx context.Context, requestID string) (*ports.TransferStatus, error) {
	b.claimTransfers(ctx)

	var out struct {
		Status   string `json:"status"`
		Preimage string `json:"preimage"`
	}
	if err := b.client.call(ctx, http.MethodGet, b.path("/receive-requests/"+requestID), nil, &out); err != nil {
		return nil, err
	}
	return &ports.TransferStatus{Status: out.Status, Preimage: out.Preimage}, nil
}

// SendStatus queries a send request's settlement status.
func (b *SparkBackend) SendStatus(ctx context.Context, requestID string) (*ports.TransferStatus, error) {
	var out struct {
		Status   string `json:"status"`
		Preimage string `json:"preimage"`
		FeeSats  int64  `json:"fee_sats"`
	}
	if err := b.client.call(ctx, http.MethodGet, b.path("/send-requests/"+requestID), nil, &out); err != nil {
		return nil, err
	}
	return &ports.TransferStatus{Status: out.Status, Preimage: out.Preimage, FeeSat: out.FeeSats}, nil
}

// EstimateSendFee asks the daemon for the fee ceiling of paying an invoice.
func (b *SparkBackend) EstimateSendFee(ctx context.Context, invoice string) (int64, error) {
	var out struct {
		FeeSats int64 `json:"fee_sats"`
	}
	in := map[string]string{"invoice": invoice}
	if err := b.client.call(ctx, http.MethodPost, b.path("/fee-estimate"), in, &out); err != nil {
		return 0, err
	}
	return out.FeeSats, nil
}

// SubmitPayment submits an outgoing payment. The daemon assigns the request
// id in its submission response; onRequestID fires before SubmitPayment
// returns so the caller can persist it first.
func (b *SparkBackend) SubmitPayment(ctx context.Context, invoice string, maxFeeSat int64, onRequestID func(string)) (*ports.SendResult, error) {
	var out struct {
		ID      string `json:"id"`
		FeeSats int64  `json:"fee_sats"`
	}
	in := map[string]any{"invoice": invoice, "max_fee_sats": maxFeeSat}
	if err := b.client.call(ctx, http.MethodPost, b.path("/payments"), in, &out); err != nil {
		return nil, err
	}
	if onRequestID != nil {
		onRequestID(out.ID)
	}
	return &ports.SendResult{RequestID: out.ID, FeeSat: out.FeeSats}, nil
}

// GetBalance returns the wallet balance in satoshi, claiming pending
// transfers first.
func (b *SparkBackend) GetBalance(ctx context.Context) (int64, error) {
	b.claimTransfers(ctx)

	var out struct {
		BalanceSats int64 `json:"balance_sats"`
	}
	if err := b.client.call(ctx, http.MethodGet, b.path("/balance"), nil, &out); err != nil {
		return 0, err
	}
	return out.BalanceSats, nil
}

// claimTransfers sweeps unclaimed inbound transfers into the wallet.
// Best-effort: a failed claim only delays settlement visibility.
func (b *SparkBackend) claimTransfers(ctx context.Context) {
	if err := b.client.call(ctx, http.MethodPost, b.path("/claim"), nil, nil); err != nil {
		b.client.log.Warn().Err(err).Str("wallet_id", b.walletID).Msg("claim transfers failed")
	}
}
