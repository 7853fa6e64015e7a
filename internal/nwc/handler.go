package nwc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nwc-wallet-service/internal/core/domain"
	"nwc-wallet-service/internal/core/ports"
	"nwc-wallet-service/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	decodepay "github.com/nbd-wtf/ln-decodepay"
	"github.com/rs/zerolog"
)

const lookupCacheTTL = 24 * time.Hour

// errStillPending drives the settlement poll: the backend answered but the
// transfer has not reached a terminal status yet.
var errStillPending = errors.New("transfer still pending")

// HandlerConfig tunes one request handler.
type HandlerConfig struct {
	Alias           string
	Network         string
	PollInterval    time.Duration
	PollMaxAttempts uint64
}

func (c HandlerConfig) withDefaults() HandlerConfig {
	if c.Alias == "" {
		c.Alias = "Spark NWC"
	}
	if c.Network == "" {
		c.Network = "mainnet"
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Second
	}
	if c.PollMaxAttempts == 0 {
		c.PollMaxAttempts = 60
	}
	return c
}

// RequestHandler implements every protocol method for a single app. One
// instance is bound to one subscription: it closes over the app's owner, the
// app id and that owner's wallet backend.
type RequestHandler struct {
	backend ports.LNBackend
	ledger  ports.LedgerRepository
	cache   ports.LookupCache // nil = cache disabled
	ownerID uuid.UUID
	appID   uuid.UUID
	cfg     HandlerConfig
	log     zerolog.Logger
}

// NewRequestHandler creates a handler bound to one app and one backend.
func NewRequestHandler(
	backend ports.LNBackend,
	ledger ports.LedgerRepository,
	cache ports.LookupCache,
	ownerID, appID uuid.UUID,
	cfg HandlerConfig,
	log zerolog.Logger,
) *RequestHandler {
	return &RequestHandler{
		backend: backend,
		ledger:  ledger,
		cache:   cache,
		ownerID: ownerID,
		appID:   appID,
		cfg:     cfg.withDefaults(),
		log:     log.With().Str("app_id", appID.String()).Logger(),
	}
}

// Respond implements ports.RequestResponder. Every failure is converted into
// the response envelope: no fault ever crosses the protocol boundary.
func (h *RequestHandler) Respond(ctx context.Context, payload []byte) []byte {
	var req Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return marshalResponse(h.log, Response{
			ResultType: "",
			Error:      &ErrorPayload{Code: apperror.CodeOther, Message: "malformed request payload"},
		})
	}

	result, appErr := h.dispatch(ctx, req)

	resp := Response{ResultType: req.Method}
	if appErr != nil {
		resp.Error = &ErrorPayload{Code: appErr.Code, Message: appErr.Message}
		h.log.Warn().Str("method", req.Method).Str("code", appErr.Code).Msg("request failed")
	} else {
		resp.Result = result
	}
	return marshalResponse(h.log, resp)
}

func (h *RequestHandler) dispatch(ctx context.Context, req Request) (any, *apperror.AppError) {
	if h.backend == nil {
		return nil, apperror.ErrNotReady()
	}

	switch req.Method {
	case MethodGetInfo:
		return h.getInfo(ctx)
	case MethodMakeInvoice:
		var p MakeInvoiceParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return nil, apperror.Validation("malformed make_invoice params")
		}
		return h.makeInvoice(ctx, p)
	case MethodLookupInvoice:
		var p LookupInvoiceParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return nil, apperror.Validation("malformed lookup_invoice params")
		}
		return h.lookupInvoice(ctx, p)
	case MethodPayInvoice:
		var p PayInvoiceParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return nil, apperror.Validation("malformed pay_invoice params")
		}
		return h.payInvoice(ctx, p)
	case MethodGetBalance:
		return h.getBalance(ctx)
	case MethodListTransactions:
		var p ListTransactionsParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &p); err != nil {
				return nil, apperror.Validation("malformed list_transactions params")
			}
		}
		return h.listTransactions(ctx, p)
	default:
		return nil, apperror.New(codeNotImplemented, fmt.Sprintf("method %q not supported", req.Method), 0)
	}
}

// getInfo returns static wallet metadata. No ledger interaction.
func (h *RequestHandler) getInfo(ctx context.Context) (any, *apperror.AppError) {
	pubkey, err := h.backend.GetIdentityPubkey(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("identity pubkey: %w", err))
	}
	return &GetInfoResult{
		Alias:   h.cfg.Alias,
		Color:   "#000000",
		Pubkey:  pubkey,
		Network: h.cfg.Network,
		Methods: SupportedMethods(),
	}, nil
}

// makeInvoice creates an invoice on the backend and records a pending
// incoming ledger row keyed by payment hash.
func (h *RequestHandler) makeInvoice(ctx context.Context, p MakeInvoiceParams) (any, *apperror.AppError) {
	if p.AmountMsat <= 0 {
		return nil, apperror.Validation("amount must be positive")
	}

	inv, err := h.backend.CreateInvoice(ctx, domain.MsatToSat(p.AmountMsat), p.Description)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create invoice: %w", err))
	}

	decoded, err := decodepay.Decodepay(inv.EncodedInvoice)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decode created invoice: %w", err))
	}

	description := decoded.Description
	if description == "" {
		description = p.Description
	}

	createdAt := time.Unix(int64(decoded.CreatedAt), 0).UTC()
	requestID := inv.RequestID
	txn := &domain.Transaction{
		ID:               uuid.New(),
		OwnerID:          h.ownerID,
		AppID:            h.appID,
		Direction:        domain.DirectionIncoming,
		State:            domain.StatePending,
		Invoice:          inv.EncodedInvoice,
		PaymentHash:      decoded.PaymentHash,
		AmountMsat:       p.AmountMsat,
		Description:      description,
		BackendRequestID: &requestID,
		CreatedAt:        createdAt,
		ExpiresAt:        createdAt.Add(time.Duration(decoded.Expiry) * time.Second),
	}

	// The backend call already succeeded and cannot be undone, so a ledger
	// insert failure is logged and the invoice still returned. This is an
	// accepted inconsistency window healed out-of-band.
	if err := h.ledger.Create(ctx, txn); err != nil {
		h.log.Error().Err(err).
			Str("payment_hash", txn.PaymentHash).
			Str("backend_request_id", requestID).
			Msg("ledger insert failed for created invoice")
	}

	result := toProtocolTransaction(txn)
	return &result, nil
}

// lookupInvoice loads the ledger row and lazily reconciles pending rows
// against the backend. Settled rows are served locally and never trigger a
// backend call.
func (h *RequestHandler) lookupInvoice(ctx context.Context, p LookupInvoiceParams) (any, *apperror.AppError) {
	if p.PaymentHash == "" && p.Invoice == "" {
		return nil, apperror.Validation("payment_hash or invoice is required")
	}

	if h.cache != nil && p.PaymentHash != "" {
		if cached, err := h.cache.Get(ctx, h.cacheKey(p.PaymentHash)); err != nil {
			h.log.Warn().Err(err).Msg("lookup cache read failed, falling through to ledger")
		} else if cached != nil {
			return json.RawMessage(cached), nil
		}
	}

	txn, err := h.loadTransaction(ctx, p)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("transaction")
	}

	if txn.IsTerminal() {
		result := toProtocolTransaction(txn)
		h.cacheSettled(ctx, txn, result)
		return &result, nil
	}

	// Pending without a backend request id cannot be reconciled; report the
	// current state.
	if !txn.Reconcilable() {
		result := toProtocolTransaction(txn)
		return &result, nil
	}

	status, err := h.transferStatus(ctx, txn)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("backend status query: %w", err))
	}

	switch status.Status {
	case ports.TransferCompleted:
		if err := h.settle(ctx, txn, status); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("settle transaction: %w", err))
		}
	case ports.TransferFailed:
		if txn.Direction == domain.DirectionOutgoing {
			if err := h.ledger.MarkFailed(ctx, txn.ID); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("mark failed: %w", err))
			}
			txn.State = domain.StateFailed
		}
	default:
		// Anything else leaves the row pending.
	}

	result := toProtocolTransaction(txn)
	h.cacheSettled(ctx, txn, result)
	return &result, nil
}

// payInvoice submits an outgoing payment. Sequence is strict: ledger insert,
// fee estimate, submission (persisting the backend request id the moment it
// is known), bounded settlement poll, finalize.
func (h *RequestHandler) payInvoice(ctx context.Context, p PayInvoiceParams) (any, *apperror.AppError) {
	if p.Invoice == "" {
		return nil, apperror.Validation("invoice is required")
	}

	decoded, err := decodepay.Decodepay(p.Invoice)
	if err != nil {
		return nil, apperror.Validation("invalid invoice")
	}
	if decoded.MSatoshi <= 0 {
		return nil, apperror.Validation("zero-amount invoices are not supported")
	}

	createdAt := time.Unix(int64(decoded.CreatedAt), 0).UTC()
	txn := &domain.Transaction{
		ID:          uuid.New(),
		OwnerID:     h.ownerID,
		AppID:       h.appID,
		Direction:   domain.DirectionOutgoing,
		State:       domain.StatePending,
		Invoice:     p.Invoice,
		PaymentHash: decoded.PaymentHash,
		AmountMsat:  decoded.MSatoshi,
		Description: decoded.Description,
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(time.Duration(decoded.Expiry) * time.Second),
	}

	// Inserted before the backend call so a crash mid-flight leaves an
	// auditable pending record.
	if err := h.ledger.Create(ctx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert pending payment: %w", err))
	}

	maxFeeSat, err := h.backend.EstimateSendFee(ctx, p.Invoice)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("estimate fee: %w", err))
	}

	sent, err := h.backend.SubmitPayment(ctx, p.Invoice, maxFeeSat, func(requestID string) {
		// Persisted synchronously so the row is reconcilable even if the
		// process dies before the payment resolves.
		if err := h.ledger.SetBackendRequestID(ctx, txn.ID, requestID); err != nil {
			h.log.Error().Err(err).
				Str("payment_hash", txn.PaymentHash).
				Str("backend_request_id", requestID).
				Msg("failed to persist backend request id")
			return
		}
		txn.BackendRequestID = &requestID
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("submit payment: %w", err))
	}
	if txn.BackendRequestID == nil {
		// The early callback never fired; record the id from the result.
		if err := h.ledger.SetBackendRequestID(ctx, txn.ID, sent.RequestID); err != nil {
			h.log.Error().Err(err).Str("payment_hash", txn.PaymentHash).Msg("failed to persist backend request id")
		}
		txn.BackendRequestID = &sent.RequestID
	}

	status, appErr := h.pollSendStatus(ctx, sent.RequestID)
	if appErr != nil {
		return nil, appErr
	}

	if status.Status == ports.TransferFailed {
		if err := h.ledger.MarkFailed(ctx, txn.ID); err != nil {
			h.log.Error().Err(err).Str("payment_hash", txn.PaymentHash).Msg("failed to mark payment failed")
		}
		return nil, apperror.ErrPaymentFailed(errors.New("backend reported transfer failure"))
	}

	feeSat := status.FeeSat
	if feeSat == 0 {
		feeSat = sent.FeeSat
	}
	if err := h.settle(ctx, txn, &ports.TransferStatus{
		Status:   status.Status,
		Preimage: status.Preimage,
		FeeSat:   feeSat,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("finalize payment: %w", err))
	}

	h.log.Info().
		Str("payment_hash", txn.PaymentHash).
		Int64("amount_msat", txn.AmountMsat).
		Int64("fees_msat", domain.SatToMsat(feeSat)).
		Msg("payment settled")

	return &PayInvoiceResult{
		Preimage:     status.Preimage,
		FeesPaidMsat: domain.SatToMsat(feeSat),
	}, nil
}

// getBalance queries the backend and converts to millisatoshi. No ledger
// interaction.
func (h *RequestHandler) getBalance(ctx context.Context) (any, *apperror.AppError) {
	sat, err := h.backend.GetBalance(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	return &GetBalanceResult{BalanceMsat: domain.SatToMsat(sat)}, nil
}

// listTransactions returns the app's ledger rows in insertion order.
func (h *RequestHandler) listTransactions(ctx context.Context, p ListTransactionsParams) (any, *apperror.AppError) {
	rows, total, err := h.ledger.ListByApp(ctx, h.ownerID, h.appID, p.Limit, p.Offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}

	result := &ListTransactionsResult{
		Transactions: make([]Transaction, 0, len(rows)),
		TotalCount:   total,
	}
	for i := range rows {
		result.Transactions = append(result.Transactions, toProtocolTransaction(&rows[i]))
	}
	return result, nil
}

// --- helpers ---

func (h *RequestHandler) loadTransaction(ctx context.Context, p LookupInvoiceParams) (*domain.Transaction, error) {
	if p.PaymentHash != "" {
		return h.ledger.GetByPaymentHash(ctx, h.ownerID, h.appID, p.PaymentHash)
	}
	return h.ledger.GetByInvoice(ctx, h.ownerID, h.appID, p.Invoice)
}

func (h *RequestHandler) transferStatus(ctx context.Context, txn *domain.Transaction) (*ports.TransferStatus, error) {
	if txn.Direction == domain.DirectionIncoming {
		return h.backend.ReceiveStatus(ctx, *txn.BackendRequestID)
	}
	return h.backend.SendStatus(ctx, *txn.BackendRequestID)
}

// settle marks the row settled and mirrors the update onto the in-memory
// struct. The update is keyed by row id with values derived from backend
// truth, so concurrent reconciliations of the same row are idempotent.
func (h *RequestHandler) settle(ctx context.Context, txn *domain.Transaction, status *ports.TransferStatus) error {
	feesMsat := int64(0)
	if txn.Direction == domain.DirectionOutgoing {
		feesMsat = domain.SatToMsat(status.FeeSat)
	}
	settledAt := time.Now().UTC()

	if err := h.ledger.MarkSettled(ctx, txn.ID, status.Preimage, feesMsat, settledAt); err != nil {
		return err
	}

	preimage := status.Preimage
	txn.State = domain.StateSettled
	txn.Preimage = &preimage
	txn.FeesPaidMsat = &feesMsat
	txn.SettledAt = &settledAt
	return nil
}

// pollSendStatus polls the backend for a terminal send status within the
// configured budget. Exhausting the budget is not a definitive failure: the
// row stays pending and a later lookup_invoice can still reconcile it.
func (h *RequestHandler) pollSendStatus(ctx context.Context, requestID string) (*ports.TransferStatus, *apperror.AppError) {
	var status *ports.TransferStatus

	op := func() error {
		st, err := h.backend.SendStatus(ctx, requestID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("send status: %w", err))
		}
		switch st.Status {
		case ports.TransferCompleted, ports.TransferFailed:
			status = st
			return nil
		default:
			return errStillPending
		}
	}

	// WithMaxRetries counts retries after the first attempt, so the budget is
	// attempts-1 retries for PollMaxAttempts total status calls.
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(h.cfg.PollInterval), h.cfg.PollMaxAttempts-1),
		ctx,
	)
	if err := backoff.Retry(op, b); err != nil {
		if errors.Is(err, errStillPending) {
			return nil, apperror.ErrPaymentTimeout()
		}
		return nil, apperror.InternalError(err)
	}
	return status, nil
}

func (h *RequestHandler) cacheKey(paymentHash string) string {
	return fmt.Sprintf("tx:%s:%s:%s", h.ownerID, h.appID, paymentHash)
}

// cacheSettled stores the protocol shape of a settled row. Best-effort.
func (h *RequestHandler) cacheSettled(ctx context.Context, txn *domain.Transaction, result Transaction) {
	if h.cache == nil || txn.State != domain.StateSettled {
		return
	}
	blob, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, h.cacheKey(txn.PaymentHash), blob, lookupCacheTTL); err != nil {
		h.log.Warn().Err(err).Msg("lookup cache write failed")
	}
}

func marshalResponse(log zerolog.Logger, resp Response) []byte {
	out, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("response marshal failed")
		return []byte(`{"result_type":"","error":{"code":"INTERNAL","message":"response marshal failed"},"result":null}`)
	}
	return out
}
