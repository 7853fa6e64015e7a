package nwc

import (
	"context"
	"encoding/json"
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
	"go.uber.org/mock/gomock"
)

// BOLT11 test vectors. All share payment hash
// 0001020304050607080900010203040506070809000102030405060708090102 and
// timestamp 1496314658.
const (
	// No amount, description "Please consider supporting this project".
	invoiceNoAmount = "lnbc1pvjluezpp5qqqsyqcyq5rqwzqfqqqsyqcyq5rqwzqfqqqsyqcyq5rqwzqfqypqdpl2pkx2ctnv5sxxmmwwd5kgetjypeh2ursdae8g6twvus8g6rfwvs8qun0dfjkxaq8rkx3yf5tcsyz3d73gafnh3cax9rn449d9p5uxz9ezhhypd0elx87sjle52x86fux2ypatgddc6k63n7erqz25le42c4u4ecky03ylcqca784w"
	// 250,000,000 msat, description "1 cup coffee", 60s expiry.
	invoiceCoffee = "lnbc2500u1pvjluezpp5qqqsyqcyq5rqwzqfqqqsyqcyq5rqwzqfqqqsyqcyq5rqwzqfqypqdq5xysxxatsyp3k7enxv4jsxqzpuaztrnwngzn3kdzw5hydlzf03qdgm2hdq27cqv3agm2awhz5se903vruatfhq77w3ls4evs3ch9zw97j25emudupq63nyw24cg27h2rspfj9srp"
	// 2,000,000,000 msat, description hash only.
	invoiceDescHash = "lnbc20m1pvjluezpp5qqqsyqcyq5rqwzqfqqqsyqcyq5rqwzqfqqqsyqcyq5rqwzqfqypqhp58yjmdan79s6qqdhdzgynm4zwqd5d7xmw5fk98klysy043l2ahrqscc6gd6ql3jrc5yzme8v4ntcewwz5cnw92tz0pc8qcuufvq7khhr8wpald05e92xw006sq94mg8v2ndf4sefvf9sygkshp5zfem29trqq2yxxz7"

	vectorPaymentHash = "0001020304050607080900010203040506070809000102030405060708090102"
)

type handlerFixture struct {
	ctrl    *gomock.Controller
	backend *mocks.MockLNBackend
	ledger  *mocks.MockLedgerRepository
	cache   *mocks.MockLookupCache
	ownerID uuid.UUID
	appID   uuid.UUID
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	return &handlerFixture{
		ctrl:    ctrl,
		backend: mocks.NewMockLNBackend(ctrl),
		ledger:  mocks.NewMockLedgerRepository(ctrl),
		cache:   mocks.NewMockLookupCache(ctrl),
		ownerID: uuid.New(),
		appID:   uuid.New(),
	}
}

// handler builds a RequestHandler without the lookup cache; tests that
// exercise the cache fast path use handlerWithCache.
func (f *handlerFixture) handler() *RequestHandler {
	return NewRequestHandler(f.backend, f.ledger, nil, f.ownerID, f.appID, fastPollConfig(), zerolog.Nop())
}

func (f *handlerFixture) handlerWithCache() *RequestHandler {
	return NewRequestHandler(f.backend, f.ledger, f.cache, f.ownerID, f.appID, fastPollConfig(), zerolog.Nop())
}

func fastPollConfig() HandlerConfig {
	return HandlerConfig{PollInterval: time.Millisecond, PollMaxAttempts: 3}
}

// envelope mirrors Response with a raw result so tests can decode into the
// concrete shape per method.
type envelope struct {
	ResultType string          `json:"result_type"`
	Error      *ErrorPayload   `json:"error"`
	Result     json.RawMessage `json:"result"`
}

func respond(t *testing.T, h *RequestHandler, method string, params any) envelope {
	t.Helper()
	var rawParams json.RawMessage
	if params != nil {
		blob, err := json.Marshal(params)
		require.NoError(t, err)
		rawParams = blob
	}
	payload, err := json.Marshal(Request{Method: method, Params: rawParams})
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(h.Respond(context.Background(), payload), &env))
	return env
}

func TestRespond_MalformedPayload(t *testing.T) {
	f := newHandlerFixture(t)
	h := f.handler()

	var env envelope
	require.NoError(t, json.Unmarshal(h.Respond(context.Background(), []byte("{not json")), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, apperror.CodeOther, env.Error.Code)
}

func TestRespond_UnknownMethod(t *testing.T) {
	f := newHandlerFixture(t)
	env := respond(t, f.handler(), "sign_message", nil)

	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_IMPLEMENTED", env.Error.Code)
	assert.Equal(t, "sign_message", env.ResultType)
}

func TestRespond_NilBackendReportsNotReady(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewRequestHandler(nil, f.ledger, nil, f.ownerID, f.appID, fastPollConfig(), zerolog.Nop())

	env := respond(t, h, MethodGetBalance, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, apperror.CodeNotReady, env.Error.Code)
}

func TestGetInfo(t *testing.T) {
	f := newHandlerFixture(t)
	f.backend.EXPECT().GetIdentityPubkey(gomock.Any()).Return("02abcdef", nil)

	env := respond(t, f.handler(), MethodGetInfo, nil)
	require.Nil(t, env.Error)

	var result GetInfoResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "02abcdef", result.Pubkey)
	assert.Equal(t, "mainnet", result.Network)
	assert.ElementsMatch(t, SupportedMethods(), result.Methods)
}

func TestMakeInvoice(t *testing.T) {
	f := newHandlerFixture(t)

	// 5,000,000 msat converts to exactly 5000 sat at the backend boundary.
	f.backend.EXPECT().
		CreateInvoice(gomock.Any(), int64(5000), "coffee").
		Return(&ports.BackendInvoice{EncodedInvoice: invoiceCoffee, RequestID: "recv-1"}, nil)

	var created *domain.Transaction
	f.ledger.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *domain.Transaction) error {
			created = txn
			return nil
		})

	env := respond(t, f.handler(), MethodMakeInvoice, MakeInvoiceParams{AmountMsat: 5_000_000, Description: "coffee"})
	require.Nil(t, env.Error)

	var result Transaction
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "incoming", result.Type)
	assert.Equal(t, "pending", result.State)
	assert.Equal(t, invoiceCoffee, result.Invoice)
	assert.Equal(t, vectorPaymentHash, result.PaymentHash)
	assert.Equal(t, int64(5_000_000), result.AmountMsat)
	assert.Equal(t, "1 cup coffee", result.Description)

	require.NotNil(t, created)
	assert.Equal(t, f.ownerID, created.OwnerID)
	assert.Equal(t, f.appID, created.AppID)
	assert.Equal(t, domain.StatePending, created.State)
	require.NotNil(t, created.BackendRequestID)
	assert.Equal(t, "recv-1", *created.BackendRequestID)
}

func TestMakeInvoice_RejectsNonPositiveAmount(t *testing.T) {
	f := newHandlerFixture(t)

	for _, amount := range []int64{0, -1} {
		env := respond(t, f.handler(), MethodMakeInvoice, MakeInvoiceParams{AmountMsat: amount})
		require.NotNil(t, env.Error, "amount %d", amount)
		assert.Equal(t, apperror.CodeOther, env.Error.Code)
	}
}

func TestMakeInvoice_LedgerFailureStillReturnsInvoice(t *testing.T) {
	f := newHandlerFixture(t)

	f.backend.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.BackendInvoice{EncodedInvoice: invoiceCoffee, RequestID: "recv-1"}, nil)
	f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection refused"))

	env := respond(t, f.handler(), MethodMakeInvoice, MakeInvoiceParams{AmountMsat: 1000})
	require.Nil(t, env.Error)

	var result Transaction
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, invoiceCoffee, result.Invoice)
}

func TestLookupInvoice_RequiresIdentifier(t *testing.T) {
	f := newHandlerFixture(t)

	env := respond(t, f.handler(), MethodLookupInvoice, LookupInvoiceParams{})
	require.NotNil(t, env.Error)
	assert.Equal(t, apperror.CodeOther, env.Error.Code)
}

func TestLookupInvoice_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	f.ledger.EXPECT().
		GetByPaymentHash(gomock.Any(), f.ownerID, f.appID, vectorPaymentHash).
		Return(nil, nil)

	env := respond(t, f.handler(), MethodLookupInvoice, LookupInvoiceParams{PaymentHash: vectorPaymentHash})
	require.NotNil(t, env.Error)
	assert.Equal(t, apperror.CodeNotFound, env.Error.Code)
}

func TestLookupInvoice_SettledRowServedWithoutBackendCall(t *testing.T) {
	f := newHandlerFixture(t)

	preimage := "00112233"
	fees := int64(2000)
	settledAt := time.Now().UTC().Add(-time.Hour)
	requestID := "send-9"
	txn := &domain.Transaction{
		ID:               uuid.New(),
		OwnerID:          f.ownerID,
		AppID:            f.appID,
		Direction:        domain.DirectionOutgoing,
		State:            domain.StateSettled,
		Invoice:          invoiceCoffee,
		PaymentHash:      vectorPaymentHash,
		AmountMsat:       250_000_000,
		FeesPaidMsat:     &fees,
		Preimage:         &preimage,
		BackendRequestID: &requestID,
		CreatedAt:        settledAt.Add(-time.Minute),
		SettledAt:        &settledAt,
	}

	// No backend expectations: a settled row must never trigger a status query.
	f.ledger.EXPECT().
		GetByPaymentHash(gomock.Any(), f.ownerID, f.appID, vectorPaymentHash).
		Return(txn, nil).
		Times(2)

	h := f.handler()
	env := respond(t, h, MethodLookupInvoice, LookupInvoiceParams{PaymentHash: vectorPaymentHash})
	require.Nil(t, env.Error)

	var result Transaction
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "settled", result.State)
	assert.Equal(t, preimage, result.Preimage)
	assert.Equal(t, fees, result.FeesPaidMsat)
	assert.Equal(t, settledAt.Unix(), result.SettledAt)

	// A repeated lookup of a settled row is a pure read: same answer, still
	// no backend call.
	again := respond(t, h, MethodLookupInvoice, LookupInvoiceParams{PaymentHash: vectorPaymentHash})
	require.Nil(t, again.Error)
	assert.JSONEq(t, string(env.Result), string(again.Result))
}

func TestLookupInvoice_ReconcilesPendingIncoming(t *testing.T) {
	f := newHandlerFixture(t)

	requestID := "recv-7"
	txn := &domain.Transaction{
		ID:               uuid.New(),
		OwnerID:          f.ownerID,
		AppID:            f.appID,
		Direction:        domain.DirectionIncoming,
		State:            domain.StatePending,
		Invoice:          invoiceCoffee,
		PaymentHash:      vectorPaymentHash,
		AmountMsat:       250_000_000,
		BackendRequestID: &requestID,
		CreatedAt:        time.Now().UTC(),
	}

	f.ledger.EXPECT().
		GetByInvoice(gomock.Any(), f.ownerID, f.appID, invoiceCoffee).
		Return(txn, nil)
	f.backend.EXPECT().
		ReceiveStatus(gomock.Any(), requestID).
		Return(&ports.TransferStatus{Status: ports.TransferCompleted, Preimage: "aabb"}, nil)
	f.ledger.EXPECT().
		MarkSettled(gomock.Any(), txn.ID, "aabb", int64(0), gomock.Any()).
		Return(nil)

	env := respond(t, f.handler(), MethodLookupInvoice, LookupInvoiceParams{Invoice: invoiceCoffee})
	require.Nil(t, env.Error)

	var result Transaction
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "settled", result.State)
	assert.Equal(t, "aabb", result.Preimage)
	assert.NotZero(t, result.SettledAt)
}

func TestLookupInvoice_ConcurrentReconcileOfOneRowIsIdempotent(t *testing.T) {
	f := newHandlerFixture(t)
	h := f.handler()

	requestID := "recv-8"
	row := domain.Transaction{
		ID:               uuid.New(),
		OwnerID:          f.ownerID,
		AppID:            f.appID,
		Direction:        domain.DirectionIncoming,
		State:            domain.StatePending,
		Invoice:          invoiceCoffee,
		PaymentHash:      vectorPaymentHash,
		AmountMsat:       250_000_000,
		BackendRequestID: &requestID,
		CreatedAt:        time.Now().UTC(),
	}

	// Both callers race past the pending check and reconcile the same row.
	// Each load returns its own copy, as a repository scan would.
	f.ledger.EXPECT().
		GetByPaymentHash(gomock.Any(), f.ownerID, f.appID, vectorPaymentHash).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID, string) (*domain.Transaction, error) {
			cp := row
			return &cp, nil
		}).
		Times(2)
	f.backend.EXPECT().
		ReceiveStatus(gomock.Any(), requestID).
		Return(&ports.TransferStatus{Status: ports.TransferCompleted, Preimage: "aabb"}, nil).
		Times(2)
	// The settle write is keyed by row id with values taken from the backend
	// status, so the duplicate write carries identical values.
	f.ledger.EXPECT().
		MarkSettled(gomock.Any(), row.ID, "aabb", int64(0), gomock.Any()).
		Return(nil).
		Times(2)

	payload, err := json.Marshal(Request{
		Method: MethodLookupInvoice,
		Params: json.RawMessage(fmt.Sprintf(`{"payment_hash":%q}`, vectorPaymentHash)),
	})
	require.NoError(t, err)

	replies := make(chan []byte, 2)
	for i := 0; i < 2; i++ {
		go func() {
			replies <- h.Respond(context.Background(), payload)
		}()
	}

	var results []Transaction
	for i := 0; i < 2; i++ {
		var env envelope
		require.NoError(t, json.Unmarshal(<-replies, &env))
		require.Nil(t, env.Error)

		var result Transaction
		require.NoError(t, json.Unmarshal(env.Result, &result))
		assert.Equal(t, "settled", result.State)
		assert.Equal(t, "aabb", result.Preimage)
		results = append(results, result)
	}
	assert.Equal(t, results[0].PaymentHash, results[1].PaymentHash)
	assert.Equal(t, results[0].Preimage, results[1].Preimage)
	assert.Equal(t, results[0].FeesPaidMsat, results[1].FeesPaidMsat)
}

func TestLookupInvoice_MarksFailedOutgoing(t *testing.T) {
	f := newHandlerFixture(t)

	requestID := "send-3"
	txn := &domain.Transaction{
		ID:               uuid.New(),
		OwnerID:          f.ownerID,
		AppID:            f.appID,
		Direction:        domain.DirectionOutgoing,
		State:            domain.StatePending,
		PaymentHash:      vectorPaymentHash,
		AmountMsat:       250_000_000,
		BackendRequestID: &requestID,
		CreatedAt:        time.Now().UTC(),
	}

	f.ledger.EXPECT().
		GetByPaymentHash(gomock.Any(), f.ownerID, f.appID, vectorPaymentHash).
		Return(txn, nil)
	f.backend.EXPECT().
		SendStatus(gomock.Any(), requestID).
		Return(&ports.TransferStatus{Status: ports.TransferFailed}, nil)
	f.ledger.EXPECT().MarkFailed(gomock.Any(), txn.ID).Return(nil)

	env := respond(t, f.handler(), MethodLookupInvoice, LookupInvoiceParams{PaymentHash: vectorPaymentHash})
	require.Nil(t, env.Error)

	var result Transaction
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "failed", result.State)
}

func TestLookupInvoice_PendingWithoutRequestIDStaysPending(t *testing.T) {
	f := newHandlerFixture(t)

	txn := &domain.Transaction{
		ID:          uuid.New(),
		OwnerID:     f.ownerID,
		AppID:       f.appID,
		Direction:   domain.DirectionIncoming,
		State:       domain.StatePending,
		PaymentHash: vectorPaymentHash,
		AmountMsat:  1000,
		CreatedAt:   time.Now().UTC(),
	}

	// No backend expectations: nothing to reconcile against.
	f.ledger.EXPECT().
		GetByPaymentHash(gomock.Any(), f.ownerID, f.appID, vectorPaymentHash).
		Return(txn, nil)

	env := respond(t, f.handler(), MethodLookupInvoice, LookupInvoiceParams{PaymentHash: vectorPaymentHash})
	require.Nil(t, env.Error)

	var result Transaction
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "pending", result.State)
}

func TestLookupInvoice_StillPendingBackendLeavesRowUntouched(t *testing.T) {
	f := newHandlerFixture(t)

	requestID := "recv-5"
	txn := &domain.Transaction{
		ID:               uuid.New(),
		OwnerID:          f.ownerID,
		AppID:            f.appID,
		Direction:        domain.DirectionIncoming,
		State:            domain.StatePending,
		PaymentHash:      vectorPaymentHash,
		AmountMsat:       1000,
		BackendRequestID: &requestID,
		CreatedAt:        time.Now().UTC(),
	}

	f.ledger.EXPECT().
		GetByPaymentHash(gomock.Any(), f.ownerID, f.appID, vectorPaymentHash).
		Return(txn, nil)
	f.backend.EXPECT().
		ReceiveStatus(gomock.Any(), requestID).
		Return(&ports.TransferStatus{Status: ports.TransferPending}, nil)

	env := respond(t, f.handler(), MethodLookupInvoice, LookupInvoiceParams{PaymentHash: vectorPaymentHash})
	require.Nil(t, env.Error)

	var result Transaction
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "pending", result.State)
}

func TestLookupInvoice_CacheHitSkipsLedger(t *testing.T) {
	f := newHandlerFixture(t)
	h := f.handlerWithCache()

	cached := Transaction{Type: "incoming", State: "settled", PaymentHash: vectorPaymentHash, AmountMsat: 1000}
	blob, err := json.Marshal(cached)
	require.NoError(t, err)

	key := fmt.Sprintf("tx:%s:%s:%s", f.ownerID, f.appID, vectorPaymentHash)
	f.cache.EXPECT().Get(gomock.Any(), key).Return(blob, nil)

	env := respond(t, h, MethodLookupInvoice, LookupInvoiceParams{PaymentHash: vectorPaymentHash})
	require.Nil(t, env.Error)

	var result Transaction
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, cached, result)
}

func TestLookupInvoice_CacheMissPopulatesOnSettled(t *testing.T) {
	f := newHandlerFixture(t)
	h := f.handlerWithCache()

	preimage := "cc"
	txn := &domain.Transaction{
		ID:          uuid.New(),
		OwnerID:     f.ownerID,
		AppID:       f.appID,
		Direction:   domain.DirectionIncoming,
		State:       domain.StateSettled,
		PaymentHash: vectorPaymentHash,
		AmountMsat:  1000,
		Preimage:    &preimage,
		CreatedAt:   time.Now().UTC(),
	}

	key := fmt.Sprintf("tx:%s:%s:%s", f.ownerID, f.appID, vectorPaymentHash)
	f.cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	f.ledger.EXPECT().
		GetByPaymentHash(gomock.Any(), f.ownerID, f.appID, vectorPaymentHash).
		Return(txn, nil)
	f.cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), lookupCacheTTL).Return(nil)

	env := respond(t, h, MethodLookupInvoice, LookupInvoiceParams{PaymentHash: vectorPaymentHash})
	require.Nil(t, env.Error)
}

func TestPayInvoice_SettlesAfterPolling(t *testing.T) {
	f := newHandlerFixture(t)

	var created *domain.Transaction
	f.ledger.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *domain.Transaction) error {
			assert.Equal(t, domain.DirectionOutgoing, txn.Direction)
			assert.Equal(t, domain.StatePending, txn.State)
			assert.Equal(t, int64(250_000_000), txn.AmountMsat)
			assert.Equal(t, vectorPaymentHash, txn.PaymentHash)
			created = txn
			return nil
		})
	f.backend.EXPECT().EstimateSendFee(gomock.Any(), invoiceCoffee).Return(int64(5), nil)
	f.backend.EXPECT().
		SubmitPayment(gomock.Any(), invoiceCoffee, int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int64, onRequestID func(string)) (*ports.SendResult, error) {
			onRequestID("send-42")
			return &ports.SendResult{RequestID: "send-42", FeeSat: 5}, nil
		})
	f.ledger.EXPECT().
		SetBackendRequestID(gomock.Any(), gomock.Any(), "send-42").
		Return(nil)
	// First poll sees the transfer in flight, second sees it complete.
	f.backend.EXPECT().
		SendStatus(gomock.Any(), "send-42").
		Return(&ports.TransferStatus{Status: ports.TransferPending}, nil)
	f.backend.EXPECT().
		SendStatus(gomock.Any(), "send-42").
		Return(&ports.TransferStatus{Status: ports.TransferCompleted, Preimage: "deadbeef", FeeSat: 3}, nil)
	f.ledger.EXPECT().
		MarkSettled(gomock.Any(), gomock.Any(), "deadbeef", domain.SatToMsat(3), gomock.Any()).
		Return(nil)

	env := respond(t, f.handler(), MethodPayInvoice, PayInvoiceParams{Invoice: invoiceCoffee})
	require.Nil(t, env.Error)

	var result PayInvoiceResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, "deadbeef", result.Preimage)
	assert.Equal(t, int64(3000), result.FeesPaidMsat)

	require.NotNil(t, created)
	require.NotNil(t, created.BackendRequestID)
	assert.Equal(t, "send-42", *created.BackendRequestID)
}

func TestPayInvoice_PersistsRequestIDWhenCallbackNeverFires(t *testing.T) {
	f := newHandlerFixture(t)

	f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.backend.EXPECT().EstimateSendFee(gomock.Any(), invoiceCoffee).Return(int64(5), nil)
	f.backend.EXPECT().
		SubmitPayment(gomock.Any(), invoiceCoffee, int64(5), gomock.Any()).
		Return(&ports.SendResult{RequestID: "send-43", FeeSat: 5}, nil)
	f.ledger.EXPECT().SetBackendRequestID(gomock.Any(), gomock.Any(), "send-43").Return(nil)
	f.backend.EXPECT().
		SendStatus(gomock.Any(), "send-43").
		Return(&ports.TransferStatus{Status: ports.TransferCompleted, Preimage: "ff", FeeSat: 0}, nil)
	// The status carried no fee, so the submission estimate is used.
	f.ledger.EXPECT().
		MarkSettled(gomock.Any(), gomock.Any(), "ff", domain.SatToMsat(5), gomock.Any()).
		Return(nil)

	env := respond(t, f.handler(), MethodPayInvoice, PayInvoiceParams{Invoice: invoiceCoffee})
	require.Nil(t, env.Error)

	var result PayInvoiceResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, int64(5000), result.FeesPaidMsat)
}

func TestPayInvoice_RejectsInvalidInvoiceBeforeInsert(t *testing.T) {
	f := newHandlerFixture(t)

	// No ledger expectations: validation failures must not write rows.
	for name, invoice := range map[string]string{
		"empty":       "",
		"garbage":     "lnbc-not-an-invoice",
		"zero amount": invoiceNoAmount,
	} {
		env := respond(t, f.handler(), MethodPayInvoice, PayInvoiceParams{Invoice: invoice})
		require.NotNil(t, env.Error, name)
		assert.Equal(t, apperror.CodeOther, env.Error.Code, name)
	}
}

func TestPayInvoice_BackendFailureMarksRowFailed(t *testing.T) {
	f := newHandlerFixture(t)

	f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.backend.EXPECT().EstimateSendFee(gomock.Any(), invoiceCoffee).Return(int64(5), nil)
	f.backend.EXPECT().
		SubmitPayment(gomock.Any(), invoiceCoffee, int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int64, onRequestID func(string)) (*ports.SendResult, error) {
			onRequestID("send-44")
			return &ports.SendResult{RequestID: "send-44"}, nil
		})
	f.ledger.EXPECT().SetBackendRequestID(gomock.Any(), gomock.Any(), "send-44").Return(nil)
	f.backend.EXPECT().
		SendStatus(gomock.Any(), "send-44").
		Return(&ports.TransferStatus{Status: ports.TransferFailed}, nil)
	f.ledger.EXPECT().MarkFailed(gomock.Any(), gomock.Any()).Return(nil)

	env := respond(t, f.handler(), MethodPayInvoice, PayInvoiceParams{Invoice: invoiceCoffee})
	require.NotNil(t, env.Error)
	assert.Equal(t, apperror.CodePaymentFailed, env.Error.Code)
}

func TestPayInvoice_PollBudgetExhaustedLeavesRowPending(t *testing.T) {
	f := newHandlerFixture(t)

	f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.backend.EXPECT().EstimateSendFee(gomock.Any(), invoiceCoffee).Return(int64(5), nil)
	f.backend.EXPECT().
		SubmitPayment(gomock.Any(), invoiceCoffee, int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int64, onRequestID func(string)) (*ports.SendResult, error) {
			onRequestID("send-45")
			return &ports.SendResult{RequestID: "send-45"}, nil
		})
	f.ledger.EXPECT().SetBackendRequestID(gomock.Any(), gomock.Any(), "send-45").Return(nil)
	// Never reaches a terminal status within the poll budget. No MarkFailed,
	// no MarkSettled: the row stays pending for a later lookup to reconcile.
	// PollMaxAttempts is the total status-call budget, so exactly that many
	// calls are made before giving up.
	f.backend.EXPECT().
		SendStatus(gomock.Any(), "send-45").
		Return(&ports.TransferStatus{Status: ports.TransferPending}, nil).
		Times(int(fastPollConfig().PollMaxAttempts))

	env := respond(t, f.handler(), MethodPayInvoice, PayInvoiceParams{Invoice: invoiceCoffee})
	require.NotNil(t, env.Error)
	assert.Equal(t, apperror.CodeInternal, env.Error.Code)
	assert.Contains(t, env.Error.Message, "lookup_invoice")
}

func TestGetBalance_ConvertsToMillisatoshi(t *testing.T) {
	f := newHandlerFixture(t)
	f.backend.EXPECT().GetBalance(gomock.Any()).Return(int64(21_000), nil)

	env := respond(t, f.handler(), MethodGetBalance, nil)
	require.Nil(t, env.Error)

	var result GetBalanceResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.Equal(t, int64(21_000_000), result.BalanceMsat)
}

func TestListTransactions_Empty(t *testing.T) {
	f := newHandlerFixture(t)
	f.ledger.EXPECT().
		ListByApp(gomock.Any(), f.ownerID, f.appID, 0, 0).
		Return(nil, int64(0), nil)

	env := respond(t, f.handler(), MethodListTransactions, nil)
	require.Nil(t, env.Error)

	var result ListTransactionsResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	assert.NotNil(t, result.Transactions)
	assert.Empty(t, result.Transactions)
	assert.Zero(t, result.TotalCount)
}

func TestListTransactions_ForwardsPagination(t *testing.T) {
	f := newHandlerFixture(t)

	requestID := "recv-1"
	rows := []domain.Transaction{
		{
			ID:               uuid.New(),
			OwnerID:          f.ownerID,
			AppID:            f.appID,
			Direction:        domain.DirectionIncoming,
			State:            domain.StatePending,
			PaymentHash:      vectorPaymentHash,
			AmountMsat:       1000,
			BackendRequestID: &requestID,
			CreatedAt:        time.Now().UTC(),
		},
	}
	f.ledger.EXPECT().
		ListByApp(gomock.Any(), f.ownerID, f.appID, 10, 20).
		Return(rows, int64(31), nil)

	env := respond(t, f.handler(), MethodListTransactions, ListTransactionsParams{Limit: 10, Offset: 20})
	require.Nil(t, env.Error)

	var result ListTransactionsResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, int64(31), result.TotalCount)
	assert.Equal(t, "recv-1", result.Transactions[0].Metadata["backend_request_id"])
}
