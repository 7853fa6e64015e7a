package nwc

import (
	"encoding/json"

	"nwc-wallet-service/internal/core/domain"
)

// Protocol method names.
const (
	MethodGetInfo          = "get_info"
	MethodMakeInvoice      = "make_invoice"
	MethodLookupInvoice    = "lookup_invoice"
	MethodPayInvoice       = "pay_invoice"
	MethodGetBalance       = "get_balance"
	MethodListTransactions = "list_transactions"
)

// codeNotImplemented is returned for methods the service does not advertise.
const codeNotImplemented = "NOT_IMPLEMENTED"

// SupportedMethods lists every method this wallet service advertises in its
// capability event and accepts over the channel.
func SupportedMethods() []string {
	return []string{
		MethodGetInfo,
		MethodMakeInvoice,
		MethodPayInvoice,
		MethodGetBalance,
		MethodLookupInvoice,
		MethodListTransactions,
	}
}

// Request is the decrypted content of an inbound protocol event.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// ErrorPayload travels inside the response envelope.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the uniform protocol envelope: exactly one of Result and
// Error is populated.
type Response struct {
	ResultType string        `json:"result_type"`
	Error      *ErrorPayload `json:"error"`
	Result     any           `json:"result"`
}

// --- Request parameter shapes ---

type MakeInvoiceParams struct {
	AmountMsat  int64  `json:"amount"`
	Description string `json:"description"`
}

type LookupInvoiceParams struct {
	PaymentHash string `json:"payment_hash"`
	Invoice     string `json:"invoice"`
}

type PayInvoiceParams struct {
	Invoice string `json:"invoice"`
}

type ListTransactionsParams struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// --- Result shapes ---

type GetInfoResult struct {
	Alias       string   `json:"alias"`
	Color       string   `json:"color"`
	Pubkey      string   `json:"pubkey"`
	Network     string   `json:"network"`
	BlockHeight uint32   `json:"block_height"`
	BlockHash   string   `json:"block_hash"`
	Methods     []string `json:"methods"`
}

type GetBalanceResult struct {
	BalanceMsat int64 `json:"balance"`
}

type PayInvoiceResult struct {
	Preimage     string `json:"preimage"`
	FeesPaidMsat int64  `json:"fees_paid"`
}

// Transaction is the protocol-facing transaction shape. Timestamps are unix
// seconds; amounts are millisatoshi.
type Transaction struct {
	Type            string         `json:"type"`
	Invoice         string         `json:"invoice"`
	Description     string         `json:"description"`
	DescriptionHash string         `json:"description_hash"`
	Preimage        string         `json:"preimage"`
	PaymentHash     string         `json:"payment_hash"`
	AmountMsat      int64          `json:"amount"`
	FeesPaidMsat    int64          `json:"fees_paid"`
	CreatedAt       int64          `json:"created_at"`
	ExpiresAt       int64          `json:"expires_at"`
	SettledAt       int64          `json:"settled_at"`
	State           string         `json:"state"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

type ListTransactionsResult struct {
	Transactions []Transaction `json:"transactions"`
	TotalCount   int64         `json:"total_count"`
}

// toProtocolTransaction maps a ledger row to the protocol shape.
func toProtocolTransaction(t *domain.Transaction) Transaction {
	out := Transaction{
		Type:        string(t.Direction),
		Invoice:     t.Invoice,
		Description: t.Description,
		PaymentHash: t.PaymentHash,
		AmountMsat:  t.AmountMsat,
		CreatedAt:   t.CreatedAt.Unix(),
		ExpiresAt:   t.ExpiresAt.Unix(),
		State:       string(t.State),
	}
	if t.Preimage != nil {
		out.Preimage = *t.Preimage
	}
	if t.FeesPaidMsat != nil {
		out.FeesPaidMsat = *t.FeesPaidMsat
	}
	if t.SettledAt != nil {
		out.SettledAt = t.SettledAt.Unix()
	}
	if t.BackendRequestID != nil {
		out.Metadata = map[string]any{"backend_request_id": *t.BackendRequestID}
	}
	return out
}
