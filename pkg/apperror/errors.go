package apperror

import (
	"fmt"
	"net/http"
)

// Wallet-protocol error codes. These travel verbatim inside the NWC
// response envelope, so their spelling is part of the wire contract.
const (
	CodeNotFound      = "NOT_FOUND"
	CodeInternal      = "INTERNAL"
	CodeNotReady      = "NOT_READY"
	CodePaymentFailed = "PAYMENT_FAILED"
	CodeOther         = "OTHER"
)

// AppError is a structured error carrying both the protocol code and an
// HTTP status for the management API.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to clients)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet protocol (NWC) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNotReady() *AppError {
	return New(CodeNotReady, "wallet backend not initialized", http.StatusServiceUnavailable)
}

// InternalError wraps any unexpected backend or ledger fault. The cause is
// included in the message because protocol clients only ever see the envelope.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, fmt.Sprintf("internal error: %v", err), http.StatusInternalServerError, err)
}

func ErrPaymentFailed(err error) *AppError {
	return Wrap(CodePaymentFailed, fmt.Sprintf("payment failed: %v", err), http.StatusBadGateway, err)
}

// ErrPaymentTimeout signals that the settlement poll exhausted its budget.
// The ledger row stays pending and reconcilable via lookup_invoice.
func ErrPaymentTimeout() *AppError {
	return New(CodeInternal, "payment not settled within polling window, try lookup_invoice later", http.StatusGatewayTimeout)
}

// Validation rejects a malformed caller request before any backend call.
func Validation(message string) *AppError {
	return New(CodeOther, message, http.StatusBadRequest)
}

// ---- Management API (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidMnemonic() *AppError {
	return New("AUTH_004", "Invalid mnemonic phrase", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrBackendUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Lightning backend unavailable", http.StatusServiceUnavailable, err)
}
