package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// ---- Enrollment & Identity (IDN) ----

func ErrDuplicateKey() *AppError {
	return New("IDN_001", "Biometric key already enrolled", http.StatusConflict)
}

func ErrUnknownMerchant() *AppError {
	return New("IDN_002", "Merchant is not registered", http.StatusNotFound)
}

func ErrUsernameExists() *AppError {
	return New("IDN_003", "Username already exists", http.StatusConflict)
}

// ---- Payment Authorization (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_001", "Invalid amount", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("PAY_002", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrAlreadyResolved() *AppError {
	return New("PAY_003", "Payment request already resolved", http.StatusConflict)
}

func ErrConcurrentAttempt() *AppError {
	return New("PAY_004", "Another authorization attempt is in progress", http.StatusConflict)
}

func ErrInvalidState(current string) *AppError {
	return New("PAY_005", fmt.Sprintf("Operation not allowed in state %s", current), http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_006", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrCurrencyMismatch(want, got string) *AppError {
	return New("PAY_007", fmt.Sprintf("Ledger holds %s, not %s", want, got), http.StatusBadRequest)
}

// ---- Biometric Capture (CAP) ----

// ErrDeviceUnavailable signals that no capture device could be acquired.
// Non-fatal: the capture session degrades to the simulated key path.
func ErrDeviceUnavailable() *AppError {
	return New("CAP_001", "Capture device unavailable", http.StatusServiceUnavailable)
}

func ErrCaptureFailed(reason string) *AppError {
	return New("CAP_002", fmt.Sprintf("Capture failed: %s", reason), http.StatusUnprocessableEntity)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbiddenRole() *AppError {
	return New("AUTH_003", "Operation not permitted for this role", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
