package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a failed password or PIN check, or an operation whose
// authentication precondition is not met.
var ErrUnauthorized = errors.New("unauthorized")

// Ledger and loan errors. Each one reports its own message but also matches its
// broader kind with errors.Is, so ErrLoanNotFound is also an ErrNotFound.
var (
	ErrAccountDoesNotExist = newKind(ErrNotFound, "account does not exist")
	ErrLoanNotFound        = newKind(ErrNotFound, "loan not found")
	ErrPinAlreadyExists    = newKind(ErrUnauthorized, "PIN already exists")

	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidPin          = errors.New("invalid PIN")
	ErrFundTransfer        = errors.New("source and target account cannot be the same")
	ErrIllegalLoanState    = errors.New("illegal loan state")
)

type kindError struct {
	kind error
	msg  string
}

func newKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// AppError wraps an unexpected infrastructure failure with the HTTP status the
// transport should report for it.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }
