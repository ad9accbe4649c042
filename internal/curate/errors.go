package curate

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes pipeline errors.
type ErrorCode string

const (
	// ErrCodeNoIntake indicates no candidate pool exists for the address.
	ErrCodeNoIntake ErrorCode = "NO_INTAKE"

	// ErrCodeNoRecord indicates no scaffold record exists for the address.
	ErrCodeNoRecord ErrorCode = "NO_RECORD"

	// ErrCodeEmptySelection indicates a promotion with no positions in
	// any category.
	ErrCodeEmptySelection ErrorCode = "EMPTY_SELECTION"

	// ErrCodePrimaryEmpty indicates the promotion gate tripped: the
	// primary category would end up empty, so nothing was written.
	ErrCodePrimaryEmpty ErrorCode = "PRIMARY_EMPTY"

	// ErrCodeIntakeExists indicates a seed would clobber an existing
	// pool without the overwrite flag.
	ErrCodeIntakeExists ErrorCode = "INTAKE_EXISTS"

	// ErrCodeParseFailure indicates a stored document could not be
	// decoded as a well-formed record or pool.
	ErrCodeParseFailure ErrorCode = "PARSE_FAILURE"
)

// Error is a pipeline error tied to one address.
type Error struct {
	Code    ErrorCode
	Address string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Address != "" {
		return fmt.Sprintf("%s: %s (address=%s)", e.Code, e.Message, e.Address)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the pipeline error code from an error chain, or ""
// when the error is not a pipeline error.
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsPrimaryEmpty reports whether the error is the promotion invariant
// gate. Callers map this to a distinct exit code so automation can tell
// an invariant violation from a usage error.
func IsPrimaryEmpty(err error) bool {
	return CodeOf(err) == ErrCodePrimaryEmpty
}

// IsParseFailure reports whether the error is a stored-content decode
// failure.
func IsParseFailure(err error) bool {
	return CodeOf(err) == ErrCodeParseFailure
}

// NewNoIntakeError reports a missing candidate pool.
func NewNoIntakeError(addr string) *Error {
	return &Error{
		Code:    ErrCodeNoIntake,
		Address: addr,
		Message: "no intake pool; seed one before promoting",
	}
}

// NewNoRecordError reports a missing scaffold record.
func NewNoRecordError(addr string) *Error {
	return &Error{
		Code:    ErrCodeNoRecord,
		Address: addr,
		Message: "no day record; run scaffold first",
	}
}

// NewEmptySelectionError reports a promotion with nothing selected.
func NewEmptySelectionError(addr string) *Error {
	return &Error{
		Code:    ErrCodeEmptySelection,
		Address: addr,
		Message: "no candidate positions selected in any category",
	}
}

// NewPrimaryEmptyError reports the tripped invariant gate.
func NewPrimaryEmptyError(addr string) *Error {
	return &Error{
		Code:    ErrCodePrimaryEmpty,
		Address: addr,
		Message: "promotion would leave the primary category empty; nothing written",
	}
}

// NewIntakeExistsError reports a refused overwrite of an existing pool.
func NewIntakeExistsError(addr string) *Error {
	return &Error{
		Code:    ErrCodeIntakeExists,
		Address: addr,
		Message: "intake pool already exists; pass overwrite to replace it",
	}
}

// NewParseError wraps a decode failure with its address.
func NewParseError(addr string, err error) *Error {
	return &Error{
		Code:    ErrCodeParseFailure,
		Address: addr,
		Message: "stored content is not a well-formed document",
		Err:     err,
	}
}
