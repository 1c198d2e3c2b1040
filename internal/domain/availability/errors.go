package availability

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

// Kind classifies an expected booking rejection.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindInvalidRange     Kind = "invalid_range"
	KindDateUnavailable  Kind = "date_unavailable"
	KindTimeUnavailable  Kind = "time_unavailable"
	KindInvalidInput     Kind = "invalid_input"
)

// Sentinels matched by errors.Is against a *ValidationError of the same kind.
var (
	ErrNotFound         = errors.New("accommodation not found")
	ErrCapacityExceeded = errors.New("guest count exceeds capacity")
	ErrInvalidRange     = errors.New("invalid stay range")
	ErrDateUnavailable  = errors.New("date unavailable")
	ErrTimeUnavailable  = errors.New("check-in time unavailable")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrData marks snapshot data that could not be interpreted.
	ErrData = errors.New("malformed availability data")
)

var kindSentinels = map[Kind]error{
	KindNotFound:         ErrNotFound,
	KindCapacityExceeded: ErrCapacityExceeded,
	KindInvalidRange:     ErrInvalidRange,
	KindDateUnavailable:  ErrDateUnavailable,
	KindTimeUnavailable:  ErrTimeUnavailable,
	KindInvalidInput:     ErrInvalidInput,
}

// ValidationError is a user-facing rejection. Reason is safe to show to the guest as is.
type ValidationError struct {
	Kind   Kind
	Reason string

	// Date is the offending day for date and time rejections.
	Date *civil.Date
	// TimeReason explains a KindTimeUnavailable rejection.
	TimeReason BlockReason
}

func NewValidationError(kind Kind, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Reason: reason}
}

func (e *ValidationError) Error() string {
	return string(e.Kind) + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

func (e *ValidationError) withDate(d civil.Date) *ValidationError {
	e.Date = &d
	return e
}

// AsValidationError unwraps err to a *ValidationError when it carries one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// DataError reports a snapshot value that cannot be parsed or is inconsistent.
// It is a data-integrity fault, never a guest mistake.
type DataError struct {
	Field string
	Value string
	err   error
}

func newDataError(field, value string, err error) *DataError {
	return &DataError{Field: field, Value: value, err: err}
}

func (e *DataError) Error() string {
	msg := fmt.Sprintf("malformed %s %q", e.Field, e.Value)
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *DataError) Unwrap() error {
	return e.err
}

func (e *DataError) Is(target error) bool {
	return target == ErrData
}
