package errs

import "errors"

// Sentinel errors shared by the use case and handler layers
var (
	// Lookup errors
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrManualBlockNotFound   = errors.New("manual block not found")

	// Booking errors
	ErrBookingConflict           = errors.New("dates were taken by another booking")
	ErrInvalidStatusTransition   = errors.New("invalid reservation status transition")
	ErrAvailabilityDataCorrupted = errors.New("availability data is corrupted")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrStoreUnavailable        = errors.New("booking store unavailable")
)
