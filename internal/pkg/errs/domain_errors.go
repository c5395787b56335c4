package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Event type errors
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrSlugTaken         = errors.New("slug already exists")

	// Availability errors
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidRule      = errors.New("invalid availability rule")
	ErrInvalidTimezone  = errors.New("invalid timezone")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrSlotConflict            = errors.New("slot conflicts with an existing booking")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
