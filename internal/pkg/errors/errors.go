package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict: resource already exists")
	ErrInternal     = errors.New("internal server error")
)

// Domain errors surfaced by the rental engine services
var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrVehicleNotAvailable = errors.New("vehicle is not available for rent")
	ErrVehicleHasRental    = errors.New("vehicle has an active rental")
	ErrInvalidPeriod       = errors.New("return date must be after start date")
	ErrPeriodTooLong       = errors.New("maximum rental period is 30 days (720 hours)")
	ErrRentalNotFound      = errors.New("rental not found")
	ErrRentalNotActive     = errors.New("rental is not active")
	ErrRentalLimit         = errors.New("maximum 3 active rentals allowed")
	ErrVehicleAlreadyHeld  = errors.New("customer already has this vehicle rented")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrBadCredentials      = errors.New("invalid username or password")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
