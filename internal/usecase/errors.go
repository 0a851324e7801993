package usecase

import (
	"errors"
)

// Error taxonomy for the tool surface. Handlers map these to HTTP statuses
// with errors.Is; everything else counts as an upstream or internal fault.
var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidState           = errors.New("operation not valid for current booking status")
	ErrAlreadyCancelled       = errors.New("booking is already cancelled")
	ErrAlreadyCompleted       = errors.New("cannot cancel completed booking")
	ErrBookingNotConfirmed    = errors.New("booking must be confirmed before adding to calendar")
	ErrAuthenticationRequired = errors.New("calendar authentication required")
)
