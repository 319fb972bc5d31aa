package booking

import "errors"

var (
	// ErrCarUnavailable means the requested window clashes with a block or
	// another booking.
	ErrCarUnavailable = errors.New("car is not available for the requested dates")
	// ErrInvalidWindow means the pickup/return pair violates the car's
	// booking rules.
	ErrInvalidWindow = errors.New("requested window violates the car's booking rules")
	// ErrOwnCar means a host tried to book their own listing.
	ErrOwnCar = errors.New("hosts cannot book their own car")
	// ErrNotParticipant means the requester is neither guest nor host of the
	// booking.
	ErrNotParticipant = errors.New("not a participant of this booking")
	// ErrWrongState means the booking is not in a state that allows the
	// requested transition.
	ErrWrongState = errors.New("booking state does not allow this operation")
)
