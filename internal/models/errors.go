package models

import "errors"

// Domain error kinds. Services return these (possibly wrapped); handlers map
// them to HTTP statuses. None are retried.
var (
	// ErrPermissionDenied is returned on a role or ownership mismatch.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrForbidden is returned when the offer visibility rule denies a read.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registering an email already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateApplication is returned when a beneficiary applies twice
	// to the same offer.
	ErrDuplicateApplication = errors.New("application already exists for this offer")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidScore is returned for a rating score outside 1..5.
	ErrInvalidScore = errors.New("score must be between 1 and 5")

	// ErrProjectFinished is returned when linking an offer to a finished
	// project.
	ErrProjectFinished = errors.New("project is finished")

	// ErrAlreadyFinished is returned when finishing a finished project.
	ErrAlreadyFinished = errors.New("project is already finished")

	// ErrOfferClosed is returned when applying to a closed offer.
	ErrOfferClosed = errors.New("offer is closed")
)
