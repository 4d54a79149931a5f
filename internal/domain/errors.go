package domain

import "errors"

// Domain errors
var (
	// Not found
	ErrZoneNotFound        = errors.New("zone not found")
	ErrTourNotFound        = errors.New("tour not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrRoleNotFound        = errors.New("role not found")
	ErrAvatarNotFound      = errors.New("avatar not found")

	// Validation
	ErrInvalidZoneName  = errors.New("zone name is required")
	ErrInvalidTourType  = errors.New("tour type is required")
	ErrInvalidStartTime = errors.New("start time is required")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
	ErrInvalidUsername  = errors.New("username is required")
	ErrInvalidPassword  = errors.New("password is required")
	ErrInvalidName      = errors.New("name is required")

	// Conflict
	ErrUsernameTaken = errors.New("username already taken")

	// Authentication; a mismatch is an outcome, not a server error
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrZoneNotFound) ||
		errors.Is(err, ErrTourNotFound) ||
		errors.Is(err, ErrParticipantNotFound) ||
		errors.Is(err, ErrRoleNotFound) ||
		errors.Is(err, ErrAvatarNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidZoneName) ||
		errors.Is(err, ErrInvalidTourType) ||
		errors.Is(err, ErrInvalidStartTime) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInvalidUsername) ||
		errors.Is(err, ErrInvalidPassword) ||
		errors.Is(err, ErrInvalidName)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrUsernameTaken)
}
