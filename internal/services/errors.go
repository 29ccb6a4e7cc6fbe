package services

import "errors"

// User-correctable outcomes. Handlers translate these into a status code
// or a redirect; the message text is what the UI shows.
var (
	// registration step 1
	ErrAllFieldsRequired = errors.New("All fields are required")
	ErrInvalidEmail      = errors.New("Invalid email format")
	ErrInvalidName       = errors.New("Name must contain only letters and be 3-32 characters")
	ErrEmailTaken        = errors.New("this email is already in use, please choose another one")

	// registration token
	ErrRegistrationExpired = errors.New("Registration timed out, please start again")
	ErrInvalidToken        = errors.New("invalid registration token")

	// registration step 2
	ErrPasswordRequired = errors.New("Password is required")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrPasswordLength   = errors.New("Password must be between 3 and 32 characters")

	// login
	ErrUserNotFound  = errors.New("User does not exist")
	ErrWrongPassword = errors.New("Incorrect password")

	// messages
	ErrTextRequired    = errors.New("Message text is required")
	ErrTextTooLong     = errors.New("Message too long (max 500)")
	ErrMessageNotFound = errors.New("Message not found")
	ErrNotOwner        = errors.New("Not allowed")
	ErrNoValidIDs      = errors.New("No valid ids provided")
)
