package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")

	// ErrValidation is wrapped by every form-field error below.
	ErrValidation = errors.New("validation failed")

	ErrUsernameRequired = fmt.Errorf("%w: username is required", ErrValidation)
	ErrUsernameTooLong  = fmt.Errorf("%w: username must be at most %d characters", ErrValidation, maxUsernameLen)
	ErrEmailRequired    = fmt.Errorf("%w: email is required", ErrValidation)
	ErrEmailTooLong     = fmt.Errorf("%w: email must be at most %d characters", ErrValidation, maxEmailLen)
	ErrEmailInvalid     = fmt.Errorf("%w: email address is not valid", ErrValidation)
	ErrPasswordRequired = fmt.Errorf("%w: password is required", ErrValidation)
	ErrTitleRequired    = fmt.Errorf("%w: title is required", ErrValidation)
	ErrTitleTooLong     = fmt.Errorf("%w: title must be at most %d characters", ErrValidation, maxTitleLen)
	ErrSubtitleTooLong  = fmt.Errorf("%w: subtitle must be at most %d characters", ErrValidation, maxSubtitleLen)
	ErrContentRequired  = fmt.Errorf("%w: content is required", ErrValidation)
)

// Column sizes from the schema.
const (
	maxUsernameLen = 80
	maxEmailLen    = 120
	maxTitleLen    = 200
	maxSubtitleLen = 300
)
