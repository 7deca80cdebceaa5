package user

import "errors"

// Domain errors for user operations

var (
	ErrInvalidEmail      = errors.New("a valid email address is required")
	ErrFirstNameRequired = errors.New("first name is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email address is already registered")
	ErrInvalidGoal       = errors.New("unknown goal value")
	ErrInvalidEnumValue  = errors.New("unknown enum value")
)
