package service

import "errors"

var (
	// Validation errors
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmailTaken   = errors.New("email already registered")

	// Authentication errors
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// Access errors. Boards owned by someone else are reported as not found.
	ErrBoardNotFound = errors.New("board not found")
	ErrTodoNotFound  = errors.New("todo not found")
	ErrForbidden     = errors.New("not authorized")
)
