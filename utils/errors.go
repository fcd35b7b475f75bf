package utils

import "errors"

var (
	ErrEmptySource      = errors.New("source hostname cannot be empty")
	ErrInvalidSource    = errors.New("source must be a bare hostname like \"example.com\"")
	ErrEmptyTarget      = errors.New("target URL cannot be empty")
	ErrInvalidTarget    = errors.New("invalid target URL format")
	ErrInvalidScheme    = errors.New("target URL scheme must be http or https")
	ErrEmptyTargetHost  = errors.New("target URL host cannot be empty")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)
