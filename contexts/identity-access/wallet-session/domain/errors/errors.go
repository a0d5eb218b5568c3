package errors

import "errors"

var (
	ErrAccountNotFound    = errors.New("account does not exist")
	ErrAccountExists      = errors.New("account already registered")
	ErrSessionNotFound    = errors.New("session does not exist")
	ErrSessionExpired     = errors.New("session has expired")
	ErrInvalidAddress     = errors.New("address is required")
	ErrInvalidDisplayName = errors.New("display name is required")
)
