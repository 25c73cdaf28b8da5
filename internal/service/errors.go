package service

import "errors"

// Every failure below is an expected, caller-correctable condition.
// Handlers match with errors.Is and map to distinct response codes.
var (
	ErrNotFound          = errors.New("no status set for user")
	ErrInvalidStatusType = errors.New("status type is not supported")
	ErrInvalidMessageID  = errors.New("message id is not supported")
	ErrInvalidClearAt    = errors.New("clearAt must be in the future")
	ErrInvalidStatusIcon = errors.New("status icon must be a single emoji")
	ErrMessageTooLong    = errors.New("message exceeds maximum length")
)
