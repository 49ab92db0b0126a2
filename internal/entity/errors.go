package entity

import "errors"

var (
	ErrInvalidEvent   = errors.New("invalid event")
	ErrInvalidCount   = errors.New("event count must be positive")
	ErrUnknownCommand = errors.New("unknown command")
)
