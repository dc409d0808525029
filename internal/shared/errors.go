package shared

import "errors"

var (
	ErrInsufficientCards = errors.New("insufficient cards in deck")
	ErrEmptyTrick        = errors.New("cannot resolve an empty trick")
	ErrUnknownCard       = errors.New("unknown card")
)
