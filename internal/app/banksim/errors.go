package banksim

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidEntity  = errors.New("invalid entity")
)
