package atm

import "errors"

var (
	ErrInvalidRequest          = errors.New("invalid request")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrDenominationUnavailable = errors.New("denomination unavailable")
	ErrInvalidDenomination     = errors.New("invalid denomination")
	ErrInvalidInventory        = errors.New("invalid inventory")
)
