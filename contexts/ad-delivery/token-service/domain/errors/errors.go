package errors

import "errors"

var (
	// ErrTokenNotFound is returned when a token id was never issued.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenNotTransferable is returned for every transfer attempt on an
	// existing token. Tokens are bound to their recipient permanently.
	ErrTokenNotTransferable = errors.New("token is not transferable")

	// ErrCounterExhausted signals the token id counter reached its maximum.
	ErrCounterExhausted = errors.New("token id counter exhausted")
)
