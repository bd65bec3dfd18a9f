package errors

import "errors"

var (
	ErrNullAddress    = errors.New("address must not be the null identity")
	ErrNullAdvertiser = errors.New("advertiser must not be the null identity")
)
