package errors

import "errors"

var (
	ErrNotAdministrator = errors.New("caller is not the administrator")
	ErrNullAddress      = errors.New("address must not be the null identity")
)
