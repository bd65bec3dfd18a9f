package errors

import "errors"

var (
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrNotAdvertiser          = errors.New("caller does not hold the advertiser role")
	ErrNotCampaignOwner       = errors.New("caller is neither campaign owner nor administrator")
	ErrEmptyContentRef        = errors.New("content reference must not be empty")
	ErrCounterExhausted       = errors.New("campaign id counter exhausted")
	ErrIdempotencyKeyConflict = errors.New("idempotency key conflict")
)
