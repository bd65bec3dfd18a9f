package errors

import "errors"

var (
	// ErrSenderNotAdvertiser is returned when the caller holds no active
	// advertiser grant.
	ErrSenderNotAdvertiser = errors.New("sender is not an advertiser")

	// ErrCampaignNotFound is returned when the campaign id was never assigned.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrCampaignInactive is returned when the campaign exists but has been
	// deactivated. Inactive campaigns never distribute.
	ErrCampaignInactive = errors.New("campaign is not active")

	// ErrNotCampaignOwner is returned when the sender is an advertiser but
	// does not own the campaign. Administrators get no bypass here.
	ErrNotCampaignOwner = errors.New("sender does not own campaign")

	// ErrNoRecipients is returned for an empty recipient list. A list that
	// filters down to zero eligible recipients is NOT an error.
	ErrNoRecipients = errors.New("recipient list is empty")

	// ErrBatchNotFound is returned when no batch exists for the given id.
	ErrBatchNotFound = errors.New("distribution batch not found")

	// ErrIdempotencyKeyConflict is returned when a key is reused with a
	// different request payload.
	ErrIdempotencyKeyConflict = errors.New("idempotency key reused with different request")
)
