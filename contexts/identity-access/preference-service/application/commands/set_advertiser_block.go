package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "madison/contexts/identity-access/preference-service/application"
	domainerrors "madison/contexts/identity-access/preference-service/domain/errors"
	"madison/contexts/identity-access/preference-service/ports"
)

// SetAdvertiserBlockCommand is a self-service write of one block flag.
type SetAdvertiserBlockCommand struct {
	CallerID     string
	AdvertiserID string
	Blocked      bool
}

type SetAdvertiserBlockResult struct {
	Address    string    `json:"address"`
	Advertiser string    `json:"advertiser"`
	Blocked    bool      `json:"blocked"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SetAdvertiserBlockUseCase performs an unconditional value-replacing write of
// the caller's block flag for one advertiser.
type SetAdvertiserBlockUseCase struct {
	Repository  ports.Repository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u SetAdvertiserBlockUseCase) Execute(ctx context.Context, cmd SetAdvertiserBlockCommand) (SetAdvertiserBlockResult, error) {
	logger := application.ResolveLogger(u.Logger)

	caller := strings.TrimSpace(cmd.CallerID)
	advertiser := strings.TrimSpace(cmd.AdvertiserID)
	if caller == "" {
		return SetAdvertiserBlockResult{}, domainerrors.ErrNullAddress
	}
	if advertiser == "" {
		return SetAdvertiserBlockResult{}, domainerrors.ErrNullAdvertiser
	}

	now := u.now()
	if err := u.Repository.SetAdvertiserBlocked(ctx, caller, advertiser, cmd.Blocked, now); err != nil {
		logger.Error("advertiser block write failed",
			"event", "preference_block_write_failed",
			"module", "identity-access/preference-service",
			"layer", "application",
			"address", caller,
			"advertiser", advertiser,
			"error", err.Error(),
		)
		return SetAdvertiserBlockResult{}, err
	}

	if u.Outbox != nil {
		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return SetAdvertiserBlockResult{}, err
		}
		envelope, err := newPreferenceEnvelope(
			eventID,
			"preference.advertiser_block_set",
			caller,
			now,
			map[string]any{
				"address":    caller,
				"advertiser": advertiser,
				"blocked":    cmd.Blocked,
			},
		)
		if err != nil {
			return SetAdvertiserBlockResult{}, err
		}
		if err := u.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return SetAdvertiserBlockResult{}, err
		}
	}

	logger.Info("advertiser block set",
		"event", "preference_advertiser_block_set",
		"module", "identity-access/preference-service",
		"layer", "application",
		"address", caller,
		"advertiser", advertiser,
		"blocked", cmd.Blocked,
	)
	return SetAdvertiserBlockResult{
		Address:    caller,
		Advertiser: advertiser,
		Blocked:    cmd.Blocked,
		UpdatedAt:  now,
	}, nil
}

func (u SetAdvertiserBlockUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
