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

// SetGlobalOptOutCommand is a self-service write of the caller's opt-out flag.
type SetGlobalOptOutCommand struct {
	CallerID string
	OptOut   bool
}

type SetGlobalOptOutResult struct {
	Address   string    `json:"address"`
	OptOut    bool      `json:"opt_out"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetGlobalOptOutUseCase performs an unconditional value-replacing write.
// Re-setting the same value still succeeds and still notifies.
type SetGlobalOptOutUseCase struct {
	Repository  ports.Repository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u SetGlobalOptOutUseCase) Execute(ctx context.Context, cmd SetGlobalOptOutCommand) (SetGlobalOptOutResult, error) {
	logger := application.ResolveLogger(u.Logger)

	caller := strings.TrimSpace(cmd.CallerID)
	if caller == "" {
		return SetGlobalOptOutResult{}, domainerrors.ErrNullAddress
	}

	now := u.now()
	if err := u.Repository.SetGlobalOptOut(ctx, caller, cmd.OptOut, now); err != nil {
		logger.Error("global opt-out write failed",
			"event", "preference_opt_out_write_failed",
			"module", "identity-access/preference-service",
			"layer", "application",
			"address", caller,
			"error", err.Error(),
		)
		return SetGlobalOptOutResult{}, err
	}

	if u.Outbox != nil {
		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return SetGlobalOptOutResult{}, err
		}
		envelope, err := newPreferenceEnvelope(
			eventID,
			"preference.global_opt_out_set",
			caller,
			now,
			map[string]any{
				"address": caller,
				"opt_out": cmd.OptOut,
			},
		)
		if err != nil {
			return SetGlobalOptOutResult{}, err
		}
		if err := u.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return SetGlobalOptOutResult{}, err
		}
	}

	logger.Info("global opt-out set",
		"event", "preference_global_opt_out_set",
		"module", "identity-access/preference-service",
		"layer", "application",
		"address", caller,
		"opt_out", cmd.OptOut,
	)
	return SetGlobalOptOutResult{Address: caller, OptOut: cmd.OptOut, UpdatedAt: now}, nil
}

func (u SetGlobalOptOutUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
