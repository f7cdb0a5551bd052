// Package v1alpha1 implements the DiceBossService gRPC handler
package v1alpha1

import (
	"context"
	"log/slog"

	casinov1alpha1 "github.com/KirkDiggler/rpg-casino/internal/api/casino/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/encounter"
)

// HandlerConfig holds dependencies for the dice boss handler
type HandlerConfig struct {
	EncounterService encounter.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}
	return vb.Build()
}

// Handler implements casinov1alpha1.DiceBossServiceServer
type Handler struct {
	casinov1alpha1.UnimplementedDiceBossServiceServer
	encounterService encounter.Service
}

// NewHandler creates a new dice boss handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{encounterService: cfg.EncounterService}, nil
}

// StartEncounter starts a fight against the boss
func (h *Handler) StartEncounter(
	ctx context.Context,
	req *casinov1alpha1.StartEncounterRequest,
) (*casinov1alpha1.StartEncounterResponse, error) {
	if req.GetPlayerId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.encounterService.StartEncounter(ctx, &encounter.StartEncounterInput{
		PlayerID:   req.GetPlayerId(),
		PlayerName: req.GetPlayerName(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &casinov1alpha1.StartEncounterResponse{
		Encounter: convertEncounter(output.Encounter),
		Opening:   convertOutcome(output.Opening),
	}, nil
}

// GetEncounter loads an encounter
func (h *Handler) GetEncounter(
	ctx context.Context,
	req *casinov1alpha1.GetEncounterRequest,
) (*casinov1alpha1.GetEncounterResponse, error) {
	if req.GetEncounterId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	output, err := h.encounterService.GetEncounter(ctx, &encounter.GetEncounterInput{
		EncounterID: req.GetEncounterId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &casinov1alpha1.GetEncounterResponse{
		Encounter: convertEncounter(output.Encounter),
	}, nil
}

// ToggleDie holds or releases a die
func (h *Handler) ToggleDie(
	ctx context.Context,
	req *casinov1alpha1.ToggleDieRequest,
) (*casinov1alpha1.ToggleDieResponse, error) {
	if req.GetEncounterId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	output, err := h.encounterService.ToggleDie(ctx, &encounter.ToggleDieInput{
		EncounterID: req.GetEncounterId(),
		DieID:       int(req.GetDieId()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &casinov1alpha1.ToggleDieResponse{
		Encounter: convertEncounter(output.Encounter),
		Changed:   output.Changed,
	}, nil
}

// RollMore banks the held dice and rolls the rest
func (h *Handler) RollMore(
	ctx context.Context,
	req *casinov1alpha1.RollMoreRequest,
) (*casinov1alpha1.RollMoreResponse, error) {
	if req.GetEncounterId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	output, err := h.encounterService.RollMore(ctx, &encounter.RollMoreInput{
		EncounterID: req.GetEncounterId(),
	})
	if err != nil {
		enc, rejection, err := h.rejection(ctx, req.GetEncounterId(), err)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return &casinov1alpha1.RollMoreResponse{Encounter: enc, Rejection: rejection}, nil
	}

	return &casinov1alpha1.RollMoreResponse{
		Encounter: convertEncounter(output.Encounter),
		Outcome:   convertOutcome(output.Outcome),
		Turn:      convertTurn(output.Turn),
	}, nil
}

// Pass banks the held dice and ends the turn
func (h *Handler) Pass(
	ctx context.Context,
	req *casinov1alpha1.PassRequest,
) (*casinov1alpha1.PassResponse, error) {
	if req.GetEncounterId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	output, err := h.encounterService.Pass(ctx, &encounter.PassInput{
		EncounterID: req.GetEncounterId(),
	})
	if err != nil {
		enc, rejection, err := h.rejection(ctx, req.GetEncounterId(), err)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return &casinov1alpha1.PassResponse{Encounter: enc, Rejection: rejection}, nil
	}

	return &casinov1alpha1.PassResponse{
		Encounter: convertEncounter(output.Encounter),
		Turn:      convertTurn(output.Turn),
	}, nil
}

// BossTurn plays the boss's turn
func (h *Handler) BossTurn(
	ctx context.Context,
	req *casinov1alpha1.BossTurnRequest,
) (*casinov1alpha1.BossTurnResponse, error) {
	if req.GetEncounterId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	output, err := h.encounterService.BossTurn(ctx, &encounter.BossTurnInput{
		EncounterID: req.GetEncounterId(),
	})
	if err != nil {
		enc, rejection, err := h.rejection(ctx, req.GetEncounterId(), err)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return &casinov1alpha1.BossTurnResponse{Encounter: enc, Rejection: rejection}, nil
	}

	return &casinov1alpha1.BossTurnResponse{
		Encounter:   convertEncounter(output.Encounter),
		Turn:        convertTurn(output.Turn),
		NextOpening: convertOutcome(output.NextOpening),
	}, nil
}

// ListBeatenBosses lists the bosses a player has defeated
func (h *Handler) ListBeatenBosses(
	ctx context.Context,
	req *casinov1alpha1.ListBeatenBossesRequest,
) (*casinov1alpha1.ListBeatenBossesResponse, error) {
	if req.GetPlayerId() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.encounterService.ListBeatenBosses(ctx, &encounter.ListBeatenBossesInput{
		PlayerID: req.GetPlayerId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &casinov1alpha1.ListBeatenBossesResponse{BossIds: output.BossIDs}, nil
}

// rejection turns a game-rule refusal into a response carrying the unchanged
// encounter. Any other error is returned as is.
func (h *Handler) rejection(
	ctx context.Context, encounterID string, actionErr error,
) (*casinov1alpha1.Encounter, *casinov1alpha1.Rejection, error) {
	reason := diceboss.RejectionReason(actionErr)
	if reason == "" {
		return nil, nil, actionErr
	}

	slog.Debug("Dice boss action rejected",
		"encounter_id", encounterID,
		"reason", reason,
	)

	output, err := h.encounterService.GetEncounter(ctx, &encounter.GetEncounterInput{EncounterID: encounterID})
	if err != nil {
		return nil, nil, err
	}

	return convertEncounter(output.Encounter), &casinov1alpha1.Rejection{
		Reason:  string(reason),
		Message: errors.GetMessage(actionErr),
	}, nil
}
