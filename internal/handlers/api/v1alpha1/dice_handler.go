// Package v1alpha1 exposes the roll history of dice boss encounters over the
// generic DiceService API
package v1alpha1

import (
	"context"

	"github.com/samber/lo"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice"
	dicesession "github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	return vb.Build()
}

// DiceHandler implements the generic dice gRPC service
type DiceHandler struct {
	apiv1alpha1.UnimplementedDiceServiceServer
	diceService dice.Service
}

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session.
// Encounter roll history lives under entity = encounter id, context = turn_<n>.
func (h *DiceHandler) RollDice(
	ctx context.Context,
	req *apiv1alpha1.RollDiceRequest,
) (*apiv1alpha1.RollDiceResponse, error) {
	if err := validateSessionKey(req.GetEntityId(), req.GetContext()); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetNotation() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}

	diceOutput, err := h.diceService.RollDice(ctx, &dice.RollDiceInput{
		EntityID:    req.GetEntityId(),
		Context:     req.GetContext(),
		Notation:    req.GetNotation(),
		Description: req.GetModifierDescription(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RollDiceResponse{
		Rolls:     toProtoRolls(diceOutput.Session.Rolls),
		ExpiresAt: diceOutput.Session.ExpiresAt.Unix(),
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (h *DiceHandler) GetRollSession(
	ctx context.Context,
	req *apiv1alpha1.GetRollSessionRequest,
) (*apiv1alpha1.GetRollSessionResponse, error) {
	if err := validateSessionKey(req.GetEntityId(), req.GetContext()); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	diceOutput, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
		EntityID: req.GetEntityId(),
		Context:  req.GetContext(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetRollSessionResponse{
		Rolls:     toProtoRolls(diceOutput.Session.Rolls),
		ExpiresAt: diceOutput.Session.ExpiresAt.Unix(),
		CreatedAt: diceOutput.Session.CreatedAt.Unix(),
	}, nil
}

// ClearRollSession removes a dice roll session
func (h *DiceHandler) ClearRollSession(
	ctx context.Context,
	req *apiv1alpha1.ClearRollSessionRequest,
) (*apiv1alpha1.ClearRollSessionResponse, error) {
	if err := validateSessionKey(req.GetEntityId(), req.GetContext()); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	diceOutput, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
		EntityID: req.GetEntityId(),
		Context:  req.GetContext(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ClearRollSessionResponse{
		Message:      "Roll session cleared successfully",
		RollsCleared: diceOutput.RollsDeleted,
	}, nil
}

func validateSessionKey(entityID, rollContext string) error {
	if entityID == "" {
		return errors.InvalidArgument("entity_id is required")
	}
	if rollContext == "" {
		return errors.InvalidArgument("context is required")
	}
	return nil
}

func toProtoRolls(rolls []dicesession.DiceRoll) []*apiv1alpha1.DiceRoll {
	return lo.Map(rolls, func(r dicesession.DiceRoll, _ int) *apiv1alpha1.DiceRoll {
		return &apiv1alpha1.DiceRoll{
			RollId:      r.RollID,
			Notation:    r.Notation,
			Dice:        r.Dice,
			Total:       r.Total,
			Dropped:     r.Dropped,
			Description: r.Description,
			DiceTotal:   r.DiceTotal,
			Modifier:    r.Modifier,
		}
	})
}
