// Package encounter implements the dice boss encounter orchestrator. It owns
// the combat around the dice engine: stats, hit points, turn order, victory
// and defeat, and roll history.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-casino/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-casino/internal/combat"
	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	dicesvc "github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/keylock"
	"github.com/KirkDiggler/rpg-casino/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-casino/internal/repositories/progress"
	"github.com/KirkDiggler/rpg-casino/internal/telemetry"
)

const (
	// DefaultScalingMultiplier scales rolled stats into hit points and shield
	DefaultScalingMultiplier = 10

	// MetaEncounterID is the error metadata key for the encounter involved
	MetaEncounterID = "encounter_id"
)

// Service defines the interface for dice boss encounter operations
type Service interface {
	// StartEncounter rolls the player's stats and makes the first opening roll
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)

	// GetEncounter loads an encounter
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)

	// ToggleDie holds or releases one die of the current roll
	ToggleDie(ctx context.Context, input *ToggleDieInput) (*ToggleDieOutput, error)

	// RollMore banks the held dice and rolls the rest
	RollMore(ctx context.Context, input *RollMoreInput) (*RollMoreOutput, error)

	// Pass banks the held dice and hits the boss with the pot
	Pass(ctx context.Context, input *PassInput) (*PassOutput, error)

	// BossTurn plays the boss's roll and starts the next player turn
	BossTurn(ctx context.Context, input *BossTurnInput) (*BossTurnOutput, error)

	// ListBeatenBosses returns the bosses a player has defeated
	ListBeatenBosses(ctx context.Context, input *ListBeatenBossesInput) (*ListBeatenBossesOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	EncounterRepo encounters.Repository
	ProgressRepo  progress.Repository
	DiceService   dicesvc.Service
	IDGenerator   idgen.Generator
	Roller        dice.Roller
	EventBus      events.EventBus

	// Tracer defaults to the global provider's tracer
	Tracer trace.Tracer

	// ScalingMultiplier defaults to DefaultScalingMultiplier
	ScalingMultiplier int
	// BossHP defaults to entities.DiceMasterHP
	BossHP int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.ProgressRepo == nil {
		vb.RequiredField("ProgressRepo")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.ScalingMultiplier < 0 {
		vb.Field("ScalingMultiplier", "must not be negative")
	}
	if c.BossHP < 0 {
		vb.Field("BossHP", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	encounterRepo encounters.Repository
	progressRepo  progress.Repository
	diceService   dicesvc.Service
	idGen         idgen.Generator
	roller        dice.Roller
	eventBus      events.EventBus
	tracer        trace.Tracer
	multiplier    int
	bossHP        int

	locks *keylock.Set
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		encounterRepo: cfg.EncounterRepo,
		progressRepo:  cfg.ProgressRepo,
		diceService:   cfg.DiceService,
		idGen:         cfg.IDGenerator,
		roller:        cfg.Roller,
		eventBus:      cfg.EventBus,
		tracer:        cfg.Tracer,
		multiplier:    cfg.ScalingMultiplier,
		bossHP:        cfg.BossHP,
		locks:         keylock.New(),
	}
	if o.tracer == nil {
		o.tracer = telemetry.Tracer("encounter")
	}
	if o.multiplier == 0 {
		o.multiplier = DefaultScalingMultiplier
	}
	if o.bossHP == 0 {
		o.bossHP = entities.DiceMasterHP
	}

	return o, nil
}

// startSpan opens a span for an orchestrator operation. The returned func
// records err on the span and ends it.
func (o *orchestrator) startSpan(
	ctx context.Context, name, encounterID string,
) (context.Context, func(err error)) {
	ctx, span := o.tracer.Start(ctx, name)
	if encounterID != "" {
		span.SetAttributes(attribute.String("encounter.id", encounterID))
	}
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, errors.GetMessage(err))
		}
		span.End()
	}
}

// StartEncounter rolls the player's stats and makes the first opening roll
func (o *orchestrator) StartEncounter(
	ctx context.Context, input *StartEncounterInput,
) (_ *StartEncounterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	encounterID := o.idGen.Generate()
	ctx, end := o.startSpan(ctx, "encounter.start", encounterID)
	defer func() { end(err) }()

	statsOutput, err := o.diceService.RollCharacterStats(ctx, &dicesvc.RollCharacterStatsInput{
		EntityID: encounterID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll character stats")
	}

	name := input.PlayerName
	if name == "" {
		name = input.PlayerID
	}

	engine, err := diceboss.New(&diceboss.Config{Roller: o.roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice engine")
	}

	encounter := &entities.Encounter{
		ID:       encounterID,
		PlayerID: input.PlayerID,
		Player:   entities.NewPlayer(input.PlayerID, name, statsOutput.Stats, o.multiplier),
		Boss:     entities.NewDiceMaster(o.bossHP),
		Stats:    statsOutput.Stats,
		Status:   entities.EncounterStatusActive,
		Turn:     1,
	}

	rolls := &rollLog{}
	opening, err := o.openTurn(ctx, encounter, engine, rolls)
	if err != nil {
		return nil, err
	}
	encounter.Engine = engine.Snapshot()

	createOutput, err := o.encounterRepo.Create(ctx, &encounters.CreateInput{Encounter: encounter})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store encounter")
	}
	o.recordRolls(ctx, rolls)

	slog.Info("Dice boss encounter started",
		"encounter_id", encounterID,
		"player_id", input.PlayerID,
		"player_hp", encounter.Player.HP,
		"player_shield", encounter.Player.Shield,
		"boss_hp", encounter.Boss.HP,
	)

	return &StartEncounterOutput{
		Encounter: createOutput.Encounter,
		Opening:   opening,
	}, nil
}

// GetEncounter loads an encounter
func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	getOutput, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get encounter")
	}

	return &GetEncounterOutput{Encounter: getOutput.Encounter}, nil
}

// ToggleDie holds or releases one die of the current roll
func (o *orchestrator) ToggleDie(ctx context.Context, input *ToggleDieInput) (_ *ToggleDieOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, end := o.startSpan(ctx, "encounter.toggle_die", input.EncounterID)
	defer func() { end(err) }()

	var changed bool
	encounter, err := o.withEncounter(ctx, input.EncounterID,
		func(_ context.Context, _ *entities.Encounter, engine *diceboss.Engine, _ *rollLog) error {
			changed = engine.ToggleSelection(input.DieID)
			return nil
		})
	if err != nil {
		return nil, err
	}

	return &ToggleDieOutput{
		Encounter: encounter,
		Changed:   changed,
	}, nil
}

// RollMore banks the held dice and rolls the rest
func (o *orchestrator) RollMore(ctx context.Context, input *RollMoreInput) (_ *RollMoreOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, end := o.startSpan(ctx, "encounter.roll_more", input.EncounterID)
	defer func() { end(err) }()

	var outcome *diceboss.RollOutcome
	encounter, err := o.withEncounter(ctx, input.EncounterID,
		func(ctx context.Context, encounter *entities.Encounter, engine *diceboss.Engine, rolls *rollLog) error {
			var err error
			outcome, err = engine.RollMore()
			if err != nil {
				return err
			}

			description := "roll more"
			if outcome.HotHand {
				description = "hot hand"
			}
			rolls.add(encounter, rolledValues(outcome), description)

			if outcome.Busted {
				return o.endPlayerTurn(ctx, encounter, 0, true, outcome.Values[:])
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	output := &RollMoreOutput{
		Encounter: encounter,
		Outcome:   outcome,
	}
	if outcome.Busted {
		output.Turn = encounter.LastPlayerTurn
	}

	slog.Info("Dice boss roll",
		"encounter_id", encounter.ID,
		"banked", outcome.BankedScore,
		"pot", outcome.Pot,
		"hot_hand", outcome.HotHand,
		"busted", outcome.Busted,
	)

	return output, nil
}

// Pass banks the held dice and hits the boss with the pot
func (o *orchestrator) Pass(ctx context.Context, input *PassInput) (_ *PassOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, end := o.startSpan(ctx, "encounter.pass", input.EncounterID)
	defer func() { end(err) }()

	encounter, err := o.withEncounter(ctx, input.EncounterID,
		func(ctx context.Context, encounter *entities.Encounter, engine *diceboss.Engine, _ *rollLog) error {
			result, err := engine.Pass()
			if err != nil {
				return err
			}
			return o.endPlayerTurn(ctx, encounter, result.TotalScore, false, result.Values)
		})
	if err != nil {
		return nil, err
	}

	return &PassOutput{
		Encounter: encounter,
		Turn:      encounter.LastPlayerTurn,
	}, nil
}

// BossTurn plays the boss's roll and, if the player survives, starts the next
// player turn with its opening roll
func (o *orchestrator) BossTurn(ctx context.Context, input *BossTurnInput) (_ *BossTurnOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, end := o.startSpan(ctx, "encounter.boss_turn", input.EncounterID)
	defer func() { end(err) }()

	var nextOpening *diceboss.RollOutcome
	encounter, err := o.withEncounter(ctx, input.EncounterID,
		func(ctx context.Context, encounter *entities.Encounter, engine *diceboss.Engine, rolls *rollLog) error {
			result, err := engine.RunBossTurn()
			if err != nil {
				return err
			}
			rolls.add(encounter, result.Values, "boss roll")

			damage := combat.DamageForScore(result.TotalScore)
			hit := combat.ApplyDamage(encounter.Player.HP, encounter.Player.Shield, damage)
			encounter.Player.HP = hit.HP
			encounter.Player.Shield = hit.Shield
			encounter.LastBossTurn = &entities.TurnSummary{
				Score:  result.TotalScore,
				Busted: result.Busted,
				Damage: hit.DamageDealt,
				Values: result.Values,
			}

			slog.Info("Dice boss turn ended",
				"encounter_id", encounter.ID,
				"score", result.TotalScore,
				"busted", result.Busted,
				"damage", damage,
				"player_hp", encounter.Player.HP,
				"player_shield", encounter.Player.Shield,
			)
			o.publish(ctx, EventBossTurnEnded, &encounter.Boss, &encounter.Player)

			if encounter.Player.IsDefeated() {
				encounter.Status = entities.EncounterStatusDefeat
				slog.Info("Dice boss encounter lost",
					"encounter_id", encounter.ID,
					"player_id", encounter.PlayerID,
					"turn", encounter.Turn,
				)
				o.publish(ctx, EventDefeat, &encounter.Boss, &encounter.Player)
				return nil
			}

			encounter.Turn++
			engine.StartPlayerTurn()
			nextOpening, err = o.openTurn(ctx, encounter, engine, rolls)
			return err
		})
	if err != nil {
		return nil, err
	}

	return &BossTurnOutput{
		Encounter:   encounter,
		Turn:        encounter.LastBossTurn,
		NextOpening: nextOpening,
	}, nil
}

// ListBeatenBosses returns the bosses a player has defeated
func (o *orchestrator) ListBeatenBosses(
	ctx context.Context, input *ListBeatenBossesInput,
) (*ListBeatenBossesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listOutput, err := o.progressRepo.ListBeaten(ctx, &progress.ListBeatenInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list beaten bosses")
	}

	return &ListBeatenBossesOutput{BossIDs: listOutput.BossIDs}, nil
}

type encounterAction func(
	ctx context.Context, encounter *entities.Encounter, engine *diceboss.Engine, rolls *rollLog,
) error

// withEncounter loads an active encounter, runs action against its engine and
// stores the result. Only one action per encounter runs at a time; a second
// one is turned away with ABORTED. Nothing is stored when action fails, and
// the action's rolls reach history only once the encounter is stored.
func (o *orchestrator) withEncounter(
	ctx context.Context, encounterID string, action encounterAction,
) (*entities.Encounter, error) {
	if encounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	unlock, ok := o.locks.TryLock(encounterID)
	if !ok {
		return nil, errors.Aborted("encounter is busy").WithMeta(MetaEncounterID, encounterID)
	}
	defer unlock()

	getOutput, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: encounterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get encounter")
	}
	encounter := getOutput.Encounter

	if encounter.IsFinished() {
		return nil, errors.FailedPreconditionf("encounter already ended in %s", encounter.Status).
			WithMeta(MetaEncounterID, encounterID)
	}

	engine, err := diceboss.Restore(encounter.Engine, o.roller)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored encounter state is corrupt")
	}

	rolls := &rollLog{}
	if err := action(ctx, encounter, engine, rolls); err != nil {
		return nil, err
	}
	encounter.Engine = engine.Snapshot()

	updateOutput, err := o.encounterRepo.Update(ctx, &encounters.UpdateInput{Encounter: encounter})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store encounter")
	}
	o.recordRolls(ctx, rolls)

	return updateOutput.Encounter, nil
}

// openTurn makes the opening roll of the current player turn. An opening roll
// that busts ends the turn on the spot.
func (o *orchestrator) openTurn(
	ctx context.Context, encounter *entities.Encounter, engine *diceboss.Engine, rolls *rollLog,
) (*diceboss.RollOutcome, error) {
	outcome, err := engine.OpeningRoll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to make opening roll")
	}
	rolls.add(encounter, rolledValues(outcome), "opening roll")

	if outcome.Busted {
		if err := o.endPlayerTurn(ctx, encounter, 0, true, outcome.Values[:]); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}

// endPlayerTurn converts the turn score into damage against the boss and
// settles victory
func (o *orchestrator) endPlayerTurn(
	ctx context.Context, encounter *entities.Encounter, score int, busted bool, values []int,
) error {
	damage := combat.DamageForScore(score)
	hit := combat.ApplyDamage(encounter.Boss.HP, encounter.Boss.Shield, damage)
	encounter.Boss.HP = hit.HP
	encounter.Boss.Shield = hit.Shield
	encounter.LastPlayerTurn = &entities.TurnSummary{
		Score:  score,
		Busted: busted,
		Damage: hit.DamageDealt,
		Values: values,
	}

	slog.Info("Dice boss player turn ended",
		"encounter_id", encounter.ID,
		"turn", encounter.Turn,
		"score", score,
		"busted", busted,
		"damage", damage,
		"boss_hp", encounter.Boss.HP,
	)
	o.publish(ctx, EventPlayerTurnEnded, &encounter.Player, &encounter.Boss)

	if !encounter.Boss.IsDefeated() {
		return nil
	}

	encounter.Status = entities.EncounterStatusVictory
	markOutput, err := o.progressRepo.MarkBeaten(ctx, &progress.MarkBeatenInput{
		PlayerID: encounter.PlayerID,
		BossID:   encounter.Boss.ID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to record victory")
	}

	slog.Info("Dice boss defeated",
		"encounter_id", encounter.ID,
		"player_id", encounter.PlayerID,
		"boss_id", encounter.Boss.ID,
		"turn", encounter.Turn,
		"first_time", markOutput.FirstTime,
	)
	o.publish(ctx, EventVictory, &encounter.Player, &encounter.Boss)

	return nil
}

// rollLog holds the rolls of one action until the encounter is stored
type rollLog struct {
	entries []dicesvc.RecordRollInput
}

func (l *rollLog) add(encounter *entities.Encounter, values []int, description string) {
	if len(values) == 0 {
		return
	}
	l.entries = append(l.entries, dicesvc.RecordRollInput{
		EntityID:    encounter.ID,
		Context:     TurnContext(encounter.Turn),
		Dice:        values,
		Description: description,
	})
}

// recordRolls appends the logged rolls to the encounter's roll history.
// History is an audit trail, so a failure is logged and play continues.
func (o *orchestrator) recordRolls(ctx context.Context, rolls *rollLog) {
	for i := range rolls.entries {
		roll := &rolls.entries[i]
		if _, err := o.diceService.RecordRoll(ctx, roll); err != nil {
			slog.Warn("Failed to record roll",
				"encounter_id", roll.EntityID,
				"context", roll.Context,
				"error", err,
			)
		}
	}
}

func (o *orchestrator) publish(ctx context.Context, eventType string, source, target *entities.Combatant) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("Failed to publish encounter event",
			"event_type", eventType,
			"error", err,
		)
	}
}

// TurnContext is the roll history context of a player turn and the boss roll
// that follows it
func TurnContext(turn int) string {
	return fmt.Sprintf("turn_%d", turn)
}

func rolledValues(outcome *diceboss.RollOutcome) []int {
	return lo.Map(outcome.Rolled, func(id int, _ int) int { return outcome.Values[id] })
}
