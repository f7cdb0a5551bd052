// Package dice implements the dice orchestrator: generic rolls, the
// character stat roller and the per-encounter roll history
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/samber/lo"

	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session"
)

const (
	// ContextCharacterStats groups the stat roller's rolls
	ContextCharacterStats = "character_stats"

	// DefaultSessionTTL is used when Config.SessionTTL is zero
	DefaultSessionTTL = 30 * time.Minute

	// CharacterStatNotation is rolled once per stat, dropping the lowest die
	CharacterStatNotation = "4d6dl1"

	maxDiceCount = 100
	maxDieSize   = 1000
)

var (
	// Parses notation like "2d6", "1d20" or "4d6dl1" (drop lowest one)
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:dl(\d+))?$`)

	characterStatLabels = []string{"Attack", "Defense", "Hit Points"}
)

// Service defines the interface for dice operations
type Service interface {
	// Generic dice rolling
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// RollCharacterStats rolls attack, defense and hit points for a new player
	RollCharacterStats(ctx context.Context, input *RollCharacterStatsInput) (*RollCharacterStatsOutput, error)

	// RecordRoll appends dice rolled elsewhere (the dice boss engine) to a session
	RecordRoll(ctx context.Context, input *RecordRollInput) (*RecordRollOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	Roller          dice.Roller
	SessionTTL      time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	sessionTTL      time.Duration
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          cfg.Roller,
		sessionTTL:      ttl,
	}, nil
}

type notation struct {
	count      int
	size       int
	dropLowest int
}

// parseDiceNotation parses notation like "2d6" or "4d6dl1"
func parseDiceNotation(raw string) (notation, error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if matches == nil {
		return notation{}, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdYdlN)", raw)
	}

	var n notation
	var err error
	if n.count, err = strconv.Atoi(matches[1]); err != nil {
		return notation{}, errors.InvalidArgumentf("invalid dice count in notation: %s", raw)
	}
	if n.size, err = strconv.Atoi(matches[2]); err != nil {
		return notation{}, errors.InvalidArgumentf("invalid die size in notation: %s", raw)
	}
	if matches[3] != "" {
		if n.dropLowest, err = strconv.Atoi(matches[3]); err != nil {
			return notation{}, errors.InvalidArgumentf("invalid drop count in notation: %s", raw)
		}
	}

	if n.count <= 0 || n.size <= 0 {
		return notation{}, errors.InvalidArgumentf("dice count and size must be positive: %s", raw)
	}
	if n.count > maxDiceCount || n.size > maxDieSize {
		return notation{}, errors.InvalidArgumentf("at most %dd%d can be rolled: %s", maxDiceCount, maxDieSize, raw)
	}
	if n.dropLowest >= n.count {
		return notation{}, errors.InvalidArgumentf("cannot drop every die: %s", raw)
	}

	return n, nil
}

// roll rolls the notation and builds a DiceRoll. Kept dice stay in roll order.
func (o *orchestrator) roll(raw string, description string) (*dicesession.DiceRoll, error) {
	n, err := parseDiceNotation(raw)
	if err != nil {
		return nil, err
	}

	values, err := o.roller.RollN(n.count, n.size)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll dice")
	}

	kept, dropped := dropLowest(values, n.dropLowest)
	total := int32(lo.Sum(kept)) // nolint:gosec // bounded by maxDiceCount*maxDieSize

	return &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    raw,
		Dice:        toInt32(kept),
		Total:       total,
		Dropped:     toInt32(dropped),
		Description: description,
		DiceTotal:   total,
		Modifier:    0,
	}, nil
}

// dropLowest removes the n lowest values, keeping the others in order
func dropLowest(values []int, n int) (kept, dropped []int) {
	if n <= 0 {
		return values, nil
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	dropped = sorted[:n]

	skip := make(map[int]int, n)
	for _, v := range dropped {
		skip[v]++
	}
	kept = lo.Filter(values, func(v int, _ int) bool {
		if skip[v] > 0 {
			skip[v]--
			return false
		}
		return true
	})

	return kept, dropped
}

func toInt32(values []int) []int32 {
	if values == nil {
		return nil
	}
	return lo.Map(values, func(v int, _ int) int32 {
		return int32(v) // nolint:gosec // die faces are small
	})
}

// appendRoll adds roll to the session {entityID, rollContext}, creating it if needed
func (o *orchestrator) appendRoll(
	ctx context.Context, entityID, rollContext string, roll *dicesession.DiceRoll, ttl time.Duration,
) (*dicesession.DiceSession, error) {
	if ttl == 0 {
		ttl = o.sessionTTL
	}

	output, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: entityID,
		Context:  rollContext,
		Roll:     roll,
		TTL:      ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to append roll to dice session")
	}
	if output.Created {
		slog.Debug("Started dice session", "entity_id", entityID, "context", rollContext)
	}
	return output.Session, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	roll, err := o.roll(input.Notation, input.Description)
	if err != nil {
		return nil, err
	}

	session, err := o.appendRoll(ctx, input.EntityID, input.Context, roll, input.TTL)
	if err != nil {
		return nil, err
	}

	slog.Info("Dice rolled successfully",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

// RollCharacterStats rolls 4d6 drop lowest for attack, defense and hit points.
// The rolls replace any earlier stat session for the entity.
func (o *orchestrator) RollCharacterStats(
	ctx context.Context, input *RollCharacterStatsInput,
) (*RollCharacterStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	rolls := make([]*dicesession.DiceRoll, 0, len(characterStatLabels))
	for _, label := range characterStatLabels {
		roll, err := o.roll(CharacterStatNotation, label)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", strings.ToLower(label))
		}
		rolls = append(rolls, roll)
	}

	createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		EntityID: input.EntityID,
		Context:  ContextCharacterStats,
		Rolls:    lo.Map(rolls, func(r *dicesession.DiceRoll, _ int) dicesession.DiceRoll { return *r }),
		TTL:      o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character stats session")
	}

	stats := entities.CharacterStats{
		Attack:    int(rolls[0].Total),
		Defense:   int(rolls[1].Total),
		HitPoints: int(rolls[2].Total),
	}

	slog.Info("Character stats rolled",
		"entity_id", input.EntityID,
		"attack", stats.Attack,
		"defense", stats.Defense,
		"hit_points", stats.HitPoints,
	)

	return &RollCharacterStatsOutput{
		Stats:   stats,
		Rolls:   rolls,
		Session: createOutput.Session,
	}, nil
}

// RecordRoll stores dice that were rolled outside this service
func (o *orchestrator) RecordRoll(ctx context.Context, input *RecordRollInput) (*RecordRollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.EntityID == "" {
		vb.RequiredField("entity_id")
	}
	if input.Context == "" {
		vb.RequiredField("context")
	}
	if len(input.Dice) == 0 {
		vb.RequiredField("dice")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	dieNotation := input.Notation
	if dieNotation == "" {
		dieNotation = fmt.Sprintf("%dd6", len(input.Dice))
	}

	total := int32(lo.Sum(input.Dice)) // nolint:gosec // a handful of die faces
	roll := &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    dieNotation,
		Dice:        toInt32(input.Dice),
		Total:       total,
		Description: input.Description,
		DiceTotal:   total,
	}

	session, err := o.appendRoll(ctx, input.EntityID, input.Context, roll, 0)
	if err != nil {
		return nil, err
	}

	slog.Debug("Roll recorded",
		"entity_id", input.EntityID,
		"context", input.Context,
		"dice", input.Dice,
		"roll_id", roll.RollID,
	)

	return &RecordRollOutput{
		Roll:    roll,
		Session: session,
	}, nil
}
