// Package diceboss implements the push-your-luck dice engine of the dice boss
// encounter.
//
// A turn starts with all six dice active and an empty pot. The opening roll
// throws every die; afterwards the player holds a scoring selection and either
// banks it and rolls the rest (RollMore) or banks it and ends the turn (Pass).
// A roll whose fresh dice cannot score anything busts and loses the pot.
// Banking the sixth die is a hot hand: every die unlocks and the pot carries on.
//
// The engine only knows final die faces. Roll animation, delays and rendering
// belong to the driver, which reads Snapshot after every action.
package diceboss

import (
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/samber/lo"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/scoring"
)

// Config holds the dependencies for the engine
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Engine owns the dice pool and turn state of one encounter.
//
// busy is the single-flight guard: an action that finds it set is refused
// without touching state. mu only protects state for concurrent Snapshot reads.
type Engine struct {
	roller dice.Roller
	busy   atomic.Bool

	mu           sync.Mutex
	dice         [DiceCount]Die
	pot          int
	isPlayerTurn bool
	phase        Phase
}

// New creates an engine positioned at the start of the player's first turn
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	e := &Engine{roller: cfg.Roller}
	e.resetTurn()
	return e, nil
}

// Restore rebuilds an engine from a persisted snapshot
func Restore(snapshot Snapshot, roller dice.Roller) (*Engine, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}

	e := &Engine{
		roller:       roller,
		dice:         snapshot.Dice,
		pot:          snapshot.Pot,
		isPlayerTurn: snapshot.IsPlayerTurn,
		phase:        snapshot.Phase,
	}
	return e, nil
}

// Validate reports whether the snapshot describes a reachable engine state
func (s Snapshot) Validate() error {
	return validateSnapshot(s)
}

func validateSnapshot(s Snapshot) error {
	vb := errors.NewValidationBuilder()

	for i, d := range s.Dice {
		if d.ID != i {
			vb.Fieldf("dice", "die at position %d has id %d", i, d.ID)
		}
		errors.ValidateRange("dice.value", d.Value, 0, DieSides, vb)
		if d.Held && d.Banked {
			vb.Fieldf("dice", "die %d is both held and banked", d.ID)
		}
	}
	if s.Pot < 0 {
		vb.Field("pot", "must not be negative")
	}
	switch s.Phase {
	case PhaseReady, PhaseAwaitingSelection, PhaseTurnEnded, PhaseBossTurnEnded:
	default:
		vb.Fieldf("phase", "unknown phase %q", s.Phase)
	}

	return vb.Build()
}

// begin claims the single-flight guard and the state lock. The returned
// function releases both.
func (e *Engine) begin() (func(), error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, reject(ReasonBusy, "a roll is already in progress")
	}
	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		e.busy.Store(false)
	}, nil
}

func (e *Engine) resetTurn() {
	for i := range e.dice {
		e.dice[i] = Die{ID: i}
	}
	e.pot = 0
	e.isPlayerTurn = true
	e.phase = PhaseReady
}

// StartPlayerTurn resets every die to active and unvalued and empties the pot.
// It waits for an in-flight action to finish rather than being refused.
func (e *Engine) StartPlayerTurn() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetTurn()
}

// OpeningRoll throws all six dice at the start of the player's turn
func (e *Engine) OpeningRoll() (*RollOutcome, error) {
	done, err := e.begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if !e.isPlayerTurn {
		return nil, reject(ReasonNotPlayerTurn, "it is not the player's turn")
	}
	if e.phase != PhaseReady {
		return nil, reject(ReasonWrongPhase, "the opening roll was already made")
	}

	ids := lo.Map(e.dice[:], func(d Die, _ int) int { return d.ID })
	values, err := e.rollValues(len(ids))
	if err != nil {
		return nil, err
	}

	outcome := &RollOutcome{}
	e.applyRoll(ids, values, outcome)
	return outcome, nil
}

// ToggleSelection flips the held flag of an active or held die. It reports
// whether anything changed; invalid requests are ignored.
func (e *Engine) ToggleSelection(dieID int) bool {
	done, err := e.begin()
	if err != nil {
		return false
	}
	defer done()

	if !e.isPlayerTurn || e.phase != PhaseAwaitingSelection {
		return false
	}
	if dieID < 0 || dieID >= DiceCount {
		return false
	}

	die := &e.dice[dieID]
	if die.Banked {
		return false
	}
	die.Held = !die.Held
	return true
}

// RollMore banks the held selection into the pot and rolls every die that is
// not banked. Banking the last die unlocks all six (hot hand) before rolling.
func (e *Engine) RollMore() (*RollOutcome, error) {
	done, err := e.begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if err := e.requireSelectionPhase(); err != nil {
		return nil, err
	}

	held := e.heldDice()
	if len(held) == 0 {
		return nil, reject(ReasonNothingHeld, "select a scoring combination first")
	}
	score := scoring.StrictScore(dieValues(held))
	if score == 0 {
		return nil, reject(ReasonZeroScoreSelection, "selection yields 0 points")
	}

	// Work out what will be rolled before mutating so a roller failure
	// leaves the turn untouched.
	hotHand := lo.EveryBy(e.dice[:], func(d Die) bool { return d.Banked || d.Held })
	var ids []int
	if hotHand {
		ids = lo.Map(e.dice[:], func(d Die, _ int) int { return d.ID })
	} else {
		ids = lo.FilterMap(e.dice[:], func(d Die, _ int) (int, bool) { return d.ID, d.Active() })
	}

	values, err := e.rollValues(len(ids))
	if err != nil {
		return nil, err
	}

	e.pot += score
	for _, d := range held {
		e.dice[d.ID].Held = false
		e.dice[d.ID].Banked = true
	}
	if hotHand {
		for i := range e.dice {
			e.dice[i].Banked = false
			e.dice[i].Held = false
		}
	}

	outcome := &RollOutcome{
		BankedScore: score,
		HotHand:     hotHand,
	}
	e.applyRoll(ids, values, outcome)
	return outcome, nil
}

// Pass banks the held selection, if any, and ends the turn. Passing with
// nothing held is refused while freshly rolled dice are still on the table:
// every roll faced must give up at least one scorer.
func (e *Engine) Pass() (*TurnResult, error) {
	done, err := e.begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if err := e.requireSelectionPhase(); err != nil {
		return nil, err
	}

	held := e.heldDice()
	if len(held) > 0 {
		score := scoring.StrictScore(dieValues(held))
		if score == 0 {
			return nil, reject(ReasonZeroScoreSelection, "selection yields 0 points")
		}
		e.pot += score
		for _, d := range held {
			e.dice[d.ID].Held = false
			e.dice[d.ID].Banked = true
		}
	} else if lo.SomeBy(e.dice[:], func(d Die) bool { return d.Active() }) {
		return nil, reject(ReasonUnclaimedDice, "select scoring dice from this roll before passing")
	}

	e.endPlayerTurn()

	return &TurnResult{
		TotalScore: e.pot,
		Values:     dieValues(e.dice[:]),
	}, nil
}

// RunBossTurn rolls six dice for the boss, which claims everything it can.
// The player's pool is not touched.
func (e *Engine) RunBossTurn() (*TurnResult, error) {
	done, err := e.begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if e.isPlayerTurn || e.phase != PhaseTurnEnded {
		return nil, reject(ReasonNotBossTurn, "it is not the boss's turn")
	}

	values, err := e.rollValues(DiceCount)
	if err != nil {
		return nil, err
	}

	score := scoring.PossibleScore(values)
	e.phase = PhaseBossTurnEnded

	return &TurnResult{
		TotalScore: score,
		Busted:     score == 0,
		Values:     values,
	}, nil
}

// Snapshot returns a copy of the current state for rendering or storage
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Dice:           e.dice,
		Pot:            e.pot,
		IsPlayerTurn:   e.isPlayerTurn,
		Phase:          e.phase,
		SelectionScore: scoring.StrictScore(dieValues(e.heldDice())),
	}
}

func (e *Engine) requireSelectionPhase() error {
	if !e.isPlayerTurn {
		return reject(ReasonNotPlayerTurn, "it is not the player's turn")
	}
	if e.phase != PhaseAwaitingSelection {
		return reject(ReasonWrongPhase, "dice have not been rolled this turn")
	}
	return nil
}

func (e *Engine) heldDice() []Die {
	return lo.Filter(e.dice[:], func(d Die, _ int) bool { return d.Held })
}

func (e *Engine) rollValues(count int) ([]int, error) {
	values, err := e.roller.RollN(count, DieSides)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll dice")
	}
	if len(values) != count {
		return nil, errors.Internalf("roller returned %d dice, expected %d", len(values), count)
	}
	return values, nil
}

// applyRoll writes fresh values to ids and runs the bust check over them only
func (e *Engine) applyRoll(ids, values []int, outcome *RollOutcome) {
	for i, id := range ids {
		e.dice[id].Value = values[i]
	}

	outcome.Rolled = ids
	if scoring.PossibleScore(values) == 0 {
		e.pot = 0
		e.endPlayerTurn()
		outcome.Busted = true
		outcome.TurnEnded = true
	} else {
		e.phase = PhaseAwaitingSelection
	}

	outcome.Pot = e.pot
	for i, d := range e.dice {
		outcome.Values[i] = d.Value
	}
}

func (e *Engine) endPlayerTurn() {
	e.isPlayerTurn = false
	e.phase = PhaseTurnEnded
}

func dieValues(dice []Die) []int {
	return lo.Map(dice, func(d Die, _ int) int { return d.Value })
}
