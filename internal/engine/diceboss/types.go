package diceboss

import (
	"github.com/KirkDiggler/rpg-casino/internal/errors"
)

const (
	// DiceCount is the size of the dice pool
	DiceCount = 6
	// DieSides is the number of faces on every die
	DieSides = 6

	// MetaReason is the error metadata key holding a RejectReason
	MetaReason = "reason"
)

// Phase is the position of the current turn in the turn state machine
type Phase string

// Turn phases
const (
	// PhaseReady means the dice were reset and the opening roll is pending
	PhaseReady Phase = "ready"
	// PhaseAwaitingSelection means the player may toggle, roll more or pass
	PhaseAwaitingSelection Phase = "awaiting_selection"
	// PhaseTurnEnded means the player's turn ended by pass or bust
	PhaseTurnEnded Phase = "turn_ended"
	// PhaseBossTurnEnded means the boss already rolled for this round
	PhaseBossTurnEnded Phase = "boss_turn_ended"
)

// Die is one position in the pool. A die is active, held or banked, never
// held and banked at once.
type Die struct {
	ID     int  `json:"id"`
	Value  int  `json:"value"`
	Held   bool `json:"held"`
	Banked bool `json:"banked"`
}

// Active reports whether the die is neither held nor banked
func (d Die) Active() bool {
	return !d.Held && !d.Banked
}

// Snapshot is a read-only copy of the engine state, safe to persist as JSON
type Snapshot struct {
	Dice           [DiceCount]Die `json:"dice"`
	Pot            int            `json:"pot"`
	IsPlayerTurn   bool           `json:"is_player_turn"`
	Phase          Phase          `json:"phase"`
	SelectionScore int            `json:"selection_score"`
}

// Values returns the face of every die in ID order
func (s Snapshot) Values() [DiceCount]int {
	var values [DiceCount]int
	for i, d := range s.Dice {
		values[i] = d.Value
	}
	return values
}

// RollOutcome describes a single roll step of the player's turn
type RollOutcome struct {
	// Values holds every die's face after the roll, in ID order
	Values [DiceCount]int
	// Rolled lists the IDs of the dice rolled in this step
	Rolled []int
	// BankedScore is what the held selection added to the pot before rolling
	BankedScore int
	// Pot is the pot after the step; 0 after a bust
	Pot       int
	Busted    bool
	HotHand   bool
	TurnEnded bool
}

// TurnResult is the final score of a completed turn
type TurnResult struct {
	TotalScore int
	Busted     bool
	// Values are the dice the turn ended on
	Values []int
}

// RejectReason identifies why an action was refused
type RejectReason string

// Rejection reasons
const (
	ReasonBusy               RejectReason = "busy"
	ReasonNotPlayerTurn      RejectReason = "not_player_turn"
	ReasonNotBossTurn        RejectReason = "not_boss_turn"
	ReasonWrongPhase         RejectReason = "wrong_phase"
	ReasonNothingHeld        RejectReason = "nothing_held"
	ReasonZeroScoreSelection RejectReason = "zero_score_selection"
	ReasonUnclaimedDice      RejectReason = "unclaimed_dice"
)

func reject(reason RejectReason, message string) *errors.Error {
	return errors.FailedPrecondition(message).WithMeta(MetaReason, string(reason))
}

// RejectionReason returns the reason an engine action was rejected, or ""
// when err is not a game-rule rejection.
func RejectionReason(err error) RejectReason {
	if !errors.IsFailedPrecondition(err) {
		return ""
	}
	reason, _ := errors.GetMeta(err)[MetaReason].(string)
	return RejectReason(reason)
}
