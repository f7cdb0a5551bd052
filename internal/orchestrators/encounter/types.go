package encounter

import (
	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
	"github.com/KirkDiggler/rpg-casino/internal/entities"
)

// Event types published on the event bus
const (
	EventPlayerTurnEnded = "dice_boss.player_turn_ended"
	EventBossTurnEnded   = "dice_boss.boss_turn_ended"
	EventVictory         = "dice_boss.victory"
	EventDefeat          = "dice_boss.defeat"
)

// StartEncounterInput defines the request for starting a dice boss fight
type StartEncounterInput struct {
	PlayerID   string
	PlayerName string
}

// StartEncounterOutput defines the response for starting a dice boss fight
type StartEncounterOutput struct {
	Encounter *entities.Encounter
	// Opening is the first roll of the first player turn
	Opening *diceboss.RollOutcome
}

// GetEncounterInput defines the request for loading an encounter
type GetEncounterInput struct {
	EncounterID string
}

// GetEncounterOutput defines the response for loading an encounter
type GetEncounterOutput struct {
	Encounter *entities.Encounter
}

// ToggleDieInput defines the request for holding or releasing a die
type ToggleDieInput struct {
	EncounterID string
	DieID       int
}

// ToggleDieOutput defines the response for holding or releasing a die
type ToggleDieOutput struct {
	Encounter *entities.Encounter
	// Changed is false when the toggle was ignored
	Changed bool
}

// RollMoreInput defines the request for banking the selection and rolling on
type RollMoreInput struct {
	EncounterID string
}

// RollMoreOutput defines the response for banking the selection and rolling on
type RollMoreOutput struct {
	Encounter *entities.Encounter
	Outcome   *diceboss.RollOutcome
	// Turn is set when the roll busted and ended the turn
	Turn *entities.TurnSummary
}

// PassInput defines the request for banking the selection and ending the turn
type PassInput struct {
	EncounterID string
}

// PassOutput defines the response for banking the selection and ending the turn
type PassOutput struct {
	Encounter *entities.Encounter
	Turn      *entities.TurnSummary
}

// BossTurnInput defines the request for playing the boss's turn
type BossTurnInput struct {
	EncounterID string
}

// BossTurnOutput defines the response for playing the boss's turn
type BossTurnOutput struct {
	Encounter *entities.Encounter
	Turn      *entities.TurnSummary
	// NextOpening is the opening roll of the next player turn; nil on defeat
	NextOpening *diceboss.RollOutcome
}

// ListBeatenBossesInput defines the request for a player's progress
type ListBeatenBossesInput struct {
	PlayerID string
}

// ListBeatenBossesOutput defines the response for a player's progress
type ListBeatenBossesOutput struct {
	BossIDs []string
}
