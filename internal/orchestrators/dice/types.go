package dice

import (
	"time"

	"github.com/KirkDiggler/rpg-casino/internal/entities"
	dicesession "github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session"
)

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
	TTL         time.Duration
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int32
}

// RollCharacterStatsInput defines the request for rolling a player's stats
type RollCharacterStatsInput struct {
	EntityID string
}

// RollCharacterStatsOutput defines the response for rolling a player's stats
type RollCharacterStatsOutput struct {
	Stats entities.CharacterStats
	// Rolls are in attack, defense, hit points order
	Rolls   []*dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RecordRollInput defines the request for recording an external roll
type RecordRollInput struct {
	EntityID    string
	Context     string
	Notation    string // defaults to "<n>d6"
	Dice        []int
	Description string
}

// RecordRollOutput defines the response for recording an external roll
type RecordRollOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}
