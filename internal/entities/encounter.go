package entities

import (
	"slices"

	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
)

// EncounterStatus is the lifecycle state of an encounter
type EncounterStatus string

// Encounter statuses
const (
	EncounterStatusActive  EncounterStatus = "active"
	EncounterStatusVictory EncounterStatus = "victory"
	EncounterStatusDefeat  EncounterStatus = "defeat"
)

// TurnSummary records how a finished turn went
type TurnSummary struct {
	Score  int   `json:"score"`
	Busted bool  `json:"busted"`
	Damage int   `json:"damage"`
	Values []int `json:"values"`
}

// Encounter is a dice boss fight between one player and the boss
type Encounter struct {
	ID       string            `json:"id"`
	PlayerID string            `json:"player_id"`
	Player   Combatant         `json:"player"`
	Boss     Combatant         `json:"boss"`
	Stats    CharacterStats    `json:"stats"`
	Engine   diceboss.Snapshot `json:"engine"`
	Status   EncounterStatus   `json:"status"`

	// Turn counts player turns, starting at 1
	Turn int `json:"turn"`

	LastPlayerTurn *TurnSummary `json:"last_player_turn,omitempty"`
	LastBossTurn   *TurnSummary `json:"last_boss_turn,omitempty"`
	CreatedAt      int64        `json:"created_at"`
	UpdatedAt      int64        `json:"updated_at"`
}

// IsFinished reports whether the encounter ended in victory or defeat
func (e *Encounter) IsFinished() bool {
	return e.Status == EncounterStatusVictory || e.Status == EncounterStatusDefeat
}

// Clone returns a deep copy of the encounter
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}
	c := *e
	c.LastPlayerTurn = e.LastPlayerTurn.clone()
	c.LastBossTurn = e.LastBossTurn.clone()
	return &c
}

func (t *TurnSummary) clone() *TurnSummary {
	if t == nil {
		return nil
	}
	c := *t
	c.Values = slices.Clone(t.Values)
	return &c
}
