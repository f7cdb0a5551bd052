package testutils

import (
	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
	"github.com/KirkDiggler/rpg-casino/internal/entities"
)

// Fixture defaults
const (
	TestPlayerID   = "player-test-001"
	TestPlayerName = "Ada"
	TestMultiplier = 10
)

// CreateTestStats returns stats that give a 120 HP, 100 shield player
func CreateTestStats() entities.CharacterStats {
	return entities.CharacterStats{
		Attack:    11,
		Defense:   10,
		HitPoints: 12,
	}
}

// CreateTestEncounter creates an active encounter waiting for the player's
// selection after the opening roll [1,5,2,3,4,6]
func CreateTestEncounter(id string) *entities.Encounter {
	stats := CreateTestStats()

	var dice [diceboss.DiceCount]diceboss.Die
	for i, v := range []int{1, 5, 2, 3, 4, 6} {
		dice[i] = diceboss.Die{ID: i, Value: v}
	}

	return &entities.Encounter{
		ID:       id,
		PlayerID: TestPlayerID,
		Player:   entities.NewPlayer(TestPlayerID, TestPlayerName, stats, TestMultiplier),
		Boss:     entities.NewDiceMaster(entities.DiceMasterHP),
		Stats:    stats,
		Engine: diceboss.Snapshot{
			Dice:         dice,
			IsPlayerTurn: true,
			Phase:        diceboss.PhaseAwaitingSelection,
		},
		Status:    entities.EncounterStatusActive,
		Turn:      1,
		CreatedAt: 1704110400,
		UpdatedAt: 1704110400,
	}
}
