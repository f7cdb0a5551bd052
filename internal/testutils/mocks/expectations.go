// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-casino/internal/entities"
	dicesvc "github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice/mock"
)

// ExpectStatRoll sets up a single stat roll for the given encounter
func ExpectStatRoll(
	mockService *dicemock.MockService, encounterID string, stats entities.CharacterStats, err error,
) *gomock.Call {
	var output *dicesvc.RollCharacterStatsOutput
	if err == nil {
		output = &dicesvc.RollCharacterStatsOutput{Stats: stats}
	}
	return mockService.EXPECT().
		RollCharacterStats(gomock.Any(), &dicesvc.RollCharacterStatsInput{EntityID: encounterID}).
		Return(output, err)
}

// AllowStatRolls lets any encounter roll the given stats
func AllowStatRolls(mockService *dicemock.MockService, stats entities.CharacterStats) {
	mockService.EXPECT().
		RollCharacterStats(gomock.Any(), gomock.Any()).
		Return(&dicesvc.RollCharacterStatsOutput{Stats: stats}, nil).
		AnyTimes()
}

// ExpectRecordedRoll expects the dice of one roll to be written to history
func ExpectRecordedRoll(
	mockService *dicemock.MockService, encounterID, turnContext, description string, dice []int,
) *gomock.Call {
	return mockService.EXPECT().
		RecordRoll(gomock.Any(), &dicesvc.RecordRollInput{
			EntityID:    encounterID,
			Context:     turnContext,
			Dice:        dice,
			Description: description,
		}).
		Return(&dicesvc.RecordRollOutput{}, nil)
}

// AllowRecordedRolls accepts any roll history writes
func AllowRecordedRolls(mockService *dicemock.MockService) {
	mockService.EXPECT().
		RecordRoll(gomock.Any(), gomock.Any()).
		Return(&dicesvc.RecordRollOutput{}, nil).
		AnyTimes()
}
