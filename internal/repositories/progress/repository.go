// Package progress records which bosses each player has beaten
package progress

import (
	"context"
)

const (
	errPlayerIDRequired = "player ID is required"
	errBossIDRequired   = "boss ID is required"
)

// Repository defines the storage interface for player progress
type Repository interface {
	// MarkBeaten records that a player defeated a boss. Marking twice is not
	// an error.
	MarkBeaten(ctx context.Context, input *MarkBeatenInput) (*MarkBeatenOutput, error)

	// IsBeaten reports whether a player already defeated a boss
	IsBeaten(ctx context.Context, input *IsBeatenInput) (*IsBeatenOutput, error)

	// ListBeaten returns every boss a player defeated, sorted by ID
	ListBeaten(ctx context.Context, input *ListBeatenInput) (*ListBeatenOutput, error)
}

// MarkBeatenInput defines the request for recording a victory
type MarkBeatenInput struct {
	PlayerID string
	BossID   string
}

// MarkBeatenOutput defines the response for recording a victory
type MarkBeatenOutput struct {
	// FirstTime is false when the boss was already marked beaten
	FirstTime bool
}

// IsBeatenInput defines the request for checking a victory
type IsBeatenInput struct {
	PlayerID string
	BossID   string
}

// IsBeatenOutput defines the response for checking a victory
type IsBeatenOutput struct {
	Beaten bool
}

// ListBeatenInput defines the request for listing victories
type ListBeatenInput struct {
	PlayerID string
}

// ListBeatenOutput defines the response for listing victories
type ListBeatenOutput struct {
	BossIDs []string
}
