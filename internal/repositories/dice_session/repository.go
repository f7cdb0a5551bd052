// Package dicesession stores roll history. A session groups the rolls made
// for one entity in one context, e.g. encounter enc_1 during turn_3.
package dicesession

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session Repository

const (
	// DefaultTTL applies when a session is created without one
	DefaultTTL = 30 * time.Minute

	errSessionNil      = "session cannot be nil"
	errRollNil         = "roll cannot be nil"
	errEntityIDEmpty   = "entity ID cannot be empty"
	errContextEmpty    = "context cannot be empty"
	errSessionExpired  = "session has already expired"
	errSessionNotFound = "dice session not found"
)

// DiceSession is the ordered roll history of one entity in one context
type DiceSession struct {
	EntityID  string
	Context   string
	Rolls     []DiceRoll
	CreatedAt time.Time
	ExpiresAt time.Time
}

// DiceRoll is a single recorded roll
type DiceRoll struct {
	RollID   string
	Notation string // "4d6", "6d6"
	Dice     []int32
	// Total is DiceTotal plus Modifier
	Total int32
	// Dropped holds dice discarded by a keep-highest roll
	Dropped     []int32
	Description string
	DiceTotal   int32
	Modifier    int32
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// AppendInput adds one roll to a session, creating the session with TTL when
// it does not exist
type AppendInput struct {
	EntityID string
	Context  string
	Roll     *DiceRoll
	TTL      time.Duration
}

// AppendOutput holds the session after the roll was added
type AppendOutput struct {
	Session *DiceSession
	Created bool
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session, replacing any previous one
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Append adds a roll atomically; concurrent appends never lose rolls
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get retrieves a dice session by entity ID and context
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces a live session without extending its expiry
	Update(ctx context.Context, session *DiceSession) error
}

func validateKey(entityID, rollContext string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if rollContext == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
