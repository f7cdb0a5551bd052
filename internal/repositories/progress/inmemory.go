package progress

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
)

// InMemoryRepository keeps progress for the lifetime of the process
type InMemoryRepository struct {
	mu     sync.RWMutex
	beaten map[string]map[string]struct{}
}

// NewInMemory creates a new in-memory progress repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		beaten: make(map[string]map[string]struct{}),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// MarkBeaten records that a player defeated a boss
func (r *InMemoryRepository) MarkBeaten(_ context.Context, input *MarkBeatenInput) (*MarkBeatenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePair(input.PlayerID, input.BossID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bosses, ok := r.beaten[input.PlayerID]
	if !ok {
		bosses = make(map[string]struct{})
		r.beaten[input.PlayerID] = bosses
	}
	_, already := bosses[input.BossID]
	bosses[input.BossID] = struct{}{}

	return &MarkBeatenOutput{FirstTime: !already}, nil
}

// IsBeaten reports whether a player already defeated a boss
func (r *InMemoryRepository) IsBeaten(_ context.Context, input *IsBeatenInput) (*IsBeatenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePair(input.PlayerID, input.BossID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, beaten := r.beaten[input.PlayerID][input.BossID]
	return &IsBeatenOutput{Beaten: beaten}, nil
}

// ListBeaten returns every boss a player defeated, sorted by ID
func (r *InMemoryRepository) ListBeaten(_ context.Context, input *ListBeatenInput) (*ListBeatenOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDRequired)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bossIDs := lo.Keys(r.beaten[input.PlayerID])
	slices.Sort(bossIDs)

	return &ListBeatenOutput{BossIDs: bossIDs}, nil
}
