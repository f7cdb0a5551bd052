package dicesession

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/clock"
)

type sessionKey struct {
	entityID string
	context  string
}

// InMemoryRepository keeps dice sessions in process memory. Expired sessions
// are dropped lazily on access.
type InMemoryRepository struct {
	clock clock.Clock

	mu       sync.Mutex
	sessions map[sessionKey]*DiceSession
}

// NewInMemory creates a new in-memory dice session repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock:    clk,
		sessions: make(map[sessionKey]*DiceSession),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new dice session, replacing any previous one
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	session := r.newSession(input.EntityID, input.Context, cloneRolls(input.Rolls), input.TTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionKey{input.EntityID, input.Context}] = session

	return &CreateOutput{Session: cloneSession(session)}, nil
}

// Append adds a roll, creating the session when it is missing or expired
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if input.Roll == nil {
		return nil, errors.InvalidArgument(errRollNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey{input.EntityID, input.Context}
	session, ok := r.live(key)
	if !ok {
		session = r.newSession(input.EntityID, input.Context, nil, input.TTL)
		r.sessions[key] = session
	}
	session.Rolls = append(session.Rolls, cloneRolls([]DiceRoll{*input.Roll})...)

	return &AppendOutput{Session: cloneSession(session), Created: !ok}, nil
}

// Get retrieves a dice session by entity ID and context
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.live(sessionKey{input.EntityID, input.Context})
	if !ok {
		return nil, errors.NotFound(errSessionNotFound)
	}

	return &GetOutput{Session: cloneSession(session)}, nil
}

// Delete removes a dice session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey{input.EntityID, input.Context}
	var rollsDeleted int32
	if session, ok := r.live(key); ok {
		// nolint:gosec // roll count is always small
		rollsDeleted = int32(len(session.Rolls))
	}
	delete(r.sessions, key)

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

// Update replaces a live session and keeps its expiry
func (r *InMemoryRepository) Update(_ context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if err := validateKey(session.EntityID, session.Context); err != nil {
		return err
	}
	if r.clock.Now().After(session.ExpiresAt) {
		return errors.InvalidArgument(errSessionExpired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey{session.EntityID, session.Context}
	existing, ok := r.live(key)
	if !ok {
		return errors.NotFound(errSessionNotFound)
	}
	updated := cloneSession(session)
	updated.ExpiresAt = existing.ExpiresAt
	r.sessions[key] = updated

	return nil
}

// live returns the session under key unless it expired. Callers hold mu.
func (r *InMemoryRepository) live(key sessionKey) (*DiceSession, bool) {
	session, ok := r.sessions[key]
	if !ok {
		return nil, false
	}
	if r.clock.Now().After(session.ExpiresAt) {
		delete(r.sessions, key)
		return nil, false
	}
	return session, true
}

func (r *InMemoryRepository) newSession(entityID, rollContext string, rolls []DiceRoll, ttl time.Duration) *DiceSession {
	now := r.clock.Now()
	return &DiceSession{
		EntityID:  entityID,
		Context:   rollContext,
		Rolls:     rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(ttlOrDefault(ttl)),
	}
}

func cloneSession(s *DiceSession) *DiceSession {
	c := *s
	c.Rolls = cloneRolls(s.Rolls)
	return &c
}

func cloneRolls(rolls []DiceRoll) []DiceRoll {
	if rolls == nil {
		return nil
	}
	out := make([]DiceRoll, len(rolls))
	for i, roll := range rolls {
		roll.Dice = slices.Clone(roll.Dice)
		roll.Dropped = slices.Clone(roll.Dropped)
		out[i] = roll
	}
	return out
}
