package encounters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Encounters never expire.
type InMemoryRepository struct {
	clock clock.Clock

	mu    sync.RWMutex
	store map[string]*entities.Encounter
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*entities.Encounter),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new encounter
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if err := validateEncounter(input.Encounter); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Encounter.ID]; exists {
		return nil, errors.AlreadyExists("encounter already exists").WithMeta("encounter_id", input.Encounter.ID)
	}

	encounter := input.Encounter.Clone()
	now := r.clock.Now().Unix()
	encounter.CreatedAt = now
	encounter.UpdatedAt = now
	r.store[encounter.ID] = encounter

	// Return a copy to prevent external modification
	return &CreateOutput{Encounter: encounter.Clone()}, nil
}

// Get retrieves an encounter by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDRequired)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	encounter, exists := r.store[input.EncounterID]
	if !exists {
		return nil, errors.NotFound(errEncounterNotFound).WithMeta("encounter_id", input.EncounterID)
	}

	return &GetOutput{Encounter: encounter.Clone()}, nil
}

// Update replaces an existing encounter
func (r *InMemoryRepository) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if err := validateEncounter(input.Encounter); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Encounter.ID]; !exists {
		return nil, errors.NotFound(errEncounterNotFound).WithMeta("encounter_id", input.Encounter.ID)
	}

	encounter := input.Encounter.Clone()
	encounter.UpdatedAt = r.clock.Now().Unix()
	r.store[encounter.ID] = encounter

	return &UpdateOutput{Encounter: encounter.Clone()}, nil
}

// Delete removes an encounter
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.EncounterID]; !exists {
		return nil, errors.NotFound(errEncounterNotFound).WithMeta("encounter_id", input.EncounterID)
	}
	delete(r.store, input.EncounterID)

	return &DeleteOutput{}, nil
}
