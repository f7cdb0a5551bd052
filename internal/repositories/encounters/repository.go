// Package encounters provides storage for dice boss encounters
package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountermock github.com/KirkDiggler/rpg-casino/internal/repositories/encounters Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
)

const (
	// DefaultTTL is how long an untouched encounter is kept
	DefaultTTL = 30 * time.Minute

	errInputRequired       = "input is required"
	errEncounterRequired   = "encounter is required"
	errEncounterIDRequired = "encounter ID is required"
	errEncounterNotFound   = "encounter not found"
)

// Repository defines the storage interface for encounters
type Repository interface {
	// Create stores a new encounter
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves an encounter by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces an existing encounter
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes an encounter
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the request for storing a new encounter
type CreateInput struct {
	Encounter *entities.Encounter
}

// CreateOutput defines the response for storing a new encounter
type CreateOutput struct {
	Encounter *entities.Encounter
}

// GetInput defines the request for retrieving an encounter
type GetInput struct {
	EncounterID string
}

// GetOutput defines the response for retrieving an encounter
type GetOutput struct {
	Encounter *entities.Encounter
}

// UpdateInput defines the request for replacing an encounter
type UpdateInput struct {
	Encounter *entities.Encounter
}

// UpdateOutput defines the response for replacing an encounter
type UpdateOutput struct {
	Encounter *entities.Encounter
}

// DeleteInput defines the request for deleting an encounter
type DeleteInput struct {
	EncounterID string
}

// DeleteOutput defines the response for deleting an encounter
type DeleteOutput struct{}

func validateEncounter(e *entities.Encounter) error {
	if e == nil {
		return errors.InvalidArgument(errEncounterRequired)
	}
	if e.ID == "" {
		return errors.InvalidArgument(errEncounterIDRequired)
	}
	return nil
}
