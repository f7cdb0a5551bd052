package encounters

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-casino/internal/redis"
)

// Key pattern: encounter:{id}
const encounterKeyPrefix = "encounter:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is refreshed on every write; zero means DefaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for encounters
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new encounter; an existing ID is rejected
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if err := validateEncounter(input.Encounter); err != nil {
		return nil, err
	}

	encounter := input.Encounter.Clone()
	now := r.clock.Now().Unix()
	encounter.CreatedAt = now
	encounter.UpdatedAt = now

	data, err := json.Marshal(encounter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal encounter")
	}

	created, err := r.client.SetNX(ctx, r.buildKey(encounter.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store encounter in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists("encounter already exists").WithMeta("encounter_id", encounter.ID)
	}

	return &CreateOutput{Encounter: encounter}, nil
}

// Get retrieves an encounter by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDRequired)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.EncounterID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errEncounterNotFound).WithMeta("encounter_id", input.EncounterID)
		}
		return nil, errors.Wrap(err, "failed to get encounter from Redis")
	}

	var encounter entities.Encounter
	if err := json.Unmarshal(data, &encounter); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal encounter")
	}

	return &GetOutput{Encounter: &encounter}, nil
}

// Update replaces an existing encounter and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if err := validateEncounter(input.Encounter); err != nil {
		return nil, err
	}

	encounter := input.Encounter.Clone()
	encounter.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(encounter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal encounter")
	}

	updated, err := r.client.SetXX(ctx, r.buildKey(encounter.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to update encounter in Redis")
	}
	if !updated {
		return nil, errors.NotFound(errEncounterNotFound).WithMeta("encounter_id", encounter.ID)
	}

	return &UpdateOutput{Encounter: encounter}, nil
}

// Delete removes an encounter
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDRequired)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.EncounterID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete encounter from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFound(errEncounterNotFound).WithMeta("encounter_id", input.EncounterID)
	}

	return &DeleteOutput{}, nil
}

// buildKey creates the Redis key for an encounter
func (r *redisRepository) buildKey(encounterID string) string {
	return encounterKeyPrefix + encounterID
}
