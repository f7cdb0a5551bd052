package progress

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-casino/internal/redis"
)

// Key pattern: progress:{player_id}:bosses
const progressKeyPattern = "progress:%s:bosses"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a progress repository backed by Redis sets.
// Progress keys carry no TTL.
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) MarkBeaten(ctx context.Context, input *MarkBeatenInput) (*MarkBeatenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePair(input.PlayerID, input.BossID); err != nil {
		return nil, err
	}

	added, err := r.client.SAdd(ctx, r.buildKey(input.PlayerID), input.BossID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark boss beaten in Redis")
	}

	return &MarkBeatenOutput{FirstTime: added > 0}, nil
}

func (r *redisRepository) IsBeaten(ctx context.Context, input *IsBeatenInput) (*IsBeatenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePair(input.PlayerID, input.BossID); err != nil {
		return nil, err
	}

	beaten, err := r.client.SIsMember(ctx, r.buildKey(input.PlayerID), input.BossID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check progress in Redis")
	}

	return &IsBeatenOutput{Beaten: beaten}, nil
}

func (r *redisRepository) ListBeaten(ctx context.Context, input *ListBeatenInput) (*ListBeatenOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDRequired)
	}

	bossIDs, err := r.client.SMembers(ctx, r.buildKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list progress from Redis")
	}
	slices.Sort(bossIDs)

	return &ListBeatenOutput{BossIDs: bossIDs}, nil
}

func (r *redisRepository) buildKey(playerID string) string {
	return fmt.Sprintf(progressKeyPattern, playerID)
}

func validatePair(playerID, bossID string) error {
	vb := errors.NewValidationBuilder()
	if playerID == "" {
		vb.Field("player_id", errPlayerIDRequired)
	}
	if bossID == "" {
		vb.Field("boss_id", errBossIDRequired)
	}
	return vb.Build()
}
