package dicesession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-casino/internal/redis"
)

// Key pattern: dice_session:{entity_id}:{context}
const sessionKeyPrefix = "dice_session:"

// maxAppendAttempts bounds optimistic retries when appends race on one key
const maxAppendAttempts = 5

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
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

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	ttl := ttlOrDefault(input.TTL)
	session := r.newSession(input.EntityID, input.Context, input.Rolls, ttl)

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}
	if err := r.client.Set(ctx, buildKey(input.EntityID, input.Context), data, ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store session in Redis")
	}

	return &CreateOutput{Session: session}, nil
}

// Append reads, extends and writes the session inside WATCH so a concurrent
// writer forces a retry instead of a lost roll
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if input.Roll == nil {
		return nil, errors.InvalidArgument(errRollNil)
	}

	key := buildKey(input.EntityID, input.Context)
	var output *AppendOutput

	txf := func(tx *redis.Tx) error {
		session, ttl, err := r.load(ctx, tx.Get, key)
		created := false
		switch {
		case errors.IsNotFound(err):
			ttl = ttlOrDefault(input.TTL)
			session = r.newSession(input.EntityID, input.Context, nil, ttl)
			created = true
		case err != nil:
			return err
		}
		session.Rolls = append(session.Rolls, *input.Roll)

		data, err := json.Marshal(session)
		if err != nil {
			return errors.Wrap(err, "failed to marshal session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		if err != nil {
			return err
		}

		output = &AppendOutput{Session: session, Created: created}
		return nil
	}

	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return output, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		var repoErr *errors.Error
		if errors.As(err, &repoErr) {
			return nil, err
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to append roll in Redis")
	}

	return nil, errors.Abortedf("dice session %s changed %d times during append", key, maxAppendAttempts)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	session, _, err := r.load(ctx, r.client.Get, buildKey(input.EntityID, input.Context))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)

	// GETDEL reads the roll count and removes the key in one round trip
	data, err := r.client.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return &DeleteOutput{}, nil
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal(data, &session); err != nil {
		// the key is gone either way
		return &DeleteOutput{}, nil
	}
	if r.clock.Now().After(session.ExpiresAt) {
		return &DeleteOutput{}, nil
	}

	// nolint:gosec // roll count is always small
	return &DeleteOutput{RollsDeleted: int32(len(session.Rolls))}, nil
}

// Update keeps the key's TTL and refuses to recreate a session Redis already
// expired
func (r *redisRepository) Update(ctx context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if err := validateKey(session.EntityID, session.Context); err != nil {
		return err
	}
	if r.clock.Now().After(session.ExpiresAt) {
		return errors.InvalidArgument(errSessionExpired)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	_, err = r.client.SetArgs(ctx, buildKey(session.EntityID, session.Context), data, redis.SetArgs{
		Mode:    "XX",
		KeepTTL: true,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return errors.NotFound(errSessionNotFound)
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to update session in Redis")
	}

	return nil
}

// load reads a session through get (the client's or a WATCH tx's) and
// returns its remaining lifetime. Sessions past ExpiresAt read as not found.
func (r *redisRepository) load(
	ctx context.Context, get func(context.Context, string) *redis.StringCmd, key string,
) (*DiceSession, time.Duration, error) {
	data, err := get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, 0, errors.NotFound(errSessionNotFound)
	}
	if err != nil {
		return nil, 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, 0, errors.Wrap(err, "failed to unmarshal session")
	}

	remaining := session.ExpiresAt.Sub(r.clock.Now())
	if remaining <= 0 {
		return nil, 0, errors.NotFound(errSessionNotFound)
	}

	return &session, remaining, nil
}

func (r *redisRepository) newSession(entityID, rollContext string, rolls []DiceRoll, ttl time.Duration) *DiceSession {
	now := r.clock.Now()
	return &DiceSession{
		EntityID:  entityID,
		Context:   rollContext,
		Rolls:     rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func buildKey(entityID, rollContext string) string {
	return sessionKeyPrefix + entityID + ":" + rollContext
}
