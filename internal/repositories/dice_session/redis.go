package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/fabula-api/internal/redis"
)

const (
	// Key pattern: dice_session:{entity_id}:{context}
	sessionKeyPrefix = "dice_session:"
	defaultTTL       = 15 * time.Minute
	defaultMaxRolls  = 50

	errEntityIDEmpty = "entity ID cannot be empty"
	errContextEmpty  = "context cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL is the lifetime given to a log on every append; zero uses 15 minutes
	TTL time.Duration

	// MaxRolls caps the log length, dropping the oldest rolls; zero uses 50
	MaxRolls int
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
		vb.Field("TTL", "cannot be negative")
	}
	if c.MaxRolls < 0 {
		vb.Field("MaxRolls", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client   redisclient.Client
	clock    clock.Clock
	ttl      time.Duration
	maxRolls int
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	maxRolls := cfg.MaxRolls
	if maxRolls == 0 {
		maxRolls = defaultMaxRolls
	}

	return &redisRepository{
		client:   cfg.Client,
		clock:    cfg.Clock,
		ttl:      ttl,
		maxRolls: maxRolls,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append pushes the rolls, trims the log and refreshes its TTL in one transaction
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument("at least one roll is required")
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	values := make([]any, 0, len(input.Rolls))
	for _, roll := range input.Rolls {
		rollJSON, err := json.Marshal(roll)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal roll")
		}
		values = append(values, rollJSON)
	}

	key := r.buildKey(input.EntityID, input.Context)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-r.maxRolls), -1)
	pipe.Expire(ctx, key, ttl)
	length := pipe.LLen(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append rolls in Redis")
	}

	return &AppendOutput{Length: int(length.Val())}, nil
}

// Get retrieves a roll log by entity ID and context
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := r.buildKey(input.EntityID, input.Context)

	pipe := r.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	ttlCmd := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to get roll log from Redis")
	}

	raw := rangeCmd.Val()
	if len(raw) == 0 {
		return nil, errors.NotFoundf("no rolls logged for %s", input.EntityID)
	}

	rolls := make([]DiceRoll, 0, len(raw))
	for _, item := range raw {
		var roll DiceRoll
		if err := json.Unmarshal([]byte(item), &roll); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal roll")
		}
		rolls = append(rolls, roll)
	}

	session := &DiceSession{
		EntityID: input.EntityID,
		Context:  input.Context,
		Rolls:    rolls,
	}
	if remaining := ttlCmd.Val(); remaining > 0 {
		session.ExpiresAt = r.clock.Now().Add(remaining)
	}

	return &GetOutput{Session: session}, nil
}

// Delete removes a roll log
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := r.buildKey(input.EntityID, input.Context)

	pipe := r.client.TxPipeline()
	length := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roll log from Redis")
	}

	return &DeleteOutput{RollsDeleted: int(length.Val())}, nil
}

func validateKey(entityID, context string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

// buildKey creates the Redis key for a roll log
func (r *redisRepository) buildKey(entityID, context string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, context)
}
