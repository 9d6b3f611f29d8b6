package actor

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	redisclient "github.com/KirkDiggler/fabula-api/internal/redis"
)

const (
	actorKeyPrefix = "actor:"
	actorIndexKey  = "actor_index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis actor repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed actor repository storing each actor as JSON
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	result, err := r.client.Get(ctx, actorKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var actor fabula.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}

	return &GetOutput{Actor: &actor}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	fabula.NormalizeActor(input.Actor)

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actorKeyPrefix+input.Actor.ID, data, 0)
	pipe.SAdd(ctx, actorIndexKey, input.Actor.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store actor")
	}

	return &PutOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, actorIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list actor IDs")
	}
	if len(ids) == 0 {
		return &ListOutput{Actors: []*fabula.Actor{}}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = actorKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load actors")
	}

	actors := make([]*fabula.Actor, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry whose actor key is gone
			continue
		}
		var actor fabula.Actor
		if err := json.Unmarshal([]byte(raw), &actor); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal actor")
		}
		actors = append(actors, &actor)
	}

	return &ListOutput{Actors: actors}, nil
}
