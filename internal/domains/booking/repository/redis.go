package repository

import (
	"context"
	"errors"
	"fmt"

	"villa/infras/otel"
	"villa/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisBackend struct {
	client *goRedis.Client
	key    string
	otel   otel.Otel
}

// NewRedis stores the state as a plain string without expiry.
func NewRedis(client *goRedis.Client, key string, otel otel.Otel) Backend {
	return &redisBackend{
		client: client,
		key:    key,
		otel:   otel,
	}
}

func (r *redisBackend) Read(ctx context.Context) (state []byte, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".redis.Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	state, err = r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return nil, ErrStateNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", r.key).Msg("failed to read booking state from redis")

		return nil, fmt.Errorf("failed to read booking state from redis: %w", err)
	}

	return state, nil
}

func (r *redisBackend) Write(ctx context.Context, state []byte) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".redis.Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Set(ctx, r.key, state, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", r.key).Msg("failed to write booking state to redis")

		return fmt.Errorf("failed to write booking state to redis: %w", err)
	}

	return nil
}

func (r *redisBackend) Name() string {
	return StoreRedis
}
