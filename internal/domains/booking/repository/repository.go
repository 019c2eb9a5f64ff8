package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"villa/config"
	"villa/infras/otel"
	"villa/infras/postgres"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

var ErrStateNotFound = errors.New("booking state not found")

// Backend keeps the serialized booking state under one named record.
// Read returns ErrStateNotFound when nothing has been written yet.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, state []byte) error
	Name() string
}

// New picks the backend configured by BOOKING_STORE.
func New(cfg *config.Config, redis *goRedis.Client, db *postgres.Connection, otel otel.Otel) (Backend, error) {
	key := cfg.Booking.StateKey

	switch cfg.Booking.Store {
	case StoreMemory:
		return NewMemory(), nil
	case StoreFile, "":
		return NewFile(afero.NewOsFs(), cfg.Booking.FilePath, otel), nil
	case StoreRedis:
		return NewRedis(redis, key, otel), nil
	case StorePostgres:
		return NewPostgres(db, key, otel), nil
	}

	log.Error().Str("store", cfg.Booking.Store).Msg("unknown booking store")

	return nil, fmt.Errorf("unknown booking store %q", cfg.Booking.Store)
}
