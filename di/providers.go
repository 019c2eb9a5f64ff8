package di

import (
	"context"
	"time"

	"villa/config"
	"villa/infras/kafka"
	"villa/infras/otel"

	"github.com/rs/zerolog/log"
)

const flushTimeout = 5 * time.Second

// provideOtel flushes pending spans on cleanup.
func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	ot := otel.New(cfg)

	return ot, func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()

		if err := ot.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down tracer provider")
		}
	}
}

// provideKafka flushes the writer on cleanup.
func provideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}
	}
}
