package booking

import (
	"context"

	"villa/config"
	"villa/infras/kafka"
	"villa/infras/otel"
	"villa/internal/domains/booking/model/dto"
	"villa/shared"
	"villa/shared/cache"
	"villa/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	cacheKeyRequests = "booking:requests"

	// requestCounterSeconds keeps the per-arrival-day counters for 90 days.
	requestCounterSeconds = 90 * constant.HoursPerDay * 60 * 60
)

// Worker follows the booking request topic and keeps a per check-in day count
// of requests in Redis, so the owner can see demand before confirming.
type Worker struct {
	kafka kafka.Client
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(kafka kafka.Client, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) *Worker {
	return &Worker{
		kafka: kafka,
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

// Run blocks until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	log.Info().Str("topic", w.cfg.Kafka.Topic).Msg("Booking request worker started.")

	w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topic, w.Handle)

	log.Info().Msg("Booking request worker stopped.")
}

// Handle records one booking request event. Undecodable events are skipped so
// they do not block the partition.
func (w *Worker) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingRequested")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[dto.RequestedEvent](message)
	if err != nil {
		log.Warn().Err(err).Str("key", string(message.Key)).Msg("skipping malformed booking event")

		return nil
	}

	key := shared.BuildCacheKey(cacheKeyRequests, event.CheckIn.String())

	count, err := w.cache.Increment(ctx, key, requestCounterSeconds)
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().
		Str("id", event.ID).
		Str("roomtype", string(event.RoomType)).
		Str("checkin", event.CheckIn.String()).
		Str("checkout", event.CheckOut.String()).
		Int64("total", event.Total).
		Int64("requestsForDay", count).
		Msg("booking requested")

	return nil
}
