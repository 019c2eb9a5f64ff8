package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"villa/config"
	"villa/infras/kafka"
	"villa/infras/otel"
	"villa/infras/whatsapp"
	"villa/internal/domains/booking/availability"
	"villa/internal/domains/booking/model"
	"villa/internal/domains/booking/model/dto"
	"villa/internal/domains/booking/store"
	"villa/internal/domains/booking/summary"
	"villa/shared/constant"
	"villa/shared/failure"
	"villa/shared/timezone"
	"villa/shared/validator"

	"github.com/cenkalti/backoff/v5"
	"github.com/karlseguin/ccache/v3"
	"github.com/rs/zerolog/log"
)

const (
	publishMaxTries        = 3
	publishInitialInterval = 200 * time.Millisecond
	isoDateTag             = "isodate"

	calendarCacheSize = 64
	calendarCacheTTL  = time.Minute
)

type Booking interface {
	CheckAvailability(ctx context.Context, req dto.StayQuery) (dto.AvailabilityResponse, error)
	ComputePrice(ctx context.Context, req dto.StayQuery) (dto.QuoteResponse, error)
	IsDateBooked(ctx context.Context, req dto.DateQuery) (dto.BookedResponse, error)
	Calendar(ctx context.Context, req dto.CalendarQuery) (dto.CalendarResponse, error)
	RoomTypes(ctx context.Context) []dto.RoomTypeResponse
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.SubmitResponse, error)
}

type serviceImpl struct {
	store     *store.Store
	messenger whatsapp.Messenger
	kafka     kafka.Client
	cfg       *config.Config
	otel      otel.Otel
	prices    model.PriceTable

	// calendars holds rendered grids per day and month count. It is cleared on
	// every stored booking; the TTL bounds staleness from other replicas.
	calendars *ccache.Cache[dto.CalendarResponse]

	// submitMu serializes the availability re-check with the append and persist
	// that follow it.
	submitMu sync.Mutex
}

func New(store *store.Store, messenger whatsapp.Messenger, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		store:     store,
		messenger: messenger,
		kafka:     kafka,
		cfg:       cfg,
		otel:      otel,
		prices:    model.DefaultPriceTable(),
		calendars: ccache.New(ccache.Configure[dto.CalendarResponse]().MaxSize(calendarCacheSize)),
	}
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.StayQuery) (res dto.AvailabilityResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := parseStay(&req)
	if err != nil {
		return res, err
	}

	res.Available = availability.IsAvailable(checkIn, checkOut, model.RoomType(req.RoomType), s.store.All())

	return res, nil
}

func (s *serviceImpl) ComputePrice(ctx context.Context, req dto.StayQuery) (res dto.QuoteResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ComputePrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := parseStay(&req)
	if err != nil {
		return res, err
	}

	quote := availability.PriceFor(checkIn, checkOut, model.RoomType(req.RoomType), s.prices)
	res.FromModel(quote, s.cfg.Messaging.CurrencySymbol)

	return res, nil
}

func (s *serviceImpl) IsDateBooked(ctx context.Context, req dto.DateQuery) (res dto.BookedResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsDateBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, validationFailure(err)
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		return res, invalidDate(err.Error())
	}

	res.Date = date.String()
	res.Booked = availability.IsDateBooked(date, s.store.All())

	return res, nil
}

func (s *serviceImpl) Calendar(ctx context.Context, req dto.CalendarQuery) (res dto.CalendarResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	today := model.DateOf(timezone.Today())
	cacheKey := fmt.Sprintf("%s:%d", today, req.Months)

	if item := s.calendars.Get(cacheKey); item != nil && !item.Expired() {
		return item.Value(), nil
	}

	res.Today = today.String()
	res.Months = availability.Calendar(today, req.Months, s.store.All())

	s.calendars.Set(cacheKey, res, calendarCacheTTL)

	return res, nil
}

func (s *serviceImpl) RoomTypes(ctx context.Context) []dto.RoomTypeResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomTypes")
	defer scope.End()

	roomTypes := model.RoomTypes()
	res := make([]dto.RoomTypeResponse, len(roomTypes))

	for i, roomType := range roomTypes {
		res[i].FromModel(roomType, s.prices, s.cfg.Messaging.CurrencySymbol)
	}

	return res
}

// Submit records a tentative booking and returns the WhatsApp link that hands
// the request over to the owner. Nothing is stored unless the stay is valid and
// still free when the lock is held.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, validationFailure(err)
	}

	checkIn, checkOut, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	if checkIn.Before(model.DateOf(timezone.Today())) {
		return res, invalidDate("checkin cannot be in the past")
	}

	booking, err := s.commit(ctx, req, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	quote := availability.PriceFor(booking.CheckIn, booking.CheckOut, booking.RoomType, s.prices)
	body := summary.Compose(booking, quote, s.cfg.App.BusinessName, s.cfg.Messaging.CurrencySymbol)

	res.OK = true
	res.ID = booking.ID
	res.Summary = body
	res.HandoffURL = s.messenger.Link(body)
	res.Quote.FromModel(quote, s.cfg.Messaging.CurrencySymbol)

	scope.SetAttribute("booking.id", booking.ID)

	go s.publishRequested(context.WithoutCancel(ctx), booking, quote)

	return res, nil
}

func (s *serviceImpl) commit(ctx context.Context, req dto.SubmitBookingRequest, checkIn, checkOut model.Date) (model.Booking, error) {
	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	if s.cfg.Booking.ReloadOnSubmit {
		if err := s.store.Load(ctx); err != nil {
			log.Error().Err(err).Msg("failed to reload bookings before submit")

			return model.Booking{}, failure.WithReason(failure.InternalError(err), constant.ReasonUnsaved) //nolint:wrapcheck
		}
	}

	if !availability.IsAvailable(checkIn, checkOut, model.RoomType(req.RoomType), s.store.All()) {
		return model.Booking{}, failure.WithReason( //nolint:wrapcheck
			failure.Conflict("the selected dates are not available for this room type"),
			constant.ReasonUnavailable,
		)
	}

	booking := req.ToModel(checkIn, checkOut, timezone.Now())

	count := s.store.Len()
	s.store.Append(booking)

	if err := s.store.Persist(ctx); err != nil {
		s.store.Truncate(count)

		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to persist booking, append rolled back")

		return model.Booking{}, failure.WithReason( //nolint:wrapcheck
			failure.InternalError(fmt.Errorf("failed to save booking: %w", err)),
			constant.ReasonUnsaved,
		)
	}

	s.calendars.Clear()

	log.Info().
		Str("booking_id", booking.ID).
		Str("roomtype", string(booking.RoomType)).
		Str("checkin", booking.CheckIn.String()).
		Str("checkout", booking.CheckOut.String()).
		Msg("tentative booking recorded")

	return booking, nil
}

// publishRequested announces a stored booking. Delivery is best effort; the
// guest already has the WhatsApp link.
func (s *serviceImpl) publishRequested(ctx context.Context, booking model.Booking, quote model.Quote) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishRequested")
	defer scope.End()

	var event dto.RequestedEvent
	event.FromModel(booking, quote)

	message := kafka.Message{Key: booking.ID, Value: event}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = publishInitialInterval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, message)
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(publishMaxTries))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking requested event")
	}
}

func parseStay(req *dto.StayQuery) (model.Date, model.Date, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return model.Date{}, model.Date{}, validationFailure(err)
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return model.Date{}, model.Date{}, invalidDate(err.Error())
	}

	return checkIn, checkOut, nil
}

// parseRange also requires checkout to be strictly after checkin.
func parseRange(rawCheckIn, rawCheckOut string) (model.Date, model.Date, error) {
	checkIn, err := model.ParseDate(rawCheckIn)
	if err != nil {
		return model.Date{}, model.Date{}, invalidDate(err.Error())
	}

	checkOut, err := model.ParseDate(rawCheckOut)
	if err != nil {
		return model.Date{}, model.Date{}, invalidDate(err.Error())
	}

	if !checkOut.After(checkIn) {
		return model.Date{}, model.Date{}, invalidDate("checkout must be after checkin")
	}

	return checkIn, checkOut, nil
}

// validationFailure maps a validator failure onto the reasons the booking form
// understands.
func validationFailure(err error) error {
	if failure.GetReason(err) == isoDateTag {
		return failure.WithReason(err, constant.ReasonInvalidDate) //nolint:wrapcheck
	}

	return failure.WithReason(err, constant.ReasonMissingField) //nolint:wrapcheck
}

func invalidDate(message string) error {
	return &failure.Failure{Code: http.StatusBadRequest, Reason: constant.ReasonInvalidDate, Message: message}
}
