package booking

import (
	"net/http"

	"villa/config"
	"villa/infras/otel"
	"villa/internal/domains/booking/model/dto"
	"villa/internal/domains/booking/service"
	"villa/shared/constant"
	"villa/shared/failure"
	"villa/shared/validator"
	"villa/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Booking, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitBooking)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/price", handler.ComputePrice)
		routerGroup.Get("/booked", handler.IsDateBooked)
		routerGroup.Get("/calendar", handler.Calendar)
		routerGroup.Get("/room-types", handler.RoomTypes)
	})
}

// SubmitBooking records a tentative booking and returns the WhatsApp hand-off link.
// @Summary Submit a booking request
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Booking form"
// @Success 201 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error "reason missing-field or invalid-date"
// @Failure 409 {object} response.Error "reason unavailable"
// @Failure 500 {object} response.Error "reason unsaved"
// @Router /v1/bookings [post]
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}

	// Field rules run in the service after trimming; only the body shape is checked here.
	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode booking request")

		response.WithError(writer, failure.WithReason(err, constant.ReasonMissingField))

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("reason", failure.GetReason(err)).Msg("booking request rejected")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking request recorded " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// CheckAvailability reports whether a room type is free for a stay.
// @Summary Check availability
// @Tags Booking
// @Produce json
// @Param checkin query string true "YYYY-MM-DD"
// @Param checkout query string true "YYYY-MM-DD"
// @Param roomtype query string true "Room type"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := dto.StayQuery{}
	query.FromRequest(r)

	res, err := handler.service.CheckAvailability(ctx, query)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ComputePrice quotes a stay. A checkout on or before checkin yields valid=false.
// @Summary Compute price
// @Tags Booking
// @Produce json
// @Param checkin query string true "YYYY-MM-DD"
// @Param checkout query string true "YYYY-MM-DD"
// @Param roomtype query string true "Room type"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/price [get]
func (handler *Handler) ComputePrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ComputePrice")
	defer scope.End()

	query := dto.StayQuery{}
	query.FromRequest(r)

	res, err := handler.service.ComputePrice(ctx, query)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// IsDateBooked
// @Summary Check whether any room is booked on a date
// @Tags Booking
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.BookedResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/booked [get]
func (handler *Handler) IsDateBooked(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IsDateBooked")
	defer scope.End()

	query := dto.DateQuery{}
	query.FromRequest(r)

	res, err := handler.service.IsDateBooked(ctx, query)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Calendar
// @Summary Month grids with booked days marked
// @Tags Booking
// @Produce json
// @Param months query int false "Number of months, 1 to 12"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/calendar [get]
func (handler *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Calendar")
	defer scope.End()

	query := dto.CalendarQuery{}
	query.FromRequest(r, handler.cfg.Booking.CalendarMonths)

	res, err := handler.service.Calendar(ctx, query)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RoomTypes
// @Summary Room types with their per-day price
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomTypeResponse]
// @Router /v1/bookings/room-types [get]
func (handler *Handler) RoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RoomTypes")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.RoomTypes(ctx))
}
