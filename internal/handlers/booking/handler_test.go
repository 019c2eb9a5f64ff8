package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"villa/config"
	"villa/infras/otel/mocks"
	bookingMocks "villa/internal/domains/booking/mocks"
	"villa/internal/domains/booking/model/dto"
	"villa/internal/handlers/booking"
	"villa/shared/constant"
	"villa/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := bookingMocks.NewMockBooking(ctrl)

	cfg := &config.Config{}
	cfg.Booking.CalendarMonths = 3

	handler := booking.New(svc, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestHandler_SubmitBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.SubmitBookingRequest) (dto.SubmitResponse, error) {
				assert.Equal(t, "Asha", req.Name)
				assert.Equal(t, "2099-04-10", req.CheckIn)

				return dto.SubmitResponse{OK: true, ID: "id-1", HandoffURL: "https://wa.me/1?text=hi"}, nil
			})

		body := `{"name":"Asha","email":"a@b.c","phone":"1","checkin":"2099-04-10","checkout":"2099-04-12","roomtype":"1 Bedroom"}`
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, recorder.Code)

		data, ok := decode(t, recorder)["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, data["ok"])
		assert.Equal(t, "https://wa.me/1?text=hi", data["handoff_url"])
	})

	t.Run("unavailable", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(dto.SubmitResponse{}, failure.WithReason(failure.Conflict("taken"), constant.ReasonUnavailable))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusConflict, recorder.Code)

		body := decode(t, recorder)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, constant.ReasonUnavailable, body["reason"])
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(`{"name":`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, constant.ReasonMissingField, decode(t, recorder)["reason"])
	})
}

func TestHandler_Queries(t *testing.T) {
	t.Run("availability", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			CheckAvailability(gomock.Any(), dto.StayQuery{CheckIn: "2025-04-11", CheckOut: "2025-04-13", RoomType: "1 Bedroom"}).
			Return(dto.AvailabilityResponse{Available: false}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/bookings/availability?checkin=2025-04-11&checkout=2025-04-13&roomtype=1%20Bedroom", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":{"available":false}}`, recorder.Body.String())
	})

	t.Run("price", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			ComputePrice(gomock.Any(), gomock.Any()).
			Return(dto.QuoteResponse{Valid: false}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/bookings/price?checkin=2025-05-04&checkout=2025-05-01&roomtype=1%20Bedroom", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":{"valid":false}}`, recorder.Body.String())
	})

	t.Run("booked with bad date", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			IsDateBooked(gomock.Any(), dto.DateQuery{Date: "tomorrow"}).
			Return(dto.BookedResponse{}, failure.WithReason(failure.BadRequestFromString("bad"), constant.ReasonInvalidDate))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/bookings/booked?date=tomorrow", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, constant.ReasonInvalidDate, decode(t, recorder)["reason"])
	})

	t.Run("calendar uses configured default", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Calendar(gomock.Any(), dto.CalendarQuery{Months: 3}).
			Return(dto.CalendarResponse{Today: "2025-03-15"}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/bookings/calendar", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("room types", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			RoomTypes(gomock.Any()).
			Return([]dto.RoomTypeResponse{{Name: "1 Bedroom", PricePerDay: 1500, PriceDisplay: "₹1,500"}})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/bookings/room-types", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":[{"name":"1 Bedroom","pricePerDay":1500,"priceDisplay":"₹1,500"}]}`, recorder.Body.String())
	})
}
