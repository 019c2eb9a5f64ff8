package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"villa/config"
	"villa/infras/otel/mocks"
	bookingMocks "villa/internal/domains/booking/mocks"
	"villa/internal/domains/booking/model/dto"
	galleryMocks "villa/internal/domains/gallery/mocks"
	"villa/internal/handlers/booking"
	"villa/internal/handlers/gallery"
	cacheMocks "villa/shared/cache/mocks"
	villaHttp "villa/transport/http"
	"villa/transport/http/middleware"
	"villa/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, cfg *config.Config) (*villaHttp.HTTP, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bookingSvc := bookingMocks.NewMockBooking(ctrl)
	gallerySvc := galleryMocks.NewMockGalleryService(ctrl)
	ot := mocks.NewOtel()

	routes := router.New(router.DomainHandlers{
		Booking: booking.New(bookingSvc, cfg, ot),
		Gallery: gallery.New(gallerySvc, ot),
	})

	mw := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))

	return villaHttp.New(cfg, routes, mw), bookingSvc
}

func TestHTTP_Health(t *testing.T) {
	server, _ := newServer(t, &config.Config{})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ready"}}`, recorder.Body.String())
	assert.Equal(t, villaHttp.ServerStateReady, server.State())
}

func TestHTTP_RoutesMounted(t *testing.T) {
	server, bookingSvc := newServer(t, &config.Config{})

	bookingSvc.EXPECT().RoomTypes(gomock.Any()).Return([]dto.RoomTypeResponse{{Name: "1 Bedroom"}})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/bookings/room-types", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "1 Bedroom")
}

func TestHTTP_UnknownRoute(t *testing.T) {
	server, _ := newServer(t, &config.Config{})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"ok":false,"error":"route /v1/rooms"}`, recorder.Body.String())
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	server, _ := newServer(t, &config.Config{})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/v1/gallery/slideshow", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"ok":false`)
}

func TestHTTP_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://villa.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	server, _ := newServer(t, cfg)

	request := httptest.NewRequest(http.MethodOptions, "/v1/bookings", nil)
	request.Header.Set("Origin", "https://villa.example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, "https://villa.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
}
