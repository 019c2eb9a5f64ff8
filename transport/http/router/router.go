package router

import (
	"fmt"
	"net/http"

	"villa/internal/handlers/booking"
	"villa/internal/handlers/gallery"
	"villa/shared/failure"
	"villa/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const apiVersionPrefix = "/v1"

type DomainHandlers struct {
	Booking booking.Handler
	Gallery gallery.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the booking and gallery APIs. Unknown paths and methods
// under the API prefix answer in the same JSON error shape the site expects.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(apiVersionPrefix, func(routerGroup chi.Router) {
		routerGroup.NotFound(notFound)
		routerGroup.MethodNotAllowed(methodNotAllowed)

		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	response.WithError(w, failure.NotFound(fmt.Sprintf("route %s", r.URL.Path)))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.WithError(w, &failure.Failure{
		Code:    http.StatusMethodNotAllowed,
		Message: fmt.Sprintf("method %s is not allowed on %s", r.Method, r.URL.Path),
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
