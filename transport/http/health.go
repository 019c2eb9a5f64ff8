package http

import (
	"net/http"

	"villa/transport/http/response"
)

type healthResponse struct {
	Status string `json:"status"`
}

// health
// @Summary Server state
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[healthResponse]
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithJSON(w, http.StatusOK, healthResponse{Status: "ready"})
	case ServerStateInGracePeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}
