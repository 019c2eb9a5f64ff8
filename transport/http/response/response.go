package response

import (
	"encoding/json"
	"net/http"
	"strconv"

	"villa/shared/constant"
	"villa/shared/failure"
	"villa/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error always carries ok=false so the booking form can branch on one field.
type Error struct {
	OK     bool    `json:"ok"`
	Reason string  `json:"reason,omitempty"`
	Error  *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// RateLimit is the quota a client has left in the current window.
type RateLimit struct {
	Limit         int
	Remaining     int
	WindowSeconds int
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError maps a failure onto its status code and reason. Messages of server
// side failures are logged and replaced, guests only see what they can act on.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		errMsg = constant.ResponseErrorInternal
	}

	response(writer, code, Error{Reason: failure.GetReason(err), Error: &errMsg})
}

// WithRateLimitHeaders advertises the client quota. It must run before the
// status line is written.
func WithRateLimitHeaders(writer http.ResponseWriter, limit RateLimit) {
	header := writer.Header()
	header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit.Limit))
	header.Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limit.Remaining)))
	header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limit.WindowSeconds))
}

func WithRequestLimitExceeded(writer http.ResponseWriter, limit RateLimit) {
	writer.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(limit.WindowSeconds))
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
