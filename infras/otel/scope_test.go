package otel_test

import (
	"errors"
	"testing"
	"time"

	"villa/infras/otel"
	"villa/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpan(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(t.Context(), "booking.Submit")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func attributeMap(values []attribute.KeyValue) map[string]attribute.Value {
	result := make(map[string]attribute.Value, len(values))
	for _, kv := range values {
		result[string(kv.Key)] = kv.Value
	}

	return result
}

func TestScope_TraceError(t *testing.T) {
	t.Run("client failure is an event", func(t *testing.T) {
		span := recordSpan(t, func(scope otel.Scope) {
			scope.TraceError(failure.WithReason(failure.BadRequestFromString("checkin is required"), "missing-field"))
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
		require.Len(t, span.Events(), 1)

		event := span.Events()[0]
		attributes := attributeMap(event.Attributes)

		assert.Equal(t, "client failure", event.Name)
		assert.Equal(t, int64(400), attributes["failure.code"].AsInt64())
		assert.Equal(t, "missing-field", attributes["failure.reason"].AsString())
	})

	t.Run("server failure sets error status", func(t *testing.T) {
		span := recordSpan(t, func(scope otel.Scope) {
			scope.TraceIfError(errors.New("redis unavailable"))
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "redis unavailable", span.Status().Description)
	})

	t.Run("nil error leaves span untouched", func(t *testing.T) {
		span := recordSpan(t, func(scope otel.Scope) {
			scope.TraceIfError(nil)
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
		assert.Empty(t, span.Events())
	})
}

func TestScope_SetAttributes(t *testing.T) {
	checkIn := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	span := recordSpan(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"booking.guests":  2,
			"booking.total":   int64(9000),
			"booking.rate":    4500.5,
			"booking.checkin": checkIn,
			"booking.direct":  true,
			"booking.rooms":   []string{"Villa"},
		})
		scope.SetAttribute("booking.other", struct{ N int }{N: 1})
	})

	attributes := attributeMap(span.Attributes())

	assert.Equal(t, int64(2), attributes["booking.guests"].AsInt64())
	assert.Equal(t, int64(9000), attributes["booking.total"].AsInt64())
	assert.InDelta(t, 4500.5, attributes["booking.rate"].AsFloat64(), 0.001)
	assert.Equal(t, "2025-03-15", attributes["booking.checkin"].AsString())
	assert.True(t, attributes["booking.direct"].AsBool())
	assert.Equal(t, []string{"Villa"}, attributes["booking.rooms"].AsStringSlice())
	assert.Equal(t, "{1}", attributes["booking.other"].AsString())
}
