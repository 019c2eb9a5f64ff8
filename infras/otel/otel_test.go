package otel_test

import (
	"context"
	"errors"
	"testing"

	"villa/config"
	"villa/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "villa-test"

	tracer := otel.New(cfg)
	require.NotNil(t, tracer)

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.Span")
	require.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"booking.roomtype": "1 Bedroom",
		"booking.days":     2,
		"booking.ok":       true,
		"booking.tags":     []string{"a", "b"},
		"booking.total":    3000.5,
	})
	scope.AddEvent("checked")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("unavailable"))
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
