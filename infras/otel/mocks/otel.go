package mocks

import (
	"context"

	"villa/infras/otel"
)

type otelImpl struct {
	scope *Scope
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	if o.scope != nil {
		return ctx, o.scope
	}

	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

// NewRecordingOtel hands the same scope to every span so a test can inspect
// what one request traced.
func NewRecordingOtel(scope *Scope) otel.Otel {
	return &otelImpl{scope: scope}
}
