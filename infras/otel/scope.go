package otel

import (
	"fmt"
	"net/http"
	"time"

	"villa/shared/failure"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	attributeFailureCode   = "failure.code"
	attributeFailureReason = "failure.reason"
	eventClientFailure     = "client failure"
)

type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func (s *scopeImpl) End() {
	s.span.End()
}

// TraceError marks the span as failed only for server side failures. A rejected
// booking form or a missing gallery item is an expected outcome, so it is kept
// as an event carrying the failure code and reason.
func (s *scopeImpl) TraceError(err error) {
	code := failure.GetCode(err)
	attributes := []attribute.KeyValue{attribute.Int(attributeFailureCode, code)}

	if reason := failure.GetReason(err); reason != "" {
		attributes = append(attributes, attribute.String(attributeFailureReason, reason))
	}

	if code < http.StatusInternalServerError {
		attributes = append(attributes, attribute.String("message", err.Error()))
		s.span.AddEvent(eventClientFailure, oteltrace.WithAttributes(attributes...))

		return
	}

	s.span.RecordError(err, oteltrace.WithAttributes(attributes...))
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	values := make([]attribute.KeyValue, 0, len(attributes))
	for key, value := range attributes {
		values = append(values, toAttribute(key, value))
	}

	s.span.SetAttributes(values...)
}

// toAttribute keeps numbers numeric so nightly rates and guest counts can be
// filtered on in the trace backend. Dates are written as calendar days.
func toAttribute(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case bool:
		return attribute.Bool(key, val)
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case time.Time:
		return attribute.String(key, val.Format(time.DateOnly))
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{
		span: span,
	}
}
