package otel

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope is a started span. End must be called exactly once.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type span struct {
	oteltrace.Span
}

func NewScope(s oteltrace.Span) Scope {
	return span{Span: s}
}

func (s span) End() {
	s.Span.End()
}

func (s span) AddEvent(name string) {
	s.Span.AddEvent(name)
}

func (s span) TraceError(err error) {
	s.RecordError(err)
	s.SetStatus(codes.Error, err.Error())
}

// TraceIfError is meant for defer with a named error result.
func (s span) TraceIfError(err error) {
	if err == nil {
		return
	}

	s.TraceError(err)
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch typed := value.(type) {
	case string:
		return attribute.String(key, typed)
	case bool:
		return attribute.Bool(key, typed)
	case int:
		return attribute.Int(key, typed)
	case int64:
		return attribute.Int64(key, typed)
	case float64:
		return attribute.Float64(key, typed)
	case []string:
		return attribute.StringSlice(key, typed)
	case []int:
		return attribute.IntSlice(key, typed)
	case fmt.Stringer:
		return attribute.String(key, typed.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", typed))
	}
}

func (s span) SetAttribute(key string, value any) {
	s.Span.SetAttributes(toAttribute(key, value))
}

func (s span) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))

	for key, value := range attributes {
		kvs = append(kvs, toAttribute(key, value))
	}

	s.Span.SetAttributes(kvs...)
}
