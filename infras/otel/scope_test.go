package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"roombook/infras/otel"
)

func newRecordedScope(t *testing.T) (otel.Scope, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Create")

	return otel.NewScope(span), recorder
}

func TestScope_Attributes(t *testing.T) {
	scope, recorder := newRecordedScope(t)

	scope.SetAttributes(map[string]any{
		"room":    "Earth",
		"hours":   2,
		"offset":  int64(42),
		"active":  true,
		"tags":    []string{"a", "b"},
		"ratio":   0.5,
		"unknown": struct{ X int }{X: 1},
	})
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "Earth", attrs["room"].AsString())
	assert.Equal(t, int64(2), attrs["hours"].AsInt64())
	assert.Equal(t, int64(42), attrs["offset"].AsInt64())
	assert.True(t, attrs["active"].AsBool())
	assert.Equal(t, []string{"a", "b"}, attrs["tags"].AsStringSlice())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, "{1}", attrs["unknown"].AsString())
}

func TestScope_TraceError(t *testing.T) {
	t.Run("records error", func(t *testing.T) {
		scope, recorder := newRecordedScope(t)

		scope.TraceIfError(errors.New("overlap"))
		scope.End()

		span := recorder.Ended()[0]
		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "overlap", span.Status().Description)
		assert.NotEmpty(t, span.Events())
	})

	t.Run("nil leaves status unset", func(t *testing.T) {
		scope, recorder := newRecordedScope(t)

		scope.TraceIfError(nil)
		scope.End()

		assert.Equal(t, codes.Unset, recorder.Ended()[0].Status().Code)
	})
}

func TestScope_TraceID(t *testing.T) {
	scope, _ := newRecordedScope(t)
	defer scope.End()

	assert.Len(t, scope.TraceID(), 32)
}
