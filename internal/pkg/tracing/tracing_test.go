package tracing_test

import (
	"context"
	"errors"
	"testing"

	"supplychain/internal/pkg/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_DisabledIsNoop(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), tracing.Config{})

	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestFail(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	boom := errors.New("boom")
	err := tracing.Fail(span, boom)
	span.End()

	require.ErrorIs(t, err, boom)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)

	_, span = provider.Tracer("test").Start(context.Background(), "ok")
	require.NoError(t, tracing.Fail(span, nil))
	span.End()
	assert.Equal(t, codes.Unset, recorder.Ended()[1].Status().Code)
}
