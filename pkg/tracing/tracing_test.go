package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown, err := InitTracer(Options{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	// noop Provider下StartSpan依然可用，只是没有有效的TraceID
	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()
	assert.Empty(t, ExtractTraceID(ctx))
}

func TestSpansExported(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp, err := newProvider(exporter, "modelstore-test", 1)
	require.NoError(t, err)

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	t.Run("父子Span共享TraceID", func(t *testing.T) {
		ctx, parent := StartSpan(context.Background(), "http.request")
		childCtx, child := StartSpan(ctx, "catalog.ListProducts")

		assert.NotEmpty(t, ExtractTraceID(ctx))
		assert.Equal(t, ExtractTraceID(ctx), ExtractTraceID(childCtx))

		child.End()
		parent.End()
	})

	require.NoError(t, tp.ForceFlush(context.Background()))
	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "catalog.ListProducts", spans[0].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())

	require.NoError(t, tp.Shutdown(context.Background()))
}
