package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func restoreLogger(t *testing.T) {
	prev, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLoggerProductionWritesJSON(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	InitLoggerTo(&buf, "painel-bi", "production")

	GetLogger().Info().Msg("ready")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "painel-bi", line["service"])
	assert.Equal(t, "ready", line["message"])
}

func TestInitLoggerDevelopmentUsesConsole(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	InitLoggerTo(&buf, "painel-bi", "development")

	GetLogger().Debug().Msg("debugging")

	assert.Contains(t, buf.String(), "debugging")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestLoggerFromContextAddsTraceIDs(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	InitLoggerTo(&buf, "painel-bi", "production")

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	LoggerFromContext(ctx).Info().Msg("traced")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, traceID.String(), line["trace_id"])
	assert.Equal(t, spanID.String(), line["span_id"])

	buf.Reset()
	LoggerFromContext(context.Background()).Info().Msg("plain")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestTracerDisabledIsNoop(t *testing.T) {
	require.NoError(t, InitTracer(context.Background(), TracingConfig{Enabled: false}))
	require.NoError(t, ShutdownTracer(context.Background()))
}
