package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	for _, name := range []string{"streamkit", "", "streamkit-cli_01"} {
		t.Run("should set service name "+name, func(t *testing.T) {
			res, err := newResource(name)
			require.NoError(t, err)
			require.NotNil(t, res)

			value, ok := res.Set().Value(semconv.ServiceNameKey)
			require.True(t, ok, "service name attribute not found in resource")
			assert.Equal(t, name, value.AsString())
		})
	}
}

func TestLoggerProvider(t *testing.T) {
	t.Run("should be nil before Init", func(t *testing.T) {
		loggerProvider.Store(nil)
		assert.Nil(t, LoggerProvider())
	})
}

func TestInit(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	defer func() {
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
		loggerProvider.Store(nil)
	}()

	t.Run("should return a shutdown func or an exporter error", func(t *testing.T) {
		shutdown, err := Init(context.Background(), "streamkit-test")
		if err != nil {
			// Exporter creation may fail when no OTLP endpoint is configured.
			t.Logf("Init() failed: %v", err)
			return
		}

		require.NotNil(t, shutdown)
		assert.NotNil(t, LoggerProvider())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			// Flushing fails when the collector is unreachable.
			t.Logf("shutdown returned: %v", err)
		}
		assert.Nil(t, LoggerProvider())
	})
}
