package pixel

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSink(t *testing.T, endpoint string) service.ConversionSink {
	t.Helper()

	return New(Params{
		Config: &config.Config{
			Pixel: &config.PixelConfig{
				PixelID:     "1234567890",
				AccessToken: "test-token",
				Endpoint:    endpoint,
			},
		},
		Logger: newTestLogger(),
	})
}

func TestMetaSink_TrackSendsConversionEvent(t *testing.T) {
	t.Parallel()

	var captured conversionPayload
	var capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := newTestSink(t, server.URL)

	err := sink.Track(context.Background(), service.ConversionAddToCart, map[string]any{
		"content_name": "Widget",
		"value":        120.0,
		"currency":     "BDT",
	})

	require.NoError(t, err)
	assert.Equal(t, "/1234567890/events", capturedPath)
	require.Len(t, captured.Data, 1)
	assert.Equal(t, service.ConversionAddToCart, captured.Data[0].EventName)
	assert.Equal(t, "website", captured.Data[0].ActionSource)
	assert.Equal(t, "Widget", captured.Data[0].CustomData["content_name"])
	assert.InDelta(t, time.Now().Unix(), captured.Data[0].EventTime, 5)
}

func TestMetaSink_TrackReturnsErrorOnNonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad pixel", http.StatusBadRequest)
	}))
	defer server.Close()

	sink := newTestSink(t, server.URL)

	err := sink.Track(context.Background(), service.ConversionPageView, nil)

	assert.Error(t, err)
}

func TestNew_ReturnsNoopWhenPixelUnconfigured(t *testing.T) {
	t.Parallel()

	sink := New(Params{
		Config: &config.Config{},
		Logger: newTestLogger(),
	})

	assert.NoError(t, sink.Track(context.Background(), service.ConversionSearch, nil))
}
