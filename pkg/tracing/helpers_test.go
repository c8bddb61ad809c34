package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"

	"github.com/synthapp/synth/config"
)

func TestStartServiceSpan(t *testing.T) {
	ctx, span := StartServiceSpan(context.Background(), "EventService", "SearchEvents")
	defer span.End()

	require.NotNil(t, span)
	assert.Equal(t, span, trace.FromContext(ctx))
}

func TestEndSpan(t *testing.T) {
	_, span := StartServiceSpan(context.Background(), "EventService", "GetEvent")
	assert.NotPanics(t, func() { EndSpan(span, errors.New("boom")) })

	_, span = StartServiceSpan(context.Background(), "EventService", "GetEvent")
	assert.NotPanics(t, func() { EndSpan(span, nil) })
}

func TestAddAttributeAndMarkSpanError(t *testing.T) {
	// no span in context is a no-op
	assert.NotPanics(t, func() {
		AddAttribute(context.Background(), "user.id", "u1")
		MarkSpanError(context.Background(), errors.New("boom"))
	})

	ctx, span := StartServiceSpan(context.Background(), "CityService", "Nearby")
	defer span.End()
	assert.NotPanics(t, func() {
		AddAttribute(ctx, "count", 3)
		AddAttribute(ctx, "ok", true)
		AddAttribute(ctx, "radius", 25.5)
		AddAttribute(ctx, "elapsed", 1500*time.Millisecond)
		MarkSpanError(ctx, nil)
		MarkSpanError(ctx, errors.New("boom"))
	})
}

func TestAttribute(t *testing.T) {
	assert.Equal(t, trace.StringAttribute("city", "Austin"), attribute("city", "Austin"))
	assert.Equal(t, trace.Int64Attribute("limit", 20), attribute("limit", 20))
	assert.Equal(t, trace.Float64Attribute("lat", 30.27), attribute("lat", 30.27))
	assert.Equal(t, trace.Int64Attribute("elapsed", 1500), attribute("elapsed", 1500*time.Millisecond))
	assert.Equal(t, trace.StringAttribute("ids", "[a b]"), attribute("ids", []string{"a", "b"}))
}

func TestWrapHTTPClient(t *testing.T) {
	client := WrapHTTPClient(&http.Client{Timeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, client.Timeout)
	assert.NotNil(t, client.Transport)

	assert.Equal(t, 30*time.Second, WrapHTTPClient(nil).Timeout)
}

func TestWrapHTTPClientRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := WrapHTTPClient(nil).Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInitTracingDisabled(t *testing.T) {
	assert.NoError(t, InitTracing(&config.TracingConfig{Enabled: false}))
}
