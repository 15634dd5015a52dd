package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "test-key"
	h := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector(clock.NewRealClock()))(okHandler)

	tests := []struct {
		name   string
		path   string
		header string
		value  string
		status int
	}{
		{"valid api key", "/api/v1/state", HeaderAPIKey, apiKey, http.StatusOK},
		{"valid bearer token", "/api/v1/state", HeaderAuthorization, "Bearer " + apiKey, http.StatusOK},
		{"wrong key", "/api/v1/state", HeaderAPIKey, "nope", http.StatusUnauthorized},
		{"missing key", "/api/v1/state", "", "", http.StatusUnauthorized},
		{"basic auth is not a bearer", "/api/v1/state", HeaderAuthorization, "Basic " + apiKey, http.StatusUnauthorized},
		{"healthz is public", "/healthz", "", "", http.StatusOK},
		{"readyz is public", "/readyz", "", "", http.StatusOK},
		{"version is public", "/version", "", "", http.StatusOK},
		{"metrics is public", "/metrics", "", "", http.StatusOK},
		{"public prefix is not public", "/healthz-admin", "", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	h := SecurityLoggingMiddleware(nil, NewSuspiciousActivityDetector(clock.NewRealClock()))(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < RateLimitPerWindow; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	other := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code, "limits are per client")
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	clk := clock.NewSimulatedClock(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC))
	d := NewSuspiciousActivityDetector(clk)

	for i := 0; i < RateLimitPerWindow; i++ {
		require.True(t, d.RecordRequest("10.1.1.1"))
	}
	assert.False(t, d.RecordRequest("10.1.1.1"))

	d.RecordFailedAuth("10.1.1.1")
	d.RecordFailedAuth("10.1.1.1")
	assert.Equal(t, 2, d.FailedAuthCount("10.1.1.1"))

	clk.Advance(RateLimitWindow)
	assert.False(t, d.RecordRequest("10.1.1.1"), "window is still open at its exact end")

	clk.Advance(time.Second)
	assert.True(t, d.RecordRequest("10.1.1.1"))
	assert.Zero(t, d.FailedAuthCount("10.1.1.1"))
}

func TestAuthMiddleware_CountsFailures(t *testing.T) {
	d := NewSuspiciousActivityDetector(clock.NewRealClock())
	h := AuthMiddleware("k", nil, d)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	for i := 0; i < 3; i++ {
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	assert.Equal(t, 3, d.FailedAuthCount("198.51.100.7"))
}

func TestExtractIP(t *testing.T) {
	trusted := []string{"10.0.0.1"}

	direct := httptest.NewRequest(http.MethodGet, "/", nil)
	direct.RemoteAddr = "203.0.113.9:5000"
	direct.Header.Set(HeaderForwardedFor, "1.2.3.4")
	assert.Equal(t, "203.0.113.9", extractIP(direct, trusted), "untrusted peers cannot spoof")

	proxied := httptest.NewRequest(http.MethodGet, "/", nil)
	proxied.RemoteAddr = "10.0.0.1:5000"
	proxied.Header.Set(HeaderForwardedFor, "1.2.3.4, 5.6.7.8")
	assert.Equal(t, "5.6.7.8", extractIP(proxied, trusted))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("small")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	loggingMiddleware(okHandler).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, RedactedValue)
}

func TestLoggingMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	loggingMiddleware(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, buf.String())
}
