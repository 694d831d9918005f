package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taodash/subnet-indexer/internal/observability/metrics"
)

type testClient struct {
	baseURL string
}

func (c *testClient) GetBaseURL() string {
	return c.baseURL
}

func (c *testClient) GetDefaultRequestTimeout() time.Duration {
	return time.Second
}

func (c *testClient) GetHttpClient() *http.Client {
	return &http.Client{}
}

type empty struct{}

type echoResponse struct {
	Value string `json:"value"`
}

func TestSendRequest(t *testing.T) {
	metrics.Init(":0")

	newServer := func(t *testing.T, status int, body string) *httptest.Server {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.Header.Get("Authorization"))
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		t.Cleanup(server.Close)
		return server
	}
	opts := &HttpClientOptions{
		Path:         "/echo?x=1",
		TemplatePath: "/echo",
		Headers:      map[string]string{"Authorization": "secret"},
	}

	t.Run("ok", func(t *testing.T) {
		server := newServer(t, http.StatusOK, `{"value":"hello"}`)
		resp, err := SendRequest[empty, echoResponse](t.Context(), &testClient{server.URL}, http.MethodGet, opts, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello", resp.Value)
	})
	t.Run("rate limited", func(t *testing.T) {
		server := newServer(t, http.StatusTooManyRequests, `{}`)
		_, err := SendRequest[empty, echoResponse](t.Context(), &testClient{server.URL}, http.MethodGet, opts, nil)
		require.Error(t, err)
		assert.True(t, IsRateLimitError(err))
		assert.Contains(t, err.Error(), "rate limit exceeded")
	})
	t.Run("server error", func(t *testing.T) {
		server := newServer(t, http.StatusBadGateway, `oops`)
		_, err := SendRequest[empty, echoResponse](t.Context(), &testClient{server.URL}, http.MethodGet, opts, nil)
		require.Error(t, err)
		assert.False(t, IsRateLimitError(err))

		var clientErr *Error
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, http.StatusBadGateway, clientErr.StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		server := newServer(t, http.StatusOK, `<html>`)
		_, err := SendRequest[empty, echoResponse](t.Context(), &testClient{server.URL}, http.MethodGet, opts, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
	t.Run("transport error", func(t *testing.T) {
		server := newServer(t, http.StatusOK, `{}`)
		server.Close()
		_, err := SendRequest[empty, echoResponse](t.Context(), &testClient{server.URL}, http.MethodGet, opts, nil)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidResponse))
	})
	t.Run("cancelled context", func(t *testing.T) {
		server := newServer(t, http.StatusOK, `{"value":"hello"}`)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := SendRequest[empty, echoResponse](ctx, &testClient{server.URL}, http.MethodGet, opts, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}
