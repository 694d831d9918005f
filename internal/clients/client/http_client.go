package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taodash/subnet-indexer/internal/observability/metrics"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 10 << 20

// ErrInvalidResponse is returned when a response body can't be decoded.
var ErrInvalidResponse = errors.New("invalid response")

type BaseClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Path string
	// TemplatePath is used as metrics label so it must not contain request parameters.
	TemplatePath string
	Timeout      time.Duration
	Headers      map[string]string
}

// Error is returned for responses with a non 2xx status code.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func IsRateLimitError(err error) bool {
	var target *Error
	return errors.As(err, &target) && target.StatusCode == http.StatusTooManyRequests
}

func SendRequest[I any, R any](
	ctx context.Context, client BaseClientInterface, method string, opts *HttpClientOptions, input *I,
) (*R, error) {
	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	url := client.GetBaseURL() + opts.Path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", opts.TemplatePath, err)
	}
	req.Header.Set("Accept", "application/json")
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	observe := metrics.StartClientRequestDurationTimer(client.GetBaseURL(), method, opts.TemplatePath)
	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		observe(0)
		return nil, fmt.Errorf("failed to send request to %s: %w", opts.TemplatePath, err)
	}
	defer resp.Body.Close()
	observe(resp.StatusCode)

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", opts.TemplatePath, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("rate limit exceeded when calling %s", opts.TemplatePath),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d when calling %s", resp.StatusCode, opts.TemplatePath),
		}
	}

	var result R
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w from %s: %v", ErrInvalidResponse, opts.TemplatePath, err)
	}

	return &result, nil
}
