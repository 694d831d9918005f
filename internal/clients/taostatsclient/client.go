package taostatsclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/taodash/subnet-indexer/internal/clients/client"
	"github.com/taodash/subnet-indexer/internal/config"
)

const (
	subnetsEndpoint = "/api/dtao/dtaoSubnets"
	priceEndpoint   = "/api/price/price"
)

// ErrNoData is returned when upstream answers without a usable data element.
var ErrNoData = errors.New("no data returned")

type Client struct {
	httpClient *http.Client
	cfg        *config.TaostatsConfig
}

func (c *Client) GetBaseURL() string {
	return strings.TrimSuffix(c.cfg.URL, "/")
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func NewClient(cfg *config.TaostatsConfig) *Client {
	if cfg == nil {
		cfg = config.DefaultTaostatsConfig()
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) headers() map[string]string {
	if c.cfg.APIKey == "" {
		return nil
	}
	return map[string]string{"Authorization": c.cfg.APIKey}
}

func (c *Client) GetSubnet(ctx context.Context, netuid uint32) (*SubnetPayload, error) {
	type empty struct{}

	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf("%s?netuid=%d", subnetsEndpoint, netuid),
		TemplatePath: subnetsEndpoint,
		Headers:      c.headers(),
	}

	resp, err := client.SendRequest[empty, subnetsResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subnet %d: %w", netuid, err)
	}

	if len(resp.Data) == 0 || resp.Data[0] == nil {
		return nil, fmt.Errorf("subnet %d: %w", netuid, ErrNoData)
	}

	return resp.Data[0], nil
}

func (c *Client) GetPrice(ctx context.Context) (*Price, error) {
	type empty struct{}

	callForPrice := func() (*Price, error) {
		opts := &client.HttpClientOptions{
			Path:         priceEndpoint,
			TemplatePath: priceEndpoint,
			Headers:      c.headers(),
		}

		resp, err := client.SendRequest[empty, priceResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return nil, err
		}

		if len(resp.Data) == 0 || resp.Data[0] == nil {
			return nil, fmt.Errorf("price: %w", ErrNoData)
		}

		return resp.Data[0], nil
	}

	result, err := clientCallWithRetry(ctx, callForPrice, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}

	return result, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.TaostatsConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(client.IsRateLimitError),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("rate limit exceeded, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
