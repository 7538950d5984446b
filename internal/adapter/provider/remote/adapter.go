// Package remote is the client of the outbound flight search endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the remote search endpoint.
const ProviderName = "remote"

// DefaultEndpoint is the search endpoint used when none is configured.
const DefaultEndpoint = "https://api.tbp.travel/flights"

// maxErrorBody bounds how much of an error response is kept for the message.
const maxErrorBody = 2048

// Config configures the client.
type Config struct {
	Endpoint string

	// Timeout bounds each HTTP attempt
	Timeout time.Duration

	// MaxAttempts counts the first attempt; values below 1 mean one attempt
	MaxAttempts int

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Client posts search parameters to the endpoint and decodes the offers.
type Client struct {
	endpoint string
	http     *http.Client
	retry    retry.Config
	log      zerolog.Logger
}

// NewClient creates a Client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		endpoint: endpoint,
		http:     client,
		log:      log.With().Str("provider", ProviderName).Logger(),
	}
	c.retry = retry.SearchConfig.
		WithMaxAttempts(cfg.MaxAttempts).
		WithRetryIf(domain.IsRetryable).
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			c.log.Debug().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("retrying flight search")
		})
	return c
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// Search posts params as JSON and returns the offers of the response.
// Transport failures, timeouts, 429 and 5xx answers are retryable; other
// failures are returned immediately.
func (c *Client) Search(ctx context.Context, params domain.SearchParams) ([]domain.FlightResult, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("encode search params: %w", err))
	}

	payloads, err := retry.DoWithResult(ctx, func() ([]flightPayload, error) {
		return c.fetchOnce(ctx, body)
	}, c.retry)
	if err != nil {
		var pe *domain.ProviderError
		switch {
		case errors.As(err, &pe):
			return nil, err
		case errors.Is(err, context.DeadlineExceeded):
			return nil, domain.NewProviderTimeoutError(ProviderName)
		default:
			return nil, domain.NewProviderError(ProviderName, err)
		}
	}

	results, skipped := normalize(payloads, params)
	if skipped > 0 {
		c.log.Warn().Int("skipped", skipped).Int("kept", len(results)).Msg("dropped malformed offers")
	}
	return results, nil
}

func (c *Client) fetchOnce(ctx context.Context, body []byte) ([]flightPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.NewProviderTimeoutError(ProviderName)
		}
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := fmt.Errorf("%w: %s: %s", domain.ErrProviderUnavailable, resp.Status, strings.TrimSpace(string(msg)))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, domain.NewRetryableProviderError(ProviderName, statusErr)
		}
		return nil, domain.NewProviderError(ProviderName, statusErr)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("read response: %w", err))
	}
	payloads, err := decodeOffers(raw)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode response: %w", err))
	}
	return payloads, nil
}

// decodeOffers accepts either a bare array of offers or {"flights": [...]}.
func decodeOffers(raw []byte) ([]flightPayload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelopeResponse
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		return env.Flights, nil
	}

	var offers []flightPayload
	if err := json.Unmarshal(trimmed, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Ensure Client implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Client)(nil)
