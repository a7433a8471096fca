package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/neexbeast/flight-lookup/internal/config"
)

const defaultHTTPTimeout = 10 * time.Second

// Client queries the AviationStack flights endpoint.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client from the upstream configuration.
func NewClient(cfg config.AviationStack) *Client {
	return NewClientWithHTTP(cfg, nil)
}

// NewClientWithHTTP constructs a Client that sends requests through hc (for tests).
// A nil hc gets a client with the configured timeout.
func NewClientWithHTTP(cfg config.AviationStack, hc *http.Client) *Client {
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{apiKey: cfg.APIKey, baseURL: cfg.BaseURL, client: hc}
}

// fetch returns every record the provider holds for flightIATA.
// The identifier is forwarded as given; an empty slice means no match.
func (c *Client) fetch(ctx context.Context, flightIATA string) ([]upstreamFlight, error) {
	req, err := c.buildRequest(ctx, flightIATA)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET flights for %s: %w", flightIATA, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET flights for %s returned status %d: %s",
			flightIATA, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding flights response for %s: %w", flightIATA, err)
	}

	if payload.Error != nil {
		return nil, fmt.Errorf("flights for %s: %w", flightIATA, payload.Error)
	}

	return payload.Data, nil
}

func (c *Client) buildRequest(ctx context.Context, flightIATA string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating flights request: %w", err)
	}

	q := req.URL.Query()
	q.Set("access_key", c.apiKey)
	q.Set("flight_iata", flightIATA)
	req.URL.RawQuery = q.Encode()

	return req, nil
}
