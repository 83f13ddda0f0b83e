// Package restcountries is the HTTP client for the REST Countries v3.1 API.
//
// The client issues one request per call and performs no retries; callers
// decide what a failure means. Responses are decoded into country.Country
// with a fixed field projection so payloads stay small.
package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"atlascope/internal/country"
)

// DefaultBaseURL is the public REST Countries endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// fields requested on every query. Everything outside this projection is
// never inspected by atlascope.
const fieldProjection = "cca3,name,capital,population,area,region,subregion,flags,languages,currencies"

const defaultTimeout = 30 * time.Second

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("restcountries: HTTP %d for %s", e.Status, e.URL)
}

// Client talks to the REST Countries API.
// Safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a Client. An empty baseURL selects the public endpoint;
// timeout <= 0 selects the default. Requests are rate limited to stay a
// polite citizen of a free public API.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
	}
}

// All returns every country.
func (c *Client) All(ctx context.Context) ([]country.Country, error) {
	return c.get(ctx, "/all", nil)
}

// ByRegion returns countries in the given region (e.g. "Europe").
func (c *Client) ByRegion(ctx context.Context, region string) ([]country.Country, error) {
	return c.get(ctx, "/region/"+url.PathEscape(region), nil)
}

// ByCodes returns countries matching the given cca3 codes. An empty code
// list short-circuits to an empty result without touching the network.
func (c *Client) ByCodes(ctx context.Context, codes []string) ([]country.Country, error) {
	if len(codes) == 0 {
		return []country.Country{}, nil
	}
	q := url.Values{}
	q.Set("codes", strings.Join(codes, ","))
	return c.get(ctx, "/alpha", q)
}

// SearchByName searches countries by name fragment. The API answers 404
// when nothing matches; that is normalized to an empty result, not an error.
func (c *Client) SearchByName(ctx context.Context, query string) ([]country.Country, error) {
	result, err := c.get(ctx, "/name/"+url.PathEscape(query), nil)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return []country.Country{}, nil
		}
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]country.Country, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("fields", fieldProjection)
	u := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "atlascope/0.1")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, URL: u}
	}

	var result []country.Country
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
