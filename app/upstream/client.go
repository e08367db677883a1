package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	defaultNewsBaseURL    = "https://newsapi.org/v2/top-headlines"

	requestTimeout = 10 * time.Second
)

// Client issues single GET requests against the two upstream providers and
// decodes their responses. Base URLs are exported so tests can point at stub
// servers.
type Client struct {
	WeatherBaseURL string
	NewsBaseURL    string

	httpClient    *http.Client
	weatherAPIKey string
	newsAPIKey    string
}

func NewClient(weatherAPIKey, newsAPIKey string) *Client {
	return &Client{
		WeatherBaseURL: defaultWeatherBaseURL,
		NewsBaseURL:    defaultNewsBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		weatherAPIKey: weatherAPIKey,
		newsAPIKey:    newsAPIKey,
	}
}

// get performs one GET with the bounded client timeout. Any non-200 status is
// reported as ErrNotFound; transport failures come back wrapped unchanged.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrNotFound, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return body, nil
}
