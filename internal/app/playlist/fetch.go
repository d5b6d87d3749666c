package playlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client fetches the upstream playlist over HTTP.
type Client struct {
	httpClient *http.Client      // HTTP client, defaults to http.DefaultClient
	headers    map[string]string // custom request headers from configuration
}

func NewClient(httpClient *http.Client, headers map[string]string) *Client {
	c := Client{
		httpClient: httpClient,
		headers:    headers,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return &c
}

// Fetch retrieves the playlist from playlistURL and parses its entries.
// A transport or HTTP-status failure is fatal for the run; no retries.
func (c *Client) Fetch(ctx context.Context, playlistURL string) ([]Channel, error) {
	// Create the request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, playlistURL, nil)
	if err != nil {
		return nil, err
	}

	// Set custom headers
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	// Execute the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status code: %d", resp.StatusCode)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	channels := ParseM3U(string(result))
	if len(channels) == 0 {
		return nil, fmt.Errorf("failed to extract channel list")
	}
	return channels, nil
}
