package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	emulatorBaseURL = "http://10.0.2.2:3333"
	defaultBaseURL  = "http://localhost:3333"
)

// Client talks to the product catalog backend. It is stateless beyond its
// one-time construction and safe to share.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds the catalog client. An explicit baseURL wins; otherwise the
// address is derived from the emulator flag, where the host machine is
// reachable through 10.0.2.2 instead of localhost.
func New(baseURL string, emulator bool) *Client {
	if baseURL == "" {
		if emulator {
			baseURL = emulatorBaseURL
		} else {
			baseURL = defaultBaseURL
		}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// BaseURL reports the address the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON issues a GET against the configured base and decodes the JSON
// response body into out. Non-2xx responses are returned as errors.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog request %s failed with status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
