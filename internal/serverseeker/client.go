package serverseeker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default ServerSeeker API base URL.
	DefaultBaseURL = "https://api.serverseeker.net"

	// UserAgent is the user agent string sent when no version is known.
	UserAgent = "serverseeker-go (" + projectURL + ")"

	projectURL = "https://github.com/steviee/serverseeker"

	// maxErrorBody bounds how much of a failed response is kept as the error message.
	maxErrorBody = 4096
)

// Endpoint paths relative to the base URL.
const (
	EndpointUserInfo   = "user_info"
	EndpointWhereIs    = "whereis"
	EndpointServers    = "servers"
	EndpointServerInfo = "server_info"
)

// Client is a ServerSeeker API client. It holds no mutable state and may be
// used from multiple goroutines.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Config holds client configuration.
type Config struct {
	BaseURL string

	// Timeout bounds each request. Zero leaves requests bounded only by
	// their context and the transport.
	Timeout   time.Duration
	UserAgent string

	// HTTPClient replaces the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient creates a new ServerSeeker API client using apiKey for every request.
func NewClient(apiKey string, config *Config) *Client {
	var cfg Config
	if config != nil {
		cfg = *config
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = UserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	slog.Debug("creating ServerSeeker API client",
		"base_url", cfg.BaseURL,
		"timeout", httpClient.Timeout)

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
	}
}

// UserAgentFor returns the user agent string for a build version.
func UserAgentFor(version string) string {
	if version == "" {
		return UserAgent
	}
	return "serverseeker-go/" + version + " (" + projectURL + ")"
}

// BaseURL returns the API base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// post sends body as JSON to the endpoint and decodes a successful response into out.
func (c *Client) post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	url := c.baseURL + "/" + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	slog.Debug("serverseeker API request", "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkResponse(resp); err != nil {
		return err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s response: %w", ErrTransport, endpoint, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrParse, endpoint, err)
	}

	return nil
}

// checkResponse turns a non-2xx response into an *APIError without parsing the body as JSON.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		slog.Debug("serverseeker API rate limit exceeded")
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return NewAPIError(resp.StatusCode, message)
}
