// Package mojang resolves Minecraft player names to account UUIDs through
// the public Mojang profile API. ServerSeeker matches names as last seen on a
// server, so resolving first finds a player under every name they have used.
package mojang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the default Mojang API base URL.
	DefaultBaseURL = "https://api.mojang.com"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// UserAgent is the user agent string sent with API requests.
	UserAgent = "serverseeker-go (https://github.com/steviee/serverseeker)"

	maxNameLength = 16
)

// Client is a Mojang API client for name lookups.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Config holds client configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a new Mojang API client.
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{}
	}

	c := &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{Timeout: config.Timeout},
		userAgent:  config.UserAgent,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		c.httpClient.Timeout = DefaultTimeout
	}
	if c.userAgent == "" {
		c.userAgent = UserAgent
	}

	return c
}

// Lookup returns the account currently using name. Matching is case-insensitive;
// the returned Profile carries the name's canonical capitalisation.
func (c *Client) Lookup(ctx context.Context, name string) (*Profile, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/users/profiles/minecraft/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("mojang API request", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAPIUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		var body profileResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}

		// uuid.Parse accepts the undashed 32-digit form Mojang returns.
		id, err := uuid.Parse(body.ID)
		if err != nil {
			return nil, fmt.Errorf("decode response: bad id %q: %w", body.ID, err)
		}

		slog.Debug("mojang lookup success", "name", body.Name, "uuid", id)
		return &Profile{Name: body.Name, UUID: id}, nil

	case http.StatusNoContent, http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)

	case http.StatusTooManyRequests:
		slog.Warn("mojang API rate limit exceeded")
		return nil, ErrRateLimitExceeded

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, NewAPIError(resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

// ValidateName checks a Java Edition player name: 1-16 letters, digits or underscores.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > maxNameLength {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, name, maxNameLength)
	}

	for _, ch := range name {
		isAlpha := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		isDigit := ch >= '0' && ch <= '9'

		if !isAlpha && !isDigit && ch != '_' {
			return fmt.Errorf("%w: %q may only contain letters, digits and underscores", ErrInvalidName, name)
		}
	}

	return nil
}
