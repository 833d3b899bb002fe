package serverseeker

import (
	"context"
	"fmt"
	"log/slog"
)

type serversRequest struct {
	*ServerFilter
	APIKey string `json:"api_key"`
}

// Servers searches for servers matching filter. It does not return player lists;
// use ServerInfo for that. A nil filter sends the API key alone.
func (c *Client) Servers(ctx context.Context, filter *ServerFilter) ([]ServerSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	req := serversRequest{
		ServerFilter: filter,
		APIKey:       c.apiKey,
	}

	var resp dataEnvelope[ServerSummary]
	if err := c.post(ctx, EndpointServers, req, &resp); err != nil {
		return nil, fmt.Errorf("servers: %w", err)
	}

	slog.Debug("server search completed", "results", len(resp.Data))

	return resp.Data, nil
}
