package serverseeker

import (
	"context"
	"fmt"
)

type userInfoRequest struct {
	APIKey string `json:"api_key"`
}

// GetUserInfo returns the account information and rate limits for the API key.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.post(ctx, EndpointUserInfo, userInfoRequest{APIKey: c.apiKey}, &info); err != nil {
		return nil, fmt.Errorf("user info: %w", err)
	}
	return &info, nil
}
