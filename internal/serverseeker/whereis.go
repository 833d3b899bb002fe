package serverseeker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// MaxWhereIsResults is the number of rows the API returns at most for a whereis query.
const MaxWhereIsResults = 1000

// WhereIsMode selects which player field a whereis query searches.
type WhereIsMode int

const (
	// ByName searches by player name.
	ByName WhereIsMode = iota
	// ByUUID searches by player UUID.
	ByUUID
)

// String returns the request field name for the mode.
func (m WhereIsMode) String() string {
	switch m {
	case ByName:
		return "name"
	case ByUUID:
		return "uuid"
	default:
		return fmt.Sprintf("WhereIsMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m WhereIsMode) Valid() bool {
	return m == ByName || m == ByUUID
}

// ParseWhereIsMode parses "name" or "uuid".
func ParseWhereIsMode(s string) (WhereIsMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return ByName, nil
	case "uuid":
		return ByUUID, nil
	default:
		return 0, invalidArgument("unknown whereis mode %q (must be name or uuid)", s)
	}
}

// WhereIs returns the servers a player has been seen on, at most MaxWhereIsResults rows.
// The query is sent as-is; its format is not checked.
func (c *Client) WhereIs(ctx context.Context, mode WhereIsMode, query string) ([]Sighting, error) {
	if !mode.Valid() {
		return nil, invalidArgument("whereis mode %d is not name or uuid", int(mode))
	}

	// Exactly one of name/uuid is present, even for an empty query.
	req := map[string]string{
		"api_key":     c.apiKey,
		mode.String(): query,
	}

	var resp dataEnvelope[Sighting]
	if err := c.post(ctx, EndpointWhereIs, req, &resp); err != nil {
		return nil, fmt.Errorf("whereis: %w", err)
	}

	slog.Debug("whereis completed", "mode", mode, "results", len(resp.Data))

	return resp.Data, nil
}
