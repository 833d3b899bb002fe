package serverseeker

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// DefaultPort is the default Minecraft Java Edition server port.
const DefaultPort = 25565

type serverInfoRequest struct {
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key"`
}

// ServerInfo returns a server's details and player history.
// A port of 0 means DefaultPort. The ip is not checked.
func (c *Client) ServerInfo(ctx context.Context, ip string, port int) (*ServerDetail, error) {
	if port == 0 {
		port = DefaultPort
	}

	req := serverInfoRequest{
		IP:     ip,
		Port:   port,
		APIKey: c.apiKey,
	}

	var detail ServerDetail
	if err := c.post(ctx, EndpointServerInfo, req, &detail); err != nil {
		return nil, fmt.Errorf("server info: %w", err)
	}

	return &detail, nil
}

// ServerInfoAddr is ServerInfo with the port given as text, e.g. from a flag or
// config file. An empty port means DefaultPort.
func (c *Client) ServerInfoAddr(ctx context.Context, ip, port string) (*ServerDetail, error) {
	p, err := ParsePort(port)
	if err != nil {
		return nil, err
	}
	return c.ServerInfo(ctx, ip, p)
}

// ParsePort converts a numeric port string to an integer. Empty input yields DefaultPort.
func ParsePort(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidArgument("port %q is not a number", s)
	}

	return port, nil
}

// SplitAddress splits a "host:port" server address as returned in search
// results. A bare host gets DefaultPort.
func SplitAddress(addr string) (string, int, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", 0, invalidArgument("empty server address")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		// No port present (or an unbracketed IPv6 literal).
		if strings.Count(addr, ":") != 1 {
			return strings.Trim(addr, "[]"), DefaultPort, nil
		}
		return "", 0, invalidArgument("invalid server address %q: %v", addr, err)
	}

	port, err := ParsePort(portStr)
	if err != nil {
		return "", 0, err
	}

	return host, port, nil
}
