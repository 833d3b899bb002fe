package serverseeker

import "time"

// UserInfo describes the account behind the API key and its daily quotas.
// Quotas reset at midnight UTC; the counters are a snapshot taken by the service.
type UserInfo struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`

	RequestsPerDayServerInfo int `json:"requests_per_day_server_info"`
	RequestsPerDayServers    int `json:"requests_per_day_servers"`
	RequestsPerDayWhereIs    int `json:"requests_per_day_whereis"`

	RequestsMadeServerInfo int `json:"requests_made_server_info"`
	RequestsMadeServers    int `json:"requests_made_servers"`
	RequestsMadeWhereIs    int `json:"requests_made_whereis"`
}

// Quota is the daily allowance and usage for one endpoint.
type Quota struct {
	Endpoint string `json:"endpoint"`
	Limit    int    `json:"limit"`
	Used     int    `json:"used"`
}

// Remaining returns how many requests are left today, never below zero.
func (q Quota) Remaining() int {
	if q.Used >= q.Limit {
		return 0
	}
	return q.Limit - q.Used
}

// Quotas returns the per-endpoint quotas in a stable order.
func (u *UserInfo) Quotas() []Quota {
	return []Quota{
		{Endpoint: EndpointServerInfo, Limit: u.RequestsPerDayServerInfo, Used: u.RequestsMadeServerInfo},
		{Endpoint: EndpointServers, Limit: u.RequestsPerDayServers, Used: u.RequestsMadeServers},
		{Endpoint: EndpointWhereIs, Limit: u.RequestsPerDayWhereIs, Used: u.RequestsMadeWhereIs},
	}
}

// Sighting records a player seen on a server.
type Sighting struct {
	Server   string `json:"server"`
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	LastSeen int64  `json:"last_seen"`
}

// LastSeenTime returns LastSeen as a time.Time.
func (s Sighting) LastSeenTime() time.Time {
	return time.Unix(s.LastSeen, 0)
}

// ServerSummary is one row of a server search.
type ServerSummary struct {
	Server        string `json:"server"`
	Cracked       bool   `json:"cracked"`
	Description   string `json:"description"`
	LastSeen      int64  `json:"last_seen"`
	MaxPlayers    int    `json:"max_players"`
	OnlinePlayers int    `json:"online_players"`
	Protocol      int    `json:"protocol"`
	Version       string `json:"version"`
}

// LastSeenTime returns LastSeen as a time.Time.
func (s ServerSummary) LastSeenTime() time.Time {
	return time.Unix(s.LastSeen, 0)
}

// PlayerSighting is one entry of a server's player history.
type PlayerSighting struct {
	Name     string `json:"name"`
	UUID     string `json:"uuid"`
	LastSeen int64  `json:"last_seen"`
}

// LastSeenTime returns LastSeen as a time.Time.
func (p PlayerSighting) LastSeenTime() time.Time {
	return time.Unix(p.LastSeen, 0)
}

// ServerDetail is a server summary plus its player history, in API order.
type ServerDetail struct {
	ServerSummary
	Players []PlayerSighting `json:"players"`
}

// dataEnvelope is the {"data": [...]} wrapper used by list endpoints.
type dataEnvelope[T any] struct {
	Data []T `json:"data"`
}
