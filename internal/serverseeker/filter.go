package serverseeker

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Unbounded is the wire value for a range without an upper limit.
const Unbounded = "inf"

// PlayerRange is a player-count constraint: an exact count or a [min, max]
// range whose upper end may be unbounded. The zero value is not a valid
// range; build one with Exactly, Between, AtLeast or ParsePlayerRange.
type PlayerRange struct {
	lo, hi    int
	exact     bool
	unbounded bool
	set       bool
}

// Exactly matches a single player count.
func Exactly(n int) PlayerRange {
	return PlayerRange{lo: n, hi: n, exact: true, set: true}
}

// Between matches counts from lo to hi inclusive.
func Between(lo, hi int) PlayerRange {
	return PlayerRange{lo: lo, hi: hi, set: true}
}

// AtLeast matches counts of lo or more.
func AtLeast(lo int) PlayerRange {
	return PlayerRange{lo: lo, unbounded: true, set: true}
}

// Validate reports an unset range, a negative bound or an upper bound below the lower.
func (r PlayerRange) Validate() error {
	switch {
	case !r.set:
		return invalidArgument("player range is not set")
	case r.lo < 0:
		return invalidArgument("invalid player range %s: lower bound must be non-negative", r)
	case !r.exact && !r.unbounded && r.hi < r.lo:
		return invalidArgument("invalid player range %s: upper bound below lower bound", r)
	}
	return nil
}

// Min returns the lower bound.
func (r PlayerRange) Min() int {
	return r.lo
}

// Max returns the upper bound and false when the range is unbounded.
func (r PlayerRange) Max() (int, bool) {
	if r.unbounded {
		return 0, false
	}
	return r.hi, true
}

// String formats the range in the syntax accepted by ParsePlayerRange.
func (r PlayerRange) String() string {
	switch {
	case r.exact:
		return strconv.Itoa(r.lo)
	case r.unbounded:
		return fmt.Sprintf("%d-%s", r.lo, Unbounded)
	default:
		return fmt.Sprintf("%d-%d", r.lo, r.hi)
	}
}

// MarshalJSON encodes the range as N, [min, max] or [min, "inf"].
func (r PlayerRange) MarshalJSON() ([]byte, error) {
	switch {
	case r.exact:
		return json.Marshal(r.lo)
	case r.unbounded:
		return json.Marshal([]any{r.lo, Unbounded})
	default:
		return json.Marshal([]int{r.lo, r.hi})
	}
}

// ParsePlayerRange parses "5", "5-10", "5-" or "5-inf".
func ParsePlayerRange(s string) (PlayerRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PlayerRange{}, invalidArgument("empty player range")
	}

	loStr, hiStr, isRange := strings.Cut(s, "-")

	lo, err := strconv.Atoi(strings.TrimSpace(loStr))
	if err != nil || lo < 0 {
		return PlayerRange{}, invalidArgument("invalid player range %q: lower bound must be a non-negative integer", s)
	}

	if !isRange {
		return Exactly(lo), nil
	}

	hiStr = strings.TrimSpace(hiStr)
	if hiStr == "" || strings.EqualFold(hiStr, Unbounded) {
		return AtLeast(lo), nil
	}

	hi, err := strconv.Atoi(hiStr)
	if err != nil {
		return PlayerRange{}, invalidArgument("invalid player range %q: upper bound must be an integer or %q", s, Unbounded)
	}
	if hi < lo {
		return PlayerRange{}, invalidArgument("invalid player range %q: upper bound below lower bound", s)
	}

	return Between(lo, hi), nil
}

// Software is a server software name. The set is open; these are the common values.
type Software string

const (
	SoftwareAny     Software = "any"
	SoftwareVanilla Software = "vanilla"
	SoftwarePaper   Software = "paper"
	SoftwareSpigot  Software = "spigot"
	SoftwareBukkit  Software = "bukkit"
)

// ServerFilter narrows a server search. Nil pointers and empty strings are
// left out of the request; the service applies its own defaults for them.
type ServerFilter struct {
	OnlinePlayers *PlayerRange `json:"online_players,omitempty"`
	MaxPlayers    *PlayerRange `json:"max_players,omitempty"`
	Cracked       *bool        `json:"cracked,omitempty"`
	Protocol      *int         `json:"protocol,omitempty"`
	Software      Software     `json:"software,omitempty"`

	// Description matches servers whose description contains this text.
	Description string `json:"description,omitempty"`

	// OnlineAfter is a unix timestamp. Nil returns only servers online now;
	// zero removes the lower bound.
	OnlineAfter *int64 `json:"online_after,omitempty"`

	// CountryCode (ISO 3166-1 alpha-2) and ASN cannot be combined.
	CountryCode string `json:"country_code,omitempty"`
	ASN         *int   `json:"asn,omitempty"`
}

// Validate checks the filter for malformed player ranges and contradictory fields.
func (f *ServerFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.OnlinePlayers != nil {
		if err := f.OnlinePlayers.Validate(); err != nil {
			return fmt.Errorf("online_players: %w", err)
		}
	}
	if f.MaxPlayers != nil {
		if err := f.MaxPlayers.Validate(); err != nil {
			return fmt.Errorf("max_players: %w", err)
		}
	}
	if f.CountryCode != "" && f.ASN != nil {
		return invalidArgument("country_code and asn cannot be used together")
	}
	return nil
}
