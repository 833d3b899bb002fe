package servers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/serverseeker"
)

// FilterFlags holds the search filter flags shared by search and browse.
type FilterFlags struct {
	OnlinePlayers string
	MaxPlayers    string
	Cracked       bool
	Protocol      int
	Software      string
	Description   string
	OnlineAfter   int64
	Country       string
	ASN           int
}

// register adds the filter flags to cmd.
func (f *FilterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.OnlinePlayers, "online-players", "", "Online players: N, MIN-MAX, or MIN-inf")
	flags.StringVar(&f.MaxPlayers, "max-players", "", "Player slots: N, MIN-MAX, or MIN-inf")
	flags.BoolVar(&f.Cracked, "cracked", false, "Only cracked (offline-mode) servers; --cracked=false for premium only")
	flags.IntVar(&f.Protocol, "protocol", 0, "Protocol version (e.g. 765 for 1.20.4)")
	flags.StringVar(&f.Software, "software", "", "Server software: any, vanilla, paper, spigot, bukkit")
	flags.StringVar(&f.Description, "description", "", "Text the server description must contain")
	flags.Int64Var(&f.OnlineAfter, "online-after", 0, "Unix timestamp; include servers seen since then (0 for any time)")
	flags.StringVar(&f.Country, "country", "", "ISO 3166-1 alpha-2 country code (e.g. DE)")
	flags.IntVar(&f.ASN, "asn", 0, "Autonomous system number")

	cmd.MarkFlagsMutuallyExclusive("country", "asn")
}

// build converts the flags that were set on cmd into a ServerFilter.
func (f *FilterFlags) build(cmd *cobra.Command) (*serverseeker.ServerFilter, error) {
	changed := cmd.Flags().Changed
	filter := &serverseeker.ServerFilter{}

	if changed("online-players") {
		r, err := serverseeker.ParsePlayerRange(f.OnlinePlayers)
		if err != nil {
			return nil, fmt.Errorf("--online-players: %w", err)
		}
		filter.OnlinePlayers = &r
	}

	if changed("max-players") {
		r, err := serverseeker.ParsePlayerRange(f.MaxPlayers)
		if err != nil {
			return nil, fmt.Errorf("--max-players: %w", err)
		}
		filter.MaxPlayers = &r
	}

	if changed("cracked") {
		cracked := f.Cracked
		filter.Cracked = &cracked
	}

	if changed("protocol") {
		protocol := f.Protocol
		filter.Protocol = &protocol
	}

	filter.Software = serverseeker.Software(strings.ToLower(strings.TrimSpace(f.Software)))
	filter.Description = f.Description

	if changed("online-after") {
		after := f.OnlineAfter
		filter.OnlineAfter = &after
	}

	filter.CountryCode = strings.ToUpper(strings.TrimSpace(f.Country))
	if filter.CountryCode != "" && len(filter.CountryCode) != 2 {
		return nil, fmt.Errorf("--country must be a two-letter code, got %q", f.Country)
	}

	if changed("asn") {
		asn := f.ASN
		filter.ASN = &asn
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return filter, nil
}
