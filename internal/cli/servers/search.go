package servers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/serverseeker"
)

// SearchFlags holds all flags for the search command
type SearchFlags struct {
	Filter FilterFlags
	Limit  int
}

// NewSearchCommand creates the servers search subcommand
func NewSearchCommand() *cobra.Command {
	flags := &SearchFlags{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search servers by filter",
		Long: `Search servers by player counts, software, version, location and more.

Player ranges accept N (exact), MIN-MAX, or MIN-inf / MIN- for no upper
bound. Without --online-after only servers online right now are returned.
The result does not include player lists; use 'servers info' for those.`,
		Example: `  # Vanilla servers with 10 to 50 players online
  serverseeker servers search --software vanilla --online-players 10-50

  # Cracked servers on protocol 765 seen at any time
  serverseeker servers search --cracked --protocol 765 --online-after 0

  # Servers in one AS, JSON output
  serverseeker servers search --asn 24940 --json`,
		Aliases: []string{"find"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flags.Filter.build(cmd)
			if err != nil {
				return cmdutil.WriteError(cmd.OutOrStdout(), err)
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), filter, flags.Limit)
		},
	}

	flags.Filter.register(cmd)
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 50, "Maximum results to show (0 for all)")

	return cmd
}

func runSearch(ctx context.Context, stdout io.Writer, filter *serverseeker.ServerFilter, limit int) error {
	if limit < 0 {
		return cmdutil.WriteError(stdout, fmt.Errorf("limit must be >= 0"))
	}

	client, err := cmdutil.NewClient()
	if err != nil {
		return cmdutil.WriteError(stdout, err)
	}

	servers, err := client.Servers(ctx, filter)
	if err != nil {
		return cmdutil.WriteError(stdout, fmt.Errorf("search failed: %w", err))
	}

	total := len(servers)
	if limit > 0 && total > limit {
		servers = servers[:limit]
	}

	if cmdutil.IsJSONMode() {
		return cmdutil.WriteJSON(stdout, map[string]any{
			"servers": servers,
			"count":   len(servers),
			"total":   total,
		})
	}

	return outputSearchTable(stdout, servers, total, time.Now())
}

func outputSearchTable(stdout io.Writer, servers []serverseeker.ServerSummary, total int, now time.Time) error {
	if len(servers) == 0 {
		_, _ = fmt.Fprintln(stdout, "No servers found. Try widening the filter.")
		return nil
	}

	serverWidth := len("SERVER")
	for _, s := range servers {
		serverWidth = max(serverWidth, len(s.Server))
	}

	_, _ = fmt.Fprintln(stdout, cmdutil.Header(fmt.Sprintf("%-*s  %-20s  %9s  %-7s  %-16s  %s",
		serverWidth, "SERVER", "VERSION", "PLAYERS", "CRACKED", "LAST SEEN", "DESCRIPTION")))

	for _, s := range servers {
		_, _ = fmt.Fprintf(stdout, "%-*s  %-20s  %9s  %-7s  %-16s  %s\n",
			serverWidth, s.Server,
			cmdutil.Truncate(s.Version, 20),
			fmt.Sprintf("%d/%d", s.OnlinePlayers, s.MaxPlayers),
			cmdutil.YesNo(s.Cracked),
			cmdutil.FormatLastSeen(s.LastSeen, now),
			cmdutil.Truncate(cmdutil.CleanDescription(s.Description), 40))
	}

	if total > len(servers) {
		_, _ = fmt.Fprintf(stdout, "\nShowing %d of %d servers. Use --limit to see more.\n", len(servers), total)
	} else {
		_, _ = fmt.Fprintf(stdout, "\nFound %d server(s).\n", total)
	}

	return nil
}
