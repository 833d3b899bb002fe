package players

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/mojang"
	"github.com/steviee/serverseeker/internal/serverseeker"
)

// WhereIsFlags holds all flags for the whereis command
type WhereIsFlags struct {
	By      string
	Limit   int
	Resolve bool
}

// NewWhereIsCommand creates the players whereis subcommand
func NewWhereIsCommand() *cobra.Command {
	flags := &WhereIsFlags{}

	cmd := &cobra.Command{
		Use:   "whereis <name|uuid>",
		Short: "List servers a player has been seen on",
		Long: `List servers a player has been seen on, most recent data from ServerSeeker.

By default the query is treated as a UUID when it parses as one (with or
without dashes) and as a player name otherwise. Use --by to force a mode.

Name searches match the name a player had when they were seen. With
--resolve the name is first looked up with Mojang and the search runs on
the account UUID, which also finds sightings under earlier names.`,
		Example: `  # Search by name
  serverseeker players whereis Notch

  # Force a UUID search
  serverseeker players whereis 069a79f4-44e9-4726-a5be-fca90e38aaf5 --by uuid

  # Resolve the name to a UUID first
  serverseeker players whereis Notch --resolve

  # Only show the first 10 sightings
  serverseeker players whereis Notch --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhereIs(cmd.Context(), cmd.OutOrStdout(), flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.By, "by", "auto", "Search by: auto, name, uuid")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Maximum sightings to show (0 for all)")
	cmd.Flags().BoolVarP(&flags.Resolve, "resolve", "r", false, "Resolve a name to its account UUID via Mojang first")

	return cmd
}

func runWhereIs(ctx context.Context, stdout io.Writer, flags *WhereIsFlags, query string) error {
	jsonMode := cmdutil.IsJSONMode()

	if flags.Limit < 0 {
		return cmdutil.WriteError(stdout, fmt.Errorf("limit must be >= 0"))
	}

	mode, query, err := resolveQuery(flags.By, query)
	if err != nil {
		return cmdutil.WriteError(stdout, err)
	}

	client, err := cmdutil.NewClient()
	if err != nil {
		return cmdutil.WriteError(stdout, err)
	}

	var resolved *mojang.Profile
	if flags.Resolve && mode == serverseeker.ByName {
		resolved, err = cmdutil.NewMojangClient().Lookup(ctx, query)
		if err != nil {
			return cmdutil.WriteError(stdout, fmt.Errorf("resolve %s: %w", query, err))
		}
		mode, query = serverseeker.ByUUID, resolved.UUID.String()
	}

	sightings, err := client.WhereIs(ctx, mode, query)
	if err != nil {
		return cmdutil.WriteError(stdout, fmt.Errorf("whereis %s failed: %w", query, err))
	}

	total := len(sightings)
	if flags.Limit > 0 && total > flags.Limit {
		sightings = sightings[:flags.Limit]
	}

	if jsonMode {
		data := map[string]any{
			"query":     query,
			"mode":      mode.String(),
			"sightings": sightings,
			"count":     len(sightings),
			"total":     total,
		}
		if resolved != nil {
			data["resolved"] = resolved
		}
		return cmdutil.WriteJSON(stdout, data)
	}

	if resolved != nil {
		_, _ = fmt.Fprintln(stdout, cmdutil.Muted(fmt.Sprintf("Resolved %s to %s", resolved.Name, resolved.UUID)))
	}

	return outputWhereIsTable(stdout, sightings, total, time.Now())
}

// resolveQuery picks the search mode and normalizes UUID queries to the dashed form.
func resolveQuery(by, query string) (serverseeker.WhereIsMode, string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, "", fmt.Errorf("query cannot be empty")
	}

	switch strings.ToLower(by) {
	case "", "auto":
		if id, err := uuid.Parse(query); err == nil {
			return serverseeker.ByUUID, id.String(), nil
		}
		return serverseeker.ByName, query, nil
	}

	mode, err := serverseeker.ParseWhereIsMode(by)
	if err != nil {
		return 0, "", err
	}

	if mode == serverseeker.ByUUID {
		if id, err := uuid.Parse(query); err == nil {
			query = id.String()
		}
	}

	return mode, query, nil
}

func outputWhereIsTable(stdout io.Writer, sightings []serverseeker.Sighting, total int, now time.Time) error {
	if len(sightings) == 0 {
		_, _ = fmt.Fprintln(stdout, "No sightings found.")
		return nil
	}

	serverWidth := len("SERVER")
	nameWidth := len("PLAYER")
	for _, s := range sightings {
		serverWidth = max(serverWidth, len(s.Server))
		nameWidth = max(nameWidth, len(s.Name))
	}

	_, _ = fmt.Fprintln(stdout, cmdutil.Header(fmt.Sprintf("%-*s  %-*s  %-36s  %s",
		serverWidth, "SERVER", nameWidth, "PLAYER", "UUID", "LAST SEEN")))

	for _, s := range sightings {
		_, _ = fmt.Fprintf(stdout, "%-*s  %-*s  %-36s  %s\n",
			serverWidth, s.Server,
			nameWidth, s.Name,
			s.UUID,
			cmdutil.FormatLastSeen(s.LastSeen, now))
	}

	if total > len(sightings) {
		_, _ = fmt.Fprintf(stdout, "\nShowing %d of %d sightings. Use --limit to see more.\n", len(sightings), total)
	} else {
		_, _ = fmt.Fprintf(stdout, "\nFound %d sighting(s).\n", total)
	}
	if total >= serverseeker.MaxWhereIsResults {
		_, _ = fmt.Fprintln(stdout, cmdutil.Muted(fmt.Sprintf("The API caps results at %d; older sightings are not shown.", serverseeker.MaxWhereIsResults)))
	}

	return nil
}
