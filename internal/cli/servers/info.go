package servers

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/serverseeker"
)

// InfoFlags holds all flags for the info command
type InfoFlags struct {
	Port        int
	PlayerLimit int
}

// NewInfoCommand creates the servers info subcommand
func NewInfoCommand() *cobra.Command {
	flags := &InfoFlags{}

	cmd := &cobra.Command{
		Use:   "info <ip[:port]>",
		Short: "Show a server's details and player history",
		Long: `Show what ServerSeeker knows about one server: version, player counts,
description and the players seen on it.

The port is taken from --port, then from the address, then from the
defaults.port setting (25565 unless configured).`,
		Example: `  # Default port
  serverseeker servers info 1.2.3.4

  # Explicit port
  serverseeker servers info 1.2.3.4:25566
  serverseeker servers info 1.2.3.4 --port 25566

  # JSON output
  serverseeker servers info 1.2.3.4 --json`,
		Aliases: []string{"show", "inspect"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip, port, err := resolveAddress(args[0], flags.Port, cmd.Flags().Changed("port"))
			if err != nil {
				return cmdutil.WriteError(cmd.OutOrStdout(), err)
			}
			return runInfo(cmd.Context(), cmd.OutOrStdout(), ip, port, flags.PlayerLimit)
		},
	}

	cmd.Flags().IntVarP(&flags.Port, "port", "p", 0, "Server port (overrides the port in the address)")
	cmd.Flags().IntVar(&flags.PlayerLimit, "players", 25, "Maximum players to list (0 for all)")

	return cmd
}

// resolveAddress picks the ip and port for an info lookup.
func resolveAddress(addr string, flagPort int, portSet bool) (string, int, error) {
	ip, port, err := serverseeker.SplitAddress(addr)
	if err != nil {
		return "", 0, err
	}

	switch {
	case portSet:
		port = flagPort
	case !hasExplicitPort(addr):
		port = cmdutil.DefaultPort()
	}

	if port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}

	return ip, port, nil
}

func hasExplicitPort(addr string) bool {
	_, port, err := net.SplitHostPort(addr)
	return err == nil && port != ""
}

func runInfo(ctx context.Context, stdout io.Writer, ip string, port, playerLimit int) error {
	client, err := cmdutil.NewClient()
	if err != nil {
		return cmdutil.WriteError(stdout, err)
	}

	detail, err := client.ServerInfo(ctx, ip, port)
	if err != nil {
		return cmdutil.WriteError(stdout, fmt.Errorf("failed to fetch server info for %s: %w",
			net.JoinHostPort(ip, fmt.Sprint(port)), err))
	}

	if cmdutil.IsJSONMode() {
		return cmdutil.WriteJSON(stdout, detail)
	}

	return outputInfoText(stdout, detail, playerLimit, time.Now())
}

func outputInfoText(stdout io.Writer, d *serverseeker.ServerDetail, playerLimit int, now time.Time) error {
	_, _ = fmt.Fprintf(stdout, "Server:      %s\n", d.Server)
	_, _ = fmt.Fprintf(stdout, "Version:     %s (protocol %d)\n", d.Version, d.Protocol)
	_, _ = fmt.Fprintf(stdout, "Players:     %d/%d\n", d.OnlinePlayers, d.MaxPlayers)
	_, _ = fmt.Fprintf(stdout, "Cracked:     %s\n", cmdutil.YesNo(d.Cracked))
	_, _ = fmt.Fprintf(stdout, "Last seen:   %s (%s)\n",
		cmdutil.FormatLastSeen(d.LastSeen, now), cmdutil.FormatTimestamp(d.LastSeen))
	_, _ = fmt.Fprintf(stdout, "Description: %s\n", cmdutil.CleanDescription(d.Description))
	_, _ = fmt.Fprintln(stdout)

	if len(d.Players) == 0 {
		_, _ = fmt.Fprintln(stdout, "No players recorded.")
		return nil
	}

	players := d.Players
	if playerLimit > 0 && len(players) > playerLimit {
		players = players[:playerLimit]
	}

	nameWidth := len("PLAYER")
	for _, p := range players {
		nameWidth = max(nameWidth, len(p.Name))
	}

	_, _ = fmt.Fprintln(stdout, cmdutil.Header(fmt.Sprintf("%-*s  %-36s  %s", nameWidth, "PLAYER", "UUID", "LAST SEEN")))
	for _, p := range players {
		_, _ = fmt.Fprintf(stdout, "%-*s  %-36s  %s\n", nameWidth, p.Name, p.UUID, cmdutil.FormatLastSeen(p.LastSeen, now))
	}

	if len(players) < len(d.Players) {
		_, _ = fmt.Fprintf(stdout, "\nShowing %d of %d players. Use --players to see more.\n", len(players), len(d.Players))
	}

	return nil
}
