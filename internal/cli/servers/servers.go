package servers

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the servers command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Search and inspect Minecraft servers",
		Long: `Search the ServerSeeker index of Minecraft servers and look up
individual servers with their player history.

Search filters map directly to the API: only flags you set are sent.
country and asn cannot be combined.`,
		Example: `  # Paper servers in Germany with at least 5 players online
  serverseeker servers search --software paper --country DE --online-players 5-inf

  # Details and player history of one server
  serverseeker servers info 1.2.3.4:25565

  # Browse search results interactively
  serverseeker servers browse --cracked --online-players 1-`,
		Aliases: []string{"server", "srv"},
	}

	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewInfoCommand())
	cmd.AddCommand(NewBrowseCommand())

	return cmd
}
