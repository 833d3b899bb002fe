package players

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the players command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Find where players have been seen",
		Long: `Look up Minecraft players in the ServerSeeker database.

Players can be searched by name or UUID. The API returns at most 1000
sightings per query.`,
		Example: `  # Find servers a player was seen on
  serverseeker players whereis Notch

  # Search by UUID (dashes optional)
  serverseeker players whereis 069a79f444e94726a5befca90e38aaf5

  # Look up a name's account UUID with Mojang
  serverseeker players profile Notch`,
		Aliases: []string{"player"},
	}

	cmd.AddCommand(NewWhereIsCommand())
	cmd.AddCommand(NewProfileCommand())

	return cmd
}
