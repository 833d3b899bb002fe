package players

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
)

// NewProfileCommand creates the players profile subcommand
func NewProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <name>",
		Short: "Look up a player's account UUID with Mojang",
		Long: `Look up the Minecraft Java account currently using a name. This queries
the Mojang API and does not use ServerSeeker quota.`,
		Example: `  serverseeker players profile Notch`,
		Aliases: []string{"uuid"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()

			profile, err := cmdutil.NewMojangClient().Lookup(cmd.Context(), args[0])
			if err != nil {
				return cmdutil.WriteError(stdout, fmt.Errorf("profile lookup failed: %w", err))
			}

			if cmdutil.IsJSONMode() {
				return cmdutil.WriteJSON(stdout, profile)
			}

			_, _ = fmt.Fprintf(stdout, "Name: %s\nUUID: %s\n", profile.Name, profile.UUID)
			return nil
		},
	}
}
