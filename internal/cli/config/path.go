package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
)

// NewPathCommand creates the config path subcommand
func NewPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return cmdutil.WriteError(cmd.OutOrStdout(), err)
			}

			if cmdutil.IsJSONMode() {
				return cmdutil.WriteJSON(cmd.OutOrStdout(), map[string]string{"path": path})
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
