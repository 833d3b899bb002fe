package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/state"
)

// NewGetCommand creates the config get subcommand
func NewGetCommand() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:       "get <key>",
		Short:     "Print one configuration value",
		Example:   `  serverseeker config get defaults.port`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: state.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			key := args[0]

			path, err := configPath()
			if err != nil {
				return cmdutil.WriteError(stdout, err)
			}

			cfg, err := state.LoadConfigFrom(cmd.Context(), path)
			if err != nil {
				return cmdutil.WriteError(stdout, err)
			}

			value, err := cfg.Get(key)
			if err != nil {
				return cmdutil.WriteError(stdout, err)
			}
			value = displayValue(key, value, reveal)

			if cmdutil.IsJSONMode() {
				return cmdutil.WriteJSON(stdout, map[string]string{"key": key, "value": value})
			}

			_, _ = fmt.Fprintln(stdout, value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show the API key unmasked")

	return cmd
}
