package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/state"
)

// NewSetCommand creates the config set subcommand
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value",
		Long: `Change one configuration value and save the file. The new value is
validated before anything is written.

Keys: api.key, api.base_url, api.timeout, defaults.port, logging.level`,
		Example: `  serverseeker config set api.key YOUR_KEY
  serverseeker config set api.timeout 10s
  serverseeker config set logging.level debug`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: state.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			key, value := args[0], args[1]

			path, err := configPath()
			if err != nil {
				return cmdutil.WriteError(stdout, err)
			}

			cfg, err := state.LoadConfigFrom(cmd.Context(), path)
			if err != nil {
				return cmdutil.WriteError(stdout, err)
			}

			if err := cfg.Set(key, value); err != nil {
				return cmdutil.WriteError(stdout, err)
			}

			if err := state.SaveConfigTo(cmd.Context(), path, cfg); err != nil {
				return cmdutil.WriteError(stdout, err)
			}

			slog.Debug("config updated", "path", path, "key", key)

			stored, _ := cfg.Get(key)
			stored = displayValue(key, stored, false)

			if cmdutil.IsJSONMode() {
				return cmdutil.WriteJSON(stdout, map[string]string{"key": key, "value": stored})
			}

			_, _ = fmt.Fprintf(stdout, "Set %s = %s\n", key, stored)
			return nil
		},
	}

	return cmd
}
