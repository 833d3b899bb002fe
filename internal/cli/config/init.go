package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/state"
)

// InitFlags holds all flags for the init command
type InitFlags struct {
	APIKey string
	Force  bool
}

// NewInitCommand creates the config init subcommand
func NewInitCommand() *cobra.Command {
	flags := &InitFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file with default settings",
		Long: `Write a config file containing the default settings and, optionally,
your ServerSeeker API key. An existing file is left alone unless --force
is given.`,
		Example: `  serverseeker config init --api-key YOUR_KEY
  serverseeker config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return cmdutil.WriteError(cmd.OutOrStdout(), err)
			}
			return runInit(cmd, path, flags)
		},
	}

	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "ServerSeeker API key to store")
	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, path string, flags *InitFlags) error {
	stdout := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !flags.Force {
		return cmdutil.WriteError(stdout, fmt.Errorf("config file %s already exists (use --force to overwrite)", path))
	}

	cfg := state.DefaultConfig()
	cfg.API.Key = flags.APIKey

	if err := state.SaveConfigTo(cmd.Context(), path, cfg); err != nil {
		return cmdutil.WriteError(stdout, err)
	}

	if cmdutil.IsJSONMode() {
		return cmdutil.WriteJSON(stdout, map[string]string{"path": path})
	}

	_, _ = fmt.Fprintf(stdout, "Wrote config to %s\n", path)
	if flags.APIKey == "" {
		_, _ = fmt.Fprintf(stdout, "No API key stored. Run 'serverseeker config set %s <key>' to add one.\n", state.KeyAPIKey)
	}
	return nil
}
