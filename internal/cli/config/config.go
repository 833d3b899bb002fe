package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steviee/serverseeker/internal/state"
)

// NewCommand creates the config command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View and modify serverseeker configuration settings.

Configuration is stored in $XDG_CONFIG_HOME/serverseeker/config.yaml
(~/.config/serverseeker/config.yaml by default), or in the file given
with --config. Every key can be overridden by an environment variable:
api.key becomes SERVERSEEKER_API_KEY, defaults.port becomes
SERVERSEEKER_DEFAULTS_PORT and so on. A .env file in the working
directory is read as well.`,
		Example: `  # Create a config file with your API key
  serverseeker config init --api-key YOUR_KEY

  # View current configuration
  serverseeker config show

  # Set a configuration value
  serverseeker config set defaults.port 25566

  # Get a specific value
  serverseeker config get api.timeout

  # Show configuration file path
  serverseeker config path`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewSetCommand())
	cmd.AddCommand(NewPathCommand())

	return cmd
}

// configPath returns the file selected with --config, or the default location.
func configPath() (string, error) {
	if path := viper.ConfigFileUsed(); path != "" {
		return path, nil
	}
	return state.GetConfigPath()
}

// displayValue masks the API key unless reveal is set.
func displayValue(key, value string, reveal bool) string {
	if key == state.KeyAPIKey && !reveal {
		return state.MaskAPIKey(value)
	}
	return value
}
