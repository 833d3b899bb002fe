package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steviee/serverseeker/internal/cli/account"
	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/cli/config"
	"github.com/steviee/serverseeker/internal/cli/players"
	"github.com/steviee/serverseeker/internal/cli/servers"
	"github.com/steviee/serverseeker/internal/state"
)

// EnvPrefix prefixes every environment override, e.g. SERVERSEEKER_API_KEY.
const EnvPrefix = "SERVERSEEKER"

var (
	// Global flags
	cfgFile string

	// Global logger
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "serverseeker",
		Short: "Query the ServerSeeker Minecraft server index",
		Long: `serverseeker is a command-line client for the ServerSeeker API, an index
of publicly reachable Minecraft Java Edition servers built by scanning.

It lets you:
  - Check your account and remaining API quota
  - Find the servers a player has been seen on
  - Search servers by player counts, software, version, country or ASN
  - Inspect a server's details and player history
  - Browse search results in an interactive view

An API key is required. Store it with 'serverseeker config init --api-key KEY'
or export SERVERSEEKER_API_KEY.`,
		Example: `  # Show your quotas
  serverseeker account

  # Where has a player been seen?
  serverseeker players whereis Notch

  # Paper servers in Germany with someone online
  serverseeker servers search --software paper --country DE --online-players 1-inf

  # Details for one server
  serverseeker servers info 1.2.3.4:25565

  # Interactive browser
  serverseeker servers browse --cracked`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger based on flags
			if err := initLogger(cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			// Initialize config
			if err := initConfig(); err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			applyConfiguredLogLevel()

			return nil
		},
	}

	cmdutil.SetVersion(version)

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/serverseeker/config.yaml)")
	flags.Bool(cmdutil.KeyJSON, false, "output in JSON format")
	flags.Bool(cmdutil.KeyQuiet, false, "suppress non-essential output")
	flags.Bool(cmdutil.KeyVerbose, false, "enable verbose logging")

	for _, key := range []string{cmdutil.KeyJSON, cmdutil.KeyQuiet, cmdutil.KeyVerbose} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	// Mark json and quiet as mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))

	rootCmd.AddCommand(NewAccountCommand())
	rootCmd.AddCommand(NewPlayersCommand())
	rootCmd.AddCommand(NewServersCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// NewAccountCommand creates the account command
func NewAccountCommand() *cobra.Command {
	return account.NewCommand()
}

// NewPlayersCommand creates the players command group
func NewPlayersCommand() *cobra.Command {
	return players.NewCommand()
}

// NewServersCommand creates the servers command group
func NewServersCommand() *cobra.Command {
	return servers.NewCommand()
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	return config.NewCommand()
}

// initLogger initializes the global logger based on flags
func initLogger(out io.Writer) error {
	// Determine log level
	switch {
	case IsQuiet():
		logLevel.Set(slog.LevelError)
	case IsVerbose():
		logLevel.Set(slog.LevelDebug)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if IsJSONOutput() {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// applyConfiguredLogLevel uses logging.level unless --quiet or --verbose was given.
func applyConfiguredLogLevel() {
	if IsQuiet() || IsVerbose() {
		return
	}

	raw := viper.GetString(state.KeyLoggingLevel)
	if raw == "" {
		return
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		logger.Warn("ignoring invalid log level", "level", raw, "error", err)
		return
	}
	logLevel.Set(level)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	// A .env file in the working directory may carry SERVERSEEKER_* values.
	// Variables already in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to load .env file", "error", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := state.GetConfigDir()
		if err != nil {
			return fmt.Errorf("get config directory: %w", err)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	defaults := state.DefaultConfig()
	viper.SetDefault(state.KeyAPIBaseURL, defaults.API.BaseURL)
	viper.SetDefault(state.KeyAPITimeout, defaults.API.Timeout)
	viper.SetDefault(state.KeyDefaultsPort, defaults.Defaults.Port)
	viper.SetDefault(state.KeyLoggingLevel, defaults.Logging.Level)

	// Read in environment variables that match
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	return logger
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return cmdutil.IsJSONMode()
}

// IsQuiet returns true if quiet mode is enabled
func IsQuiet() bool {
	return viper.GetBool(cmdutil.KeyQuiet)
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return viper.GetBool(cmdutil.KeyVerbose)
}
