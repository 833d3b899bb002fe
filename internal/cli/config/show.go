package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/state"
)

// ShowData is the JSON form of config show.
type ShowData struct {
	Path   string            `json:"path"`
	Values map[string]string `json:"values"`
}

// NewShowCommand creates the config show subcommand
func NewShowCommand() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the config file contents",
		Long: `Show every setting in the config file. The API key is masked unless
--reveal is given. Environment overrides are not reflected here.`,
		Aliases: []string{"list", "ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()

			path, err := configPath()
			if err != nil {
				return cmdutil.WriteError(stdout, err)
			}

			cfg, err := state.LoadConfigFrom(cmd.Context(), path)
			if err != nil {
				return cmdutil.WriteError(stdout, err)
			}

			data := ShowData{Path: path, Values: make(map[string]string, len(state.Keys))}
			for _, key := range state.Keys {
				value, err := cfg.Get(key)
				if err != nil {
					return cmdutil.WriteError(stdout, err)
				}
				data.Values[key] = displayValue(key, value, reveal)
			}

			if cmdutil.IsJSONMode() {
				return cmdutil.WriteJSON(stdout, data)
			}

			_, _ = fmt.Fprintln(stdout, cmdutil.Muted("# "+path))
			for _, key := range state.Keys {
				_, _ = fmt.Fprintf(stdout, "%-14s %s\n", key, data.Values[key])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show the API key unmasked")

	return cmd
}
