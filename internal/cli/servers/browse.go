package servers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/tui"
)

// NewBrowseCommand creates the servers browse subcommand
func NewBrowseCommand() *cobra.Command {
	filterFlags := &FilterFlags{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse search results interactively",
		Long: `Run a server search and browse the results in an interactive view.

Press enter on a server to load its details and player history, esc to
go back, r to search again and q to quit. Accepts the same filter flags
as 'servers search'.`,
		Example: `  # Browse Paper servers with players online
  serverseeker servers browse --software paper --online-players 1-inf`,
		Aliases: []string{"ui"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmdutil.IsJSONMode() {
				return fmt.Errorf("browse is interactive and does not support --json; use 'servers search --json'")
			}

			filter, err := filterFlags.build(cmd)
			if err != nil {
				return err
			}

			client, err := cmdutil.NewClient()
			if err != nil {
				return err
			}

			model := tui.NewModel(cmd.Context(), client, filter)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}
			return nil
		},
	}

	filterFlags.register(cmd)

	return cmd
}
