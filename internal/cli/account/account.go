package account

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/steviee/serverseeker/internal/cli/cmdutil"
	"github.com/steviee/serverseeker/internal/serverseeker"
)

// QuotaItem is one row of the quota table in JSON output.
type QuotaItem struct {
	Endpoint  string `json:"endpoint"`
	Limit     int    `json:"limit"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

// AccountData is the JSON payload of the account command.
type AccountData struct {
	UserID    string      `json:"user_id"`
	Username  string      `json:"username"`
	AvatarURL string      `json:"avatar_url"`
	Quotas    []QuotaItem `json:"quotas"`
}

// NewCommand creates the account command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show account details and API quotas",
		Long: `Show the account behind the configured API key and how many requests
are left today for each endpoint. Quotas reset at midnight UTC.`,
		Example: `  # Show account and quotas
  serverseeker account

  # JSON output for scripting
  serverseeker account --json`,
		Aliases: []string{"user", "me"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccount(cmd.Context(), cmd.OutOrStdout())
		},
	}

	return cmd
}

func runAccount(ctx context.Context, stdout io.Writer) error {
	client, err := cmdutil.NewClient()
	if err != nil {
		return cmdutil.WriteError(stdout, err)
	}

	info, err := client.GetUserInfo(ctx)
	if err != nil {
		return cmdutil.WriteError(stdout, fmt.Errorf("failed to fetch account info: %w", err))
	}

	data := toAccountData(info)

	if cmdutil.IsJSONMode() {
		return cmdutil.WriteJSON(stdout, data)
	}
	return outputAccountText(stdout, data)
}

func toAccountData(info *serverseeker.UserInfo) AccountData {
	quotas := info.Quotas()
	items := make([]QuotaItem, len(quotas))
	for i, q := range quotas {
		items[i] = QuotaItem{
			Endpoint:  q.Endpoint,
			Limit:     q.Limit,
			Used:      q.Used,
			Remaining: q.Remaining(),
		}
	}

	return AccountData{
		UserID:    info.UserID,
		Username:  info.Username,
		AvatarURL: info.AvatarURL,
		Quotas:    items,
	}
}

func outputAccountText(stdout io.Writer, data AccountData) error {
	_, _ = fmt.Fprintf(stdout, "User:    %s (%s)\n", data.Username, data.UserID)
	if data.AvatarURL != "" {
		_, _ = fmt.Fprintf(stdout, "Avatar:  %s\n", data.AvatarURL)
	}
	_, _ = fmt.Fprintln(stdout)

	_, _ = fmt.Fprintln(stdout, cmdutil.Header(fmt.Sprintf("%-12s %8s %8s %10s", "ENDPOINT", "USED", "LIMIT", "REMAINING")))
	for _, q := range data.Quotas {
		_, _ = fmt.Fprintf(stdout, "%-12s %8d %8d %10d\n", q.Endpoint, q.Used, q.Limit, q.Remaining)
	}

	_, _ = fmt.Fprintln(stdout)
	_, _ = fmt.Fprintln(stdout, cmdutil.Muted("Quotas reset at midnight UTC."))

	return nil
}
