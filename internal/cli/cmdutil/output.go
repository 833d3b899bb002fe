package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/docker/go-units"
)

// Output is the JSON envelope written in --json mode.
type Output struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))

	// formatCodes matches Minecraft section-sign formatting codes such as "§a".
	formatCodes = regexp.MustCompile(`§[0-9a-fk-orA-FK-OR]`)
)

// WriteJSON writes a success envelope around data.
func WriteJSON(w io.Writer, data any) error {
	return encode(w, Output{Status: "success", Data: data})
}

// WriteError writes an error envelope in JSON mode and returns err unchanged.
func WriteError(w io.Writer, err error) error {
	if IsJSONMode() {
		_ = encode(w, Output{Status: "error", Error: err.Error()})
	}
	return err
}

func encode(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

// Header renders a table header line.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Muted renders secondary text such as footers.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// Truncate shortens s to maxLen runes, marking the cut with "...".
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// CleanDescription strips formatting codes and folds a MOTD onto one line.
func CleanDescription(s string) string {
	s = formatCodes.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// FormatLastSeen renders a unix timestamp relative to now, e.g. "3 hours ago".
func FormatLastSeen(ts int64, now time.Time) string {
	if ts <= 0 {
		return "never"
	}

	d := now.Sub(time.Unix(ts, 0))
	if d < time.Second {
		return "just now"
	}

	return strings.ToLower(units.HumanDuration(d)) + " ago"
}

// FormatTimestamp renders a unix timestamp as a UTC date and time.
func FormatTimestamp(ts int64) string {
	if ts <= 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04 UTC")
}

// YesNo renders a boolean for tables.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
