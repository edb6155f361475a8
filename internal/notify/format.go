package notify

import (
	"fmt"
	"strings"

	"github.com/clanwatch/clanwatch/internal/roster"
)

// FormatChangeSummary renders the change-summary message, one line per
// member, in the order the engine sorted them (largest movement first).
func FormatChangeSummary(changes []roster.ChangeEvent) string {
	var b strings.Builder
	b.WriteString("**Clan score changes**\n")
	for _, c := range changes {
		fmt.Fprintf(&b, "%s: %s → %s (%s)\n",
			c.Name, formatScore(c.OldScore), formatScore(c.NewScore), formatDelta(c.Delta))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatInitialSnapshot renders the first-run message: every member's
// absolute score presented as a gain from zero.
func FormatInitialSnapshot(observations []roster.Observation) string {
	var b strings.Builder
	b.WriteString("**Clan roster recorded**\n")
	for _, o := range observations {
		fmt.Fprintf(&b, "%s: 0 → %s (%s)\n",
			o.Name, formatScore(o.Score), formatDelta(o.Score))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDelta(delta int) string {
	if delta >= 0 {
		return "+" + formatScore(delta)
	}
	return "-" + formatScore(-delta)
}

// formatScore groups thousands to match the hiscores page formatting.
func formatScore(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
