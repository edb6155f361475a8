package notify

import (
	"testing"

	"github.com/clanwatch/clanwatch/internal/roster"
)

func TestFormatChangeSummary(t *testing.T) {
	changes := []roster.ChangeEvent{
		{Name: "Alice", OldScore: 1234567, NewScore: 1250000, Delta: 15433},
		{Name: "Bob", OldScore: 900, NewScore: 890, Delta: -10},
	}

	got := FormatChangeSummary(changes)
	want := "**Clan score changes**\n" +
		"Alice: 1,234,567 → 1,250,000 (+15,433)\n" +
		"Bob: 900 → 890 (-10)"
	if got != want {
		t.Errorf("summary =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatInitialSnapshot(t *testing.T) {
	observations := []roster.Observation{
		{Name: "Alice", Score: 1000},
	}

	got := FormatInitialSnapshot(observations)
	want := "**Clan roster recorded**\nAlice: 0 → 1,000 (+1,000)"
	if got != want {
		t.Errorf("snapshot =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatScore(tt.in); got != tt.want {
			t.Errorf("formatScore(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
