package rendering

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestScoreBar(t *testing.T) {
	cases := []struct {
		score  float64
		filled int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 10},
		{-10, 0},
	}

	for _, c := range cases {
		bar := ScoreBar("Test", c.score, 10)
		if got := strings.Count(bar, "█"); got != c.filled {
			t.Errorf("score %v: expected %d filled cells, got %d", c.score, c.filled, got)
		}
		if got := strings.Count(bar, "░"); got != 10-c.filled {
			t.Errorf("score %v: expected %d empty cells, got %d", c.score, 10-c.filled, got)
		}
	}
}

func TestBestTextColor(t *testing.T) {
	if got := BestTextColor(lipgloss.Color("#000000")); got != lipgloss.Color("#FFFFFF") {
		t.Fatalf("expected white text on black, got %s", got)
	}

	if got := BestTextColor(lipgloss.Color("#FFFFFF")); got != lipgloss.Color("#000000") {
		t.Fatalf("expected black text on white, got %s", got)
	}

	// Fire's badge color is light enough for black text
	if got := BestTextColor(TypeColors["fire"]); got != lipgloss.Color("#000000") {
		t.Fatalf("expected black text on fire orange, got %s", got)
	}

	if got := BestTextColor(TypeColors["ghost"]); got != lipgloss.Color("#FFFFFF") {
		t.Fatalf("expected white text on ghost purple, got %s", got)
	}

	if got := BestTextColor(lipgloss.Color("33")); got != lipgloss.Color("#FFFFFF") {
		t.Fatalf("expected white text for an ansi color, got %s", got)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("special sweeper"); got != "Special Sweeper" {
		t.Fatalf("expected Special Sweeper, got %s", got)
	}
}
