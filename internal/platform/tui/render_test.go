package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/censorbox/internal/core"
)

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "SCORE", core.ColorLabel)
	s.DrawTextColor(6, 0, "10", core.ColorWarning)
	s.DrawTextColor(2, 2, "███", core.ColorRedacted)

	out := RenderScreen(s)
	rows := strings.Split(out, "\n")
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w != 12 {
			t.Errorf("row %d width = %d, want 12", i, w)
		}
	}
	for _, want := range []string{"SCORE", "10", "███"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(empty) = %q, want empty", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(255)).Render("x")
	want := colorStyles[core.ColorDefault].Render("x")
	if got != want {
		t.Errorf("unknown color rendered %q, want %q", got, want)
	}
}
