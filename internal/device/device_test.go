package device

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/censorbox/internal/core"
	"github.com/vovakirdan/censorbox/internal/round"
	"github.com/vovakirdan/censorbox/internal/words"
)

// newState builds an active round over texts with the first slot current.
func newState(texts ...string) round.State {
	c := words.DefaultClassifier()
	slots := make([]round.Slot, len(texts))
	for i, text := range texts {
		slots[i] = round.Slot{
			ID:       fmt.Sprintf("word-%d", i),
			Text:     text,
			Category: c.Classify(text),
			Status:   round.StatusPending,
		}
	}
	if len(slots) > 0 {
		slots[0].Status = round.StatusCurrent
	}
	return round.State{
		ID:            "round-1",
		Config:        round.Config{Lives: 3, TimeBudget: 60, WordCount: len(texts)},
		Slots:         slots,
		Lives:         3,
		TimeRemaining: 60,
		Phase:         round.PhaseActive,
	}
}

func render(v View) *core.Screen {
	s := core.NewScreen(80, 24)
	Render(s, v)
	return s
}

// find returns the position of the first occurrence of text on the screen.
func find(s *core.Screen, text string) (x, y int, ok bool) {
	for y := 0; y < s.Height(); y++ {
		row := []rune(s.Row(y))
		if i := strings.Index(string(row), text); i >= 0 {
			return len([]rune(string(row)[:i])), y, true
		}
	}
	return 0, 0, false
}

func TestRenderChrome(t *testing.T) {
	s := render(View{State: newState("THE", "AGENT"), Clearance: "LEVEL 5"})
	out := s.String()

	for _, want := range []string{"CENSOR BOX™", "CLEARANCE: LEVEL 5", "SCORE: 0", "LIVES: ♥♥♥", "TIME: 60", "1 / 2", "SKIP"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "MUTED") {
		t.Error("mute lamp should be off")
	}
	if strings.Contains(out, "SIZE:") {
		t.Error("size hint should be hidden by default")
	}
}

func TestRenderSlotStyles(t *testing.T) {
	st := newState("THE", "AGENT", "SIGNAL", "PROTOCOL")
	st.Slots[0].Status = round.StatusCorrect
	st.Slots[1].Status = round.StatusIncorrect
	st.Slots[2].Status = round.StatusSkipped
	st.Slots[3].Status = round.StatusCurrent
	st.Cursor = 3

	s := render(View{State: st})

	if _, _, ok := find(s, "THE "); ok {
		t.Error("correct word should be redacted")
	}
	x, y, ok := find(s, "███ AGENT")
	if !ok {
		t.Fatalf("redacted flow not found:\n%s", s.String())
	}

	checks := []struct {
		offset int
		want   core.Color
	}{
		{0, core.ColorRedacted},
		{4, core.ColorMistake},
		{10, core.ColorDim},
		{17, core.ColorCurrent},
	}
	for _, c := range checks {
		if got := s.GetCell(x+c.offset, y).Color; got != c.want {
			t.Errorf("cell at offset %d has color %d, want %d", c.offset, got, c.want)
		}
	}
}

func TestRenderLowTimeWarning(t *testing.T) {
	st := newState("THE")
	st.TimeRemaining = round.LowTimeWarning

	s := render(View{State: st})
	x, y, ok := find(s, "TIME: 10")
	if !ok {
		t.Fatalf("time not found:\n%s", s.String())
	}
	if s.GetCell(x, y).Color != core.ColorWarning {
		t.Error("time at the warning threshold should use the warning color")
	}

	st.TimeRemaining = round.LowTimeWarning + 1
	s = render(View{State: st})
	x, y, _ = find(s, "TIME: 11")
	if s.GetCell(x, y).Color == core.ColorWarning {
		t.Error("time above the threshold should not warn")
	}
}

func TestRenderSizeHintAndMute(t *testing.T) {
	s := render(View{State: newState("CLASSIFIED"), SizeHint: true, Muted: true})
	out := s.String()

	if !strings.Contains(out, "SIZE: XL") {
		t.Errorf("size hint missing:\n%s", out)
	}
	if !strings.Contains(out, "MUTED") {
		t.Errorf("mute lamp missing:\n%s", out)
	}
}

func TestRenderLitPad(t *testing.T) {
	s := render(View{State: newState("THE"), Lit: core.ActionPad2})

	x, y, ok := find(s, "▄ M")
	if !ok {
		t.Fatalf("pad 2 not found:\n%s", s.String())
	}
	if s.GetCell(x, y).Color != core.ColorPadLit {
		t.Error("pad 2 should be lit")
	}

	x, y, _ = find(s, "▂ S")
	if s.GetCell(x, y).Color != core.ColorPad {
		t.Error("pad 1 should be unlit")
	}
}

func TestRenderGameOver(t *testing.T) {
	tests := []struct {
		name  string
		phase round.Phase
		title string
		color core.Color
	}{
		{"won", round.PhaseWon, "DOCUMENT PROCESSED", core.ColorOverlayWin},
		{"lost", round.PhaseLost, "DOCUMENT COMPROMISED", core.ColorOverlayLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newState("THE")
			st.Slots[0].Status = round.StatusCorrect
			st.Cursor = 1
			st.Score = 10
			st.Phase = tt.phase

			s := render(View{State: st})
			out := s.String()
			for _, want := range []string{tt.title, "FINAL SCORE: 10", "[R] NEW DOCUMENT"} {
				if !strings.Contains(out, want) {
					t.Errorf("missing %q in:\n%s", want, out)
				}
			}
			x, y, _ := find(s, tt.title)
			if s.GetCell(x, y).Color != tt.color {
				t.Errorf("overlay color = %d, want %d", s.GetCell(x, y).Color, tt.color)
			}
		})
	}
}

func TestRenderEmptyRound(t *testing.T) {
	st := round.State{Phase: round.PhaseWon, Config: round.Config{Lives: 3, TimeBudget: 60}, Lives: 3, TimeRemaining: 60}

	out := render(View{State: st}).String()
	if !strings.Contains(out, "0 / 0") || !strings.Contains(out, "DOCUMENT PROCESSED") {
		t.Errorf("empty round not rendered:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := core.NewScreen(40, 10)
	Render(s, View{State: newState("THE")})

	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small notice:\n%s", s.String())
	}
}

func TestDocumentScrollsToCursor(t *testing.T) {
	texts := make([]string, 200)
	for i := range texts {
		texts[i] = fmt.Sprintf("W%03d", i)
	}
	st := newState(texts...)
	st.Slots[0].Status = round.StatusSkipped
	st.Slots[150].Status = round.StatusCurrent
	st.Cursor = 150

	s := render(View{State: st})
	if _, _, ok := find(s, "W150"); !ok {
		t.Errorf("current word scrolled out of view:\n%s", s.String())
	}
	if _, _, ok := find(s, "W000"); ok {
		t.Error("first line should have scrolled away")
	}
}

func TestLayoutWraps(t *testing.T) {
	st := newState("AAAA", "BBBB", "CCCC", "DDDDDDDDDDDD")
	lines := layout(st.Slots, 10)

	// "AAAA BBBB" fits in 10, "CCCC" wraps, the long word gets its own line
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %+v", len(lines), lines)
	}
	if len(lines[0]) != 2 || lines[0][1].x != 5 {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[2][0].slot != 3 || lines[2][0].x != 0 {
		t.Errorf("long word line = %+v", lines[2])
	}
}

func TestProgress(t *testing.T) {
	st := newState("A", "B", "C")
	if got := Progress(st); got != "1 / 3" {
		t.Errorf("Progress() = %q, want 1 / 3", got)
	}
	st.Cursor = 3
	if got := Progress(st); got != "3 / 3" {
		t.Errorf("Progress() at end = %q, want 3 / 3", got)
	}
}
