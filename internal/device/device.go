// Package device draws the CENSOR BOX console onto a core.Screen.
// It knows nothing about the terminal: the platform layer turns the
// colored cells into styled output.
package device

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/censorbox/internal/core"
	"github.com/vovakirdan/censorbox/internal/round"
	"github.com/vovakirdan/censorbox/internal/words"
)

// Device dimensions in cells.
const (
	Width  = 64
	Height = 21

	brand       = " CENSOR BOX™ "
	screenRows  = 13 // Screen housing height including its border
	docRows     = 7  // Visible lines of the document flow
	padWidth    = 16
	padHeight   = 3
	padGap      = 2
	redactBlock = '█'
)

// View is everything the device shows for one frame.
type View struct {
	State     round.State
	Clearance string      // Text after "CLEARANCE:"
	SizeHint  bool        // Show the current word's size in the footer
	Muted     bool        // Show the mute lamp
	Lit       core.Action // Pad lit by the last press, or ActionNone
}

// pad describes one button on the control deck.
type pad struct {
	action core.Action
	label  string
	col    int // Column within the deck row
	row    int // Deck row
}

// Pads in deck order. The top row holds S, M and SKIP; the bottom row L and XL.
var pads = []pad{
	{core.ActionPad1, padLabel(words.CategorySmall, "▂", "1/Q"), 0, 0},
	{core.ActionPad2, padLabel(words.CategoryMedium, "▄", "2/W"), 1, 0},
	{core.ActionSkip, "SKIP  SPACE", 2, 0},
	{core.ActionPad3, padLabel(words.CategoryLarge, "▆", "3/S"), 0, 1},
	{core.ActionPad4, padLabel(words.CategoryXL, "█", "4/A"), 1, 1},
}

func padLabel(c words.Category, bar, keys string) string {
	return fmt.Sprintf("%s %-2s  %s", bar, c, keys)
}

// Render draws the device for v, centered on dst.
func Render(dst *core.Screen, v View) {
	dst.Clear()

	if dst.Width() < Width || dst.Height() < Height {
		renderTooSmall(dst)
		return
	}

	chassis := dst.Bounds().Centered(Width, Height)
	dst.DrawDoubleBox(chassis, core.ColorChassis)
	dst.DrawTextCentered(chassis, chassis.Y, brand, core.ColorChassis)
	if v.Muted {
		dst.DrawTextColor(chassis.Right()-10, chassis.Bottom()-1, " MUTED ", core.ColorWarning)
	}

	housing := core.NewRect(chassis.X+2, chassis.Y+1, chassis.W-4, screenRows)
	renderScreen(dst, housing, v)

	deck := core.NewRect(chassis.X+4, housing.Bottom(), chassis.W-8, 2*padHeight)
	renderPads(dst, deck, v.Lit)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(dst.Bounds(), y, "Window too small", core.ColorLabel)
	dst.DrawTextCentered(dst.Bounds(), y+1, fmt.Sprintf("Need %dx%d", Width, Height), core.ColorDim)
}

// renderScreen draws the simulated display: header, document flow and footer.
func renderScreen(dst *core.Screen, r core.Rect, v View) {
	dst.DrawBox(r, core.ColorChassis)
	inner := r.Inset(1)
	inner.X++
	inner.W -= 2

	s := v.State

	// Header
	clearance := "CLEARANCE: " + v.Clearance
	dst.DrawTextColor(inner.X, inner.Y, clearance, core.ColorLabel)
	score := fmt.Sprintf("SCORE: %d", s.Score)
	dst.DrawTextColor(inner.Right()-len(score), inner.Y, score, core.ColorLabel)
	dst.DrawHLine(r.X+1, inner.Y+1, r.W-2, '─', core.ColorChassis)

	doc := core.NewRect(inner.X, inner.Y+2, inner.W, docRows)
	renderDocument(dst, doc, s)

	// Footer
	footerY := doc.Bottom()
	dst.DrawHLine(r.X+1, footerY, r.W-2, '─', core.ColorChassis)
	renderFooter(dst, core.NewRect(inner.X, footerY+1, inner.W, 1), v)

	if s.Over() {
		renderGameOver(dst, doc, s)
	}
}

// placed is a slot laid out in the document flow.
type placed struct {
	slot int
	x    int
}

// layout wraps the slots into lines no wider than width.
func layout(slots []round.Slot, width int) [][]placed {
	var lines [][]placed
	var line []placed
	x := 0
	for i, slot := range slots {
		n := utf8.RuneCountInString(slot.Text)
		if x > 0 && x+n > width {
			lines = append(lines, line)
			line, x = nil, 0
		}
		line = append(line, placed{slot: i, x: x})
		x += n + 1
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// firstVisibleLine scrolls the flow so the cursor line sits near the middle.
func firstVisibleLine(lines [][]placed, cursor, rows int) int {
	cursorLine := len(lines) - 1
	for i, line := range lines {
		if cursor <= line[len(line)-1].slot {
			cursorLine = i
			break
		}
	}
	return core.Clamp(cursorLine-rows/2, 0, core.Max(len(lines)-rows, 0))
}

// renderDocument draws the word flow with each slot styled by status.
func renderDocument(dst *core.Screen, r core.Rect, s round.State) {
	lines := layout(s.Slots, r.W)
	if len(lines) == 0 {
		return
	}

	first := firstVisibleLine(lines, s.Cursor, r.H)
	for row := 0; row < r.H && first+row < len(lines); row++ {
		for _, p := range lines[first+row] {
			slot := s.Slots[p.slot]
			text, color := slotAppearance(slot)
			// Clip words longer than the flow
			if limit := r.W - p.x; utf8.RuneCountInString(text) > limit {
				text = string([]rune(text)[:limit])
			}
			dst.DrawTextColor(r.X+p.x, r.Y+row, text, color)
		}
	}
}

// slotAppearance returns how a slot is printed in the document.
func slotAppearance(slot round.Slot) (string, core.Color) {
	switch slot.Status {
	case round.StatusCurrent:
		return slot.Text, core.ColorCurrent
	case round.StatusCorrect:
		return strings.Repeat(string(redactBlock), utf8.RuneCountInString(slot.Text)), core.ColorRedacted
	case round.StatusIncorrect:
		return slot.Text, core.ColorMistake
	case round.StatusSkipped:
		return slot.Text, core.ColorDim
	default:
		return slot.Text, core.ColorText
	}
}

// renderFooter draws lives, time, the optional size hint and progress.
func renderFooter(dst *core.Screen, r core.Rect, v View) {
	s := v.State

	lives := "LIVES: " + hearts(s.Lives, s.Config.Lives)
	dst.DrawTextColor(r.X, r.Y, lives, core.ColorLabel)
	x := r.X + utf8.RuneCountInString(lives) + 3

	timeColor := core.ColorLabel
	if s.TimeRemaining <= round.LowTimeWarning {
		timeColor = core.ColorWarning
	}
	clock := fmt.Sprintf("TIME: %02d", s.TimeRemaining)
	dst.DrawTextColor(x, r.Y, clock, timeColor)
	x += len(clock) + 3

	if v.SizeHint {
		if slot, ok := s.Current(); ok {
			dst.DrawTextColor(x, r.Y, "SIZE: "+slot.Category.String(), core.ColorDim)
		}
	}

	progress := Progress(s)
	dst.DrawTextColor(r.Right()-len(progress), r.Y, progress, core.ColorLabel)
}

// hearts draws remaining lives against the configured maximum.
// Large budgets fall back to a number.
func hearts(lives, max int) string {
	if max > 10 {
		return fmt.Sprintf("%d", lives)
	}
	return strings.Repeat("♥", lives) + strings.Repeat("♡", core.Max(max-lives, 0))
}

// Progress returns the "i / n" counter for the word under the cursor.
func Progress(s round.State) string {
	n := len(s.Slots)
	i := core.Min(s.Cursor+1, n)
	return fmt.Sprintf("%d / %d", i, n)
}

// Headline returns the game-over title for a terminal state.
func Headline(s round.State) string {
	if s.Phase == round.PhaseWon {
		return "DOCUMENT PROCESSED"
	}
	return "DOCUMENT COMPROMISED"
}

// renderGameOver draws the result box over the document area.
func renderGameOver(dst *core.Screen, doc core.Rect, s round.State) {
	color := core.ColorOverlayLoss
	if s.Phase == round.PhaseWon {
		color = core.ColorOverlayWin
	}

	box := doc.Centered(30, 5)
	dst.FillRect(box, ' ', color)
	dst.DrawDoubleBox(box, color)
	dst.DrawTextCentered(box, box.Y+1, Headline(s), color)
	dst.DrawTextCentered(box, box.Y+2, fmt.Sprintf("FINAL SCORE: %d", s.Score), color)
	dst.DrawTextCentered(box, box.Y+3, "[R] NEW DOCUMENT", color)
}

// renderPads draws the control deck, lighting the last pressed pad.
func renderPads(dst *core.Screen, deck core.Rect, lit core.Action) {
	for _, p := range pads {
		r := core.NewRect(deck.X+p.col*(padWidth+padGap), deck.Y+p.row*padHeight, padWidth, padHeight)
		color := core.ColorPad
		if p.action == lit {
			color = core.ColorPadLit
			dst.FillRect(r.Inset(1), ' ', color)
		}
		dst.DrawBox(r, color)
		dst.DrawTextCentered(r, r.Y+1, p.label, color)
	}
}
