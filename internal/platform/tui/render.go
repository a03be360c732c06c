package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/censorbox/internal/core"
)

// colorStyles maps the device palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorChassis:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorLabel:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorText:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorCurrent:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Bold(true),
	core.ColorRedacted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorMistake:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Faint(true),
	core.ColorWarning:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorPad:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorPadLit:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
	core.ColorOverlayWin:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorOverlayLoss: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts the device framebuffer to styled terminal text.
// Each row is emitted as runs of same-colored cells, one style per run.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}

		run = run[:0]
		runColor := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if len(run) > 0 && cell.Color != runColor {
				out.WriteString(styleFor(runColor).Render(string(run)))
				run = run[:0]
			}
			runColor = cell.Color
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			out.WriteString(styleFor(runColor).Render(string(run)))
		}
	}
	return out.String()
}
