package calcview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bigGlyphs is a three row seven-segment font for the main display line
var bigGlyphs = map[rune][3]string{
	'0': {" _ ", "| |", "|_|"},
	'1': {"   ", "  |", "  |"},
	'2': {" _ ", " _|", "|_ "},
	'3': {" _ ", " _|", " _|"},
	'4': {"   ", "|_|", "  |"},
	'5': {" _ ", "|_ ", " _|"},
	'6': {" _ ", "|_ ", "|_|"},
	'7': {" _ ", "  |", "  |"},
	'8': {" _ ", "|_|", "|_|"},
	'9': {" _ ", "|_|", " _|"},
	'-': {"   ", " _ ", "   "},
	'.': {" ", " ", "."},
	',': {" ", " ", ","},
	'E': {" _ ", "|_ ", "|_ "},
	'r': {"   ", " _ ", "|  "},
	'o': {"   ", " _ ", "|_|"},
}

const bigRows = 3

// renderBig renders text in the seven-segment font. It fails when a rune
// has no glyph or the result is wider than width.
func renderBig(text string, width int) ([]string, bool) {
	var rows [bigRows]strings.Builder
	for _, r := range text {
		glyph, ok := bigGlyphs[r]
		if !ok {
			return nil, false
		}
		for i := range rows {
			rows[i].WriteString(glyph[i])
		}
	}
	if rows[0].Len() > width {
		return nil, false
	}

	out := make([]string, bigRows)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out, true
}

// fitRight truncates text from the left so that it fits into width cells
// and pads it to a right aligned line.
func fitRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := lipgloss.Width(text); w <= width {
		return strings.Repeat(" ", width-w) + text
	}

	runes := []rune(text)
	keep := width - 1
	if keep > len(runes) {
		keep = len(runes)
	}
	return "…" + string(runes[len(runes)-keep:])
}

// displayLines returns the number of rows the main line occupies
func (m Model) displayLines() int {
	if m.cfg.Display.LargeDigits {
		return bigRows
	}
	return 1
}

// displayInnerWidth is the text width inside the display panel
func displayInnerWidth(g keyGeometry) int {
	// border and horizontal padding of the display panel
	return g.width() - 4
}

// renderDisplay draws the display panel with the pending line above the
// main line
func (m Model) renderDisplay(g keyGeometry) string {
	width := displayInnerWidth(g)
	lines := []string{
		m.styles.PendingLine.Render(fitRight(m.state.PendingLine(), width)),
	}

	main := m.state.Display()
	if m.cfg.Display.LargeDigits {
		big, ok := renderBig(main, width)
		if !ok {
			big = []string{"", "", main}
		}
		for _, l := range big {
			lines = append(lines, m.styles.MainLine.Render(fitRight(l, width)))
		}
	} else {
		lines = append(lines, m.styles.MainLine.Render(fitRight(main, width)))
	}

	return m.styles.Display.
		Width(width + 2).
		Render(strings.Join(lines, "\n"))
}
