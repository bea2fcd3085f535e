// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     calcview
// Description: Christmas overlay shown after 47000 ÷ 188 =
// Author:      Mike Stoffels
// Created:     2025-12-19
// License:     MIT
// ============================================================================

package calcview

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/mCalc/internal/easteregg"
)

const (
	cardTitle    = "Frohe Weihnachten!"
	cardSubtitle = "Ho Ho Ho! Du hast den geheimen Code gefunden."
	cardButton   = "Zurück zur Mathematik"

	// cellWidth is the number of terminal columns per particle cell
	cellWidth = 2

	// pulsePeriod is the time after which the title colours swap
	pulsePeriod = 500 * time.Millisecond

	// card line holding the dismiss button: border, padding, then
	// badge, blank, title, blank, subtitle, blank, button
	cardButtonLine = 1 + 1 + 6
)

// icon returns the glyph of a particle, padded to one cell
func (m Model) icon(p easteregg.Particle) string {
	var s string
	if m.cfg.EasterEgg.ASCIIIcons {
		switch p.Kind {
		case easteregg.KindTree:
			s = ASCIITree
		case easteregg.KindSnowflake:
			s = ASCIISnowflake
		case easteregg.KindGift:
			s = ASCIIGift
		default:
			s = ASCIIStar
		}
	} else {
		switch p.Kind {
		case easteregg.KindTree:
			s = IconTree
		case easteregg.KindSnowflake:
			s = IconSnowflake
		case easteregg.KindGift:
			s = IconGift
		default:
			s = IconStar
		}
	}
	if w := lipgloss.Width(s); w < cellWidth {
		s += strings.Repeat(" ", cellWidth-w)
	}

	style := OverlayCellStyle.Foreground(lipgloss.Color(p.Color))
	if p.Large() {
		style = style.Bold(true)
	}
	return style.Render(s)
}

// renderTitle colours the title letters alternately red and green. The
// colours swap every pulse period.
func renderTitle(elapsed time.Duration) string {
	phase := 0
	if elapsed > 0 {
		phase = int(elapsed/pulsePeriod) % 2
	}

	var b strings.Builder
	i := 0
	for _, r := range cardTitle {
		color := ColorXmasRed
		if (i+phase)%2 == 1 {
			color = ColorXmasGreen
		}
		b.WriteString(lipgloss.NewStyle().
			Background(ColorCardBg).
			Foreground(color).
			Bold(true).
			Render(string(r)))
		i++
	}
	return b.String()
}

// renderCard draws the message card. Its width is always a whole number of
// particle cells.
func (m Model) renderCard(elapsed time.Duration) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		CardBadgeStyle.Render(IconTree),
		"",
		renderTitle(elapsed),
		"",
		CardTextStyle.Render(cardSubtitle),
		"",
		CardButtonStyle.Render(cardButton),
	)

	style := CardStyle.Align(lipgloss.Center)
	card := style.Render(content)
	if w := lipgloss.Width(card); w%cellWidth != 0 {
		// Width excludes the border
		card = style.Width(w - 2 + 1).Render(content)
	}
	return card
}

// cardOrigin returns the top left cell of the card on screen
func (m Model) cardOrigin(card string) (x, y int) {
	cw, ch := lipgloss.Width(card), lipgloss.Height(card)
	cols := m.width / cellWidth

	y = (m.height - ch) / 2
	if y < 0 {
		y = 0
	}

	if m.gridFits(card) {
		x = (cols - cw/cellWidth) / 2 * cellWidth
	} else {
		x = (m.width - cw) / 2
		if x < 0 {
			x = 0
		}
	}
	return x, y
}

// gridFits reports whether the particle field can be drawn around the card
func (m Model) gridFits(card string) bool {
	return m.width/cellWidth >= lipgloss.Width(card)/cellWidth && m.height >= lipgloss.Height(card)
}

// onCardButton reports whether a screen cell lies on the dismiss button row
func (m Model) onCardButton(x, y int) bool {
	card := m.renderCard(m.overlayElapsed())
	cx, cy := m.cardOrigin(card)
	return y == cy+cardButtonLine && x >= cx && x < cx+lipgloss.Width(card)
}

// overlayElapsed is the time since the easter egg opened
func (m Model) overlayElapsed() time.Duration {
	if m.eggStart.IsZero() {
		return 0
	}
	return m.now().Sub(m.eggStart)
}

// renderOverlay draws the falling decorations with the card in the middle
func (m Model) renderOverlay() string {
	elapsed := m.overlayElapsed()
	card := m.renderCard(elapsed)

	if !m.gridFits(card) {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}

	cols, rows := m.width/cellWidth, m.height
	empty := OverlayCellStyle.Render(strings.Repeat(" ", cellWidth))

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = empty
		}
	}
	for _, p := range m.particles {
		row, visible := p.Row(elapsed, rows)
		if !visible {
			continue
		}
		grid[row][p.Column(cols)] = m.icon(p)
	}

	cardLines := strings.Split(card, "\n")
	cx, cy := m.cardOrigin(card)
	cardLeft := cx / cellWidth
	cardCells := lipgloss.Width(card) / cellWidth

	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString("\n")
		}
		if r >= cy && r < cy+len(cardLines) {
			b.WriteString(strings.Join(grid[r][:cardLeft], ""))
			b.WriteString(cardLines[r-cy])
			b.WriteString(strings.Join(grid[r][cardLeft+cardCells:], ""))
			continue
		}
		b.WriteString(strings.Join(grid[r], ""))
	}
	return b.String()
}
