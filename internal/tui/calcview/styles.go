// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     calcview
// Description: Styles for the calculator TUI
// Author:      Mike Stoffels
// Created:     2025-12-19
// License:     MIT
// ============================================================================

package calcview

import (
	"github.com/charmbracelet/lipgloss"
	calc "github.com/msto63/mCalc/internal/calculator"
	"github.com/msto63/mCalc/pkg/core/config"
)

// Fixed colours of the christmas overlay
var (
	ColorOverlayBg = lipgloss.Color("#0F172A") // Slate 900
	ColorCardBg    = lipgloss.Color("#1E293B") // Slate 800
	ColorCardText  = lipgloss.Color("#CBD5E1") // Slate 300
	ColorXmasRed   = lipgloss.Color("#DC2626") // Red 600
	ColorXmasGreen = lipgloss.Color("#22C55E") // Green 500
	ColorButtonBg  = lipgloss.Color("#16A34A") // Green 600
	ColorWhite     = lipgloss.Color("#FFFFFF")
)

// Styles holds all theme dependent styles. It is rebuilt when the config
// file changes.
type Styles struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	Display     lipgloss.Style
	PendingLine lipgloss.Style
	MainLine    lipgloss.Style
	Help        lipgloss.Style

	NumberKey   lipgloss.Style
	OperatorKey lipgloss.Style
	ActionKey   lipgloss.Style
	PressedKey  lipgloss.Style
	ActiveOp    lipgloss.Style
}

// NewStyles builds the styles for a theme
func NewStyles(theme config.ThemeConfig) Styles {
	key := lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center, lipgloss.Center)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.OperatorBg)).
			Bold(true),

		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Background(lipgloss.Color(theme.Background)).
			Padding(0, 1),

		PendingLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)).
			Background(lipgloss.Color(theme.Background)),

		MainLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Display)).
			Background(lipgloss.Color(theme.Background)).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)).
			MarginTop(1),

		NumberKey: key.
			Background(lipgloss.Color(theme.NumberBg)).
			Foreground(lipgloss.Color(theme.NumberFg)),

		OperatorKey: key.
			Background(lipgloss.Color(theme.OperatorBg)).
			Foreground(lipgloss.Color(theme.OperatorFg)),

		ActionKey: key.
			Background(lipgloss.Color(theme.ActionBg)).
			Foreground(lipgloss.Color(theme.ActionFg)),

		PressedKey: key.
			Background(lipgloss.Color(theme.PressedBg)).
			Foreground(lipgloss.Color(theme.NumberFg)),

		ActiveOp: key.
			Background(lipgloss.Color(theme.OperatorFg)).
			Foreground(lipgloss.Color(theme.OperatorBg)),
	}
}

// KeyStyle returns the style of a keypad button group
func (s Styles) KeyStyle(t calc.ButtonType) lipgloss.Style {
	switch t {
	case calc.ButtonOperator, calc.ButtonSpecial:
		return s.OperatorKey
	case calc.ButtonAction:
		return s.ActionKey
	default:
		return s.NumberKey
	}
}

// Overlay styles
var (
	OverlayCellStyle = lipgloss.NewStyle().
				Background(ColorOverlayBg)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCardText).
			Background(ColorCardBg).
			Padding(1, 3)

	CardBadgeStyle = lipgloss.NewStyle().
			Background(ColorXmasRed).
			Foreground(ColorWhite).
			Padding(0, 2)

	CardTextStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			Foreground(ColorCardText)

	CardButtonStyle = lipgloss.NewStyle().
			Background(ColorButtonBg).
			Foreground(ColorWhite).
			Bold(true).
			Padding(0, 3)
)

// Icons
const (
	IconTree      = "🎄"
	IconSnowflake = "❄"
	IconGift      = "🎁"
	IconStar      = "★"

	ASCIITree      = "^"
	ASCIISnowflake = "*"
	ASCIIGift      = "#"
	ASCIIStar      = "+"
)

// Logo
const Logo = "mCalc"
