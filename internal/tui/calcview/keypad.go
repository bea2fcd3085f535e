package calcview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	calc "github.com/msto63/mCalc/internal/calculator"
)

// button is one key of the on-screen keypad
type button struct {
	label  string
	action calc.Action
	kind   calc.ButtonType
	row    int
	col    int
	span   int
}

// keypad is the 5x4 button grid. The zero key spans two columns.
var keypad = []button{
	{"AC", calc.Clear, calc.ButtonAction, 0, 0, 1},
	{"+/-", calc.ToggleSign, calc.ButtonAction, 0, 1, 1},
	{"%", calc.Percent, calc.ButtonAction, 0, 2, 1},
	{"÷", calc.Op(calc.OpDivide), calc.ButtonOperator, 0, 3, 1},

	{"7", calc.Digit('7'), calc.ButtonNumber, 1, 0, 1},
	{"8", calc.Digit('8'), calc.ButtonNumber, 1, 1, 1},
	{"9", calc.Digit('9'), calc.ButtonNumber, 1, 2, 1},
	{"×", calc.Op(calc.OpMultiply), calc.ButtonOperator, 1, 3, 1},

	{"4", calc.Digit('4'), calc.ButtonNumber, 2, 0, 1},
	{"5", calc.Digit('5'), calc.ButtonNumber, 2, 1, 1},
	{"6", calc.Digit('6'), calc.ButtonNumber, 2, 2, 1},
	{"-", calc.Op(calc.OpSubtract), calc.ButtonOperator, 2, 3, 1},

	{"1", calc.Digit('1'), calc.ButtonNumber, 3, 0, 1},
	{"2", calc.Digit('2'), calc.ButtonNumber, 3, 1, 1},
	{"3", calc.Digit('3'), calc.ButtonNumber, 3, 2, 1},
	{"+", calc.Op(calc.OpAdd), calc.ButtonOperator, 3, 3, 1},

	{"0", calc.Digit('0'), calc.ButtonNumber, 4, 0, 2},
	{".", calc.Decimal, calc.ButtonNumber, 4, 2, 1},
	{"=", calc.Equals, calc.ButtonSpecial, 4, 3, 1},
}

const (
	keypadRows = 5
	keypadCols = 4

	keyWidth = 7
	keyGapX  = 1
	keyGapY  = 1

	// tallKeyMinHeight is the terminal height from which keys are drawn
	// three rows high
	tallKeyMinHeight = 32
)

// keyGeometry describes the size of the keypad cells
type keyGeometry struct {
	keyHeight int
}

func geometryFor(termHeight int) keyGeometry {
	if termHeight >= tallKeyMinHeight {
		return keyGeometry{keyHeight: 3}
	}
	return keyGeometry{keyHeight: 1}
}

// width of the whole keypad
func (g keyGeometry) width() int {
	return keypadCols*keyWidth + (keypadCols-1)*keyGapX
}

// height of the whole keypad
func (g keyGeometry) height() int {
	return keypadRows*g.keyHeight + (keypadRows-1)*keyGapY
}

func (g keyGeometry) buttonWidth(b button) int {
	return b.span*keyWidth + (b.span-1)*keyGapX
}

// hit returns the button under keypad-relative cell coordinates
func (g keyGeometry) hit(x, y int) (button, bool) {
	if x < 0 || y < 0 {
		return button{}, false
	}
	for _, b := range keypad {
		left := b.col * (keyWidth + keyGapX)
		top := b.row * (g.keyHeight + keyGapY)
		if x >= left && x < left+g.buttonWidth(b) && y >= top && y < top+g.keyHeight {
			return b, true
		}
	}
	return button{}, false
}

// renderKeypad draws the keypad. The flashing key and the operator waiting
// for its second operand are highlighted.
func (m Model) renderKeypad(g keyGeometry) string {
	rows := make([][]string, keypadRows)
	for _, b := range keypad {
		rows[b.row] = append(rows[b.row], m.renderButton(g, b))
	}

	gapX := strings.Repeat(" ", keyGapX)
	lines := make([]string, 0, keypadRows)
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, interleave(r, gapX)...))
	}

	gapY := strings.Repeat("\n", keyGapY)
	return strings.Join(lines, "\n"+gapY)
}

func (m Model) renderButton(g keyGeometry, b button) string {
	style := m.styles.KeyStyle(b.kind)
	switch {
	case m.pressed != "" && m.pressed == b.label:
		style = m.styles.PressedKey
	case b.action.Kind == calc.ActionOperator &&
		m.state.HasPending() && m.state.IsResult &&
		m.state.Operator == b.action.Operator:
		style = m.styles.ActiveOp
	}

	style = style.Width(g.buttonWidth(b)).Height(g.keyHeight)
	if b.span > 1 {
		style = style.Align(lipgloss.Left, lipgloss.Center).PaddingLeft(keyWidth / 2)
	}
	return style.Render(b.label)
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
