package calcview

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap describes the key bindings shown in the help bar. The calculator
// keys themselves are resolved by calculator.KeyAction.
type keyMap struct {
	Digits    key.Binding
	Operators key.Binding
	Equals    key.Binding
	Clear     key.Binding
	Delete    key.Binding
	Sign      key.Binding
	Percent   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "Eingabe"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "/"),
			key.WithHelp("+ - * /", "Rechenart"),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "Ergebnis"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "AC"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "Löschen"),
		),
		Sign: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "+/-"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "Prozent"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Hilfe"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Beenden"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Operators, k.Equals, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operators, k.Equals},
		{k.Clear, k.Delete, k.Sign, k.Percent},
		{k.Help, k.Quit},
	}
}

// overlayKeys dismiss the christmas screen
var overlayKeys = key.NewBinding(
	key.WithKeys("enter", " ", "esc"),
	key.WithHelp("enter", "Zurück zur Mathematik"),
)
