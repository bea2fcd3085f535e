package calculator

import "fmt"

// ActionKind identifies a calculator input
type ActionKind int

const (
	ActionDigit ActionKind = iota
	ActionDecimal
	ActionOperator
	ActionEquals
	ActionClear
	ActionToggleSign
	ActionPercent
	ActionDelete
	ActionDismissEasterEgg
)

// Action is a single input event for the reducer
type Action struct {
	Kind     ActionKind
	Digit    rune
	Operator Operator
}

// Digit returns the action for a digit key
func Digit(d rune) Action { return Action{Kind: ActionDigit, Digit: d} }

// Op returns the action for an operator key
func Op(op Operator) Action { return Action{Kind: ActionOperator, Operator: op} }

var (
	Decimal          = Action{Kind: ActionDecimal}
	Equals           = Action{Kind: ActionEquals}
	Clear            = Action{Kind: ActionClear}
	ToggleSign       = Action{Kind: ActionToggleSign}
	Percent          = Action{Kind: ActionPercent}
	Delete           = Action{Kind: ActionDelete}
	DismissEasterEgg = Action{Kind: ActionDismissEasterEgg}
)

// String returns the keypad label of the action
func (a Action) String() string {
	switch a.Kind {
	case ActionDigit:
		return string(a.Digit)
	case ActionDecimal:
		return "."
	case ActionOperator:
		return a.Operator.Symbol()
	case ActionEquals:
		return "="
	case ActionClear:
		return "AC"
	case ActionToggleSign:
		return "+/-"
	case ActionPercent:
		return "%"
	case ActionDelete:
		return "DEL"
	case ActionDismissEasterEgg:
		return "dismiss"
	default:
		return fmt.Sprintf("action(%d)", int(a.Kind))
	}
}

// Apply runs one action through the reducer
func (s State) Apply(a Action) State {
	switch a.Kind {
	case ActionDigit:
		return s.InputDigit(a.Digit)
	case ActionDecimal:
		return s.InputDecimal()
	case ActionOperator:
		return s.ApplyOperator(a.Operator)
	case ActionEquals:
		return s.Equals()
	case ActionClear, ActionDismissEasterEgg:
		return s.Clear()
	case ActionToggleSign:
		return s.ToggleSign()
	case ActionPercent:
		return s.Percent()
	case ActionDelete:
		return s.Delete()
	default:
		return s
	}
}

// Replay applies a sequence of actions to s
func (s State) Replay(actions ...Action) State {
	for _, a := range actions {
		s = s.Apply(a)
	}
	return s
}
