// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     calculator
// Description: Calculator state and the entry reducer
// Author:      Mike Stoffels
// Created:     2025-12-18
// License:     MIT
// ============================================================================

// Package calculator implements the arithmetic entry state machine of mCalc.
//
// State is a value type. Every input produces a new State; nothing here
// blocks, allocates goroutines or touches global state, so the TUI and the
// eval command share the exact same behaviour.
package calculator

import "strings"

const (
	// MaxInputLength caps the number of characters a user can type
	MaxInputLength = 10

	// ErrorDisplay is shown after a division by zero
	ErrorDisplay = "Error"

	// Operands that trigger the easter egg instead of a division
	EasterEggDividend = "47000"
	EasterEggDivisor  = "188"
)

// State is the complete calculator state.
//
// Current is never empty and holds at most one decimal point. Previous and
// Operator are either both set or both unset.
type State struct {
	Current   string
	Previous  string
	Operator  Operator
	IsResult  bool
	EasterEgg bool
}

// New returns the initial state showing "0"
func New() State {
	return State{Current: "0"}
}

// HasPending reports whether a binary operation waits for its second operand
func (s State) HasPending() bool {
	return s.Operator != OpNone && s.Previous != ""
}

// InputDigit handles a digit key
func (s State) InputDigit(d rune) State {
	if d < '0' || d > '9' {
		return s
	}
	return s.input(string(d))
}

// InputDecimal handles the decimal point key
func (s State) InputDecimal() State {
	return s.input(".")
}

func (s State) input(ch string) State {
	if ch == "." && strings.Contains(s.Current, ".") {
		return s
	}

	if s.IsResult || (s.Current == "0" && ch != ".") {
		s.Current = ch
		s.IsResult = false
		return s
	}

	if len(s.Current) >= MaxInputLength {
		return s
	}

	s.Current += ch
	return s
}

// ApplyOperator handles an operator key. A pending operation that already has
// its second operand is evaluated first, so "2 + 3 +" shows 5.
func (s State) ApplyOperator(op Operator) State {
	if op == OpNone {
		return s
	}

	if s.HasPending() && !s.IsResult {
		result := Evaluate(s.Previous, s.Current, s.Operator)
		s.Current = result
		s.Previous = result
		s.Operator = op
		s.IsResult = true
		return s
	}

	s.Previous = s.Current
	s.Operator = op
	s.IsResult = true
	return s
}

// Equals resolves the pending operation
func (s State) Equals() State {
	if !s.HasPending() {
		return s
	}

	if s.IsEasterEggSequence() {
		s.EasterEgg = true
		return s
	}

	return s.Resolve()
}

// Resolve evaluates the pending operation like Equals, but never opens the
// easter egg
func (s State) Resolve() State {
	if !s.HasPending() {
		return s
	}

	s.Current = Evaluate(s.Previous, s.Current, s.Operator)
	s.Previous = ""
	s.Operator = OpNone
	s.IsResult = true
	return s
}

// IsEasterEggSequence reports whether pressing equals now opens the easter egg
func (s State) IsEasterEggSequence() bool {
	return s.Previous == EasterEggDividend &&
		s.Operator == OpDivide &&
		s.Current == EasterEggDivisor
}

// Clear resets everything, including the easter egg
func (s State) Clear() State {
	return New()
}

// ToggleSign negates the current input
func (s State) ToggleSign() State {
	s.Current = FormatNumber(ParseNumber(s.Current) * -1)
	return s
}

// Percent divides the current input by 100
func (s State) Percent() State {
	s.Current = FormatNumber(ParseNumber(s.Current) / 100)
	return s
}

// Delete removes the last typed character. Results cannot be edited.
func (s State) Delete() State {
	if s.IsResult {
		return s
	}
	if len(s.Current) <= 1 {
		s.Current = "0"
		return s
	}
	s.Current = s.Current[:len(s.Current)-1]
	return s
}

// Display returns the formatted main display line
func (s State) Display() string {
	return FormatDisplay(s.Current)
}

// PendingLine returns the formatted first operand and operator, or "" when
// nothing is pending
func (s State) PendingLine() string {
	if !s.HasPending() {
		return ""
	}
	return FormatDisplay(s.Previous) + " " + s.Operator.Symbol()
}
