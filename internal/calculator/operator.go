// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     calculator
// Description: Binary operators and keypad button groups
// Author:      Mike Stoffels
// Created:     2025-12-18
// License:     MIT
// ============================================================================

package calculator

// Operator is a pending binary operation. The zero value means no operator.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the symbol shown on the keypad and in the pending line
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// String returns the operator name
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// ParseOperator maps a symbol or keyboard alias to an operator
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "x", "X", "×":
		return OpMultiply, true
	case "/", ":", "÷":
		return OpDivide, true
	default:
		return OpNone, false
	}
}

// ButtonType groups keypad buttons by their colour
type ButtonType int

const (
	ButtonNumber ButtonType = iota
	ButtonOperator
	ButtonAction
	ButtonSpecial
)
