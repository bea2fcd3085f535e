package calculator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownToken is returned when an input token maps to no calculator key
var ErrUnknownToken = errors.New("unknown token")

// KeyAction maps a keyboard key, named the way bubbletea names them
// ("enter", "esc", "backspace", "5", "+"), to a calculator action.
func KeyAction(key string) (Action, bool) {
	switch key {
	case "enter", "=":
		return Equals, true
	case "esc":
		return Clear, true
	case "backspace", "delete":
		return Delete, true
	case ".", ",":
		return Decimal, true
	case "%":
		return Percent, true
	case "n", "±":
		return ToggleSign, true
	}

	if op, ok := ParseOperator(key); ok {
		return Op(op), true
	}

	if r := []rune(key); len(r) == 1 && r[0] >= '0' && r[0] <= '9' {
		return Digit(r[0]), true
	}

	return Action{}, false
}

// wordTokens are multi-character tokens accepted by ParseTokens
var wordTokens = map[string]Action{
	"ac":     Clear,
	"c":      Clear,
	"clear":  Clear,
	"neg":    ToggleSign,
	"+/-":    ToggleSign,
	"sign":   ToggleSign,
	"del":    Delete,
	"delete": Delete,
	"back":   Delete,
	"⌫":      Delete,
	"eq":     Equals,
	"enter":  Equals,
}

// ParseTokens turns whitespace separated tokens such as "47000/188=" or
// "5 + 3 =" into actions. Numbers expand to one key press per character.
func ParseTokens(tokens ...string) ([]Action, error) {
	var actions []Action
	for _, field := range tokens {
		for _, tok := range strings.FieldsFunc(field, unicode.IsSpace) {
			if a, ok := wordTokens[strings.ToLower(tok)]; ok {
				actions = append(actions, a)
				continue
			}
			for _, r := range tok {
				a, ok := KeyAction(string(r))
				if !ok {
					return nil, fmt.Errorf("%w: %q in %q", ErrUnknownToken, string(r), tok)
				}
				actions = append(actions, a)
			}
		}
	}
	return actions, nil
}
