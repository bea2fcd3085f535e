// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     cmd
// Description: Non-interactive evaluation of key sequences
// Author:      Mike Stoffels
// Created:     2025-12-20
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	calc "github.com/msto63/mCalc/internal/calculator"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var (
	evalTrace  bool
	evalOutput string
)

// easterEggMessage replaces the christmas screen outside the TUI
const easterEggMessage = "🎄 Frohe Weihnachten! Ho Ho Ho! Du hast den geheimen Code gefunden."

var evalCmd = &cobra.Command{
	Use:   "eval [tasten...]",
	Short: "Berechnet eine Tastenfolge",
	Long: `Spielt eine Tastenfolge ab, als wäre sie im Taschenrechner
eingegeben worden, und gibt die Anzeige aus.

Zahlen werden Ziffer für Ziffer eingegeben. Zusätzlich gibt es:
  AC, C, clear     Alles löschen
  neg, +/-         Vorzeichen wechseln
  %                Prozent
  del, back        Letzte Stelle löschen
  =, eq            Ergebnis

Ohne Argumente wird die Tastenfolge von stdin gelesen.

Beispiele:
  mcalc eval 5 + 3 =
  mcalc eval "1200 * 15 % ="
  echo "6 / 0 =" | mcalc eval
  mcalc eval --trace -o json 2 + 3 + 4 =`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalTrace, "trace", false, "Anzeige nach jeder Taste ausgeben")
	evalCmd.Flags().StringVarP(&evalOutput, "output", "o", "text", "Ausgabeformat: text, json oder yaml")
}

// evalStep is the display after one key press
type evalStep struct {
	Key     string `json:"key" yaml:"key"`
	Display string `json:"display" yaml:"display"`
	Pending string `json:"pending,omitempty" yaml:"pending,omitempty"`
}

// evalResult is the machine readable output of eval
type evalResult struct {
	Input     string     `json:"input" yaml:"input"`
	Display   string     `json:"display" yaml:"display"`
	Pending   string     `json:"pending,omitempty" yaml:"pending,omitempty"`
	EasterEgg bool       `json:"easter_egg" yaml:"easter_egg"`
	Steps     []evalStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

func runEval(cmd *cobra.Command, args []string) error {
	switch evalOutput {
	case "text", "json", "yaml":
	default:
		err := fmt.Errorf("unbekanntes Ausgabeformat %q", evalOutput)
		printError(cmd.ErrOrStderr(), "Ungültige Option", err)
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		printError(cmd.ErrOrStderr(), "Config konnte nicht geladen werden", err)
		return err
	}

	var logOut io.Writer
	if verbose {
		logOut = cmd.ErrOrStderr()
	}
	logger, err := newLogger(cfg, logOut)
	if err != nil {
		printError(cmd.ErrOrStderr(), "Logger konnte nicht erstellt werden", err)
		return err
	}
	defer logger.Close()

	tokens, err := evalInput(cmd, args)
	if err != nil {
		printError(cmd.ErrOrStderr(), "Keine Eingabe", err)
		return err
	}

	actions, err := calc.ParseTokens(tokens...)
	if err != nil {
		printError(cmd.ErrOrStderr(), "Ungültige Eingabe", err)
		return err
	}

	result := evalResult{Input: strings.Join(tokens, " ")}
	state := calc.New()
	for _, a := range actions {
		if a.Kind == calc.ActionEquals && !cfg.EasterEgg.Enabled {
			state = state.Resolve()
		} else {
			state = state.Apply(a)
		}
		logger.Debug("Key pressed", "key", a.String(), "display", state.Current)

		if evalTrace {
			result.Steps = append(result.Steps, evalStep{
				Key:     a.String(),
				Display: state.Display(),
				Pending: state.PendingLine(),
			})
		}
	}

	result.Display = state.Display()
	result.Pending = state.PendingLine()
	result.EasterEgg = state.EasterEgg
	logger.Info("Evaluated", "input", result.Input, "display", result.Display, "easter_egg", result.EasterEgg)

	return writeEvalResult(cmd.OutOrStdout(), result)
}

// evalInput returns the arguments, or the tokens on stdin when there are
// none and stdin is not a terminal
func evalInput(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("keine Tastenfolge angegeben (Argumente oder stdin)")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	tokens := strings.Fields(string(data))
	if len(tokens) == 0 {
		return nil, errors.New("stdin ist leer")
	}
	return tokens, nil
}

func writeEvalResult(w io.Writer, r evalResult) error {
	switch evalOutput {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, s := range r.Steps {
		line := s.Display
		if s.Pending != "" {
			line = s.Pending + " | " + s.Display
		}
		fmt.Fprintf(w, "%-5s %s\n", s.Key, line)
	}
	if len(r.Steps) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 20))
	}

	if r.Pending != "" {
		fmt.Fprintln(w, r.Pending)
	}
	fmt.Fprintln(w, r.Display)
	if r.EasterEgg {
		fmt.Fprintln(w, easterEggMessage)
	}
	return nil
}
