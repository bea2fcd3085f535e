package cmd

import (
	"errors"

	"github.com/msto63/mCalc/internal/tui/calcview"
	"github.com/spf13/cobra"
)

var (
	tuiWatch   bool
	tuiNoMouse bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive Oberfläche",
	Long: `Startet den Taschenrechner im Terminal.

Tastenkürzel:
  0-9 . ,     Eingabe
  + - * /     Rechenart (auch x und :)
  Enter / =   Ergebnis
  Esc         Alles löschen (AC)
  Backspace   Letzte Stelle löschen
  n           Vorzeichen wechseln
  %           Prozent
  ?           Hilfe ein/aus
  q / Ctrl+C  Beenden

Mit --watch werden Änderungen an der Config-Datei (z.B. Farben)
sofort übernommen.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addTUIFlags(tuiCmd)
}

// addTUIFlags registers the TUI flags, shared by "mcalc" and "mcalc tui"
func addTUIFlags(c *cobra.Command) {
	c.Flags().BoolVar(&tuiWatch, "watch", false, "Config-Datei überwachen und Änderungen live übernehmen")
	c.Flags().BoolVar(&tuiNoMouse, "no-mouse", false, "Maussteuerung deaktivieren")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		printError(cmd.ErrOrStderr(), "Config konnte nicht geladen werden", err)
		return err
	}
	if tuiNoMouse {
		cfg.Display.Mouse = false
	}
	if tuiWatch && path == "" {
		err := errors.New("keine Config-Datei vorhanden (mcalc config init)")
		printError(cmd.ErrOrStderr(), "--watch nicht möglich", err)
		return err
	}

	logger, err := newLogger(cfg, nil)
	if err != nil {
		printError(cmd.ErrOrStderr(), "Logger konnte nicht erstellt werden", err)
		return err
	}
	defer logger.Close()

	if err := calcview.Run(calcview.Options{
		Config:     cfg,
		ConfigPath: path,
		Watch:      tuiWatch,
		Logger:     logger,
		Verbose:    verbose,
	}); err != nil {
		printError(cmd.ErrOrStderr(), "TUI", err)
		return err
	}
	return nil
}
