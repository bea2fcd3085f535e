package cmd

import (
	"fmt"
	"io"

	"github.com/msto63/mCalc/pkg/core/config"
	"github.com/msto63/mCalc/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mcalc",
	Short: "mCalc - Taschenrechner für das Terminal",
	Long: `mCalc ist ein Taschenrechner für das Terminal mit Tastatur-
und Maussteuerung.

Ohne Unterbefehl startet mCalc die interaktive Oberfläche.

Befehle:
  tui      - Interaktive Oberfläche
  eval     - Tastenfolge berechnen und Anzeige ausgeben
  config   - Konfiguration anzeigen und anlegen
  version  - Versionsinformationen`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ~/.mcalc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")

	addTUIFlags(rootCmd)
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Fehler: %s: %v\n", msg, err)
}

// loadConfig loads --config, or the default file when it exists
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	return cfg, path, nil
}

// newLogger creates the application logger. Without a log file entries go
// to out, or nowhere when out is nil.
func newLogger(cfg *config.Config, out io.Writer) (*logging.Logger, error) {
	lc := logging.DefaultLoggerConfig("mcalc")
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.File = cfg.General.LogFile
	lc.Output = out
	return logging.NewLogger(lc)
}
