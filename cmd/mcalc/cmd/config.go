package cmd

import (
	"fmt"

	"github.com/msto63/mCalc/pkg/core/config"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Konfiguration verwalten",
	Long: `Zeigt die aktive Konfiguration an oder legt eine neue Config-Datei an.

Die Config-Datei wird als TOML (Standard) oder YAML (.yaml, .yml)
gelesen. Ohne --config wird ~/.mcalc/config.toml verwendet, sofern
vorhanden.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Zeigt die aktive Konfiguration (TOML)",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Schreibt eine Config-Datei mit Standardwerten",
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Zeigt den Pfad der Config-Datei",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Vorhandene Datei überschreiben")
}

// configPath is --config or the default location
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		printError(cmd.ErrOrStderr(), "Config konnte nicht geladen werden", err)
		return err
	}

	data, err := cfg.Encode()
	if err != nil {
		printError(cmd.ErrOrStderr(), "Config konnte nicht ausgegeben werden", err)
		return err
	}

	out := cmd.OutOrStdout()
	if path == "" {
		fmt.Fprintln(out, "# Quelle: Standardwerte")
	} else {
		fmt.Fprintf(out, "# Quelle: %s\n", path)
	}
	_, err = out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if err := config.WriteDefault(path, configForce); err != nil {
		printError(cmd.ErrOrStderr(), "Config konnte nicht geschrieben werden", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config geschrieben: %s\n", path)
	return nil
}
