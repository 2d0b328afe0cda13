package cmd

import (
	"fmt"
	"os"

	"github.com/msto63/mLW/pkg/core/config"
	"github.com/msto63/mLW/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mlw",
	Short: "meinLERNWERK - Go Lernwerkstatt",
	Long: `meinLERNWERK ist eine Sammlung kleiner, unabhängiger Go-Übungen,
jede als eigenes Unterkommando ausführbar.

Übungen:
  person     - Datentyp mit Verhalten (OOP)
  greet      - Kommandozeilen-Argumente
  joke       - HTTP-API-Client (JSON)
  scrape     - Web-Scraping (HTML-Titel)
  squares    - Sequenz-Transformationen (Map/Filter)
  wrap       - Funktionen umhüllen (Higher-Order)
  factorial  - Rekursion
  profile    - JSON-Datei-Roundtrip
  table      - CSV-Datei-Roundtrip
  notes      - SQLite-Speicher
  run        - Alle Übungen nacheinander`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/mlw.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// loadConfig loads the workbench configuration, honoring the --config flag
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// newLogger creates a logger for one exercise, honoring --verbose
func newLogger(name string, cfg *config.Config) *logging.Logger {
	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}

	return logging.NewWithConfig(logging.Config{
		Name:   name,
		Level:  level,
		Format: cfg.General.LogFormat,
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
