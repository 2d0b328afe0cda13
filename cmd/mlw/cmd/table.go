package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/msto63/mLW/internal/table"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "CSV-Roundtrip ausführen (Übung: Datei-I/O)",
	Long: `Schreibt eine Beispieltabelle als CSV in das Datenverzeichnis,
liest sie zurück und gibt sie zeilenweise aus.`,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.General.DataDir, "personen.csv")

	if err := table.Sample().WriteFile(path); err != nil {
		return fmt.Errorf("Tabelle konnte nicht geschrieben werden: %v", err)
	}

	loaded, err := table.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Tabelle konnte nicht gelesen werden: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Geschrieben: %s\n", path)
	fmt.Fprintln(out, strings.Join(loaded.Header, " | "))
	for _, row := range loaded.Rows {
		fmt.Fprintln(out, strings.Join(row, " | "))
	}

	return nil
}
