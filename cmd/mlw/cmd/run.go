package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runNetwork bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Alle Übungen nacheinander ausführen",
	Long: `Führt die Offline-Übungen der Reihe nach aus. Netzwerk-Übungen
(joke, scrape) werden nur mit --network einbezogen.`,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runNetwork, "network", false, "Netzwerk-Übungen einbeziehen")
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger("run", cfg).WithRunID()

	type exercise struct {
		name string
		fn   func(*cobra.Command, []string) error
		args []string
	}

	exercises := []exercise{
		{"person", runPerson, []string{"Anna"}},
		{"squares", runSquares, nil},
		{"wrap", runWrap, nil},
		{"factorial", runFactorial, []string{"5"}},
		{"profile", runProfile, nil},
		{"table", runTable, nil},
	}

	if runNetwork {
		exercises = append(exercises,
			exercise{"joke", runJoke, nil},
			exercise{"scrape", runScrape, nil},
		)
	}

	out := cmd.OutOrStdout()
	for _, ex := range exercises {
		logger.Info("running exercise", "exercise", ex.name)
		fmt.Fprintf(out, "=== %s ===\n", ex.name)

		if err := ex.fn(cmd, ex.args); err != nil {
			logger.Error("exercise failed", "exercise", ex.name, "error", err)
			return fmt.Errorf("Übung %s fehlgeschlagen: %v", ex.name, err)
		}

		fmt.Fprintln(out)
	}

	logger.Info("all exercises finished", "count", len(exercises))
	return nil
}
