package cmd

import (
	"context"
	"fmt"

	"github.com/msto63/mLW/internal/jokes"
	"github.com/spf13/cobra"
)

var jokeCmd = &cobra.Command{
	Use:   "joke",
	Short: "Zufälligen Witz abrufen (Übung: API-Client)",
	Long: `Ruft einen zufälligen Witz von der konfigurierten Joke-API ab.

Die API-Adresse lässt sich über [jokes] in der Config-Datei ändern.`,
	RunE: runJoke,
}

func init() {
	rootCmd.AddCommand(jokeCmd)
}

func runJoke(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger("joke", cfg)
	logger.Debug("fetching joke", "base_url", cfg.Jokes.BaseURL)

	client := jokes.NewClient(jokes.Config{
		BaseURL: cfg.Jokes.BaseURL,
		Timeout: cfg.Jokes.Timeout.Duration,
	})

	joke, err := client.Random(context.Background())
	if err != nil {
		return fmt.Errorf("Witz konnte nicht geladen werden: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, joke.Setup)
	fmt.Fprintln(out, joke.Punchline)

	return nil
}
