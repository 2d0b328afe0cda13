package cmd

import (
	"context"
	"fmt"

	"github.com/msto63/mLW/internal/scrape"
	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Seitentitel abrufen (Übung: Web-Scraping)",
	Long: `Lädt eine Webseite und gibt den Inhalt ihres Titel-Elements aus.

Ohne Argument wird die in [scrape] konfigurierte URL verwendet.

Beispiele:
  mlw scrape
  mlw scrape https://example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Empty url lets the client fall back to the configured default
	url := ""
	if len(args) == 1 {
		url = args[0]
	}

	logger := newLogger("scrape", cfg)
	if url != "" {
		logger.Debug("fetching page", "url", url)
	} else {
		logger.Debug("fetching page", "url", cfg.Scrape.URL)
	}

	client := scrape.NewClient(scrape.Config{
		URL:     cfg.Scrape.URL,
		Timeout: cfg.Scrape.Timeout.Duration,
	})

	title, err := client.FetchTitle(context.Background(), url)
	if err != nil {
		return fmt.Errorf("Seite konnte nicht geladen werden: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Titel: %s\n", title)
	return nil
}
