package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/msto63/mLW/internal/notes"
	"github.com/spf13/cobra"
)

var notesLimit int

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Notizen speichern (Übung: SQLite)",
	Long: `Verwaltet Notizen in einer lokalen SQLite-Datenbank.

Beispiele:
  mlw notes add "Generics wiederholen"
  mlw notes list
  mlw notes list --limit 5`,
}

var notesAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Notiz speichern",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNotesAdd,
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Notizen anzeigen (neueste zuerst)",
	RunE:  runNotesList,
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesAddCmd)
	notesCmd.AddCommand(notesListCmd)

	notesListCmd.Flags().IntVar(&notesLimit, "limit", 10, "Maximale Anzahl Notizen")
}

func openNoteStore() (*notes.SQLiteStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := notes.NewSQLiteStore(notes.Config{Path: cfg.Notes.Path})
	if err != nil {
		return nil, fmt.Errorf("Notizspeicher konnte nicht geöffnet werden: %v", err)
	}

	return store, nil
}

func runNotesAdd(cmd *cobra.Command, args []string) error {
	store, err := openNoteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	text := strings.Join(args, " ")
	note, err := store.Add(context.Background(), text)
	if err != nil {
		return fmt.Errorf("Notiz konnte nicht gespeichert werden: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Gespeichert: %s (%s)\n", note.Text, note.ID)
	return nil
}

func runNotesList(cmd *cobra.Command, args []string) error {
	store, err := openNoteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.List(context.Background(), notesLimit)
	if err != nil {
		return fmt.Errorf("Notizen konnten nicht geladen werden: %v", err)
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "Keine Notizen vorhanden.")
		return nil
	}

	for _, note := range list {
		fmt.Fprintf(out, "%s  %s\n", note.CreatedAt.Local().Format("2006-01-02 15:04"), note.Text)
	}

	return nil
}
