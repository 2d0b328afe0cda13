package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/msto63/mLW/internal/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "JSON-Roundtrip ausführen (Übung: Datei-I/O)",
	Long: `Schreibt ein Beispielprofil als JSON in das Datenverzeichnis,
liest es zurück und prüft die Gleichheit aller Felder.`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.General.DataDir, "profile.json")
	original := profile.Sample()

	if err := original.Save(path); err != nil {
		return fmt.Errorf("Profil konnte nicht gespeichert werden: %v", err)
	}

	loaded, err := profile.Load(path)
	if err != nil {
		return fmt.Errorf("Profil konnte nicht gelesen werden: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Geschrieben: %s\n", path)
	fmt.Fprintf(out, "Gelesen:     %s <%s>, Level %d, Projekte %v\n",
		loaded.Username, loaded.Email, loaded.Level, loaded.Projects)

	if !original.Equal(*loaded) {
		return fmt.Errorf("Roundtrip fehlgeschlagen: gelesenes Profil weicht ab")
	}
	fmt.Fprintln(out, "Roundtrip erfolgreich: alle Felder stimmen überein.")

	return nil
}
