package cmd

import (
	"fmt"

	"github.com/msto63/mLW/internal/wrap"
	"github.com/spf13/cobra"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap",
	Short: "Funktion umhüllen (Übung: Higher-Order Functions)",
	Long: `Umhüllt eine Prozedur mit Vorher- und Nachher-Aktionen und führt
sie aus. Die drei Ausgabezeilen erscheinen in fester Reihenfolge.`,
	RunE: runWrap,
}

func init() {
	rootCmd.AddCommand(wrapCmd)
}

func runWrap(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	sayHello := func() {
		fmt.Fprintln(out, "Hallo aus der umhüllten Funktion!")
	}

	wrapped := wrap.Announce(out, "sayHello", sayHello)
	wrapped()

	return nil
}
