package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var greetRepeat int

var greetCmd = &cobra.Command{
	Use:   "greet <name>",
	Short: "Begrüßung ausgeben (Übung: CLI-Argumente)",
	Long: `Gibt eine Begrüßungszeile für den angegebenen Namen aus.

Beispiele:
  mlw greet Anna
  mlw greet Anna --repeat 5`,
	Args: cobra.ExactArgs(1),
	RunE: runGreet,
}

func init() {
	rootCmd.AddCommand(greetCmd)

	greetCmd.Flags().IntVarP(&greetRepeat, "repeat", "r", 1, "Anzahl der Wiederholungen")
}

func runGreet(cmd *cobra.Command, args []string) error {
	repeat := greetRepeat

	// Config may raise the default, an explicit flag always wins
	if !cmd.Flags().Changed("repeat") {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		repeat = cfg.Greet.Repeat
	}

	writeGreetings(cmd.OutOrStdout(), args[0], repeat)
	return nil
}

// writeGreetings prints one greeting line per repetition
func writeGreetings(w io.Writer, name string, repeat int) {
	for i := 0; i < repeat; i++ {
		fmt.Fprintf(w, "Hallo, %s!\n", name)
	}
}
