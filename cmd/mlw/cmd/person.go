package cmd

import (
	"fmt"

	"github.com/msto63/mLW/internal/person"
	"github.com/spf13/cobra"
)

var personAge int

var personCmd = &cobra.Command{
	Use:   "person <name>",
	Short: "Datentyp mit Verhalten (Übung: OOP)",
	Long: `Legt eine Person an und zeigt ihre Methoden.

Beispiele:
  mlw person Anna
  mlw person Max --age 15`,
	Args: cobra.ExactArgs(1),
	RunE: runPerson,
}

func init() {
	rootCmd.AddCommand(personCmd)

	personCmd.Flags().IntVar(&personAge, "age", 30, "Alter der Person")
}

func runPerson(cmd *cobra.Command, args []string) error {
	p := person.New(args[0], personAge)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, p.Greeting())
	if p.IsAdult() {
		fmt.Fprintf(out, "%s ist volljährig.\n", p.Name)
	} else {
		fmt.Fprintf(out, "%s ist minderjährig.\n", p.Name)
	}

	return nil
}
