package cmd

import (
	"fmt"

	"github.com/msto63/mLW/internal/seqs"
	"github.com/spf13/cobra"
)

var squaresN int

var squaresCmd = &cobra.Command{
	Use:   "squares",
	Short: "Sequenz-Transformationen (Übung: Map/Filter)",
	Long: `Zeigt Quadratzahlen, gerade Quadratzahlen und eine Map-Anwendung
mit anonymer Funktion.

Beispiele:
  mlw squares
  mlw squares --n 15`,
	RunE: runSquares,
}

func init() {
	rootCmd.AddCommand(squaresCmd)

	squaresCmd.Flags().IntVar(&squaresN, "n", 10, "Obergrenze des Zahlenbereichs")
}

func runSquares(cmd *cobra.Command, args []string) error {
	if squaresN < 1 {
		return fmt.Errorf("Obergrenze muss mindestens 1 sein, nicht %d", squaresN)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Quadrate 1..%d:        %v\n", squaresN, seqs.Squares(squaresN))
	fmt.Fprintf(out, "Gerade Quadrate:      %v\n", seqs.EvenSquares(squaresN))
	fmt.Fprintf(out, "Verdoppelt (Lambda):  %v\n", seqs.Doubled(seqs.Range(squaresN)))

	words := []string{"Go", "Gopher", "Lernwerkstatt"}
	fmt.Fprintf(out, "Wortlängen %v: %v\n", words, seqs.Lengths(words))

	return nil
}
