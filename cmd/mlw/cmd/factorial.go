package cmd

import (
	"fmt"
	"strconv"

	"github.com/msto63/mLW/internal/mathx"
	"github.com/spf13/cobra"
)

var factorialCmd = &cobra.Command{
	Use:   "factorial <n>",
	Short: "Fakultät berechnen (Übung: Rekursion)",
	Long: `Berechnet n! rekursiv.

Beispiele:
  mlw factorial 5
  mlw factorial 0`,
	Args: cobra.ExactArgs(1),
	RunE: runFactorial,
}

func init() {
	rootCmd.AddCommand(factorialCmd)
}

func runFactorial(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("ungültige Zahl: %s", args[0])
	}

	result, err := mathx.Factorial(n)
	if err != nil {
		return fmt.Errorf("Fakultät nicht berechenbar: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d! = %d\n", n, result)
	return nil
}
