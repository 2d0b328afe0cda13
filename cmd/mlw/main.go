package main

import (
	"os"

	"github.com/msto63/mLW/cmd/mlw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
