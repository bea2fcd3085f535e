package main

import (
	"os"

	"github.com/msto63/mCalc/cmd/mcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
