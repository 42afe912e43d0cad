package main

import (
	"os"

	"github.com/winget-powershelll/fourchef/cmd/costcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
