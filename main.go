package main

import (
	"os"

	"github.com/sahiltalaviya99/portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
