package main

import (
	"os"

	"github.com/mbuckley/feprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
