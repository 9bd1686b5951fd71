package main

import (
	"os"

	"github.com/msto63/procline/cmd/procline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
