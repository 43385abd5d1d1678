package main

import (
	"os"

	"github.com/lingotutor/lingotutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
