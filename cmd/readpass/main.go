package main

import (
	"os"

	"readpass/cmd/readpass/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
