package main

import (
	"os"

	"iconpack/cmd/iconpack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
