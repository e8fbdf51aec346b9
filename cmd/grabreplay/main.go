package main

import (
	"os"

	"github.com/phanxgames/willowxr/cmd/grabreplay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
