package main

import (
	"os"

	"github.com/calebcase/numtext/cmd/numtext/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
