package main

import (
	"os"

	"github.com/stenoproject/plojo/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
