package main

import (
	"os"

	"jupbuy/cmd/jupbuy/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
