package main

import (
	"os"

	"github.com/parsekit/semguard/cmd/semguard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
