package main

import (
	"os"

	"github.com/wadjakorntonsri/go-link-hub/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
