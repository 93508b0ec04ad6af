package main

import (
	"os"

	"github.com/sqlbridge/sqlbridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
