package main

import (
	"os"

	"github.com/taskai/taskai/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
