package main

import (
	"os"

	"hotel-aggregator-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
