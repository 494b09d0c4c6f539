// Package main is the entry point for the grocery-prices server.
package main

import (
	"os"

	"github.com/donaldgifford/grocery-prices/cmd/grocery-prices/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
