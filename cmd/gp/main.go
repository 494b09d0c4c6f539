// Package main is the entry point for the gp CLI client.
package main

import (
	"github.com/donaldgifford/grocery-prices/cmd/gp/cmd"
)

func main() {
	cmd.Execute()
}
