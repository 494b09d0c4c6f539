// Package main generates CLI reference documentation from the gp and
// grocery-prices command trees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	gpcmd "github.com/donaldgifford/grocery-prices/cmd/gp/cmd"
	servercmd "github.com/donaldgifford/grocery-prices/cmd/grocery-prices/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := []struct {
		dir  string
		root *cobra.Command
	}{
		{dir: "gp", root: gpcmd.Root()},
		{dir: "grocery-prices", root: servercmd.Root()},
	}

	for _, tree := range trees {
		dir := filepath.Join(*output, tree.dir)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Fatalf("creating output directory: %v", err)
		}

		tree.root.DisableAutoGenTag = true
		if err := doc.GenMarkdownTree(tree.root, dir); err != nil {
			log.Fatalf("generating %s docs: %v", tree.dir, err)
		}
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}
