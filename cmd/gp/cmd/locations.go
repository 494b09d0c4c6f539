package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "locations <zip>",
		Short:   "List stores near a ZIP code",
		Example: `  gp locations 80911`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Locations(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if err := printLocationsTable(os.Stdout, resp.Locations); err != nil {
				return err
			}
			fmt.Println()
			return printSourcesTable(os.Stdout, resp.Sources)
		},
	}
}
