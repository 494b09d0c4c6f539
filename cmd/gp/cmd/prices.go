package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func pricesCmd() *cobra.Command {
	var zip string

	cmd := &cobra.Command{
		Use:   "prices <item>",
		Short: "Compare an item's price across vendors",
		Long: "Queries every configured vendor for the item and prints one row per\n" +
			"matching product, followed by how each vendor fared.",
		Example: `  gp prices ribeye
  gp prices "whole milk" --zip 80911
  gp prices eggs --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Prices(cmd.Context(), args[0], zip)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if err := printPricesTable(os.Stdout, resp.Prices); err != nil {
				return err
			}
			fmt.Println()
			return printSourcesTable(os.Stdout, resp.Sources)
		},
	}
	cmd.Flags().StringVar(&zip, "zip", "", "ZIP code to search near (vendor default when empty)")

	return cmd
}
