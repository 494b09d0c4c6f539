package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func vendorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vendors",
		Short: "List configured vendors and their quotas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vendors, err := newClient().Vendors(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(vendors)
			}
			return printVendorsTable(os.Stdout, vendors)
		},
	}
}
