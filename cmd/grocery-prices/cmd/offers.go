package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/grocery-prices/internal/config"
	"github.com/donaldgifford/grocery-prices/internal/offers"
	"github.com/donaldgifford/grocery-prices/internal/store"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

func offersCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "offers",
		Short: "Manage the Walmart offer ID mapping in PostgreSQL",
		Long: "Walmart prices only items with a configured offer ID mapping. These commands\n" +
			"manage the mapping when offers.source is postgres.",
	}
	root.AddCommand(offersImportCmd(), offersListCmd(), offersDeleteCmd())
	return root
}

func withStore(fn func(ctx context.Context, s store.Store) error) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	return fn(ctx, s)
}

func offersImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Upsert mappings from a JSON object of item name to offer IDs",
		Example: `  grocery-prices offers import offers.json
  echo '{"milk":["10450114"]}' > offers.json && grocery-prices offers import offers.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading mapping file: %w", err)
			}
			m, err := offers.Parse(string(data))
			if err != nil {
				return err
			}

			return withStore(func(ctx context.Context, s store.Store) error {
				byItem := make(map[string][]string, m.Len())
				for _, item := range m.Items() {
					byItem[item] = m.Lookup(item)
				}
				n, err := s.UpsertOfferMappings(ctx, domain.VendorWalmart, byItem)
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d offer IDs for %d items.\n", n, m.Len())
				return nil
			})
		},
	}
}

func offersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored mappings",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withStore(func(ctx context.Context, s store.Store) error {
				raw, err := s.ListOfferMappings(ctx, domain.VendorWalmart)
				if err != nil {
					return err
				}
				m := offers.FromMap(raw)
				if m.Len() == 0 {
					fmt.Println("No offer mappings found.")
					return nil
				}

				tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ITEM\tOFFER IDS")
				for _, item := range m.Items() {
					fmt.Fprintf(tw, "%s\t%v\n", item, m.Lookup(item))
				}
				return tw.Flush()
			})
		},
	}
}

func offersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item>",
		Short: "Remove every offer ID mapped to an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, s store.Store) error {
				n, err := s.DeleteOfferMappings(ctx, domain.VendorWalmart, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Deleted %d offer IDs.\n", n)
				return nil
			})
		},
	}
}
