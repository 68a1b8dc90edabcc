package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func listingsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "listings <card>...",
		Short: "Browse live marketplace listings for a card",
		Example: `  cpt listings "Wembanyama Prizm"
  cpt listings Wembanyama Prizm --limit 5
  cpt listings "Jordan Fleer" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			card := strings.Join(args, " ")

			c := newClient()
			listings, err := c.ListListings(context.Background(), card, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(listings)
			}
			if len(listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}
			return printListingsTable(listings)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of listings to return")

	return cmd
}
