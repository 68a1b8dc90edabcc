package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func pricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prices <card>...",
		Short: "Look up current prices for a card",
		Long: "Looks up the current market price for a card. Results come from the\n" +
			"server's 90-day price cache when fresh, otherwise from a live eBay\n" +
			"search that counts against the daily API budget.",
		Example: `  cpt prices "Wembanyama Prizm Rookie"
  cpt prices Wembanyama Prizm --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			card := strings.Join(args, " ")

			c := newClient()
			report, err := c.GetPrices(context.Background(), card)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(report)
			}
			return printPriceReport(card, report)
		},
	}
}
