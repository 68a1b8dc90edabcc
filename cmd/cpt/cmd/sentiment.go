package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func sentimentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment <card>...",
		Short: "Analyze collector sentiment for a card",
		Long: "Scores recent collector chatter about a card and reports a sentiment\n" +
			"label plus a 0-100 flip score estimating short-term resale upside.",
		Example: `  cpt sentiment "Wembanyama Prizm Rookie"
  cpt sentiment Wembanyama --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			card := strings.Join(args, " ")

			c := newClient()
			report, err := c.GetSentiment(context.Background(), card)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(report)
			}
			return printSentiment(report)
		},
	}
}
