package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show today's eBay API budget",
		Long: "Shows how much of the daily eBay API call budget has been spent and\n" +
			"when the counter resets. Cached price lookups do not spend budget.",
		Example: `  cpt quota
  cpt quota --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			status, err := c.GetQuota(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(status)
			}
			return printQuota(status)
		},
	}
}
