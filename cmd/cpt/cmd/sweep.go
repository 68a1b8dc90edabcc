package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sweep",
		Short:   "Delete expired price cache entries on the server",
		Example: `  cpt sweep`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			deleted, err := c.SweepCache(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"deleted": deleted})
			}
			fmt.Printf("Deleted %d expired cache entries.\n", deleted)
			return nil
		},
	}
}
