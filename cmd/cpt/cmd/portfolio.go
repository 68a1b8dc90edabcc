package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

func portfolioCmd() *cobra.Command {
	portfolioRoot := &cobra.Command{
		Use:   "portfolio",
		Short: "Manage your card portfolio",
		Long: "Manage card holdings: record purchases, list what you own, and price\n" +
			"the whole portfolio against the current market.",
	}

	portfolioRoot.AddCommand(
		portfolioAddCmd(),
		portfolioListCmd(),
		portfolioGetCmd(),
		portfolioDeleteCmd(),
		portfolioValuationCmd(),
	)

	return portfolioRoot
}

func portfolioAddCmd() *cobra.Command {
	var (
		itemCard      string
		itemBuyPrice  float64
		itemQuantity  int
		itemCondition string
		itemDate      string
		itemNotes     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a holding to the portfolio",
		Example: `  # Record a single raw card
  cpt portfolio add --card "Wembanyama Prizm Rookie" --price 150

  # Record a graded multi-card purchase
  cpt portfolio add --card "Jordan Fleer #57" --price 320 --qty 2 \
    --condition "PSA 8" --date 2025-06-01 --notes "card show pickup"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if itemCard == "" || itemBuyPrice <= 0 {
				return fmt.Errorf("--card and a positive --price are required")
			}

			item := &domain.PortfolioItem{
				CardName:  itemCard,
				BuyPrice:  itemBuyPrice,
				Quantity:  itemQuantity,
				Condition: itemCondition,
				Notes:     itemNotes,
			}
			if itemDate != "" {
				d, err := time.Parse("2006-01-02", itemDate)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				item.PurchaseDate = &d
			}

			c := newClient()
			created, err := c.AddPortfolioItem(context.Background(), item)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Added %s x%d at $%.2f (id %d).\n",
				created.CardName, created.Quantity, created.BuyPrice, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&itemCard, "card", "", "card name")
	cmd.Flags().Float64Var(&itemBuyPrice, "price", 0, "purchase price per card")
	cmd.Flags().IntVar(&itemQuantity, "qty", 1, "number of copies")
	cmd.Flags().StringVar(&itemCondition, "condition", "", "condition or grade")
	cmd.Flags().StringVar(&itemDate, "date", "", "purchase date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&itemNotes, "notes", "", "free-form notes")

	return cmd
}

func portfolioListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all holdings",
		Example: `  cpt portfolio list
  cpt portfolio list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			items, err := c.ListPortfolio(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Println("Portfolio is empty.")
				return nil
			}
			return printPortfolioTable(items)
		},
	}
}

func portfolioGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a single holding",
		Example: `  cpt portfolio get 12`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			c := newClient()
			item, err := c.GetPortfolioItem(context.Background(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(item)
			}
			return printPortfolioTable([]domain.PortfolioItem{*item})
		},
	}
}

func portfolioDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove a holding",
		Example: `  cpt portfolio delete 12`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			c := newClient()
			if err := c.DeletePortfolioItem(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Holding %d deleted.\n", id)
			return nil
		},
	}
}

func portfolioValuationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valuation",
		Short: "Price the portfolio against the current market",
		Long: "Looks up the current market price for every holding and reports\n" +
			"per-card and total profit or loss. Lookups go through the price\n" +
			"cache, so a fresh valuation may spend eBay API calls.",
		Example: `  cpt portfolio valuation
  cpt portfolio valuation --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			report, err := c.GetValuation(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(report)
			}
			if len(report.Items) == 0 {
				fmt.Println("Portfolio is empty.")
				return nil
			}
			return printValuation(report)
		},
	}
}
