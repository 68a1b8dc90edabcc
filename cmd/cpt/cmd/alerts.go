package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

func alertsCmd() *cobra.Command {
	alertRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Manage price alerts",
		Long: "Manage price alerts that fire when a card's market price crosses a\n" +
			"target. Triggered alerts deactivate until re-armed with update.",
	}

	alertRoot.AddCommand(
		alertCreateCmd(),
		alertListCmd(),
		alertGetCmd(),
		alertUpdateCmd(),
		alertDeleteCmd(),
	)

	return alertRoot
}

func alertCreateCmd() *cobra.Command {
	var (
		alertCard      string
		alertTarget    float64
		alertDirection string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a price alert",
		Example: `  # Alert when the card drops to $100 or below
  cpt alerts create --card "Wembanyama Prizm Rookie" --target 100 --direction below

  # Alert when it spikes to $250 or above
  cpt alerts create --card "Wembanyama Prizm Rookie" --target 250 --direction above`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if alertCard == "" || alertTarget <= 0 {
				return fmt.Errorf("--card and a positive --target are required")
			}
			direction := domain.AlertDirection(alertDirection)
			if !direction.Valid() {
				return fmt.Errorf("--direction must be above or below")
			}

			a := &domain.Alert{
				CardName:    alertCard,
				TargetPrice: alertTarget,
				Direction:   direction,
				Active:      true,
			}
			c := newClient()
			created, err := c.CreateAlert(context.Background(), a)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Alert created: %s %s $%.2f (id %d).\n",
				created.CardName, created.Direction, created.TargetPrice, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&alertCard, "card", "", "card name")
	cmd.Flags().Float64Var(&alertTarget, "target", 0, "target price")
	cmd.Flags().StringVar(&alertDirection, "direction", "below", "trigger direction (above, below)")

	return cmd
}

func alertListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		Example: `  cpt alerts list
  cpt alerts list --active
  cpt alerts list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			alerts, err := c.ListAlerts(context.Background(), activeOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alerts)
			}
			if len(alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			return printAlertsTable(alerts)
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only show armed alerts")

	return cmd
}

func alertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show alert details",
		Example: `  cpt alerts get 7`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			c := newClient()
			a, err := c.GetAlert(context.Background(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printAlertDetail(a)
		},
	}
}

func alertUpdateCmd() *cobra.Command {
	var (
		alertCard      string
		alertTarget    float64
		alertDirection string
		alertArm       bool
		alertDisarm    bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an alert",
		Long: "Updates an alert's target, direction, or armed state. Fields not\n" +
			"given keep their current value. Use --arm to re-arm a triggered alert.",
		Example: `  cpt alerts update 7 --target 120
  cpt alerts update 7 --arm
  cpt alerts update 7 --direction above --target 250`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if alertArm && alertDisarm {
				return fmt.Errorf("--arm and --disarm are mutually exclusive")
			}

			c := newClient()
			a, err := c.GetAlert(context.Background(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("card") {
				a.CardName = alertCard
			}
			if cmd.Flags().Changed("target") {
				a.TargetPrice = alertTarget
			}
			if cmd.Flags().Changed("direction") {
				direction := domain.AlertDirection(alertDirection)
				if !direction.Valid() {
					return fmt.Errorf("--direction must be above or below")
				}
				a.Direction = direction
			}
			if alertArm {
				a.Active = true
			}
			if alertDisarm {
				a.Active = false
			}

			updated, err := c.UpdateAlert(context.Background(), a)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			return printAlertDetail(updated)
		},
	}
	cmd.Flags().StringVar(&alertCard, "card", "", "card name")
	cmd.Flags().Float64Var(&alertTarget, "target", 0, "target price")
	cmd.Flags().StringVar(&alertDirection, "direction", "", "trigger direction (above, below)")
	cmd.Flags().BoolVar(&alertArm, "arm", false, "re-arm the alert")
	cmd.Flags().BoolVar(&alertDisarm, "disarm", false, "disarm the alert")

	return cmd
}

func alertDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete an alert",
		Example: `  cpt alerts delete 7`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			c := newClient()
			if err := c.DeleteAlert(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Alert %d deleted.\n", id)
			return nil
		},
	}
}
