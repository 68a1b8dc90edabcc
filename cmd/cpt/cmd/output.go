package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/dimedrop/card-price-tracker/internal/api/client"
	"github.com/dimedrop/card-price-tracker/internal/portfolio"
	domain "github.com/dimedrop/card-price-tracker/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printPriceReport(card string, r *domain.PriceReport) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Card:\t%s\n", card)
	tw.writef("Average:\t$%.2f\n", r.AvgPrice)
	tw.writef("High:\t$%.2f\n", r.High)
	tw.writef("Low:\t$%.2f\n", r.Low)
	tw.writef("Samples:\t%d\n", r.Count)
	tw.writef("Source:\t%s\n", r.Source)
	tw.writef("Cached:\t%v\n", r.Cached)
	if !r.CacheDate.IsZero() {
		tw.writef("As of:\t%s\n", r.CacheDate.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ITEM\tTITLE\tPRICE\tBIDS\tCONDITION\tENDS\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t$%.2f\t%d\t%s\t%s\n",
			l.ItemID,
			truncate(l.Title, 40),
			l.CurrentPrice,
			l.BidCount,
			l.Condition,
			l.EndTime.Format("2006-01-02 15:04"),
		)
	}
	return tw.finish()
}

func printPortfolioTable(items []domain.PortfolioItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tCARD\tQTY\tBUY PRICE\tCOST\tCONDITION\n")
	for i := range items {
		p := &items[i]
		tw.writef("%d\t%s\t%d\t$%.2f\t$%.2f\t%s\n",
			p.ID,
			truncate(p.CardName, 40),
			p.Quantity,
			p.BuyPrice,
			p.Cost(),
			p.Condition,
		)
	}
	return tw.finish()
}

func printValuation(r *portfolio.Report) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CARD\tQTY\tCOST\tCURRENT\tP/L\tP/L %%\n")
	for i := range r.Items {
		v := &r.Items[i]
		tw.writef("%s\t%d\t$%.2f\t$%.2f\t$%.2f\t%.2f%%\n",
			truncate(v.Item.CardName, 40),
			v.Item.Quantity,
			v.Cost,
			v.CurrentValue,
			v.ProfitLoss,
			v.ProfitLossPct,
		)
	}
	tw.writef("\n")
	tw.writef("Total cost:\t$%.2f\n", r.TotalCost)
	tw.writef("Total value:\t$%.2f\n", r.TotalValue)
	tw.writef("Profit/loss:\t$%.2f (%.2f%%)\n", r.ProfitLoss, r.ProfitLossPct)
	return tw.finish()
}

func printAlertsTable(alerts []domain.Alert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tCARD\tTARGET\tDIRECTION\tACTIVE\tLAST TRIGGERED\n")
	for i := range alerts {
		a := &alerts[i]
		triggered := "-"
		if a.LastTriggeredAt != nil {
			triggered = a.LastTriggeredAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%d\t%s\t$%.2f\t%s\t%v\t%s\n",
			a.ID,
			truncate(a.CardName, 40),
			a.TargetPrice,
			a.Direction,
			a.Active,
			triggered,
		)
	}
	return tw.finish()
}

func printAlertDetail(a *domain.Alert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%d\n", a.ID)
	tw.writef("Card:\t%s\n", a.CardName)
	tw.writef("Target:\t$%.2f\n", a.TargetPrice)
	tw.writef("Direction:\t%s\n", a.Direction)
	tw.writef("Active:\t%v\n", a.Active)
	if a.LastTriggeredAt != nil {
		tw.writef("Last triggered:\t%s\n", a.LastTriggeredAt.Format("2006-01-02 15:04:05"))
	}
	if a.LastPrice != nil {
		tw.writef("Last price:\t$%.2f\n", *a.LastPrice)
	}
	return tw.finish()
}

func printQuota(q *apiclient.QuotaStatus) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Daily limit:\t%d\n", q.DailyLimit)
	tw.writef("Used today:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	tw.writef("Resets at:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05 MST"))
	return tw.finish()
}

func printSentiment(r *domain.SentimentReport) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Card:\t%s\n", r.CardName)
	tw.writef("Sentiment:\t%s (%.3f)\n", r.Label, r.Score)
	tw.writef("Flip score:\t%d/100\n", r.FlipScore)
	tw.writef("Samples:\t%d\n", r.SampleSize)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
