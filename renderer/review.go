// Package renderer turns rebalance reports into markdown and CSV. All
// presentation choices (labels, emoji, wording) live here, never in the core.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// label returns the presentation label of a classification.
func label(c rebalance.Classification) string {
	switch c {
	case rebalance.BuyDeviation:
		return "🟢 Buy (deficit)"
	case rebalance.SellDeviation:
		return "🔴 Over target"
	case rebalance.BuyProportional:
		return "🔵 Buy (target mix)"
	default:
		return "⚪️ Hold"
	}
}

// ReviewMarkdown renders the full rebalancing review to a markdown string.
func ReviewMarkdown(r *rebalance.Review) string {
	var b strings.Builder
	p := r.Portfolio
	total := p.TotalValue()

	fmt.Fprint(&b, "# Rebalancing Review\n\n")
	fmt.Fprintf(&b, "Assets total: **%s**", total.String())
	if p.AdditionalFunds.IsPositive() {
		fmt.Fprintf(&b, " — additional funds: **%s**", p.AdditionalFunds.String())
	}
	fmt.Fprint(&b, "\n\n")

	fmt.Fprint(&b, "## Current Allocation\n\n")
	fmt.Fprintln(&b, "| Asset | Value | Current | Target |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, a := range p.Assets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			a.Name, a.Value.String(), a.Value.RatioOf(total).String(), a.TargetRatio.String())
	}
	fmt.Fprintln(&b)

	fmt.Fprint(&b, "## Gap Analysis\n\n")
	fmt.Fprintln(&b, "| Asset | Ideal | Gap | Deviation | Band | Status |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---|")
	for _, g := range r.Gaps {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			g.Name, g.Ideal.String(), g.Raw.SignedString(),
			g.Deviation.String(), g.Threshold.String(), label(g.Classification))
	}
	fmt.Fprintln(&b)

	if p.AdditionalFunds.IsPositive() {
		fmt.Fprint(&b, "## Allocation of New Funds\n\n")
		fmt.Fprintln(&b, "| Asset | Amount | Share | Status |")
		fmt.Fprintln(&b, "|:---|---:|---:|:---|")
		for _, a := range r.Allocations {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				a.Name, a.Amount.String(), a.Share.String(), label(a.Classification))
		}
		fmt.Fprintf(&b, "| **Total** | **%s** | | |\n\n", p.AdditionalFunds.String())

		fmt.Fprint(&b, "## After Allocation\n\n")
		fmt.Fprintln(&b, "| Asset | Value | Ratio | Target |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|")
		for _, pr := range r.Projections {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				pr.Name, pr.FutureValue.String(), pr.FutureRatio.String(), pr.TargetRatio.String())
		}
		fmt.Fprintln(&b)
	}

	writeSteps(&b, r)

	fmt.Fprint(&b, "## After a Full Rebalance\n\n")
	fmt.Fprintf(&b, "Closing every gap would leave a total of **%s** split as:\n\n", p.ProjectedTotal().String())
	fmt.Fprintln(&b, "| Asset | Amount | Ratio |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for i, g := range r.Gaps {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", g.Name, g.Ideal.String(), p.Assets[i].TargetRatio.String())
	}
	fmt.Fprintln(&b)

	return b.String()
}

// writeSteps renders the full-rebalance procedure: sells first, then buys.
// Cash steps are phrased as account transfers, not trades.
func writeSteps(b *strings.Builder, r *rebalance.Review) {
	fmt.Fprint(b, "## Rebalancing Procedure\n\n")

	if r.Balanced() {
		fmt.Fprint(b, "🎉 The portfolio is perfectly balanced, nothing to do.\n\n")
		return
	}

	steps := r.Steps()
	var sells, buys []rebalance.RebalanceStep
	for _, s := range steps {
		switch s.Action {
		case rebalance.ActionSell:
			sells = append(sells, s)
		case rebalance.ActionBuy:
			buys = append(buys, s)
		}
	}

	if len(sells) > 0 {
		fmt.Fprint(b, "**Step 1: sell the excess**\n\n")
		for _, s := range sells {
			if s.Cash {
				fmt.Fprintf(b, "- Move **%s** from the bank account to the brokerage account.\n", s.Amount.String())
			} else {
				fmt.Fprintf(b, "- Sell **%s** worth of %s.\n", s.Amount.String(), s.Name)
			}
		}
		fmt.Fprintln(b)
	}
	if len(buys) > 0 {
		fmt.Fprint(b, "**Step 2: buy the shortfall**\n\n")
		for _, s := range buys {
			if s.Cash {
				fmt.Fprintf(b, "- Set aside **%s** back into the bank account (or another risk-free asset).\n", s.Amount.String())
			} else {
				fmt.Fprintf(b, "- Buy **%s** worth of %s.\n", s.Amount.String(), s.Name)
			}
		}
		fmt.Fprintln(b)
	}
}
