package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// GainsMarkdown renders the unrealized gains report to a markdown string.
func GainsMarkdown(report *rebalance.GainsReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Unrealized Gains\n\n")
	fmt.Fprintln(&b, "| Asset | Value | Cost Basis | Unrealized | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, g := range report.Assets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			g.Name, g.Value.String(), g.CostBasis.String(),
			g.Unrealized.SignedString(), g.Return.SignedString())
	}
	fmt.Fprintf(&b, "| **%s** | **%s** | **%s** | **%s** | **%s** |\n",
		"Total",
		report.Value.String(),
		report.CostBasis.String(),
		report.Unrealized.SignedString(),
		report.Return.SignedString(),
	)

	return b.String()
}
