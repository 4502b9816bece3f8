package renderer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/rebalance"
)

// WriteReviewCSV exports the review as CSV, one row per asset, for
// spreadsheet consumers. It should remain a single file and easy to import.
func WriteReviewCSV(w io.Writer, r *rebalance.Review) error {
	cw := csv.NewWriter(w)

	header := []string{"asset", "target_pct", "value", "cost_basis", "unrealized", "ideal", "gap", "deviation_pct", "within_tolerance", "allocated", "share_pct", "future_value", "future_ratio_pct", "classification"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	for i, a := range r.Portfolio.Assets {
		g, al, pr, gain := r.Gaps[i], r.Allocations[i], r.Projections[i], r.Gains.Assets[i]
		row := []string{
			a.Name,
			fmt.Sprintf("%.2f", float64(a.TargetRatio)),
			fmt.Sprintf("%.2f", a.Value.AsFloat()),
			fmt.Sprintf("%.2f", a.CostBasis.AsFloat()),
			fmt.Sprintf("%.2f", gain.Unrealized.AsFloat()),
			fmt.Sprintf("%.2f", g.Ideal.AsFloat()),
			fmt.Sprintf("%.2f", g.Raw.AsFloat()),
			fmt.Sprintf("%.2f", float64(g.Deviation)),
			fmt.Sprintf("%t", g.WithinTolerance),
			fmt.Sprintf("%.2f", al.Amount.AsFloat()),
			fmt.Sprintf("%.2f", float64(al.Share)),
			fmt.Sprintf("%.2f", pr.FutureValue.AsFloat()),
			fmt.Sprintf("%.2f", float64(pr.FutureRatio)),
			al.Classification.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write CSV row for %q: %w", a.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
