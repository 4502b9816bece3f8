package rebalance

// Tolerance bands. Assets with a small target slice get the tighter band: a
// given absolute drift is a larger relative error on a smaller slice.
const (
	tightBand     = Percent(5)
	wideBand      = Percent(10)
	tightTargetAt = Percent(20)
)

// Threshold returns the tolerance band for a target ratio: 5% up to a 20%
// target (inclusive), 10% above.
func Threshold(target Percent) Percent {
	if target <= tightTargetAt {
		return tightBand
	}
	return wideBand
}

// Gap is the computed distance between one asset class and its target slice
// of the projected (post-funding) total.
type Gap struct {
	Name string
	// Ideal is the amount the asset should hold at its target ratio.
	Ideal Money
	// Raw is Ideal minus the current value. Negative when over target.
	Raw Money
	// Deviation is |Raw| as a percentage of the projected total.
	Deviation Percent
	// Threshold is the tolerance band applied to this asset.
	Threshold Percent
	// WithinTolerance is true when Deviation does not exceed Threshold.
	WithinTolerance bool
	// Adjusted is the gap that feeds allocation: Raw when out of tolerance,
	// zero otherwise. Small drifts are deliberately ignored, not corrected.
	Adjusted       Money
	Classification Classification
}

// ComputeGaps derives each asset's gap from the snapshot, against the
// projected total (current values plus additional funds). When the projected
// total is zero every ideal amount and gap is zero.
func ComputeGaps(p *Portfolio) []Gap {
	total := p.ProjectedTotal()
	zero := M(0, p.Currency())

	gaps := make([]Gap, 0, len(p.Assets))
	for _, a := range p.Assets {
		g := Gap{
			Name:      a.Name,
			Threshold: Threshold(a.TargetRatio),
		}
		if total.IsZero() {
			// nothing to divide: every ideal amount and gap is zero
			g.Ideal, g.Raw = zero, zero
		} else {
			g.Ideal = total.Portion(a.TargetRatio)
			g.Raw = g.Ideal.Sub(a.Value)
		}
		g.Deviation = g.Raw.Abs().RatioOf(total)
		g.WithinTolerance = g.Deviation <= g.Threshold

		switch {
		case g.WithinTolerance:
			g.Adjusted = zero
			g.Classification = Hold
		case g.Raw.IsPositive():
			g.Adjusted = g.Raw
			g.Classification = BuyDeviation
		default:
			g.Adjusted = g.Raw
			g.Classification = SellDeviation
		}
		gaps = append(gaps, g)
	}
	return gaps
}
