package rebalance

// AssetGain holds the unrealized profit or loss of a single asset class.
type AssetGain struct {
	Name       string
	Value      Money
	CostBasis  Money
	Unrealized Money
	// Return is Unrealized as a percentage of the cost basis, 0 when the
	// cost basis is zero.
	Return Percent
}

// NewGain computes the unrealized gain of one asset class. The cash class
// always yields exactly zero since its cost basis is its value.
func NewGain(a AssetClass) AssetGain {
	unrealized := a.Value.Sub(a.CostBasis)
	return AssetGain{
		Name:       a.Name,
		Value:      a.Value,
		CostBasis:  a.CostBasis,
		Unrealized: unrealized,
		Return:     unrealized.RatioOf(a.CostBasis),
	}
}

// GainsReport holds the unrealized profit and loss of the whole snapshot.
//
// The aggregate sums values and cost bases first and applies the formula to
// the sums: it is not the average of the per-asset percentages. A zero-cost
// asset contributes its value to the sums even though its own Return is 0.
type GainsReport struct {
	Assets     []AssetGain
	Value      Money
	CostBasis  Money
	Unrealized Money
	Return     Percent
}

// NewGainsReport computes per-asset and aggregate unrealized gains.
func NewGainsReport(p *Portfolio) *GainsReport {
	currency := p.Currency()
	report := &GainsReport{
		Value:     M(0, currency),
		CostBasis: M(0, currency),
	}
	for _, a := range p.Assets {
		report.Assets = append(report.Assets, NewGain(a))
		report.Value = report.Value.Add(a.Value)
		report.CostBasis = report.CostBasis.Add(a.CostBasis)
	}
	report.Unrealized = report.Value.Sub(report.CostBasis)
	report.Return = report.Unrealized.RatioOf(report.CostBasis)
	return report
}
