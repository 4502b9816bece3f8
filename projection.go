package rebalance

// Projection is one asset's post-allocation state: its balance once the new
// funds land, and the ratio that balance represents, reported against target.
type Projection struct {
	Name        string
	FutureValue Money
	FutureRatio Percent
	TargetRatio Percent
}

// Project derives the post-allocation balances and ratios from an allocation
// result. Allocations are matched to assets by position, as produced by
// Allocate. When the future total is zero every ratio is zero.
func Project(p *Portfolio, allocs []Allocation) []Projection {
	projs := make([]Projection, 0, len(p.Assets))
	for i, a := range p.Assets {
		future := a.Value
		if i < len(allocs) {
			future = future.Add(allocs[i].Amount)
		}
		projs = append(projs, Projection{
			Name:        a.Name,
			FutureValue: future,
			TargetRatio: a.TargetRatio,
		})
	}

	total := M(0, p.Currency())
	for _, pr := range projs {
		total = total.Add(pr.FutureValue)
	}
	for i := range projs {
		projs[i].FutureRatio = projs[i].FutureValue.RatioOf(total)
	}
	return projs
}
