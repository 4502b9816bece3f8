package rebalance

import "fmt"

// Allocation is the share of new funds directed to one asset class.
type Allocation struct {
	Name string
	// Amount is never negative: the engine only directs where new money
	// goes, it never recommends selling to fund another class.
	Amount Money
	// Share is Amount as a percentage of the additional funds, 0 when there
	// are no additional funds.
	Share          Percent
	Classification Classification
}

// Allocate splits the snapshot's additional funds across asset classes using
// the adjusted gaps.
//
// When at least one asset has a positive adjusted gap, funds are routed to
// those deficits proportionally to their size, so the largest shortfalls
// close fastest. Otherwise nothing is urgently underweight and funds follow
// the steady-state target mix; assets receiving money in that branch are
// re-labeled BuyProportional.
//
// The amounts sum exactly to the additional funds: the last deficit absorbs
// the division remainder in the deficit branch, and the target-mix branch is
// exact by construction for ratios summing to 100.
func Allocate(p *Portfolio, gaps []Gap) ([]Allocation, error) {
	funds := p.AdditionalFunds
	if funds.IsNegative() {
		return nil, fmt.Errorf("%w: additional funds %s is negative", ErrInvalidInput, funds)
	}

	zero := M(0, p.Currency())
	allocs := make([]Allocation, len(gaps))
	for i, g := range gaps {
		allocs[i] = Allocation{Name: g.Name, Amount: zero, Classification: g.Classification}
	}

	totalPositive := zero
	lastDeficit := -1
	for i, g := range gaps {
		if g.Adjusted.IsPositive() {
			totalPositive = totalPositive.Add(g.Adjusted)
			lastDeficit = i
		}
	}

	switch {
	case funds.IsZero():
		// nothing to allocate, classifications stay whatever tolerance produced

	case totalPositive.IsPositive():
		// deficit-priority: new money goes to out-of-tolerance shortfalls only
		remainder := funds
		for i, g := range gaps {
			if !g.Adjusted.IsPositive() {
				continue
			}
			amount := remainder
			if i != lastDeficit {
				amount = funds.Scale(g.Adjusted, totalPositive)
				remainder = remainder.Sub(amount)
			}
			if amount.IsNegative() {
				amount = zero
			}
			allocs[i].Amount = amount
		}

	default:
		// neutral: every asset is in tolerance or over target, new money
		// follows the target mix rather than sitting idle
		for i, g := range gaps {
			amount := funds.Portion(targetOf(p, g.Name))
			allocs[i].Amount = amount
			if amount.IsPositive() {
				allocs[i].Classification = BuyProportional
			}
		}
	}

	for i := range allocs {
		allocs[i].Share = allocs[i].Amount.RatioOf(funds)
	}
	return allocs, nil
}

// targetOf returns the target ratio of the named asset, 0 when unknown.
func targetOf(p *Portfolio, name string) Percent {
	for _, a := range p.Assets {
		if a.Name == name {
			return a.TargetRatio
		}
	}
	return 0
}
