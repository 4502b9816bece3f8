package rebalance

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a portfolio snapshot that must be rejected before
// any allocation runs: negative amounts, or target ratios not summing to 100.
var ErrInvalidInput = errors.New("invalid input")

// AssetClass is one slice of the portfolio: an asset category with its
// operator-declared target ratio, its current market value and its cost basis.
type AssetClass struct {
	Name        string
	TargetRatio Percent
	Value       Money
	CostBasis   Money
	// Cash marks the risk-free class. Its cost basis is by definition equal
	// to its value, so it never carries an unrealized gain or loss.
	Cash bool
}

// NewAsset returns an asset class entry.
func NewAsset(name string, target Percent, value, costBasis Money) AssetClass {
	return AssetClass{Name: name, TargetRatio: target, Value: value, CostBasis: costBasis}
}

// NewCashAsset returns the cash entry. Cost basis is defined as the current value.
func NewCashAsset(name string, target Percent, value Money) AssetClass {
	return AssetClass{Name: name, TargetRatio: target, Value: value, CostBasis: value, Cash: true}
}

// Portfolio is an immutable snapshot of the holdings, constructed once per
// computation cycle and passed explicitly into every function of this package.
type Portfolio struct {
	Assets []AssetClass
	// AdditionalFunds is the new money to allocate this cycle.
	AdditionalFunds Money
}

// Currency returns the snapshot currency, taken from the first entry carrying one.
func (p *Portfolio) Currency() string {
	for _, a := range p.Assets {
		if c := a.Value.Currency(); c != "" {
			return c
		}
	}
	return p.AdditionalFunds.Currency()
}

// TotalValue returns the sum of all current asset values, excluding additional funds.
func (p *Portfolio) TotalValue() Money {
	total := M(0, p.Currency())
	for _, a := range p.Assets {
		total = total.Add(a.Value)
	}
	return total
}

// ProjectedTotal returns the hypothetical post-funding total: current values
// plus additional funds.
func (p *Portfolio) ProjectedTotal() Money {
	return p.TotalValue().Add(p.AdditionalFunds)
}

// TargetSum returns the sum of all target ratios. It is expected to be 100.
func (p *Portfolio) TargetSum() Percent {
	var sum Percent
	for _, a := range p.Assets {
		sum += a.TargetRatio
	}
	return sum
}

// Check surfaces invariant violations of the snapshot. It never corrects
// them: a ratio sum different from 100 is reported, not normalized. All
// failures are collected so the operator can fix them in one pass.
func (p *Portfolio) Check() error {
	var errs error
	if sum := p.TargetSum(); !sum.Equal(100) {
		errs = errors.Join(errs, fmt.Errorf("%w: target ratios sum to %s, expected 100%%", ErrInvalidInput, sum))
	}
	// a snapshot has a single currency, money arithmetic refuses to mix them
	currency := p.Currency()
	for _, a := range p.Assets {
		if c := a.Value.Currency(); c != "" && c != currency {
			errs = errors.Join(errs, fmt.Errorf("%w: asset %q is in %s, the snapshot is in %s", ErrInvalidInput, a.Name, c, currency))
		} else if c := a.CostBasis.Currency(); c != "" && c != currency {
			errs = errors.Join(errs, fmt.Errorf("%w: asset %q cost basis is in %s, the snapshot is in %s", ErrInvalidInput, a.Name, c, currency))
		}
		if a.TargetRatio < 0 {
			errs = errors.Join(errs, fmt.Errorf("%w: asset %q has negative target ratio %s", ErrInvalidInput, a.Name, a.TargetRatio))
		}
		if a.Value.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("%w: asset %q has negative value %s", ErrInvalidInput, a.Name, a.Value))
		}
		if a.CostBasis.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("%w: asset %q has negative cost basis %s", ErrInvalidInput, a.Name, a.CostBasis))
		}
		if a.Cash && !a.CostBasis.Equal(a.Value) {
			errs = errors.Join(errs, fmt.Errorf("%w: cash asset %q cost basis %s differs from its value %s", ErrInvalidInput, a.Name, a.CostBasis, a.Value))
		}
	}
	if p.AdditionalFunds.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("%w: additional funds %s is negative", ErrInvalidInput, p.AdditionalFunds))
	}
	if c := p.AdditionalFunds.Currency(); c != "" && c != currency {
		errs = errors.Join(errs, fmt.Errorf("%w: additional funds are in %s, the snapshot is in %s", ErrInvalidInput, c, currency))
	}
	return errs
}
