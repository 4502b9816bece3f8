package rebalance

// Review is the complete outcome of one rebalancing computation over a
// snapshot: gaps, allocation of new funds, post-allocation projection and
// unrealized gains. It is recomputed fresh on every call and holds no state.
//
// Market sentiment is deliberately not part of a Review: it is advisory
// only, and is composed next to the numbers at the presentation boundary.
type Review struct {
	Portfolio   *Portfolio
	Gaps        []Gap
	Allocations []Allocation
	Projections []Projection
	Gains       *GainsReport
}

// NewReview validates the snapshot and runs the full computation chain.
// Invariant violations (ErrInvalidInput) are surfaced, never corrected.
func NewReview(p *Portfolio) (*Review, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	gaps := ComputeGaps(p)
	allocs, err := Allocate(p, gaps)
	if err != nil {
		return nil, err
	}
	return &Review{
		Portfolio:   p,
		Gaps:        gaps,
		Allocations: allocs,
		Projections: Project(p, allocs),
		Gains:       NewGainsReport(p),
	}, nil
}

// RebalanceAction is the operator instruction for one asset in a full rebalance.
type RebalanceAction int

const (
	ActionHold RebalanceAction = iota
	ActionBuy
	ActionSell
)

func (a RebalanceAction) String() string {
	switch a {
	case ActionBuy:
		return "buy"
	case ActionSell:
		return "sell"
	default:
		return "hold"
	}
}

// RebalanceStep is one instruction of the full-rebalance procedure: what to
// buy or sell to land exactly on the target mix. Cash steps are account
// transfers, not trades; the renderer phrases them accordingly.
type RebalanceStep struct {
	Name   string
	Action RebalanceAction
	// Amount is the absolute amount to trade or transfer.
	Amount Money
	Cash   bool
}

// stepBand is the raw-gap magnitude below which a step is not worth
// executing and the asset is held as-is.
func stepBand(currency string) Money { return M(0.1, currency) }

// Steps derives the full-rebalance instructions from the raw gaps. Unlike the
// allocation of new funds, these steps close every gap, selling the
// over-target classes to fund the under-target ones.
func (r *Review) Steps() []RebalanceStep {
	band := stepBand(r.Portfolio.Currency())
	steps := make([]RebalanceStep, 0, len(r.Gaps))
	for i, g := range r.Gaps {
		step := RebalanceStep{Name: g.Name, Amount: g.Raw.Abs(), Cash: r.Portfolio.Assets[i].Cash}
		switch {
		case g.Raw.GreaterThan(band):
			step.Action = ActionBuy
		case g.Raw.Neg().GreaterThan(band):
			step.Action = ActionSell
		default:
			step.Action = ActionHold
			step.Amount = M(0, r.Portfolio.Currency())
		}
		steps = append(steps, step)
	}
	return steps
}

// Balanced reports whether the portfolio needs no rebalancing step at all.
func (r *Review) Balanced() bool {
	for _, s := range r.Steps() {
		if s.Action != ActionHold {
			return false
		}
	}
	return true
}
