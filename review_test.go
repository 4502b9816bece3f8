package rebalance

import (
	"errors"
	"testing"
)

func TestNewReview(t *testing.T) {
	review, err := NewReview(demoPortfolio(100))
	if err != nil {
		t.Fatalf("NewReview() error = %v", err)
	}
	if len(review.Gaps) != 3 || len(review.Allocations) != 3 || len(review.Projections) != 3 {
		t.Fatalf("NewReview() produced %d gaps, %d allocations, %d projections; want 3 of each",
			len(review.Gaps), len(review.Allocations), len(review.Projections))
	}
	if len(review.Gains.Assets) != 3 {
		t.Fatalf("NewReview() produced %d gains, want 3", len(review.Gains.Assets))
	}
}

func TestNewReview_SurfacesBadTargets(t *testing.T) {
	p := demoPortfolio(0)
	p.Assets[0].TargetRatio = 50 // ratios now sum to 90
	if _, err := NewReview(p); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("NewReview() error = %v, want ErrInvalidInput", err)
	}
}

func TestNewReview_SurfacesNegativeAmounts(t *testing.T) {
	p := demoPortfolio(0)
	p.Assets[1].CostBasis = eur(-5)
	if _, err := NewReview(p); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("NewReview() error = %v, want ErrInvalidInput", err)
	}
}

func TestNewReview_SurfacesMixedCurrencies(t *testing.T) {
	// a hand-edited snapshot can mix currencies: the gate rejects it before
	// any money arithmetic runs
	p := demoPortfolio(100)
	p.Assets[1].Value = M(150, "USD")
	p.Assets[1].CostBasis = M(120, "USD")
	if _, err := NewReview(p); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("NewReview() error = %v, want ErrInvalidInput", err)
	}
}

func TestReview_Steps(t *testing.T) {
	// pure rebalance, no new funds: total 1000, ideals 600/100/300,
	// so sell 50 equity, sell 50 gold, move 100 into cash
	review, err := NewReview(demoPortfolio(0))
	if err != nil {
		t.Fatalf("NewReview() error = %v", err)
	}
	if review.Balanced() {
		t.Fatal("Balanced() = true, want false")
	}

	steps := review.Steps()
	testCases := []struct {
		name   string
		action RebalanceAction
		amount Money
		cash   bool
	}{
		{"Equity", ActionSell, eur(50), false},
		{"Gold", ActionSell, eur(50), false},
		{"Cash", ActionBuy, eur(100), true},
	}
	for i, tc := range testCases {
		s := steps[i]
		if s.Name != tc.name || s.Action != tc.action || !s.Amount.Equal(tc.amount) || s.Cash != tc.cash {
			t.Errorf("steps[%d] = %+v, want {%s %s %s cash=%t}", i, s, tc.name, tc.action, tc.amount, tc.cash)
		}
	}
}

func TestReview_StepsIgnoreTinyGaps(t *testing.T) {
	// gaps below the 0.1 band are not worth a trade
	p := &Portfolio{
		Assets: []AssetClass{
			NewAsset("Equity", 60, eur(600.05), eur(500)),
			NewAsset("Gold", 10, eur(99.98), eur(90)),
			NewCashAsset("Cash", 30, eur(299.97)),
		},
	}
	review, err := NewReview(p)
	if err != nil {
		t.Fatalf("NewReview() error = %v", err)
	}
	if !review.Balanced() {
		t.Errorf("Balanced() = false, want true; steps = %+v", review.Steps())
	}
}

func TestNewReview_Idempotent(t *testing.T) {
	p := demoPortfolio(100)
	first, err := NewReview(p)
	if err != nil {
		t.Fatalf("NewReview() error = %v", err)
	}
	second, err := NewReview(p)
	if err != nil {
		t.Fatalf("NewReview() error = %v", err)
	}
	for i := range first.Gaps {
		if !first.Gaps[i].Raw.Equal(second.Gaps[i].Raw) {
			t.Errorf("gap %d differs between identical calls", i)
		}
		if !first.Allocations[i].Amount.Equal(second.Allocations[i].Amount) {
			t.Errorf("allocation %d differs between identical calls", i)
		}
	}
}
