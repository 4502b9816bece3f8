package rebalance

import "testing"

func TestNewGain(t *testing.T) {
	g := NewGain(NewAsset("Equity", 60, eur(650), eur(520)))
	if !g.Unrealized.Equal(eur(130)) {
		t.Errorf("Unrealized = %s, want %s", g.Unrealized, eur(130))
	}
	if !g.Return.Equal(25) {
		t.Errorf("Return = %s, want 25%%", g.Return)
	}
}

func TestNewGain_Loss(t *testing.T) {
	g := NewGain(NewAsset("Gold", 10, eur(90), eur(120)))
	if !g.Unrealized.Equal(eur(-30)) {
		t.Errorf("Unrealized = %s, want %s", g.Unrealized, eur(-30))
	}
	if !g.Return.Equal(-25) {
		t.Errorf("Return = %s, want -25%%", g.Return)
	}
}

func TestNewGain_ZeroCostBasis(t *testing.T) {
	// a zero cost basis never divides: the return is defined to be 0
	g := NewGain(NewAsset("Airdrop", 0, eur(50), eur(0)))
	if !g.Unrealized.Equal(eur(50)) {
		t.Errorf("Unrealized = %s, want %s", g.Unrealized, eur(50))
	}
	if g.Return != 0 {
		t.Errorf("Return = %s, want 0 on zero cost basis", g.Return)
	}
}

func TestNewGain_CashIsAlwaysFlat(t *testing.T) {
	g := NewGain(NewCashAsset("Cash", 30, eur(200)))
	if !g.Unrealized.IsZero() {
		t.Errorf("Unrealized = %s, want 0 for cash", g.Unrealized)
	}
	if g.Return != 0 {
		t.Errorf("Return = %s, want 0 for cash", g.Return)
	}
}

func TestNewGainsReport_AggregateSumsFirst(t *testing.T) {
	// aggregate return applies the formula to the sums; it is NOT the
	// average of the per-asset percentages (which would be 12.5% here)
	p := &Portfolio{
		Assets: []AssetClass{
			NewAsset("Equity", 60, eur(125), eur(100)), // +25%
			NewAsset("Gold", 40, eur(300), eur(300)),   // 0%
		},
	}
	report := NewGainsReport(p)
	if !report.Value.Equal(eur(425)) {
		t.Errorf("Value = %s, want %s", report.Value, eur(425))
	}
	if !report.CostBasis.Equal(eur(400)) {
		t.Errorf("CostBasis = %s, want %s", report.CostBasis, eur(400))
	}
	if !report.Unrealized.Equal(eur(25)) {
		t.Errorf("Unrealized = %s, want %s", report.Unrealized, eur(25))
	}
	if !report.Return.Equal(6.25) {
		t.Errorf("Return = %s, want 6.25%%", report.Return)
	}
}

func TestNewGainsReport_ZeroCostContributesValue(t *testing.T) {
	p := &Portfolio{
		Assets: []AssetClass{
			NewAsset("Equity", 50, eur(100), eur(100)),
			NewAsset("Airdrop", 50, eur(100), eur(0)),
		},
	}
	report := NewGainsReport(p)
	if !report.Value.Equal(eur(200)) {
		t.Errorf("Value = %s, want %s: zero-cost assets still count in the sums", report.Value, eur(200))
	}
	if !report.Unrealized.Equal(eur(100)) {
		t.Errorf("Unrealized = %s, want %s", report.Unrealized, eur(100))
	}
	if !report.Return.Equal(100) {
		t.Errorf("Return = %s, want 100%%", report.Return)
	}
}
