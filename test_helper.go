package rebalance

// helpers shared by tests in this package.

// eur is a shorthand for amounts in the test currency.
func eur(v float64) Money { return M(v, "EUR") }

// demoPortfolio returns the canonical three-class snapshot used across
// tests: equity/gold/cash at 60/10/30 targets, values 650/150/200.
func demoPortfolio(funds float64) *Portfolio {
	return &Portfolio{
		Assets: []AssetClass{
			NewAsset("Equity", 60, eur(650), eur(520)),
			NewAsset("Gold", 10, eur(150), eur(120)),
			NewCashAsset("Cash", 30, eur(200)),
		},
		AdditionalFunds: eur(funds),
	}
}
