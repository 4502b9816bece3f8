package rebalance

import "fmt"

// Classification tags the outcome of gap and allocation analysis for one
// asset class. Presentation (emoji, color, wording) attaches at the rendering
// boundary, never here.
type Classification int

const (
	// Hold means the asset's drift is within its tolerance band and should be ignored.
	Hold Classification = iota
	// BuyDeviation means the asset is under target beyond its tolerance band.
	BuyDeviation
	// SellDeviation means the asset is over target beyond its tolerance band.
	SellDeviation
	// BuyProportional means the asset receives new funds following the target
	// mix, with no deficit of its own to close.
	BuyProportional
)

func (c Classification) String() string {
	switch c {
	case Hold:
		return "hold"
	case BuyDeviation:
		return "buy-deviation"
	case SellDeviation:
		return "sell-deviation"
	case BuyProportional:
		return "buy-proportional"
	default:
		return "unknown"
	}
}

// ParseClassification parses a string into a Classification.
func ParseClassification(s string) (Classification, error) {
	switch s {
	case "hold":
		return Hold, nil
	case "buy-deviation":
		return BuyDeviation, nil
	case "sell-deviation":
		return SellDeviation, nil
	case "buy-proportional":
		return BuyProportional, nil
	default:
		return 0, fmt.Errorf("unknown classification: %q", s)
	}
}
