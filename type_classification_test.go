package rebalance

import "testing"

func TestParseClassification(t *testing.T) {
	for _, c := range []Classification{Hold, BuyDeviation, SellDeviation, BuyProportional} {
		parsed, err := ParseClassification(c.String())
		if err != nil {
			t.Fatalf("ParseClassification(%q) error = %v", c, err)
		}
		if parsed != c {
			t.Errorf("ParseClassification(%q) = %s", c, parsed)
		}
	}
	if _, err := ParseClassification("yolo"); err == nil {
		t.Error("ParseClassification accepted an unknown label")
	}
}
