package rebalance

import (
	"strings"
	"testing"
)

func TestDefaultPresets(t *testing.T) {
	for _, p := range DefaultPresets() {
		var sum Percent
		hasCash := false
		for _, target := range p.Targets {
			sum += Percent(target.Ratio)
			hasCash = hasCash || target.Cash
		}
		if !sum.Equal(100) {
			t.Errorf("preset %q ratios sum to %s, want 100", p.Name, sum)
		}
		if !hasCash {
			t.Errorf("preset %q has no cash class", p.Name)
		}
	}
}

func TestLoadPresets(t *testing.T) {
	doc := `
presets:
  - name: barbell
    targets:
      - {name: Equity, ratio: 50}
      - {name: Cash, ratio: 50, cash: true}
`
	presets, err := LoadPresets(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadPresets() error = %v", err)
	}
	preset, err := FindPreset(presets, "barbell")
	if err != nil {
		t.Fatalf("FindPreset() error = %v", err)
	}
	if len(preset.Targets) != 2 || !preset.Targets[1].Cash {
		t.Errorf("barbell decoded as %+v", preset)
	}
}

func TestLoadPresets_BadSum(t *testing.T) {
	doc := `
presets:
  - name: broken
    targets:
      - {name: Equity, ratio: 50}
      - {name: Cash, ratio: 40, cash: true}
`
	if _, err := LoadPresets(strings.NewReader(doc)); err == nil {
		t.Fatal("LoadPresets() accepted ratios summing to 90")
	}
}

func TestFindPreset_Unknown(t *testing.T) {
	if _, err := FindPreset(DefaultPresets(), "yolo"); err == nil {
		t.Fatal("FindPreset() accepted an unknown name")
	}
}

func TestPreset_Portfolio(t *testing.T) {
	preset, err := FindPreset(DefaultPresets(), "classic")
	if err != nil {
		t.Fatalf("FindPreset() error = %v", err)
	}
	p := preset.Portfolio("EUR")
	if err := p.Check(); err != nil {
		t.Fatalf("Check() on preset snapshot = %v, want nil", err)
	}
	if !p.Assets[2].Cash {
		t.Errorf("classic preset: expected the third class to be cash, got %+v", p.Assets[2])
	}
}
