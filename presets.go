package rebalance

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Preset is a named target mix used to start a new snapshot file.
type Preset struct {
	Name    string         `yaml:"name"`
	Targets []PresetTarget `yaml:"targets"`
}

// PresetTarget is one asset class of a preset mix.
type PresetTarget struct {
	Name  string  `yaml:"name"`
	Ratio float64 `yaml:"ratio"`
	Cash  bool    `yaml:"cash,omitempty"`
}

// DefaultPresets returns the built-in target mixes. The classic mix is the
// 60/10/30 equity/gold/cash split.
func DefaultPresets() []Preset {
	return []Preset{
		{
			Name: "classic",
			Targets: []PresetTarget{
				{Name: "Equity", Ratio: 60},
				{Name: "Gold", Ratio: 10},
				{Name: "Cash", Ratio: 30, Cash: true},
			},
		},
		{
			Name: "aggressive",
			Targets: []PresetTarget{
				{Name: "Equity", Ratio: 80},
				{Name: "Gold", Ratio: 10},
				{Name: "Cash", Ratio: 10, Cash: true},
			},
		},
		{
			Name: "conservative",
			Targets: []PresetTarget{
				{Name: "Equity", Ratio: 40},
				{Name: "Gold", Ratio: 10},
				{Name: "Cash", Ratio: 50, Cash: true},
			},
		},
	}
}

// LoadPresets decodes user-defined presets from a YAML document of the form:
//
//	presets:
//	  - name: barbell
//	    targets:
//	      - {name: Equity, ratio: 50}
//	      - {name: Cash, ratio: 50, cash: true}
//
// Each preset's ratios must sum to 100.
func LoadPresets(r io.Reader) ([]Preset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for _, p := range doc.Presets {
		var sum Percent
		for _, t := range p.Targets {
			sum += Percent(t.Ratio)
		}
		if !sum.Equal(100) {
			return nil, fmt.Errorf("%w: preset %q ratios sum to %s, expected 100%%", ErrInvalidInput, p.Name, sum)
		}
	}
	return doc.Presets, nil
}

// FindPreset returns the named preset from presets, or an error listing the
// known names.
func FindPreset(presets []Preset, name string) (Preset, error) {
	var known []string
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
		known = append(known, p.Name)
	}
	return Preset{}, fmt.Errorf("unknown preset %q, known presets: %v", name, known)
}

// Portfolio returns an empty snapshot following the preset's target mix, in
// the given currency, ready for the operator to fill in current values.
func (p Preset) Portfolio(currency string) *Portfolio {
	pf := &Portfolio{AdditionalFunds: M(0, currency)}
	for _, t := range p.Targets {
		if t.Cash {
			pf.Assets = append(pf.Assets, NewCashAsset(t.Name, Percent(t.Ratio), M(0, currency)))
		} else {
			pf.Assets = append(pf.Assets, NewAsset(t.Name, Percent(t.Ratio), M(0, currency), M(0, currency)))
		}
	}
	return pf
}
