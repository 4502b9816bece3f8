package rebalance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The snapshot format is a human readable JSONL file: one line per entry,
// identified by its "entry" property. Asset lines carry the target ratio,
// current value and cost basis; a single optional funds line carries the new
// money to allocate this cycle.

const (
	entryAsset = "asset"
	entryFunds = "funds"
)

// assetLine is a specialized struct for decoding asset json lines.
type assetLine struct {
	Name     string          `json:"name"`
	Target   float64         `json:"target"`
	Value    decimal.Decimal `json:"value"`
	Cost     decimal.Decimal `json:"cost"`
	Cash     bool            `json:"cash"`
	Currency string          `json:"currency"`
}

// fundsLine is a specialized struct for decoding the funds json line.
type fundsLine struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// DecodePortfolio decodes a portfolio snapshot from a stream of JSONL data.
// It does not validate invariants: callers run Check on the result so that
// all violations are surfaced together.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	p := &Portfolio{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Entry string `json:"entry"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify entry in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Entry {
		case entryAsset:
			var line assetLine
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("could not parse asset line %q: %w", string(lineBytes), err)
			}
			a := AssetClass{
				Name:        line.Name,
				TargetRatio: Percent(line.Target),
				Value:       M(line.Value, line.Currency),
				CostBasis:   M(line.Cost, line.Currency),
				Cash:        line.Cash,
			}
			if line.Cash {
				// cash carries no cost basis of its own
				a.CostBasis = a.Value
			}
			p.Assets = append(p.Assets, a)

		case entryFunds:
			var line fundsLine
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("could not parse funds line %q: %w", string(lineBytes), err)
			}
			p.AdditionalFunds = M(line.Amount, line.Currency)

		default:
			return nil, fmt.Errorf("unknown entry %q in line %q", identifier.Entry, string(lineBytes))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}

	// a funds line may omit the currency, only the currency defaults
	if p.AdditionalFunds.Currency() == "" {
		p.AdditionalFunds = M(p.AdditionalFunds.value, p.Currency())
	}
	return p, nil
}

// EncodePortfolio writes the snapshot in its canonical JSONL form: assets in
// order, stable key order, then the funds line when funds are set.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for _, a := range p.Assets {
		var jw jsonObjectWriter
		jw.Append("entry", entryAsset)
		jw.Append("name", a.Name)
		jw.Append("target", float64(a.TargetRatio))
		jw.Append("value", a.Value.value)
		if !a.Cash {
			jw.Append("cost", a.CostBasis.value)
		}
		jw.Optional("cash", a.Cash)
		jw.Optional("currency", a.Value.Currency())
		if err := writeLine(w, &jw); err != nil {
			return fmt.Errorf("could not encode asset %q: %w", a.Name, err)
		}
	}
	if !p.AdditionalFunds.IsZero() {
		var jw jsonObjectWriter
		jw.Append("entry", entryFunds)
		jw.Append("amount", p.AdditionalFunds.value)
		jw.Optional("currency", p.AdditionalFunds.Currency())
		if err := writeLine(w, &jw); err != nil {
			return fmt.Errorf("could not encode funds: %w", err)
		}
	}
	return nil
}

func writeLine(w io.Writer, jw *jsonObjectWriter) error {
	b, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
