package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/etnz/rebalance/vix"
	"github.com/google/subcommands"
)

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	funds   float64
	offline bool
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "gap analysis, allocation and rebalancing instructions" }
func (*reviewCmd) Usage() string {
	return `prb review [-funds <amount>] [-offline]

  Reviews the snapshot: per-asset gaps against targets, allocation of the
  additional funds, projected post-allocation ratios, unrealized gains and
  the full-rebalance procedure. Market sentiment is reported alongside
  unless -offline is set.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.funds, "funds", -1, "Override the snapshot's additional funds for this run.")
	f.BoolVar(&c.offline, "offline", false, "Skip the fear index fetch.")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.funds >= 0 {
		p.AdditionalFunds = rebalance.M(c.funds, p.Currency())
	}

	review, err := rebalance.NewReview(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReviewMarkdown(review))
	printMarkdown(renderer.GainsMarkdown(review.Gains))

	// sentiment is advisory and composed here, at the presentation boundary
	if !c.offline {
		printMarkdown(renderer.SentimentMarkdown(fetchFearIndex()))
	}
	return subcommands.ExitSuccess
}

// fetchFearIndex resolves the optional fear index reading: present on a
// successful fetch, explicitly absent otherwise.
func fetchFearIndex() rebalance.FearIndex {
	value, err := vix.NewClient().Latest(vix.DefaultSymbol)
	if err != nil {
		log.Printf("Warning: %v", err)
		return rebalance.AbsentFearIndex()
	}
	return rebalance.NewFearIndex(value)
}
