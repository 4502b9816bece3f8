package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/etnz/rebalance/vix"
	"github.com/google/subcommands"
)

// vixCmd holds the flags for the 'vix' subcommand.
type vixCmd struct {
	symbol string
}

func (*vixCmd) Name() string     { return "vix" }
func (*vixCmd) Synopsis() string { return "fetch the fear index and its advisory tier" }
func (*vixCmd) Usage() string {
	return `prb vix [-symbol <ticker>]

  Fetches the market fear index and prints its advisory reading. The reading
  is purely advisory: it never changes the allocation numbers.
`
}

func (c *vixCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", vix.DefaultSymbol, "Ticker of the volatility index to fetch.")
}

func (c *vixCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	value, err := vix.NewClient().Latest(c.symbol)
	index := rebalance.NewFearIndex(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		index = rebalance.AbsentFearIndex()
	}
	printMarkdown(renderer.SentimentMarkdown(index))
	return subcommands.ExitSuccess
}
