package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the snapshot file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `prb fmt

  Validates and formats the snapshot file. This command reads all entries,
  reports invariant violations (target ratios not summing to 100, negative
  amounts), and writes the file back in a canonical JSONL form with a stable
  key order.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	// violations are reported but do not block formatting: the operator
	// needs the file readable to fix them
	if err := snapshot.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	out, err := os.Create(*snapshotFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := rebalance.EncodePortfolio(out, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q.\n", *snapshotFile)
	return subcommands.ExitSuccess
}
