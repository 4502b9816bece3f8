package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// initCmd holds the flags for the 'init' subcommand.
type initCmd struct {
	preset   string
	presets  string
	currency string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a starter snapshot from a target mix preset" }
func (*initCmd) Usage() string {
	return `prb init [-preset <name>] [-presets <file>] [-currency <code>]

  Writes a starter snapshot file following a named target mix, with zero
  values for the operator to fill in. Refuses to overwrite an existing file.

Usage Examples:
# Start with the classic 60/10/30 equity/gold/cash mix.
$ prb init -preset classic

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.preset, "preset", "classic", "Name of the target mix preset.")
	f.StringVar(&c.presets, "presets", "", "YAML file of user-defined presets. Built-in presets are used by default.")
	f.StringVar(&c.currency, "currency", "EUR", "Currency of the snapshot amounts.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	presets := rebalance.DefaultPresets()
	if c.presets != "" {
		pf, err := os.Open(c.presets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening presets %q: %v\n", c.presets, err)
			return subcommands.ExitFailure
		}
		defer pf.Close()
		if presets, err = rebalance.LoadPresets(pf); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	preset, err := rebalance.FindPreset(presets, c.preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if _, err := os.Stat(*snapshotFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: snapshot %q already exists, refusing to overwrite.\n", *snapshotFile)
		return subcommands.ExitFailure
	}

	out, err := os.Create(*snapshotFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := rebalance.EncodePortfolio(out, preset.Portfolio(c.currency)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created %s with the %q mix. Fill in the current values and run 'prb review'.\n", *snapshotFile, preset.Name)
	return subcommands.ExitSuccess
}
