// Package cmd implements the CLI application to rebalance a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(subcommands.HelpCommand(), "")
	c.Register(subcommands.FlagsCommand(), "")
	c.Register(subcommands.CommandsCommand(), "")

	c.Register(&reviewCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&vixCmd{}, "market")

	c.Register(&initCmd{}, "snapshot")
	c.Register(&fmtCmd{}, "snapshot")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", "portfolio.jsonl", "Path to the portfolio snapshot file (JSONL format)")

// DecodeSnapshot reads the portfolio snapshot from the app snapshot file.
func DecodeSnapshot() (*rebalance.Portfolio, error) {
	f, err := os.Open(*snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot %q: %w", *snapshotFile, err)
	}
	defer f.Close()
	return rebalance.DecodePortfolio(f)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible (e.g. output is not a tty).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
