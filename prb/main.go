package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion: handled and exited before any flag parsing
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"review": {Flags: map[string]complete.Predictor{"funds": predict.Nothing, "offline": predict.Nothing}},
			"gains":  {},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv"), "funds": predict.Nothing}},
			"vix":    {Flags: map[string]complete.Predictor{"symbol": predict.Nothing}},
			"init":   {Flags: map[string]complete.Predictor{"preset": predict.Set{"classic", "aggressive", "conservative"}, "presets": predict.Files("*.yaml"), "currency": predict.Nothing}},
			"fmt":    {},
		},
		Flags: map[string]complete.Predictor{
			"snapshot-file": predict.Files("*.jsonl"),
		},
	}
	completion.Complete("prb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
