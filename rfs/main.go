package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rentfolio/rentfolio/cmd"
)

func main() {
	// Shell completion, installed with COMP_INSTALL=1 rfs.
	completion().Complete("rfs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	property := map[string]complete.Predictor{"property": predict.Something}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"property":      {Flags: map[string]complete.Predictor{"id": predict.Something, "strategy": predict.Set{"brrrr", "buy_and_hold", "flip"}}},
			"rent":          {Flags: property},
			"expenses":      {Flags: property},
			"loan":          {Flags: property},
			"income":        {Flags: property},
			"expense":       {Flags: property},
			"metrics":       {Flags: property},
			"daily":         {Flags: property},
			"summary":       {},
			"tx":            {Flags: property},
			"fmt":           {},
			"import-stessa": {Flags: map[string]complete.Predictor{"property": predict.Something, "file": predict.Files("*.json")}},
			"topic":         {Args: predict.Set{"readme", "ledger", "metrics", "daily", "importing"}},
			"assist":        {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file":      predict.Files("*.jsonl"),
			"default-currency": predict.Set{"USD", "EUR", "GBP", "CAD"},
		},
	}
}
