// Command period prints calendar period boundaries.
//
//	period start -end 2025-03-31 1 month
//	period end -start 2025-01-31 quarter
//	period range 2 weeks
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
