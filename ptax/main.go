// Command ptax prints the PTAX USD quotation of the first fortnight of the
// previous month, for a range of reference months.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ptax/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	complete.Complete("ptax", cmd.Completion(flag.CommandLine))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
