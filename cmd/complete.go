package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// anyValue predicts nothing but marks a flag as taking a value.
type anyValue struct{}

func (anyValue) Predict(string) []string { return nil }

// flagPredictors holds the predictors of the flags whose values are known.
var flagPredictors = map[string]complete.Predictor{
	"config": predict.Files("*.yaml"),
	"format": predict.Set{"tsv", "markdown", "xlsx"},
	"o":      predict.Files("*"),
}

// Completion returns the shell completion tree of the application, with the
// global flags of top.
func Completion(top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(top),
	}
	for _, c := range Commands {
		root.Sub[c.Name()] = commandCompletion(c)
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(commandNames())}
	return root
}

func commandCompletion(c subcommands.Command) *complete.Command {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	return &complete.Command{Flags: predictFlags(f)}
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = anyValue{}
	})
	return flags
}

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	return names
}
