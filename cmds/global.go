package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor holds commands defined by package-level Var, Switch and
// Collect calls.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against GlobalExecutor, exiting on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}
