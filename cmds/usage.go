package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.Output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || command.Hidden || seen[command] {
			continue
		}
		seen[command] = true

		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		for _, alias := range command.Aliases {
			b.WriteString(", ")
			b.WriteString(alias)
		}
		for _, arg := range command.ArgNames {
			b.WriteString(" <")
			b.WriteString(arg)
			b.WriteString(">")
		}
		if command.Description != "" {
			b.WriteString("\t")
			b.WriteString(command.Description)
		}
		fmt.Fprintln(w, b.String())

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
