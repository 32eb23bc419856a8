package command

import (
	"fmt"
	"strings"
)

const helpRule = "----------------------------------------"

// HelpText renders the help screen: every registered command followed by the
// dice expression grammar.
func HelpText(r *Registry) string {
	var b strings.Builder
	b.WriteString("----------------------- HELP -----------------------\n")
	b.WriteString("Available commands are:\n")
	for _, cmd := range r.Commands() {
		fmt.Fprintf(&b, " - %s: %s", cmd.Name, cmd.Help)
		if len(cmd.Aliases) > 0 {
			fmt.Fprintf(&b, " (also: %s)", strings.Join(cmd.Aliases, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + helpRule + "\n")
	b.WriteString("\nRolls have the form XdN (+ YdM + ... + K), for example:\n")
	b.WriteString("    1d3 + 2d20 + 5\n\n")
	b.WriteString("which will roll\n")
	b.WriteString(" - 1 die with 3 sides,\n")
	b.WriteString(" - 2 dice with 20 sides,\n")
	b.WriteString(" - sum up the results,\n")
	b.WriteString(" - and add the constant 5 to the final result\n")
	b.WriteString("\nNote that all individual dice roll results are also given\n")
	b.WriteString("----------------------------------------------------\n")
	return b.String()
}
