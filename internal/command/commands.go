// Package command provides the console command registry, line normalisation,
// and the help screen.
package command

// Handler identifiers mapping commands to console actions.
const (
	HandlerHelp = "help"
	HandlerStop = "stop"
)

// Command defines a console command. Any line that is not a command is
// treated as a dice expression.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text shown on the help screen.
	Help string
	// Handler maps to the console action.
	Handler string
}

// BuiltinCommands returns all built-in console commands.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "help", Aliases: []string{"?"}, Help: "displays this help message", Handler: HandlerHelp},
		{Name: "stop", Aliases: []string{"quit", "exit"}, Help: "exit this program", Handler: HandlerStop},
	}
}
