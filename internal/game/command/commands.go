// Package command provides the command registry, parser, and built-in command definitions.
package command

// Handler identifiers mapping commands to game manager actions.
const (
	HandlerMove = "move"
	HandlerTake = "take"
	HandlerUse  = "use"
	HandlerQuit = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage is the form shown in the help line, e.g. "move [dir]".
	Usage string
	// Help is a short description of the command.
	Help string
	// Handler maps to the game manager action.
	Handler string
}

// BuiltinCommands returns all built-in commands in help-line order.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "move", Aliases: []string{"go"}, Usage: "move [dir]", Help: "Walk through an exit", Handler: HandlerMove},
		{Name: "take", Aliases: []string{"grab"}, Usage: "take [item]", Help: "Pick up an item in the room", Handler: HandlerTake},
		{Name: "use", Aliases: nil, Usage: "use [item]", Help: "Use an item you are carrying", Handler: HandlerUse},
		{Name: "quit", Aliases: []string{"exit"}, Usage: "quit", Help: "Leave the game", Handler: HandlerQuit},
	}
}
