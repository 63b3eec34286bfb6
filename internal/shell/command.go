package shell

import "strings"

const (
	searchUsage = "Enter a series title (for example: 'S Dark')"
	deleteUsage = "Enter a series ID (for example: 'D 507f1f77bcf86cd799439011')"
)

// Command is one parsed line of input. The set of implementations is closed.
type Command interface {
	command()
}

// ImportCommand imports series from the configured file
type ImportCommand struct{}

// SearchCommand searches titles for Title
type SearchCommand struct {
	Title string
}

// ListCommand lists every series
type ListCommand struct{}

// DeleteCommand deletes the series with ID
type DeleteCommand struct {
	ID string
}

// QuitCommand ends the session
type QuitCommand struct{}

// UsageCommand is a known command missing its required argument
type UsageCommand struct {
	Usage string
}

// InvalidCommand is anything that is not a known command
type InvalidCommand struct {
	Input string
}

func (ImportCommand) command()  {}
func (SearchCommand) command()  {}
func (ListCommand) command()    {}
func (DeleteCommand) command()  {}
func (QuitCommand) command()    {}
func (UsageCommand) command()   {}
func (InvalidCommand) command() {}

// ParseCommand lower-cases line and decodes its first token
func ParseCommand(line string) Command {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return InvalidCommand{Input: line}
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "a":
		return ImportCommand{}
	case "s":
		if len(args) == 0 {
			return UsageCommand{Usage: searchUsage}
		}
		return SearchCommand{Title: strings.Join(args, " ")}
	case "l":
		return ListCommand{}
	case "d":
		if len(args) == 0 {
			return UsageCommand{Usage: deleteUsage}
		}
		return DeleteCommand{ID: args[0]}
	case "q":
		return QuitCommand{}
	default:
		return InvalidCommand{Input: line}
	}
}
