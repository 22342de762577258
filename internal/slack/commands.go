package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdInterviews CommandType = "interviews"
	CmdDelete     CommandType = "delete"
	CmdFwd        CommandType = "fwd"
	CmdHelp       CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "interviews", "list", "ls":
		cmd.Type = CmdInterviews
	case "delete", "del":
		cmd.Type = CmdDelete
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "fwd", "when":
		cmd.Type = CmdFwd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Interviews:*
• ` + "`/huntflow interviews`" + ` - List candidates with scheduled interviews
• ` + "`/huntflow delete FirstName LastName`" + ` - Remove the candidate's interview

*Start dates:*
• ` + "`/huntflow fwd`" + ` - List people with an upcoming start date
• ` + "`/huntflow fwd FirstName LastName`" + ` - Show when the candidate starts work`
}
