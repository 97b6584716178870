package console

import (
	"fmt"
	"github.com/kettari/patterns-playground/internal/config"
	"io"
)

type HelpCommand struct {
	out      io.Writer
	commands []Command
}

func NewHelpCommand(out io.Writer, commands ...Command) *HelpCommand {
	cmd := HelpCommand{out: out, commands: commands}
	return &cmd
}

func (cmd *HelpCommand) Name() string {
	return "help"
}

func (cmd *HelpCommand) Description() string {
	return "prints the list of commands"
}

func (cmd *HelpCommand) Run(_ []string) error {
	if _, err := fmt.Fprintln(cmd.out, "Usage: playground_console <command> [args]"); err != nil {
		return err
	}
	for _, c := range cmd.commands {
		if _, err := fmt.Fprintf(cmd.out, "\t%s - %s\n", c.Name(), c.Description()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(cmd.out, "\n%s", config.Usage())
	return err
}
