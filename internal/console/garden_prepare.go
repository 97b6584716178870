package console

import (
	"github.com/kettari/patterns-playground/internal/garden"
	"log/slog"
)

const defaultGarden = "rose"

type GardenPrepareCommand struct {
}

func NewGardenPrepareCommand() *GardenPrepareCommand {
	cmd := GardenPrepareCommand{}
	return &cmd
}

func (cmd *GardenPrepareCommand) Name() string {
	return "garden:prepare"
}

func (cmd *GardenPrepareCommand) Description() string {
	return "prepares a garden [rose|vegetable, default rose]"
}

func (cmd *GardenPrepareCommand) Run(args []string) error {
	name := defaultGarden
	if len(args) > 0 {
		name = args[0]
	}

	g, err := garden.NewVariant(name, slog.Default())
	if err != nil {
		return err
	}
	slog.Debug("preparing garden", "variant", name)
	g.Prepare()

	return nil
}
