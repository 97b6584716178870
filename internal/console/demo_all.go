package console

import (
	"github.com/kettari/patterns-playground/internal/currency"
	"log/slog"
)

type DemoAllCommand struct {
	currency *CurrencyLookupCommand
	chamber  *ChamberAdvanceCommand
	garden   *GardenPrepareCommand
}

func NewDemoAllCommand() *DemoAllCommand {
	cmd := DemoAllCommand{
		currency: NewCurrencyLookupCommand(currency.USA.String()),
		chamber:  NewChamberAdvanceCommand(),
		garden:   NewGardenPrepareCommand(),
	}
	return &cmd
}

func (cmd *DemoAllCommand) Name() string {
	return "demo:all"
}

func (cmd *DemoAllCommand) Description() string {
	return "runs factory, observer and template method demos in sequence"
}

func (cmd *DemoAllCommand) Run(_ []string) error {
	slog.Info("factory method demo")
	if err := cmd.currency.Run([]string{"USA", "UK", "Spain"}); err != nil {
		return err
	}

	slog.Info("observer demo")
	if err := cmd.chamber.Run(nil); err != nil {
		return err
	}

	slog.Info("template method demo")
	return cmd.garden.Run([]string{defaultGarden})
}
