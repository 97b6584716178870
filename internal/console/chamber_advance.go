package console

import (
	"github.com/kettari/patterns-playground/internal/chamber"
	"github.com/pkg/errors"
	"log/slog"
	"runtime"
	"strconv"
)

type ChamberAdvanceCommand struct {
}

func NewChamberAdvanceCommand() *ChamberAdvanceCommand {
	cmd := ChamberAdvanceCommand{}
	return &cmd
}

func (cmd *ChamberAdvanceCommand) Name() string {
	return "chamber:advance"
}

func (cmd *ChamberAdvanceCommand) Description() string {
	return "advances the observed test chamber number [steps, default 1]"
}

func (cmd *ChamberAdvanceCommand) Run(args []string) error {
	steps := 1
	if len(args) > 0 {
		var err error
		if steps, err = strconv.Atoi(args[0]); err != nil {
			return errors.Wrap(err, "steps")
		}
		if steps < 0 {
			return errors.Errorf("steps must not be negative, got %d", steps)
		}
	}

	announcer := chamber.NewAnnouncer(slog.Default())
	chambers := chamber.NewTestChambers()
	chamber.Observe(chambers, announcer)

	for i := 0; i < steps; i++ {
		chambers.Increment()
	}
	slog.Info("test chambers advanced", "test_chamber_number", chambers.TestChamberNumber())

	// the chambers hold the announcer weakly
	runtime.KeepAlive(announcer)

	return nil
}
