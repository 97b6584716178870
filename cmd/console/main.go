package main

import (
	"github.com/kettari/patterns-playground/internal/config"
	"github.com/kettari/patterns-playground/internal/console"
	"github.com/kettari/patterns-playground/internal/logger"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
)

type Commands []console.Command

func main() {
	conf := config.GetConfig()
	logger.Setup(conf)
	slog.Info("starting console command")

	if err := newRootCommand(initCommands(conf), os.Stdout).Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	slog.Info("command finished")
}

func initCommands(conf *config.Config) Commands {
	return Commands{
		console.NewCurrencyLookupCommand(conf.Country),
		console.NewChamberAdvanceCommand(),
		console.NewGardenPrepareCommand(),
		console.NewDemoAllCommand(),
	}
}

func newRootCommand(commands Commands, out io.Writer) *cobra.Command {
	help := console.NewHelpCommand(out, commands...)
	root := &cobra.Command{
		Use:           "playground_console",
		Short:         "factory method, observer and template method demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return help.Run(args)
		},
	}
	// --help and -h print the same list as the help command
	root.SetHelpFunc(func(_ *cobra.Command, _ []string) {
		if err := help.Run(nil); err != nil {
			slog.Error("unable to print help", "error", err)
		}
	})
	root.SetHelpCommand(wrap(help))
	for _, cmd := range commands {
		root.AddCommand(wrap(cmd))
	}
	return root
}

// wrap exposes a console command as a cobra subcommand
func wrap(cmd console.Command) *cobra.Command {
	return &cobra.Command{
		Use:   cmd.Name(),
		Short: cmd.Description(),
		RunE: func(_ *cobra.Command, args []string) error {
			slog.Info("command found", "command", cmd.Name())
			return cmd.Run(args)
		},
	}
}
