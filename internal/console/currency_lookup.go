package console

import (
	"github.com/kettari/patterns-playground/internal/currency"
	"log/slog"
)

type CurrencyLookupCommand struct {
	defaultCountry string
}

// NewCurrencyLookupCommand creates the command, defaultCountry is looked up when no arguments are given
func NewCurrencyLookupCommand(defaultCountry string) *CurrencyLookupCommand {
	cmd := CurrencyLookupCommand{defaultCountry: defaultCountry}
	return &cmd
}

func (cmd *CurrencyLookupCommand) Name() string {
	return "currency:lookup"
}

func (cmd *CurrencyLookupCommand) Description() string {
	return "looks up the currency of the given countries (USA, Spain, UK)"
}

func (cmd *CurrencyLookupCommand) Run(args []string) error {
	if len(args) == 0 {
		args = []string{cmd.defaultCountry}
	}

	countries := make([]currency.Country, 0, len(args))
	for _, name := range args {
		country, err := currency.ParseCountry(name)
		if err != nil {
			return err
		}
		countries = append(countries, country)
	}

	for _, country := range countries {
		lookup(country)
	}

	return nil
}

func lookup(country currency.Country) {
	descriptor, ok := currency.ForCountry(country)
	if !ok {
		slog.Info(currency.NoCurrencyMessage, "country", country.String())
		return
	}
	slog.Info("currency found", "country", country.String(), "symbol", descriptor.Symbol(), "code", descriptor.Code())
}
