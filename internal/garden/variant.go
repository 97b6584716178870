package garden

import (
	"github.com/pkg/errors"
	"log/slog"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown garden variant")

// Preparer is a garden that knows how to run its own preparation
type Preparer interface {
	Garden
	Prepare()
}

var variants = map[string]func(*slog.Logger) Preparer{
	"rose":      func(l *slog.Logger) Preparer { return NewRoseGarden(l) },
	"vegetable": func(l *slog.Logger) Preparer { return NewVegetableGarden(l) },
}

// Variants returns the known variant names
func Variants() []string {
	return []string{"rose", "vegetable"}
}

func NewVariant(name string, logger *slog.Logger) (Preparer, error) {
	constructor, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "variant %q", name)
	}
	return constructor(logger), nil
}
