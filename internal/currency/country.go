package currency

import (
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

type Country int

const (
	USA Country = iota
	Spain
	UK
)

var ErrUnknownCountry = errors.New("unknown country")

var countryNames = map[Country]string{
	USA:   "USA",
	Spain: "Spain",
	UK:    "UK",
}

func (c Country) String() string {
	if name, ok := countryNames[c]; ok {
		return name
	}
	return "Country(" + strconv.Itoa(int(c)) + ")"
}

// Countries lists every member of the enumeration in declaration order
func Countries() []Country {
	return []Country{USA, Spain, UK}
}

// ParseCountry finds the country by its name, case-insensitive
func ParseCountry(name string) (Country, error) {
	for _, c := range Countries() {
		if strings.EqualFold(strings.TrimSpace(name), c.String()) {
			return c, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownCountry, "parse %q", name)
}
