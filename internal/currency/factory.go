package currency

// NoCurrencyMessage is shown by callers when the factory has nothing for a country
const NoCurrencyMessage = "no currency code"

// ForCountry returns the currency used in the country. The second value is
// false for countries without a mapped currency, the Describer is nil then.
func ForCountry(country Country) (Describer, bool) {
	switch country {
	case Spain:
		return Euro{}, true
	case USA:
		return USDollar{}, true
	default:
		return nil, false
	}
}
