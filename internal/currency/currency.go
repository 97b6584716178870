package currency

// Describer is a currency product returned by the factory
type Describer interface {
	Symbol() string
	Code() string
}

type Euro struct {
}

func (Euro) Symbol() string {
	return "💶"
}

func (Euro) Code() string {
	return "EUR"
}

type USDollar struct {
}

func (USDollar) Symbol() string {
	return "💵"
}

func (USDollar) Code() string {
	return "USD"
}
