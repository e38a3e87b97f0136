package models

// minorUnits maps recognized ISO 4217 codes to their minor-unit exponent.
// Amounts everywhere in this service are integers in these minor units;
// the exponent only matters for display formatting.
var minorUnits = map[string]int{
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"AUD": 2,
	"CAD": 2,
	"CHF": 2,
	"SGD": 2,
	"INR": 2,
	"IDR": 2,
	"JPY": 0,
	"KRW": 0,
	"KWD": 3,
	"BHD": 3,
}

// KnownCurrency reports whether code is a recognized ISO currency.
func KnownCurrency(code string) bool {
	_, ok := minorUnits[code]
	return ok
}

// CurrencyExponent returns the minor-unit exponent for a recognized code,
// defaulting to 2 for anything unknown.
func CurrencyExponent(code string) int {
	if exp, ok := minorUnits[code]; ok {
		return exp
	}
	return 2
}
