// Package money formats display prices for the storefront locale.
// Order message amounts keep their fixed two-decimal form; this is for
// on-screen display only.
package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.MustParse("es-AR"))
	ars     = currency.MustParseISO("ARS")
)

// FormatARS renders an amount as Argentine pesos with the local symbol
// and separators.
func FormatARS(amount float64) string {
	return printer.Sprint(currency.Symbol(ars.Amount(amount)))
}
