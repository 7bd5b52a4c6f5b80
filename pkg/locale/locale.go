// Package locale formats numbers, currency, and percentages for chart
// labels using Brazilian Portuguese conventions.
package locale

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders values in a fixed locale.
type Formatter struct {
	printer *message.Printer
}

// New creates a formatter for the given language tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// BrazilianPortuguese returns the default formatter, pt-BR.
func BrazilianPortuguese() *Formatter {
	return New(language.BrazilianPortuguese)
}

// Number formats v with the given number of fraction digits, using the
// locale's group and decimal separators.
func (f *Formatter) Number(v float64, decimals int) string {
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// Currency formats v as Brazilian reais.
func (f *Formatter) Currency(v float64) string {
	return f.printer.Sprint(currency.Symbol(currency.BRL.Amount(v)))
}

// Percent formats the ratio v (1.0 = 100%) with the given fraction digits.
func (f *Formatter) Percent(v float64, decimals int) string {
	return f.printer.Sprint(number.Percent(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}
