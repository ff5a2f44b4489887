// Package currency renders amounts in the configured display currency.
// Formatting never changes stored magnitudes.
package currency

import (
	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Formatter formats amounts for display. When the configured locale and ISO
// code are supported it delegates to locale-aware formatting; otherwise it
// falls back to manual symbol placement.
type Formatter struct {
	settings model.CurrencySettings
	printer  *message.Printer
	unit     xcurrency.Unit
	localeOK bool
}

// NewFormatter builds a Formatter from currency settings.
func NewFormatter(settings model.CurrencySettings) *Formatter {
	f := &Formatter{settings: settings}

	tag, err := language.Parse(settings.Locale)
	if err != nil {
		return f
	}
	unit, err := xcurrency.ParseISO(settings.Code)
	if err != nil {
		return f
	}

	f.printer = message.NewPrinter(tag)
	f.unit = unit
	f.localeOK = true
	return f
}

// Format renders an amount with the currency symbol.
func (f *Formatter) Format(amount decimal.Decimal) string {
	if f.localeOK {
		value, _ := amount.Float64()
		return f.printer.Sprintf("%v", xcurrency.Symbol(f.unit.Amount(value)))
	}
	return f.manual(amount)
}

// manual places the configured symbol around a two-decimal rendering.
func (f *Formatter) manual(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	if f.settings.SymbolPosition == model.SymbolAfter {
		return fixed + " " + f.settings.Symbol
	}
	return f.settings.Symbol + fixed
}
