package model

// SymbolPosition says where the currency symbol goes relative to the amount.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// CurrencySettings controls display formatting only; stored amounts are
// never converted between currencies.
type CurrencySettings struct {
	Code           string         `json:"code"`
	Symbol         string         `json:"symbol"`
	Locale         string         `json:"locale"`
	SymbolPosition SymbolPosition `json:"symbolPosition"`
}

// DefaultCurrency is the out-of-the-box display currency.
func DefaultCurrency() CurrencySettings {
	return CurrencySettings{
		Code:           "GBP",
		Symbol:         "£",
		Locale:         "en-GB",
		SymbolPosition: SymbolBefore,
	}
}

// CurrencyPreset is a well-known currency offered for selection.
type CurrencyPreset struct {
	Code   string
	Symbol string
	Locale string
	Name   string
}

// CurrencyPresets lists the built-in currency choices.
func CurrencyPresets() []CurrencyPreset {
	return []CurrencyPreset{
		{Code: "USD", Symbol: "$", Locale: "en-US", Name: "US Dollar"},
		{Code: "EUR", Symbol: "€", Locale: "de-DE", Name: "Euro"},
		{Code: "GBP", Symbol: "£", Locale: "en-GB", Name: "British Pound"},
		{Code: "JPY", Symbol: "¥", Locale: "ja-JP", Name: "Japanese Yen"},
		{Code: "CAD", Symbol: "C$", Locale: "en-CA", Name: "Canadian Dollar"},
		{Code: "AUD", Symbol: "A$", Locale: "en-AU", Name: "Australian Dollar"},
		{Code: "CHF", Symbol: "Fr", Locale: "de-CH", Name: "Swiss Franc"},
		{Code: "CNY", Symbol: "¥", Locale: "zh-CN", Name: "Chinese Yuan"},
		{Code: "INR", Symbol: "₹", Locale: "en-IN", Name: "Indian Rupee"},
		{Code: "KRW", Symbol: "₩", Locale: "ko-KR", Name: "South Korean Won"},
		{Code: "BRL", Symbol: "R$", Locale: "pt-BR", Name: "Brazilian Real"},
		{Code: "MXN", Symbol: "$", Locale: "es-MX", Name: "Mexican Peso"},
		{Code: "SEK", Symbol: "kr", Locale: "sv-SE", Name: "Swedish Krona"},
		{Code: "NOK", Symbol: "kr", Locale: "nb-NO", Name: "Norwegian Krone"},
		{Code: "DKK", Symbol: "kr", Locale: "da-DK", Name: "Danish Krone"},
		{Code: "SGD", Symbol: "S$", Locale: "en-SG", Name: "Singapore Dollar"},
		{Code: "HKD", Symbol: "HK$", Locale: "en-HK", Name: "Hong Kong Dollar"},
		{Code: "NZD", Symbol: "NZ$", Locale: "en-NZ", Name: "New Zealand Dollar"},
		{Code: "ZAR", Symbol: "R", Locale: "en-ZA", Name: "South African Rand"},
		{Code: "RUB", Symbol: "₽", Locale: "ru-RU", Name: "Russian Ruble"},
	}
}

// PresetByCode returns the preset matching an ISO code.
func PresetByCode(code string) (CurrencyPreset, bool) {
	for _, p := range CurrencyPresets() {
		if p.Code == code {
			return p, true
		}
	}
	return CurrencyPreset{}, false
}

// symbolBeforeLocales are locales that conventionally prefix the symbol.
var symbolBeforeLocales = map[string]bool{
	"en-US": true, "en-GB": true, "en-CA": true, "en-AU": true,
	"en-SG": true, "en-HK": true, "en-NZ": true, "pt-BR": true,
	"es-MX": true,
}

// PositionForLocale returns the conventional symbol position for a locale.
func PositionForLocale(locale string) SymbolPosition {
	if symbolBeforeLocales[locale] {
		return SymbolBefore
	}
	return SymbolAfter
}
