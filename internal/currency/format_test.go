package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pennywise-dev/pennywise/internal/model"
)

func TestFormatLocaleAware(t *testing.T) {
	f := NewFormatter(model.CurrencySettings{
		Code:           "USD",
		Symbol:         "$",
		Locale:         "en-US",
		SymbolPosition: model.SymbolBefore,
	})

	got := f.Format(decimal.RequireFromString("1234.50"))
	assert.Contains(t, got, "$")
	assert.Contains(t, got, "1")
	assert.Contains(t, got, "234.50")
}

func TestFormatManualFallback(t *testing.T) {
	tests := []struct {
		name     string
		settings model.CurrencySettings
		amount   string
		want     string
	}{
		{
			name: "unparsable code falls back, symbol before",
			settings: model.CurrencySettings{
				Code: "W", Symbol: "W", Locale: "en-US",
				SymbolPosition: model.SymbolBefore,
			},
			amount: "12.3",
			want:   "W12.30",
		},
		{
			name: "unparsable locale falls back, symbol after",
			settings: model.CurrencySettings{
				Code: "SEK", Symbol: "kr", Locale: "!!",
				SymbolPosition: model.SymbolAfter,
			},
			amount: "99",
			want:   "99.00 kr",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.settings)
			assert.Equal(t, tt.want, f.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatNeverMutatesAmount(t *testing.T) {
	amount := decimal.RequireFromString("10.555")
	f := NewFormatter(model.CurrencySettings{Symbol: "$", SymbolPosition: model.SymbolBefore})
	f.Format(amount)
	assert.True(t, amount.Equal(decimal.RequireFromString("10.555")))
}
