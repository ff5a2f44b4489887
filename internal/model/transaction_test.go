package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := Transaction{
		ID:          "t1",
		Amount:      decimal.RequireFromString("12.50"),
		Category:    CategoryFood,
		Description: "Lunch",
		Date:        time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"zero amount", func(tx *Transaction) { tx.Amount = decimal.Zero }, ErrNonPositiveAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-5) }, ErrNonPositiveAmount},
		{"unknown category", func(tx *Transaction) { tx.Category = "groceries" }, ErrUnknownCategory},
		{"empty description", func(tx *Transaction) { tx.Description = "   " }, ErrEmptyDescription},
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			assert.ErrorIs(t, tx.Validate(), tt.wantErr)
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("groceries").Valid())
	assert.False(t, Category("").Valid())
}

func TestMarshalJSONBareAmount(t *testing.T) {
	tx := Transaction{
		ID:          "abc",
		Amount:      decimal.RequireFromString("25.50"),
		Category:    CategoryFood,
		Description: "Lunch at cafe",
		Date:        time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "abc",
		"amount": 25.5,
		"category": "food",
		"description": "Lunch at cafe",
		"date": "2026-08-30"
	}`, string(data))
	// The amount must be a number, not a string.
	assert.Contains(t, string(data), `"amount":25.5`)
}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := Transaction{
			ID:          "abc",
			Amount:      decimal.RequireFromString("15.99"),
			Category:    CategoryEntertainment,
			Description: "Movie tickets",
			Date:        time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out Transaction
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in.ID, out.ID)
		assert.True(t, in.Amount.Equal(out.Amount))
		assert.Equal(t, in.Category, out.Category)
		assert.Equal(t, in.Description, out.Description)
		assert.True(t, in.Date.Equal(out.Date))
	})

	t.Run("missing fields decode to zero values", func(t *testing.T) {
		var tx Transaction
		require.NoError(t, json.Unmarshal([]byte(`{"id":"x"}`), &tx))
		assert.True(t, tx.Amount.IsZero())
		assert.True(t, tx.Date.IsZero())
	})

	t.Run("bad date is an error", func(t *testing.T) {
		var tx Transaction
		err := json.Unmarshal([]byte(`{"id":"x","amount":1,"date":"30/08/2026"}`), &tx)
		assert.Error(t, err)
	})

	t.Run("string amount is an error", func(t *testing.T) {
		var tx Transaction
		err := json.Unmarshal([]byte(`{"id":"x","amount":"not a number"}`), &tx)
		assert.Error(t, err)
	})
}

func TestMonthKey(t *testing.T) {
	tx := Transaction{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2026-01", tx.MonthKey())
	assert.Equal(t, "2026-01-05", tx.DateString())
}
