package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used for storage, queries, and both
// export formats. Dates never carry a time component.
const DateFormat = "2006-01-02"

// Category classifies a transaction. The set is fixed.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

// Categories returns the full category set in display order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryTransport, CategoryEntertainment,
		CategoryShopping, CategoryBills, CategoryHealth,
		CategoryEducation, CategoryOther,
	}
}

// Valid reports whether c is part of the fixed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryEntertainment,
		CategoryShopping, CategoryBills, CategoryHealth,
		CategoryEducation, CategoryOther:
		return true
	}
	return false
}

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrEmptyDescription  = errors.New("empty description")
	ErrInvalidDate       = errors.New("invalid date")
)

// Validate checks the transaction invariants: positive amount, known
// category, non-empty description, non-zero date.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !t.Category.Valid() {
		return ErrUnknownCategory
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Transaction is a single expense entry.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal // positive magnitude, currency-agnostic
	Category    Category
	Description string
	Date        time.Time
}

// MonthKey returns the "YYYY-MM" bucket the transaction falls in.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// DateString returns the date in DateFormat.
func (t Transaction) DateString() string {
	return t.Date.Format(DateFormat)
}

// transactionWire is the JSON shape shared by persistence and export files.
// Amount is written as a bare number, date as "YYYY-MM-DD".
type transactionWire struct {
	ID          string          `json:"id"`
	Amount      json.RawMessage `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// MarshalJSON emits the amount as a bare JSON number.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionWire{
		ID:          t.ID,
		Amount:      json.RawMessage(t.Amount.String()),
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.Format(DateFormat),
	})
}

// UnmarshalJSON accepts the wire shape. A missing amount decodes to zero and
// a missing date to the zero time; semantic validation happens in the codec,
// not here.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w struct {
		ID          string      `json:"id"`
		Amount      json.Number `json:"amount"`
		Category    Category    `json:"category"`
		Description string      `json:"description"`
		Date        string      `json:"date"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	amount := decimal.Zero
	if w.Amount != "" {
		parsed, err := decimal.NewFromString(w.Amount.String())
		if err != nil {
			return fmt.Errorf("parsing amount %q: %w", w.Amount, err)
		}
		amount = parsed
	}

	var date time.Time
	if w.Date != "" {
		parsed, err := time.Parse(DateFormat, w.Date)
		if err != nil {
			return fmt.Errorf("parsing date %q: %w", w.Date, err)
		}
		date = parsed
	}

	t.ID = w.ID
	t.Amount = amount
	t.Category = w.Category
	t.Description = w.Description
	t.Date = date
	return nil
}
