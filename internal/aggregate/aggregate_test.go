package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/model"
)

func txn(amount, category, date string) model.Transaction {
	d, err := time.Parse(model.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:          "t-" + date + "-" + amount,
		Amount:      decimal.RequireFromString(amount),
		Category:    model.Category(category),
		Description: "test",
		Date:        d,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.TotalSpent.IsZero())
	assert.True(t, s.DailyAverage.IsZero())
	assert.True(t, s.BiggestExpense.IsZero())
	assert.Zero(t, s.TransactionCount)
}

func TestSummarize(t *testing.T) {
	txns := []model.Transaction{
		txn("25.50", "food", "2026-08-30"),
		txn("45.00", "transport", "2026-08-29"),
		txn("120.00", "shopping", "2026-08-28"),
	}

	s := Summarize(txns)
	assert.Equal(t, 3, s.TransactionCount)
	assert.True(t, s.TotalSpent.Equal(dec("190.50")), s.TotalSpent.String())
	assert.True(t, s.BiggestExpense.Equal(dec("120.00")))
	// Three-day inclusive span.
	assert.True(t, s.DailyAverage.Equal(dec("190.50").Div(decimal.NewFromInt(3))), s.DailyAverage.String())
}

func TestSummarizeSingleDay(t *testing.T) {
	txns := []model.Transaction{
		txn("10", "food", "2026-08-30"),
		txn("20", "food", "2026-08-30"),
	}
	s := Summarize(txns)
	assert.True(t, s.DailyAverage.Equal(dec("30")), "span never divides by less than one day")
}

func TestByCategoryMatchesTotal(t *testing.T) {
	txns := []model.Transaction{
		txn("25.50", "food", "2026-08-30"),
		txn("10.00", "food", "2026-08-29"),
		txn("45.00", "transport", "2026-08-29"),
		txn("200.00", "bills", "2026-08-26"),
	}

	totals := ByCategory(txns)
	require.Len(t, totals, 3)
	assert.True(t, totals[model.CategoryFood].Equal(dec("35.50")))
	assert.True(t, totals[model.CategoryTransport].Equal(dec("45.00")))

	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(Summarize(txns).TotalSpent))
}

func TestByMonth(t *testing.T) {
	txns := []model.Transaction{
		txn("10", "food", "2026-07-31"),
		txn("20", "food", "2026-08-01"),
		txn("30", "food", "2026-08-30"),
	}

	totals := ByMonth(txns)
	require.Len(t, totals, 2)
	assert.True(t, totals["2026-07"].Equal(dec("10")))
	assert.True(t, totals["2026-08"].Equal(dec("50")))
}

func TestDailyTrend(t *testing.T) {
	today := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	txns := []model.Transaction{
		txn("10", "food", "2026-08-30"),
		txn("5", "food", "2026-08-30"),
		txn("20", "transport", "2026-08-01"),
		txn("99", "bills", "2026-01-01"), // outside the window
	}

	points := DailyTrend(txns, today)
	require.Len(t, points, TrendDays)

	assert.Equal(t, "2026-08-01", points[0].Date.Format(model.DateFormat))
	assert.Equal(t, "2026-08-30", points[TrendDays-1].Date.Format(model.DateFormat))

	assert.True(t, points[0].Amount.Equal(dec("20")))
	assert.True(t, points[TrendDays-1].Amount.Equal(dec("15")), "same-day transactions sum")
	for _, p := range points[1 : TrendDays-1] {
		assert.True(t, p.Amount.IsZero(), p.Date.Format(model.DateFormat))
	}
}

func TestDailyTrendEmptyLedger(t *testing.T) {
	points := DailyTrend(nil, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	require.Len(t, points, TrendDays, "window width is fixed regardless of data")
	for _, p := range points {
		assert.True(t, p.Amount.IsZero())
		assert.True(t, p.Average.IsZero())
	}
}

func TestMovingAverage(t *testing.T) {
	values := make([]decimal.Decimal, 10)
	for i := range values {
		values[i] = decimal.NewFromInt(int64(i + 1)) // 1..10
	}

	out := MovingAverage(values, 7)
	require.Len(t, out, 10)

	// First point: clipped window [0,4) over 1,2,3,4.
	assert.True(t, out[0].Equal(dec("2.5")), out[0].String())
	// Middle point i=5: full window [2,9) over 3..9, average 6.
	assert.True(t, out[5].Equal(dec("6")), out[5].String())
	// Last point: clipped window [6,10) over 7,8,9,10.
	assert.True(t, out[9].Equal(dec("8.5")), out[9].String())
}

func TestBudgetStatusAt(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		txn("300", "bills", "2026-08-05"),
		txn("200", "food", "2026-08-20"),
		txn("999", "shopping", "2026-07-20"), // last month, ignored
	}

	b := BudgetStatusAt(txns, dec("1000"), now)
	assert.True(t, b.Spent.Equal(dec("500")))
	assert.True(t, b.Remaining.Equal(dec("500")))
	assert.InDelta(t, 50.0, b.Percent, 0.0001)
}

func TestBudgetStatusOverBudget(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{txn("1200", "bills", "2026-08-01")}

	b := BudgetStatusAt(txns, dec("1000"), now)
	assert.True(t, b.Remaining.Equal(dec("-200")), "remaining goes negative")
	assert.InDelta(t, 120.0, b.Percent, 0.0001)
}

func TestBudgetStatusZeroBudget(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{txn("100", "food", "2026-08-01")}

	b := BudgetStatusAt(txns, decimal.Zero, now)
	assert.Equal(t, 0.0, b.Percent, "no division by a zero budget")
	assert.True(t, b.Remaining.Equal(dec("-100")))
}
