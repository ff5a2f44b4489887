// Package aggregate derives read-only summaries from a ledger snapshot.
// Every function is pure; wall-clock-dependent views take the current date
// as an explicit parameter.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// TrendDays is the fixed width of the daily trend window.
const TrendDays = 30

// trendPeriod is the moving-average window for the trend.
const trendPeriod = 7

// Summary holds the headline statistics for a ledger.
type Summary struct {
	TotalSpent       decimal.Decimal
	DailyAverage     decimal.Decimal
	BiggestExpense   decimal.Decimal
	TransactionCount int
}

// Summarize computes the headline statistics. The daily average divides the
// total by the inclusive day span between the earliest and latest
// transaction dates, never less than one day. An empty ledger yields zeros.
func Summarize(txns []model.Transaction) Summary {
	if len(txns) == 0 {
		return Summary{
			TotalSpent:     decimal.Zero,
			DailyAverage:   decimal.Zero,
			BiggestExpense: decimal.Zero,
		}
	}

	total := decimal.Zero
	biggest := decimal.Zero
	minDate := txns[0].Date
	maxDate := txns[0].Date
	for _, t := range txns {
		total = total.Add(t.Amount)
		if t.Amount.GreaterThan(biggest) {
			biggest = t.Amount
		}
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}

	days := int(maxDate.Sub(minDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	return Summary{
		TotalSpent:       total,
		DailyAverage:     total.Div(decimal.NewFromInt(int64(days))),
		BiggestExpense:   biggest,
		TransactionCount: len(txns),
	}
}

// ByCategory sums amounts per category, covering only categories present
// in the ledger.
func ByCategory(txns []model.Transaction) map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, t := range txns {
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}

// ByMonth sums amounts per "YYYY-MM" bucket, covering only months with at
// least one transaction.
func ByMonth(txns []model.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		totals[t.MonthKey()] = totals[t.MonthKey()].Add(t.Amount)
	}
	return totals
}

// TrendPoint is one day of the spending trend.
type TrendPoint struct {
	Date    time.Time
	Amount  decimal.Decimal
	Average decimal.Decimal // centered 7-day moving average
}

// DailyTrend returns exactly TrendDays points covering the window ending on
// today, regardless of the ledger's actual span. Days without transactions
// are zero.
func DailyTrend(txns []model.Transaction, today time.Time) []TrendPoint {
	y, m, d := today.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	byDay := make(map[string]decimal.Decimal)
	for _, t := range txns {
		key := t.DateString()
		byDay[key] = byDay[key].Add(t.Amount)
	}

	dates := make([]time.Time, TrendDays)
	amounts := make([]decimal.Decimal, TrendDays)
	for i := 0; i < TrendDays; i++ {
		day := end.AddDate(0, 0, i-(TrendDays-1))
		dates[i] = day
		amounts[i] = byDay[day.Format(model.DateFormat)]
	}

	averages := MovingAverage(amounts, trendPeriod)
	points := make([]TrendPoint, TrendDays)
	for i := range points {
		points[i] = TrendPoint{Date: dates[i], Amount: amounts[i], Average: averages[i]}
	}
	return points
}

// MovingAverage computes a centered moving average. At the boundaries the
// window is clipped to the series and the average taken over whatever
// points remain, so the result always has the input's length.
func MovingAverage(values []decimal.Decimal, period int) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i := range values {
		start := i - period/2
		if start < 0 {
			start = 0
		}
		end := i + (period+1)/2
		if end > len(values) {
			end = len(values)
		}
		sum := decimal.Zero
		for _, v := range values[start:end] {
			sum = sum.Add(v)
		}
		out[i] = sum.Div(decimal.NewFromInt(int64(end - start)))
	}
	return out
}

// BudgetStatus compares the current calendar month's spending against the
// budget.
type BudgetStatus struct {
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal // negative when over budget
	Percent   float64         // spent/budget*100; 0 when the budget is not positive
}

// BudgetStatusAt computes budget usage for the month containing now.
func BudgetStatusAt(txns []model.Transaction, budget decimal.Decimal, now time.Time) BudgetStatus {
	spent := decimal.Zero
	for _, t := range txns {
		if t.Date.Year() == now.Year() && t.Date.Month() == now.Month() {
			spent = spent.Add(t.Amount)
		}
	}

	percent := 0.0
	if budget.IsPositive() {
		percent, _ = spent.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
	}

	return BudgetStatus{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Sub(spent),
		Percent:   percent,
	}
}
