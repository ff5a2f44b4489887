package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// SampleTransactions generates the demonstration ledger used when storage
// is empty or unreadable. Dates are relative to today so the trend and
// budget views have something to show.
func SampleTransactions(today time.Time) []model.Transaction {
	sample := []struct {
		amount   string
		category model.Category
		desc     string
		daysAgo  int
	}{
		{"25.50", model.CategoryFood, "Lunch at cafe", 0},
		{"45.00", model.CategoryTransport, "Gas for car", 1},
		{"120.00", model.CategoryShopping, "New shoes", 2},
		{"15.99", model.CategoryEntertainment, "Movie tickets", 3},
		{"200.00", model.CategoryBills, "Electricity bill", 4},
	}

	txns := make([]model.Transaction, 0, len(sample))
	for _, s := range sample {
		txns = append(txns, model.Transaction{
			ID:          uuid.NewString(),
			Amount:      decimal.RequireFromString(s.amount),
			Category:    s.category,
			Description: s.desc,
			Date:        today.AddDate(0, 0, -s.daysAgo),
		})
	}
	return txns
}
