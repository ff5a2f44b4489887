package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/categories"
	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

// csvHeader is the export header. Imports accept the same names in any
// order, case-insensitively.
var csvHeader = []string{"Date", "Description", "Category", "Amount"}

// csvDateLayouts are the date forms accepted on import. Whatever matches is
// normalized to model.DateFormat.
var csvDateLayouts = []string{
	model.DateFormat,
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ExportCSV writes transactions as CSV: header row, one row per
// transaction, amounts with exactly two decimals. Descriptions containing
// commas, quotes, or newlines are quoted with inner quotes doubled
// (encoding/csv semantics). Zero rows is ErrNoTransactions, not an empty
// file.
func ExportCSV(w io.Writer, txns []model.Transaction) error {
	if len(txns) == 0 {
		return ErrNoTransactions
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		row := []string{t.DateString(), t.Description, string(t.Category), t.Amount.StringFixed(2)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV parses and validates a CSV payload, then adds every row through
// the ledger's strict add path, so each stored transaction gets a fresh id.
// Validation runs over the whole file before anything is added; one bad row
// aborts the import with the ledger untouched. Returns the number of
// transactions added.
func ImportCSV(r io.Reader, svc *ledger.Service) (int, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return 0, &FormatError{Format: "csv", Err: err}
	}
	if len(records) < 2 {
		return 0, &FormatError{Format: "csv", Err: errors.New("need a header row and at least one data row")}
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return 0, &FormatError{Format: "csv", Err: err}
	}

	cats := categories.NewService()
	txns := make([]model.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		t, err := parseCSVRow(rec, cols, cats, i+1)
		if err != nil {
			return 0, err
		}
		txns = append(txns, t)
	}

	for _, t := range txns {
		if _, err := svc.AddValidated(t); err != nil {
			// Unreachable after row validation, but surfaced just in case.
			return 0, fmt.Errorf("adding imported transaction: %w", err)
		}
	}
	return len(txns), nil
}

// headerIndex maps the four required column names to their positions in the
// declared header. Extra columns are tolerated and ignored.
func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"date", "description", "category", "amount"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required header %q", required)
		}
	}
	return cols, nil
}

func parseCSVRow(rec []string, cols map[string]int, cats *categories.Service, row int) (model.Transaction, error) {
	date, err := parseFlexibleDate(rec[cols["date"]])
	if err != nil {
		return model.Transaction{}, ValidationError{Row: row, Field: "date", Reason: err.Error()}
	}

	category, ok := cats.Normalize(rec[cols["category"]])
	if !ok {
		return model.Transaction{}, ValidationError{Row: row, Field: "category", Reason: fmt.Sprintf("unknown category %q", rec[cols["category"]])}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[cols["amount"]]))
	if err != nil {
		return model.Transaction{}, ValidationError{Row: row, Field: "amount", Reason: err.Error()}
	}
	if !amount.IsPositive() {
		return model.Transaction{}, ValidationError{Row: row, Field: "amount", Reason: "must be positive"}
	}

	description := rec[cols["description"]]
	if strings.TrimSpace(description) == "" {
		return model.Transaction{}, ValidationError{Row: row, Field: "description", Reason: "missing"}
	}

	return model.Transaction{
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}, nil
}

func parseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range csvDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
