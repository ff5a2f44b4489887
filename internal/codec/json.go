package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

// Mode selects how imported transactions combine with the existing ledger.
type Mode string

const (
	// ModeReplace discards the existing ledger before loading.
	ModeReplace Mode = "replace"
	// ModeMerge adds only transactions whose id is not already present;
	// colliding ids are left untouched.
	ModeMerge Mode = "merge"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeReplace, ModeMerge:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown import mode %q (want merge or replace)", s)
}

type exportPayload struct {
	Transactions []model.Transaction    `json:"transactions"`
	Budget       json.RawMessage        `json:"budget"`
	Currency     model.CurrencySettings `json:"currency"`
	ExportDate   string                 `json:"exportDate"`
}

// ExportJSON writes the full ledger, budget, and currency settings as
// pretty-printed JSON.
func ExportJSON(w io.Writer, svc *ledger.Service, now time.Time) error {
	payload := exportPayload{
		Transactions: svc.All(),
		Budget:       json.RawMessage(svc.Budget().String()),
		Currency:     svc.Currency(),
		ExportDate:   now.UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// ImportJSON parses and validates a full export payload, then applies it in
// the given mode. Any parse or validation failure rejects the payload
// wholesale and leaves the ledger untouched. The budget is updated in both
// modes when the payload carries one.
func ImportJSON(data []byte, svc *ledger.Service, mode Mode) error {
	var payload struct {
		Transactions []model.Transaction `json:"transactions"`
		Budget       json.Number         `json:"budget"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return &FormatError{Format: "json", Err: err}
	}

	for i, t := range payload.Transactions {
		if strings.TrimSpace(t.ID) == "" {
			return ValidationError{Row: i + 1, Field: "id", Reason: "missing"}
		}
		if err := t.Validate(); err != nil {
			return ValidationError{Row: i + 1, Reason: err.Error()}
		}
	}

	var budget decimal.Decimal
	haveBudget := false
	if payload.Budget != "" {
		parsed, err := decimal.NewFromString(payload.Budget.String())
		if err != nil {
			return &FormatError{Format: "json", Err: fmt.Errorf("parsing budget %q: %w", payload.Budget, err)}
		}
		if !parsed.IsPositive() {
			return ValidationError{Field: "budget", Reason: "must be positive"}
		}
		budget = parsed
		haveBudget = true
	}

	switch mode {
	case ModeReplace:
		svc.ReplaceAll(payload.Transactions)
	case ModeMerge:
		for _, t := range payload.Transactions {
			if _, exists := svc.GetByID(t.ID); !exists {
				svc.Add(t)
			}
		}
	default:
		return fmt.Errorf("unknown import mode %q", mode)
	}

	if haveBudget {
		svc.SetBudget(budget)
	}
	return nil
}
