// Package ledger owns the transaction list, the monthly budget, and the
// currency settings, persisting all three after every mutation.
package ledger

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/storage"
)

// DefaultBudget is the monthly ceiling used until the user sets one, and
// again after Clear.
var DefaultBudget = decimal.NewFromInt(1000)

// Service is the single owner of ledger state for a process. Mutations
// persist synchronously: when a mutator returns, the change is committed.
type Service struct {
	mu     sync.Mutex
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time

	txns     []model.Transaction
	budget   decimal.Decimal
	currency model.CurrencySettings
}

// Option configures a Service.
type Option func(*Service)

// WithClock injects the wall clock, used for default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService loads ledger state from the store. Empty or corrupt stored
// transactions fall back to generated sample data; a corrupt budget or
// currency value falls back to its default. Loaded state is saved back once
// so a fresh store is populated immediately.
func NewService(store storage.Store, opts ...Option) (*Service, error) {
	s := &Service{
		store:    store,
		logger:   slog.Default(),
		now:      time.Now,
		budget:   DefaultBudget,
		currency: model.DefaultCurrency(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.persistLocked()
	s.mu.Unlock()
	return s, nil
}

func (s *Service) load() error {
	raw, ok, err := s.store.Get(storage.KeyTransactions)
	if err != nil {
		return err
	}
	if !ok {
		s.txns = SampleTransactions(s.today())
	} else if err := json.Unmarshal([]byte(raw), &s.txns); err != nil {
		s.logger.Warn("stored transactions are corrupt, using sample data", "error", err)
		s.txns = SampleTransactions(s.today())
	}

	raw, ok, err = s.store.Get(storage.KeyBudget)
	if err != nil {
		return err
	}
	if ok {
		budget, perr := decimal.NewFromString(raw)
		if perr != nil {
			s.logger.Warn("stored budget is corrupt, using default", "value", raw, "error", perr)
		} else {
			s.budget = budget
		}
	}

	raw, ok, err = s.store.Get(storage.KeyCurrency)
	if err != nil {
		return err
	}
	if ok {
		var cur model.CurrencySettings
		if perr := json.Unmarshal([]byte(raw), &cur); perr != nil {
			s.logger.Warn("stored currency settings are corrupt, using default", "error", perr)
		} else {
			s.currency = cur
		}
	}
	return nil
}

// Add inserts a transaction at the front of the ledger and persists. A
// missing id gets a fresh one; a zero date defaults to today. Add accepts
// the record as-is: field validation belongs to AddValidated and the codec.
func (s *Service) Add(t model.Transaction) model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = s.today()
	}
	s.txns = append([]model.Transaction{t}, s.txns...)
	s.persistLocked()
	return t
}

// AddValidated checks the transaction invariants, then stores it under a
// freshly generated id. This is the strict entry point used by imports.
func (s *Service) AddValidated(t model.Transaction) (model.Transaction, error) {
	if err := t.Validate(); err != nil {
		return model.Transaction{}, err
	}
	t.ID = ""
	return s.Add(t), nil
}

// Patch holds the fields an Update may change. Nil fields are left alone.
type Patch struct {
	Amount      *decimal.Decimal
	Category    *model.Category
	Description *string
	Date        *time.Time
}

// Update merges patch into the transaction with the given id and persists.
// The second return is false when the id is unknown.
func (s *Service) Update(id string, patch Patch) (model.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.txns {
		if s.txns[i].ID != id {
			continue
		}
		if patch.Amount != nil {
			s.txns[i].Amount = *patch.Amount
		}
		if patch.Category != nil {
			s.txns[i].Category = *patch.Category
		}
		if patch.Description != nil {
			s.txns[i].Description = *patch.Description
		}
		if patch.Date != nil {
			s.txns[i].Date = *patch.Date
		}
		s.persistLocked()
		return s.txns[i], true
	}
	return model.Transaction{}, false
}

// Delete removes the transaction with the given id and persists, returning
// the removed record. The second return is false when the id is unknown.
func (s *Service) Delete(id string) (model.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.txns {
		if s.txns[i].ID != id {
			continue
		}
		removed := s.txns[i]
		s.txns = append(s.txns[:i:i], s.txns[i+1:]...)
		s.persistLocked()
		return removed, true
	}
	return model.Transaction{}, false
}

// GetByID returns the transaction with the given id.
func (s *Service) GetByID(id string) (model.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.txns {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// All returns a copy of the full ledger in storage order (newest insert
// first).
func (s *Service) All() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Filters narrows a Query. Zero values are ignored; set filters combine
// with AND.
type Filters struct {
	Category  model.Category
	Month     string // "YYYY-MM"
	StartDate string // "YYYY-MM-DD", inclusive
	EndDate   string // "YYYY-MM-DD", inclusive
}

// Query returns the matching transactions sorted by date descending.
func (s *Service) Query(f Filters) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.All() {
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Month != "" && t.MonthKey() != f.Month {
			continue
		}
		// ISO dates compare correctly as strings.
		if f.StartDate != "" && t.DateString() < f.StartDate {
			continue
		}
		if f.EndDate != "" && t.DateString() > f.EndDate {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ReplaceAll swaps the entire ledger for txns and persists.
func (s *Service) ReplaceAll(txns []model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txns = make([]model.Transaction, len(txns))
	copy(s.txns, txns)
	s.persistLocked()
}

// Clear empties the ledger, resets the budget to the default, and persists.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txns = nil
	s.budget = DefaultBudget
	s.persistLocked()
}

// Budget returns the monthly budget.
func (s *Service) Budget() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

// SetBudget stores a new monthly budget and persists.
func (s *Service) SetBudget(budget decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = budget
	s.persistLocked()
}

// Currency returns the current display currency settings.
func (s *Service) Currency() model.CurrencySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetCurrency applies new currency settings and persists. A known code
// pulls symbol, locale, and symbol position from the preset table; an
// unknown code is taken as a custom currency with sensible fallbacks. A
// request with only a symbol changes just the symbol and its position.
func (s *Service) SetCurrency(req model.CurrencySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case req.Code != "":
		if p, ok := model.PresetByCode(req.Code); ok {
			s.currency = model.CurrencySettings{
				Code:           p.Code,
				Symbol:         p.Symbol,
				Locale:         p.Locale,
				SymbolPosition: model.PositionForLocale(p.Locale),
			}
			break
		}
		cur := req
		if cur.Symbol == "" {
			cur.Symbol = cur.Code
		}
		if cur.Locale == "" {
			cur.Locale = "en-US"
		}
		if cur.SymbolPosition == "" {
			cur.SymbolPosition = model.SymbolBefore
		}
		s.currency = cur
	case req.Symbol != "":
		s.currency.Symbol = req.Symbol
		if req.SymbolPosition != "" {
			s.currency.SymbolPosition = req.SymbolPosition
		} else {
			s.currency.SymbolPosition = model.SymbolBefore
		}
	}
	s.persistLocked()
}

// Save re-persists current state. Mutators already persist; this backs the
// periodic autosave net.
func (s *Service) Save() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked()
}

// persistLocked writes transactions, budget, and currency settings to the
// store. Callers hold the mutex. Write failures are logged, not returned:
// in-memory state stays authoritative and the next mutation or autosave
// tick retries.
func (s *Service) persistLocked() {
	txns := s.txns
	if txns == nil {
		txns = []model.Transaction{}
	}
	data, err := json.Marshal(txns)
	if err != nil {
		s.logger.Error("marshaling transactions", "error", err)
		return
	}
	if err := s.store.Set(storage.KeyTransactions, string(data)); err != nil {
		s.logger.Error("persisting transactions", "error", err)
	}
	if err := s.store.Set(storage.KeyBudget, s.budget.String()); err != nil {
		s.logger.Error("persisting budget", "error", err)
	}
	cur, err := json.Marshal(s.currency)
	if err != nil {
		s.logger.Error("marshaling currency settings", "error", err)
		return
	}
	if err := s.store.Set(storage.KeyCurrency, string(cur)); err != nil {
		s.logger.Error("persisting currency settings", "error", err)
	}
}

// today returns the current calendar date at UTC midnight, matching how
// stored dates are parsed.
func (s *Service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
