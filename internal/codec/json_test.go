package codec

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/storage"
)

var testClock = func() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

// newEmptyLedger returns a service with no transactions.
func newEmptyLedger(t *testing.T) *ledger.Service {
	t.Helper()
	svc, err := ledger.NewService(storage.NewMemory(), ledger.WithClock(testClock))
	require.NoError(t, err)
	svc.ReplaceAll(nil)
	return svc
}

func txn(id, amount, category, desc, date string) model.Transaction {
	d, err := time.Parse(model.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:          id,
		Amount:      decimal.RequireFromString(amount),
		Category:    model.Category(category),
		Description: desc,
		Date:        d,
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("merge")
	require.NoError(t, err)
	assert.Equal(t, ModeMerge, m)

	m, err = ParseMode("replace")
	require.NoError(t, err)
	assert.Equal(t, ModeReplace, m)

	_, err = ParseMode("upsert")
	assert.Error(t, err)
}

func TestExportJSONShape(t *testing.T) {
	svc := newEmptyLedger(t)
	svc.Add(txn("", "25.50", "food", "Lunch at cafe", "2026-08-30"))
	svc.SetBudget(decimal.RequireFromString("1500"))

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, svc, testClock()))

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Contains(t, payload, "transactions")
	assert.Contains(t, payload, "currency")
	assert.Equal(t, "1500", string(payload["budget"]), "budget is a bare number")
	assert.Equal(t, `"2026-08-30T12:00:00Z"`, string(payload["exportDate"]))
}

func TestJSONRoundTrip(t *testing.T) {
	src := newEmptyLedger(t)
	src.Add(txn("", "25.50", "food", "Lunch at cafe", "2026-08-30"))
	src.Add(txn("", "45.00", "transport", "Gas for car", "2026-08-29"))
	src.SetBudget(decimal.RequireFromString("1500"))

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, src, testClock()))

	dst := newEmptyLedger(t)
	require.NoError(t, ImportJSON(buf.Bytes(), dst, ModeReplace))

	want := src.All()
	got := dst.All()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].DateString(), got[i].DateString())
	}
	assert.True(t, dst.Budget().Equal(decimal.RequireFromString("1500")))
}

func TestImportJSONMerge(t *testing.T) {
	svc := newEmptyLedger(t)
	existing := svc.Add(txn("keep-me", "10", "food", "Existing", "2026-08-01"))

	payload := `{
		"transactions": [
			{"id": "keep-me", "amount": 999, "category": "bills", "description": "Collision", "date": "2026-08-02"},
			{"id": "new-one", "amount": 20, "category": "transport", "description": "Bus", "date": "2026-08-03"}
		],
		"budget": 2000
	}`
	require.NoError(t, ImportJSON([]byte(payload), svc, ModeMerge))

	require.Len(t, svc.All(), 2)

	kept, ok := svc.GetByID("keep-me")
	require.True(t, ok)
	assert.Equal(t, existing.Description, kept.Description, "colliding ids are not overwritten")

	imported, ok := svc.GetByID("new-one")
	require.True(t, ok)
	assert.Equal(t, "Bus", imported.Description, "imported ids are preserved")

	assert.True(t, svc.Budget().Equal(decimal.RequireFromString("2000")), "merge still applies the budget")
}

func TestImportJSONReplace(t *testing.T) {
	svc := newEmptyLedger(t)
	svc.Add(txn("old", "10", "food", "Old", "2026-08-01"))

	payload := `{
		"transactions": [
			{"id": "fresh", "amount": 5.25, "category": "other", "description": "Fresh", "date": "2026-08-05"}
		]
	}`
	require.NoError(t, ImportJSON([]byte(payload), svc, ModeReplace))

	txns := svc.All()
	require.Len(t, txns, 1)
	assert.Equal(t, "fresh", txns[0].ID)

	_, ok := svc.GetByID("old")
	assert.False(t, ok)
}

func TestImportJSONRejectsWholePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{broken`},
		{"missing id", `{"transactions":[{"amount":1,"category":"food","description":"x","date":"2026-08-01"}]}`},
		{"bad amount", `{"transactions":[{"id":"a","amount":-5,"category":"food","description":"x","date":"2026-08-01"}]}`},
		{"bad category", `{"transactions":[{"id":"a","amount":1,"category":"groceries","description":"x","date":"2026-08-01"}]}`},
		{"bad date", `{"transactions":[{"id":"a","amount":1,"category":"food","description":"x","date":"01/08/2026"}]}`},
		{"one bad among good", `{"transactions":[
			{"id":"a","amount":1,"category":"food","description":"ok","date":"2026-08-01"},
			{"id":"b","amount":0,"category":"food","description":"bad","date":"2026-08-02"}
		]}`},
		{"negative budget", `{"transactions":[],"budget":-100}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newEmptyLedger(t)
			sentinel := svc.Add(txn("sentinel", "1", "food", "Untouched", "2026-08-01"))

			err := ImportJSON([]byte(tt.payload), svc, ModeReplace)
			require.Error(t, err)

			txns := svc.All()
			require.Len(t, txns, 1, "ledger must be untouched after a rejected import")
			assert.Equal(t, sentinel.ID, txns[0].ID)
		})
	}
}

func TestImportJSONValidationErrorDetails(t *testing.T) {
	payload := `{"transactions":[
		{"id":"a","amount":1,"category":"food","description":"ok","date":"2026-08-01"},
		{"amount":1,"category":"food","description":"no id","date":"2026-08-02"}
	]}`
	err := ImportJSON([]byte(payload), newEmptyLedger(t), ModeMerge)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Row)
	assert.Equal(t, "id", verr.Field)
}
