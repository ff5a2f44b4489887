// Package codec serializes the ledger to JSON and CSV and validates both
// formats on the way back in. Imports are all-or-nothing: nothing is added
// until every record has passed validation.
package codec

import (
	"errors"
	"fmt"
)

// ErrNoTransactions signals an export whose filter matched zero rows.
var ErrNoTransactions = errors.New("no transactions to export")

// ValidationError describes a single invalid record in an import payload.
type ValidationError struct {
	Row    int // 1-based record number within the payload
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("record %d: %s: %s", e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("record %d: %s", e.Row, e.Reason)
}

// FormatError wraps a structural parse failure in an import payload.
type FormatError struct {
	Format string // "json" or "csv"
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
