package parser

import "fmt"

const (
	// WarningUnknownClause is recorded when a keyword at clause-dispatch
	// position is not recognized; the clause's tokens are skipped and the
	// statement continues parsing.
	WarningUnknownClause WarningKind = "unknown_clause"

	// WarningUnresolvedAlter is recorded when an ALTER TABLE names a table
	// not seen earlier in the same parse call.
	WarningUnresolvedAlter WarningKind = "unresolved_alter_target"

	// WarningUnresolvedIndex is recorded when a CREATE INDEX names a table
	// not seen earlier in the same parse call.
	WarningUnresolvedIndex WarningKind = "unresolved_index_target"

	// WarningInvariant is recorded when a statement violates a structural
	// invariant that does not prevent parsing (duplicate column names,
	// a PRIMARY KEY constraint naming an undeclared column).
	WarningInvariant WarningKind = "invariant"
)

type (
	// WarningKind classifies a recoverable parse condition.
	WarningKind string

	// Warning is a recoverable condition attached to the parse result.
	// Warnings never stop processing of subsequent clauses or statements.
	Warning struct {
		Kind      WarningKind
		Statement int // 0-based statement index in the input
		Text      string
	}

	// StructuralError means a statement span could not be classified or a
	// required sub-clause was missing. It aborts only the affected
	// statement; the rest of the input is still parsed.
	StructuralError struct {
		Statement int // 0-based statement index in the input
		Offset    int // byte offset of the statement start
		Msg       string
	}

	// Result is the outcome of one parse call: best-effort statement
	// records in source order, plus any recoverable warnings and
	// per-statement structural errors.
	Result struct {
		Statements []Statement
		Warnings   []Warning
		Errors     []*StructuralError
	}
)

// String renders the warning for diagnostics.
func (w Warning) String() string {
	return fmt.Sprintf("statement %d: %s: %s", w.Statement, w.Kind, w.Text)
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("statement %d (offset %d): %s", e.Statement, e.Offset, e.Msg)
}
