// Package parser turns tokenized DDL text into typed, dialect-normalized
// statement records.
//
// The grammar reducer splits the token sequence into statement spans at
// top-level semicolons, classifies each span from its leading keywords, and
// hands the remaining tokens to the matching statement builder. Within a
// CREATE TABLE span, clause parsing is order-independent: the reducer peeks
// at the next keyword and dispatches by clause kind instead of fixed
// position, so column attributes and table-level clauses may appear in any
// combination and order.
//
// All parse state lives in a per-call context; the package holds no process
// level state, so independent Parse calls are safe from multiple goroutines.
package parser
