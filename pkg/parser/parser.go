package parser

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlddl/pkg/lexer"
)

// Parse tokenizes and parses multi-statement DDL text. A lexer failure
// (unterminated quote or block comment) aborts the whole call; everything
// else is reported per statement inside the Result, so one malformed
// statement never hides the rest of the input.
//
// Example:
//
//	res, err := parser.Parse(`CREATE TABLE employees (
//		id SERIAL PRIMARY KEY,
//		first_name VARCHAR(50)
//	);`)
//	if err != nil {
//		return err
//	}
//	for _, stmt := range res.Statements {
//		if t, ok := stmt.(*parser.CreateTable); ok {
//			fmt.Println(t.Name, t.PrimaryKey)
//		}
//	}
func Parse(ddl string) (*Result, error) {
	toks, err := lexer.Lex(ddl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize DDL")
	}

	p := &parseContext{
		result: &Result{},
		tables: make(map[string]*CreateTable),
	}

	for i, span := range splitSpans(toks) {
		p.stmt = i
		p.parseStatement(span)
	}

	return p.result, nil
}

// parseContext holds all state for a single parse call: token spans, the
// statement accumulator, and the table registry used to resolve ALTER and
// INDEX targets. Nothing here is shared across calls.
type parseContext struct {
	result *Result
	tables map[string]*CreateTable
	stmt   int // index of the statement currently being parsed
}

func (p *parseContext) warnf(kind WarningKind, format string, args ...any) {
	p.result.Warnings = append(p.result.Warnings, Warning{
		Kind:      kind,
		Statement: p.stmt,
		Text:      fmt.Sprintf(format, args...),
	})
}

func (p *parseContext) structuralf(c *cursor, format string, args ...any) *StructuralError {
	offset := 0
	if len(c.toks) > 0 {
		offset = c.toks[0].Offset
	}
	return &StructuralError{
		Statement: p.stmt,
		Offset:    offset,
		Msg:       fmt.Sprintf(format, args...),
	}
}

// parseStatement classifies one statement span from its leading keywords
// and hands the rest to the matching builder. Classification failures are
// structural errors local to this statement.
func (p *parseContext) parseStatement(span []lexer.Token) {
	c := newCursor(span)

	var (
		stmt Statement
		serr *StructuralError
	)

	switch {
	case c.acceptKeyword("CREATE"):
		switch {
		case c.acceptKeyword("TABLE"):
			stmt, serr = p.parseCreateTable(c, false)
		case c.acceptKeywords("EXTERNAL", "TABLE"):
			stmt, serr = p.parseCreateTable(c, true)
		case c.acceptKeyword("SEQUENCE"):
			stmt, serr = p.parseCreateSequence(c)
		case c.acceptKeywords("UNIQUE", "INDEX"):
			stmt, serr = p.parseCreateIndex(c, true)
		case c.acceptKeyword("INDEX"):
			stmt, serr = p.parseCreateIndex(c, false)
		default:
			serr = p.structuralf(c, "unsupported CREATE statement: CREATE %s", c.peek().Norm)
		}
	case c.acceptKeywords("ALTER", "TABLE"):
		stmt, serr = p.parseAlterTable(c)
	default:
		serr = p.structuralf(c, "statement cannot be classified from leading token %q", c.peek().Raw)
	}

	if serr != nil {
		p.result.Errors = append(p.result.Errors, serr)
		return
	}

	p.result.Statements = append(p.result.Statements, stmt)
	if t, ok := stmt.(*CreateTable); ok {
		p.tables[tableKey(t.Schema, t.Name)] = t
	}
}

// lookupTable resolves a (schema, table) pair against tables declared
// earlier in the same parse call.
func (p *parseContext) lookupTable(schema, name string) (*CreateTable, bool) {
	t, ok := p.tables[tableKey(schema, name)]
	return t, ok
}

// skipUnknown records a recoverable warning for an unrecognized keyword at
// clause-dispatch position and consumes its tokens up to the next recognized
// clause boundary, so unsupported dialect clauses degrade gracefully.
func (p *parseContext) skipUnknown(c *cursor, context string) {
	start := c.pos
	c.next()
	for !c.eof() && !clauseBoundary(c.peek()) {
		c.next()
	}
	p.warnf(WarningUnknownClause, "skipped unrecognized %s: %q", context, renderTokens(c.toks[start:c.pos]))
}

// clauseBoundary reports whether a token can begin a recognized clause,
// bounding how far skipUnknown consumes.
func clauseBoundary(t lexer.Token) bool {
	if t.Kind != lexer.KindKeyword {
		return false
	}
	switch t.Norm {
	case "NOT", "NULL", "DEFAULT", "CHECK", "UNIQUE", "PRIMARY", "FOREIGN",
		"REFERENCES", "CONSTRAINT", "AUTO_INCREMENT", "DEFERRABLE",
		"PARTITIONED", "STORED", "LOCATION", "ROW", "FIELDS", "COLLECTION",
		"LINES", "LIKE", "ADD", "DROP", "RENAME", "MODIFY":
		return true
	default:
		return false
	}
}

// splitSpans divides the token sequence into statement spans at top-level
// semicolons (outside parentheses; quotes were resolved during lexing).
func splitSpans(toks []lexer.Token) [][]lexer.Token {
	var (
		spans [][]lexer.Token
		start int
		depth int
	)

	for i, t := range toks {
		switch {
		case t.IsPunct("("):
			depth++
		case t.IsPunct(")"):
			if depth > 0 {
				depth--
			}
		case t.IsPunct(";") && depth == 0:
			if i > start {
				spans = append(spans, toks[start:i])
			}
			start = i + 1
		}
	}
	if start < len(toks) {
		spans = append(spans, toks[start:])
	}

	return spans
}

// splitOnCommas divides a parenthesized list body into items at top-level
// commas. Besides parentheses it tracks the angle brackets of nested types,
// so STRUCT<a:string,b:int> stays a single item.
func splitOnCommas(toks []lexer.Token) [][]lexer.Token {
	var (
		items [][]lexer.Token
		start int
		depth int
		angle int
	)

	for i, t := range toks {
		switch {
		case t.IsPunct("("):
			depth++
		case t.IsPunct(")"):
			depth--
		case t.IsOperator("<") && (angle > 0 || (i > 0 && nestedTypeName(toks[i-1]))):
			angle++
		case t.IsOperator(">") && angle > 0:
			angle--
		case t.IsPunct(",") && depth == 0 && angle == 0:
			if i > start {
				items = append(items, toks[start:i])
			}
			start = i + 1
		}
	}
	if start < len(toks) {
		items = append(items, toks[start:])
	}

	return items
}

func nestedTypeName(t lexer.Token) bool {
	switch t.Norm {
	case "ARRAY", "STRUCT", "MAP":
		return t.Kind == lexer.KindKeyword
	default:
		return false
	}
}

func tableKey(schema, name string) string {
	return lowerName(schema) + "." + lowerName(name)
}

func lowerName(s string) string { return strings.ToLower(s) }
