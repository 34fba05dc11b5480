package parser

import (
	"github.com/pseudomuto/sqlddl/pkg/lexer"
)

// parseColumn parses one column definition item: a name, a type, and any
// combination of attributes in any order. Attribute dispatch is by keyword,
// not position; an unrecognized keyword is skipped with a warning rather
// than failing the column.
func (p *parseContext) parseColumn(c *cursor) (Column, bool) {
	name, ok := c.name()
	if !ok {
		return Column{}, false
	}

	col := Column{Name: name, Nullable: true}
	if dt, ok := parseDataType(c); ok {
		col.Type = dt
		col.Size = dt.size()
	}

	// A DEFERRABLE clause may precede its REFERENCES clause; it is held here
	// until the reference arrives.
	var deferrable *string

	for !c.eof() {
		switch {
		case c.acceptKeywords("NOT", "NULL"):
			col.Nullable = false
		case c.acceptKeyword("NULL"):
			col.Nullable = true
		case c.acceptKeywords("PRIMARY", "KEY"):
			col.primaryKey = true
			col.Nullable = false
		case c.acceptKeyword("UNIQUE"):
			col.Unique = true
		case c.acceptKeyword("AUTO_INCREMENT"):
			col.AutoIncrement = true
		case c.acceptKeyword("DEFAULT"):
			expr := captureExpr(c)
			col.Default = &expr
		case c.peek().IsKeyword("CHECK") && c.peekAt(1).IsPunct("("):
			c.next()
			grp, _ := c.balancedGroup()
			expr := renderTokens(grp)
			col.Check = &expr
		case c.acceptKeyword("REFERENCES"):
			if ref, ok := p.parseReference(c); ok {
				col.References = ref.columnRef()
			}
		case c.peek().IsKeyword("DEFERRABLE") || (c.peek().IsKeyword("NOT") && c.peekAt(1).IsKeyword("DEFERRABLE")):
			txt := parseDeferrable(c)
			deferrable = &txt
		default:
			p.skipUnknown(c, "column attribute on "+col.Name)
		}
	}

	if deferrable != nil {
		switch {
		case col.References == nil:
			p.warnf(WarningUnknownClause, "%s clause without REFERENCES on column %s", *deferrable, col.Name)
		case col.References.DeferrableInitially == nil:
			col.References.DeferrableInitially = deferrable
		}
	}

	return col, true
}

// refTarget is the parsed tail of a REFERENCES clause, shared by
// column-level references and table-level FOREIGN KEY constraints.
type refTarget struct {
	schema     string
	table      string
	columns    []string
	onDelete   *string
	onUpdate   *string
	deferrable *string
}

// columnRef converts the target to a column-level ForeignKeyRef. A missing
// column list leaves Column empty (unspecified, never inferred).
func (r *refTarget) columnRef() *ForeignKeyRef {
	ref := &ForeignKeyRef{
		Schema:              r.schema,
		Table:               r.table,
		OnDelete:            r.onDelete,
		OnUpdate:            r.onUpdate,
		DeferrableInitially: r.deferrable,
	}
	if len(r.columns) > 0 {
		ref.Column = r.columns[0]
	}
	return ref
}

// parseReference parses "<table> [(cols)] [ON DELETE <action>] [ON UPDATE
// <action>] [[NOT] DEFERRABLE [INITIALLY ...]]" after the REFERENCES keyword.
func (p *parseContext) parseReference(c *cursor) (*refTarget, bool) {
	schema, table, ok := c.qualifiedName()
	if !ok {
		return nil, false
	}

	ref := &refTarget{schema: schema, table: table}
	if c.peek().IsPunct("(") {
		grp, _ := c.balancedGroup()
		ref.columns = namesInGroup(grp)
	}

	for c.peek().IsKeyword("ON") {
		event := c.peekAt(1)
		if !event.IsKeyword("DELETE") && !event.IsKeyword("UPDATE") {
			break
		}
		c.next()
		c.next()
		action := parseRefAction(c)
		if event.IsKeyword("DELETE") {
			ref.onDelete = &action
		} else {
			ref.onUpdate = &action
		}
	}

	if c.peek().IsKeyword("DEFERRABLE") || (c.peek().IsKeyword("NOT") && c.peekAt(1).IsKeyword("DEFERRABLE")) {
		txt := parseDeferrable(c)
		ref.deferrable = &txt
	}

	return ref, true
}

// parseRefAction consumes CASCADE, RESTRICT, NO ACTION, SET NULL, or SET
// DEFAULT and returns the normalized action text.
func parseRefAction(c *cursor) string {
	switch {
	case c.acceptKeyword("CASCADE"):
		return "CASCADE"
	case c.acceptKeyword("RESTRICT"):
		return "RESTRICT"
	case c.acceptKeywords("NO", "ACTION"):
		return "NO ACTION"
	case c.acceptKeywords("SET", "NULL"):
		return "SET NULL"
	case c.acceptKeywords("SET", "DEFAULT"):
		return "SET DEFAULT"
	default:
		return c.next().Norm
	}
}

// parseDeferrable consumes [NOT] DEFERRABLE [INITIALLY DEFERRED|IMMEDIATE]
// and returns the clause as normalized text.
func parseDeferrable(c *cursor) string {
	start := c.pos
	c.acceptKeyword("NOT")
	c.acceptKeyword("DEFERRABLE")
	if c.acceptKeyword("INITIALLY") {
		c.next()
	}
	return renderTokens(c.toks[start:c.pos])
}

// captureExpr consumes a default-value expression: a primary (literal,
// identifier, function call, or parenthesized group), optionally chained
// with binary operators.
func captureExpr(c *cursor) string {
	start := c.pos
	capturePrimary(c)
	for c.peek().Kind == lexer.KindOperator && !c.eof() {
		c.next()
		capturePrimary(c)
	}
	return renderTokens(c.toks[start:c.pos])
}

func capturePrimary(c *cursor) {
	if c.peek().IsPunct("(") {
		c.balancedGroup()
		return
	}
	c.next()
	if c.peek().IsPunct("(") {
		c.balancedGroup()
	}
}

// namesInGroup extracts the object names from a parenthesized list body,
// skipping ordering keywords (ASC/DESC) and commas.
func namesInGroup(toks []lexer.Token) []string {
	var names []string
	expectName := true
	for _, t := range toks {
		switch {
		case t.IsPunct(","):
			expectName = true
		case t.IsKeyword("ASC") || t.IsKeyword("DESC"):
			// ordering qualifier, not a name
		case expectName && t.IsName():
			names = append(names, t.Raw)
			expectName = false
		}
	}
	return names
}
