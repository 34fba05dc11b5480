package parser

import (
	"github.com/pseudomuto/sqlddl/pkg/lexer"
)

// ensureHQL lazily allocates the Hive clause bag so it stays nil for inputs
// that never used a Hive clause.
func (t *CreateTable) ensureHQL() *HQLClauses {
	if t.HQL == nil {
		t.HQL = &HQLClauses{}
	}
	return t.HQL
}

// parseCreateTable builds a CreateTable record. The cursor sits just past
// CREATE [EXTERNAL] TABLE. The builder initializes every collection up
// front so the output record has a stable key set regardless of which
// clauses were present.
func (p *parseContext) parseCreateTable(c *cursor, external bool) (*CreateTable, *StructuralError) {
	t := &CreateTable{
		Columns:       []Column{},
		PrimaryKey:    []string{},
		Checks:        []CheckConstraint{},
		Uniques:       []UniqueConstraint{},
		ForeignKeys:   []ForeignKey{},
		Indexes:       []Index{},
		PartitionedBy: []Column{},
	}
	if external {
		t.ensureHQL().External = true
	}

	if c.acceptKeywords("IF", "NOT", "EXISTS") {
		t.IfNotExists = true
	}

	schema, name, ok := c.qualifiedName()
	if !ok {
		return nil, p.structuralf(c, "CREATE TABLE is missing a table name")
	}
	t.Schema, t.Name = schema, name

	hasColumns := false
	if c.peek().IsPunct("(") {
		grp, ok := c.balancedGroup()
		if !ok {
			return nil, p.structuralf(c, "unbalanced column list for table %s", name)
		}
		p.parseColumnList(grp, t)
		hasColumns = true
	}

	for !c.eof() {
		p.parseTableClause(c, t)
	}

	if !hasColumns && t.Like == nil {
		return nil, p.structuralf(c, "CREATE TABLE %s has no column list", name)
	}

	p.finishTable(t)
	return t, nil
}

// parseColumnList splits the parenthesized body at top-level commas and
// parses each item as either a table-level constraint or a column
// definition.
func (p *parseContext) parseColumnList(toks []lexer.Token, t *CreateTable) {
	for _, item := range splitOnCommas(toks) {
		c := newCursor(item)
		if p.parseTableConstraint(c, t) {
			continue
		}
		if col, ok := p.parseColumn(c); ok {
			t.Columns = append(t.Columns, col)
		} else if len(item) > 0 {
			p.warnf(WarningUnknownClause, "skipped unparseable column entry: %q", renderTokens(item))
		}
	}
}

// parseTableConstraint handles the constraint forms that may appear inside
// the column list. Returns false when the item is not a constraint, leaving
// the cursor untouched for column parsing.
func (p *parseContext) parseTableConstraint(c *cursor, t *CreateTable) bool {
	var name *string
	if c.peek().IsKeyword("CONSTRAINT") && c.peekAt(1).IsName() {
		c.next()
		n, _ := c.name()
		name = &n
	}

	switch {
	case c.acceptKeywords("PRIMARY", "KEY"):
		grp, _ := c.balancedGroup()
		t.PrimaryKey = append(t.PrimaryKey, namesInGroup(grp)...)
	case c.peek().IsKeyword("CHECK") && c.peekAt(1).IsPunct("("):
		c.next()
		grp, _ := c.balancedGroup()
		t.Checks = append(t.Checks, CheckConstraint{Name: name, Expression: renderTokens(grp)})
	case c.peek().IsKeyword("UNIQUE") && c.peekAt(1).IsPunct("("):
		c.next()
		grp, _ := c.balancedGroup()
		t.Uniques = append(t.Uniques, UniqueConstraint{Name: name, Columns: namesInGroup(grp)})
	case c.acceptKeywords("FOREIGN", "KEY"):
		grp, _ := c.balancedGroup()
		cols := namesInGroup(grp)
		if !c.acceptKeyword("REFERENCES") {
			p.warnf(WarningUnknownClause, "FOREIGN KEY without REFERENCES clause")
			return true
		}
		if ref, ok := p.parseReference(c); ok {
			t.ForeignKeys = append(t.ForeignKeys, ForeignKey{
				Name:       name,
				Columns:    cols,
				RefSchema:  ref.schema,
				RefTable:   ref.table,
				RefColumns: ref.columns,
				OnDelete:   ref.onDelete,
				OnUpdate:   ref.onUpdate,
			})
		}
	case c.peek().IsKeyword("LIKE"):
		c.next()
		if schema, table, ok := c.qualifiedName(); ok {
			t.Like = &TableRef{Schema: schema, Name: table}
		}
	case (c.peek().IsKeyword("INDEX") || c.peek().IsKeyword("KEY")) &&
		c.peekAt(1).IsName() && c.peekAt(2).IsPunct("("):
		// MySQL inline index: KEY idx_name (cols). The kind check and the
		// lookahead keep quoted "KEY" columns out of this arm.
		c.next()
		idxName, _ := c.name()
		grp, _ := c.balancedGroup()
		t.Indexes = append(t.Indexes, Index{Name: idxName, Columns: namesInGroup(grp)})
	default:
		if name != nil {
			// CONSTRAINT <name> followed by something unrecognized
			p.skipUnknown(c, "constraint body")
			return true
		}
		return false
	}

	return true
}

// parseTableClause dispatches one table-level clause after the column list.
// Clauses may appear in any order; unknown keywords are skipped with a
// warning rather than aborting the statement.
func (p *parseContext) parseTableClause(c *cursor, t *CreateTable) {
	switch {
	case c.acceptKeywords("PARTITIONED", "BY"):
		grp, _ := c.balancedGroup()
		for _, item := range splitOnCommas(grp) {
			ic := newCursor(item)
			name, ok := ic.name()
			if !ok {
				continue
			}
			col := Column{Name: name, Nullable: true}
			if dt, ok := parseDataType(ic); ok {
				col.Type = dt
				col.Size = dt.size()
			}
			t.PartitionedBy = append(t.PartitionedBy, col)
		}
	case c.acceptKeywords("STORED", "AS"):
		t.ensureHQL().StoredAs = nextRaw(c)
	case c.acceptKeyword("LOCATION"):
		t.ensureHQL().Location = nextRaw(c)
	case c.acceptKeywords("ROW", "FORMAT"):
		t.ensureHQL().RowFormat = nextRaw(c)
	case c.acceptKeywords("FIELDS", "TERMINATED", "BY"):
		t.ensureHQL().FieldsTerminatedBy = nextRaw(c)
	case c.acceptKeywords("COLLECTION", "ITEMS", "TERMINATED", "BY"):
		t.ensureHQL().CollectionItemsTerminatedBy = nextRaw(c)
	case c.acceptKeywords("MAP", "KEYS", "TERMINATED", "BY"):
		t.ensureHQL().MapKeysTerminatedBy = nextRaw(c)
	case c.acceptKeywords("LINES", "TERMINATED", "BY"):
		t.ensureHQL().LinesTerminatedBy = nextRaw(c)
	case c.peek().IsKeyword("LIKE"):
		c.next()
		if schema, table, ok := c.qualifiedName(); ok {
			t.Like = &TableRef{Schema: schema, Name: table}
		}
	case c.acceptKeywords("PRIMARY", "KEY"):
		grp, _ := c.balancedGroup()
		t.PrimaryKey = append(t.PrimaryKey, namesInGroup(grp)...)
	default:
		p.skipUnknown(c, "table clause")
	}
}

// nextRaw consumes the next token and returns its raw text, for single-value
// clauses like LOCATION '/warehouse/logs' or STORED AS PARQUET.
func nextRaw(c *cursor) *string {
	if c.eof() {
		return nil
	}
	v := c.next().Raw
	return &v
}

// finishTable applies the builder's defaulting rules: the primary key list
// merges column-level markers (in declaration order) with table-level
// constraints, primary key columns become non-nullable, unique constraints
// flag their columns, and invariant violations surface as warnings.
func (p *parseContext) finishTable(t *CreateTable) {
	var pk []string
	for i := range t.Columns {
		if t.Columns[i].primaryKey {
			pk = append(pk, t.Columns[i].Name)
		}
	}
	for _, name := range t.PrimaryKey {
		if !containsFold(pk, name) {
			pk = append(pk, name)
		}
	}
	if pk == nil {
		pk = []string{}
	}
	t.PrimaryKey = pk

	for _, name := range t.PrimaryKey {
		col := t.Column(name)
		if col == nil {
			p.warnf(WarningInvariant, "PRIMARY KEY references undeclared column %q on table %s", name, t.Name)
			continue
		}
		col.Nullable = false
	}

	for _, uq := range t.Uniques {
		for _, name := range uq.Columns {
			if col := t.Column(name); col != nil {
				col.Unique = true
			}
		}
	}

	seen := make(map[string]bool, len(t.Columns))
	for i := range t.Columns {
		key := lowerName(t.Columns[i].Name)
		if seen[key] {
			p.warnf(WarningInvariant, "duplicate column name %q on table %s", t.Columns[i].Name, t.Name)
		}
		seen[key] = true
	}
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if equalFold(n, name) {
			return true
		}
	}
	return false
}
