package parser

// parseAlterTable builds an AlterTable record. The cursor sits just past
// ALTER TABLE. A target table not declared earlier in the same parse call
// does not abort the statement: the record is kept and tagged unresolved,
// with a warning (dangling alters are an input reality, not a parse bug).
func (p *parseContext) parseAlterTable(c *cursor) (*AlterTable, *StructuralError) {
	c.acceptKeywords("IF", "EXISTS")
	// ONLY is matched as a keyword so a quoted "ONLY" stays a table name.
	c.acceptKeyword("ONLY")

	schema, table, ok := c.qualifiedName()
	if !ok {
		return nil, p.structuralf(c, "ALTER TABLE is missing a table name")
	}

	a := &AlterTable{Schema: schema, Table: table}
	if _, ok := p.lookupTable(schema, table); !ok {
		a.Unresolved = true
		p.warnf(WarningUnresolvedAlter, "ALTER TABLE references undeclared table %s", table)
	}

	for !c.eof() {
		switch {
		case c.acceptKeyword("ADD"):
			p.parseAlterAdd(c, a)
		case c.acceptKeyword("MODIFY"):
			c.acceptKeyword("COLUMN")
			if col, ok := p.parseColumn(newCursor(c.takeUntilComma())); ok {
				a.ModifiedColumns = append(a.ModifiedColumns, col)
			} else {
				p.warnf(WarningUnknownClause, "unparseable MODIFY COLUMN on table %s", table)
			}
		case c.acceptKeyword("DROP"):
			c.acceptKeyword("COLUMN")
			if name, ok := c.name(); ok {
				a.DroppedColumns = append(a.DroppedColumns, name)
			} else {
				p.warnf(WarningUnknownClause, "DROP COLUMN without a column name on table %s", table)
			}
		case c.peek().IsKeyword("RENAME") && c.peekAt(1).IsKeyword("COLUMN"):
			c.next()
			c.next()
			from, _ := c.name()
			if c.acceptKeyword("TO") {
				to, _ := c.name()
				a.RenamedColumns = append(a.RenamedColumns, RenameColumn{From: from, To: to})
			} else {
				p.warnf(WarningUnknownClause, "RENAME COLUMN %s without TO clause on table %s", from, table)
			}
		default:
			p.skipUnknown(c, "alter operation")
		}
		c.acceptPunct(",")
	}

	return a, nil
}

// parseAlterAdd dispatches the body of one ADD operation: a constraint
// (optionally named) or one or more column definitions.
func (p *parseContext) parseAlterAdd(c *cursor, a *AlterTable) {
	var name *string
	if c.peek().IsKeyword("CONSTRAINT") && c.peekAt(1).IsName() {
		c.next()
		n, _ := c.name()
		name = &n
	}

	switch {
	case c.peek().IsKeyword("CHECK") && c.peekAt(1).IsPunct("("):
		c.next()
		grp, _ := c.balancedGroup()
		a.Checks = append(a.Checks, CheckConstraint{Name: name, Expression: renderTokens(grp)})
	case c.peek().IsKeyword("UNIQUE") && c.peekAt(1).IsPunct("("):
		c.next()
		grp, _ := c.balancedGroup()
		a.Uniques = append(a.Uniques, UniqueConstraint{Name: name, Columns: namesInGroup(grp)})
	case c.acceptKeywords("PRIMARY", "KEY"):
		grp, _ := c.balancedGroup()
		a.PrimaryKeys = append(a.PrimaryKeys, UniqueConstraint{Name: name, Columns: namesInGroup(grp)})
	case c.acceptKeywords("FOREIGN", "KEY"):
		grp, _ := c.balancedGroup()
		cols := namesInGroup(grp)
		if !c.acceptKeyword("REFERENCES") {
			p.warnf(WarningUnknownClause, "ADD FOREIGN KEY without REFERENCES clause on table %s", a.Table)
			return
		}
		if ref, ok := p.parseReference(c); ok {
			a.ForeignKeys = append(a.ForeignKeys, ForeignKey{
				Name:       name,
				Columns:    cols,
				RefSchema:  ref.schema,
				RefTable:   ref.table,
				RefColumns: ref.columns,
				OnDelete:   ref.onDelete,
				OnUpdate:   ref.onUpdate,
			})
		}
	case c.peek().IsPunct("("):
		// MySQL grouped form: ADD (a INT, b INT)
		grp, _ := c.balancedGroup()
		for _, item := range splitOnCommas(grp) {
			if col, ok := p.parseColumn(newCursor(item)); ok {
				a.AddedColumns = append(a.AddedColumns, col)
			}
		}
	default:
		c.acceptKeyword("COLUMN")
		if col, ok := p.parseColumn(newCursor(c.takeUntilComma())); ok {
			a.AddedColumns = append(a.AddedColumns, col)
		} else {
			p.warnf(WarningUnknownClause, "unparseable ADD COLUMN on table %s", a.Table)
		}
	}
}
