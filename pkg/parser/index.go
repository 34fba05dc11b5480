package parser

// parseCreateIndex builds a CreateIndex record. The cursor sits just past
// CREATE [UNIQUE] INDEX. An index on a table not declared earlier in the
// same call is retained but tagged unresolved, mirroring the ALTER TABLE
// policy.
func (p *parseContext) parseCreateIndex(c *cursor, unique bool) (*CreateIndex, *StructuralError) {
	c.acceptKeywords("IF", "NOT", "EXISTS")

	name, ok := c.name()
	if !ok {
		return nil, p.structuralf(c, "CREATE INDEX is missing an index name")
	}
	if !c.acceptKeyword("ON") {
		return nil, p.structuralf(c, "CREATE INDEX %s is missing the ON clause", name)
	}

	schema, table, ok := c.qualifiedName()
	if !ok {
		return nil, p.structuralf(c, "CREATE INDEX %s is missing a table name", name)
	}

	// USING <method> sits between the table name and the column list in
	// PostgreSQL; it carries no schema information.
	if c.acceptKeyword("USING") {
		c.next()
	}

	grp, ok := c.balancedGroup()
	if !ok {
		return nil, p.structuralf(c, "CREATE INDEX %s is missing a column list", name)
	}

	idx := &CreateIndex{
		Schema: schema,
		Table:  table,
		Index:  Index{Name: name, Columns: namesInGroup(grp), Unique: unique},
	}
	if _, ok := p.lookupTable(schema, table); !ok {
		idx.Unresolved = true
		p.warnf(WarningUnresolvedIndex, "CREATE INDEX %s references undeclared table %s", name, table)
	}

	for !c.eof() {
		p.skipUnknown(c, "index clause")
	}

	return idx, nil
}
