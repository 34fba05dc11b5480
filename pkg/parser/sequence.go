package parser

import (
	"strconv"

	"github.com/pseudomuto/sqlddl/pkg/lexer"
)

// parseCreateSequence builds a CreateSequence record. Every property keyword
// is independently optional and no defaults are synthesized for missing
// ones: a nil field means the clause was not present in the source.
func (p *parseContext) parseCreateSequence(c *cursor) (*CreateSequence, *StructuralError) {
	c.acceptKeywords("IF", "NOT", "EXISTS")

	schema, name, ok := c.qualifiedName()
	if !ok {
		return nil, p.structuralf(c, "CREATE SEQUENCE is missing a sequence name")
	}

	s := &CreateSequence{Schema: schema, Name: name}
	for !c.eof() {
		switch {
		case c.acceptKeyword("INCREMENT"):
			c.acceptKeyword("BY")
			s.Increment = p.intValue(c, "INCREMENT")
		case c.acceptKeyword("START"):
			c.acceptKeyword("WITH")
			s.Start = p.intValue(c, "START")
		case c.acceptKeyword("MINVALUE"):
			s.MinValue = p.intValue(c, "MINVALUE")
		case c.acceptKeyword("MAXVALUE"):
			s.MaxValue = p.intValue(c, "MAXVALUE")
		case c.acceptKeyword("CACHE"):
			s.Cache = p.intValue(c, "CACHE")
		case c.acceptKeyword("NO"):
			// NO MINVALUE / NO MAXVALUE / NO CYCLE: explicit absence,
			// nothing to record
			c.next()
		case c.acceptKeyword("CYCLE"):
			// cycling does not affect the record shape
		default:
			p.skipUnknown(c, "sequence property")
		}
	}

	return s, nil
}

// intValue consumes a number token as an int64 property value, warning when
// the source carries something unexpected instead.
func (p *parseContext) intValue(c *cursor, prop string) *int64 {
	t := c.peek()
	if t.Kind != lexer.KindNumber {
		p.warnf(WarningUnknownClause, "expected a numeric value for %s, got %q", prop, t.Raw)
		return nil
	}
	c.next()

	n, err := strconv.ParseInt(t.Raw, 10, 64)
	if err != nil {
		p.warnf(WarningUnknownClause, "non-integer value for %s: %q", prop, t.Raw)
		return nil
	}
	return &n
}
