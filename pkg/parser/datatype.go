package parser

import (
	"strconv"
	"strings"

	"github.com/pseudomuto/sqlddl/pkg/lexer"
)

type (
	// DataType is a recursive type tree. Simple types carry only Name (plus
	// Precision/Scale); ARRAY<T> populates Elem, MAP<K,V> populates
	// Key/Value, STRUCT<...> populates Fields. Postfix array syntax
	// (TYPE ARRAY, TYPE[n]) sets ArrayBound on the base type instead of
	// nesting, since it contributes only to the rendered type text.
	DataType struct {
		Name      string // base type name, original casing preserved
		Precision *int
		Scale     *int

		Elem   *DataType
		Key    *DataType
		Value  *DataType
		Fields []StructField

		// ArrayBound is nil for non-array types, "" for an unbounded
		// postfix array (TYPE ARRAY -> type[]), or the bound digits
		// (TYPE ARRAY[3] -> type[3]).
		ArrayBound *string
	}

	// StructField is one named field of a STRUCT type.
	StructField struct {
		Name string
		Type *DataType
	}
)

// String renders the canonical bracketed type text, preserving field order
// and casing as given: struct<street:string,city:string>, map<string,int>,
// int[]. Precision and scale are deliberately not rendered: they surface
// through the column's size field (VARCHAR(50) is type VARCHAR, size 50).
func (d *DataType) String() string {
	var b strings.Builder
	b.WriteString(d.Name)

	switch {
	case d.Elem != nil:
		b.WriteString("<")
		b.WriteString(d.Elem.String())
		b.WriteString(">")
	case d.Key != nil:
		b.WriteString("<")
		b.WriteString(d.Key.String())
		b.WriteString(",")
		b.WriteString(d.Value.String())
		b.WriteString(">")
	case len(d.Fields) > 0:
		b.WriteString("<")
		for i, f := range d.Fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(f.Name)
			b.WriteString(":")
			b.WriteString(f.Type.String())
		}
		b.WriteString(">")
	}

	if d.ArrayBound != nil {
		b.WriteString("[")
		b.WriteString(*d.ArrayBound)
		b.WriteString("]")
	}

	return b.String()
}

// size returns the column Size derived from the type's precision/scale, or
// nil. Array bounds never contribute here.
func (d *DataType) size() *Size {
	if d.Precision == nil {
		return nil
	}
	return &Size{Precision: *d.Precision, Scale: d.Scale}
}

// parseDataType is the recursive descent over the type-token span. It is
// deliberately isolated from the flat clause dispatch: encountering ARRAY,
// STRUCT, or MAP followed by '<' pushes a nested frame, the matching '>'
// pops it.
func parseDataType(c *cursor) (*DataType, bool) {
	if !c.peek().IsName() {
		return nil, false
	}

	dt := &DataType{Name: c.next().Raw}
	switch norm := strings.ToUpper(dt.Name); norm {
	case "DOUBLE":
		if c.peek().IsKeyword("PRECISION") {
			dt.Name += " " + c.next().Raw
		}
	case "CHARACTER":
		if c.peek().IsKeyword("VARYING") {
			dt.Name += " " + c.next().Raw
		}
	case "ARRAY", "STRUCT", "MAP":
		if c.peek().IsOperator("<") {
			if !parseNested(c, norm, dt) {
				return nil, false
			}
			return dt, true
		}
	}

	if c.peek().IsPunct("(") {
		parseTypeArgs(c, dt)
	}
	parseArraySuffix(c, dt)

	return dt, true
}

func parseNested(c *cursor, norm string, dt *DataType) bool {
	c.next() // consume '<'

	switch norm {
	case "ARRAY":
		elem, ok := parseDataType(c)
		if !ok {
			return false
		}
		dt.Elem = elem
	case "MAP":
		key, ok := parseDataType(c)
		if !ok || !c.acceptPunct(",") {
			return false
		}
		value, ok := parseDataType(c)
		if !ok {
			return false
		}
		dt.Key, dt.Value = key, value
	case "STRUCT":
		for {
			name, ok := c.name()
			if !ok || !c.acceptPunct(":") {
				return false
			}
			ft, ok := parseDataType(c)
			if !ok {
				return false
			}
			dt.Fields = append(dt.Fields, StructField{Name: name, Type: ft})
			if !c.acceptPunct(",") {
				break
			}
		}
	}

	return c.acceptOperator(">")
}

// parseTypeArgs handles VARCHAR(50) and DECIMAL(10, 2). Non-numeric
// arguments (VARCHAR(MAX)) are folded back into the type name text.
func parseTypeArgs(c *cursor, dt *DataType) {
	grp, ok := c.balancedGroup()
	if !ok || len(grp) == 0 {
		return
	}

	if p, ok := intArg(grp, 0); ok && len(grp) == 1 {
		dt.Precision = &p
		return
	}
	if p, ok := intArg(grp, 0); ok && len(grp) == 3 && grp[1].IsPunct(",") {
		if s, ok := intArg(grp, 2); ok {
			dt.Precision, dt.Scale = &p, &s
			return
		}
	}

	dt.Name += "(" + renderTokens(grp) + ")"
}

func intArg(toks []lexer.Token, i int) (int, bool) {
	if i >= len(toks) || toks[i].Kind != lexer.KindNumber {
		return 0, false
	}
	n, err := strconv.Atoi(toks[i].Raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseArraySuffix consumes TYPE ARRAY, TYPE ARRAY[n], TYPE[], and TYPE[n].
func parseArraySuffix(c *cursor, dt *DataType) {
	if c.acceptKeyword("ARRAY") {
		bound := ""
		dt.ArrayBound = &bound
	} else if !c.peek().IsPunct("[") {
		return
	}

	if c.acceptPunct("[") {
		bound := ""
		if c.peek().Kind == lexer.KindNumber {
			bound = c.next().Raw
		}
		c.acceptPunct("]")
		dt.ArrayBound = &bound
	}
}
