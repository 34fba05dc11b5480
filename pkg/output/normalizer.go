// Package output applies the output-mode policy to parsed statements,
// producing JSON-ready records with a stable key set per statement kind.
// It holds no parsing logic: it folds ALTER TABLE and CREATE INDEX
// statements into their owning table records, decides which dialect
// specific fields are exposed, and fills absent fields with stable
// defaults.
package output

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlddl/pkg/parser"
)

const (
	// ModeSQL omits fields that only carry meaning in Hive
	ModeSQL Mode = "sql"

	// ModeHQL exposes the Hive fields, defaulting absent ones to null
	ModeHQL Mode = "hql"
)

type (
	// Mode selects which dialect-specific fields the records expose.
	Mode string

	// Record is one normalized statement record. Downstream consumers must
	// treat absent optional keys as "clause not present in source".
	Record map[string]any
)

// ParseMode validates an output mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSQL, ModeHQL:
		return Mode(s), nil
	case "":
		return ModeSQL, nil
	default:
		return "", errors.Errorf("unknown output mode: %q (want sql or hql)", s)
	}
}

// Normalize converts a parse result into output records in source order.
// Index and alter statements targeting tables declared in the same result
// fold into those table records; unresolved ones are kept standalone and
// tagged.
func Normalize(res *parser.Result, mode Mode) []Record {
	n := &normalizer{mode: mode, tables: make(map[string]Record)}

	for _, stmt := range res.Statements {
		switch s := stmt.(type) {
		case *parser.CreateTable:
			rec := n.tableRecord(s)
			n.tables[tableKey(s.Schema, s.Name)] = rec
			n.records = append(n.records, rec)
		case *parser.CreateIndex:
			n.applyIndex(s)
		case *parser.AlterTable:
			n.applyAlter(s)
		case *parser.CreateSequence:
			n.records = append(n.records, sequenceRecord(s))
		}
	}

	return n.records
}

type normalizer struct {
	mode    Mode
	tables  map[string]Record
	records []Record
}

// tableRecord builds a table record with the stable key set: table_name,
// schema, columns, primary_key, index, checks, alter, partitioned_by. Keys
// that only ever carry meaning in Hive appear in hql mode only.
func (n *normalizer) tableRecord(t *parser.CreateTable) Record {
	columns := make([]Record, 0, len(t.Columns))
	for i := range t.Columns {
		columns = append(columns, n.columnRecord(&t.Columns[i]))
	}
	foldForeignKeys(columns, t.ForeignKeys)

	indexes := make([]Record, 0, len(t.Indexes))
	for _, idx := range t.Indexes {
		indexes = append(indexes, indexRecord(idx))
	}

	checks := make([]Record, 0, len(t.Checks))
	for _, ch := range t.Checks {
		checks = append(checks, Record{
			"constraint_name": orNil(ch.Name),
			"statement":       ch.Expression,
		})
	}

	partitioned := make([]Record, 0, len(t.PartitionedBy))
	for _, col := range t.PartitionedBy {
		pr := Record{"name": col.Name, "type": nil}
		if col.Type != nil {
			pr["type"] = col.Type.String()
		}
		partitioned = append(partitioned, pr)
	}

	rec := Record{
		"table_name":     t.Name,
		"schema":         t.Schema,
		"columns":        columns,
		"primary_key":    t.PrimaryKey,
		"index":          indexes,
		"checks":         checks,
		"alter":          Record{},
		"partitioned_by": partitioned,
	}
	if t.IfNotExists {
		rec["if_not_exists"] = true
	}
	if t.Like != nil {
		rec["like"] = Record{"schema": t.Like.Schema, "table_name": t.Like.Name}
	}

	if n.mode == ModeHQL {
		hql := t.HQL
		if hql == nil {
			hql = &parser.HQLClauses{}
		}
		rec["external"] = hql.External
		rec["stored_as"] = orNil(hql.StoredAs)
		rec["location"] = orNil(hql.Location)
		rec["row_format"] = orNil(hql.RowFormat)
		rec["fields_terminated_by"] = orNil(hql.FieldsTerminatedBy)
		rec["collection_items_terminated_by"] = orNil(hql.CollectionItemsTerminatedBy)
		rec["map_keys_terminated_by"] = orNil(hql.MapKeysTerminatedBy)
		rec["lines_terminated_by"] = orNil(hql.LinesTerminatedBy)
	}

	return rec
}

// columnRecord builds a column record with one fixed key set: name, type,
// size, nullable, default, check, unique, references.
func (n *normalizer) columnRecord(col *parser.Column) Record {
	rec := Record{
		"name":       col.Name,
		"type":       nil,
		"size":       sizeValue(col.Size),
		"nullable":   col.Nullable,
		"default":    orNil(col.Default),
		"check":      orNil(col.Check),
		"unique":     col.Unique,
		"references": n.refRecord(col.References),
	}
	if col.Type != nil {
		rec["type"] = col.Type.String()
	}
	if col.AutoIncrement {
		rec["autoincrement"] = true
	}
	return rec
}

// refRecord exposes a REFERENCES target. on_delete/on_update appear only
// when present in the source; deferrable_initially additionally appears
// (as null) in hql mode per the output-mode policy.
func (n *normalizer) refRecord(ref *parser.ForeignKeyRef) any {
	if ref == nil {
		return nil
	}

	rec := Record{
		"schema": nilWhenEmpty(ref.Schema),
		"table":  ref.Table,
		"column": nilWhenEmpty(ref.Column),
	}
	if ref.OnDelete != nil {
		rec["on_delete"] = *ref.OnDelete
	}
	if ref.OnUpdate != nil {
		rec["on_update"] = *ref.OnUpdate
	}
	if ref.DeferrableInitially != nil || n.mode == ModeHQL {
		rec["deferrable_initially"] = orNil(ref.DeferrableInitially)
	}
	return rec
}

// foldForeignKeys attaches table-level FOREIGN KEY constraints to their
// local columns as references, pairing local and referenced columns by
// position.
func foldForeignKeys(columns []Record, fks []parser.ForeignKey) {
	for _, fk := range fks {
		for i, local := range fk.Columns {
			col, ok := findColumn(columns, local)
			if !ok {
				continue
			}
			ref := Record{
				"schema": nilWhenEmpty(fk.RefSchema),
				"table":  fk.RefTable,
				"column": nil,
			}
			if i < len(fk.RefColumns) {
				ref["column"] = fk.RefColumns[i]
			}
			if fk.OnDelete != nil {
				ref["on_delete"] = *fk.OnDelete
			}
			if fk.OnUpdate != nil {
				ref["on_update"] = *fk.OnUpdate
			}
			col["references"] = ref
		}
	}
}

func (n *normalizer) applyIndex(s *parser.CreateIndex) {
	rec, ok := n.tables[tableKey(s.Schema, s.Table)]
	if s.Unresolved || !ok {
		n.records = append(n.records, Record{
			"schema":     s.Schema,
			"table_name": s.Table,
			"index_name": s.Index.Name,
			"columns":    s.Index.Columns,
			"unique":     s.Index.Unique,
			"unresolved": true,
		})
		return
	}

	rec["index"] = append(rec["index"].([]Record), indexRecord(s.Index))
}

func indexRecord(idx parser.Index) Record {
	return Record{
		"index_name": idx.Name,
		"columns":    idx.Columns,
		"unique":     idx.Unique,
	}
}

// applyAlter folds an ALTER TABLE into its target table record: the alter
// map gains one list per operation kind, and column-level effects (added,
// modified, dropped, renamed, unique-flagged columns) apply to the table's column
// list. Unresolved alters stay standalone, tagged unresolved.
func (n *normalizer) applyAlter(s *parser.AlterTable) {
	rec, ok := n.tables[tableKey(s.Schema, s.Table)]
	if s.Unresolved || !ok {
		n.records = append(n.records, Record{
			"schema":           s.Schema,
			"alter_table_name": s.Table,
			"alter":            n.alterOps(s),
			"unresolved":       true,
		})
		return
	}

	alter := rec["alter"].(Record)
	columns := rec["columns"].([]Record)

	for i := range s.AddedColumns {
		cr := n.columnRecord(&s.AddedColumns[i])
		appendRec(alter, "columns", cr)
		if _, exists := findColumn(columns, s.AddedColumns[i].Name); !exists {
			columns = append(columns, cr)
		}
	}

	for i := range s.ModifiedColumns {
		cr := n.columnRecord(&s.ModifiedColumns[i])
		appendRec(alter, "modified_columns", cr)
		replaceColumn(columns, s.ModifiedColumns[i].Name, cr)
	}

	for _, fk := range s.ForeignKeys {
		for _, entry := range n.alterFKEntries(fk) {
			appendRec(alter, "columns", entry)
			if col, ok := findColumn(columns, entry["name"].(string)); ok {
				col["references"] = entry["references"]
			}
		}
	}

	for _, name := range s.DroppedColumns {
		if col, ok := findColumn(columns, name); ok {
			appendRec(alter, "dropped_columns", col)
			columns = removeColumn(columns, name)
		}
	}

	for _, rn := range s.RenamedColumns {
		appendRec(alter, "renamed_columns", Record{"from": rn.From, "to": rn.To})
		if col, ok := findColumn(columns, rn.From); ok {
			col["name"] = rn.To
		}
	}

	for _, ch := range s.Checks {
		appendRec(alter, "checks", Record{
			"constraint_name": orNil(ch.Name),
			"statement":       ch.Expression,
		})
	}

	for _, uq := range s.Uniques {
		appendRec(alter, "uniques", Record{
			"constraint_name": orNil(uq.Name),
			"columns":         uq.Columns,
		})
		for _, name := range uq.Columns {
			if col, ok := findColumn(columns, name); ok {
				col["unique"] = true
			}
		}
	}

	for _, pk := range s.PrimaryKeys {
		appendRec(alter, "primary_keys", Record{
			"constraint_name": orNil(pk.Name),
			"columns":         pk.Columns,
		})
	}

	rec["columns"] = columns
}

// alterOps renders the operations of an unresolved alter without applying
// column effects (there is no table to apply them to).
func (n *normalizer) alterOps(s *parser.AlterTable) Record {
	ops := Record{}
	for i := range s.AddedColumns {
		appendRec(ops, "columns", n.columnRecord(&s.AddedColumns[i]))
	}
	for i := range s.ModifiedColumns {
		appendRec(ops, "modified_columns", n.columnRecord(&s.ModifiedColumns[i]))
	}
	for _, fk := range s.ForeignKeys {
		for _, entry := range n.alterFKEntries(fk) {
			appendRec(ops, "columns", entry)
		}
	}
	for _, name := range s.DroppedColumns {
		appendRec(ops, "dropped_columns", Record{"name": name})
	}
	for _, rn := range s.RenamedColumns {
		appendRec(ops, "renamed_columns", Record{"from": rn.From, "to": rn.To})
	}
	for _, ch := range s.Checks {
		appendRec(ops, "checks", Record{"constraint_name": orNil(ch.Name), "statement": ch.Expression})
	}
	for _, uq := range s.Uniques {
		appendRec(ops, "uniques", Record{"constraint_name": orNil(uq.Name), "columns": uq.Columns})
	}
	for _, pk := range s.PrimaryKeys {
		appendRec(ops, "primary_keys", Record{"constraint_name": orNil(pk.Name), "columns": pk.Columns})
	}
	return ops
}

// alterFKEntries expands an ADD FOREIGN KEY into per-column alter entries,
// one per local column, pairing referenced columns by position.
func (n *normalizer) alterFKEntries(fk parser.ForeignKey) []Record {
	entries := make([]Record, 0, len(fk.Columns))
	for i, local := range fk.Columns {
		ref := Record{
			"schema": nilWhenEmpty(fk.RefSchema),
			"table":  fk.RefTable,
			"column": nil,
		}
		if i < len(fk.RefColumns) {
			ref["column"] = fk.RefColumns[i]
		}
		entries = append(entries, Record{
			"name":            local,
			"constraint_name": orNil(fk.Name),
			"references":      ref,
		})
	}
	return entries
}

// sequenceRecord exposes only the properties present in the source; a
// missing clause means a missing key, never a null or zero.
func sequenceRecord(s *parser.CreateSequence) Record {
	rec := Record{
		"schema":        s.Schema,
		"sequence_name": s.Name,
	}
	if s.Increment != nil {
		rec["increment"] = *s.Increment
	}
	if s.Start != nil {
		rec["start"] = *s.Start
	}
	if s.MinValue != nil {
		rec["minvalue"] = *s.MinValue
	}
	if s.MaxValue != nil {
		rec["maxvalue"] = *s.MaxValue
	}
	if s.Cache != nil {
		rec["cache"] = *s.Cache
	}
	return rec
}

func tableKey(schema, name string) string {
	return strings.ToLower(schema) + "." + strings.ToLower(name)
}

func appendRec(m Record, key string, v Record) {
	list, _ := m[key].([]Record)
	m[key] = append(list, v)
}

func findColumn(columns []Record, name string) (Record, bool) {
	for _, col := range columns {
		if n, ok := col["name"].(string); ok && strings.EqualFold(n, name) {
			return col, true
		}
	}
	return nil, false
}

func replaceColumn(columns []Record, name string, rec Record) {
	for i, col := range columns {
		if n, ok := col["name"].(string); ok && strings.EqualFold(n, name) {
			columns[i] = rec
			return
		}
	}
}

func removeColumn(columns []Record, name string) []Record {
	out := columns[:0]
	for _, col := range columns {
		if n, ok := col["name"].(string); ok && strings.EqualFold(n, name) {
			continue
		}
		out = append(out, col)
	}
	return out
}

func sizeValue(s *parser.Size) any {
	switch {
	case s == nil:
		return nil
	case s.Scale != nil:
		return []int{s.Precision, *s.Scale}
	default:
		return s.Precision
	}
}

func orNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nilWhenEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
