package parser

const (
	// StatementCreateTable identifies a CREATE TABLE record
	StatementCreateTable StatementKind = "create_table"
	// StatementAlterTable identifies an ALTER TABLE record
	StatementAlterTable StatementKind = "alter_table"
	// StatementCreateIndex identifies a CREATE INDEX record
	StatementCreateIndex StatementKind = "create_index"
	// StatementCreateSequence identifies a CREATE SEQUENCE record
	StatementCreateSequence StatementKind = "create_sequence"
)

type (
	// StatementKind tags the concrete variant of a Statement.
	StatementKind string

	// Statement is the tagged variant produced for each DDL statement span.
	// Concrete types are CreateTable, AlterTable, CreateIndex, and
	// CreateSequence. Statements never reference each other directly,
	// only by (schema, table) name.
	Statement interface {
		Kind() StatementKind
	}

	// TableRef names a table, optionally schema-qualified.
	TableRef struct {
		Schema string // empty when unqualified
		Name   string
	}

	// CreateTable is the parsed form of a CREATE TABLE statement, covering
	// ANSI/PostgreSQL/MySQL column syntax and the Hive table clauses.
	CreateTable struct {
		Schema      string
		Name        string
		IfNotExists bool
		Columns     []Column
		PrimaryKey  []string // ordered column names
		Checks      []CheckConstraint
		Uniques     []UniqueConstraint
		ForeignKeys []ForeignKey
		Indexes     []Index

		// PartitionedBy holds Hive partition pseudo-columns in order.
		PartitionedBy []Column

		// Like is set for CREATE TABLE ... LIKE <table>.
		Like *TableRef

		// HQL holds Hive-only table clauses; nil unless one was present.
		HQL *HQLClauses
	}

	// HQLClauses captures Hive/HQL-specific table clauses. Nil pointer
	// fields mean the clause was not present in the source.
	HQLClauses struct {
		External                    bool
		StoredAs                    *string
		Location                    *string
		RowFormat                   *string
		FieldsTerminatedBy          *string
		CollectionItemsTerminatedBy *string
		MapKeysTerminatedBy         *string
		LinesTerminatedBy           *string
	}

	// Column is a single column definition. Nullable defaults to true
	// unless NOT NULL (or a primary key marker) was seen.
	Column struct {
		Name          string
		Type          *DataType
		Size          *Size
		Nullable      bool
		Default       *string // raw expression text
		Check         *string // raw expression text
		Unique        bool
		AutoIncrement bool
		References    *ForeignKeyRef

		// primaryKey marks a column-level PRIMARY KEY; it is folded into
		// the table's PrimaryKey list by the table builder.
		primaryKey bool
	}

	// Size is a column's declared length or precision/scale. It is reserved
	// for VARCHAR(50)-style sizing; array cardinality never populates it.
	Size struct {
		Precision int
		Scale     *int
	}

	// ForeignKeyRef is a column-level REFERENCES target. Column is empty
	// when the referenced column list was omitted (never inferred).
	ForeignKeyRef struct {
		Schema   string
		Table    string
		Column   string
		OnDelete *string
		OnUpdate *string

		// DeferrableInitially records [NOT] DEFERRABLE [INITIALLY ...]
		// as raw clause text when present.
		DeferrableInitially *string
	}

	// CheckConstraint is a table-level CHECK. Name is nil when no
	// CONSTRAINT <name> preceded it.
	CheckConstraint struct {
		Name       *string
		Expression string
	}

	// UniqueConstraint is a table-level UNIQUE (...) constraint.
	UniqueConstraint struct {
		Name    *string
		Columns []string
	}

	// ForeignKey is a table-level FOREIGN KEY (...) REFERENCES constraint.
	// Name is nil when no CONSTRAINT <name> preceded it.
	ForeignKey struct {
		Name       *string
		Columns    []string
		RefSchema  string
		RefTable   string
		RefColumns []string
		OnDelete   *string
		OnUpdate   *string
	}

	// Index describes an index attached to a table.
	Index struct {
		Name    string
		Columns []string
		Unique  bool
	}

	// CreateIndex is the parsed form of CREATE [UNIQUE] INDEX. Unresolved
	// is set when the target table was not declared earlier in the same
	// parse call.
	CreateIndex struct {
		Schema     string
		Table      string
		Index      Index
		Unresolved bool
	}

	// CreateSequence is the parsed form of CREATE SEQUENCE. Every property
	// is independently optional; a nil field means the clause was absent
	// from the source, not zero.
	CreateSequence struct {
		Schema    string
		Name      string
		Increment *int64
		Start     *int64
		MinValue  *int64
		MaxValue  *int64
		Cache     *int64
	}

	// AlterTable accumulates the operations of one ALTER TABLE statement.
	// Unresolved is set when no previously parsed CREATE TABLE matches the
	// (schema, table) pair; the record is still returned.
	AlterTable struct {
		Schema     string
		Table      string
		Unresolved bool

		AddedColumns    []Column
		ModifiedColumns []Column
		DroppedColumns  []string
		RenamedColumns  []RenameColumn
		Checks          []CheckConstraint
		Uniques         []UniqueConstraint
		ForeignKeys     []ForeignKey
		PrimaryKeys     []UniqueConstraint // PRIMARY KEY additions reuse the name+columns shape
	}

	// RenameColumn is a single RENAME COLUMN <from> TO <to> operation.
	RenameColumn struct {
		From string
		To   string
	}
)

// Kind implements Statement.
func (*CreateTable) Kind() StatementKind { return StatementCreateTable }

// Kind implements Statement.
func (*AlterTable) Kind() StatementKind { return StatementAlterTable }

// Kind implements Statement.
func (*CreateIndex) Kind() StatementKind { return StatementCreateIndex }

// Kind implements Statement.
func (*CreateSequence) Kind() StatementKind { return StatementCreateSequence }

// Ref returns the table's (schema, name) reference.
func (t *CreateTable) Ref() TableRef { return TableRef{Schema: t.Schema, Name: t.Name} }

// Column returns the column with the given name (case-insensitive) or nil.
func (t *CreateTable) Column(name string) *Column {
	for i := range t.Columns {
		if equalFold(t.Columns[i].Name, name) {
			return &t.Columns[i]
		}
	}
	return nil
}
