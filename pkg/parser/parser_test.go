package parser_test

import (
	"testing"

	. "github.com/pseudomuto/sqlddl/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParseCreateTable(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE employees (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		salary DECIMAL(10,2) DEFAULT 0,
		dept_id INT REFERENCES departments(id)
	);`)
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Statements, 1)

	tbl, ok := res.Statements[0].(*CreateTable)
	require.True(t, ok)
	require.Equal(t, StatementCreateTable, tbl.Kind())
	require.Equal(t, "employees", tbl.Name)
	require.Empty(t, tbl.Schema)
	require.Equal(t, []string{"id"}, tbl.PrimaryKey)
	require.Len(t, tbl.Columns, 4)

	id := tbl.Column("id")
	require.NotNil(t, id)
	require.Equal(t, "SERIAL", id.Type.String())
	require.False(t, id.Nullable)

	first := tbl.Column("first_name")
	require.Equal(t, "VARCHAR", first.Type.String())
	require.Equal(t, &Size{Precision: 50}, first.Size)
	require.False(t, first.Nullable)

	salary := tbl.Column("salary")
	require.NotNil(t, salary.Size)
	require.Equal(t, 10, salary.Size.Precision)
	require.NotNil(t, salary.Size.Scale)
	require.Equal(t, 2, *salary.Size.Scale)
	require.NotNil(t, salary.Default)
	require.Equal(t, "0", *salary.Default)
	require.True(t, salary.Nullable)

	dept := tbl.Column("dept_id")
	require.NotNil(t, dept.References)
	require.Equal(t, "departments", dept.References.Table)
	require.Equal(t, "id", dept.References.Column)
}

func TestParsePrimaryKeyPlacement(t *testing.T) {
	t.Parallel()

	inline, err := Parse("CREATE TABLE t (id INT PRIMARY KEY, v INT);")
	require.NoError(t, err)
	tableLevel, err := Parse("CREATE TABLE t (id INT, v INT, PRIMARY KEY (id));")
	require.NoError(t, err)

	for _, res := range []*Result{inline, tableLevel} {
		tbl := res.Statements[0].(*CreateTable)
		require.Equal(t, []string{"id"}, tbl.PrimaryKey)
		require.False(t, tbl.Column("id").Nullable)
		require.True(t, tbl.Column("v").Nullable)
		require.Len(t, tbl.Columns, 2)
	}
}

func TestParseCompositePrimaryKey(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE t (
		a INT PRIMARY KEY,
		b INT,
		c INT,
		PRIMARY KEY (b, a)
	);`)
	require.NoError(t, err)

	// column-level markers first in declaration order, table-level names
	// appended without duplicates
	tbl := res.Statements[0].(*CreateTable)
	require.Equal(t, []string{"a", "b"}, tbl.PrimaryKey)
	require.False(t, tbl.Column("a").Nullable)
	require.False(t, tbl.Column("b").Nullable)
	require.True(t, tbl.Column("c").Nullable)
}

func TestParseTableConstraints(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE orders (
		id INT,
		price DECIMAL(10,2),
		email VARCHAR(100),
		customer_id INT,
		CONSTRAINT chk_price CHECK (price > 0),
		CHECK (id > 0),
		CONSTRAINT uq_email UNIQUE (email),
		FOREIGN KEY (customer_id) REFERENCES customers
	);`)
	require.NoError(t, err)
	require.Empty(t, res.Errors)

	tbl := res.Statements[0].(*CreateTable)

	require.Len(t, tbl.Checks, 2)
	require.NotNil(t, tbl.Checks[0].Name)
	require.Equal(t, "chk_price", *tbl.Checks[0].Name)
	require.Equal(t, "price > 0", tbl.Checks[0].Expression)
	require.Nil(t, tbl.Checks[1].Name) // bare CHECK has no constraint name
	require.Equal(t, "id > 0", tbl.Checks[1].Expression)

	require.Len(t, tbl.Uniques, 1)
	require.Equal(t, "uq_email", *tbl.Uniques[0].Name)
	require.Equal(t, []string{"email"}, tbl.Uniques[0].Columns)
	require.True(t, tbl.Column("email").Unique)

	require.Len(t, tbl.ForeignKeys, 1)
	fk := tbl.ForeignKeys[0]
	require.Nil(t, fk.Name) // bare FOREIGN KEY has no constraint name
	require.Equal(t, []string{"customer_id"}, fk.Columns)
	require.Equal(t, "customers", fk.RefTable)
	require.Empty(t, fk.RefColumns) // no column list means unspecified
}

func TestParseInlineIndexes(t *testing.T) {
	t.Parallel()

	t.Run("KEY and INDEX entries become indexes", func(t *testing.T) {
		t.Parallel()

		res, err := Parse(`CREATE TABLE t (
			id INT,
			v INT,
			KEY idx_id (id),
			INDEX idx_v (v)
		);`)
		require.NoError(t, err)
		require.Empty(t, res.Errors)

		tbl := res.Statements[0].(*CreateTable)
		require.Len(t, tbl.Columns, 2)
		require.Len(t, tbl.Indexes, 2)
		require.Equal(t, Index{Name: "idx_id", Columns: []string{"id"}}, tbl.Indexes[0])
		require.Equal(t, Index{Name: "idx_v", Columns: []string{"v"}}, tbl.Indexes[1])
	})

	t.Run("quoted KEY is a column, not an index", func(t *testing.T) {
		t.Parallel()

		res, err := Parse(`CREATE TABLE t ("KEY" INT, v INT);`)
		require.NoError(t, err)
		require.Empty(t, res.Errors)
		require.Empty(t, res.Warnings)

		tbl := res.Statements[0].(*CreateTable)
		require.Len(t, tbl.Columns, 2)
		require.Empty(t, tbl.Indexes)
		require.Equal(t, "KEY", tbl.Columns[0].Name)
		require.Equal(t, "INT", tbl.Columns[0].Type.String())
	})

	t.Run("bare key without a column list falls through", func(t *testing.T) {
		t.Parallel()

		res, err := Parse("CREATE TABLE t (key INT, v INT);")
		require.NoError(t, err)

		tbl := res.Statements[0].(*CreateTable)
		require.Len(t, tbl.Columns, 2)
		require.Empty(t, tbl.Indexes)
		require.Equal(t, "key", tbl.Columns[0].Name)
	})
}

func TestParseColumnAttributeOrder(t *testing.T) {
	t.Parallel()

	a, err := Parse("CREATE TABLE t (v INT NOT NULL DEFAULT 5 UNIQUE);")
	require.NoError(t, err)
	b, err := Parse("CREATE TABLE t (v INT UNIQUE DEFAULT 5 NOT NULL);")
	require.NoError(t, err)

	for _, res := range []*Result{a, b} {
		col := res.Statements[0].(*CreateTable).Column("v")
		require.False(t, col.Nullable)
		require.True(t, col.Unique)
		require.Equal(t, "5", *col.Default)
	}
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	t.Parallel()

	res, err := Parse("create table Accounts (ID int primary key, Name varchar(20) not null);")
	require.NoError(t, err)

	tbl := res.Statements[0].(*CreateTable)
	require.Equal(t, "Accounts", tbl.Name) // identifier casing preserved
	require.Equal(t, []string{"ID"}, tbl.PrimaryKey)
	require.False(t, tbl.Column("id").Nullable) // lookups fold case
}

func TestParseQualifiedNames(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE warehouse.events (id INT REFERENCES ref.users(id));`)
	require.NoError(t, err)

	tbl := res.Statements[0].(*CreateTable)
	require.Equal(t, "warehouse", tbl.Schema)
	require.Equal(t, "events", tbl.Name)

	ref := tbl.Column("id").References
	require.Equal(t, "ref", ref.Schema)
	require.Equal(t, "users", ref.Table)
}

func TestParseReferenceActions(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE t (
		a INT REFERENCES p(id) ON DELETE CASCADE ON UPDATE SET NULL,
		b INT REFERENCES p(id) DEFERRABLE INITIALLY DEFERRED
	);`)
	require.NoError(t, err)

	tbl := res.Statements[0].(*CreateTable)

	a := tbl.Column("a").References
	require.Equal(t, "CASCADE", *a.OnDelete)
	require.Equal(t, "SET NULL", *a.OnUpdate)

	b := tbl.Column("b").References
	require.NotNil(t, b.DeferrableInitially)
	require.Equal(t, "DEFERRABLE INITIALLY DEFERRED", *b.DeferrableInitially)
}

func TestParseDeferrablePlacement(t *testing.T) {
	t.Parallel()

	t.Run("before the references clause", func(t *testing.T) {
		t.Parallel()

		res, err := Parse("CREATE TABLE t (a INT DEFERRABLE INITIALLY DEFERRED REFERENCES p(id));")
		require.NoError(t, err)
		require.Empty(t, res.Warnings)

		ref := res.Statements[0].(*CreateTable).Column("a").References
		require.NotNil(t, ref)
		require.NotNil(t, ref.DeferrableInitially)
		require.Equal(t, "DEFERRABLE INITIALLY DEFERRED", *ref.DeferrableInitially)
	})

	t.Run("without references is warned, not dropped silently", func(t *testing.T) {
		t.Parallel()

		res, err := Parse("CREATE TABLE t (a INT NOT DEFERRABLE);")
		require.NoError(t, err)

		require.Nil(t, res.Statements[0].(*CreateTable).Column("a").References)
		require.Len(t, res.Warnings, 1)
		require.Equal(t, WarningUnknownClause, res.Warnings[0].Kind)
	})
}

func TestParseNestedTypes(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE events (
		tags ARRAY<STRING>,
		addr STRUCT<street:STRING,city:STRING>,
		meta MAP<STRING,ARRAY<INT>>,
		after_nested INT
	);`)
	require.NoError(t, err)
	require.Empty(t, res.Errors)

	tbl := res.Statements[0].(*CreateTable)
	require.Len(t, tbl.Columns, 4)
	require.Equal(t, "ARRAY<STRING>", tbl.Column("tags").Type.String())
	require.Equal(t, "STRUCT<street:STRING,city:STRING>", tbl.Column("addr").Type.String())
	require.Equal(t, "MAP<STRING,ARRAY<INT>>", tbl.Column("meta").Type.String())
	require.Nil(t, tbl.Column("tags").Size)
}

func TestParseNestedTypeRoundTrip(t *testing.T) {
	t.Parallel()

	res, err := Parse("CREATE TABLE t (addr STRUCT<a: STRING, b: ARRAY<INT>>);")
	require.NoError(t, err)

	canonical := res.Statements[0].(*CreateTable).Column("addr").Type.String()
	require.Equal(t, "STRUCT<a:STRING,b:ARRAY<INT>>", canonical)

	// reparsing the canonical text yields the same tree
	again, err := Parse("CREATE TABLE t (addr " + canonical + ");")
	require.NoError(t, err)
	require.Equal(t,
		res.Statements[0].(*CreateTable).Column("addr").Type,
		again.Statements[0].(*CreateTable).Column("addr").Type)
}

func TestParseArraySuffixes(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE t (
		a INT ARRAY,
		b INT ARRAY[3],
		c INT[],
		d INT[5]
	);`)
	require.NoError(t, err)

	tbl := res.Statements[0].(*CreateTable)
	require.Equal(t, "INT[]", tbl.Column("a").Type.String())
	require.Equal(t, "INT[3]", tbl.Column("b").Type.String())
	require.Equal(t, "INT[]", tbl.Column("c").Type.String())
	require.Equal(t, "INT[5]", tbl.Column("d").Type.String())
	require.Nil(t, tbl.Column("a").Size) // array bounds never become sizes
}

func TestParseExternalTable(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE EXTERNAL TABLE logs (id INT, msg STRING)
		PARTITIONED BY (dt STRING, region STRING)
		ROW FORMAT DELIMITED
		FIELDS TERMINATED BY ','
		COLLECTION ITEMS TERMINATED BY '|'
		MAP KEYS TERMINATED BY ':'
		LINES TERMINATED BY '\n'
		STORED AS PARQUET
		LOCATION '/warehouse/logs';`)
	require.NoError(t, err)
	require.Empty(t, res.Errors)

	tbl := res.Statements[0].(*CreateTable)
	require.NotNil(t, tbl.HQL)
	require.True(t, tbl.HQL.External)
	require.Equal(t, "DELIMITED", *tbl.HQL.RowFormat)
	require.Equal(t, ",", *tbl.HQL.FieldsTerminatedBy)
	require.Equal(t, "|", *tbl.HQL.CollectionItemsTerminatedBy)
	require.Equal(t, ":", *tbl.HQL.MapKeysTerminatedBy)
	require.Equal(t, `\n`, *tbl.HQL.LinesTerminatedBy)
	require.Equal(t, "PARQUET", *tbl.HQL.StoredAs)
	require.Equal(t, "/warehouse/logs", *tbl.HQL.Location)

	require.Len(t, tbl.PartitionedBy, 2)
	require.Equal(t, "dt", tbl.PartitionedBy[0].Name)
	require.Equal(t, "STRING", tbl.PartitionedBy[0].Type.String())
}

func TestParsePlainTableHasNoHQL(t *testing.T) {
	t.Parallel()

	res, err := Parse("CREATE TABLE t (id INT);")
	require.NoError(t, err)
	require.Nil(t, res.Statements[0].(*CreateTable).HQL)
}

func TestParseCreateSequence(t *testing.T) {
	t.Parallel()

	t.Run("all properties", func(t *testing.T) {
		t.Parallel()

		res, err := Parse("CREATE SEQUENCE shop.order_seq START WITH 100 INCREMENT BY 5 MINVALUE 1 MAXVALUE 1000 CACHE 20;")
		require.NoError(t, err)

		seq := res.Statements[0].(*CreateSequence)
		require.Equal(t, StatementCreateSequence, seq.Kind())
		require.Equal(t, "shop", seq.Schema)
		require.Equal(t, "order_seq", seq.Name)
		require.Equal(t, int64(100), *seq.Start)
		require.Equal(t, int64(5), *seq.Increment)
		require.Equal(t, int64(1), *seq.MinValue)
		require.Equal(t, int64(1000), *seq.MaxValue)
		require.Equal(t, int64(20), *seq.Cache)
	})

	t.Run("absent properties stay nil", func(t *testing.T) {
		t.Parallel()

		res, err := Parse("CREATE SEQUENCE s INCREMENT 2 NO MAXVALUE CYCLE;")
		require.NoError(t, err)
		require.Empty(t, res.Warnings)

		seq := res.Statements[0].(*CreateSequence)
		require.Equal(t, int64(2), *seq.Increment)
		require.Nil(t, seq.Start)
		require.Nil(t, seq.MinValue)
		require.Nil(t, seq.MaxValue)
		require.Nil(t, seq.Cache)
	})
}

func TestParseCreateIndex(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE users (id INT, email VARCHAR(100));
		CREATE UNIQUE INDEX idx_email ON users (email);
		CREATE INDEX idx_multi ON users USING btree (id, email DESC);
		CREATE INDEX idx_lost ON missing (a);`)
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Statements, 4)

	first := res.Statements[1].(*CreateIndex)
	require.Equal(t, StatementCreateIndex, first.Kind())
	require.False(t, first.Unresolved)
	require.True(t, first.Index.Unique)
	require.Equal(t, "idx_email", first.Index.Name)
	require.Equal(t, []string{"email"}, first.Index.Columns)

	multi := res.Statements[2].(*CreateIndex)
	require.False(t, multi.Index.Unique)
	require.Equal(t, []string{"id", "email"}, multi.Index.Columns)

	lost := res.Statements[3].(*CreateIndex)
	require.True(t, lost.Unresolved)

	require.Len(t, res.Warnings, 1)
	require.Equal(t, WarningUnresolvedIndex, res.Warnings[0].Kind)
}

func TestParseAlterTable(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE users (id INT PRIMARY KEY, email VARCHAR(100));
		ALTER TABLE users ADD COLUMN age INT NOT NULL, DROP COLUMN email, RENAME COLUMN id TO user_id;
		ALTER TABLE users ADD CONSTRAINT uq_age UNIQUE (age);
		ALTER TABLE users ADD CONSTRAINT fk_dept FOREIGN KEY (dept_id) REFERENCES departments(id);`)
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Statements, 4)

	first := res.Statements[1].(*AlterTable)
	require.Equal(t, StatementAlterTable, first.Kind())
	require.False(t, first.Unresolved)
	require.Len(t, first.AddedColumns, 1)
	require.Equal(t, "age", first.AddedColumns[0].Name)
	require.False(t, first.AddedColumns[0].Nullable)
	require.Equal(t, []string{"email"}, first.DroppedColumns)
	require.Equal(t, []RenameColumn{{From: "id", To: "user_id"}}, first.RenamedColumns)

	second := res.Statements[2].(*AlterTable)
	require.Len(t, second.Uniques, 1)
	require.Equal(t, "uq_age", *second.Uniques[0].Name)
	require.Equal(t, []string{"age"}, second.Uniques[0].Columns)

	third := res.Statements[3].(*AlterTable)
	require.Len(t, third.ForeignKeys, 1)
	require.Equal(t, "fk_dept", *third.ForeignKeys[0].Name)
	require.Equal(t, []string{"dept_id"}, third.ForeignKeys[0].Columns)
	require.Equal(t, []string{"id"}, third.ForeignKeys[0].RefColumns)
}

func TestParseAlterModifyColumn(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE users (id INT, age VARCHAR(10));
		ALTER TABLE users MODIFY COLUMN age INT NOT NULL, MODIFY id BIGINT;`)
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Empty(t, res.Warnings)

	a := res.Statements[1].(*AlterTable)
	require.Len(t, a.ModifiedColumns, 2)

	age := a.ModifiedColumns[0]
	require.Equal(t, "age", age.Name)
	require.Equal(t, "INT", age.Type.String())
	require.False(t, age.Nullable)

	id := a.ModifiedColumns[1]
	require.Equal(t, "id", id.Name)
	require.Equal(t, "BIGINT", id.Type.String())
	require.True(t, id.Nullable)
}

func TestParseAlterOnlyTarget(t *testing.T) {
	t.Parallel()

	t.Run("modifier is skipped", func(t *testing.T) {
		t.Parallel()

		res, err := Parse(`CREATE TABLE users (id INT);
			ALTER TABLE ONLY users ADD COLUMN v INT;`)
		require.NoError(t, err)
		require.Empty(t, res.Warnings)

		a := res.Statements[1].(*AlterTable)
		require.False(t, a.Unresolved)
		require.Equal(t, "users", a.Table)
		require.Len(t, a.AddedColumns, 1)
	})

	t.Run("quoted ONLY is a table name", func(t *testing.T) {
		t.Parallel()

		res, err := Parse(`CREATE TABLE "ONLY" (id INT);
			ALTER TABLE "ONLY" ADD COLUMN v INT;`)
		require.NoError(t, err)
		require.Empty(t, res.Warnings)

		a := res.Statements[1].(*AlterTable)
		require.False(t, a.Unresolved)
		require.Equal(t, "ONLY", a.Table)
		require.Len(t, a.AddedColumns, 1)
	})
}

func TestParseAlterUnresolvedTarget(t *testing.T) {
	t.Parallel()

	res, err := Parse("ALTER TABLE ghosts ADD COLUMN x INT;")
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Statements, 1)

	a := res.Statements[0].(*AlterTable)
	require.True(t, a.Unresolved)
	require.Len(t, a.AddedColumns, 1)

	require.Len(t, res.Warnings, 1)
	require.Equal(t, WarningUnresolvedAlter, res.Warnings[0].Kind)
	require.Equal(t, 0, res.Warnings[0].Statement)
}

func TestParseUnknownClauseWarning(t *testing.T) {
	t.Parallel()

	res, err := Parse("CREATE TABLE t (id INT) ENGINE=InnoDB DEFAULT CHARSET=utf8;")
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Statements, 1)
	require.NotEmpty(t, res.Warnings)

	for _, w := range res.Warnings {
		require.Equal(t, WarningUnknownClause, w.Kind)
	}
}

func TestParseStructuralErrorIsolation(t *testing.T) {
	t.Parallel()

	res, err := Parse(`CREATE TABLE (id INT);
		CREATE TABLE survivors (id INT);
		CREATE VIEW v AS SELECT 1;`)
	require.NoError(t, err)

	require.Len(t, res.Statements, 1)
	require.Equal(t, "survivors", res.Statements[0].(*CreateTable).Name)

	require.Len(t, res.Errors, 2)
	require.Equal(t, 0, res.Errors[0].Statement)
	require.Equal(t, 2, res.Errors[1].Statement)
}

func TestParseLexFailureIsFatal(t *testing.T) {
	t.Parallel()

	res, err := Parse("CREATE TABLE t (note VARCHAR(10) DEFAULT 'oops);")
	require.Error(t, err)
	require.Nil(t, res)
	require.Contains(t, err.Error(), "failed to tokenize DDL")
}

func TestParseCommentSafety(t *testing.T) {
	t.Parallel()

	commented := `-- leading comment
	CREATE TABLE table--name ( # hash comment
		id INT, /* block
		comment */ v VARCHAR(10) DEFAULT 'it''s -- fine'
	);`

	res, err := Parse(commented)
	require.NoError(t, err)
	require.Empty(t, res.Errors)

	tbl := res.Statements[0].(*CreateTable)
	require.Equal(t, "table--name", tbl.Name)
	require.Len(t, tbl.Columns, 2)
	require.Equal(t, "'it''s -- fine'", *tbl.Column("v").Default)

	// stripping the comments changes nothing downstream
	plain, err := Parse(`CREATE TABLE table--name (
		id INT, v VARCHAR(10) DEFAULT 'it''s -- fine'
	);`)
	require.NoError(t, err)
	require.Equal(t, plain.Statements, res.Statements)
}

func TestParseIfNotExists(t *testing.T) {
	t.Parallel()

	res, err := Parse("CREATE TABLE IF NOT EXISTS t (id INT);")
	require.NoError(t, err)
	require.True(t, res.Statements[0].(*CreateTable).IfNotExists)
}

func TestParseLikeTable(t *testing.T) {
	t.Parallel()

	res, err := Parse("CREATE TABLE copy LIKE base.users;")
	require.NoError(t, err)
	require.Empty(t, res.Errors)

	tbl := res.Statements[0].(*CreateTable)
	require.NotNil(t, tbl.Like)
	require.Equal(t, "base", tbl.Like.Schema)
	require.Equal(t, "users", tbl.Like.Name)
	require.Empty(t, tbl.Columns)
}

func TestParseDuplicateColumnWarning(t *testing.T) {
	t.Parallel()

	res, err := Parse("CREATE TABLE t (id INT, ID VARCHAR(5));")
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	require.Equal(t, WarningInvariant, res.Warnings[0].Kind)
}

func TestParseUndeclaredPrimaryKeyColumnWarning(t *testing.T) {
	t.Parallel()

	res, err := Parse("CREATE TABLE t (id INT, PRIMARY KEY (missing));")
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	require.Equal(t, WarningInvariant, res.Warnings[0].Kind)
	require.Equal(t, []string{"missing"}, res.Statements[0].(*CreateTable).PrimaryKey)
}

func TestParseConcurrent(t *testing.T) {
	t.Parallel()

	const ddl = "CREATE TABLE t (id INT PRIMARY KEY); ALTER TABLE t ADD COLUMN v INT;"

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				res, err := Parse(ddl)
				require.NoError(t, err)
				require.Len(t, res.Statements, 2)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
