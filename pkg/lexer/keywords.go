package lexer

// Category classifies a normalized word for the tokenizer and the grammar
// reducer. The table below is the extension point for new dialects: adding a
// word here is enough for the reducer's clause dispatch to see it as a
// keyword, without touching any control flow.
type Category int

const (
	// CategoryNone means the word is a plain identifier
	CategoryNone Category = iota

	// CategoryReserved is a reserved word common across dialects
	CategoryReserved

	// CategoryType is a built-in type name
	CategoryType

	// CategoryDialect is a dialect-specific clause word (Hive, MySQL, ...)
	CategoryDialect
)

var keywordTable = map[string]Category{
	// Statement structure
	"CREATE": CategoryReserved, "TABLE": CategoryReserved, "ALTER": CategoryReserved,
	"INDEX": CategoryReserved, "SEQUENCE": CategoryReserved, "IF": CategoryReserved,
	"EXISTS": CategoryReserved, "LIKE": CategoryReserved, "ONLY": CategoryReserved,
	"USING": CategoryReserved,

	// Column/constraint clauses
	"NOT": CategoryReserved, "NULL": CategoryReserved, "DEFAULT": CategoryReserved,
	"CHECK": CategoryReserved, "UNIQUE": CategoryReserved, "PRIMARY": CategoryReserved,
	"FOREIGN": CategoryReserved, "KEY": CategoryReserved, "REFERENCES": CategoryReserved,
	"CONSTRAINT": CategoryReserved, "ON": CategoryReserved, "DELETE": CategoryReserved,
	"UPDATE": CategoryReserved, "CASCADE": CategoryReserved, "RESTRICT": CategoryReserved,
	"SET": CategoryReserved, "NO": CategoryReserved, "ACTION": CategoryReserved,
	"DEFERRABLE": CategoryReserved, "INITIALLY": CategoryReserved,
	"DEFERRED": CategoryReserved, "IMMEDIATE": CategoryReserved,
	"ASC": CategoryReserved, "DESC": CategoryReserved,

	// ALTER TABLE operations
	"ADD": CategoryReserved, "DROP": CategoryReserved, "COLUMN": CategoryReserved,
	"RENAME": CategoryReserved, "TO": CategoryReserved, "MODIFY": CategoryReserved,

	// Sequence properties
	"INCREMENT": CategoryReserved, "START": CategoryReserved, "WITH": CategoryReserved,
	"BY": CategoryReserved, "MINVALUE": CategoryReserved, "MAXVALUE": CategoryReserved,
	"CACHE": CategoryReserved, "CYCLE": CategoryReserved,

	// Common expression words seen in DEFAULT/CHECK clauses
	"AND": CategoryReserved, "OR": CategoryReserved, "IN": CategoryReserved,
	"BETWEEN": CategoryReserved, "IS": CategoryReserved, "TRUE": CategoryReserved,
	"FALSE": CategoryReserved, "CURRENT_TIMESTAMP": CategoryReserved,
	"CURRENT_DATE": CategoryReserved, "CURRENT_USER": CategoryReserved,

	// Type names
	"INT": CategoryType, "INTEGER": CategoryType, "TINYINT": CategoryType,
	"SMALLINT": CategoryType, "BIGINT": CategoryType, "SERIAL": CategoryType,
	"BIGSERIAL": CategoryType, "VARCHAR": CategoryType, "CHAR": CategoryType,
	"CHARACTER": CategoryType, "VARYING": CategoryType, "TEXT": CategoryType,
	"STRING": CategoryType, "BOOLEAN": CategoryType, "BOOL": CategoryType,
	"FLOAT": CategoryType, "REAL": CategoryType, "DOUBLE": CategoryType,
	"PRECISION": CategoryType, "DECIMAL": CategoryType, "NUMERIC": CategoryType,
	"DATE": CategoryType, "TIME": CategoryType, "TIMESTAMP": CategoryType,
	"DATETIME": CategoryType, "INTERVAL": CategoryType, "BINARY": CategoryType,
	"VARBINARY": CategoryType, "BLOB": CategoryType, "JSON": CategoryType,
	"JSONB": CategoryType, "UUID": CategoryType, "ARRAY": CategoryType,
	"STRUCT": CategoryType, "MAP": CategoryType,

	// Hive/HQL clause words
	"EXTERNAL": CategoryDialect, "PARTITIONED": CategoryDialect,
	"STORED": CategoryDialect, "AS": CategoryDialect, "LOCATION": CategoryDialect,
	"ROW": CategoryDialect, "FORMAT": CategoryDialect, "DELIMITED": CategoryDialect,
	"FIELDS": CategoryDialect, "COLLECTION": CategoryDialect, "ITEMS": CategoryDialect,
	"KEYS": CategoryDialect, "LINES": CategoryDialect, "TERMINATED": CategoryDialect,

	// MySQL clause words
	"AUTO_INCREMENT": CategoryDialect, "ENGINE": CategoryDialect,
	"CHARSET": CategoryDialect, "COMMENT": CategoryDialect,
	"CLUSTERED": CategoryDialect,
}

// Lookup returns the keyword category for the given normalized (upper-cased)
// word. Lookup is pure; the table is read-only and safe for concurrent use.
func Lookup(word string) Category {
	return keywordTable[word]
}
