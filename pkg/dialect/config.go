package dialect

import (
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (MySQL, SQLite, DuckDB).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. (PostgreSQL).
	PlaceholderDollar
	// PlaceholderAtP uses @P1, @P2, etc. (SQL Server).
	PlaceholderAtP
	// PlaceholderColon uses :1, :2, etc. (Oracle).
	PlaceholderColon
)

// Marker returns the writer marker for the style.
func (p PlaceholderStyle) Marker() format.Marker {
	switch p {
	case PlaceholderDollar:
		return format.MarkerDollar
	case PlaceholderAtP:
		return format.MarkerAtP
	case PlaceholderColon:
		return format.MarkerColon
	default:
		return format.MarkerQuestion
	}
}

// String returns the marker shape: ?, $n, @Pn or :n.
func (p PlaceholderStyle) String() string {
	switch p {
	case PlaceholderDollar:
		return "$n"
	case PlaceholderAtP:
		return "@Pn"
	case PlaceholderColon:
		return ":n"
	default:
		return "?"
	}
}

// IdentifierConfig defines how identifiers are quoted.
type IdentifierConfig struct {
	Quote    string // Quote character: ", `, [
	QuoteEnd string // End quote character (usually same as Quote, ] for [)
	Escape   string // Escape sequence for QuoteEnd: "", ``, ]]
}

// StringStyle selects how string literals are escaped.
type StringStyle int

const (
	// StringsBackslash escapes quotes and control characters with a
	// backslash (MySQL).
	StringsBackslash StringStyle = iota
	// StringsDoubled doubles single quotes and leaves everything else
	// alone (SQLite, SQL Server, Oracle).
	StringsDoubled
	// StringsPostgres doubles single quotes and switches to E'...' with
	// backslash escapes when control characters or backslashes appear.
	StringsPostgres
)

// BytesStyle selects the inline form of byte strings.
type BytesStyle int

const (
	// BytesHex is X'0A1B'.
	BytesHex BytesStyle = iota
	// BytesEscape is '\x0a1b' (bytea hex format).
	BytesEscape
	// BytesPrefixed is 0x0A1B.
	BytesPrefixed
	// BytesFromHex is FROM_HEX('0a1b').
	BytesFromHex
	// BytesHexToRaw is HEXTORAW('0A1B').
	BytesHexToRaw
	// BytesBlobCast is '\x0A\x1B'::BLOB, one escape per byte.
	BytesBlobCast
)

// UpsertStyle selects the INSERT conflict clause.
type UpsertStyle int

const (
	// UpsertNone rejects conflict clauses.
	UpsertNone UpsertStyle = iota
	// UpsertOnConflict is ON CONFLICT (...) DO ...
	UpsertOnConflict
	// UpsertDuplicateKey is MySQL's ON DUPLICATE KEY UPDATE.
	UpsertDuplicateKey
	// UpsertReplaceOn is REPLACE INTO t (cols) ON (keys) VALUES ...
	UpsertReplaceOn
)

// ReturningStyle selects how rows produced by DML are returned.
type ReturningStyle int

const (
	// ReturningNone rejects RETURNING.
	ReturningNone ReturningStyle = iota
	// ReturningClause is a trailing RETURNING ... clause.
	ReturningClause
	// ReturningOutput is SQL Server's OUTPUT INSERTED.* / DELETED.*.
	ReturningOutput
)

// LimitStyle selects the row limiting syntax.
type LimitStyle int

const (
	// LimitOffset is LIMIT n OFFSET m.
	LimitOffset LimitStyle = iota
	// OffsetFetch is OFFSET m ROWS FETCH NEXT n ROWS ONLY.
	OffsetFetch
)

// DefaultValuesStyle selects how an INSERT without columns is written.
type DefaultValuesStyle int

const (
	// DefaultValuesRow repeats VALUES (DEFAULT).
	DefaultValuesRow DefaultValuesStyle = iota
	// DefaultValuesEmpty repeats VALUES ().
	DefaultValuesEmpty
	// DefaultValuesKeyword is DEFAULT VALUES.
	DefaultValuesKeyword
	// DefaultValuesNone rejects inserts without values.
	DefaultValuesNone
)

// AutoIncrementPosition places the auto-increment keyword in a column
// definition.
type AutoIncrementPosition int

const (
	// AutoIncrementAfterNull writes it after NULL/NOT NULL and DEFAULT
	// (MySQL).
	AutoIncrementAfterNull AutoIncrementPosition = iota
	// AutoIncrementAfterType writes it right after the type (SQL Server,
	// Oracle).
	AutoIncrementAfterType
	// AutoIncrementAfterPrimaryKey writes it after PRIMARY KEY (SQLite).
	AutoIncrementAfterPrimaryKey
)

// AlterColumnStyle selects how ALTER TABLE changes a column definition.
type AlterColumnStyle int

const (
	// AlterColumnUnsupported rejects column changes (SQLite).
	AlterColumnUnsupported AlterColumnStyle = iota
	// AlterColumnModify is MODIFY COLUMN <full definition> (MySQL).
	AlterColumnModify
	// AlterColumnType is ALTER COLUMN c TYPE t, ALTER COLUMN c SET ...
	// (Postgres).
	AlterColumnType
	// AlterColumnSetDataType is ALTER COLUMN c SET DATA TYPE t (BigQuery,
	// Databend).
	AlterColumnSetDataType
	// AlterColumnPlain is ALTER COLUMN <full definition> (SQL Server).
	AlterColumnPlain
)

// RenameTableStyle selects the table rename statement.
type RenameTableStyle int

const (
	// RenameAlterTable is ALTER TABLE a RENAME TO b.
	RenameAlterTable RenameTableStyle = iota
	// RenameTableKeyword is RENAME TABLE a TO b (MySQL).
	RenameTableKeyword
	// RenameSpRename is EXEC sp_rename 'a', 'b' (SQL Server).
	RenameSpRename
	// RenameStatement is RENAME a TO b (Oracle views).
	RenameStatement
	// RenameUnsupported rejects the rename.
	RenameUnsupported
)

// ViewConfig lists the CREATE VIEW clauses a dialect accepts.
type ViewConfig struct {
	Supported   bool
	OrReplace   bool
	IfNotExists bool
	Temporary   bool
	Recursive   bool
	CheckOption bool // WITH CASCADED|LOCAL CHECK OPTION
	DropMany    bool // several views in one DROP VIEW
	Rename      RenameTableStyle
}

// ExplainStyle selects the EXPLAIN syntax.
type ExplainStyle int

const (
	// ExplainUnsupported rejects EXPLAIN.
	ExplainUnsupported ExplainStyle = iota
	// ExplainPlain is EXPLAIN [ANALYZE] stmt.
	ExplainPlain
	// ExplainParenthesized is EXPLAIN (opt, ...) stmt (Postgres).
	ExplainParenthesized
	// ExplainMySQL is EXPLAIN [ANALYZE] [FORMAT = f] [INTO @v] target.
	ExplainMySQL
	// ExplainQueryPlan is EXPLAIN [QUERY PLAN] stmt (SQLite).
	ExplainQueryPlan
	// ExplainPlanFor is EXPLAIN PLAN FOR stmt (Oracle).
	ExplainPlanFor
)

// TriggerStyle selects the CREATE TRIGGER body.
type TriggerStyle int

const (
	// TriggerUnsupported rejects triggers.
	TriggerUnsupported TriggerStyle = iota
	// TriggerFunction is FOR EACH ROW EXECUTE FUNCTION f() (Postgres).
	TriggerFunction
	// TriggerBody runs statements, wrapping several in BEGIN ... END
	// (MySQL).
	TriggerBody
	// TriggerBodyBlock always wraps statements in BEGIN ... END (SQLite).
	TriggerBodyBlock
)

// Config holds the static configuration for a SQL dialect.
// This is pure data; the shared renderer reads it to decide every
// dialect-dependent spelling.
type Config struct {
	// Name is the registry key (e.g., "postgres", "mysql").
	Name string

	// Identifiers defines quoting rules.
	Identifiers IdentifierConfig

	// Placeholder defines how query parameters are formatted.
	Placeholder PlaceholderStyle

	// Template selects the placeholder syntax of custom expression templates.
	Template format.TemplateStyle

	// Literal forms
	Strings   StringStyle
	Bytes     BytesStyle
	BoolAsInt bool // 1/0 instead of TRUE/FALSE

	// Statement shapes
	Upsert        UpsertStyle
	Returning     ReturningStyle
	Limit         LimitStyle
	DefaultValues DefaultValuesStyle
	Replace       string // REPLACE keyword; empty means unsupported
	Recursive     string // keyword after WITH for recursive queries

	// OffsetOnlyLimit is written as LIMIT when only OFFSET is set, for
	// dialects that reject a bare OFFSET.
	OffsetOnlyLimit string

	// SetOperators respells UNION, INTERSECT and EXCEPT.
	SetOperators map[query.UnionKind]string

	// ArrayOpen and ArrayClose surround inline array literals.
	ArrayOpen  string
	ArrayClose string
	ArrayEmpty string // literal for the empty array, if it differs

	// TemporalOffsets writes the ±HH:MM offset of zoned timestamps.
	TemporalOffsets bool

	// TableAliasAs writes AS between a table and its alias.
	TableAliasAs bool

	// Types spells portable column types. Kinds missing here fall back to
	// the shared spelling; an empty spelling is unsupported.
	Types map[schema.TypeKind]string
	// VarcharLength is written for varchar columns without a length.
	VarcharLength uint32
	// ArrayTypeOpen and ArrayTypeClose surround an array column's element
	// type; the default is elem[].
	ArrayTypeOpen  string
	ArrayTypeClose string

	// DDL shapes
	AutoIncrement         string // keyword; empty means unsupported
	AutoIncrementPosition AutoIncrementPosition
	SerialTypes           bool // integer + auto increment becomes serial
	AlterColumn           AlterColumnStyle
	AlterMultiple         bool   // several operations in one ALTER TABLE
	AddColumnBare         bool   // ADD c instead of ADD COLUMN c
	DropForeignKey        string // DROP FOREIGN KEY or DROP CONSTRAINT; empty means unsupported
	RenameTable           RenameTableStyle
	DropIndexOnTable      bool // DROP INDEX name ON table
	AlterForeignKeys      bool // foreign keys can be added to existing tables
	IndexMethods          bool // USING method on indexes
	IndexMethodNames      map[schema.IndexType]string
	FullTextPrefix        bool // FULLTEXT INDEX / FULLTEXT KEY
	DropBehavior          bool // CASCADE / RESTRICT on DROP TABLE
	TableKeys             bool // KEY `name` (cols) inside CREATE TABLE
	Triggers              TriggerStyle
	ColumnComments        bool // COMMENT 'x' on columns and tables
	TableOptions          bool // ENGINE=, COLLATE=, DEFAULT CHARSET=
	InlineEnums           bool // ENUM('a', 'b') column type
	OmitColumnKeys        bool // drop PRIMARY KEY and auto increment from column definitions
	AlterConstraints      bool // ADD PRIMARY KEY, UNIQUE and CHECK on existing tables
	ConstraintUsingIndex  bool // ADD ... UNIQUE USING INDEX name
	Views                 ViewConfig
	Explain               ExplainStyle

	// Functions renames portable functions (IFNULL -> COALESCE, ...).
	Functions map[query.Function]string

	// Feature flags
	SupportsDistinctOn       bool
	SupportsDistinctRow      bool
	SupportsArrays           bool
	SupportsRanges           bool
	SupportsEnumCast         bool // AsEnum renders CAST(x AS type)
	SupportsRowLocking       bool
	SupportsIndexHints       bool
	SupportsNullsOrdering    bool // native NULLS FIRST/LAST
	SupportsFieldOrdering    bool // native FIELD(expr, ...)
	SupportsUpdateOrderLimit bool // ORDER BY / LIMIT on UPDATE and DELETE
	SupportsUpdateFrom       bool
	SupportsTruncate         bool
	SupportsLateral          bool
	SupportsWindowFrames     bool
	SupportsCTESearchCycle   bool
	SupportsMaterializedCTE  bool
	SupportsUserTypes        bool // CREATE TYPE, enum casts
	SupportsExtensions       bool
	SupportsConcurrentIndex  bool
	SupportsPartialIndex     bool
	SupportsIndexInclude     bool
	SupportsIfNotExistsIndex bool
	SupportsIndexes          bool
	SupportsIndexPrefix      bool // col(n) prefix lengths
	SupportsNullsNotDistinct bool
	SupportsForeignKeys      bool
	FlattenUnions            bool // no parentheses around union arms
}

// SetOperator returns the dialect spelling of a set operator.
func (c *Config) SetOperator(k query.UnionKind) string {
	if name, ok := c.SetOperators[k]; ok {
		return name
	}
	return string(k)
}

// FunctionName returns the dialect spelling of f.
func (c *Config) FunctionName(f query.Function) string {
	if name, ok := c.Functions[f]; ok {
		return name
	}
	return string(f)
}
