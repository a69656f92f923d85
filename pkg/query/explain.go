package query

import (
	"fmt"

	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// ExplainFormat is the plan output format.
type ExplainFormat string

// Plan formats. TEXT, XML, JSON and YAML are Postgres; TRADITIONAL, JSON
// and TREE are MySQL.
const (
	ExplainText        ExplainFormat = "TEXT"
	ExplainXML         ExplainFormat = "XML"
	ExplainJSON        ExplainFormat = "JSON"
	ExplainYAML        ExplainFormat = "YAML"
	ExplainTree        ExplainFormat = "TREE"
	ExplainTraditional ExplainFormat = "TRADITIONAL"
)

// ExplainSerialize is the Postgres SERIALIZE option value.
type ExplainSerialize string

// Serialize modes.
const (
	SerializeNone   ExplainSerialize = "NONE"
	SerializeText   ExplainSerialize = "TEXT"
	SerializeBinary ExplainSerialize = "BINARY"
)

// ExplainOptions are the EXPLAIN options. A nil flag leaves the server
// default; only Postgres writes a flag set to false.
type ExplainOptions struct {
	Analyze     *bool
	Verbose     *bool
	Costs       *bool
	Settings    *bool
	GenericPlan *bool
	Buffers     *bool
	Serialize   ExplainSerialize
	Wal         *bool
	Timing      *bool
	Summary     *bool
	Memory      *bool
	Format      ExplainFormat
}

// ExplainStatement is EXPLAIN wrapping a statement, or MySQL's EXPLAIN of a
// table or of a running connection.
type ExplainStatement struct {
	Query   Statement
	Options ExplainOptions

	// SQLite EXPLAIN QUERY PLAN.
	IsQueryPlan bool

	// MySQL targets and INTO @var.
	IntoVar    string
	ForSchema  iden.Dyn
	ForDB      iden.Dyn
	Connection *uint64
	TableName  *iden.TableName
	ColumnName iden.Dyn
}

// Explain wraps q in EXPLAIN.
func Explain(q Statement) *ExplainStatement {
	return &ExplainStatement{Query: q.cloneStatement()}
}

// ExplainTable is MySQL's EXPLAIN tbl [col]. col may be nil.
func ExplainTable(t any, col iden.Iden) *ExplainStatement {
	tn, ok := tableNameOf(IntoTableRef(t))
	if !ok {
		panic(fmt.Sprintf("query: explain needs a table name, got %T", t))
	}
	e := &ExplainStatement{TableName: &tn}
	if col != nil {
		e.ColumnName = iden.Of(col)
	}
	return e
}

// ExplainConnection is MySQL's EXPLAIN FOR CONNECTION id.
func ExplainConnection(id uint64) *ExplainStatement {
	return &ExplainStatement{Connection: &id}
}

func (*ExplainStatement) queryStatement() {}

func (e *ExplainStatement) cloneStatement() Statement {
	out := *e
	if e.Query != nil {
		out.Query = e.Query.cloneStatement()
	}
	return &out
}

// Analyze sets ANALYZE.
func (e *ExplainStatement) Analyze(b bool) *ExplainStatement {
	e.Options.Analyze = &b
	return e
}

// Verbose sets VERBOSE (Postgres).
func (e *ExplainStatement) Verbose(b bool) *ExplainStatement {
	e.Options.Verbose = &b
	return e
}

// Costs sets COSTS (Postgres).
func (e *ExplainStatement) Costs(b bool) *ExplainStatement {
	e.Options.Costs = &b
	return e
}

// Settings sets SETTINGS (Postgres).
func (e *ExplainStatement) Settings(b bool) *ExplainStatement {
	e.Options.Settings = &b
	return e
}

// GenericPlan sets GENERIC_PLAN (Postgres).
func (e *ExplainStatement) GenericPlan(b bool) *ExplainStatement {
	e.Options.GenericPlan = &b
	return e
}

// Buffers sets BUFFERS (Postgres).
func (e *ExplainStatement) Buffers(b bool) *ExplainStatement {
	e.Options.Buffers = &b
	return e
}

// Serialize sets SERIALIZE (Postgres).
func (e *ExplainStatement) Serialize(s ExplainSerialize) *ExplainStatement {
	e.Options.Serialize = s
	return e
}

// Wal sets WAL (Postgres).
func (e *ExplainStatement) Wal(b bool) *ExplainStatement {
	e.Options.Wal = &b
	return e
}

// Timing sets TIMING (Postgres).
func (e *ExplainStatement) Timing(b bool) *ExplainStatement {
	e.Options.Timing = &b
	return e
}

// Summary sets SUMMARY (Postgres).
func (e *ExplainStatement) Summary(b bool) *ExplainStatement {
	e.Options.Summary = &b
	return e
}

// Memory sets MEMORY (Postgres).
func (e *ExplainStatement) Memory(b bool) *ExplainStatement {
	e.Options.Memory = &b
	return e
}

// Format sets the output format.
func (e *ExplainStatement) Format(f ExplainFormat) *ExplainStatement {
	e.Options.Format = f
	return e
}

// QueryPlan writes EXPLAIN QUERY PLAN (SQLite).
func (e *ExplainStatement) QueryPlan() *ExplainStatement {
	e.IsQueryPlan = true
	return e
}

// Into stores the JSON plan in a user variable (MySQL). name excludes the @.
func (e *ExplainStatement) Into(name string) *ExplainStatement {
	e.IntoVar = name
	return e
}

// InSchema runs the statement against schema s (MySQL).
func (e *ExplainStatement) InSchema(s iden.Iden) *ExplainStatement {
	e.ForSchema = iden.Of(s)
	return e
}

// InDatabase runs the statement against database d (MySQL).
func (e *ExplainStatement) InDatabase(d iden.Iden) *ExplainStatement {
	e.ForDB = iden.Of(d)
	return e
}

// Build renders with placeholders.
func (e *ExplainStatement) Build(qb QueryBuilder) (string, value.Values, error) { return Build(e, qb) }

// ToString renders with inline values.
func (e *ExplainStatement) ToString(qb QueryBuilder) (string, error) { return ToString(e, qb) }

// MustBuild renders with placeholders and panics on error.
func (e *ExplainStatement) MustBuild(qb QueryBuilder) (string, value.Values) { return MustBuild(e, qb) }

// MustString renders with inline values and panics on error.
func (e *ExplainStatement) MustString(qb QueryBuilder) string { return MustString(e, qb) }
