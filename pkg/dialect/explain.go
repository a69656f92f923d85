package dialect

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/querykit/pkg/query"
)

var (
	postgresExplainFormats = []query.ExplainFormat{query.ExplainText, query.ExplainXML, query.ExplainJSON, query.ExplainYAML}
	mysqlExplainFormats    = []query.ExplainFormat{query.ExplainTraditional, query.ExplainJSON, query.ExplainTree}
)

func (r *renderer) explain(e *query.ExplainStatement) {
	switch r.cfg.Explain {
	case ExplainParenthesized:
		r.explainOptions(e)
	case ExplainMySQL:
		r.explainMySQL(e)
	case ExplainPlain, ExplainQueryPlan, ExplainPlanFor:
		r.explainPlain(e)
	default:
		r.unsupported("EXPLAIN")
	}
}

// mysqlExplainFeature names the first MySQL-only part of e, if any.
func mysqlExplainFeature(e *query.ExplainStatement) string {
	switch {
	case e.IntoVar != "":
		return "EXPLAIN INTO"
	case !e.ForSchema.IsZero():
		return "EXPLAIN FOR SCHEMA"
	case !e.ForDB.IsZero():
		return "EXPLAIN FOR DATABASE"
	case e.Connection != nil:
		return "EXPLAIN FOR CONNECTION"
	case e.TableName != nil:
		return "EXPLAIN of a table"
	}
	return ""
}

// postgresExplainFeature names the first Postgres-only option set, if any.
func postgresExplainFeature(o query.ExplainOptions) string {
	flags := []struct {
		name string
		set  *bool
	}{
		{"VERBOSE", o.Verbose}, {"COSTS", o.Costs}, {"SETTINGS", o.Settings},
		{"GENERIC_PLAN", o.GenericPlan}, {"BUFFERS", o.Buffers}, {"WAL", o.Wal},
		{"TIMING", o.Timing}, {"SUMMARY", o.Summary}, {"MEMORY", o.Memory},
	}
	for _, f := range flags {
		if f.set != nil {
			return "EXPLAIN " + f.name
		}
	}
	if o.Serialize != "" {
		return "EXPLAIN SERIALIZE"
	}
	return ""
}

func (r *renderer) explainFormat(f query.ExplainFormat, allowed []query.ExplainFormat) bool {
	for _, a := range allowed {
		if f == a {
			return true
		}
	}
	r.unsupported("EXPLAIN FORMAT " + string(f))
	return false
}

// explainOptions writes EXPLAIN (ANALYZE, VERBOSE FALSE, FORMAT JSON) stmt.
func (r *renderer) explainOptions(e *query.ExplainStatement) {
	if f := mysqlExplainFeature(e); f != "" {
		r.unsupported(f)
		return
	}
	if e.IsQueryPlan {
		r.unsupported("EXPLAIN QUERY PLAN")
		return
	}
	if e.Query == nil {
		r.failf("explain without statement")
		return
	}
	o := e.Options
	var opts []string
	flag := func(name string, b *bool) {
		switch {
		case b == nil:
		case *b:
			opts = append(opts, name)
		default:
			opts = append(opts, name+" FALSE")
		}
	}
	flag("ANALYZE", o.Analyze)
	flag("VERBOSE", o.Verbose)
	flag("COSTS", o.Costs)
	flag("SETTINGS", o.Settings)
	flag("GENERIC_PLAN", o.GenericPlan)
	flag("BUFFERS", o.Buffers)
	if o.Serialize != "" {
		opts = append(opts, "SERIALIZE "+string(o.Serialize))
	}
	flag("WAL", o.Wal)
	flag("TIMING", o.Timing)
	flag("SUMMARY", o.Summary)
	flag("MEMORY", o.Memory)
	if o.Format != "" {
		if !r.explainFormat(o.Format, postgresExplainFormats) {
			return
		}
		opts = append(opts, "FORMAT "+string(o.Format))
	}
	r.write("EXPLAIN ")
	if len(opts) > 0 {
		r.write("(")
		r.write(strings.Join(opts, ", "))
		r.write(") ")
	}
	r.statement(e.Query)
}

// validUserVar reports whether name can follow @ unquoted.
func validUserVar(name string) bool {
	return name != "" && strings.IndexFunc(name, func(c rune) bool {
		return !(c == '_' || c == '$' || c == '.' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'))
	}) < 0
}

// explainMySQL writes EXPLAIN [ANALYZE] [FORMAT = f] [INTO @v] followed by
// FOR CONNECTION n, a table, or [FOR SCHEMA|DATABASE s] stmt.
func (r *renderer) explainMySQL(e *query.ExplainStatement) {
	if f := postgresExplainFeature(e.Options); f != "" {
		r.unsupported(f)
		return
	}
	if e.IsQueryPlan {
		r.unsupported("EXPLAIN QUERY PLAN")
		return
	}
	targets := 0
	for _, set := range []bool{e.Query != nil, e.Connection != nil, e.TableName != nil} {
		if set {
			targets++
		}
	}
	if targets != 1 {
		r.failf("explain needs exactly one of a statement, a connection or a table")
		return
	}
	if !e.ForSchema.IsZero() && !e.ForDB.IsZero() {
		r.failf("explain with both FOR SCHEMA and FOR DATABASE")
		return
	}
	if (!e.ForSchema.IsZero() || !e.ForDB.IsZero()) && e.Query == nil {
		r.failf("FOR SCHEMA and FOR DATABASE need a statement")
		return
	}
	r.write("EXPLAIN")
	if a := e.Options.Analyze; a != nil && *a {
		r.write(" ANALYZE")
	}
	if f := e.Options.Format; f != "" {
		if !r.explainFormat(f, mysqlExplainFormats) {
			return
		}
		r.write(" FORMAT = ")
		r.write(string(f))
	}
	if e.IntoVar != "" {
		if e.Options.Format != query.ExplainJSON {
			r.failf("EXPLAIN INTO needs FORMAT = JSON")
			return
		}
		if !validUserVar(e.IntoVar) {
			r.failf("invalid user variable %q", e.IntoVar)
			return
		}
		r.write(" INTO @")
		r.write(e.IntoVar)
	}
	switch {
	case e.Connection != nil:
		r.write(" FOR CONNECTION ")
		r.write(strconv.FormatUint(*e.Connection, 10))
	case e.TableName != nil:
		r.write(" ")
		r.tableName(*e.TableName)
		if !e.ColumnName.IsZero() {
			r.write(" ")
			r.iden(e.ColumnName)
		}
	default:
		if !e.ForSchema.IsZero() {
			r.write(" FOR SCHEMA ")
			r.iden(e.ForSchema)
		}
		if !e.ForDB.IsZero() {
			r.write(" FOR DATABASE ")
			r.iden(e.ForDB)
		}
		r.write(" ")
		r.statement(e.Query)
	}
}

// explainPlain writes EXPLAIN [ANALYZE] stmt, EXPLAIN [QUERY PLAN] stmt or
// EXPLAIN PLAN FOR stmt.
func (r *renderer) explainPlain(e *query.ExplainStatement) {
	if f := mysqlExplainFeature(e); f != "" {
		r.unsupported(f)
		return
	}
	if f := postgresExplainFeature(e.Options); f != "" {
		r.unsupported(f)
		return
	}
	if e.Options.Format != "" {
		r.unsupported("EXPLAIN FORMAT")
		return
	}
	if e.Query == nil {
		r.failf("explain without statement")
		return
	}
	analyze := e.Options.Analyze != nil && *e.Options.Analyze
	if analyze && r.cfg.Explain != ExplainPlain {
		r.unsupported("EXPLAIN ANALYZE")
		return
	}
	if e.IsQueryPlan && r.cfg.Explain != ExplainQueryPlan {
		r.unsupported("EXPLAIN QUERY PLAN")
		return
	}
	r.write("EXPLAIN ")
	switch {
	case r.cfg.Explain == ExplainPlanFor:
		r.write("PLAN FOR ")
	case analyze:
		r.write("ANALYZE ")
	case e.IsQueryPlan:
		r.write("QUERY PLAN ")
	}
	r.statement(e.Query)
}
