// Package dialect renders query and schema statements to SQL.
//
// A dialect is pure data: a Config describing quoting, literal forms,
// statement shapes and feature flags. Base reads the Config and renders
// every statement; dialect packages only supply the Config and, where
// needed, a column type hook.
package dialect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// Dialect renders query and schema statements.
type Dialect interface {
	query.QueryBuilder
	schema.SchemaBuilder
	// Name is the registry key.
	Name() string
	// Config returns the static configuration.
	Config() *Config
	// ReservedWords lists the keywords that collide with identifiers,
	// lowercased and sorted.
	ReservedWords() []string
}

// ColumnTypeFunc spells a column type. Returning false falls back to the
// shared spelling.
type ColumnTypeFunc func(t *schema.ColumnType) (string, bool)

// Base is the config-driven renderer shared by all dialects.
type Base struct {
	cfg           *Config
	columnType    ColumnTypeFunc
	reservedWords map[string]struct{}
}

var _ Dialect = (*Base)(nil)

// Builder assembles a Base.
type Builder struct {
	base *Base
}

// New creates a dialect builder from a Config.
func New(cfg *Config) *Builder {
	return &Builder{base: &Base{cfg: cfg, reservedWords: make(map[string]struct{})}}
}

// ColumnTypes installs a column type hook.
func (b *Builder) ColumnTypes(f ColumnTypeFunc) *Builder {
	b.base.columnType = f
	return b
}

// WithReservedWords registers keywords that collide with identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.base.reservedWords[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// Build returns the dialect.
func (b *Builder) Build() *Base {
	return b.base
}

// Name returns the registry key.
func (d *Base) Name() string { return d.cfg.Name }

// Config returns the static configuration.
func (d *Base) Config() *Config { return d.cfg }

// Writer returns a writer using the dialect's placeholder marker.
func (d *Base) Writer(inline bool) *format.Writer {
	return format.NewWriter(inline, d.cfg.Placeholder.Marker())
}

// PrepareQuery renders a query statement into w. Failures are recorded on w.
func (d *Base) PrepareQuery(stmt query.Statement, w *format.Writer) {
	d.renderer(w).statement(stmt)
}

// PrepareSchema renders a schema statement into w. Failures are recorded on w.
func (d *Base) PrepareSchema(stmt schema.Statement, w *format.Writer) {
	d.renderer(w).schemaStatement(stmt)
}

// ReservedWords returns the registered reserved words in sorted order.
func (d *Base) ReservedWords() []string {
	out := make([]string, 0, len(d.reservedWords))
	for w := range d.reservedWords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Base) QuoteIdentifier(name string) string {
	id := d.cfg.Identifiers
	escaped := strings.ReplaceAll(name, id.QuoteEnd, id.Escape)
	return id.Quote + escaped + id.QuoteEnd
}

// renderer carries the writer through one statement.
type renderer struct {
	d   *Base
	cfg *Config
	w   *format.Writer
}

func (d *Base) renderer(w *format.Writer) *renderer {
	return &renderer{d: d, cfg: d.cfg, w: w}
}

func (r *renderer) write(s string) { r.w.Write(s) }

func (r *renderer) unsupported(feature string) {
	r.w.Fail(&UnsupportedError{Dialect: r.cfg.Name, Feature: feature})
}

func (r *renderer) failf(msg string, args ...any) {
	r.w.Fail(fmt.Errorf("%s: "+msg, append([]any{r.cfg.Name}, args...)...))
}
