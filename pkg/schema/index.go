package schema

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
)

// IndexType is the index method.
type IndexType string

// Index methods. Any other spelling is written verbatim.
const (
	IndexBTree    IndexType = "BTREE"
	IndexHash     IndexType = "HASH"
	IndexFullText IndexType = "FULLTEXT"
	IndexGin      IndexType = "GIN"
)

// IndexColumn is one indexed column or expression. Prefix is the MySQL
// prefix length.
type IndexColumn struct {
	Name   iden.Dyn
	Expr   query.Expr
	Prefix uint32
	Order  *query.Order
}

// IndexCreate is CREATE INDEX, or a table-level index inside CREATE TABLE.
type IndexCreate struct {
	IndexName          iden.Dyn
	TableName          *iden.TableName
	Columns            []IndexColumn
	IsUnique           bool
	IsPrimary          bool
	IsNullsNotDistinct bool
	IsIfNotExists      bool
	IsConcurrent       bool
	Using              IndexType
	Includes           []iden.Dyn
	WhereClause        query.ConditionHolder
}

// Index starts an index definition.
func Index() *IndexCreate { return &IndexCreate{} }

func (*IndexCreate) schemaStatement() {}

// Name sets the index name.
func (i *IndexCreate) Name(name string) *IndexCreate {
	i.IndexName = iden.Name(name)
	return i
}

// Table sets the indexed table.
func (i *IndexCreate) Table(t any) *IndexCreate {
	tn := tableName(t)
	i.TableName = &tn
	return i
}

// Col appends a column.
func (i *IndexCreate) Col(col iden.Iden) *IndexCreate {
	i.Columns = append(i.Columns, IndexColumn{Name: iden.Of(col)})
	return i
}

// ColPrefix appends a column with a MySQL prefix length.
func (i *IndexCreate) ColPrefix(col iden.Iden, n uint32) *IndexCreate {
	i.Columns = append(i.Columns, IndexColumn{Name: iden.Of(col), Prefix: n})
	return i
}

// ColOrder appends a column with a sort order.
func (i *IndexCreate) ColOrder(col iden.Iden, o query.Order) *IndexCreate {
	i.Columns = append(i.Columns, IndexColumn{Name: iden.Of(col), Order: &o})
	return i
}

// ColExpr appends an expression, e.g. LOWER(col).
func (i *IndexCreate) ColExpr(x any) *IndexCreate {
	i.Columns = append(i.Columns, IndexColumn{Expr: query.IntoExpr(x)})
	return i
}

// Unique makes the index UNIQUE.
func (i *IndexCreate) Unique() *IndexCreate {
	i.IsUnique = true
	return i
}

// Primary makes it a PRIMARY KEY; only meaningful inside CREATE TABLE.
func (i *IndexCreate) Primary() *IndexCreate {
	i.IsPrimary = true
	return i
}

// NullsNotDistinct adds NULLS NOT DISTINCT (Postgres 15+).
func (i *IndexCreate) NullsNotDistinct() *IndexCreate {
	i.IsNullsNotDistinct = true
	return i
}

// IfNotExists adds IF NOT EXISTS.
func (i *IndexCreate) IfNotExists() *IndexCreate {
	i.IsIfNotExists = true
	return i
}

// Concurrently adds CONCURRENTLY (Postgres).
func (i *IndexCreate) Concurrently() *IndexCreate {
	i.IsConcurrent = true
	return i
}

// FullText makes a MySQL FULLTEXT index.
func (i *IndexCreate) FullText() *IndexCreate {
	i.Using = IndexFullText
	return i
}

// IndexType sets the index method.
func (i *IndexCreate) IndexType(t IndexType) *IndexCreate {
	i.Using = t
	return i
}

// Include appends INCLUDE columns (Postgres).
func (i *IndexCreate) Include(cols ...iden.Iden) *IndexCreate {
	i.Includes = append(i.Includes, iden.All(cols...)...)
	return i
}

// AndWhere makes a partial index.
func (i *IndexCreate) AndWhere(x any) *IndexCreate {
	i.WhereClause.And(x)
	return i
}

// Build renders the statement.
func (i *IndexCreate) Build(sb SchemaBuilder) (string, error) { return Build(i, sb) }

// ToString renders the statement.
func (i *IndexCreate) ToString(sb SchemaBuilder) (string, error) { return Build(i, sb) }

// IndexDrop is DROP INDEX.
type IndexDrop struct {
	IndexName    iden.Dyn
	TableName    *iden.TableName
	IsIfExists   bool
	IsConcurrent bool
}

// DropIndex starts DROP INDEX.
func DropIndex() *IndexDrop { return &IndexDrop{} }

func (*IndexDrop) schemaStatement() {}

// Name sets the index name.
func (d *IndexDrop) Name(name string) *IndexDrop {
	d.IndexName = iden.Name(name)
	return d
}

// Table sets the table; MySQL requires it.
func (d *IndexDrop) Table(t any) *IndexDrop {
	tn := tableName(t)
	d.TableName = &tn
	return d
}

// IfExists adds IF EXISTS.
func (d *IndexDrop) IfExists() *IndexDrop {
	d.IsIfExists = true
	return d
}

// Concurrently adds CONCURRENTLY (Postgres).
func (d *IndexDrop) Concurrently() *IndexDrop {
	d.IsConcurrent = true
	return d
}

// Build renders the statement.
func (d *IndexDrop) Build(sb SchemaBuilder) (string, error) { return Build(d, sb) }

// ToString renders the statement.
func (d *IndexDrop) ToString(sb SchemaBuilder) (string, error) { return Build(d, sb) }
