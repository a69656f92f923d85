package schema

import (
	"fmt"

	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
)

// tableName accepts an iden.TableName or an iden.Iden.
func tableName(t any) iden.TableName {
	switch v := t.(type) {
	case iden.TableName:
		return v
	case iden.Iden:
		return iden.Table(v)
	}
	panic(fmt.Sprintf("schema: unsupported table name %T", t))
}

// TableOptions are MySQL table options.
type TableOptions struct {
	Engine       string
	Collate      string
	CharacterSet string
	Comment      string
}

// TableCreate is CREATE TABLE.
type TableCreate struct {
	TableName     iden.TableName
	IsIfNotExists bool
	IsTemporary   bool
	Columns       []*ColumnDef
	Indexes       []*IndexCreate
	ForeignKeys   []*ForeignKeyCreate
	Checks        []query.Expr
	Options       TableOptions
}

// CreateTable starts CREATE TABLE.
func CreateTable() *TableCreate { return &TableCreate{} }

func (*TableCreate) schemaStatement() {}

// Table sets the table name.
func (t *TableCreate) Table(name any) *TableCreate {
	t.TableName = tableName(name)
	return t
}

// IfNotExists adds IF NOT EXISTS.
func (t *TableCreate) IfNotExists() *TableCreate {
	t.IsIfNotExists = true
	return t
}

// Temporary makes a TEMPORARY table.
func (t *TableCreate) Temporary() *TableCreate {
	t.IsTemporary = true
	return t
}

// Col appends a column definition.
func (t *TableCreate) Col(c *ColumnDef) *TableCreate {
	t.Columns = append(t.Columns, c)
	return t
}

// Index appends a table-level index (PRIMARY KEY, UNIQUE or, in MySQL,
// a plain KEY).
func (t *TableCreate) Index(i *IndexCreate) *TableCreate {
	t.Indexes = append(t.Indexes, i)
	return t
}

// PrimaryKey appends a table-level primary key over cols.
func (t *TableCreate) PrimaryKey(cols ...iden.Iden) *TableCreate {
	i := Index().Primary()
	for _, c := range cols {
		i.Col(c)
	}
	return t.Index(i)
}

// ForeignKey appends a table-level foreign key.
func (t *TableCreate) ForeignKey(f *ForeignKeyCreate) *TableCreate {
	t.ForeignKeys = append(t.ForeignKeys, f)
	return t
}

// Check appends a table-level CHECK constraint.
func (t *TableCreate) Check(x any) *TableCreate {
	t.Checks = append(t.Checks, query.IntoExpr(x))
	return t
}

// Engine sets ENGINE (MySQL).
func (t *TableCreate) Engine(s string) *TableCreate {
	t.Options.Engine = s
	return t
}

// Collate sets COLLATE (MySQL).
func (t *TableCreate) Collate(s string) *TableCreate {
	t.Options.Collate = s
	return t
}

// CharacterSet sets DEFAULT CHARSET (MySQL).
func (t *TableCreate) CharacterSet(s string) *TableCreate {
	t.Options.CharacterSet = s
	return t
}

// Comment sets COMMENT (MySQL).
func (t *TableCreate) Comment(s string) *TableCreate {
	t.Options.Comment = s
	return t
}

// Build renders the statement.
func (t *TableCreate) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TableCreate) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// AlterOption is one ALTER TABLE operation.
type AlterOption interface {
	alterOption()
}

// AddColumnOption is ADD COLUMN [IF NOT EXISTS].
type AddColumnOption struct {
	Column        *ColumnDef
	IsIfNotExists bool
}

// ModifyColumnOption is MODIFY COLUMN (MySQL) or ALTER COLUMN (Postgres).
type ModifyColumnOption struct {
	Column *ColumnDef
}

// RenameColumnOption is RENAME COLUMN from TO to.
type RenameColumnOption struct {
	From iden.Dyn
	To   iden.Dyn
}

// DropColumnOption is DROP COLUMN.
type DropColumnOption struct {
	Name       iden.Dyn
	IsIfExists bool
}

// AddForeignKeyOption is ADD CONSTRAINT ... FOREIGN KEY.
type AddForeignKeyOption struct {
	ForeignKey *ForeignKeyCreate
}

// DropForeignKeyOption is DROP FOREIGN KEY / DROP CONSTRAINT.
type DropForeignKeyOption struct {
	Name iden.Dyn
}

func (AddColumnOption) alterOption()      {}
func (ModifyColumnOption) alterOption()   {}
func (RenameColumnOption) alterOption()   {}
func (DropColumnOption) alterOption()     {}
func (AddForeignKeyOption) alterOption()  {}
func (DropForeignKeyOption) alterOption() {}

// TableAlter is ALTER TABLE. Options render in insertion order.
type TableAlter struct {
	TableName iden.TableName
	Options   []AlterOption
}

// AlterTable starts ALTER TABLE.
func AlterTable() *TableAlter { return &TableAlter{} }

func (*TableAlter) schemaStatement() {}

// Table sets the table name.
func (t *TableAlter) Table(name any) *TableAlter {
	t.TableName = tableName(name)
	return t
}

// AddColumn appends ADD COLUMN.
func (t *TableAlter) AddColumn(c *ColumnDef) *TableAlter {
	t.Options = append(t.Options, AddColumnOption{Column: c})
	return t
}

// AddColumnIfNotExists appends ADD COLUMN IF NOT EXISTS.
func (t *TableAlter) AddColumnIfNotExists(c *ColumnDef) *TableAlter {
	t.Options = append(t.Options, AddColumnOption{Column: c, IsIfNotExists: true})
	return t
}

// ModifyColumn appends a column type/constraint change.
func (t *TableAlter) ModifyColumn(c *ColumnDef) *TableAlter {
	t.Options = append(t.Options, ModifyColumnOption{Column: c})
	return t
}

// RenameColumn appends RENAME COLUMN.
func (t *TableAlter) RenameColumn(from, to iden.Iden) *TableAlter {
	t.Options = append(t.Options, RenameColumnOption{From: iden.Of(from), To: iden.Of(to)})
	return t
}

// DropColumn appends DROP COLUMN.
func (t *TableAlter) DropColumn(name iden.Iden) *TableAlter {
	t.Options = append(t.Options, DropColumnOption{Name: iden.Of(name)})
	return t
}

// DropColumnIfExists appends DROP COLUMN IF EXISTS.
func (t *TableAlter) DropColumnIfExists(name iden.Iden) *TableAlter {
	t.Options = append(t.Options, DropColumnOption{Name: iden.Of(name), IsIfExists: true})
	return t
}

// AddForeignKey appends ADD CONSTRAINT ... FOREIGN KEY.
func (t *TableAlter) AddForeignKey(f *ForeignKeyCreate) *TableAlter {
	t.Options = append(t.Options, AddForeignKeyOption{ForeignKey: f})
	return t
}

// DropForeignKey appends a foreign key drop.
func (t *TableAlter) DropForeignKey(name string) *TableAlter {
	t.Options = append(t.Options, DropForeignKeyOption{Name: iden.Name(name)})
	return t
}

// Build renders the statement.
func (t *TableAlter) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TableAlter) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// TableRename renames a table.
type TableRename struct {
	From iden.TableName
	To   iden.TableName
}

// RenameTable builds a table rename.
func RenameTable(from, to any) *TableRename {
	return &TableRename{From: tableName(from), To: tableName(to)}
}

func (*TableRename) schemaStatement() {}

// Build renders the statement.
func (t *TableRename) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TableRename) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// DropBehavior is CASCADE or RESTRICT.
type DropBehavior string

// Drop behaviors. The zero value writes nothing.
const (
	DropCascade  DropBehavior = "CASCADE"
	DropRestrict DropBehavior = "RESTRICT"
)

// TableDrop is DROP TABLE.
type TableDrop struct {
	Tables     []iden.TableName
	IsIfExists bool
	Behavior   DropBehavior
}

// DropTable starts DROP TABLE.
func DropTable() *TableDrop { return &TableDrop{} }

func (*TableDrop) schemaStatement() {}

// Table appends a table to drop.
func (t *TableDrop) Table(name any) *TableDrop {
	t.Tables = append(t.Tables, tableName(name))
	return t
}

// IfExists adds IF EXISTS.
func (t *TableDrop) IfExists() *TableDrop {
	t.IsIfExists = true
	return t
}

// Cascade adds CASCADE.
func (t *TableDrop) Cascade() *TableDrop {
	t.Behavior = DropCascade
	return t
}

// Restrict adds RESTRICT.
func (t *TableDrop) Restrict() *TableDrop {
	t.Behavior = DropRestrict
	return t
}

// Build renders the statement.
func (t *TableDrop) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TableDrop) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// TableTruncate is TRUNCATE TABLE.
type TableTruncate struct {
	TableName iden.TableName
}

// TruncateTable builds TRUNCATE TABLE name.
func TruncateTable(name any) *TableTruncate {
	return &TableTruncate{TableName: tableName(name)}
}

func (*TableTruncate) schemaStatement() {}

// Build renders the statement.
func (t *TableTruncate) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TableTruncate) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }
