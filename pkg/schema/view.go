package schema

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
)

// CheckOption is the WITH ... CHECK OPTION level of an updatable view.
type CheckOption string

// View check options.
const (
	CheckCascaded CheckOption = "CASCADED"
	CheckLocal    CheckOption = "LOCAL"
)

// ViewCreate is CREATE VIEW.
type ViewCreate struct {
	ViewName      iden.TableName
	ColumnNames   []iden.Dyn
	Select        *query.SelectStatement
	IsOrReplace   bool
	IsIfNotExists bool
	IsTemporary   bool
	IsRecursive   bool
	Check         CheckOption
}

// CreateView starts CREATE VIEW.
func CreateView() *ViewCreate { return &ViewCreate{} }

func (*ViewCreate) schemaStatement() {}

// View sets the view name.
func (v *ViewCreate) View(name any) *ViewCreate {
	v.ViewName = tableName(name)
	return v
}

// Columns names the view's columns.
func (v *ViewCreate) Columns(cols ...iden.Iden) *ViewCreate {
	v.ColumnNames = append(v.ColumnNames, iden.All(cols...)...)
	return v
}

// Query sets the defining SELECT.
func (v *ViewCreate) Query(s *query.SelectStatement) *ViewCreate {
	v.Select = s
	return v
}

// OrReplace adds OR REPLACE.
func (v *ViewCreate) OrReplace() *ViewCreate {
	v.IsOrReplace = true
	return v
}

// IfNotExists adds IF NOT EXISTS.
func (v *ViewCreate) IfNotExists() *ViewCreate {
	v.IsIfNotExists = true
	return v
}

// Temporary adds TEMPORARY.
func (v *ViewCreate) Temporary() *ViewCreate {
	v.IsTemporary = true
	return v
}

// Recursive adds RECURSIVE (Postgres). Recursive views need named columns.
func (v *ViewCreate) Recursive() *ViewCreate {
	v.IsRecursive = true
	return v
}

// CheckOption adds WITH CASCADED|LOCAL CHECK OPTION.
func (v *ViewCreate) CheckOption(o CheckOption) *ViewCreate {
	v.Check = o
	return v
}

// Build renders the statement.
func (v *ViewCreate) Build(sb SchemaBuilder) (string, error) { return Build(v, sb) }

// ToString renders the statement.
func (v *ViewCreate) ToString(sb SchemaBuilder) (string, error) { return Build(v, sb) }

// ViewDrop is DROP VIEW.
type ViewDrop struct {
	Views      []iden.TableName
	IsIfExists bool
	Behavior   DropBehavior
}

// DropView starts DROP VIEW.
func DropView() *ViewDrop { return &ViewDrop{} }

func (*ViewDrop) schemaStatement() {}

// View appends a view.
func (v *ViewDrop) View(name any) *ViewDrop {
	v.Views = append(v.Views, tableName(name))
	return v
}

// IfExists adds IF EXISTS.
func (v *ViewDrop) IfExists() *ViewDrop {
	v.IsIfExists = true
	return v
}

// Cascade adds CASCADE.
func (v *ViewDrop) Cascade() *ViewDrop {
	v.Behavior = DropCascade
	return v
}

// Restrict adds RESTRICT.
func (v *ViewDrop) Restrict() *ViewDrop {
	v.Behavior = DropRestrict
	return v
}

// Build renders the statement.
func (v *ViewDrop) Build(sb SchemaBuilder) (string, error) { return Build(v, sb) }

// ToString renders the statement.
func (v *ViewDrop) ToString(sb SchemaBuilder) (string, error) { return Build(v, sb) }

// ViewRename renames a view.
type ViewRename struct {
	From iden.TableName
	To   iden.TableName
}

// RenameView builds a view rename.
func RenameView(from, to any) *ViewRename {
	return &ViewRename{From: tableName(from), To: tableName(to)}
}

func (*ViewRename) schemaStatement() {}

// Build renders the statement.
func (v *ViewRename) Build(sb SchemaBuilder) (string, error) { return Build(v, sb) }

// ToString renders the statement.
func (v *ViewRename) ToString(sb SchemaBuilder) (string, error) { return Build(v, sb) }
