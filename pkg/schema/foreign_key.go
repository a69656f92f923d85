package schema

import "github.com/leapstack-labs/querykit/pkg/iden"

// ForeignKeyAction is an ON DELETE / ON UPDATE action.
type ForeignKeyAction string

// Foreign key actions.
const (
	Restrict   ForeignKeyAction = "RESTRICT"
	Cascade    ForeignKeyAction = "CASCADE"
	SetNull    ForeignKeyAction = "SET NULL"
	NoAction   ForeignKeyAction = "NO ACTION"
	SetDefault ForeignKeyAction = "SET DEFAULT"
)

// ForeignKeyCreate is ALTER TABLE ... ADD CONSTRAINT ... FOREIGN KEY, or a
// table-level foreign key inside CREATE TABLE.
type ForeignKeyCreate struct {
	KeyName     iden.Dyn
	FromTable   *iden.TableName
	FromColumns []iden.Dyn
	ToTable     *iden.TableName
	ToColumns   []iden.Dyn
	OnDelete    ForeignKeyAction
	OnUpdate    ForeignKeyAction
}

// ForeignKey starts a foreign key definition.
func ForeignKey() *ForeignKeyCreate { return &ForeignKeyCreate{} }

func (*ForeignKeyCreate) schemaStatement() {}

// Name sets the constraint name.
func (f *ForeignKeyCreate) Name(name string) *ForeignKeyCreate {
	f.KeyName = iden.Name(name)
	return f
}

// From sets the referencing table and columns.
func (f *ForeignKeyCreate) From(t any, cols ...iden.Iden) *ForeignKeyCreate {
	tn := tableName(t)
	f.FromTable = &tn
	f.FromColumns = append(f.FromColumns, iden.All(cols...)...)
	return f
}

// To sets the referenced table and columns.
func (f *ForeignKeyCreate) To(t any, cols ...iden.Iden) *ForeignKeyCreate {
	tn := tableName(t)
	f.ToTable = &tn
	f.ToColumns = append(f.ToColumns, iden.All(cols...)...)
	return f
}

// Delete sets ON DELETE.
func (f *ForeignKeyCreate) Delete(a ForeignKeyAction) *ForeignKeyCreate {
	f.OnDelete = a
	return f
}

// Update sets ON UPDATE.
func (f *ForeignKeyCreate) Update(a ForeignKeyAction) *ForeignKeyCreate {
	f.OnUpdate = a
	return f
}

// Build renders the statement.
func (f *ForeignKeyCreate) Build(sb SchemaBuilder) (string, error) { return Build(f, sb) }

// ToString renders the statement.
func (f *ForeignKeyCreate) ToString(sb SchemaBuilder) (string, error) { return Build(f, sb) }

// ForeignKeyDrop is ALTER TABLE ... DROP FOREIGN KEY / CONSTRAINT.
type ForeignKeyDrop struct {
	KeyName   iden.Dyn
	TableName *iden.TableName
}

// DropForeignKey starts a foreign key drop.
func DropForeignKey() *ForeignKeyDrop { return &ForeignKeyDrop{} }

func (*ForeignKeyDrop) schemaStatement() {}

// Name sets the constraint name.
func (f *ForeignKeyDrop) Name(name string) *ForeignKeyDrop {
	f.KeyName = iden.Name(name)
	return f
}

// Table sets the table.
func (f *ForeignKeyDrop) Table(t any) *ForeignKeyDrop {
	tn := tableName(t)
	f.TableName = &tn
	return f
}

// Build renders the statement.
func (f *ForeignKeyDrop) Build(sb SchemaBuilder) (string, error) { return Build(f, sb) }

// ToString renders the statement.
func (f *ForeignKeyDrop) ToString(sb SchemaBuilder) (string, error) { return Build(f, sb) }
