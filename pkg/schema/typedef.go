package schema

import "github.com/leapstack-labs/querykit/pkg/iden"

// TypeCreate is CREATE TYPE name AS ENUM (...) (Postgres).
type TypeCreate struct {
	TypeName iden.TypeRef
	Variants []string
}

// CreateType starts CREATE TYPE.
func CreateType() *TypeCreate { return &TypeCreate{} }

func (*TypeCreate) schemaStatement() {}

// Name sets the type name.
func (t *TypeCreate) Name(name iden.Iden) *TypeCreate {
	t.TypeName = iden.Type(name)
	return t
}

// SchemaName sets a schema-qualified type name.
func (t *TypeCreate) SchemaName(schema, name iden.Iden) *TypeCreate {
	t.TypeName = iden.SchemaType(schema, name)
	return t
}

// AsEnum sets the enum labels.
func (t *TypeCreate) AsEnum(variants ...string) *TypeCreate {
	t.Variants = append(t.Variants, variants...)
	return t
}

// Build renders the statement.
func (t *TypeCreate) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TypeCreate) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// TypeDrop is DROP TYPE.
type TypeDrop struct {
	Names      []iden.TypeRef
	IsIfExists bool
	Behavior   DropBehavior
}

// DropType starts DROP TYPE.
func DropType() *TypeDrop { return &TypeDrop{} }

func (*TypeDrop) schemaStatement() {}

// Name appends a type to drop.
func (t *TypeDrop) Name(name iden.Iden) *TypeDrop {
	t.Names = append(t.Names, iden.Type(name))
	return t
}

// IfExists adds IF EXISTS.
func (t *TypeDrop) IfExists() *TypeDrop {
	t.IsIfExists = true
	return t
}

// Cascade adds CASCADE.
func (t *TypeDrop) Cascade() *TypeDrop {
	t.Behavior = DropCascade
	return t
}

// Restrict adds RESTRICT.
func (t *TypeDrop) Restrict() *TypeDrop {
	t.Behavior = DropRestrict
	return t
}

// Build renders the statement.
func (t *TypeDrop) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TypeDrop) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// TypeAlterOption is one ALTER TYPE operation.
type TypeAlterOption interface {
	typeAlterOption()
}

// AddValueOption is ADD VALUE [IF NOT EXISTS] 'v' [BEFORE|AFTER 'w'].
type AddValueOption struct {
	Value         string
	IsIfNotExists bool
	Before        string
	After         string
}

// RenameTypeOption is RENAME TO name.
type RenameTypeOption struct {
	To iden.Dyn
}

// RenameValueOption is RENAME VALUE 'a' TO 'b'.
type RenameValueOption struct {
	From string
	To   string
}

func (AddValueOption) typeAlterOption()    {}
func (RenameTypeOption) typeAlterOption()  {}
func (RenameValueOption) typeAlterOption() {}

// TypeAlter is ALTER TYPE.
type TypeAlter struct {
	TypeName iden.TypeRef
	Option   TypeAlterOption
}

// AlterType starts ALTER TYPE.
func AlterType() *TypeAlter { return &TypeAlter{} }

func (*TypeAlter) schemaStatement() {}

// Name sets the type name.
func (t *TypeAlter) Name(name iden.Iden) *TypeAlter {
	t.TypeName = iden.Type(name)
	return t
}

// AddValue sets ADD VALUE v.
func (t *TypeAlter) AddValue(v string) *TypeAlter {
	t.Option = AddValueOption{Value: v}
	return t
}

// AddValueIfNotExists sets ADD VALUE IF NOT EXISTS v.
func (t *TypeAlter) AddValueIfNotExists(v string) *TypeAlter {
	t.Option = AddValueOption{Value: v, IsIfNotExists: true}
	return t
}

// Before positions an added value before another.
func (t *TypeAlter) Before(v string) *TypeAlter {
	if o, ok := t.Option.(AddValueOption); ok {
		o.Before, o.After = v, ""
		t.Option = o
	}
	return t
}

// After positions an added value after another.
func (t *TypeAlter) After(v string) *TypeAlter {
	if o, ok := t.Option.(AddValueOption); ok {
		o.After, o.Before = v, ""
		t.Option = o
	}
	return t
}

// RenameTo renames the type.
func (t *TypeAlter) RenameTo(name iden.Iden) *TypeAlter {
	t.Option = RenameTypeOption{To: iden.Of(name)}
	return t
}

// RenameValue renames an enum label.
func (t *TypeAlter) RenameValue(from, to string) *TypeAlter {
	t.Option = RenameValueOption{From: from, To: to}
	return t
}

// Build renders the statement.
func (t *TypeAlter) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TypeAlter) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }
