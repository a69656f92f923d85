package schema

import "github.com/leapstack-labs/querykit/pkg/iden"

// ExtensionCreate is CREATE EXTENSION (Postgres).
type ExtensionCreate struct {
	ExtName       iden.Dyn
	IsIfNotExists bool
	SchemaName    iden.Dyn
	VersionName   string
	IsCascade     bool
}

// CreateExtension starts CREATE EXTENSION name.
func CreateExtension(name string) *ExtensionCreate {
	return &ExtensionCreate{ExtName: iden.Name(name)}
}

func (*ExtensionCreate) schemaStatement() {}

// IfNotExists adds IF NOT EXISTS.
func (e *ExtensionCreate) IfNotExists() *ExtensionCreate {
	e.IsIfNotExists = true
	return e
}

// Schema adds WITH SCHEMA.
func (e *ExtensionCreate) Schema(name string) *ExtensionCreate {
	e.SchemaName = iden.Name(name)
	return e
}

// Version adds VERSION.
func (e *ExtensionCreate) Version(v string) *ExtensionCreate {
	e.VersionName = v
	return e
}

// Cascade adds CASCADE.
func (e *ExtensionCreate) Cascade() *ExtensionCreate {
	e.IsCascade = true
	return e
}

// Build renders the statement.
func (e *ExtensionCreate) Build(sb SchemaBuilder) (string, error) { return Build(e, sb) }

// ToString renders the statement.
func (e *ExtensionCreate) ToString(sb SchemaBuilder) (string, error) { return Build(e, sb) }

// ExtensionDrop is DROP EXTENSION (Postgres).
type ExtensionDrop struct {
	Names      []iden.Dyn
	IsIfExists bool
	Behavior   DropBehavior
}

// DropExtension starts DROP EXTENSION names.
func DropExtension(names ...string) *ExtensionDrop {
	d := &ExtensionDrop{}
	for _, n := range names {
		d.Names = append(d.Names, iden.Name(n))
	}
	return d
}

func (*ExtensionDrop) schemaStatement() {}

// IfExists adds IF EXISTS.
func (e *ExtensionDrop) IfExists() *ExtensionDrop {
	e.IsIfExists = true
	return e
}

// Cascade adds CASCADE.
func (e *ExtensionDrop) Cascade() *ExtensionDrop {
	e.Behavior = DropCascade
	return e
}

// Restrict adds RESTRICT.
func (e *ExtensionDrop) Restrict() *ExtensionDrop {
	e.Behavior = DropRestrict
	return e
}

// Build renders the statement.
func (e *ExtensionDrop) Build(sb SchemaBuilder) (string, error) { return Build(e, sb) }

// ToString renders the statement.
func (e *ExtensionDrop) ToString(sb SchemaBuilder) (string, error) { return Build(e, sb) }
