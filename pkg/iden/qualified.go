package iden

// DatabaseName is the outermost qualifier.
type DatabaseName struct {
	Name Dyn
}

// SchemaName is a schema, optionally qualified by a database.
type SchemaName struct {
	Database *DatabaseName
	Name     Dyn
}

// TableName is a table, optionally qualified by a schema. Qualification is
// left-contiguous: a database can only be given through the schema.
type TableName struct {
	Schema *SchemaName
	Name   Dyn
}

// Table builds an unqualified table name.
func Table(name Iden) TableName {
	return TableName{Name: Of(name)}
}

// SchemaTable builds schema.table.
func SchemaTable(schema, name Iden) TableName {
	return TableName{Schema: &SchemaName{Name: Of(schema)}, Name: Of(name)}
}

// DatabaseSchemaTable builds database.schema.table.
func DatabaseSchemaTable(db, schema, name Iden) TableName {
	return TableName{
		Schema: &SchemaName{Database: &DatabaseName{Name: Of(db)}, Name: Of(schema)},
		Name:   Of(name),
	}
}

// Parts returns the qualifiers followed by the name, outermost first.
func (t TableName) Parts() []Dyn {
	parts := make([]Dyn, 0, 3)
	if t.Schema != nil {
		if t.Schema.Database != nil {
			parts = append(parts, t.Schema.Database.Name)
		}
		parts = append(parts, t.Schema.Name)
	}
	return append(parts, t.Name)
}

// TypeRef names a user-defined type.
type TypeRef struct {
	Schema *SchemaName
	Name   Dyn
}

// Type builds an unqualified type reference.
func Type(name Iden) TypeRef {
	return TypeRef{Name: Of(name)}
}

// SchemaType builds schema.type.
func SchemaType(schema, name Iden) TypeRef {
	return TypeRef{Schema: &SchemaName{Name: Of(schema)}, Name: Of(name)}
}

// Parts returns the qualifiers followed by the name, outermost first.
func (t TypeRef) Parts() []Dyn {
	return TableName(t).Parts()
}

// ColumnName is a column, optionally qualified by a table.
type ColumnName struct {
	Table *TableName
	Name  Dyn
}

// Parts returns the qualifiers followed by the name, outermost first.
func (c ColumnName) Parts() []Dyn {
	if c.Table == nil {
		return []Dyn{c.Name}
	}
	return append(c.Table.Parts(), c.Name)
}

// ColumnKind distinguishes the shapes a ColumnRef can take.
type ColumnKind uint8

const (
	// ColumnPlain is a possibly qualified column.
	ColumnPlain ColumnKind = iota
	// ColumnAsterisk is `*` or `table.*`.
	ColumnAsterisk
	// ColumnNew is the trigger pseudo-row NEW.col.
	ColumnNew
	// ColumnOld is the trigger pseudo-row OLD.col.
	ColumnOld
	// ColumnExcluded is the conflict pseudo-row excluded.col.
	ColumnExcluded
)

// ColumnRef is a reference to a column, an asterisk, or a pseudo-row column.
type ColumnRef struct {
	Kind   ColumnKind
	Column ColumnName
}

// Col builds an unqualified column reference. Asterisk yields `*`.
func Col(name Iden) ColumnRef {
	if _, ok := name.(Asterisk); ok {
		return ColumnRef{Kind: ColumnAsterisk}
	}
	return ColumnRef{Column: ColumnName{Name: Of(name)}}
}

// TableCol builds table.column. Asterisk yields `table.*`.
func TableCol(table, name Iden) ColumnRef {
	t := Table(table)
	return QualifiedCol(t, name)
}

// SchemaTableCol builds schema.table.column.
func SchemaTableCol(schema, table, name Iden) ColumnRef {
	return QualifiedCol(SchemaTable(schema, table), name)
}

// QualifiedCol qualifies a column by an existing table name.
func QualifiedCol(t TableName, name Iden) ColumnRef {
	if _, ok := name.(Asterisk); ok {
		return ColumnRef{Kind: ColumnAsterisk, Column: ColumnName{Table: &t}}
	}
	return ColumnRef{Column: ColumnName{Table: &t, Name: Of(name)}}
}

// NewCol builds NEW.col.
func NewCol(name Iden) ColumnRef {
	return ColumnRef{Kind: ColumnNew, Column: ColumnName{Name: Of(name)}}
}

// OldCol builds OLD.col.
func OldCol(name Iden) ColumnRef {
	return ColumnRef{Kind: ColumnOld, Column: ColumnName{Name: Of(name)}}
}

// ExcludedCol builds excluded.col.
func ExcludedCol(name Iden) ColumnRef {
	return ColumnRef{Kind: ColumnExcluded, Column: ColumnName{Name: Of(name)}}
}

// TableName returns the qualifying table, if any.
func (c ColumnRef) TableName() (TableName, bool) {
	if c.Column.Table == nil {
		return TableName{}, false
	}
	return *c.Column.Table, true
}
