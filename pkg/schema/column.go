package schema

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
)

// Generated is GENERATED ALWAYS AS (expr) STORED|VIRTUAL.
type Generated struct {
	Expr   query.Expr
	Stored bool
}

// ColumnSpec holds the column constraints. Renderers emit them in a fixed
// order regardless of the order they were set in.
type ColumnSpec struct {
	// Nullable is nil when unspecified, false for NOT NULL.
	Nullable      *bool
	Default       query.Expr
	AutoIncrement bool
	Unique        bool
	PrimaryKey    bool
	Check         query.Expr
	Generated     *Generated
	Extra         string
	Comment       string
}

// NotNull reports whether NOT NULL is rendered. Primary keys and
// auto-increment columns are NOT NULL unless NULL was asked for.
func (s ColumnSpec) NotNull() bool {
	if s.Nullable != nil {
		return !*s.Nullable
	}
	return s.PrimaryKey || s.AutoIncrement
}

// ColumnDef is a column definition.
type ColumnDef struct {
	Name iden.Dyn
	Type *ColumnType
	Spec ColumnSpec
}

// Column starts a column definition.
func Column(name iden.Iden) *ColumnDef {
	return &ColumnDef{Name: iden.Of(name)}
}

func (c *ColumnDef) typ(t ColumnType) *ColumnDef {
	c.Type = &t
	return c
}

// Char sets char(n). n == 0 leaves the length to the dialect.
func (c *ColumnDef) Char(n uint32) *ColumnDef { return c.typ(ColumnType{Kind: TypeChar, Length: n}) }

// Varchar sets varchar without an explicit length.
func (c *ColumnDef) Varchar() *ColumnDef { return c.typ(ColumnType{Kind: TypeString}) }

// VarcharLen sets varchar(n).
func (c *ColumnDef) VarcharLen(n uint32) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeString, Length: n})
}

// Text sets text.
func (c *ColumnDef) Text() *ColumnDef { return c.typ(ColumnType{Kind: TypeText}) }

// TinyInteger sets a 1-byte integer.
func (c *ColumnDef) TinyInteger() *ColumnDef { return c.typ(ColumnType{Kind: TypeTinyInteger}) }

// SmallInteger sets a 2-byte integer.
func (c *ColumnDef) SmallInteger() *ColumnDef { return c.typ(ColumnType{Kind: TypeSmallInteger}) }

// Integer sets a 4-byte integer.
func (c *ColumnDef) Integer() *ColumnDef { return c.typ(ColumnType{Kind: TypeInteger}) }

// BigInteger sets an 8-byte integer.
func (c *ColumnDef) BigInteger() *ColumnDef { return c.typ(ColumnType{Kind: TypeBigInteger}) }

// TinyUnsigned sets an unsigned 1-byte integer.
func (c *ColumnDef) TinyUnsigned() *ColumnDef { return c.typ(ColumnType{Kind: TypeTinyUnsigned}) }

// SmallUnsigned sets an unsigned 2-byte integer.
func (c *ColumnDef) SmallUnsigned() *ColumnDef { return c.typ(ColumnType{Kind: TypeSmallUnsigned}) }

// Unsigned sets an unsigned 4-byte integer.
func (c *ColumnDef) Unsigned() *ColumnDef { return c.typ(ColumnType{Kind: TypeUnsigned}) }

// BigUnsigned sets an unsigned 8-byte integer.
func (c *ColumnDef) BigUnsigned() *ColumnDef { return c.typ(ColumnType{Kind: TypeBigUnsigned}) }

// Float sets a single precision float.
func (c *ColumnDef) Float() *ColumnDef { return c.typ(ColumnType{Kind: TypeFloat}) }

// Double sets a double precision float.
func (c *ColumnDef) Double() *ColumnDef { return c.typ(ColumnType{Kind: TypeDouble}) }

// Decimal sets decimal without precision.
func (c *ColumnDef) Decimal() *ColumnDef { return c.typ(ColumnType{Kind: TypeDecimal}) }

// DecimalLen sets decimal(precision, scale).
func (c *ColumnDef) DecimalLen(precision, scale uint32) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeDecimal, Precision: precision, Scale: scale})
}

// DateTime sets a timestamp without zone.
func (c *ColumnDef) DateTime() *ColumnDef { return c.typ(ColumnType{Kind: TypeDateTime}) }

// Timestamp sets timestamp.
func (c *ColumnDef) Timestamp() *ColumnDef { return c.typ(ColumnType{Kind: TypeTimestamp}) }

// TimestampWithTimeZone sets timestamp with time zone.
func (c *ColumnDef) TimestampWithTimeZone() *ColumnDef {
	return c.typ(ColumnType{Kind: TypeTimestampWithTimeZone})
}

// Time sets time.
func (c *ColumnDef) Time() *ColumnDef { return c.typ(ColumnType{Kind: TypeTime}) }

// Date sets date.
func (c *ColumnDef) Date() *ColumnDef { return c.typ(ColumnType{Kind: TypeDate}) }

// Year sets the MySQL year type.
func (c *ColumnDef) Year() *ColumnDef { return c.typ(ColumnType{Kind: TypeYear}) }

// Interval sets interval with optional fields ("YEAR TO MONTH").
func (c *ColumnDef) Interval(fields string) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeInterval, Fields: fields})
}

// Binary sets binary(n).
func (c *ColumnDef) Binary(n uint32) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeBinary, Length: n})
}

// VarBinary sets varbinary(n).
func (c *ColumnDef) VarBinary(n uint32) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeVarBinary, Length: n})
}

// Bit sets bit(n).
func (c *ColumnDef) Bit(n uint32) *ColumnDef { return c.typ(ColumnType{Kind: TypeBit, Length: n}) }

// VarBit sets varbit(n).
func (c *ColumnDef) VarBit(n uint32) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeVarBit, Length: n})
}

// Blob sets blob (bytea in Postgres).
func (c *ColumnDef) Blob() *ColumnDef { return c.typ(ColumnType{Kind: TypeBlob}) }

// Boolean sets bool.
func (c *ColumnDef) Boolean() *ColumnDef { return c.typ(ColumnType{Kind: TypeBoolean}) }

// Money sets money.
func (c *ColumnDef) Money() *ColumnDef { return c.typ(ColumnType{Kind: TypeMoney}) }

// JSON sets json.
func (c *ColumnDef) JSON() *ColumnDef { return c.typ(ColumnType{Kind: TypeJSON}) }

// JSONBinary sets jsonb.
func (c *ColumnDef) JSONBinary() *ColumnDef { return c.typ(ColumnType{Kind: TypeJSONBinary}) }

// UUID sets uuid.
func (c *ColumnDef) UUID() *ColumnDef { return c.typ(ColumnType{Kind: TypeUUID}) }

// Custom sets a user-defined type name, written verbatim.
func (c *ColumnDef) Custom(name iden.Iden) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeCustom, Name: iden.Of(name)})
}

// Enum sets an enum type. Postgres refers to the named type; MySQL
// inlines the labels.
func (c *ColumnDef) Enum(name iden.Iden, variants ...string) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeEnum, Name: iden.Of(name), Variants: variants})
}

// Array sets an array of elem.
func (c *ColumnDef) Array(elem ColumnType) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeArray, Elem: &elem})
}

// Cidr sets cidr.
func (c *ColumnDef) Cidr() *ColumnDef { return c.typ(ColumnType{Kind: TypeCidr}) }

// Inet sets inet.
func (c *ColumnDef) Inet() *ColumnDef { return c.typ(ColumnType{Kind: TypeInet}) }

// MacAddr sets macaddr.
func (c *ColumnDef) MacAddr() *ColumnDef { return c.typ(ColumnType{Kind: TypeMacAddr}) }

// LTree sets ltree.
func (c *ColumnDef) LTree() *ColumnDef { return c.typ(ColumnType{Kind: TypeLTree}) }

// Vector sets vector(n).
func (c *ColumnDef) Vector(n uint32) *ColumnDef {
	return c.typ(ColumnType{Kind: TypeVector, Length: n})
}

// As sets an arbitrary column type.
func (c *ColumnDef) As(t ColumnType) *ColumnDef { return c.typ(t) }

// NotNull adds NOT NULL.
func (c *ColumnDef) NotNull() *ColumnDef {
	f := false
	c.Spec.Nullable = &f
	return c
}

// Null adds NULL.
func (c *ColumnDef) Null() *ColumnDef {
	t := true
	c.Spec.Nullable = &t
	return c
}

// Default sets DEFAULT x. Plain values are written as literals.
func (c *ColumnDef) Default(x any) *ColumnDef {
	c.Spec.Default = query.IntoExpr(x)
	return c
}

// AutoIncrement marks the column auto-incrementing.
func (c *ColumnDef) AutoIncrement() *ColumnDef {
	c.Spec.AutoIncrement = true
	return c
}

// UniqueKey adds UNIQUE.
func (c *ColumnDef) UniqueKey() *ColumnDef {
	c.Spec.Unique = true
	return c
}

// PrimaryKey adds PRIMARY KEY.
func (c *ColumnDef) PrimaryKey() *ColumnDef {
	c.Spec.PrimaryKey = true
	return c
}

// Check adds CHECK (x).
func (c *ColumnDef) Check(x any) *ColumnDef {
	c.Spec.Check = query.IntoExpr(x)
	return c
}

// GeneratedStored adds GENERATED ALWAYS AS (x) STORED.
func (c *ColumnDef) GeneratedStored(x any) *ColumnDef {
	c.Spec.Generated = &Generated{Expr: query.IntoExpr(x), Stored: true}
	return c
}

// GeneratedVirtual adds GENERATED ALWAYS AS (x) VIRTUAL.
func (c *ColumnDef) GeneratedVirtual(x any) *ColumnDef {
	c.Spec.Generated = &Generated{Expr: query.IntoExpr(x)}
	return c
}

// Extra appends raw SQL after the other constraints.
func (c *ColumnDef) Extra(sql string) *ColumnDef {
	c.Spec.Extra = sql
	return c
}

// Comment sets a column comment (MySQL).
func (c *ColumnDef) Comment(s string) *ColumnDef {
	c.Spec.Comment = s
	return c
}
