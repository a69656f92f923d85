package dialect

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

// defaultTypes is the shared spelling of portable column types.
var defaultTypes = map[schema.TypeKind]string{
	schema.TypeChar:                  "char",
	schema.TypeString:                "varchar",
	schema.TypeText:                  "text",
	schema.TypeTinyInteger:           "tinyint",
	schema.TypeSmallInteger:          "smallint",
	schema.TypeInteger:               "integer",
	schema.TypeBigInteger:            "bigint",
	schema.TypeTinyUnsigned:          "tinyint unsigned",
	schema.TypeSmallUnsigned:         "smallint unsigned",
	schema.TypeUnsigned:              "integer unsigned",
	schema.TypeBigUnsigned:           "bigint unsigned",
	schema.TypeFloat:                 "float",
	schema.TypeDouble:                "double",
	schema.TypeDecimal:               "decimal",
	schema.TypeDateTime:              "datetime",
	schema.TypeTimestamp:             "timestamp",
	schema.TypeTimestampWithTimeZone: "timestamp with time zone",
	schema.TypeTime:                  "time",
	schema.TypeDate:                  "date",
	schema.TypeYear:                  "year",
	schema.TypeInterval:              "interval",
	schema.TypeBinary:                "binary",
	schema.TypeVarBinary:             "varbinary",
	schema.TypeBit:                   "bit",
	schema.TypeVarBit:                "varbit",
	schema.TypeBlob:                  "blob",
	schema.TypeBoolean:               "bool",
	schema.TypeMoney:                 "money",
	schema.TypeJSON:                  "json",
	schema.TypeJSONBinary:            "jsonb",
	schema.TypeUUID:                  "uuid",
	schema.TypeCidr:                  "cidr",
	schema.TypeInet:                  "inet",
	schema.TypeMacAddr:               "macaddr",
	schema.TypeLTree:                 "ltree",
	schema.TypeVector:                "vector",
}

var serialTypes = map[schema.TypeKind]string{
	schema.TypeSmallInteger: "smallserial",
	schema.TypeInteger:      "serial",
	schema.TypeBigInteger:   "bigserial",
}

// typeSpelling returns the dialect name of k; empty means unsupported.
func (c *Config) typeSpelling(k schema.TypeKind) string {
	if s, ok := c.Types[k]; ok {
		return s
	}
	return defaultTypes[k]
}

func (r *renderer) columnType(t *schema.ColumnType) {
	if r.d.columnType != nil {
		if s, ok := r.d.columnType(t); ok {
			r.write(s)
			return
		}
	}
	switch t.Kind {
	case schema.TypeCustom:
		r.write(t.Name.Unquoted())
	case schema.TypeEnum:
		switch {
		case r.cfg.InlineEnums:
			r.write("ENUM(")
			r.w.List(len(t.Variants), ", ", func(i int) { r.write(r.d.QuoteString(t.Variants[i])) })
			r.write(")")
		case r.cfg.SupportsUserTypes:
			r.iden(t.Name)
		default:
			r.columnType(&schema.ColumnType{Kind: schema.TypeText})
		}
	case schema.TypeArray:
		if !r.cfg.SupportsArrays {
			r.unsupported("array columns")
			return
		}
		if t.Elem == nil {
			r.failf("array column without element type")
			return
		}
		if r.cfg.ArrayTypeOpen != "" {
			r.write(r.cfg.ArrayTypeOpen)
			r.columnType(t.Elem)
			r.write(r.cfg.ArrayTypeClose)
			return
		}
		r.columnType(t.Elem)
		r.write("[]")
	default:
		name := r.cfg.typeSpelling(t.Kind)
		if name == "" {
			r.unsupported(t.Kind.String() + " columns")
			return
		}
		r.write(name)
		r.typeParams(t)
	}
}

func (r *renderer) typeParams(t *schema.ColumnType) {
	switch t.Kind {
	case schema.TypeInterval:
		if t.Fields != "" {
			r.write(" ")
			r.write(t.Fields)
		}
	case schema.TypeChar, schema.TypeBinary, schema.TypeVarBinary,
		schema.TypeBit, schema.TypeVarBit, schema.TypeVector:
		if t.HasLength() {
			r.length(t.Length)
		}
	case schema.TypeString:
		switch {
		case t.HasLength():
			r.length(t.Length)
		case r.cfg.VarcharLength > 0:
			r.length(r.cfg.VarcharLength)
		}
	case schema.TypeDecimal, schema.TypeMoney:
		if t.HasPrecision() {
			r.write("(")
			r.write(strconv.FormatUint(uint64(t.Precision), 10))
			r.write(", ")
			r.write(strconv.FormatUint(uint64(t.Scale), 10))
			r.write(")")
		}
	}
}

func (r *renderer) length(n uint32) {
	r.write("(")
	r.write(strconv.FormatUint(uint64(n), 10))
	r.write(")")
}

// serialType returns the serial spelling for auto-increment integers.
func (r *renderer) serialType(c *schema.ColumnDef) (string, bool) {
	if !r.cfg.SerialTypes || !c.Spec.AutoIncrement || c.Type == nil {
		return "", false
	}
	s, ok := serialTypes[c.Type.Kind]
	return s, ok
}

// columnDef writes a column definition. Constraints are written in a fixed
// order: type, nullability, default, auto increment, unique, primary key,
// check, generated, extra, comment.
func (r *renderer) columnDef(c *schema.ColumnDef) {
	spec := c.Spec
	keys := !r.cfg.OmitColumnKeys
	r.iden(c.Name)

	serial, isSerial := r.serialType(c)
	switch {
	case isSerial:
		r.write(" ")
		r.write(serial)
	case c.Type != nil:
		r.write(" ")
		r.columnType(c.Type)
	}

	autoInc := spec.AutoIncrement && keys && !isSerial
	if autoInc && r.cfg.AutoIncrement == "" {
		r.unsupported("auto increment")
		return
	}
	if autoInc && r.cfg.AutoIncrementPosition == AutoIncrementAfterType {
		r.write(" ")
		r.write(r.cfg.AutoIncrement)
	}

	notNull := spec.NotNull()
	if !keys {
		notNull = spec.Nullable != nil && !*spec.Nullable
	}
	switch {
	case notNull:
		r.write(" NOT NULL")
	case spec.Nullable != nil:
		r.write(" NULL")
	}
	if spec.Default != nil {
		r.write(" DEFAULT ")
		r.expr(spec.Default)
	}
	if autoInc && r.cfg.AutoIncrementPosition == AutoIncrementAfterNull {
		r.write(" ")
		r.write(r.cfg.AutoIncrement)
	}
	if spec.Unique {
		r.write(" UNIQUE")
	}
	if spec.PrimaryKey && keys {
		r.write(" PRIMARY KEY")
	}
	if autoInc && r.cfg.AutoIncrementPosition == AutoIncrementAfterPrimaryKey {
		r.write(" ")
		r.write(r.cfg.AutoIncrement)
	}
	if spec.Check != nil {
		r.write(" CHECK (")
		r.expr(spec.Check)
		r.write(")")
	}
	if g := spec.Generated; g != nil {
		r.write(" GENERATED ALWAYS AS (")
		r.expr(g.Expr)
		if g.Stored {
			r.write(") STORED")
		} else {
			r.write(") VIRTUAL")
		}
	}
	if spec.Extra != "" {
		r.write(" ")
		r.write(spec.Extra)
	}
	if spec.Comment != "" && r.cfg.ColumnComments {
		r.write(" COMMENT ")
		r.write(r.d.QuoteString(spec.Comment))
	}
}

func (r *renderer) tableCreate(t *schema.TableCreate) {
	if len(t.Columns) == 0 && len(t.Indexes) == 0 {
		r.failf("create table %s without columns", t.TableName.Name.Unquoted())
		return
	}
	r.write("CREATE ")
	if t.IsTemporary {
		r.write("TEMPORARY ")
	}
	r.write("TABLE ")
	if t.IsIfNotExists {
		r.write("IF NOT EXISTS ")
	}
	r.tableName(t.TableName)
	r.write(" ( ")

	n := 0
	sep := func() {
		if n > 0 {
			r.write(", ")
		}
		n++
	}
	for _, c := range t.Columns {
		sep()
		r.columnDef(c)
	}
	for _, i := range t.Indexes {
		sep()
		r.tableIndex(i)
	}
	for _, f := range t.ForeignKeys {
		if !r.cfg.SupportsForeignKeys {
			r.unsupported("foreign keys")
			return
		}
		sep()
		r.foreignKeyBody(f)
	}
	for _, c := range t.Checks {
		sep()
		r.write("CHECK (")
		r.expr(c)
		r.write(")")
	}
	r.write(" )")
	r.tableOptions(t.Options)
}

func (r *renderer) tableOptions(o schema.TableOptions) {
	if o == (schema.TableOptions{}) {
		return
	}
	if !r.cfg.TableOptions {
		r.unsupported("table options")
		return
	}
	if o.Engine != "" {
		r.write(" ENGINE=")
		r.write(o.Engine)
	}
	if o.CharacterSet != "" {
		r.write(" DEFAULT CHARSET=")
		r.write(o.CharacterSet)
	}
	if o.Collate != "" {
		r.write(" COLLATE=")
		r.write(o.Collate)
	}
	if o.Comment != "" {
		r.write(" COMMENT ")
		r.write(r.d.QuoteString(o.Comment))
	}
}

func (r *renderer) tableAlter(t *schema.TableAlter) {
	if len(t.Options) == 0 {
		r.failf("alter table %s without options", t.TableName.Name.Unquoted())
		return
	}
	if len(t.Options) > 1 && !r.cfg.AlterMultiple {
		r.unsupported("multiple ALTER TABLE options")
		return
	}
	r.write("ALTER TABLE ")
	r.tableName(t.TableName)
	r.write(" ")
	r.w.List(len(t.Options), ", ", func(i int) { r.alterOption(t.Options[i]) })
}

func (r *renderer) alterOption(o schema.AlterOption) {
	switch o := o.(type) {
	case schema.AddColumnOption:
		r.write("ADD ")
		if !r.cfg.AddColumnBare {
			r.write("COLUMN ")
		}
		if o.IsIfNotExists {
			r.write("IF NOT EXISTS ")
		}
		r.columnDef(o.Column)
	case schema.ModifyColumnOption:
		r.modifyColumn(o.Column)
	case schema.RenameColumnOption:
		if r.cfg.RenameTable == RenameSpRename {
			r.unsupported("RENAME COLUMN")
			return
		}
		r.write("RENAME COLUMN ")
		r.iden(o.From)
		r.write(" TO ")
		r.iden(o.To)
	case schema.DropColumnOption:
		r.write("DROP COLUMN ")
		if o.IsIfExists {
			r.write("IF EXISTS ")
		}
		r.iden(o.Name)
	case schema.AddForeignKeyOption:
		if !r.cfg.SupportsForeignKeys || !r.cfg.AlterForeignKeys {
			r.unsupported("adding foreign keys to existing tables")
			return
		}
		r.write("ADD ")
		r.foreignKeyBody(o.ForeignKey)
	case schema.DropForeignKeyOption:
		if r.cfg.DropForeignKey == "" {
			r.unsupported("dropping foreign keys")
			return
		}
		r.write(r.cfg.DropForeignKey)
		r.write(" ")
		r.iden(o.Name)
	default:
		r.failf("unknown alter table option %T", o)
	}
}

func (r *renderer) modifyColumn(c *schema.ColumnDef) {
	switch r.cfg.AlterColumn {
	case AlterColumnModify:
		r.write("MODIFY COLUMN ")
		r.columnDef(c)
	case AlterColumnPlain:
		r.write("ALTER COLUMN ")
		r.columnDef(c)
	case AlterColumnType:
		r.alterColumnParts(c, " TYPE ")
	case AlterColumnSetDataType:
		r.alterColumnParts(c, " SET DATA TYPE ")
	default:
		r.unsupported("modifying columns")
	}
}

// alterColumnParts writes one ALTER COLUMN per changed attribute.
func (r *renderer) alterColumnParts(c *schema.ColumnDef, typeKeyword string) {
	spec := c.Spec
	n := 0
	part := func() {
		if n > 0 {
			r.write(", ")
		}
		n++
		r.write("ALTER COLUMN ")
		r.iden(c.Name)
	}
	if c.Type != nil {
		part()
		r.write(typeKeyword)
		r.columnType(c.Type)
	}
	if spec.Nullable != nil {
		if !*spec.Nullable && r.cfg.AlterColumn == AlterColumnSetDataType {
			r.unsupported("SET NOT NULL")
			return
		}
		part()
		if *spec.Nullable {
			r.write(" DROP NOT NULL")
		} else {
			r.write(" SET NOT NULL")
		}
	}
	if spec.Default != nil {
		part()
		r.write(" SET DEFAULT ")
		r.expr(spec.Default)
	}
	if r.cfg.AlterColumn == AlterColumnSetDataType {
		if spec.Unique || spec.PrimaryKey {
			r.unsupported("adding keys to existing columns")
		}
	} else {
		if spec.Unique {
			if n > 0 {
				r.write(", ")
			}
			n++
			r.write("ADD UNIQUE (")
			r.iden(c.Name)
			r.write(")")
		}
		if spec.PrimaryKey {
			if n > 0 {
				r.write(", ")
			}
			n++
			r.write("ADD PRIMARY KEY (")
			r.iden(c.Name)
			r.write(")")
		}
	}
	if n == 0 {
		r.failf("modify column %s without changes", c.Name.Unquoted())
	}
}

func (r *renderer) tableRename(t *schema.TableRename) {
	r.rename("TABLE", r.cfg.RenameTable, t.From, t.To)
}

// rename writes a table or view rename. MySQL and SQL Server rename views
// with their table statements.
func (r *renderer) rename(object string, style RenameTableStyle, from, to iden.TableName) {
	switch style {
	case RenameTableKeyword:
		r.write("RENAME TABLE ")
		r.tableName(from)
		r.write(" TO ")
		r.tableName(to)
	case RenameSpRename:
		r.write("EXEC sp_rename ")
		r.write(r.d.QuoteString(plainName(from)))
		r.write(", ")
		r.write(r.d.QuoteString(to.Name.Unquoted()))
	case RenameStatement:
		r.write("RENAME ")
		r.tableName(from)
		r.write(" TO ")
		r.tableName(to)
	case RenameUnsupported:
		r.unsupported("RENAME " + object)
	default:
		r.write("ALTER ")
		r.write(object)
		r.write(" ")
		r.tableName(from)
		r.write(" RENAME TO ")
		r.tableName(to)
	}
}

// plainName joins the unquoted parts of a table name with dots.
func plainName(t iden.TableName) string {
	parts := t.Parts()
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.Unquoted()
	}
	return strings.Join(names, ".")
}

func (r *renderer) tableDrop(t *schema.TableDrop) {
	if len(t.Tables) == 0 {
		r.failf("drop table without tables")
		return
	}
	r.write("DROP TABLE ")
	if t.IsIfExists {
		r.write("IF EXISTS ")
	}
	r.w.List(len(t.Tables), ", ", func(i int) { r.tableName(t.Tables[i]) })
	if r.cfg.DropBehavior {
		r.dropBehavior(t.Behavior)
	}
}

func (r *renderer) tableTruncate(t *schema.TableTruncate) {
	if !r.cfg.SupportsTruncate {
		r.unsupported("TRUNCATE TABLE")
		return
	}
	r.write("TRUNCATE TABLE ")
	r.tableName(t.TableName)
}
