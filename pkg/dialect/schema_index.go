package dialect

import (
	"strconv"

	"github.com/leapstack-labs/querykit/pkg/schema"
)

// indexMethod returns the USING method of i, or "" when none is written.
// FULLTEXT is a prefix in dialects that spell it that way.
func (r *renderer) indexMethod(i *schema.IndexCreate) (string, bool) {
	if i.Using == "" || (i.Using == schema.IndexFullText && r.cfg.FullTextPrefix) {
		return "", true
	}
	if !r.cfg.IndexMethods {
		r.unsupported("index method " + string(i.Using))
		return "", false
	}
	if name, ok := r.cfg.IndexMethodNames[i.Using]; ok {
		return name, true
	}
	return string(i.Using), true
}

func (r *renderer) indexColumns(cols []schema.IndexColumn) {
	r.write("(")
	r.w.List(len(cols), ", ", func(i int) {
		c := cols[i]
		if c.Expr != nil {
			r.write("(")
			r.expr(c.Expr)
			r.write(")")
		} else {
			r.iden(c.Name)
		}
		if c.Prefix > 0 && r.cfg.SupportsIndexPrefix {
			r.write(" (")
			r.write(strconv.FormatUint(uint64(c.Prefix), 10))
			r.write(")")
		}
		if c.Order != nil {
			r.order(*c.Order)
		}
	})
	r.write(")")
}

func (r *renderer) indexInclude(i *schema.IndexCreate) {
	if len(i.Includes) == 0 {
		return
	}
	if !r.cfg.SupportsIndexInclude {
		r.unsupported("INCLUDE columns")
		return
	}
	r.write(" INCLUDE (")
	r.idens(i.Includes)
	r.write(")")
}

func (r *renderer) indexCreate(i *schema.IndexCreate) {
	if !r.cfg.SupportsIndexes {
		r.unsupported("CREATE INDEX")
		return
	}
	if i.TableName == nil {
		r.failf("create index without table")
		return
	}
	if i.IsPrimary {
		r.failf("primary key index outside CREATE TABLE")
		return
	}
	if len(i.Columns) == 0 {
		r.failf("create index without columns")
		return
	}
	method, ok := r.indexMethod(i)
	if !ok {
		return
	}
	r.write("CREATE ")
	if i.IsUnique {
		r.write("UNIQUE ")
	}
	if i.Using == schema.IndexFullText && r.cfg.FullTextPrefix {
		r.write("FULLTEXT ")
	}
	r.write("INDEX ")
	if i.IsConcurrent {
		if !r.cfg.SupportsConcurrentIndex {
			r.unsupported("CONCURRENTLY")
			return
		}
		r.write("CONCURRENTLY ")
	}
	if i.IsIfNotExists {
		if !r.cfg.SupportsIfNotExistsIndex {
			r.unsupported("CREATE INDEX IF NOT EXISTS")
			return
		}
		r.write("IF NOT EXISTS ")
	}
	if !i.IndexName.IsZero() {
		r.iden(i.IndexName)
		r.write(" ")
	}
	r.write("ON ")
	r.tableName(*i.TableName)
	if method != "" {
		r.write(" USING ")
		r.write(method)
	}
	r.write(" ")
	r.indexColumns(i.Columns)
	r.indexInclude(i)
	if i.IsNullsNotDistinct {
		if !r.cfg.SupportsNullsNotDistinct {
			r.unsupported("NULLS NOT DISTINCT")
			return
		}
		r.write(" NULLS NOT DISTINCT")
	}
	if !i.WhereClause.IsEmpty() {
		if !r.cfg.SupportsPartialIndex {
			r.unsupported("partial indexes")
			return
		}
		r.write(" WHERE ")
		r.condition(i.WhereClause.Condition())
	}
}

// tableIndex writes an index inside CREATE TABLE.
func (r *renderer) tableIndex(i *schema.IndexCreate) {
	if len(i.Columns) == 0 {
		r.failf("table index without columns")
		return
	}
	if r.cfg.TableKeys {
		r.tableKey(i)
		return
	}
	if !i.IsPrimary && !i.IsUnique {
		r.unsupported("plain indexes inside CREATE TABLE")
		return
	}
	if !i.IndexName.IsZero() {
		r.write("CONSTRAINT ")
		r.iden(i.IndexName)
		r.write(" ")
	}
	if i.IsPrimary {
		r.write("PRIMARY KEY ")
	} else {
		r.write("UNIQUE ")
	}
	if i.IsNullsNotDistinct {
		if !r.cfg.SupportsNullsNotDistinct {
			r.unsupported("NULLS NOT DISTINCT")
			return
		}
		r.write("NULLS NOT DISTINCT ")
	}
	r.indexColumns(i.Columns)
	r.indexInclude(i)
}

// tableKey writes MySQL style PRIMARY KEY, UNIQUE KEY and KEY entries.
func (r *renderer) tableKey(i *schema.IndexCreate) {
	if i.IsPrimary {
		r.write("PRIMARY KEY ")
		r.indexColumns(i.Columns)
		return
	}
	method, ok := r.indexMethod(i)
	if !ok {
		return
	}
	switch {
	case i.IsUnique:
		r.write("UNIQUE KEY ")
	case i.Using == schema.IndexFullText && r.cfg.FullTextPrefix:
		r.write("FULLTEXT KEY ")
	default:
		r.write("KEY ")
	}
	if !i.IndexName.IsZero() {
		r.iden(i.IndexName)
		r.write(" ")
	}
	if method != "" {
		r.write("USING ")
		r.write(method)
		r.write(" ")
	}
	r.indexColumns(i.Columns)
}

func (r *renderer) indexDrop(d *schema.IndexDrop) {
	if !r.cfg.SupportsIndexes {
		r.unsupported("DROP INDEX")
		return
	}
	if d.IndexName.IsZero() {
		r.failf("drop index without name")
		return
	}
	if r.cfg.DropIndexOnTable && d.TableName == nil {
		r.failf("drop index %s without table", d.IndexName.Unquoted())
		return
	}
	r.write("DROP INDEX ")
	if d.IsConcurrent {
		if !r.cfg.SupportsConcurrentIndex {
			r.unsupported("CONCURRENTLY")
			return
		}
		r.write("CONCURRENTLY ")
	}
	if d.IsIfExists {
		r.write("IF EXISTS ")
	}
	if r.cfg.DropIndexOnTable {
		r.iden(d.IndexName)
		r.write(" ON ")
		r.tableName(*d.TableName)
		return
	}
	if d.TableName != nil && d.TableName.Schema != nil {
		parts := d.TableName.Parts()
		r.qualified(append(parts[:len(parts)-1:len(parts)-1], d.IndexName))
		return
	}
	r.iden(d.IndexName)
}

// foreignKeyBody writes [CONSTRAINT n ]FOREIGN KEY (..) REFERENCES t (..).
func (r *renderer) foreignKeyBody(f *schema.ForeignKeyCreate) {
	if f.ToTable == nil || len(f.FromColumns) == 0 || len(f.ToColumns) == 0 {
		r.failf("foreign key needs columns on both sides")
		return
	}
	if !f.KeyName.IsZero() {
		r.write("CONSTRAINT ")
		r.iden(f.KeyName)
		r.write(" ")
	}
	r.write("FOREIGN KEY (")
	r.idens(f.FromColumns)
	r.write(") REFERENCES ")
	r.tableName(*f.ToTable)
	r.write(" (")
	r.idens(f.ToColumns)
	r.write(")")
	if f.OnDelete != "" {
		r.write(" ON DELETE ")
		r.write(string(f.OnDelete))
	}
	if f.OnUpdate != "" {
		r.write(" ON UPDATE ")
		r.write(string(f.OnUpdate))
	}
}

func (r *renderer) foreignKeyCreate(f *schema.ForeignKeyCreate) {
	if !r.cfg.SupportsForeignKeys || !r.cfg.AlterForeignKeys {
		r.unsupported("adding foreign keys to existing tables")
		return
	}
	if f.FromTable == nil {
		r.failf("foreign key without table")
		return
	}
	r.write("ALTER TABLE ")
	r.tableName(*f.FromTable)
	r.write(" ADD ")
	r.foreignKeyBody(f)
}

func (r *renderer) foreignKeyDrop(f *schema.ForeignKeyDrop) {
	if r.cfg.DropForeignKey == "" {
		r.unsupported("dropping foreign keys")
		return
	}
	if f.TableName == nil || f.KeyName.IsZero() {
		r.failf("drop foreign key needs a table and a name")
		return
	}
	r.write("ALTER TABLE ")
	r.tableName(*f.TableName)
	r.write(" ")
	r.write(r.cfg.DropForeignKey)
	r.write(" ")
	r.iden(f.KeyName)
}
