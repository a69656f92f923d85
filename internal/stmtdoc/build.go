package stmtdoc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// Cond is a condition tree. A node is either a group (all, any, not) or a
// comparison {col, op, value}.
type Cond struct {
	All []Cond `yaml:"all"`
	Any []Cond `yaml:"any"`
	Not *Cond  `yaml:"not"`

	Col   string `yaml:"col"`
	Op    string `yaml:"op"`
	Value any    `yaml:"value"`
}

// Statement converts the document into a query.Statement or a
// schema.Statement.
func (d *Document) Statement() (any, error) {
	switch {
	case d.Select != nil:
		return d.Select.build()
	case d.Insert != nil:
		return d.Insert.build()
	case d.Update != nil:
		return d.Update.build()
	case d.Delete != nil:
		return d.Delete.build()
	case d.CreateTable != nil:
		return d.CreateTable.build()
	case d.DropTable != nil:
		return d.DropTable.build()
	case d.CreateIndex != nil:
		return d.CreateIndex.build()
	case d.CreateView != nil:
		return d.CreateView.build()
	case d.DropView != nil:
		return d.DropView.build()
	case d.Explain != nil:
		return d.Explain.build()
	}
	return nil, ErrNoStatement
}

func (s *Select) build() (*query.SelectStatement, error) {
	q := query.Select()
	if s.Distinct {
		q.Distinct()
	}
	if len(s.Columns) == 0 {
		q.Expr(query.Star())
	}
	for _, c := range s.Columns {
		q.Expr(column(c))
	}
	if s.From != "" {
		if s.Alias != "" {
			q.FromAs(table(s.From), iden.Name(s.Alias))
		} else {
			q.From(table(s.From))
		}
	}
	for i, j := range s.Joins {
		on, err := j.On.build()
		if err != nil {
			return nil, fmt.Errorf("join %d: %w", i+1, err)
		}
		typ, err := joinType(j.Kind)
		if err != nil {
			return nil, fmt.Errorf("join %d: %w", i+1, err)
		}
		q.JoinOn(typ, table(j.Table), on)
	}
	where, err := s.Where.build()
	if err != nil {
		return nil, fmt.Errorf("where: %w", err)
	}
	if where != nil {
		q.AndWhere(where)
	}
	for _, g := range s.GroupBy {
		q.GroupBy(column(g))
	}
	having, err := s.Having.build()
	if err != nil {
		return nil, fmt.Errorf("having: %w", err)
	}
	if having != nil {
		q.AndHaving(having)
	}
	for _, o := range s.OrderBy {
		q.OrderBy(column(o.Col), order(o.Desc))
	}
	if s.Limit != nil {
		q.Limit(*s.Limit)
	}
	if s.Offset != nil {
		q.Offset(*s.Offset)
	}
	return q, nil
}

func (s *Insert) build() (*query.InsertStatement, error) {
	q := query.Insert().Into(table(s.Into)).Columns(names(s.Columns)...)
	if s.Replace {
		q.Replace()
	}
	for i, row := range s.Values {
		vals := make([]any, len(row))
		for j, x := range row {
			v, err := literal(x)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			vals[j] = v
		}
		if err := q.TryValues(vals...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	if s.Select != nil {
		sel, err := s.Select.build()
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
		q.SelectFrom(sel)
	}
	if len(s.Values) == 0 && s.Select == nil {
		q.OrDefaultValues()
	}
	if oc := s.OnConflict; oc != nil {
		c := query.OnConflictColumns(names(oc.Columns)...)
		switch {
		case oc.DoNothing:
			c.DoNothing()
		case len(oc.Update) > 0:
			c.UpdateColumns(names(oc.Update)...)
		default:
			return nil, errors.New("on_conflict needs update columns or do_nothing")
		}
		q.OnConflict(c)
	}
	if r := returning(s.Returning); r != nil {
		q.Returning(r)
	}
	return q, q.Err()
}

func (s *Update) build() (*query.UpdateStatement, error) {
	if len(s.Set) == 0 {
		return nil, errors.New("update needs at least one set entry")
	}
	q := query.Update().Table(table(s.Table))
	for _, a := range s.Set {
		v, err := literal(a.Value)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", a.Col, err)
		}
		q.Value(iden.Name(a.Col), v)
	}
	where, err := s.Where.build()
	if err != nil {
		return nil, fmt.Errorf("where: %w", err)
	}
	if where != nil {
		q.AndWhere(where)
	}
	if r := returning(s.Returning); r != nil {
		q.Returning(r)
	}
	return q, nil
}

func (s *Delete) build() (*query.DeleteStatement, error) {
	q := query.Delete().FromTable(table(s.From))
	where, err := s.Where.build()
	if err != nil {
		return nil, fmt.Errorf("where: %w", err)
	}
	if where != nil {
		q.AndWhere(where)
	}
	if r := returning(s.Returning); r != nil {
		q.Returning(r)
	}
	return q, nil
}

func (s *CreateTable) build() (*schema.TableCreate, error) {
	t := schema.CreateTable().Table(table(s.Table))
	if s.IfNotExists {
		t.IfNotExists()
	}
	for _, c := range s.Columns {
		def, err := c.build()
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		t.Col(def)
	}
	if len(s.PrimaryKey) > 0 {
		t.PrimaryKey(names(s.PrimaryKey)...)
	}
	return t, nil
}

func (c *Column) build() (*schema.ColumnDef, error) {
	def := schema.Column(iden.Name(c.Name))
	switch strings.ToLower(c.Type) {
	case "smallint":
		def.SmallInteger()
	case "int", "integer":
		def.Integer()
	case "bigint":
		def.BigInteger()
	case "float", "real":
		def.Float()
	case "double":
		def.Double()
	case "decimal", "numeric":
		if c.Precision > 0 {
			def.DecimalLen(c.Precision, c.Scale)
		} else {
			def.Decimal()
		}
	case "varchar", "string":
		if c.Length > 0 {
			def.VarcharLen(c.Length)
		} else {
			def.Varchar()
		}
	case "char":
		def.Char(c.Length)
	case "text":
		def.Text()
	case "bool", "boolean":
		def.Boolean()
	case "date":
		def.Date()
	case "time":
		def.Time()
	case "datetime":
		def.DateTime()
	case "timestamp":
		def.Timestamp()
	case "timestamptz":
		def.TimestampWithTimeZone()
	case "uuid":
		def.UUID()
	case "json":
		def.JSON()
	case "jsonb":
		def.JSONBinary()
	case "blob":
		def.Blob()
	case "":
		return nil, errors.New("missing type")
	default:
		def.Custom(iden.Name(c.Type))
	}
	if c.NotNull {
		def.NotNull()
	}
	if c.AutoIncrement {
		def.AutoIncrement()
	}
	if c.PrimaryKey {
		def.PrimaryKey()
	}
	if c.Unique {
		def.UniqueKey()
	}
	if c.Default != nil {
		v, err := literal(c.Default)
		if err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		def.Default(v)
	}
	if c.Comment != "" {
		def.Comment(c.Comment)
	}
	return def, nil
}

func (s *DropTable) build() (*schema.TableDrop, error) {
	if len(s.Tables) == 0 {
		return nil, errors.New("drop_table needs at least one table")
	}
	t := schema.DropTable()
	for _, name := range s.Tables {
		t.Table(table(name))
	}
	if s.IfExists {
		t.IfExists()
	}
	if s.Cascade {
		t.Cascade()
	}
	return t, nil
}

func (s *CreateIndex) build() (*schema.IndexCreate, error) {
	i := schema.Index().Name(s.Name).Table(table(s.Table))
	for _, c := range s.Columns {
		i.Col(iden.Name(c))
	}
	if s.Unique {
		i.Unique()
	}
	if s.IfNotExists {
		i.IfNotExists()
	}
	where, err := s.Where.build()
	if err != nil {
		return nil, fmt.Errorf("where: %w", err)
	}
	if where != nil {
		i.AndWhere(where)
	}
	return i, nil
}

func (s *CreateView) build() (*schema.ViewCreate, error) {
	if s.Select == nil {
		return nil, errors.New("create_view needs a select")
	}
	sel, err := s.Select.build()
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	v := schema.CreateView().View(table(s.View)).Columns(names(s.Columns)...).Query(sel)
	if s.OrReplace {
		v.OrReplace()
	}
	if s.IfNotExists {
		v.IfNotExists()
	}
	if s.Temporary {
		v.Temporary()
	}
	return v, nil
}

func (s *DropView) build() (*schema.ViewDrop, error) {
	if len(s.Views) == 0 {
		return nil, errors.New("drop_view needs at least one view")
	}
	v := schema.DropView()
	for _, name := range s.Views {
		v.View(table(name))
	}
	if s.IfExists {
		v.IfExists()
	}
	if s.Cascade {
		v.Cascade()
	}
	return v, nil
}

func (s *Explain) build() (*query.ExplainStatement, error) {
	var (
		inner query.Statement
		err   error
		n     int
	)
	if s.Select != nil {
		inner, err = s.Select.build()
		n++
	}
	if s.Insert != nil && err == nil {
		inner, err = s.Insert.build()
		n++
	}
	if s.Update != nil && err == nil {
		inner, err = s.Update.build()
		n++
	}
	if s.Delete != nil && err == nil {
		inner, err = s.Delete.build()
		n++
	}
	if err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}
	if n != 1 {
		return nil, errors.New("explain needs exactly one of select, insert, update or delete")
	}
	e := query.Explain(inner)
	if s.Analyze {
		e.Analyze(true)
	}
	if s.Format != "" {
		e.Format(query.ExplainFormat(strings.ToUpper(s.Format)))
	}
	if s.QueryPlan {
		e.QueryPlan()
	}
	return e, nil
}

// build converts the tree. A nil tree yields a nil condition.
func (c *Cond) build() (any, error) {
	if c == nil {
		return nil, nil
	}
	groups := 0
	for _, set := range []bool{c.All != nil, c.Any != nil, c.Not != nil, c.Col != ""} {
		if set {
			groups++
		}
	}
	if groups != 1 {
		return nil, errors.New("condition must have exactly one of all, any, not or col")
	}

	switch {
	case c.All != nil:
		return c.group(query.All(), c.All)
	case c.Any != nil:
		return c.group(query.Any(), c.Any)
	case c.Not != nil:
		inner, err := c.Not.build()
		if err != nil {
			return nil, err
		}
		return query.All(inner).Not(), nil
	}
	return c.compare()
}

func (c *Cond) group(into *query.Condition, items []Cond) (any, error) {
	for i := range items {
		x, err := items[i].build()
		if err != nil {
			return nil, err
		}
		into.Add(x)
	}
	return into, nil
}

func (c *Cond) compare() (any, error) {
	col := column(c.Col)
	op := strings.ToLower(strings.TrimSpace(c.Op))

	switch op {
	case "is_null":
		return col.IsNull(), nil
	case "is_not_null":
		return col.IsNotNull(), nil
	case "in", "not_in":
		items, ok := c.Value.([]any)
		if !ok {
			return nil, fmt.Errorf("%s on %s needs a list value", op, c.Col)
		}
		vals, err := literals(items)
		if err != nil {
			return nil, err
		}
		if op == "in" {
			return col.In(vals...), nil
		}
		return col.NotIn(vals...), nil
	case "between", "not_between":
		items, ok := c.Value.([]any)
		if !ok || len(items) != 2 {
			return nil, fmt.Errorf("%s on %s needs a two item list", op, c.Col)
		}
		vals, err := literals(items)
		if err != nil {
			return nil, err
		}
		if op == "between" {
			return col.Between(vals[0], vals[1]), nil
		}
		return col.NotBetween(vals[0], vals[1]), nil
	}

	v, err := literal(c.Value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Col, err)
	}
	switch op {
	case "=", "eq", "":
		if v == nil {
			return col.IsNull(), nil
		}
		return col.Eq(v), nil
	case "!=", "<>", "ne":
		return col.Ne(v), nil
	case "<", "lt":
		return col.Lt(v), nil
	case "<=", "lte":
		return col.Lte(v), nil
	case ">", "gt":
		return col.Gt(v), nil
	case ">=", "gte":
		return col.Gte(v), nil
	case "like":
		return col.Like(v), nil
	case "not_like":
		return col.NotLike(v), nil
	}
	return nil, fmt.Errorf("unknown operator %q", c.Op)
}

// literal converts a decoded YAML scalar into a value. nil stays nil so the
// builders write NULL; mappings become JSON.
func literal(x any) (any, error) {
	switch t := x.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return value.JSON(t)
	case []any:
		return nil, errors.New("lists are only allowed as in and between operands")
	}
	v, err := value.TryFrom(x)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func literals(xs []any) ([]any, error) {
	out := make([]any, len(xs))
	for i, x := range xs {
		v, err := literal(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func joinType(kind string) (query.JoinType, error) {
	switch strings.ToLower(kind) {
	case "", "inner":
		return query.InnerJoin, nil
	case "left":
		return query.LeftJoin, nil
	case "right":
		return query.RightJoin, nil
	case "full":
		return query.FullOuterJoin, nil
	}
	return "", fmt.Errorf("unknown join kind %q", kind)
}

func order(desc bool) query.Order {
	if desc {
		return query.Desc
	}
	return query.Asc
}

// table parses "name" or "schema.name".
func table(s string) iden.TableName {
	if sch, name, ok := strings.Cut(s, "."); ok {
		return iden.SchemaTable(iden.Name(sch), iden.Name(name))
	}
	return iden.Table(iden.Name(s))
}

// column parses "*", "name" or "table.name".
func column(s string) query.Ex {
	if s == "*" {
		return query.Star()
	}
	if tbl, name, ok := strings.Cut(s, "."); ok {
		return query.TblCol(iden.Name(tbl), iden.Name(name))
	}
	return query.Col(iden.Name(s))
}

func names(ss []string) []iden.Iden {
	out := make([]iden.Iden, len(ss))
	for i, s := range ss {
		out[i] = iden.Name(s)
	}
	return out
}

func returning(cols []string) *query.Returning {
	switch {
	case len(cols) == 0:
		return nil
	case len(cols) == 1 && cols[0] == "*":
		return query.ReturningAll()
	}
	xs := make([]any, len(cols))
	for i, c := range cols {
		xs[i] = column(c)
	}
	return query.ReturningExprs(xs...)
}
