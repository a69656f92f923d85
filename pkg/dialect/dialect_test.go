package dialect_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/dialects/mssql"
	"github.com/leapstack-labs/querykit/pkg/dialects/mysql"
	"github.com/leapstack-labs/querykit/pkg/dialects/oracle"
	"github.com/leapstack-labs/querykit/pkg/dialects/postgres"
	"github.com/leapstack-labs/querykit/pkg/dialects/sqlite"
	"github.com/leapstack-labs/querykit/pkg/format"
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
	"github.com/leapstack-labs/querykit/pkg/value"
)

var (
	glyph = iden.Name("glyph")
	a     = iden.Name("a")
	b     = iden.Name("b")
	c     = iden.Name("c")
)

func TestRegistry(t *testing.T) {
	d, ok := dialect.Get("POSTGRES")
	require.True(t, ok)
	assert.Same(t, postgres.Postgres, d)

	names := dialect.List()
	assert.Subset(t, names, []string{"mysql", "postgres", "sqlite"})
	assert.IsIncreasing(t, names)

	_, err := dialect.Lookup("")
	require.ErrorIs(t, err, dialect.ErrDialectRequired)

	_, err = dialect.Lookup("nope")
	var unknown *dialect.UnknownDialectError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
	assert.Contains(t, unknown.Available, "sqlite")
	assert.Contains(t, err.Error(), `unknown dialect "nope"`)
}

func TestRegisterCustomDialect(t *testing.T) {
	custom := dialect.New(&dialect.Config{
		Name:        "Testing",
		Placeholder: dialect.PlaceholderDollar,
		Identifiers: dialect.IdentifierConfig{Quote: "<", QuoteEnd: ">", Escape: ">>"},
	}).WithReservedWords("Select").Build()
	dialect.Register(custom)

	d, err := dialect.Lookup("testing")
	require.NoError(t, err)
	assert.Equal(t, []string{"select"}, d.ReservedWords())

	sql, vals, err := query.Select().Column(a).From(glyph).AndWhere(query.Col(a).Eq("x")).Build(d)
	require.NoError(t, err)
	assert.Equal(t, "SELECT <a> FROM <glyph> WHERE <a> = $1", sql)
	assert.Equal(t, value.Values{value.String("x")}, vals)
}

func TestBuildAny(t *testing.T) {
	sql, vals, err := dialect.BuildAny(sqlite.SQLite, query.Delete().FromTable(glyph).AndWhere(query.Col(a).Eq(int32(1))))
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "glyph" WHERE "a" = ?`, sql)
	assert.Equal(t, value.Values{value.Int(1)}, vals)

	sql, vals, err = dialect.BuildAny(sqlite.SQLite, schema.DropTable().Table(glyph).IfExists())
	require.NoError(t, err)
	assert.Equal(t, `DROP TABLE IF EXISTS "glyph"`, sql)
	assert.Nil(t, vals)

	_, _, err = dialect.BuildAny(sqlite.SQLite, "SELECT 1")
	require.Error(t, err)

	_, _, err = dialect.BuildAny(nil, query.Select().Expr(query.Val(1)))
	require.ErrorIs(t, err, dialect.ErrDialectRequired)
}

func TestRender(t *testing.T) {
	q := query.Select().Column(a).From(glyph).AndWhere(query.Col(a).Eq("it's"))

	sql, vals, err := dialect.Render("mysql", q, true)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `a` FROM `glyph` WHERE `a` = 'it\\'s'", sql)
	assert.Nil(t, vals)

	sql, vals, err = dialect.Render("postgres", q, false)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "a" FROM "glyph" WHERE "a" = $1`, sql)
	assert.Len(t, vals, 1)

	_, _, err = dialect.Render("cobol", q, false)
	require.Error(t, err)
}

func TestParenthesisation(t *testing.T) {
	tests := []struct {
		name string
		expr any
		want string
	}{
		{
			name: "or inside and",
			expr: query.All(query.Any(query.Col(a).Eq(1), query.Col(b).Eq(2)), query.Col(c).Eq(3)),
			want: `("a" = 1 OR "b" = 2) AND "c" = 3`,
		},
		{
			name: "and inside or keeps parentheses",
			expr: query.Any(query.All(query.Col(a).Eq(1), query.Col(b).Eq(2)), query.Col(c).Eq(3)),
			want: `("a" = 1 AND "b" = 2) OR "c" = 3`,
		},
		{
			name: "left deep and chain",
			expr: query.All(query.All(query.Col(a).Eq(1), query.Col(b).Eq(2)), query.Col(c).Eq(3)),
			want: `"a" = 1 AND "b" = 2 AND "c" = 3`,
		},
		{
			name: "arithmetic precedence",
			expr: query.Col(a).Add(1).Mul(2),
			want: `("a" + 1) * 2`,
		},
		{
			name: "right operand of subtraction",
			expr: query.Col(a).Sub(query.Col(b).Sub(1)),
			want: `"a" - ("b" - 1)`,
		},
		{
			name: "arithmetic under comparison",
			expr: query.Col(a).Add(1).Eq(2),
			want: `"a" + 1 = 2`,
		},
		{
			name: "negated condition",
			expr: query.All(query.Col(a).Eq(1), query.Col(b).Eq(2)).Not(),
			want: `NOT ("a" = 1 AND "b" = 2)`,
		},
		{
			name: "empty in list",
			expr: query.Col(a).In(),
			want: `1 = 2`,
		},
		{
			name: "empty not in list",
			expr: query.Col(a).NotIn(),
			want: `1 = 1`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := query.Select().Expr(tt.expr).ToString(sqlite.SQLite)
			require.NoError(t, err)
			assert.Equal(t, "SELECT "+tt.want, sql)
		})
	}
}

func TestCustomTemplates(t *testing.T) {
	sql, vals, err := query.Select().
		Expr(query.CustWith("$2 + $1 + $$", int32(1), int32(2))).
		Build(postgres.Postgres)
	require.NoError(t, err)
	assert.Equal(t, "SELECT $1 + $2 + $", sql)
	assert.Equal(t, value.Values{value.Int(2), value.Int(1)}, vals)

	_, _, err = query.Select().Expr(query.CustWith("$3", int32(1))).Build(postgres.Postgres)
	require.ErrorIs(t, err, format.ErrBadCustomPlaceholder)
}

func TestUnquoteStringRoundTrip(t *testing.T) {
	inputs := []string{"plain", "it's", `back\slash`, "tab\tand\nnewline", "", "''"}
	for _, d := range []*dialect.Base{mysql.MySQL, postgres.Postgres, sqlite.SQLite} {
		for _, s := range inputs {
			quoted := d.QuoteString(s)
			got, err := d.UnquoteString(quoted)
			require.NoError(t, err, "%s %q", d.Name(), quoted)
			assert.Equal(t, s, got, "%s %q", d.Name(), quoted)
		}
	}

	_, err := sqlite.SQLite.UnquoteString("'dangling")
	require.ErrorIs(t, err, dialect.ErrBadStringLiteral)
	_, err = sqlite.SQLite.UnquoteString("'a'b'")
	require.ErrorIs(t, err, dialect.ErrBadStringLiteral)
}

func TestUnsupportedErrorMessage(t *testing.T) {
	_, err := schema.TruncateTable(glyph).ToString(sqlite.SQLite)
	var unsupported *dialect.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "sqlite: TRUNCATE TABLE is not supported", err.Error())
}

func TestIdentifierQuoting(t *testing.T) {
	tests := []struct {
		d     *dialect.Base
		safe  string
		quote string
		want  string
	}{
		{d: postgres.Postgres, safe: `"size_w"`, quote: `a"b`, want: `"a""b"`},
		{d: mysql.MySQL, safe: "`size_w`", quote: "a`b", want: "`a``b`"},
		{d: mssql.MSSQL, safe: "[size_w]", quote: "a]b", want: "[a]]b]"},
		{d: sqlite.SQLite, safe: `"size_w"`, quote: `a"b`, want: `"a""b"`},
	}
	for _, tt := range tests {
		t.Run(tt.d.Name(), func(t *testing.T) {
			safe := iden.Name("size_w")
			require.True(t, safe.LiteralSafe())
			sql, err := query.Select().Column(safe).ToString(tt.d)
			require.NoError(t, err)
			assert.Equal(t, "SELECT "+tt.safe, sql)

			quoted := iden.Name(tt.quote)
			require.False(t, quoted.LiteralSafe())
			sql, err = query.Select().Column(quoted).ToString(tt.d)
			require.NoError(t, err)
			assert.Equal(t, "SELECT "+tt.want, sql)
		})
	}
}

// inlineMarkers replaces each marker in sql, in order, with the inline
// literal of the matching value.
func inlineMarkers(t *testing.T, d *dialect.Base, sql string, vals value.Values) string {
	t.Helper()
	marker := d.Config().Placeholder.Marker()
	pos := 0
	for i, v := range vals {
		m := marker(i + 1)
		k := strings.Index(sql[pos:], m)
		require.GreaterOrEqual(t, k, 0, "marker %s for value %d", m, i+1)
		lit, err := d.Literal(v)
		require.NoError(t, err)
		at := pos + k
		sql = sql[:at] + lit + sql[at+len(m):]
		pos = at + len(lit)
	}
	return sql
}

func TestBuildMatchesInlineRendering(t *testing.T) {
	statements := []struct {
		name string
		stmt func(d *dialect.Base) query.Statement
	}{
		{
			name: "select",
			stmt: func(*dialect.Base) query.Statement {
				return query.Select().
					Columns(a, b).
					From(glyph).
					AndWhere(query.Col(a).Between(int32(1), int32(10))).
					AndWhere(query.Col(b).In("x", "y's", int32(3))).
					OrderByField(c, query.Asc, int32(4), "z").
					Limit(5).
					Offset(10)
			},
		},
		{
			name: "multi row insert",
			stmt: func(*dialect.Base) query.Statement {
				return query.Insert().
					Into(glyph).
					Columns(a, b).
					Values(int32(1), "one").
					Values(2.5, "two")
			},
		},
		{
			name: "update with like escape",
			stmt: func(*dialect.Base) query.Statement {
				return query.Update().
					Table(glyph).
					Values(query.Assign(a, int32(7)), query.Assign(b, "seven")).
					AndWhere(query.Col(c).Like(query.Like(`50\%`).WithEscape('\\')))
			},
		},
		{
			name: "delete with custom template",
			stmt: func(d *dialect.Base) query.Statement {
				tmpl := "a > $1 AND b < $2"
				if d.Config().Template == format.TemplateSequential {
					tmpl = "a > ? AND b < ?"
				}
				return query.Delete().
					FromTable(glyph).
					AndWhere(query.CustWith(tmpl, int32(3), int32(9)))
			},
		},
		{
			name: "with query",
			stmt: func(*dialect.Base) query.Statement {
				inner := query.Select().Column(a).From(glyph).AndWhere(query.Col(b).Eq("cte"))
				return query.With().
					CTE(query.CTE(iden.Name("picked"), inner)).
					Query(query.Select().Column(a).From(iden.Name("picked")).AndWhere(query.Col(a).Gt(int32(2))))
			},
		},
	}
	dialects := []*dialect.Base{postgres.Postgres, mysql.MySQL, sqlite.SQLite, mssql.MSSQL, oracle.Oracle}

	for _, st := range statements {
		for _, d := range dialects {
			t.Run(st.name+"/"+d.Name(), func(t *testing.T) {
				sql, vals, err := query.Build(st.stmt(d), d)
				require.NoError(t, err)
				require.NotEmpty(t, vals)

				inline, err := query.ToString(st.stmt(d), d)
				require.NoError(t, err)
				assert.Equal(t, inline, inlineMarkers(t, d, sql, vals))
			})
		}
	}
}
