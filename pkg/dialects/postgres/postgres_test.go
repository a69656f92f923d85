package postgres

import (
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
	"github.com/leapstack-labs/querykit/pkg/value"
)

var (
	character = iden.Name("character")
	sizeW     = iden.Name("size_w")
	glyph     = iden.Name("glyph")
	aspect    = iden.Name("aspect")
	image     = iden.Name("image")
	id        = iden.Name("id")
	font      = iden.Name("font")
	name      = iden.Name("name")
)

func TestPostgres_Registered(t *testing.T) {
	d, ok := dialect.Get("postgres")
	require.True(t, ok)
	assert.Equal(t, "postgres", d.Name())
	assert.Contains(t, d.ReservedWords(), "select")
}

func TestPostgres_SelectBindsDollarMarkers(t *testing.T) {
	sql, vals, err := query.Select().
		Columns(character, sizeW).
		From(character).
		AndWhere(query.Col(sizeW).Eq(int32(3))).
		Build(Postgres)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "character", "size_w" FROM "character" WHERE "size_w" = $1`, sql)
	assert.Equal(t, value.Values{value.Int(3)}, vals)
}

func TestPostgres_UpsertInline(t *testing.T) {
	sql, err := query.Insert().
		Into(glyph).
		Columns(aspect, image).
		Values(3.1415, "hex").
		OnConflict(query.OnConflictColumn(id).UpdateColumn(aspect)).
		ToString(Postgres)
	require.NoError(t, err)
	assert.Equal(t,
		`INSERT INTO "glyph" ("aspect", "image") VALUES (3.1415, 'hex') ON CONFLICT ("id") DO UPDATE SET "aspect" = "excluded"."aspect"`,
		sql)
}

func TestPostgres_RecursiveCTEParenthesisesUnionArms(t *testing.T) {
	base := query.Select().Column(id).From(glyph)
	step := query.Select().Column(id).From(font)
	cte := query.CTE(iden.Name("cte"), base.Union(query.UnionAll, step)).Cols(id)
	q := query.Select().Column(iden.Star).From(iden.Name("cte")).
		With(query.With().Recursive(true).CTE(cte))

	sql, err := q.ToString(Postgres)
	require.NoError(t, err)
	assert.Equal(t,
		`WITH RECURSIVE "cte" ("id") AS (SELECT "id" FROM "glyph" UNION ALL (SELECT "id" FROM "font")) SELECT * FROM "cte"`,
		sql)
}

func TestPostgres_SerialPrimaryKey(t *testing.T) {
	sql, err := schema.CreateTable().
		Table(font).
		Col(schema.Column(id).Integer().AutoIncrement().PrimaryKey()).
		Col(schema.Column(name).Varchar().NotNull()).
		ToString(Postgres)
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE "font" ( "id" serial NOT NULL PRIMARY KEY, "name" varchar NOT NULL )`,
		sql)
}

func TestPostgres_ColumnTypes(t *testing.T) {
	tests := []struct {
		name string
		col  *schema.ColumnDef
		want string
	}{
		{"tiny integer", schema.Column(id).TinyInteger(), `"id" smallint`},
		{"double", schema.Column(id).Double(), `"id" double precision`},
		{"binary", schema.Column(id).Binary(16), `"id" bytea`},
		{"blob", schema.Column(id).Blob(), `"id" bytea`},
		{"decimal", schema.Column(id).DecimalLen(10, 2), `"id" decimal(10, 2)`},
		{"json binary", schema.Column(id).JSONBinary(), `"id" jsonb`},
		{"enum", schema.Column(id).Enum(iden.Name("mood"), "happy", "sad"), `"id" "mood"`},
		{"array", schema.Column(id).Array(schema.ColumnType{Kind: schema.TypeInteger}), `"id" integer[]`},
		{"big serial", schema.Column(id).BigInteger().AutoIncrement(), `"id" bigserial NOT NULL`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.CreateTable().Table(font).Col(tt.col).ToString(Postgres)
			require.NoError(t, err)
			assert.Equal(t, `CREATE TABLE "font" ( `+tt.want+` )`, sql)
		})
	}
}

func TestPostgres_FunctionSpellings(t *testing.T) {
	sql, err := query.Select().
		Expr(query.Col(name).IfNull("x")).
		From(font).
		ToString(Postgres)
	require.NoError(t, err)
	assert.Equal(t, `SELECT COALESCE("name", 'x') FROM "font"`, sql)
}

func TestPostgres_ReturningAndDistinctOn(t *testing.T) {
	sql, vals, err := query.Delete().
		FromTable(glyph).
		AndWhere(query.Col(id).Eq(int32(1))).
		ReturningAll().
		Build(Postgres)
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "glyph" WHERE "id" = $1 RETURNING *`, sql)
	assert.Len(t, vals, 1)

	sql, err = query.Select().DistinctOn(name).Column(name).From(font).ToString(Postgres)
	require.NoError(t, err)
	assert.Equal(t, `SELECT DISTINCT ON ("name") "name" FROM "font"`, sql)
}

func TestPostgres_DefaultValuesRepeatsRow(t *testing.T) {
	tests := []struct {
		name string
		stmt *query.InsertStatement
		want string
	}{
		{
			name: "single row",
			stmt: query.Insert().Into(glyph).OrDefaultValues().ReturningCol(id),
			want: `INSERT INTO "glyph" VALUES (DEFAULT) RETURNING "id"`,
		},
		{
			name: "several rows",
			stmt: query.Insert().Into(glyph).OrDefaultValuesMany(2),
			want: `INSERT INTO "glyph" VALUES (DEFAULT), (DEFAULT)`,
		},
		{
			name: "columns named",
			stmt: query.Insert().Into(glyph).Columns(id, image).OrDefaultValues(),
			want: `INSERT INTO "glyph" ("id", "image") VALUES (DEFAULT, DEFAULT)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, vals, err := tt.stmt.Build(Postgres)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
			assert.Empty(t, vals)
		})
	}
}

func TestPostgres_TypesAndTriggers(t *testing.T) {
	tests := []struct {
		name string
		stmt schema.Statement
		want string
	}{
		{
			name: "create enum",
			stmt: schema.CreateType().Name(iden.Name("mood")).AsEnum("happy", "sad"),
			want: `CREATE TYPE "mood" AS ENUM ('happy', 'sad')`,
		},
		{
			name: "drop type",
			stmt: schema.DropType().Name(iden.Name("mood")).IfExists().Cascade(),
			want: `DROP TYPE IF EXISTS "mood" CASCADE`,
		},
		{
			name: "add value",
			stmt: schema.AlterType().Name(iden.Name("mood")).AddValue("ok").Before("sad"),
			want: `ALTER TYPE "mood" ADD VALUE 'ok' BEFORE 'sad'`,
		},
		{
			name: "trigger function",
			stmt: schema.CreateTrigger("audit").On(glyph, schema.After, schema.OnInsert).Execute(iden.Name("log_glyph")),
			want: `CREATE TRIGGER "audit" AFTER INSERT ON "glyph" FOR EACH ROW EXECUTE FUNCTION "log_glyph"()`,
		},
		{
			name: "drop trigger",
			stmt: schema.DropTrigger("audit").Table(glyph),
			want: `DROP TRIGGER "audit" ON "glyph"`,
		},
		{
			name: "extension",
			stmt: schema.CreateExtension("ltree").IfNotExists(),
			want: `CREATE EXTENSION IF NOT EXISTS ltree`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.Build(tt.stmt, Postgres)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestPostgres_QuotingMatchesLibPQ(t *testing.T) {
	for _, s := range []string{"plain", "it's", `back\slash`, `both\'s`} {
		assert.Equal(t, strings.TrimSpace(pq.QuoteLiteral(s)), Postgres.QuoteString(s), "literal %q", s)
	}
	for _, s := range []string{"plain", `dou"ble`, "with space"} {
		assert.Equal(t, pq.QuoteIdentifier(s), Postgres.QuoteIdentifier(s), "identifier %q", s)
	}
}

func TestPostgres_ViewsAndConstraints(t *testing.T) {
	sel := query.Select().Columns(id, image).From(glyph).AndWhere(query.Col(aspect).Gt(int32(2)))
	tests := []struct {
		name string
		stmt schema.Statement
		want string
	}{
		{
			name: "create or replace view",
			stmt: schema.CreateView().View(iden.Name("wide")).OrReplace().Columns(id, image).Query(sel).CheckOption(schema.CheckLocal),
			want: `CREATE OR REPLACE VIEW "wide" ("id", "image") AS SELECT "id", "image" FROM "glyph" WHERE "aspect" > 2 WITH LOCAL CHECK OPTION`,
		},
		{
			name: "temporary recursive view",
			stmt: schema.CreateView().View(iden.Name("tree")).Temporary().Recursive().Columns(id).Query(query.Select().Column(id).From(glyph)),
			want: `CREATE TEMPORARY RECURSIVE VIEW "tree" ("id") AS SELECT "id" FROM "glyph"`,
		},
		{
			name: "drop views",
			stmt: schema.DropView().View(iden.Name("wide")).View(iden.Name("tree")).IfExists().Cascade(),
			want: `DROP VIEW IF EXISTS "wide", "tree" CASCADE`,
		},
		{
			name: "rename view",
			stmt: schema.RenameView(iden.Name("wide"), iden.Name("broad")),
			want: `ALTER VIEW "wide" RENAME TO "broad"`,
		},
		{
			name: "named primary key",
			stmt: schema.AddConstraint().Table(glyph).Name("glyph_pk").Primary().Col(id),
			want: `ALTER TABLE "glyph" ADD CONSTRAINT "glyph_pk" PRIMARY KEY ("id")`,
		},
		{
			name: "unique nulls not distinct with include",
			stmt: schema.AddConstraint().Table(glyph).Unique().NullsNotDistinct().Col(image).Include(aspect),
			want: `ALTER TABLE "glyph" ADD UNIQUE NULLS NOT DISTINCT ("image") INCLUDE ("aspect")`,
		},
		{
			name: "unique using index",
			stmt: schema.AddConstraint().Table(glyph).Name("glyph_image").Unique().UsingIndex("idx_image"),
			want: `ALTER TABLE "glyph" ADD CONSTRAINT "glyph_image" UNIQUE USING INDEX "idx_image"`,
		},
		{
			name: "check",
			stmt: schema.AddConstraint().Table(glyph).Name("id_range").Check(query.Col(id).Lt(int32(20))),
			want: `ALTER TABLE "glyph" ADD CONSTRAINT "id_range" CHECK ("id" < 20)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.Build(tt.stmt, Postgres)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestPostgres_ViewAndConstraintMisuse(t *testing.T) {
	sel := query.Select().Column(id).From(glyph)
	tests := []struct {
		name        string
		stmt        schema.Statement
		unsupported bool
	}{
		{name: "no query", stmt: schema.CreateView().View(iden.Name("v"))},
		{name: "replace and if not exists", stmt: schema.CreateView().View(iden.Name("v")).OrReplace().IfNotExists().Query(sel)},
		{name: "if not exists", stmt: schema.CreateView().View(iden.Name("v")).IfNotExists().Query(sel), unsupported: true},
		{name: "recursive without columns", stmt: schema.CreateView().View(iden.Name("v")).Recursive().Query(sel)},
		{name: "constraint without kind", stmt: schema.AddConstraint().Table(glyph).Name("c")},
		{name: "using index with columns", stmt: schema.AddConstraint().Table(glyph).Unique().Col(id).UsingIndex("i")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Build(tt.stmt, Postgres)
			require.Error(t, err)
			assert.Equal(t, tt.unsupported, errors.Is(err, dialect.ErrUnsupported))
		})
	}
}

func TestPostgres_Explain(t *testing.T) {
	sel := query.Select().Column(character).From(character).AndWhere(query.Col(sizeW).Eq(int32(3)))
	tests := []struct {
		name string
		stmt *query.ExplainStatement
		want string
	}{
		{
			name: "bare",
			stmt: query.Explain(sel),
			want: `EXPLAIN SELECT "character" FROM "character" WHERE "size_w" = $1`,
		},
		{
			name: "options in fixed order",
			stmt: query.Explain(sel).Format(query.ExplainJSON).Verbose(false).Analyze(true).Serialize(query.SerializeText).Buffers(true),
			want: `EXPLAIN (ANALYZE, VERBOSE FALSE, BUFFERS, SERIALIZE TEXT, FORMAT JSON) SELECT "character" FROM "character" WHERE "size_w" = $1`,
		},
		{
			name: "every flag",
			stmt: query.Explain(sel).Costs(true).Settings(false).GenericPlan(true).Wal(true).Timing(false).Summary(true).Memory(true),
			want: `EXPLAIN (COSTS, SETTINGS FALSE, GENERIC_PLAN, WAL, TIMING FALSE, SUMMARY, MEMORY) SELECT "character" FROM "character" WHERE "size_w" = $1`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, vals, err := tt.stmt.Build(Postgres)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
			assert.Equal(t, value.Values{value.Int(3)}, vals)
		})
	}

	for _, stmt := range []*query.ExplainStatement{
		query.Explain(sel).Format(query.ExplainTree),
		query.Explain(sel).QueryPlan(),
		query.Explain(sel).Into("plan"),
		query.ExplainConnection(7),
	} {
		_, _, err := stmt.Build(Postgres)
		assert.ErrorIs(t, err, dialect.ErrUnsupported)
	}
}
