package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
	"github.com/leapstack-labs/querykit/pkg/value"
)

var (
	glyph = iden.Name("glyph")
	id    = iden.Name("id")
	font  = iden.Name("font")
	name  = iden.Name("name")
)

func TestOracle_ColonMarkersAndFetch(t *testing.T) {
	sql, vals, err := query.Select().
		Column(id).
		FromAs(glyph, iden.Name("g")).
		AndWhere(query.Col(name).Eq("a")).
		Limit(3).
		Build(Oracle)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "glyph" "g" WHERE "name" = :1 OFFSET 0 ROWS FETCH NEXT :2 ROWS ONLY`, sql)
	assert.Equal(t, value.Values{value.String("a"), value.BigUnsigned(3)}, vals)
}

func TestOracle_MinusAndNVL(t *testing.T) {
	sql, err := query.Select().
		Expr(query.Col(name).IfNull("x")).
		From(glyph).
		Union(query.Except, query.Select().Column(name).From(font)).
		ToString(Oracle)
	require.NoError(t, err)
	assert.Equal(t, `SELECT NVL("name", 'x') FROM "glyph" MINUS (SELECT "name" FROM "font")`, sql)
}

func TestOracle_Literals(t *testing.T) {
	sql, err := query.Insert().Into(glyph).Columns(id, name).Values(false, []byte{0x0a, 0xff}).ToString(Oracle)
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "glyph" ("id", "name") VALUES (0, HEXTORAW('0AFF'))`, sql)
}

func TestOracle_DefaultValuesRow(t *testing.T) {
	sql, err := query.Insert().Into(glyph).Columns(id, name).OrDefaultValues().ToString(Oracle)
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "glyph" ("id", "name") VALUES (DEFAULT, DEFAULT)`, sql)
}

func TestOracle_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
	}{
		{
			name: "returning",
			build: func() error {
				_, _, err := query.Delete().FromTable(glyph).ReturningAll().Build(Oracle)
				return err
			},
		},
		{
			name: "upsert",
			build: func() error {
				_, _, err := query.Insert().Into(glyph).Columns(id).Values(int32(1)).
					OnConflict(query.OnConflictColumn(id).DoNothing()).Build(Oracle)
				return err
			},
		},
		{
			name: "modify column",
			build: func() error {
				_, err := schema.AlterTable().Table(font).ModifyColumn(schema.Column(name).Text()).ToString(Oracle)
				return err
			},
		},
		{
			name: "time column",
			build: func() error {
				_, err := schema.CreateTable().Table(font).Col(schema.Column(name).Time()).ToString(Oracle)
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.build(), dialect.ErrUnsupported)
		})
	}
}

func TestOracle_CreateTable(t *testing.T) {
	sql, err := schema.CreateTable().
		Table(font).
		Col(schema.Column(id).Integer().AutoIncrement().PrimaryKey()).
		Col(schema.Column(name).Varchar().NotNull()).
		Col(schema.Column(iden.Name("active")).Boolean()).
		ToString(Oracle)
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE "font" ( "id" number(10) GENERATED BY DEFAULT AS IDENTITY NOT NULL PRIMARY KEY, "name" varchar2(255) NOT NULL, "active" number(1) )`,
		sql)
}

func TestOracle_ViewsConstraintsAndExplain(t *testing.T) {
	sel := query.Select().Column(id).From(glyph).AndWhere(query.Col(id).Eq(int32(1)))
	tests := []struct {
		name string
		stmt schema.Statement
		want string
	}{
		{
			name: "create or replace view",
			stmt: schema.CreateView().View(iden.Name("v")).OrReplace().Query(sel),
			want: `CREATE OR REPLACE VIEW "v" AS SELECT "id" FROM "glyph" WHERE "id" = 1`,
		},
		{
			name: "rename view",
			stmt: schema.RenameView(iden.Name("v"), iden.Name("w")),
			want: `RENAME "v" TO "w"`,
		},
		{
			name: "unique constraint",
			stmt: schema.AddConstraint().Table(glyph).Name("uq_name").Unique().Col(name),
			want: `ALTER TABLE "glyph" ADD CONSTRAINT "uq_name" UNIQUE ("name")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.Build(tt.stmt, Oracle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}

	sql, vals, err := query.Explain(sel).Build(Oracle)
	require.NoError(t, err)
	assert.Equal(t, `EXPLAIN PLAN FOR SELECT "id" FROM "glyph" WHERE "id" = :1`, sql)
	assert.Equal(t, value.Values{value.Int(1)}, vals)

	_, _, err = query.Explain(sel).Analyze(true).Build(Oracle)
	assert.ErrorIs(t, err, dialect.ErrUnsupported)
}
