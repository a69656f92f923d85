package bigquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

var (
	glyph = iden.Name("glyph")
	id    = iden.Name("id")
	font  = iden.Name("font")
	name  = iden.Name("name")
)

func TestBigQuery_Quoting(t *testing.T) {
	assert.Equal(t, "`we\\`ird`", BigQuery.QuoteIdentifier("we`ird"))
	assert.Equal(t, `'it\'s'`, BigQuery.QuoteString("it's"))
}

func TestBigQuery_SetOperatorsSpellDistinct(t *testing.T) {
	sql, err := query.Select().Column(id).From(glyph).
		Union(query.UnionDistinct, query.Select().Column(id).From(font)).
		Union(query.Except, query.Select().Column(id).From(font)).
		ToString(BigQuery)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT `id` FROM `glyph` UNION DISTINCT (SELECT `id` FROM `font`) EXCEPT DISTINCT (SELECT `id` FROM `font`)",
		sql)
}

func TestBigQuery_Literals(t *testing.T) {
	sql, err := query.Select().
		Expr(query.Val([]string{"a", "b"})).
		Expr(query.Val([]byte{0xca, 0xfe})).
		Expr(query.Col(name).IfNull("x")).
		From(font).
		ToString(BigQuery)
	require.NoError(t, err)
	assert.Equal(t, "SELECT ['a', 'b'], FROM_HEX('cafe'), COALESCE(`name`, 'x') FROM `font`", sql)
}

func TestBigQuery_Unsupported(t *testing.T) {
	_, _, err := query.Insert().Into(glyph).Columns(id).Values(int32(1)).
		OnConflict(query.OnConflictColumn(id).DoNothing()).Build(BigQuery)
	require.ErrorIs(t, err, dialect.ErrUnsupported)

	_, _, err = query.Insert().Into(glyph).OrDefaultValues().Build(BigQuery)
	require.ErrorIs(t, err, dialect.ErrUnsupported)

	_, _, err = query.Update().Table(glyph).Value(name, "a").ReturningAll().Build(BigQuery)
	require.ErrorIs(t, err, dialect.ErrUnsupported)
}

func TestBigQuery_ColumnTypes(t *testing.T) {
	tests := []struct {
		name string
		col  *schema.ColumnDef
		want string
	}{
		{"primary key is dropped", schema.Column(id).Integer().PrimaryKey(), "`id` INT64"},
		{"explicit not null stays", schema.Column(name).Varchar().NotNull(), "`name` STRING NOT NULL"},
		{"numeric", schema.Column(id).DecimalLen(10, 2), "`id` NUMERIC(10, 2)"},
		{"big numeric", schema.Column(id).DecimalLen(50, 10), "`id` BIGNUMERIC(50, 10)"},
		{"unbounded decimal", schema.Column(id).Decimal(), "`id` BIGNUMERIC"},
		{"array", schema.Column(id).Array(schema.ColumnType{Kind: schema.TypeString}), "`id` ARRAY<STRING>"},
		{"bytes", schema.Column(id).Blob(), "`id` BYTES"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.CreateTable().Table(font).Col(tt.col).ToString(BigQuery)
			require.NoError(t, err)
			assert.Equal(t, "CREATE TABLE `font` ( "+tt.want+" )", sql)
		})
	}
}

func TestBigQuery_AlterColumnParts(t *testing.T) {
	sql, err := schema.AlterTable().
		Table(font).
		ModifyColumn(schema.Column(name).Text().Null()).
		ToString(BigQuery)
	require.NoError(t, err)
	assert.Equal(t,
		"ALTER TABLE `font` ALTER COLUMN `name` SET DATA TYPE STRING, ALTER COLUMN `name` DROP NOT NULL",
		sql)
}
