package databend

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

func TestDatabend_ReplaceOn(t *testing.T) {
	sql, vals, err := query.Insert().
		Into(glyph).
		Columns(id, name).
		Values(int32(1), "a").
		OnConflict(query.OnConflictColumn(id).UpdateColumn(name)).
		Build(Databend)
	require.NoError(t, err)
	assert.Equal(t, "REPLACE INTO `glyph` (`id`, `name`) ON (`id`) VALUES (?, ?)", sql)
	assert.Equal(t, value.Values{value.Int(1), value.String("a")}, vals)

	_, _, err = query.Insert().
		Into(glyph).
		Columns(id).
		Values(int32(1)).
		OnConflict(query.OnConflictColumn(id).DoNothing()).
		Build(Databend)
	require.ErrorIs(t, err, dialect.ErrUnsupported)
}

func TestDatabend_Literals(t *testing.T) {
	sql, err := query.Select().
		Expr(query.Val([]int32{1, 2})).
		Expr(query.Val("it's")).
		From(font).
		ToString(Databend)
	require.NoError(t, err)
	assert.Equal(t, "SELECT [1, 2], 'it\\'s' FROM `font`", sql)
}

func TestDatabend_CreateTable(t *testing.T) {
	tests := []struct {
		name string
		col  *schema.ColumnDef
		want string
	}{
		{"keys are dropped", schema.Column(id).BigInteger().PrimaryKey(), "`id` bigint"},
		{"comment", schema.Column(name).Text().Comment("label"), "`name` string COMMENT 'label'"},
		{"binary length dropped", schema.Column(name).VarBinary(16), "`name` binary"},
		{"vector", schema.Column(name).Vector(3), "`name` vector(3)"},
		{"json", schema.Column(name).JSON(), "`name` variant"},
		{"array", schema.Column(id).Array(schema.ColumnType{Kind: schema.TypeInteger}), "`id` ARRAY(int)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.CreateTable().Table(font).Col(tt.col).ToString(Databend)
			require.NoError(t, err)
			assert.Equal(t, "CREATE TABLE `font` ( "+tt.want+" )", sql)
		})
	}
}

func TestDatabend_Unsupported(t *testing.T) {
	_, err := schema.Index().Name("idx").Table(font).Col(name).ToString(Databend)
	require.ErrorIs(t, err, dialect.ErrUnsupported)

	_, _, err = query.Delete().FromTable(glyph).ReturningAll().Build(Databend)
	require.ErrorIs(t, err, dialect.ErrUnsupported)
}
