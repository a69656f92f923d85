package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
	"github.com/leapstack-labs/querykit/pkg/value"
)

func args(vals value.Values) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v.Interface()
	}
	return out
}

func TestSQLite_RoundTripAgainstDatabase(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	aspect := iden.Name("aspect")
	label := iden.Name("label")

	ddl, err := schema.CreateTable().
		Table(glyph).
		IfNotExists().
		Col(schema.Column(id).Integer().AutoIncrement().PrimaryKey()).
		Col(schema.Column(aspect).Double().NotNull()).
		Col(schema.Column(label).Varchar().Default("none")).
		ToString(SQLite)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, ddl)
	require.NoError(t, err)

	insert, vals, err := query.Insert().
		Into(glyph).
		Columns(aspect, label).
		Values(1.5, "it's").
		Values(2.5, "plain").
		Build(SQLite)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, insert, args(vals)...)
	require.NoError(t, err)

	sel, vals, err := query.Select().
		Column(label).
		From(glyph).
		AndWhere(query.Col(aspect).Gt(2.0)).
		Build(SQLite)
	require.NoError(t, err)
	var got string
	require.NoError(t, db.QueryRowContext(ctx, sel, args(vals)...).Scan(&got))
	assert.Equal(t, "plain", got)

	// Inline rendering must survive the database's own parser.
	inline, err := query.Select().
		Column(label).
		From(glyph).
		AndWhere(query.Col(label).Eq("it's")).
		ToString(SQLite)
	require.NoError(t, err)
	require.NoError(t, db.QueryRowContext(ctx, inline).Scan(&got))
	assert.Equal(t, "it's", got)
}
