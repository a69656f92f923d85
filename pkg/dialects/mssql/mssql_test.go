package mssql

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

func TestMSSQL_OffsetFetch(t *testing.T) {
	tests := []struct {
		name     string
		q        *query.SelectStatement
		wantSQL  string
		wantVals value.Values
	}{
		{
			name:     "limit and offset bind offset first",
			q:        query.Select().Column(id).From(glyph).OrderBy(id, query.Asc).Limit(10).Offset(20),
			wantSQL:  "SELECT [id] FROM [glyph] ORDER BY [id] ASC OFFSET @P1 ROWS FETCH NEXT @P2 ROWS ONLY",
			wantVals: value.Values{value.BigUnsigned(20), value.BigUnsigned(10)},
		},
		{
			name:     "limit only starts at zero",
			q:        query.Select().Column(id).From(glyph).OrderBy(id, query.Asc).Limit(5),
			wantSQL:  "SELECT [id] FROM [glyph] ORDER BY [id] ASC OFFSET 0 ROWS FETCH NEXT @P1 ROWS ONLY",
			wantVals: value.Values{value.BigUnsigned(5)},
		},
		{
			name:     "offset only",
			q:        query.Select().Column(id).From(glyph).OrderBy(id, query.Asc).Offset(7),
			wantSQL:  "SELECT [id] FROM [glyph] ORDER BY [id] ASC OFFSET @P1 ROWS",
			wantVals: value.Values{value.BigUnsigned(7)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, vals, err := tt.q.Build(MSSQL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantVals, vals)
		})
	}
}

func TestMSSQL_Literals(t *testing.T) {
	sql, err := query.Insert().Into(glyph).Columns(id, name).Values(true, []byte{0xca, 0xfe}).ToString(MSSQL)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO [glyph] ([id], [name]) VALUES (1, 0xCAFE)", sql)

	assert.Equal(t, "[we]]ird]", MSSQL.QuoteIdentifier("we]ird"))
}

func TestMSSQL_FunctionSpellings(t *testing.T) {
	sql, err := query.Select().
		Expr(query.Col(name).IfNull("x")).
		Expr(query.CharLength(query.Col(name))).
		Expr(query.Random()).
		From(font).
		ToString(MSSQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT ISNULL([name], 'x'), LEN([name]), RAND() FROM [font]", sql)
}

func TestMSSQL_Output(t *testing.T) {
	sql, err := query.Insert().Into(glyph).Columns(id).Values(int32(1)).ReturningAll().ToString(MSSQL)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO [glyph] ([id]) OUTPUT INSERTED.* VALUES (1)", sql)

	sql, err = query.Insert().Into(glyph).Columns(id).Values(int32(1)).ReturningCol(id).ToString(MSSQL)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO [glyph] ([id]) OUTPUT INSERTED.[id] VALUES (1)", sql)
}

func TestMSSQL_RejectsUpsert(t *testing.T) {
	_, _, err := query.Insert().Into(glyph).Columns(id).Values(int32(1)).
		OnConflict(query.OnConflictColumn(id).DoNothing()).
		Build(MSSQL)
	require.ErrorIs(t, err, dialect.ErrUnsupported)
}

func TestMSSQL_Schema(t *testing.T) {
	tests := []struct {
		name string
		stmt schema.Statement
		want string
	}{
		{
			name: "identity primary key",
			stmt: schema.CreateTable().Table(font).
				Col(schema.Column(id).Integer().AutoIncrement().PrimaryKey()).
				Col(schema.Column(name).Varchar().NotNull()),
			want: "CREATE TABLE [font] ( [id] int IDENTITY(1,1) NOT NULL PRIMARY KEY, [name] nvarchar(max) NOT NULL )",
		},
		{
			name: "bounded varchar",
			stmt: schema.CreateTable().Table(font).Col(schema.Column(name).VarcharLen(64)),
			want: "CREATE TABLE [font] ( [name] nvarchar(64) )",
		},
		{
			name: "add column without COLUMN keyword",
			stmt: schema.AlterTable().Table(font).AddColumn(schema.Column(id).Integer()),
			want: "ALTER TABLE [font] ADD [id] int",
		},
		{
			name: "alter column",
			stmt: schema.AlterTable().Table(font).ModifyColumn(schema.Column(name).VarcharLen(64).NotNull()),
			want: "ALTER TABLE [font] ALTER COLUMN [name] nvarchar(64) NOT NULL",
		},
		{
			name: "rename with sp_rename",
			stmt: schema.RenameTable(glyph, font),
			want: "EXEC sp_rename 'glyph', 'font'",
		},
		{
			name: "drop index on table",
			stmt: schema.DropIndex().Name("idx").Table(font),
			want: "DROP INDEX [idx] ON [font]",
		},
		{
			name: "index with include",
			stmt: schema.Index().Name("idx").Table(font).Col(name).Include(id),
			want: "CREATE INDEX [idx] ON [font] ([name]) INCLUDE ([id])",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.Build(tt.stmt, MSSQL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestMSSQL_RejectsRenameColumn(t *testing.T) {
	_, err := schema.AlterTable().Table(font).RenameColumn(name, iden.Name("title")).ToString(MSSQL)
	require.ErrorIs(t, err, dialect.ErrUnsupported)
}

func TestMSSQL_ViewsAndConstraints(t *testing.T) {
	sel := query.Select().Column(id).From(glyph)
	tests := []struct {
		name string
		stmt schema.Statement
		want string
	}{
		{
			name: "create view",
			stmt: schema.CreateView().View(iden.Name("v")).Query(sel),
			want: `CREATE VIEW [v] AS SELECT [id] FROM [glyph]`,
		},
		{
			name: "rename view",
			stmt: schema.RenameView(iden.Name("v"), iden.Name("w")),
			want: `EXEC sp_rename 'v', 'w'`,
		},
		{
			name: "primary key",
			stmt: schema.AddConstraint().Table(glyph).Name("pk_glyph").Primary().Col(id),
			want: `ALTER TABLE [glyph] ADD CONSTRAINT [pk_glyph] PRIMARY KEY ([id])`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.Build(tt.stmt, MSSQL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}

	_, err := schema.Build(schema.CreateView().View(iden.Name("v")).OrReplace().Query(sel), MSSQL)
	assert.ErrorIs(t, err, dialect.ErrUnsupported)

	_, _, err = query.Explain(sel).Build(MSSQL)
	assert.ErrorIs(t, err, dialect.ErrUnsupported)
}
