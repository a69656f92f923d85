package mysql

import (
	"errors"
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
	glyph  = iden.Name("glyph")
	aspect = iden.Name("aspect")
	image  = iden.Name("image")
	id     = iden.Name("id")
	font   = iden.Name("font")
	name   = iden.Name("name")
)

func TestMySQL_UpdateBindsQuestionMarkers(t *testing.T) {
	sql, vals, err := query.Update().
		Table(glyph).
		Value(aspect, 2.1345).
		Value(image, "X").
		AndWhere(query.Col(id).Eq(int32(1))).
		Build(MySQL)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE `glyph` SET `aspect` = ?, `image` = ? WHERE `id` = ?", sql)
	assert.Equal(t, value.Values{value.Double(2.1345), value.String("X"), value.Int(1)}, vals)
}

func TestMySQL_AutoIncrementPrimaryKey(t *testing.T) {
	sql, err := schema.CreateTable().
		Table(font).
		Col(schema.Column(id).Integer().AutoIncrement().PrimaryKey()).
		Col(schema.Column(name).Varchar().NotNull()).
		ToString(MySQL)
	require.NoError(t, err)
	assert.Equal(t,
		"CREATE TABLE `font` ( `id` integer NOT NULL AUTO_INCREMENT PRIMARY KEY, `name` varchar(255) NOT NULL )",
		sql)
}

func TestMySQL_OnDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		oc   *query.OnConflict
		want string
	}{
		{
			name: "copy proposed value",
			oc:   query.OnConflictColumn(id).UpdateColumn(aspect),
			want: "INSERT INTO `glyph` (`aspect`) VALUES (1.5) ON DUPLICATE KEY UPDATE `aspect` = VALUES(`aspect`)",
		},
		{
			name: "do nothing rewrites to self assignment",
			oc:   query.OnConflictColumn(id).DoNothing(),
			want: "INSERT INTO `glyph` (`aspect`) VALUES (1.5) ON DUPLICATE KEY UPDATE `aspect` = `aspect`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := query.Insert().Into(glyph).Columns(aspect).Values(1.5).OnConflict(tt.oc).ToString(MySQL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestMySQL_OffsetWithoutLimit(t *testing.T) {
	sql, vals, err := query.Select().Column(id).From(glyph).Offset(10).Build(MySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `id` FROM `glyph` LIMIT 18446744073709551615 OFFSET ?", sql)
	assert.Len(t, vals, 1)
}

func TestMySQL_RejectsArraysAndReturning(t *testing.T) {
	_, _, err := query.Select().Expr(query.Val([]int32{1, 2})).From(glyph).Build(MySQL)
	require.ErrorIs(t, err, dialect.ErrUnsupported)

	_, _, err = query.Delete().FromTable(glyph).ReturningAll().Build(MySQL)
	var unsupported *dialect.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "mysql", unsupported.Dialect)
}

func TestMySQL_StringEscapes(t *testing.T) {
	assert.Equal(t, `'it\'s\n'`, MySQL.QuoteString("it's\n"))
	assert.Equal(t, "`we``ird`", MySQL.QuoteIdentifier("we`ird"))
}

func TestMySQL_Schema(t *testing.T) {
	tests := []struct {
		name string
		stmt schema.Statement
		want string
	}{
		{
			name: "fulltext index",
			stmt: schema.Index().Name("idx_name").Table(font).Col(name).FullText(),
			want: "CREATE FULLTEXT INDEX `idx_name` ON `font` (`name`)",
		},
		{
			name: "drop index",
			stmt: schema.DropIndex().Name("idx_name").Table(font),
			want: "DROP INDEX `idx_name` ON `font`",
		},
		{
			name: "table options",
			stmt: schema.CreateTable().Table(font).Col(schema.Column(id).Integer()).Engine("InnoDB").CharacterSet("utf8mb4"),
			want: "CREATE TABLE `font` ( `id` integer ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
		},
		{
			name: "inline enum",
			stmt: schema.CreateTable().Table(font).Col(schema.Column(name).Enum(iden.Name("mood"), "happy", "sad")),
			want: "CREATE TABLE `font` ( `name` ENUM('happy', 'sad') )",
		},
		{
			name: "rename table",
			stmt: schema.RenameTable(glyph, font),
			want: "RENAME TABLE `glyph` TO `font`",
		},
		{
			name: "modify column",
			stmt: schema.AlterTable().Table(font).ModifyColumn(schema.Column(name).VarcharLen(64).NotNull()),
			want: "ALTER TABLE `font` MODIFY COLUMN `name` varchar(64) NOT NULL",
		},
		{
			name: "drop foreign key",
			stmt: schema.DropForeignKey().Name("fk_glyph_font").Table(glyph),
			want: "ALTER TABLE `glyph` DROP FOREIGN KEY `fk_glyph_font`",
		},
		{
			name: "trigger with one statement",
			stmt: schema.CreateTrigger("glyph_ins").
				On(glyph, schema.Before, schema.OnInsert).
				Do(query.Delete().FromTable(font).AndWhere(query.Col(id).Eq(int32(1)))),
			want: "CREATE TRIGGER `glyph_ins` BEFORE INSERT ON `glyph` FOR EACH ROW DELETE FROM `font` WHERE `id` = 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.Build(tt.stmt, MySQL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestMySQL_UnsignedAndJSONTypes(t *testing.T) {
	sql, err := schema.CreateTable().
		Table(font).
		Col(schema.Column(id).BigUnsigned()).
		Col(schema.Column(name).JSONBinary()).
		ToString(MySQL)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE `font` ( `id` bigint UNSIGNED, `name` json )", sql)
}

func TestMySQL_ViewsAndConstraints(t *testing.T) {
	sel := query.Select().Columns(id, image).From(glyph)
	tests := []struct {
		name string
		stmt schema.Statement
		want string
	}{
		{
			name: "create view",
			stmt: schema.CreateView().View(iden.Name("v")).OrReplace().Query(sel).CheckOption(schema.CheckCascaded),
			want: "CREATE OR REPLACE VIEW `v` AS SELECT `id`, `image` FROM `glyph` WITH CASCADED CHECK OPTION",
		},
		{
			name: "rename view uses rename table",
			stmt: schema.RenameView(iden.Name("v"), iden.Name("w")),
			want: "RENAME TABLE `v` TO `w`",
		},
		{
			name: "drop views",
			stmt: schema.DropView().View(iden.Name("v")).View(iden.Name("w")),
			want: "DROP VIEW `v`, `w`",
		},
		{
			name: "unique key with index name and type",
			stmt: schema.AddConstraint().Table(glyph).Name("uq").Unique().IndexName("idx_image").IndexType(schema.IndexBTree).Col(image),
			want: "ALTER TABLE `glyph` ADD CONSTRAINT `uq` UNIQUE KEY `idx_image` USING BTREE (`image`)",
		},
		{
			name: "primary key",
			stmt: schema.AddConstraint().Table(glyph).Primary().Col(id),
			want: "ALTER TABLE `glyph` ADD PRIMARY KEY (`id`)",
		},
		{
			name: "check",
			stmt: schema.AddConstraint().Table(glyph).Check(query.Col(id).Gte(int32(0))),
			want: "ALTER TABLE `glyph` ADD CHECK (`id` >= 0)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.Build(tt.stmt, MySQL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}

	_, err := schema.Build(schema.DropView().View(iden.Name("v")).Cascade(), MySQL)
	assert.ErrorIs(t, err, dialect.ErrUnsupported)
}

func TestMySQL_Explain(t *testing.T) {
	sel := query.Select().Column(id).From(glyph).AndWhere(query.Col(id).Eq(int32(1)))
	tests := []struct {
		name string
		stmt *query.ExplainStatement
		want string
	}{
		{
			name: "format",
			stmt: query.Explain(sel).Format(query.ExplainJSON),
			want: "EXPLAIN FORMAT = JSON SELECT `id` FROM `glyph` WHERE `id` = 1",
		},
		{
			name: "analyze tree",
			stmt: query.Explain(sel).Analyze(true).Format(query.ExplainTree),
			want: "EXPLAIN ANALYZE FORMAT = TREE SELECT `id` FROM `glyph` WHERE `id` = 1",
		},
		{
			name: "table and column",
			stmt: query.ExplainTable(glyph, image),
			want: "EXPLAIN `glyph` `image`",
		},
		{
			name: "table",
			stmt: query.ExplainTable(glyph, nil),
			want: "EXPLAIN `glyph`",
		},
		{
			name: "connection",
			stmt: query.ExplainConnection(123),
			want: "EXPLAIN FOR CONNECTION 123",
		},
		{
			name: "into variable for connection",
			stmt: query.ExplainConnection(123).Format(query.ExplainJSON).Into("foo"),
			want: "EXPLAIN FORMAT = JSON INTO @foo FOR CONNECTION 123",
		},
		{
			name: "for schema",
			stmt: query.Explain(sel).InSchema(iden.Name("s1")),
			want: "EXPLAIN FOR SCHEMA `s1` SELECT `id` FROM `glyph` WHERE `id` = 1",
		},
		{
			name: "for database",
			stmt: query.Explain(sel).InDatabase(iden.Name("db1")),
			want: "EXPLAIN FOR DATABASE `db1` SELECT `id` FROM `glyph` WHERE `id` = 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := tt.stmt.ToString(MySQL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}

	errs := []struct {
		name        string
		stmt        *query.ExplainStatement
		unsupported bool
	}{
		{name: "into without json", stmt: query.Explain(sel).Into("plan")},
		{name: "bad variable", stmt: query.Explain(sel).Format(query.ExplainJSON).Into("a b")},
		{name: "schema without statement", stmt: query.ExplainConnection(1).InSchema(iden.Name("s"))},
		{name: "postgres option", stmt: query.Explain(sel).Verbose(true), unsupported: true},
		{name: "postgres format", stmt: query.Explain(sel).Format(query.ExplainYAML), unsupported: true},
	}
	for _, tt := range errs {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.stmt.ToString(MySQL)
			require.Error(t, err)
			assert.Equal(t, tt.unsupported, errors.Is(err, dialect.ErrUnsupported))
		})
	}
}
