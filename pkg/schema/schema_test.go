package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querykit/pkg/dialects/postgres"
	"github.com/leapstack-labs/querykit/pkg/dialects/sqlite"
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/schema"
)

var (
	glyph   = iden.Name("glyph")
	font    = iden.Name("font")
	id      = iden.Name("id")
	fontID  = iden.Name("font_id")
	name    = iden.Name("name")
	aspect  = iden.Name("aspect")
	created = iden.Name("created")
)

func TestCreateTableConstraints(t *testing.T) {
	stmt := schema.CreateTable().
		Table(glyph).
		IfNotExists().
		Col(schema.Column(id).Integer().NotNull()).
		Col(schema.Column(fontID).Integer()).
		Col(schema.Column(name).Varchar().Default("none").UniqueKey()).
		Col(schema.Column(aspect).Double().Check(query.Col(aspect).Gt(0))).
		Col(schema.Column(created).Timestamp().Default(query.CurrentTimestamp())).
		PrimaryKey(id).
		ForeignKey(schema.ForeignKey().Name("fk_font").From(glyph, fontID).To(font, id).Delete(schema.Cascade)).
		Check(query.Col(id).Gte(0))

	sql, err := stmt.ToString(postgres.Postgres)
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "glyph" ( `+
			`"id" integer NOT NULL, `+
			`"font_id" integer, `+
			`"name" varchar DEFAULT 'none' UNIQUE, `+
			`"aspect" double precision CHECK ("aspect" > 0), `+
			`"created" timestamp DEFAULT CURRENT_TIMESTAMP, `+
			`PRIMARY KEY ("id"), `+
			`CONSTRAINT "fk_font" FOREIGN KEY ("font_id") REFERENCES "font" ("id") ON DELETE CASCADE, `+
			`CHECK ("id" >= 0) )`,
		sql)
}

func TestGeneratedColumns(t *testing.T) {
	sql, err := schema.CreateTable().
		Table(glyph).
		Col(schema.Column(aspect).Double()).
		Col(schema.Column(name).Double().GeneratedStored(query.Col(aspect).Mul(2))).
		ToString(postgres.Postgres)
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE "glyph" ( "aspect" double precision, "name" double precision GENERATED ALWAYS AS ("aspect" * 2) STORED )`,
		sql)
}

func TestIndexes(t *testing.T) {
	tests := []struct {
		name string
		stmt schema.Statement
		want string
	}{
		{
			name: "unique concurrent if not exists",
			stmt: schema.Index().Name("idx_name").Table(glyph).Col(name).Unique().Concurrently().IfNotExists(),
			want: `CREATE UNIQUE INDEX CONCURRENTLY IF NOT EXISTS "idx_name" ON "glyph" ("name")`,
		},
		{
			name: "partial",
			stmt: schema.Index().Name("idx_live").Table(glyph).Col(id).AndWhere(query.Col(name).IsNotNull()),
			want: `CREATE INDEX "idx_live" ON "glyph" ("id") WHERE "name" IS NOT NULL`,
		},
		{
			name: "ordered and expression columns",
			stmt: schema.Index().Name("idx_expr").Table(glyph).ColOrder(id, query.Desc).ColExpr(query.Lower(query.Col(name))),
			want: `CREATE INDEX "idx_expr" ON "glyph" ("id" DESC, (LOWER("name")))`,
		},
		{
			name: "drop if exists",
			stmt: schema.DropIndex().Name("idx_name").IfExists(),
			want: `DROP INDEX IF EXISTS "idx_name"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := schema.Build(tt.stmt, postgres.Postgres)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestAlterTable(t *testing.T) {
	tests := []struct {
		name string
		stmt *schema.TableAlter
		want string
	}{
		{
			name: "add and drop",
			stmt: schema.AlterTable().Table(glyph).
				AddColumnIfNotExists(schema.Column(aspect).Double()).
				DropColumnIfExists(name),
			want: `ALTER TABLE "glyph" ADD COLUMN IF NOT EXISTS "aspect" double precision, DROP COLUMN IF EXISTS "name"`,
		},
		{
			name: "rename column",
			stmt: schema.AlterTable().Table(glyph).RenameColumn(name, iden.Name("label")),
			want: `ALTER TABLE "glyph" RENAME COLUMN "name" TO "label"`,
		},
		{
			name: "modify column in parts",
			stmt: schema.AlterTable().Table(glyph).ModifyColumn(schema.Column(name).Text().NotNull().Default("x")),
			want: `ALTER TABLE "glyph" ALTER COLUMN "name" TYPE text, ALTER COLUMN "name" SET NOT NULL, ALTER COLUMN "name" SET DEFAULT 'x'`,
		},
		{
			name: "add foreign key",
			stmt: schema.AlterTable().Table(glyph).
				AddForeignKey(schema.ForeignKey().Name("fk_font").From(glyph, fontID).To(font, id).Update(schema.SetNull)),
			want: `ALTER TABLE "glyph" ADD CONSTRAINT "fk_font" FOREIGN KEY ("font_id") REFERENCES "font" ("id") ON UPDATE SET NULL`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := tt.stmt.ToString(postgres.Postgres)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sql)
		})
	}
}

func TestDropTable(t *testing.T) {
	stmt := schema.DropTable().Table(glyph).Table(font).IfExists().Cascade()

	sql, err := stmt.ToString(postgres.Postgres)
	require.NoError(t, err)
	assert.Equal(t, `DROP TABLE IF EXISTS "glyph", "font" CASCADE`, sql)

	// Dialects without drop behavior leave it off.
	sql, err = stmt.ToString(sqlite.SQLite)
	require.NoError(t, err)
	assert.Equal(t, `DROP TABLE IF EXISTS "glyph", "font"`, sql)
}

func TestMisuse(t *testing.T) {
	_, err := schema.CreateTable().Table(glyph).ToString(postgres.Postgres)
	require.Error(t, err)

	_, err = schema.AlterTable().Table(glyph).ToString(postgres.Postgres)
	require.Error(t, err)

	_, err = schema.Index().Name("idx").Table(glyph).ToString(postgres.Postgres)
	require.Error(t, err)

	_, err = schema.AlterTable().Table(glyph).AddColumn(schema.Column(id).Integer()).DropColumn(name).ToString(sqlite.SQLite)
	require.Error(t, err)

	assert.Panics(t, func() { schema.MustBuild(schema.DropTable(), sqlite.SQLite) })
}
