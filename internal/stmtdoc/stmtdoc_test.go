package stmtdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/dialects/postgres"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/value"
)

func render(t *testing.T, src string) (string, value.Values) {
	t.Helper()
	docs, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	stmt, err := docs[0].Statement()
	require.NoError(t, err)
	sql, vals, err := dialect.BuildAny(postgres.Postgres, stmt)
	require.NoError(t, err)
	return sql, vals
}

func TestParse_Select(t *testing.T) {
	sql, vals := render(t, `
name: recent glyphs
select:
  columns: [g.id, name]
  from: glyph
  alias: g
  joins:
    - kind: left
      table: font
      on: {col: font.id, op: "=", value: 3}
  where:
    all:
      - {col: g.id, op: ">", value: 5}
      - any:
          - {col: name, op: like, value: "a%"}
          - {col: name, op: is_null}
  order_by:
    - {col: g.id, desc: true}
  limit: 10
  offset: 20
`)
	assert.Equal(t,
		`SELECT "g"."id", "name" FROM "glyph" AS "g" LEFT JOIN "font" ON "font"."id" = $1 `+
			`WHERE "g"."id" > $2 AND ("name" LIKE $3 OR "name" IS NULL) ORDER BY "g"."id" DESC LIMIT $4 OFFSET $5`,
		sql)
	assert.Equal(t, value.Values{
		value.BigInt(3), value.BigInt(5), value.String("a%"), value.BigUnsigned(10), value.BigUnsigned(20),
	}, vals)
}

func TestParse_Conditions(t *testing.T) {
	tests := []struct {
		name string
		cond string
		want string
	}{
		{"in list", `{col: id, op: in, value: [1, 2]}`, `"id" IN ($1, $2)`},
		{"between", `{col: id, op: between, value: [1, 9]}`, `"id" BETWEEN $1 AND $2`},
		{"not", `{not: {col: id, op: eq, value: 1}}`, `NOT "id" = $1`},
		{"null equality", `{col: name, value: null}`, `"name" IS NULL`},
		{"is not null", `{col: name, op: is_not_null}`, `"name" IS NOT NULL`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := render(t, "select:\n  from: glyph\n  columns: [id]\n  where: "+tt.cond+"\n")
			assert.Equal(t, `SELECT "id" FROM "glyph" WHERE `+tt.want, sql)
		})
	}
}

func TestParse_Insert(t *testing.T) {
	sql, vals := render(t, `
insert:
  into: glyph
  columns: [id, name, meta]
  values:
    - [1, "a", {size: 2}]
    - [2, null, null]
  on_conflict:
    columns: [id]
    update: [name]
  returning: [id]
`)
	assert.Equal(t,
		`INSERT INTO "glyph" ("id", "name", "meta") VALUES ($1, $2, $3), ($4, NULL, NULL) `+
			`ON CONFLICT ("id") DO UPDATE SET "name" = "excluded"."name" RETURNING "id"`,
		sql)
	require.Len(t, vals, 4)
	assert.Equal(t, value.KindJSON, vals[2].Kind())
}

func TestParse_UpdateAndDelete(t *testing.T) {
	sql, _ := render(t, `
update:
  table: glyph
  set:
    - {col: name, value: "b"}
    - {col: size, value: 1.5}
  where: {col: id, op: "=", value: 1}
`)
	assert.Equal(t, `UPDATE "glyph" SET "name" = $1, "size" = $2 WHERE "id" = $3`, sql)

	sql, _ = render(t, `
delete:
  from: public.glyph
  where: {col: id, op: "<", value: 0}
  returning: ["*"]
`)
	assert.Equal(t, `DELETE FROM "public"."glyph" WHERE "id" < $1 RETURNING *`, sql)
}

func TestParse_Schema(t *testing.T) {
	sql, vals := render(t, `
create_table:
  table: glyph
  if_not_exists: true
  columns:
    - {name: id, type: bigint, not_null: true, primary_key: true}
    - {name: name, type: varchar, length: 64, default: "none"}
    - {name: price, type: decimal, precision: 10, scale: 2}
`)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "glyph" ( "id" bigint NOT NULL PRIMARY KEY, "name" varchar(64) DEFAULT 'none', "price" decimal(10, 2) )`,
		sql)
	assert.Nil(t, vals)

	sql, _ = render(t, "drop_table: {tables: [glyph, font], if_exists: true, cascade: true}\n")
	assert.Equal(t, `DROP TABLE IF EXISTS "glyph", "font" CASCADE`, sql)

	sql, _ = render(t, "create_index: {name: idx_name, table: glyph, columns: [name], unique: true}\n")
	assert.Equal(t, `CREATE UNIQUE INDEX "idx_name" ON "glyph" ("name")`, sql)
}

func TestParse_ViewsAndExplain(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "create view",
			src:  "create_view: {view: recent, columns: [id], or_replace: true, select: {columns: [id], from: glyph}}\n",
			want: `CREATE OR REPLACE VIEW "recent" ("id") AS SELECT "id" FROM "glyph"`,
		},
		{
			name: "drop view",
			src:  "drop_view: {views: [recent, old], if_exists: true, cascade: true}\n",
			want: `DROP VIEW IF EXISTS "recent", "old" CASCADE`,
		},
		{
			name: "explain",
			src:  "explain: {analyze: true, format: json, delete: {from: glyph}}\n",
			want: `EXPLAIN (ANALYZE, FORMAT JSON) DELETE FROM "glyph"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := render(t, tt.src)
			assert.Equal(t, tt.want, sql)
		})
	}

	docs, err := Parse(strings.NewReader("explain: {select: {from: glyph}, delete: {from: glyph}}\n"))
	require.NoError(t, err)
	_, err = docs[0].Statement()
	require.Error(t, err)
	assert.Equal(t, "explain", docs[0].Kind())
}

func TestParse_MultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stmts.yaml")
	src := "select: {from: glyph}\n---\n---\nname: wipe\ndelete: {from: glyph}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	docs, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "select", docs[0].Kind())
	assert.Equal(t, path+"#1", docs[0].Label())
	assert.Equal(t, "delete", docs[1].Kind())
	assert.Equal(t, "wipe", docs[1].Label())

	stmt, err := docs[0].Statement()
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "glyph"`, query.MustString(stmt.(query.Statement), postgres.Postgres))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		wantMsg string
	}{
		{name: "no statement", src: "name: empty\n", wantErr: ErrNoStatement},
		{name: "two statements", src: "select: {from: a}\ndelete: {from: a}\n", wantErr: ErrManyStatements},
		{name: "unknown key", src: "selekt: {from: a}\n", wantMsg: "selekt"},
		{name: "arity", src: "insert: {into: a, columns: [x], values: [[1, 2]]}\n", wantErr: query.ErrArityMismatch},
		{name: "bad operator", src: "select: {from: a, where: {col: x, op: \"~~\", value: 1}}\n", wantMsg: "unknown operator"},
		{name: "mixed condition", src: "select: {from: a, where: {col: x, not: {col: y}}}\n", wantMsg: "exactly one"},
		{name: "list outside in", src: "select: {from: a, where: {col: x, value: [1]}}\n", wantMsg: "lists are only allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				require.Len(t, docs, 1)
				_, err = docs[0].Statement()
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
