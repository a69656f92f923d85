package commands

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querykit/internal/cli/config"
	"github.com/leapstack-labs/querykit/internal/cli/output"
	clitest "github.com/leapstack-labs/querykit/internal/cli/testutil"
	"github.com/leapstack-labs/querykit/internal/stmtdoc"
	"github.com/leapstack-labs/querykit/internal/testutil"
	"github.com/leapstack-labs/querykit/pkg/dialect"
	_ "github.com/leapstack-labs/querykit/pkg/dialects/all"
)

func testContext(t *testing.T, cfg *config.Config) *CommandContext {
	t.Helper()
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 2
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   testutil.NewTestLogger(t),
		Renderer: clitest.NewTestRenderer(output.ModeText, false).Renderer,
	}
}

func parseDocs(t *testing.T, src string) []*stmtdoc.Document {
	t.Helper()
	docs, err := stmtdoc.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return docs
}

func TestNewRenderCommand(t *testing.T) {
	cmd := NewRenderCommand()

	assert.Equal(t, "render [files...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)
	for _, flag := range []string{"dialect", "all", "inline", "strict", "concurrency"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewDialectsCommand(t *testing.T) {
	cmd := NewDialectsCommand()

	assert.Equal(t, "dialects", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestRenderAll_Order(t *testing.T) {
	cc := testContext(t, &config.Config{})
	docs := parseDocs(t, clitest.GlyphDocuments)

	results, err := renderAll(context.Background(), cc, docs, []string{"postgres", "mysql"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "find glyph", results[0].Document)
	assert.Equal(t, "select", results[0].Kind)
	assert.Equal(t, "postgres", results[0].Dialect)
	assert.Equal(t, `SELECT "id", "image" FROM "glyph" WHERE "id" = $1`, results[0].SQL)
	assert.Equal(t, []output.Param{{Index: 1, Marker: "$1", Kind: "BigInt", Value: "7"}}, results[0].Params)

	assert.Equal(t, "mysql", results[1].Dialect)
	assert.Equal(t, "SELECT `id`, `image` FROM `glyph` WHERE `id` = ?", results[1].SQL)
	assert.Equal(t, "?", results[1].Params[0].Marker)

	assert.Equal(t, "tag glyph", results[2].Document)
	assert.Equal(t, `INSERT INTO "glyph" ("id", "tags") VALUES ($1, $2)`, results[2].SQL)
	assert.Equal(t, "'ab'", results[2].Params[1].Value)
	assert.Equal(t, "mysql", results[3].Dialect)
}

func TestRenderAll_Inline(t *testing.T) {
	cc := testContext(t, &config.Config{Inline: true})
	docs := parseDocs(t, clitest.GlyphDocuments)

	results, err := renderAll(context.Background(), cc, docs, []string{"sqlite"})
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id", "image" FROM "glyph" WHERE "id" = 7`, results[0].SQL)
	assert.Empty(t, results[0].Params)
	assert.Equal(t, `INSERT INTO "glyph" ("id", "tags") VALUES (1, 'ab')`, results[1].SQL)
}

func TestRenderAll_Errors(t *testing.T) {
	upsert := "insert: {into: glyph, columns: [id], values: [[1]], on_conflict: {columns: [id], do_nothing: true}}\n"
	badOp := "select: {from: glyph, where: {col: id, op: \"~~\", value: 1}}\n"

	t.Run("lenient keeps going", func(t *testing.T) {
		cc := testContext(t, &config.Config{})
		results, err := renderAll(context.Background(), cc, parseDocs(t, upsert+"---\n"+badOp), []string{"postgres", "mssql"})
		require.NoError(t, err)
		require.Len(t, results, 4)

		assert.Empty(t, results[0].Error)
		assert.Contains(t, results[0].SQL, "ON CONFLICT")
		assert.Contains(t, results[1].Error, "not supported")
		assert.Contains(t, results[2].Error, "unknown operator")
		assert.Contains(t, results[3].Error, "unknown operator")
	})

	t.Run("strict render error", func(t *testing.T) {
		cc := testContext(t, &config.Config{Strict: true})
		_, err := renderAll(context.Background(), cc, parseDocs(t, upsert), []string{"postgres", "mssql"})
		require.ErrorIs(t, err, dialect.ErrUnsupported)
		assert.Contains(t, err.Error(), "mssql")
	})

	t.Run("strict document error", func(t *testing.T) {
		cc := testContext(t, &config.Config{Strict: true})
		_, err := renderAll(context.Background(), cc, parseDocs(t, badOp), []string{"postgres"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown operator")
	})
}

func TestWriteResults(t *testing.T) {
	results := []output.RenderOutput{
		{
			Document: "find glyph", Kind: "select", Dialect: "postgres",
			SQL:    `SELECT "id" FROM "glyph" WHERE "id" = $1`,
			Params: []output.Param{{Index: 1, Marker: "$1", Kind: "BigInt", Value: "7"}},
		},
		{Document: "find glyph", Kind: "select", Dialect: "mssql", Error: "boom"},
	}

	t.Run("text", func(t *testing.T) {
		tr := clitest.NewTestRenderer(output.ModeText, false)
		require.NoError(t, writeResults(tr.Renderer, results))
		out := tr.Output()
		assert.Contains(t, out, "-- find glyph (postgres)\n"+`SELECT "id" FROM "glyph" WHERE "id" = $1;`)
		assert.Contains(t, out, "--   $1 = 7 (BigInt)")
		assert.Contains(t, out, "-- error: boom")
		clitest.AssertNoANSI(t, out)
	})

	t.Run("markdown", func(t *testing.T) {
		tr := clitest.NewTestRenderer(output.ModeAuto, false)
		require.NoError(t, writeResults(tr.Renderer, results))
		out := tr.Output()
		assert.Equal(t, 1, strings.Count(out, "## find glyph"))
		assert.Contains(t, out, "### postgres")
		assert.Contains(t, out, "```sql\n")
		assert.Contains(t, out, "| $1 ")
		assert.Contains(t, out, "> error: boom")
		clitest.AssertValidMarkdown(t, out)
		clitest.AssertNoANSI(t, out)
	})

	t.Run("json", func(t *testing.T) {
		tr := clitest.NewTestRenderer(output.ModeJSON, false)
		require.NoError(t, writeResults(tr.Renderer, results))
		var got []output.RenderOutput
		require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
		assert.Equal(t, results, got)
	})

	t.Run("table", func(t *testing.T) {
		tr := clitest.NewTestRenderer(output.ModeTable, false)
		require.NoError(t, writeResults(tr.Renderer, results))
		out := tr.Output()
		assert.Contains(t, out, "$1=7")
		assert.Contains(t, out, "error: boom")
	})
}

func TestDialectInfos(t *testing.T) {
	infos := dialectInfos()
	require.Len(t, infos, len(dialect.List()))

	byName := make(map[string]output.DialectInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	pg := byName["postgres"]
	assert.Contains(t, pg.Reserved, "returning")
	assert.IsIncreasing(t, pg.Reserved)
	pg.Reserved = nil
	assert.Equal(t, output.DialectInfo{
		Name: "postgres", Display: "Postgres", Quote: `""`, Placeholder: "$n",
		Upsert: true, Returning: true, Arrays: true,
	}, pg)
	assert.Equal(t, "SQL Server", byName["mssql"].Display)
	assert.Equal(t, "[]", byName["mssql"].Quote)
	assert.Equal(t, "@Pn", byName["mssql"].Placeholder)
	assert.False(t, byName["mssql"].Upsert)
	assert.Equal(t, "Oracle", byName["oracle"].Display)
	assert.Equal(t, ":n", byName["oracle"].Placeholder)
}

func TestRunDialects(t *testing.T) {
	tr := clitest.NewTestRenderer(output.ModeJSON, false)
	require.NoError(t, runDialects(tr.Renderer))

	var infos []output.DialectInfo
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &infos))
	assert.Len(t, infos, len(dialect.List()))

	tr = clitest.NewTestRenderer(output.ModeText, false)
	require.NoError(t, runDialects(tr.Renderer))
	assert.Contains(t, tr.Output(), "SQL Server")
	assert.Contains(t, tr.Output(), "@Pn")
	assert.Contains(t, strings.ToLower(tr.Output()), "reserved")
}
