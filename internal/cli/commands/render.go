package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/querykit/internal/cli/output"
	"github.com/leapstack-labs/querykit/internal/stmtdoc"
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/value"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	All bool // Render for every registered dialect
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}
	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Render statement documents to SQL",
		Long: `Render YAML statement documents to SQL for one or more dialects.

Each document names one statement (select, insert, update, delete,
create_table, drop_table, create_index, create_view, drop_view or
explain). Without files, documents are read from standard input.

Output adapts to environment:
  - Terminal: SQL with styled headers
  - Piped/Scripted: Markdown with code blocks
  - JSON / table: --output json or --output table`,
		Example: `  # Render for the configured dialects
  querykit render queries.yaml

  # Render for MySQL and SQLite with inline literals
  querykit render queries.yaml --dialect mysql,sqlite --inline

  # Compare every dialect
  querykit render queries.yaml --all --output table

  # Read from stdin
  cat queries.yaml | querykit render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringSlice("dialect", nil, "Dialects to render for (default: postgres)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Render for every registered dialect")
	cmd.Flags().Bool("inline", false, "Render literals instead of placeholders")
	cmd.Flags().Bool("strict", false, "Fail on the first render error")
	cmd.Flags().Int("concurrency", 0, "Maximum renders run at once (default: GOMAXPROCS)")
	cmd.MarkFlagsMutuallyExclusive("dialect", "all")

	_ = cmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runRender(cmd *cobra.Command, files []string, opts *RenderOptions) error {
	cc := NewCommandContext(cmd)

	docs, err := loadDocuments(cmd.InOrStdin(), files)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no statement documents found")
	}

	names := cc.Cfg.Dialects
	if opts.All {
		names = dialect.List()
	}

	results, err := renderAll(cmd.Context(), cc, docs, names)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		cc.Logger.Warn("some renders failed", "failed", failed, "total", len(results))
	}

	return writeResults(cc.Renderer, results)
}

func loadDocuments(stdin io.Reader, files []string) ([]*stmtdoc.Document, error) {
	if len(files) == 0 {
		docs, err := stmtdoc.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return docs, nil
	}
	var docs []*stmtdoc.Document
	for _, f := range files {
		fileDocs, err := stmtdoc.ParseFile(f)
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

// renderAll renders every document for every dialect. Results are in
// document order, then dialect order, whatever order the renders finish.
func renderAll(ctx context.Context, cc *CommandContext, docs []*stmtdoc.Document, names []string) ([]output.RenderOutput, error) {
	stmts := make([]any, len(docs))
	stmtErrs := make([]error, len(docs))
	for i, doc := range docs {
		stmts[i], stmtErrs[i] = doc.Statement()
		if stmtErrs[i] != nil && cc.Cfg.Strict {
			return nil, fmt.Errorf("%s: %w", doc.Label(), stmtErrs[i])
		}
	}

	results := make([]output.RenderOutput, len(docs)*len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cc.Cfg.Concurrency)

	for i, doc := range docs {
		for j, name := range names {
			res := &results[i*len(names)+j]
			res.Document, res.Kind, res.Dialect = doc.Label(), doc.Kind(), name
			if stmtErrs[i] != nil {
				res.Error = stmtErrs[i].Error()
				continue
			}

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := renderOne(res, stmts[i], cc.Cfg.Inline); err != nil {
					cc.Logger.Debug("render failed", "document", res.Document, "dialect", name, "error", err)
					if cc.Cfg.Strict {
						return fmt.Errorf("%s (%s): %w", res.Document, name, err)
					}
					res.Error = err.Error()
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type literaler interface {
	Literal(v value.Value) (string, error)
}

func renderOne(res *output.RenderOutput, stmt any, inline bool) error {
	d, err := dialect.Lookup(res.Dialect)
	if err != nil {
		return err
	}
	sql, vals, err := dialect.Render(res.Dialect, stmt, inline)
	if err != nil {
		return err
	}
	res.SQL = sql

	marker := d.Config().Placeholder.Marker()
	for i, v := range vals {
		res.Params = append(res.Params, output.Param{
			Index:  i + 1,
			Marker: marker(i + 1),
			Kind:   v.Kind().String(),
			Value:  displayValue(d, v),
		})
	}
	return nil
}

// displayValue prefers the dialect's literal form of v.
func displayValue(d dialect.Dialect, v value.Value) string {
	if l, ok := d.(literaler); ok {
		if s, err := l.Literal(v); err == nil {
			return s
		}
	}
	return v.String()
}

func writeResults(r *output.Renderer, results []output.RenderOutput) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return output.WriteJSON(r.Writer(), results)
	case output.ModeTable:
		rows := make([][]string, 0, len(results))
		for _, res := range results {
			sql := res.SQL
			if res.Error != "" {
				sql = "error: " + res.Error
			}
			rows = append(rows, []string{res.Document, res.Dialect, sql, formatParams(res.Params)})
		}
		r.Table([]string{"Document", "Dialect", "SQL", "Params"}, rows)
	case output.ModeMarkdown:
		last := ""
		for _, res := range results {
			if res.Document != last {
				if last != "" {
					r.Println("")
				}
				r.Println(output.FormatHeader(2, res.Document))
				last = res.Document
			}
			r.Println("")
			r.Println(output.FormatHeader(3, res.Dialect))
			r.Println("")
			if res.Error != "" {
				r.Println("> error: " + res.Error)
				continue
			}
			r.Println(output.FormatCodeBlock("sql", res.SQL))
			if len(res.Params) > 0 {
				r.Println("")
				rows := make([][]string, 0, len(res.Params))
				for _, p := range res.Params {
					rows = append(rows, []string{p.Marker, p.Kind, p.Value})
				}
				r.Table([]string{"Marker", "Kind", "Value"}, rows)
			}
		}
	default:
		for _, res := range results {
			r.Header(fmt.Sprintf("-- %s (%s)", res.Document, res.Dialect))
			if res.Error != "" {
				r.Println("-- error: " + res.Error)
				continue
			}
			r.Println(res.SQL + ";")
			for _, p := range res.Params {
				r.Muted(fmt.Sprintf("--   %s = %s (%s)", p.Marker, p.Value, p.Kind))
			}
		}
	}
	return nil
}

func formatParams(params []output.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Marker + "=" + p.Value
	}
	return strings.Join(parts, ", ")
}
