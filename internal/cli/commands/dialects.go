package commands

import (
	"strconv"

	"github.com/leapstack-labs/querykit/internal/cli/output"
	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayNames holds names that title casing gets wrong.
var displayNames = map[string]string{
	"bigquery": "BigQuery",
	"duckdb":   "DuckDB",
	"mssql":    "SQL Server",
	"mysql":    "MySQL",
	"sqlite":   "SQLite",
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Long: `List every registered dialect with its identifier quoting,
parameter marker, statement support and reserved word count. JSON
output carries the full reserved word lists.`,
		Example: `  # List dialects
  querykit dialects

  # As JSON
  querykit dialects --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(NewCommandContext(cmd).Renderer)
		},
	}
}

func runDialects(r *output.Renderer) error {
	infos := dialectInfos()

	if r.EffectiveMode() == output.ModeJSON {
		return output.WriteJSON(r.Writer(), infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Name,
			info.Display,
			info.Quote,
			info.Placeholder,
			strconv.FormatBool(info.Upsert),
			strconv.FormatBool(info.Returning),
			strconv.FormatBool(info.Arrays),
			strconv.Itoa(len(info.Reserved)),
		})
	}
	r.Table([]string{"Name", "Display", "Quote", "Placeholder", "Upsert", "Returning", "Arrays", "Reserved"}, rows)
	return nil
}

func dialectInfos() []output.DialectInfo {
	title := cases.Title(language.English)
	names := dialect.List()
	infos := make([]output.DialectInfo, 0, len(names))
	for _, name := range names {
		d, ok := dialect.Get(name)
		if !ok {
			continue
		}
		cfg := d.Config()
		display, ok := displayNames[name]
		if !ok {
			display = title.String(name)
		}
		infos = append(infos, output.DialectInfo{
			Name:        name,
			Display:     display,
			Quote:       cfg.Identifiers.Quote + cfg.Identifiers.QuoteEnd,
			Placeholder: cfg.Placeholder.String(),
			Upsert:      cfg.Upsert != dialect.UpsertNone,
			Returning:   cfg.Returning != dialect.ReturningNone,
			Arrays:      cfg.SupportsArrays,
			Reserved:    d.ReservedWords(),
		})
	}
	return infos
}
