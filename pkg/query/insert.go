package query

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/value"
)

var (
	// ErrConflictingInsertSource is returned when an INSERT gets both
	// explicit rows and a SELECT source.
	ErrConflictingInsertSource = errors.New("query: insert has both rows and a select source")
	// ErrArityMismatch is returned when a VALUES row does not match the
	// column list.
	ErrArityMismatch = errors.New("query: values row arity does not match columns")
)

// InsertSource is where the inserted rows come from.
type InsertSource interface {
	insertSource()
}

// RowsSource is an explicit VALUES list.
type RowsSource struct {
	Rows [][]Expr
}

// SelectSource is INSERT ... SELECT.
type SelectSource struct {
	Query *SelectStatement
}

// DefaultValuesSource inserts Rows rows of column defaults.
type DefaultValuesSource struct {
	Rows int
}

func (*RowsSource) insertSource()         {}
func (SelectSource) insertSource()        {}
func (DefaultValuesSource) insertSource() {}

// InsertStatement is an INSERT (or REPLACE).
type InsertStatement struct {
	ReplaceMode     bool
	Target          TableRef
	ColumnList      []iden.Dyn
	Source          InsertSource
	Conflict        *OnConflict
	ReturningClause *Returning

	err error
}

// Insert starts an INSERT.
func Insert() *InsertStatement { return &InsertStatement{} }

func (*InsertStatement) queryStatement()             {}
func (s *InsertStatement) cloneStatement() Statement { return s.Clone() }

// Clone returns a copy whose lists can be extended independently.
func (s *InsertStatement) Clone() *InsertStatement {
	out := *s
	out.ColumnList = append([]iden.Dyn(nil), s.ColumnList...)
	switch src := s.Source.(type) {
	case *RowsSource:
		rows := make([][]Expr, len(src.Rows))
		copy(rows, src.Rows)
		out.Source = &RowsSource{Rows: rows}
	case SelectSource:
		out.Source = SelectSource{Query: src.Query.Clone()}
	}
	if s.Conflict != nil {
		out.Conflict = s.Conflict.Clone()
	}
	if s.ReturningClause != nil {
		r := *s.ReturningClause
		r.Exprs = append([]Expr(nil), r.Exprs...)
		out.ReturningClause = &r
	}
	return &out
}

// Err returns the first misuse recorded while building.
func (s *InsertStatement) Err() error { return s.err }

// Replace turns the statement into REPLACE (MySQL) or INSERT OR REPLACE
// (SQLite).
func (s *InsertStatement) Replace() *InsertStatement {
	s.ReplaceMode = true
	return s
}

// Into sets the target table.
func (s *InsertStatement) Into(t any) *InsertStatement {
	s.Target = IntoTableRef(t)
	return s
}

// Columns appends target columns.
func (s *InsertStatement) Columns(cols ...iden.Iden) *InsertStatement {
	s.ColumnList = append(s.ColumnList, iden.All(cols...)...)
	return s
}

// TryValues appends a VALUES row. It fails when the row does not match
// the column list or a SELECT source is already set.
func (s *InsertStatement) TryValues(row ...any) error {
	if len(row) != len(s.ColumnList) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrArityMismatch, len(row), len(s.ColumnList))
	}
	src, ok := s.Source.(*RowsSource)
	if !ok {
		if s.Source != nil {
			if _, isDefault := s.Source.(DefaultValuesSource); !isDefault {
				s.fail(ErrConflictingInsertSource)
				return ErrConflictingInsertSource
			}
		}
		src = &RowsSource{}
		s.Source = src
	}
	src.Rows = append(src.Rows, intoExprs(row))
	return nil
}

// Values appends a VALUES row and panics when the row does not match the
// column list.
func (s *InsertStatement) Values(row ...any) *InsertStatement {
	if err := s.TryValues(row...); err != nil && errors.Is(err, ErrArityMismatch) {
		panic(err.Error())
	}
	return s
}

// ValuesRows appends several rows of plain values.
func (s *InsertStatement) ValuesRows(rows ...value.Tuple) *InsertStatement {
	for _, r := range rows {
		row := make([]any, len(r))
		for i, v := range r {
			row[i] = v
		}
		s.Values(row...)
	}
	return s
}

// SelectFrom uses q as the row source. Mixing it with explicit rows
// records ErrConflictingInsertSource, returned at build time.
func (s *InsertStatement) SelectFrom(q *SelectStatement) *InsertStatement {
	if src, ok := s.Source.(*RowsSource); ok && len(src.Rows) > 0 {
		s.fail(ErrConflictingInsertSource)
		return s
	}
	s.Source = SelectSource{Query: q.Clone()}
	return s
}

// OrDefaultValues inserts one row of defaults when no rows were given.
func (s *InsertStatement) OrDefaultValues() *InsertStatement {
	return s.OrDefaultValuesMany(1)
}

// OrDefaultValuesMany inserts n rows of defaults when no rows were given.
func (s *InsertStatement) OrDefaultValuesMany(n int) *InsertStatement {
	if s.Source == nil {
		s.Source = DefaultValuesSource{Rows: n}
	}
	return s
}

// OnConflict sets the conflict clause.
func (s *InsertStatement) OnConflict(oc *OnConflict) *InsertStatement {
	s.Conflict = oc.Clone()
	return s
}

// Returning sets the RETURNING clause.
func (s *InsertStatement) Returning(r *Returning) *InsertStatement {
	s.ReturningClause = r
	return s
}

// ReturningAll sets RETURNING *.
func (s *InsertStatement) ReturningAll() *InsertStatement {
	return s.Returning(ReturningAll())
}

// ReturningCol sets RETURNING cols.
func (s *InsertStatement) ReturningCol(cols ...any) *InsertStatement {
	return s.Returning(ReturningExprs(cols...))
}

// With wraps the statement in a WITH query.
func (s *InsertStatement) With(w *WithClause) *WithQuery {
	return &WithQuery{Clause: w, Query: s}
}

// Build renders with placeholders.
func (s *InsertStatement) Build(qb QueryBuilder) (string, value.Values, error) { return Build(s, qb) }

// ToString renders with inline values.
func (s *InsertStatement) ToString(qb QueryBuilder) (string, error) { return ToString(s, qb) }

// MustBuild renders with placeholders and panics on error.
func (s *InsertStatement) MustBuild(qb QueryBuilder) (string, value.Values) { return MustBuild(s, qb) }

// MustString renders with inline values and panics on error.
func (s *InsertStatement) MustString(qb QueryBuilder) string { return MustString(s, qb) }

func (s *InsertStatement) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Rows returns the explicit VALUES rows, if any.
func (s *InsertStatement) Rows() [][]Expr {
	if src, ok := s.Source.(*RowsSource); ok {
		return src.Rows
	}
	return nil
}
