// Package sqlbind runs rendered statements through database/sql.
//
// Rendering produces SQL text and a parallel list of values. A Binder turns
// that list into driver arguments: scalar kinds map to the types
// database/sql converts natively, richer kinds to their text form and
// Postgres arrays to pq.Array carriers.
package sqlbind

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// ErrUnsupported is returned for values the target driver cannot carry.
var ErrUnsupported = errors.New("value cannot be bound")

// Execer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Binder renders statements for one dialect and binds their values.
type Binder struct {
	Dialect dialect.Dialect
	Logger  *slog.Logger
	// Arrays enables array parameters. It defaults to true for postgres,
	// the only registered dialect whose drivers accept array literals.
	Arrays bool
}

// New creates a Binder for d. A nil logger discards output.
func New(d dialect.Dialect, logger *slog.Logger) *Binder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Binder{
		Dialect: d,
		Logger:  logger,
		Arrays:  d != nil && d.Name() == "postgres",
	}
}

// Exec renders stmt and executes it.
func (b *Binder) Exec(ctx context.Context, db Execer, stmt any) (sql.Result, error) {
	query, args, err := b.Prepare(stmt)
	if err != nil {
		return nil, err
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute statement: %w", err)
	}
	return res, nil
}

// Query renders stmt and runs it. The caller closes the rows.
func (b *Binder) Query(ctx context.Context, db Querier, stmt any) (*sql.Rows, error) {
	query, args, err := b.Prepare(stmt)
	if err != nil {
		return nil, err
	}
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows, nil
}

// Prepare renders stmt with the binder's dialect and converts its values.
func (b *Binder) Prepare(stmt any) (string, []any, error) {
	query, vals, err := dialect.BuildAny(b.Dialect, stmt)
	if err != nil {
		return "", nil, err
	}
	args, err := b.Args(vals)
	if err != nil {
		return "", nil, err
	}
	b.logger().Debug("prepared statement",
		slog.String("dialect", b.Dialect.Name()),
		slog.Int("args", len(args)))
	return query, args, nil
}

// Args converts vals into database/sql arguments, in order.
func (b *Binder) Args(vals value.Values) ([]any, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]any, len(vals))
	for i, v := range vals {
		arg, err := b.Arg(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		out[i] = arg
	}
	return out, nil
}

// Arg converts one value. NULL of any kind binds as nil.
func (b *Binder) Arg(v value.Value) (any, error) {
	if v.IsNull() || !v.IsValid() {
		return nil, nil
	}
	switch k := v.Kind(); k {
	case value.KindBool, value.KindTinyInt, value.KindSmallInt, value.KindInt, value.KindBigInt,
		value.KindTinyUnsigned, value.KindSmallUnsigned, value.KindUnsigned,
		value.KindFloat, value.KindDouble, value.KindBytes, value.KindString:
		return v.Interface(), nil
	case value.KindBigUnsigned:
		u, _ := v.Uint64()
		if u > math.MaxInt64 {
			b.logger().Debug("binding unsigned above int64 as text", slog.Uint64("value", u))
			return strconv.FormatUint(u, 10), nil
		}
		return int64(u), nil
	case value.KindChar:
		r, _ := v.Rune()
		return string(r), nil
	case value.KindJSON:
		return v.JSONText()
	case value.KindEnum:
		e, _ := v.Enum()
		return e.Label, nil
	case value.KindDate, value.KindTime, value.KindDateTime, value.KindDateTimeUTC,
		value.KindDateTimeLocal, value.KindDateTimeWithTimeZone:
		return v.Time()
	case value.KindUUID:
		u, _ := v.UUID()
		return u.String(), nil
	case value.KindDecimal:
		d, _ := v.Decimal()
		return d, nil
	case value.KindBigDecimal:
		d, _ := v.BigDecimal()
		return d.String(), nil
	case value.KindIPNetwork:
		p, _ := v.IPNetwork()
		return p.String(), nil
	case value.KindMacAddress:
		hw, _ := v.MacAddress()
		return hw.String(), nil
	case value.KindVector:
		vec, _ := v.Vector()
		return vectorText(vec), nil
	case value.KindRange:
		r, _ := v.Range()
		return r.Text(rangeBound), nil
	case value.KindArray:
		return b.array(v)
	default:
		return nil, fmt.Errorf("%s: %w", k, ErrUnsupported)
	}
}

func (b *Binder) array(v value.Value) (any, error) {
	if !b.Arrays {
		return nil, fmt.Errorf("%s array on %s: %w", v.ArrayElem(), b.name(), ErrUnsupported)
	}
	a, _ := v.Array()
	if a.Elem == value.KindArray {
		return nil, fmt.Errorf("nested array: %w", ErrUnsupported)
	}
	items := make([]any, len(a.Items))
	for i, it := range a.Items {
		arg, err := b.Arg(it)
		if err != nil {
			return nil, fmt.Errorf("array item %d: %w", i, err)
		}
		items[i] = arg
	}
	b.logger().Debug("binding array", slog.String("elem", a.Elem.String()), slog.Int("len", len(items)))
	return pq.Array(items), nil
}

func (b *Binder) name() string {
	if b.Dialect == nil {
		return "unknown dialect"
	}
	return b.Dialect.Name()
}

func (b *Binder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}

func vectorText(vec value.Vector) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range vec {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

func rangeBound(v value.Value) string {
	if v.Kind().IsTemporal() {
		return value.FormatTemporal(v, true)
	}
	return fmt.Sprint(v.Interface())
}
