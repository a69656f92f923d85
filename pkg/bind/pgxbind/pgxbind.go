// Package pgxbind binds rendered Postgres statements to pgx.
//
// Values become pgtype carriers so that numerics, ranges, timestamps and
// arrays keep their exact Postgres types instead of travelling as text.
package pgxbind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/leapstack-labs/querykit/pkg/dialect"
	"github.com/leapstack-labs/querykit/pkg/dialects/postgres"
	"github.com/leapstack-labs/querykit/pkg/value"
)

// ErrUnsupported is returned for values pgx cannot carry.
var ErrUnsupported = errors.New("value cannot be bound")

// Conn is the subset of *pgx.Conn, *pgxpool.Pool and pgx.Tx used here.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Binder converts values for pgx and runs statements rendered for Postgres.
type Binder struct {
	Logger *slog.Logger
}

// New creates a Binder. A nil logger discards output.
func New(logger *slog.Logger) *Binder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Binder{Logger: logger}
}

// Exec renders stmt for Postgres and executes it.
func (b *Binder) Exec(ctx context.Context, conn Conn, stmt any) (pgconn.CommandTag, error) {
	sql, args, err := b.Prepare(stmt)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		return tag, fmt.Errorf("failed to execute statement: %w", err)
	}
	return tag, nil
}

// Query renders stmt for Postgres and runs it. The caller closes the rows.
func (b *Binder) Query(ctx context.Context, conn Conn, stmt any) (pgx.Rows, error) {
	sql, args, err := b.Prepare(stmt)
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows, nil
}

// Prepare renders stmt for Postgres and converts its values.
func (b *Binder) Prepare(stmt any) (string, []any, error) {
	sql, vals, err := dialect.BuildAny(postgres.Postgres, stmt)
	if err != nil {
		return "", nil, err
	}
	args, err := b.Args(vals)
	if err != nil {
		return "", nil, err
	}
	return sql, args, nil
}

// Args converts vals into pgx arguments, in order.
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
		value.KindFloat, value.KindDouble, value.KindBytes, value.KindString:
		return v.Interface(), nil
	case value.KindTinyUnsigned, value.KindSmallUnsigned, value.KindUnsigned:
		u, _ := v.Uint64()
		return int64(u), nil
	case value.KindBigUnsigned:
		u, _ := v.Uint64()
		if u > math.MaxInt64 {
			b.logger().Debug("binding unsigned above int64 as numeric", slog.Uint64("value", u))
			return pgtype.Numeric{Int: new(big.Int).SetUint64(u), Valid: true}, nil
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
	case value.KindDate:
		t, _ := v.Time()
		return pgtype.Date{Time: t, Valid: true}, nil
	case value.KindTime:
		t, _ := v.Time()
		return pgtype.Time{Microseconds: microsOfDay(t), Valid: true}, nil
	case value.KindDateTime:
		t, _ := v.Time()
		return pgtype.Timestamp{Time: t, Valid: true}, nil
	case value.KindDateTimeUTC, value.KindDateTimeLocal, value.KindDateTimeWithTimeZone:
		t, _ := v.Time()
		return pgtype.Timestamptz{Time: t, Valid: true}, nil
	case value.KindUUID:
		u, _ := v.UUID()
		return pgtype.UUID{Bytes: u, Valid: true}, nil
	case value.KindDecimal:
		d, _ := v.Decimal()
		return decimalNumeric(d), nil
	case value.KindBigDecimal:
		d, _ := v.BigDecimal()
		return apdNumeric(d), nil
	case value.KindIPNetwork:
		p, _ := v.IPNetwork()
		return p, nil
	case value.KindMacAddress:
		hw, _ := v.MacAddress()
		return hw, nil
	case value.KindVector:
		vec, _ := v.Vector()
		return vectorText(vec), nil
	case value.KindRange:
		r, _ := v.Range()
		return b.rangeArg(r)
	case value.KindArray:
		a, _ := v.Array()
		return b.arrayArg(a)
	default:
		return nil, fmt.Errorf("%s: %w", k, ErrUnsupported)
	}
}

func (b *Binder) arrayArg(a *value.Array) (any, error) {
	if a.Elem == value.KindArray {
		return nil, fmt.Errorf("nested array: %w", ErrUnsupported)
	}
	items := make(pgtype.FlatArray[any], len(a.Items))
	for i, it := range a.Items {
		arg, err := b.Arg(it)
		if err != nil {
			return nil, fmt.Errorf("array item %d: %w", i, err)
		}
		items[i] = arg
	}
	return items, nil
}

func (b *Binder) rangeArg(r *value.Range) (any, error) {
	if r.Empty {
		return pgtype.Range[any]{LowerType: pgtype.Empty, UpperType: pgtype.Empty, Valid: true}, nil
	}
	out := pgtype.Range[any]{Valid: true}
	var err error
	if out.Lower, out.LowerType, err = b.bound(r.Lower); err != nil {
		return nil, fmt.Errorf("lower bound: %w", err)
	}
	if out.Upper, out.UpperType, err = b.bound(r.Upper); err != nil {
		return nil, fmt.Errorf("upper bound: %w", err)
	}
	return out, nil
}

func (b *Binder) bound(bd value.Bound) (any, pgtype.BoundType, error) {
	if bd.Unbounded() {
		return nil, pgtype.Unbounded, nil
	}
	arg, err := b.Arg(bd.Value)
	if err != nil {
		return nil, 0, err
	}
	if bd.Inclusive {
		return arg, pgtype.Inclusive, nil
	}
	return arg, pgtype.Exclusive, nil
}

func microsOfDay(t time.Time) int64 {
	return int64(t.Hour())*int64(time.Hour/time.Microsecond) +
		int64(t.Minute())*int64(time.Minute/time.Microsecond) +
		int64(t.Second())*int64(time.Second/time.Microsecond) +
		int64(t.Nanosecond())/int64(time.Microsecond)
}

func decimalNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func apdNumeric(d *apd.Decimal) pgtype.Numeric {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return pgtype.Numeric{NaN: true, Valid: true}
	case apd.Infinite:
		if d.Negative {
			return pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity, Valid: true}
		}
		return pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}
	}
	coeff := d.Coeff.MathBigInt()
	if d.Negative {
		coeff.Neg(coeff)
	}
	return pgtype.Numeric{Int: coeff, Exp: d.Exponent, Valid: true}
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

func (b *Binder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}
