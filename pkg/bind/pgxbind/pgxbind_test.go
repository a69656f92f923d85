package pgxbind

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querykit/internal/testutil"
	"github.com/leapstack-labs/querykit/pkg/query"
	"github.com/leapstack-labs/querykit/pkg/value"
)

type fakeConn struct {
	sql  string
	args []any
	err  error
}

func (c *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	if c.err != nil {
		return pgconn.CommandTag{}, c.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (c *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return nil, c.err
}

func TestBinder_Temporal(t *testing.T) {
	at := time.Date(2024, 3, 9, 13, 45, 30, 250000000, time.UTC)

	tests := []struct {
		name string
		in   value.Value
		want any
	}{
		{"date", value.Date(at), pgtype.Date{Time: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Valid: true}},
		{"time", value.TimeOfDay(at), pgtype.Time{Microseconds: (13*3600+45*60+30)*1_000_000 + 250_000, Valid: true}},
		{"timestamp", value.DateTime(at), pgtype.Timestamp{Time: at, Valid: true}},
		{"timestamptz", value.DateTimeUTC(at), pgtype.Timestamptz{Time: at, Valid: true}},
	}

	b := New(testutil.NewTestLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Arg(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinder_Scalars(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	b := New(nil)

	got, err := b.Arg(value.UUID(id))
	require.NoError(t, err)
	assert.Equal(t, pgtype.UUID{Bytes: id, Valid: true}, got)

	got, err = b.Arg(value.Unsigned(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	got, err = b.Arg(value.NewEnum("mood", "sad"))
	require.NoError(t, err)
	assert.Equal(t, "sad", got)

	got, err = b.Arg(value.Null(value.KindUUID))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBinder_Numerics(t *testing.T) {
	b := New(nil)

	tests := []struct {
		name    string
		in      value.Value
		wantInt string
		wantExp int32
	}{
		{"decimal", value.Decimal(decimal.RequireFromString("-12.50")), "-1250", -2},
		{"big decimal", value.BigDecimal(apd.New(-31415, -4)), "-31415", -4},
		{"unsigned above int64", value.BigUnsigned(math.MaxUint64), "18446744073709551615", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Arg(tt.in)
			require.NoError(t, err)
			num, ok := got.(pgtype.Numeric)
			require.True(t, ok, "got %T", got)
			assert.True(t, num.Valid)
			assert.Equal(t, tt.wantInt, num.Int.String())
			assert.Equal(t, tt.wantExp, num.Exp)
		})
	}

	got, err := b.Arg(value.BigDecimal(&apd.Decimal{Form: apd.NaN}))
	require.NoError(t, err)
	assert.Equal(t, pgtype.Numeric{NaN: true, Valid: true}, got)
}

func TestBinder_RangesAndArrays(t *testing.T) {
	b := New(nil)

	got, err := b.Arg(value.NewRange(value.Int8Range, value.Inclusive(value.BigInt(1)), value.Unbounded))
	require.NoError(t, err)
	assert.Equal(t, pgtype.Range[any]{
		Lower:     int64(1),
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Unbounded,
		Valid:     true,
	}, got)

	got, err = b.Arg(value.EmptyRange(value.Int4Range))
	require.NoError(t, err)
	assert.Equal(t, pgtype.Range[any]{LowerType: pgtype.Empty, UpperType: pgtype.Empty, Valid: true}, got)

	got, err = b.Arg(value.ArrayOf(value.KindString, value.String("a"), value.Null(value.KindString)))
	require.NoError(t, err)
	assert.Equal(t, pgtype.FlatArray[any]{"a", nil}, got)

	_, err = b.Arg(value.ArrayOf(value.KindArray, value.ArrayOf(value.KindInt)))
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestBinder_Exec(t *testing.T) {
	conn := &fakeConn{}
	stmt := query.Insert().
		Into(testutil.GlyphTable).
		Columns(testutil.GlyphID, testutil.GlyphPrice).
		Values(int32(1), value.Decimal(decimal.RequireFromString("9.99")))

	tag, err := New(nil).Exec(context.Background(), conn, stmt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.RowsAffected())
	assert.Equal(t, `INSERT INTO "glyph" ("id", "price") VALUES ($1, $2)`, conn.sql)
	require.Len(t, conn.args, 2)
	assert.Equal(t, int32(1), conn.args[0])
	assert.IsType(t, pgtype.Numeric{}, conn.args[1])
}

func TestBinder_QueryError(t *testing.T) {
	conn := &fakeConn{err: assert.AnError}
	_, err := New(nil).Query(context.Background(), conn, query.Select().Column(testutil.GlyphID).From(testutil.GlyphTable))
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, `SELECT "id" FROM "glyph"`, conn.sql)
	assert.Nil(t, conn.args)
}
