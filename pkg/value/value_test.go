package value

import (
	"errors"
	"math"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	u := uuid.MustParse("4e6b3a2c-8c38-4f6f-9a3f-0d3cf1f0b7a1")
	prefix := netip.MustParsePrefix("10.0.0.0/8")

	tests := []struct {
		name     string
		input    any
		expected Kind
	}{
		{"bool", true, KindBool},
		{"int8", int8(1), KindTinyInt},
		{"int16", int16(1), KindSmallInt},
		{"int32", int32(1), KindInt},
		{"int", 1, KindBigInt},
		{"int64", int64(1), KindBigInt},
		{"uint8", uint8(1), KindTinyUnsigned},
		{"uint16", uint16(1), KindSmallUnsigned},
		{"uint32", uint32(1), KindUnsigned},
		{"uint64", uint64(1), KindBigUnsigned},
		{"float32", float32(1.5), KindFloat},
		{"float64", 1.5, KindDouble},
		{"string", "hex", KindString},
		{"bytes", []byte{1, 2}, KindBytes},
		{"time", time.Unix(0, 0), KindDateTimeWithTimeZone},
		{"uuid", u, KindUUID},
		{"decimal", decimal.RequireFromString("1.25"), KindDecimal},
		{"apd", apd.New(125, -2), KindBigDecimal},
		{"prefix", prefix, KindIPNetwork},
		{"mac", net.HardwareAddr{1, 2, 3, 4, 5, 6}, KindMacAddress},
		{"vector", Vector{1, 2}, KindVector},
		{"enum", Enum{Type: "mood", Label: "happy"}, KindEnum},
		{"slice", []int32{1, 2}, KindArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := From(tt.input)
			assert.Equal(t, tt.expected, v.Kind())
			assert.False(t, v.IsNull())
		})
	}
}

func TestFromPointers(t *testing.T) {
	var missing *int32
	v := FromPtr(missing)
	assert.True(t, v.IsNull())
	assert.Equal(t, KindInt, v.Kind())

	n := int32(7)
	v = FromPtr(&n)
	assert.False(t, v.IsNull())
	got, err := Get[int32](v)
	require.NoError(t, err)
	assert.Equal(t, int32(7), got)

	var ids *[]string
	arr := From(ids)
	assert.True(t, arr.IsNull())
	assert.Equal(t, KindArray, arr.Kind())
	assert.Equal(t, KindString, arr.ArrayElem())
}

func TestTryFromUnsupported(t *testing.T) {
	_, err := TryFrom(struct{}{})
	require.Error(t, err)

	_, err = TryFrom(nil)
	require.Error(t, err)
}

func TestGetMismatch(t *testing.T) {
	_, err := Get[string](Int(3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, KindString, mismatch.Want)
	assert.Equal(t, KindInt, mismatch.Got)

	_, err = Get[int32](Null(KindInt))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = Get[int64](Int(3))
	assert.True(t, errors.Is(err, ErrTypeMismatch), "Int is not BigInt")
}

func TestGetOpt(t *testing.T) {
	got, err := GetOpt[string](Null(KindString))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetOpt[string](String("x"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "x", *got)

	_, err = GetOpt[string](Null(KindInt))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	tm, err := GetOpt[time.Time](Null(KindDate))
	require.NoError(t, err)
	assert.Nil(t, tm)
}

func TestEqualFloats(t *testing.T) {
	nan := math.NaN()
	negZero := math.Copysign(0, -1)

	assert.True(t, Double(nan).Equal(Double(nan)))
	assert.True(t, Double(0).Equal(Double(negZero)))
	assert.True(t, Float(float32(nan)).Equal(Float(float32(nan))))
	assert.False(t, Double(1).Equal(Float(1)), "kinds differ")
	assert.Equal(t, Double(0).Hash(), Double(negZero).Hash())
}

func TestSetFloatTotality(t *testing.T) {
	for _, f := range []float32{0, float32(math.Copysign(0, -1)), float32(math.NaN())} {
		s := NewSet()
		s.Add(Float(f))
		s.Add(Float(f))
		assert.Equal(t, 1, s.Len())
	}

	for _, f := range []float64{0, math.Copysign(0, -1), math.NaN()} {
		s := NewSet()
		assert.True(t, s.Add(Double(f)))
		assert.False(t, s.Add(Double(f)))
		assert.True(t, s.Contains(Double(f)))
	}
}

func TestNullEquality(t *testing.T) {
	assert.True(t, Null(KindInt).Equal(Null(KindInt)))
	assert.False(t, Null(KindInt).Equal(Null(KindBigInt)))
	assert.False(t, Null(KindInt).Equal(Int(0)))
	assert.True(t, NullArray(KindString).Equal(NullArray(KindString)))
	assert.False(t, NullArray(KindString).Equal(NullArray(KindInt)))
}

func TestJSONCanonical(t *testing.T) {
	a, err := JSONRaw([]byte(`{"b": 1, "a": [true, null]}`))
	require.NoError(t, err)
	b := MustJSON(map[string]any{"a": []any{true, nil}, "b": 1})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	text, err := a.JSONText()
	require.NoError(t, err)
	assert.Equal(t, `{"a":[true,null],"b":1}`, text)

	var decoded map[string]any
	require.NoError(t, a.DecodeJSON(&decoded))
	assert.Contains(t, decoded, "a")

	_, err = JSONRaw([]byte(`{`))
	assert.Error(t, err)
}

func TestDecimalEquality(t *testing.T) {
	a := Decimal(decimal.RequireFromString("1.50"))
	b := Decimal(decimal.RequireFromString("1.5"))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	x := BigDecimal(apd.New(150, -2))
	y := BigDecimal(apd.New(15, -1))
	assert.True(t, x.Equal(y))
	assert.Equal(t, x.Hash(), y.Hash())
}

func TestTemporalFormat(t *testing.T) {
	ts := time.Date(2020, 1, 1, 2, 2, 2, 0, time.FixedZone("", 8*3600))
	frac := time.Date(1970, 1, 1, 0, 0, 0, 123456000, time.UTC)

	tests := []struct {
		name     string
		input    Value
		offset   bool
		expected string
	}{
		{"date", Date(ts), true, "2020-01-01"},
		{"time", TimeOfDay(frac), true, "00:00:00.123456"},
		{"naive", DateTime(ts), true, "2020-01-01 02:02:02"},
		{"naive fraction", DateTime(frac), true, "1970-01-01 00:00:00.123456"},
		{"offset", DateTimeWithTimeZone(ts), true, "2020-01-01 02:02:02 +08:00"},
		{"offset dropped", DateTimeWithTimeZone(ts), false, "2020-01-01 02:02:02"},
		{"utc", DateTimeUTC(frac), true, "1970-01-01 00:00:00.123456 +00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTemporal(tt.input, tt.offset))
		})
	}
}

func TestTemporalEquality(t *testing.T) {
	a := DateTimeWithTimeZone(time.Date(2020, 1, 1, 2, 0, 0, 0, time.FixedZone("", 3600)))
	b := DateTimeWithTimeZone(time.Date(2020, 1, 1, 1, 0, 0, 0, time.UTC))
	assert.False(t, a.Equal(b), "same instant, different offset")

	c := DateTime(time.Date(2020, 1, 1, 2, 0, 0, 0, time.FixedZone("", 3600)))
	d := DateTime(time.Date(2020, 1, 1, 2, 0, 0, 0, time.UTC))
	assert.True(t, c.Equal(d), "naive timestamps compare wall clocks")
	assert.Equal(t, c.Hash(), d.Hash())
}

func TestArrays(t *testing.T) {
	arr := ArrayFrom(KindInt, []int32{1, 2, 3}, Int)
	payload, err := arr.Array()
	require.NoError(t, err)
	assert.Len(t, payload.Items, 3)
	assert.Equal(t, KindInt, arr.ArrayElem())

	one := "a"
	nullable := NullableArrayFrom(KindString, []*string{&one, nil}, String)
	payload, err = nullable.Array()
	require.NoError(t, err)
	assert.True(t, payload.Items[1].IsNull())

	assert.Panics(t, func() { ArrayOf(KindInt, String("x")) })

	same := ArrayFrom(KindInt, []int32{1, 2, 3}, Int)
	assert.True(t, arr.Equal(same))
	assert.Equal(t, arr.Hash(), same.Hash())

	enums := EnumArray("mood", []*string{&one, nil})
	payload, err = enums.Array()
	require.NoError(t, err)
	assert.Equal(t, "mood", payload.EnumType)
}

func TestRangeText(t *testing.T) {
	r := NewRange(Int4Range, Inclusive(Int(1)), Exclusive(Int(10)))
	payload, err := r.Range()
	require.NoError(t, err)
	assert.Equal(t, "[1,10)", payload.Text(func(v Value) string { return v.debugPayload() }))

	open := NewRange(Int8Range, Unbounded, Inclusive(BigInt(5)))
	payload, err = open.Range()
	require.NoError(t, err)
	assert.Equal(t, "(,5]", payload.Text(func(v Value) string { return v.debugPayload() }))

	empty, err := EmptyRange(DateRange).Range()
	require.NoError(t, err)
	assert.Equal(t, "empty", empty.Text(nil))
}

func TestValuesAny(t *testing.T) {
	vs := Values{Int(3), String("X"), Null(KindDouble)}
	assert.Equal(t, []any{int32(3), "X", nil}, vs.Any())
	assert.True(t, vs.Equal(Values{Int(3), String("X"), Null(KindDouble)}))
}

func TestTupleOf(t *testing.T) {
	tup := TupleOf(int32(1), "a")
	assert.Equal(t, 2, tup.Arity())
	assert.True(t, tup.Equal(Tuple{Int(1), String("a")}))
}

func TestDebugString(t *testing.T) {
	assert.Equal(t, "Int(3)", Int(3).String())
	assert.Equal(t, `String("X")`, String("X").String())
	assert.Equal(t, "Double(NULL)", Null(KindDouble).String())
}
