// Package value holds the closed set of SQL values a statement can carry.
package value

import (
	"math"
	"net"
	"net/netip"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Value is a closed tagged union of every runtime value a statement can
// carry. The zero Value is invalid; use a constructor.
//
// Scalars live in bits or str; anything wider is boxed in ext.
type Value struct {
	kind Kind
	null bool
	bits uint64
	str  string
	ext  any
}

// Values is an ordered parameter list.
type Values []Value

// Kind returns the tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the NULL of its kind.
func (v Value) IsNull() bool { return v.null }

// IsValid reports whether v was built by a constructor.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Null returns the NULL of kind k. Use NullArray and NullEnum for the
// kinds that carry a type alongside their NULL.
func Null(k Kind) Value {
	switch k {
	case KindArray:
		return NullArray(KindInvalid)
	case KindEnum:
		return NullEnum("")
	}
	return Value{kind: k, null: true}
}

// Bool builds a Bool.
func Bool(b bool) Value {
	var bits uint64
	if b {
		bits = 1
	}
	return Value{kind: KindBool, bits: bits}
}

// TinyInt builds an 8-bit signed integer.
func TinyInt(i int8) Value { return Value{kind: KindTinyInt, bits: uint64(int64(i))} }

// SmallInt builds a 16-bit signed integer.
func SmallInt(i int16) Value { return Value{kind: KindSmallInt, bits: uint64(int64(i))} }

// Int builds a 32-bit signed integer.
func Int(i int32) Value { return Value{kind: KindInt, bits: uint64(int64(i))} }

// BigInt builds a 64-bit signed integer.
func BigInt(i int64) Value { return Value{kind: KindBigInt, bits: uint64(i)} }

// TinyUnsigned builds an 8-bit unsigned integer.
func TinyUnsigned(u uint8) Value { return Value{kind: KindTinyUnsigned, bits: uint64(u)} }

// SmallUnsigned builds a 16-bit unsigned integer.
func SmallUnsigned(u uint16) Value { return Value{kind: KindSmallUnsigned, bits: uint64(u)} }

// Unsigned builds a 32-bit unsigned integer.
func Unsigned(u uint32) Value { return Value{kind: KindUnsigned, bits: uint64(u)} }

// BigUnsigned builds a 64-bit unsigned integer.
func BigUnsigned(u uint64) Value { return Value{kind: KindBigUnsigned, bits: u} }

// Float builds a float32.
func Float(f float32) Value {
	return Value{kind: KindFloat, bits: uint64(math.Float32bits(f))}
}

// Double builds a float64.
func Double(f float64) Value {
	return Value{kind: KindDouble, bits: math.Float64bits(f)}
}

// Char builds a single unicode scalar.
func Char(r rune) Value { return Value{kind: KindChar, bits: uint64(r)} }

// String builds a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bytes builds a binary value. The slice is copied.
func Bytes(b []byte) Value { return Value{kind: KindBytes, str: string(b)} }

// UUID builds a Uuid.
func UUID(u uuid.UUID) Value { return Value{kind: KindUUID, ext: u} }

// Decimal builds a fixed-scale decimal.
func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, ext: d} }

// BigDecimal builds an arbitrary-precision decimal. The decimal is copied.
func BigDecimal(d *apd.Decimal) Value {
	if d == nil {
		return Null(KindBigDecimal)
	}
	c := new(apd.Decimal).Set(d)
	return Value{kind: KindBigDecimal, ext: c}
}

// IPNetwork builds an IP network (an address with a prefix length).
func IPNetwork(p netip.Prefix) Value { return Value{kind: KindIPNetwork, ext: p} }

// MacAddress builds a hardware address. The address is copied.
func MacAddress(hw net.HardwareAddr) Value {
	if hw == nil {
		return Null(KindMacAddress)
	}
	return Value{kind: KindMacAddress, str: string(hw)}
}

// Vector is a dense float32 embedding.
type Vector []float32

// NewVector builds a Vector value. The slice is copied.
func NewVector(f []float32) Value {
	if f == nil {
		return Null(KindVector)
	}
	return Value{kind: KindVector, ext: Vector(append([]float32(nil), f...))}
}

// Enum is a label of a user-defined enum type.
type Enum struct {
	// Type is the enum type name. It may be empty.
	Type  string
	Label string
}

// NewEnum builds an enum label.
func NewEnum(typeName, label string) Value {
	return Value{kind: KindEnum, str: label, ext: typeName}
}

// NullEnum is the NULL of an enum type.
func NullEnum(typeName string) Value {
	return Value{kind: KindEnum, null: true, ext: typeName}
}

// Bool returns the payload of a Bool.
func (v Value) Bool() (bool, error) {
	if err := v.expect(KindBool); err != nil {
		return false, err
	}
	return v.bits == 1, nil
}

// Int64 returns the payload of any signed integer kind.
func (v Value) Int64() (int64, error) {
	switch v.kind {
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt:
		if v.null {
			return 0, &MismatchError{Want: v.kind, Got: v.kind, Null: true}
		}
		return int64(v.bits), nil
	}
	return 0, &MismatchError{Want: KindBigInt, Got: v.kind, Null: v.null}
}

// Uint64 returns the payload of any unsigned integer kind.
func (v Value) Uint64() (uint64, error) {
	if !v.kind.IsUnsigned() {
		return 0, &MismatchError{Want: KindBigUnsigned, Got: v.kind, Null: v.null}
	}
	if v.null {
		return 0, &MismatchError{Want: v.kind, Got: v.kind, Null: true}
	}
	return v.bits, nil
}

// Float64 returns the payload of Float or Double.
func (v Value) Float64() (float64, error) {
	switch v.kind {
	case KindFloat:
		if v.null {
			break
		}
		return float64(math.Float32frombits(uint32(v.bits))), nil
	case KindDouble:
		if v.null {
			break
		}
		return math.Float64frombits(v.bits), nil
	default:
		return 0, &MismatchError{Want: KindDouble, Got: v.kind, Null: v.null}
	}
	return 0, &MismatchError{Want: v.kind, Got: v.kind, Null: true}
}

// Rune returns the payload of a Char.
func (v Value) Rune() (rune, error) {
	if err := v.expect(KindChar); err != nil {
		return 0, err
	}
	return rune(v.bits), nil
}

// Str returns the payload of a String.
func (v Value) Str() (string, error) {
	if err := v.expect(KindString); err != nil {
		return "", err
	}
	return v.str, nil
}

// ByteSlice returns a copy of the payload of Bytes.
func (v Value) ByteSlice() ([]byte, error) {
	if err := v.expect(KindBytes); err != nil {
		return nil, err
	}
	return []byte(v.str), nil
}

// UUID returns the payload of a Uuid.
func (v Value) UUID() (uuid.UUID, error) {
	if err := v.expect(KindUUID); err != nil {
		return uuid.Nil, err
	}
	return v.ext.(uuid.UUID), nil
}

// Decimal returns the payload of a Decimal.
func (v Value) Decimal() (decimal.Decimal, error) {
	if err := v.expect(KindDecimal); err != nil {
		return decimal.Zero, err
	}
	return v.ext.(decimal.Decimal), nil
}

// BigDecimal returns a copy of the payload of a BigDecimal.
func (v Value) BigDecimal() (*apd.Decimal, error) {
	if err := v.expect(KindBigDecimal); err != nil {
		return nil, err
	}
	return new(apd.Decimal).Set(v.ext.(*apd.Decimal)), nil
}

// IPNetwork returns the payload of an IpNetwork.
func (v Value) IPNetwork() (netip.Prefix, error) {
	if err := v.expect(KindIPNetwork); err != nil {
		return netip.Prefix{}, err
	}
	return v.ext.(netip.Prefix), nil
}

// MacAddress returns the payload of a MacAddress.
func (v Value) MacAddress() (net.HardwareAddr, error) {
	if err := v.expect(KindMacAddress); err != nil {
		return nil, err
	}
	return net.HardwareAddr(v.str), nil
}

// Vector returns a copy of the payload of a Vector.
func (v Value) Vector() (Vector, error) {
	if err := v.expect(KindVector); err != nil {
		return nil, err
	}
	return append(Vector(nil), v.ext.(Vector)...), nil
}

// Enum returns the payload of an Enum.
func (v Value) Enum() (Enum, error) {
	if err := v.expect(KindEnum); err != nil {
		return Enum{}, err
	}
	return Enum{Type: v.ext.(string), Label: v.str}, nil
}

// EnumType returns the type name carried by an Enum, NULL or not.
func (v Value) EnumType() string {
	if v.kind != KindEnum {
		return ""
	}
	s, _ := v.ext.(string)
	return s
}

// Time returns the payload of any temporal kind.
func (v Value) Time() (time.Time, error) {
	if !v.kind.IsTemporal() {
		return time.Time{}, &MismatchError{Want: KindDateTime, Got: v.kind, Null: v.null}
	}
	if v.null {
		return time.Time{}, &MismatchError{Want: v.kind, Got: v.kind, Null: true}
	}
	return v.ext.(time.Time), nil
}

func (v Value) expect(k Kind) error {
	if v.kind != k || v.null {
		return &MismatchError{Want: k, Got: v.kind, Null: v.null}
	}
	return nil
}
