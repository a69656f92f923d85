package value

import (
	"fmt"
	"math"
	"net"
	"net/netip"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// From converts a host value into a Value. It panics on unsupported types;
// use TryFrom when the type is not known statically.
//
// Mapping: int and int64 become BigInt, uint and uint64 become BigUnsigned,
// time.Time becomes DateTimeWithTimeZone, nil pointers become the NULL of
// the pointee's kind and slices other than []byte become arrays.
func From(x any) Value {
	v, err := TryFrom(x)
	if err != nil {
		panic(err)
	}
	return v
}

// TryFrom converts a host value into a Value.
func TryFrom(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int8:
		return TinyInt(t), nil
	case int16:
		return SmallInt(t), nil
	case int32:
		return Int(t), nil
	case int:
		return BigInt(int64(t)), nil
	case int64:
		return BigInt(t), nil
	case uint8:
		return TinyUnsigned(t), nil
	case uint16:
		return SmallUnsigned(t), nil
	case uint32:
		return Unsigned(t), nil
	case uint:
		return BigUnsigned(uint64(t)), nil
	case uint64:
		return BigUnsigned(t), nil
	case float32:
		return Float(t), nil
	case float64:
		return Double(t), nil
	case string:
		return String(t), nil
	case []byte:
		if t == nil {
			return Null(KindBytes), nil
		}
		return Bytes(t), nil
	case time.Time:
		return DateTimeWithTimeZone(t), nil
	case uuid.UUID:
		return UUID(t), nil
	case decimal.Decimal:
		return Decimal(t), nil
	case *apd.Decimal:
		return BigDecimal(t), nil
	case apd.Decimal:
		return BigDecimal(&t), nil
	case netip.Prefix:
		return IPNetwork(t), nil
	case net.HardwareAddr:
		return MacAddress(t), nil
	case Vector:
		return NewVector(t), nil
	case Enum:
		return NewEnum(t.Type, t.Label), nil
	case nil:
		return Value{}, fmt.Errorf("value: cannot infer the kind of untyped nil")
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			k, err := kindOfType(rv.Type().Elem())
			if err != nil {
				return Value{}, err
			}
			if k == KindArray {
				elem, err := kindOfType(rv.Type().Elem().Elem())
				if err != nil {
					return Value{}, err
				}
				return NullArray(elem), nil
			}
			return Null(k), nil
		}
		return TryFrom(rv.Elem().Interface())
	case reflect.Slice:
		elemType := rv.Type().Elem()
		nullable := elemType.Kind() == reflect.Pointer
		if nullable {
			elemType = elemType.Elem()
		}
		elem, err := kindOfType(elemType)
		if err != nil {
			return Value{}, err
		}
		if rv.IsNil() {
			return NullArray(elem), nil
		}
		items := make([]Value, rv.Len())
		for i := range items {
			item, err := TryFrom(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("array item %d: %w", i, err)
			}
			items[i] = item
		}
		if elem == KindInvalid && len(items) > 0 {
			elem = items[0].kind
		}
		return ArrayOf(elem, items...), nil
	}
	return Value{}, fmt.Errorf("value: unsupported host type %T", x)
}

// FromPtr converts an optional host value: nil becomes the NULL of T's kind.
func FromPtr[T any](p *T) Value {
	return From(p)
}

func kindOfType(t reflect.Type) (Kind, error) {
	if t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8 {
		return KindArray, nil
	}
	zero := reflect.Zero(t).Interface()
	switch zero.(type) {
	case *apd.Decimal:
		return KindBigDecimal, nil
	case []byte:
		return KindBytes, nil
	case net.HardwareAddr:
		return KindMacAddress, nil
	case Vector:
		return KindVector, nil
	}
	v, err := TryFrom(zero)
	if err != nil {
		return KindInvalid, err
	}
	return v.kind, nil
}

// Interface returns the host form of v: nil for NULL, the natural Go type
// otherwise. Arrays become []any.
func (v Value) Interface() any {
	if v.null || v.kind == KindInvalid {
		return nil
	}
	switch v.kind {
	case KindBool:
		return v.bits == 1
	case KindTinyInt:
		return int8(v.bits)
	case KindSmallInt:
		return int16(v.bits)
	case KindInt:
		return int32(v.bits)
	case KindBigInt:
		return int64(v.bits)
	case KindTinyUnsigned:
		return uint8(v.bits)
	case KindSmallUnsigned:
		return uint16(v.bits)
	case KindUnsigned:
		return uint32(v.bits)
	case KindBigUnsigned:
		return v.bits
	case KindFloat:
		return math.Float32frombits(uint32(v.bits))
	case KindDouble:
		return math.Float64frombits(v.bits)
	case KindChar:
		return rune(v.bits)
	case KindString, KindJSON:
		return v.str
	case KindBytes:
		return []byte(v.str)
	case KindMacAddress:
		return net.HardwareAddr(v.str)
	case KindEnum:
		return v.str
	case KindBigDecimal:
		return new(apd.Decimal).Set(v.ext.(*apd.Decimal))
	case KindArray:
		a := v.ext.(*Array)
		out := make([]any, len(a.Items))
		for i, it := range a.Items {
			out[i] = it.Interface()
		}
		return out
	}
	return v.ext
}

// Get extracts a host value of type T. It fails with ErrTypeMismatch when
// the kind disagrees with T or the value is NULL.
func Get[T any](v Value) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *bool:
		*p, err = v.Bool()
	case *int8:
		err = v.expect(KindTinyInt)
		*p = int8(v.bits)
	case *int16:
		err = v.expect(KindSmallInt)
		*p = int16(v.bits)
	case *int32:
		err = v.expect(KindInt)
		*p = int32(v.bits)
	case *int64:
		err = v.expect(KindBigInt)
		*p = int64(v.bits)
	case *uint8:
		err = v.expect(KindTinyUnsigned)
		*p = uint8(v.bits)
	case *uint16:
		err = v.expect(KindSmallUnsigned)
		*p = uint16(v.bits)
	case *uint32:
		err = v.expect(KindUnsigned)
		*p = uint32(v.bits)
	case *uint64:
		err = v.expect(KindBigUnsigned)
		*p = v.bits
	case *float32:
		err = v.expect(KindFloat)
		*p = math.Float32frombits(uint32(v.bits))
	case *float64:
		err = v.expect(KindDouble)
		*p = math.Float64frombits(v.bits)
	case *string:
		*p, err = v.Str()
	case *[]byte:
		*p, err = v.ByteSlice()
	case *time.Time:
		*p, err = v.Time()
	case *uuid.UUID:
		*p, err = v.UUID()
	case *decimal.Decimal:
		*p, err = v.Decimal()
	case **apd.Decimal:
		*p, err = v.BigDecimal()
	case *netip.Prefix:
		*p, err = v.IPNetwork()
	case *net.HardwareAddr:
		*p, err = v.MacAddress()
	case *Vector:
		*p, err = v.Vector()
	case *Enum:
		*p, err = v.Enum()
	default:
		return out, fmt.Errorf("value: unsupported host type %T: %w", out, ErrTypeMismatch)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// GetOpt is like Get but maps NULL of the right kind to nil.
func GetOpt[T any](v Value) (*T, error) {
	if !v.null {
		out, err := Get[T](v)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
	var zero T
	want, err := kindOfType(reflect.TypeOf(&zero).Elem())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	if want == v.kind || (want.IsTemporal() && v.kind.IsTemporal()) {
		return nil, nil
	}
	return nil, &MismatchError{Want: want, Got: v.kind, Null: true}
}
