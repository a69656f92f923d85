package value

import "fmt"

// Array is the payload of an Array value: an element kind and items of
// that kind. Items may be NULL. Arrays of arrays use Elem == KindArray.
type Array struct {
	Elem Kind
	// EnumType names the element type of enum arrays.
	EnumType string
	Items    []Value
}

// ArrayOf builds an array whose items must all be of kind elem. A mismatched
// item is a programmer error and panics.
func ArrayOf(elem Kind, items ...Value) Value {
	out := &Array{Elem: elem, Items: make([]Value, len(items))}
	for i, it := range items {
		if it.kind != elem {
			panic(fmt.Sprintf("value: array of %s cannot hold %s at index %d", elem, it.kind, i))
		}
		if elem == KindEnum && out.EnumType == "" {
			out.EnumType = it.EnumType()
		}
		out.Items[i] = it
	}
	return Value{kind: KindArray, ext: out}
}

// EnumArray builds an array of labels of one enum type. A nil label is NULL.
func EnumArray(typeName string, labels []*string) Value {
	out := &Array{Elem: KindEnum, EnumType: typeName, Items: make([]Value, len(labels))}
	for i, l := range labels {
		if l == nil {
			out.Items[i] = NullEnum(typeName)
			continue
		}
		out.Items[i] = NewEnum(typeName, *l)
	}
	return Value{kind: KindArray, ext: out}
}

// NullArray is the NULL of an array whose element kind is still known, so a
// dialect can emit a typed bind.
func NullArray(elem Kind) Value {
	return Value{kind: KindArray, null: true, ext: &Array{Elem: elem}}
}

// ArrayFrom converts a slice of host values with the given element
// constructor.
func ArrayFrom[T any](elem Kind, items []T, conv func(T) Value) Value {
	if items == nil {
		return NullArray(elem)
	}
	vals := make([]Value, len(items))
	for i, it := range items {
		vals[i] = conv(it)
	}
	return ArrayOf(elem, vals...)
}

// NullableArrayFrom converts a slice of optional host values. Nil items
// become NULL of elem.
func NullableArrayFrom[T any](elem Kind, items []*T, conv func(T) Value) Value {
	if items == nil {
		return NullArray(elem)
	}
	vals := make([]Value, len(items))
	for i, it := range items {
		if it == nil {
			vals[i] = Null(elem)
			continue
		}
		vals[i] = conv(*it)
	}
	return ArrayOf(elem, vals...)
}

// Array returns the payload of an Array value.
func (v Value) Array() (*Array, error) {
	if err := v.expect(KindArray); err != nil {
		return nil, err
	}
	return v.ext.(*Array), nil
}

// ArrayElem returns the element kind of an Array value, NULL or not.
func (v Value) ArrayElem() Kind {
	if a, ok := v.ext.(*Array); ok && v.kind == KindArray {
		return a.Elem
	}
	return KindInvalid
}

// IsEmpty reports whether the array has no items.
func (a *Array) IsEmpty() bool { return len(a.Items) == 0 }
