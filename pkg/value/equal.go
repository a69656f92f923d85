package value

import (
	"encoding/binary"
	"math"
	"net/netip"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zeebo/xxh3"
)

// Equal reports structural equality. Floats compare by a total order on
// their bits (NaN equals NaN, -0 equals +0), JSON by canonical text and
// bytes by content. A NULL equals only the NULL of the same kind.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.null != o.null {
		return false
	}
	if v.kind == KindArray && v.null {
		return v.ArrayElem() == o.ArrayElem()
	}
	if v.kind == KindEnum && v.EnumType() != o.EnumType() {
		return false
	}
	if v.null {
		return true
	}
	switch v.kind {
	case KindFloat:
		return canonicalFloat32(v.bits) == canonicalFloat32(o.bits)
	case KindDouble:
		return canonicalFloat64(v.bits) == canonicalFloat64(o.bits)
	case KindString, KindBytes, KindJSON, KindMacAddress, KindEnum:
		return v.str == o.str
	case KindUUID:
		return v.ext.(uuid.UUID) == o.ext.(uuid.UUID)
	case KindDecimal:
		return v.ext.(decimal.Decimal).Equal(o.ext.(decimal.Decimal))
	case KindBigDecimal:
		return v.ext.(*apd.Decimal).Cmp(o.ext.(*apd.Decimal)) == 0
	case KindIPNetwork:
		return v.ext.(netip.Prefix) == o.ext.(netip.Prefix)
	case KindVector:
		a, b := v.ext.(Vector), o.ext.(Vector)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if canonicalFloat32(uint64(math.Float32bits(a[i]))) != canonicalFloat32(uint64(math.Float32bits(b[i]))) {
				return false
			}
		}
		return true
	case KindArray:
		a, b := v.ext.(*Array), o.ext.(*Array)
		if a.Elem != b.Elem || a.EnumType != b.EnumType || len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !a.Items[i].Equal(b.Items[i]) {
				return false
			}
		}
		return true
	case KindRange:
		a, b := v.ext.(*Range), o.ext.(*Range)
		return a.Type == b.Type && a.Empty == b.Empty &&
			boundEqual(a.Lower, b.Lower) && boundEqual(a.Upper, b.Upper)
	}
	if v.kind.IsTemporal() {
		a, b := v.ext.(time.Time), o.ext.(time.Time)
		_, oa := a.Zone()
		_, ob := b.Zone()
		return a.Equal(b) && oa == ob
	}
	return v.bits == o.bits
}

func boundEqual(a, b Bound) bool {
	if a.Unbounded() || b.Unbounded() {
		return a.Unbounded() == b.Unbounded()
	}
	return a.Inclusive == b.Inclusive && a.Value.Equal(b.Value)
}

func canonicalFloat64(bits uint64) uint64 {
	f := math.Float64frombits(bits)
	switch {
	case math.IsNaN(f):
		return 0x7ff8000000000001
	case f == 0:
		return 0
	}
	return bits
}

func canonicalFloat32(bits uint64) uint64 {
	f := math.Float32frombits(uint32(bits))
	switch {
	case f != f:
		return 0x7fc00001
	case f == 0:
		return 0
	}
	return bits
}

// Hash returns a 64-bit hash consistent with Equal.
func (v Value) Hash() uint64 {
	return xxh3.Hash(v.appendHash(make([]byte, 0, 32)))
}

func (v Value) appendHash(b []byte) []byte {
	b = append(b, byte(v.kind))
	if v.null {
		b = append(b, 0)
		switch v.kind {
		case KindArray:
			b = append(b, byte(v.ArrayElem()))
		case KindEnum:
			b = append(b, v.EnumType()...)
		}
		return b
	}
	b = append(b, 1)
	switch v.kind {
	case KindFloat:
		return binary.LittleEndian.AppendUint64(b, canonicalFloat32(v.bits))
	case KindDouble:
		return binary.LittleEndian.AppendUint64(b, canonicalFloat64(v.bits))
	case KindString, KindBytes, KindJSON, KindMacAddress:
		return append(b, v.str...)
	case KindEnum:
		b = append(b, v.EnumType()...)
		b = append(b, 0)
		return append(b, v.str...)
	case KindUUID:
		u := v.ext.(uuid.UUID)
		return append(b, u[:]...)
	case KindDecimal:
		return append(b, v.ext.(decimal.Decimal).String()...)
	case KindBigDecimal:
		var r apd.Decimal
		r.Reduce(v.ext.(*apd.Decimal))
		return append(b, r.Text('f')...)
	case KindIPNetwork:
		return append(b, v.ext.(netip.Prefix).String()...)
	case KindVector:
		for _, f := range v.ext.(Vector) {
			b = binary.LittleEndian.AppendUint64(b, canonicalFloat32(uint64(math.Float32bits(f))))
		}
		return b
	case KindArray:
		a := v.ext.(*Array)
		b = append(b, byte(a.Elem))
		b = append(b, a.EnumType...)
		for _, it := range a.Items {
			b = it.appendHash(b)
		}
		return b
	case KindRange:
		r := v.ext.(*Range)
		b = append(b, byte(r.Type))
		if r.Empty {
			return append(b, 'e')
		}
		for _, bd := range []Bound{r.Lower, r.Upper} {
			if bd.Unbounded() {
				b = append(b, 'u')
				continue
			}
			if bd.Inclusive {
				b = append(b, 'i')
			} else {
				b = append(b, 'x')
			}
			b = bd.Value.appendHash(b)
		}
		return b
	}
	if v.kind.IsTemporal() {
		t := v.ext.(time.Time)
		_, off := t.Zone()
		b = binary.LittleEndian.AppendUint64(b, uint64(t.Unix()))
		b = binary.LittleEndian.AppendUint32(b, uint32(t.Nanosecond()))
		return binary.LittleEndian.AppendUint32(b, uint32(int32(off)))
	}
	return binary.LittleEndian.AppendUint64(b, v.bits)
}

// Set is a hash set of values keyed by Hash and resolved by Equal.
type Set struct {
	buckets map[uint64][]Value
	n       int
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]Value)}
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v Value) bool {
	h := v.Hash()
	for _, existing := range s.buckets[h] {
		if existing.Equal(v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	s.n++
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v Value) bool {
	for _, existing := range s.buckets[v.Hash()] {
		if existing.Equal(v) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct values.
func (s *Set) Len() int { return s.n }
