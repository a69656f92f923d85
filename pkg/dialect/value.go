package dialect

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/querykit/pkg/value"
)

// ErrBadStringLiteral is returned by UnquoteString for malformed input.
var ErrBadStringLiteral = errors.New("malformed string literal")

// value writes v as a marker, or as a literal on inline writers.
func (r *renderer) value(v value.Value) {
	if r.w.Inline() {
		r.literal(v)
		return
	}
	switch v.Kind() {
	case value.KindArray:
		if !r.cfg.SupportsArrays {
			r.unsupported("array values")
			return
		}
	case value.KindRange:
		if !r.cfg.SupportsRanges {
			r.unsupported("range values")
			return
		}
	}
	r.w.Bind(v)
}

// literal writes v inline regardless of the writer mode.
func (r *renderer) literal(v value.Value) {
	s, err := r.d.Literal(v)
	if err != nil {
		r.w.Fail(err)
		return
	}
	r.write(s)
}

func (r *renderer) values(vs []value.Value) {
	r.w.List(len(vs), ", ", func(i int) { r.value(vs[i]) })
}

// valuesList writes VALUES (..), (..).
func (r *renderer) valuesList(rows []value.Tuple) {
	r.write("VALUES ")
	r.w.List(len(rows), ", ", func(i int) {
		r.write("(")
		r.values(rows[i])
		r.write(")")
	})
}

// Literal returns the inline SQL form of v.
func (d *Base) Literal(v value.Value) (string, error) {
	if !v.IsValid() {
		return "", fmt.Errorf("%s: invalid value", d.cfg.Name)
	}
	if v.IsNull() {
		return "NULL", nil
	}
	switch k := v.Kind(); {
	case k == value.KindBool:
		b, _ := v.Bool()
		switch {
		case d.cfg.BoolAsInt && b:
			return "1", nil
		case d.cfg.BoolAsInt:
			return "0", nil
		case b:
			return "TRUE", nil
		default:
			return "FALSE", nil
		}
	case k.IsUnsigned():
		u, _ := v.Uint64()
		return strconv.FormatUint(u, 10), nil
	case k.IsInteger():
		i, _ := v.Int64()
		return strconv.FormatInt(i, 10), nil
	case k.IsFloat():
		f, _ := v.Float64()
		return d.float(f, k == value.KindFloat), nil
	case k == value.KindChar:
		c, _ := v.Rune()
		return d.QuoteString(string(c)), nil
	case k == value.KindString:
		s, _ := v.Str()
		return d.QuoteString(s), nil
	case k == value.KindBytes:
		b, _ := v.ByteSlice()
		return d.bytes(b), nil
	case k == value.KindJSON:
		s, _ := v.JSONText()
		return d.QuoteString(s), nil
	case k.IsTemporal():
		return d.QuoteString(value.FormatTemporal(v, d.cfg.TemporalOffsets)), nil
	case k == value.KindUUID:
		u, _ := v.UUID()
		return d.QuoteString(u.String()), nil
	case k == value.KindDecimal:
		dec, _ := v.Decimal()
		return dec.String(), nil
	case k == value.KindBigDecimal:
		dec, _ := v.BigDecimal()
		return dec.Text('f'), nil
	case k == value.KindIPNetwork:
		p, _ := v.IPNetwork()
		return d.QuoteString(p.String()), nil
	case k == value.KindMacAddress:
		hw, _ := v.MacAddress()
		return d.QuoteString(hw.String()), nil
	case k == value.KindVector:
		vec, _ := v.Vector()
		return d.QuoteString(vectorText(vec)), nil
	case k == value.KindEnum:
		e, _ := v.Enum()
		return d.QuoteString(e.Label), nil
	case k == value.KindArray:
		return d.array(v)
	case k == value.KindRange:
		return d.rangeLiteral(v)
	}
	return "", fmt.Errorf("%s: no literal form for %s", d.cfg.Name, v.Kind())
}

func (d *Base) float(f float64, single bool) string {
	switch {
	case math.IsNaN(f):
		return d.QuoteString("NaN")
	case math.IsInf(f, 1):
		return d.QuoteString("Infinity")
	case math.IsInf(f, -1):
		return d.QuoteString("-Infinity")
	}
	if single {
		return strconv.FormatFloat(f, 'f', -1, 32)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (d *Base) bytes(b []byte) string {
	h := hex.EncodeToString(b)
	switch d.cfg.Bytes {
	case BytesEscape:
		return `'\x` + h + "'"
	case BytesPrefixed:
		return "0x" + strings.ToUpper(h)
	case BytesFromHex:
		return "FROM_HEX('" + h + "')"
	case BytesHexToRaw:
		return "HEXTORAW('" + strings.ToUpper(h) + "')"
	case BytesBlobCast:
		var sb strings.Builder
		sb.WriteByte('\'')
		for _, c := range b {
			fmt.Fprintf(&sb, `\x%02X`, c)
		}
		sb.WriteString("'::BLOB")
		return sb.String()
	default:
		return "X'" + strings.ToUpper(h) + "'"
	}
}

func vectorText(vec value.Vector) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range vec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(f), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}

func (d *Base) array(v value.Value) (string, error) {
	if !d.cfg.SupportsArrays {
		return "", &UnsupportedError{Dialect: d.cfg.Name, Feature: "array values"}
	}
	a, _ := v.Array()
	if a.IsEmpty() && d.cfg.ArrayEmpty != "" {
		return d.cfg.ArrayEmpty, nil
	}
	var b strings.Builder
	b.WriteString(d.cfg.ArrayOpen)
	for i, it := range a.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		s, err := d.Literal(it)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString(d.cfg.ArrayClose)
	if a.Elem == value.KindEnum && a.EnumType != "" && d.cfg.SupportsEnumCast {
		b.WriteString("::")
		b.WriteString(d.QuoteIdentifier(a.EnumType))
		b.WriteString("[]")
	}
	return b.String(), nil
}

func (d *Base) rangeLiteral(v value.Value) (string, error) {
	if !d.cfg.SupportsRanges {
		return "", &UnsupportedError{Dialect: d.cfg.Name, Feature: "range values"}
	}
	rng, _ := v.Range()
	text := rng.Text(func(b value.Value) string {
		if b.Kind().IsNumeric() {
			s, _ := d.Literal(b)
			return s
		}
		if b.Kind().IsTemporal() {
			return `"` + value.FormatTemporal(b, true) + `"`
		}
		return `"` + rangeBoundText(b) + `"`
	})
	return d.QuoteString(text) + "::" + rng.Type.String(), nil
}

func rangeBoundText(v value.Value) string {
	switch v.Kind() {
	case value.KindDecimal:
		dec, _ := v.Decimal()
		return dec.String()
	case value.KindBigDecimal:
		dec, _ := v.BigDecimal()
		return dec.Text('f')
	case value.KindString:
		s, _ := v.Str()
		return s
	}
	return v.String()
}

// QuoteString returns s as a string literal using the dialect's escape
// rules.
func (d *Base) QuoteString(s string) string {
	switch d.cfg.Strings {
	case StringsBackslash:
		return "'" + escapeBackslash(s) + "'"
	case StringsPostgres:
		if needsEscapeString(s) {
			return "E'" + escapePostgres(s) + "'"
		}
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	default:
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
}

func escapeBackslash(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case 0:
			b.WriteString(`\0`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case 0x1a:
			b.WriteString(`\Z`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func needsEscapeString(s string) bool {
	for _, c := range s {
		if c == '\\' || c < 0x20 {
			return true
		}
	}
	return false
}

func escapePostgres(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`''`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, c)
				continue
			}
			b.WriteRune(c)
		}
	}
	return b.String()
}

// UnquoteString reverses QuoteString.
func (d *Base) UnquoteString(lit string) (string, error) {
	escapes := d.cfg.Strings == StringsBackslash
	if d.cfg.Strings == StringsPostgres && strings.HasPrefix(lit, "E'") {
		escapes = true
		lit = lit[1:]
	}
	if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return "", ErrBadStringLiteral
	}
	body := lit[1 : len(lit)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\'':
			if i+1 >= len(body) || body[i+1] != '\'' {
				return "", ErrBadStringLiteral
			}
			b.WriteByte('\'')
			i++
		case c == '\\' && escapes:
			if i+1 >= len(body) {
				return "", ErrBadStringLiteral
			}
			i++
			switch body[i] {
			case '0':
				b.WriteByte(0)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 'Z':
				b.WriteByte(0x1a)
			case 'x':
				if i+2 >= len(body) {
					return "", ErrBadStringLiteral
				}
				n, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
				if err != nil {
					return "", ErrBadStringLiteral
				}
				b.WriteByte(byte(n))
				i += 2
			default:
				b.WriteByte(body[i])
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
