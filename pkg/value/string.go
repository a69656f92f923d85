package value

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// String renders v for diagnostics, e.g. Int(3) or String("hex").
// Dialects never use it; they have their own literal formatters.
func (v Value) String() string {
	if v.kind == KindInvalid {
		return "Invalid"
	}
	if v.null {
		return v.kind.String() + "(NULL)"
	}
	return v.kind.String() + "(" + v.debugPayload() + ")"
}

func (v Value) debugPayload() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.bits == 1)
	case KindFloat:
		f, _ := v.Float64()
		return strconv.FormatFloat(f, 'f', -1, 32)
	case KindDouble:
		f, _ := v.Float64()
		return strconv.FormatFloat(f, 'f', -1, 64)
	case KindChar:
		return strconv.QuoteRune(rune(v.bits))
	case KindString, KindEnum:
		return strconv.Quote(v.str)
	case KindBytes, KindMacAddress:
		return hex.EncodeToString([]byte(v.str))
	case KindJSON:
		return v.str
	case KindArray:
		a := v.ext.(*Array)
		parts := make([]string, len(a.Items))
		for i, it := range a.Items {
			parts[i] = it.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindRange:
		return v.ext.(*Range).Text(func(b Value) string { return b.debugPayload() })
	}
	if v.kind.IsTemporal() {
		return FormatTemporal(v, true)
	}
	if v.kind.IsInteger() {
		if v.kind.IsUnsigned() {
			return strconv.FormatUint(v.bits, 10)
		}
		return strconv.FormatInt(int64(v.bits), 10)
	}
	return fmt.Sprint(v.ext)
}
