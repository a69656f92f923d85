package iden

// Iden is anything that can be emitted as an SQL identifier.
type Iden interface {
	// Unquoted returns the raw spelling, without quotes or escapes.
	Unquoted() string
}

// Alias is an ad-hoc identifier built from a string.
type Alias string

// Unquoted implements Iden.
func (a Alias) Unquoted() string { return string(a) }

// NullAlias is the identifier with an empty spelling.
type NullAlias struct{}

// Unquoted implements Iden.
func (NullAlias) Unquoted() string { return "" }

// Asterisk marks the `*` column. Renderers never quote it.
type Asterisk struct{}

// Unquoted implements Iden.
func (Asterisk) Unquoted() string { return "*" }

// Star is the shared Asterisk value.
var Star = Asterisk{}

// Dyn is a quotable identifier: the spelling plus a precomputed flag telling
// renderers whether the spelling needs an escape scan.
type Dyn struct {
	spelling string
	safe     bool
}

// Of converts any Iden into a Dyn. It is the single place identifiers are
// scanned, so rendering a Dyn never rescans.
func Of(i Iden) Dyn {
	if d, ok := i.(Dyn); ok {
		return d
	}
	if i == nil {
		return Dyn{safe: true}
	}
	s := i.Unquoted()
	return Dyn{spelling: s, safe: IsLiteralSafe(s)}
}

// Name is shorthand for Of(Alias(s)).
func Name(s string) Dyn {
	return Dyn{spelling: s, safe: IsLiteralSafe(s)}
}

// Unquoted implements Iden.
func (d Dyn) Unquoted() string { return d.spelling }

// LiteralSafe reports whether the spelling matches [A-Za-z_][A-Za-z0-9_]*.
func (d Dyn) LiteralSafe() bool { return d.safe }

// IsZero reports whether the identifier has an empty spelling.
func (d Dyn) IsZero() bool { return d.spelling == "" }

// String returns the spelling.
func (d Dyn) String() string { return d.spelling }

// IsLiteralSafe reports whether s consists only of [A-Za-z_][A-Za-z0-9_]*.
// The empty string is safe.
func IsLiteralSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// All converts a list of identifiers.
func All[T Iden](ids ...T) []Dyn {
	out := make([]Dyn, len(ids))
	for i, id := range ids {
		out[i] = Of(id)
	}
	return out
}
