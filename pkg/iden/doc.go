// Package iden defines the identifier model shared by every statement and dialect.
//
// An identifier is a name that a dialect must quote, as opposed to a literal
// that a dialect must escape. Callers usually declare their schema as string
// typed constants:
//
//	type Character string
//
//	func (c Character) Unquoted() string { return string(c) }
//
//	const (
//		CharacterTable Character = "character"
//		CharacterID    Character = "id"
//	)
//
// Such constants never allocate at render time. Ad-hoc names use Alias.
//
// The Golden Rule: pkg/iden imports ONLY stdlib.
package iden
