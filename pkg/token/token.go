// Package token splits raw SQL fragments into a small set of lexical
// tokens. It is used to find parameter markers in custom expression
// templates without touching markers that sit inside quoted text.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// EOF marks the end of input.
	EOF TokenType = iota
	// QUOTED is a quoted run: 'text', "ident" or `ident`.
	QUOTED
	// UNQUOTED is a run of letters, digits and identifier characters.
	UNQUOTED
	// SPACE is a run of whitespace.
	SPACE
	// PUNCT is a single punctuation character.
	PUNCT
)

var tokenNames = map[TokenType]string{
	EOF:      "EOF",
	QUOTED:   "QUOTED",
	UNQUOTED: "UNQUOTED",
	SPACE:    "SPACE",
	PUNCT:    "PUNCT",
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// Token is one lexical unit. Text is a slice of the input, so
// concatenating every token's Text reproduces the input exactly.
type Token struct {
	Type TokenType
	Text string
	Pos  Position
}

// String returns the token text.
func (t Token) String() string { return t.Text }

// IsPunct reports whether t is the punctuation mark s.
func (t Token) IsPunct(s string) bool {
	return t.Type == PUNCT && t.Text == s
}
