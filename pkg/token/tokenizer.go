package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenizer walks an input string. It never fails: anything that is not a
// quoted run, a word or whitespace comes out as single-character PUNCT.
type Tokenizer struct {
	input string
	pos   int
}

// NewTokenizer returns a tokenizer over input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize returns every token of input.
func Tokenize(input string) []Token {
	t := NewTokenizer(input)
	var out []Token
	for {
		tok := t.Next()
		if tok.Type == EOF {
			return out
		}
		out = append(out, tok)
	}
}

// Next returns the next token, or an EOF token at the end.
func (t *Tokenizer) Next() Token {
	if t.pos >= len(t.input) {
		return Token{Type: EOF, Pos: Position{Offset: t.pos}}
	}
	start := t.pos
	r, size := utf8.DecodeRuneInString(t.input[t.pos:])
	switch {
	case isSpace(r):
		t.scanWhile(isSpace)
		return t.emit(SPACE, start)
	case isWordStart(r):
		t.pos += size
		t.scanWhile(isWord)
		return t.emit(UNQUOTED, start)
	case isQuoteStart(r):
		t.scanQuoted(byte(r))
		return t.emit(QUOTED, start)
	default:
		t.pos += size
		return t.emit(PUNCT, start)
	}
}

func (t *Tokenizer) emit(typ TokenType, start int) Token {
	return Token{Type: typ, Text: t.input[start:t.pos], Pos: Position{Offset: start}}
}

func (t *Tokenizer) scanWhile(pred func(rune) bool) {
	for t.pos < len(t.input) {
		r, size := utf8.DecodeRuneInString(t.input[t.pos:])
		if !pred(r) {
			return
		}
		t.pos += size
	}
}

// scanQuoted consumes a quoted run. A doubled delimiter stays inside the
// run. An unterminated run extends to the end of input.
func (t *Tokenizer) scanQuoted(quote byte) {
	t.pos++
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		t.pos++
		if c != quote {
			continue
		}
		if t.pos < len(t.input) && t.input[t.pos] == quote {
			t.pos++
			continue
		}
		return
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWord(r rune) bool {
	return isWordStart(r) || r == '_'
}

func isQuoteStart(r rune) bool {
	return r == '\'' || r == '"' || r == '`'
}
