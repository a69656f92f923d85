package format

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/leapstack-labs/querykit/pkg/token"
)

// ErrBadCustomPlaceholder is returned when a custom expression template
// refers to an argument that was not supplied.
var ErrBadCustomPlaceholder = errors.New("bad custom placeholder")

// PlaceholderError describes an out-of-range template placeholder.
type PlaceholderError struct {
	Template string
	Index    int // 1-based
	Count    int
	Span     token.Span // placeholder position in Template
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("custom expression %q: placeholder %s at offset %d out of range (%d arguments)",
		e.Template, e.Placeholder(), e.Span.Start.Offset, e.Count)
}

// Placeholder returns the placeholder text as written in the template.
func (e *PlaceholderError) Placeholder() string {
	return e.Template[e.Span.Start.Offset:e.Span.End.Offset]
}

func (e *PlaceholderError) Unwrap() error { return ErrBadCustomPlaceholder }

// TemplateStyle selects how placeholders are spelled in custom expression
// templates.
type TemplateStyle uint8

const (
	// TemplateNumbered uses $1, $2, ... and $$ for a literal $.
	TemplateNumbered TemplateStyle = iota
	// TemplateSequential uses ? for the next argument and ?? for a literal ?.
	TemplateSequential
)

// Mark returns the placeholder character of the style.
func (s TemplateStyle) Mark() string {
	if s == TemplateSequential {
		return "?"
	}
	return "$"
}

// Expand writes tmpl to w, calling emit(i) for every placeholder that
// refers to argument i (0-based). Markers inside quoted runs are copied
// verbatim. Out-of-range placeholders fail the writer with a
// *PlaceholderError.
func Expand(w *Writer, tmpl string, style TemplateStyle, count int, emit func(i int)) {
	toks := token.Tokenize(tmpl)
	mark := style.Mark()
	next := 0
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if !tok.IsPunct(mark) {
			w.Write(tok.Text)
			continue
		}
		if i+1 < len(toks) && toks[i+1].IsPunct(mark) {
			w.Write(mark)
			i++
			continue
		}
		idx := next
		span := token.Span{Start: tok.Pos, End: token.Position{Offset: tok.Pos.Offset + len(tok.Text)}}
		if style == TemplateNumbered {
			if i+1 >= len(toks) || toks[i+1].Type != token.UNQUOTED {
				w.Write(mark)
				continue
			}
			n, err := strconv.Atoi(toks[i+1].Text)
			if err != nil {
				w.Write(mark)
				continue
			}
			idx = n - 1
			i++
			span.End.Offset = toks[i].Pos.Offset + len(toks[i].Text)
		} else {
			next++
		}
		if idx < 0 || idx >= count {
			w.Fail(&PlaceholderError{Template: tmpl, Index: idx + 1, Count: count, Span: span})
			continue
		}
		emit(idx)
	}
}
