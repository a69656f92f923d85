// Package format provides the output buffer statements are rendered into.
//
// A Writer runs in one of two modes. Inline writers receive literal SQL for
// every value. Parameterised writers receive a positional marker instead and
// collect the value, so the text and the value list stay in step.
package format

import (
	"bytes"

	"github.com/leapstack-labs/querykit/pkg/value"
)

// Writer is a SQL text buffer with a parallel parameter list.
type Writer struct {
	buf    bytes.Buffer
	inline bool
	marker Marker
	values value.Values
	err    error
}

// NewWriter returns a Writer. marker is only consulted in parameterised
// mode and may be nil for inline writers.
func NewWriter(inline bool, marker Marker) *Writer {
	if marker == nil {
		marker = MarkerQuestion
	}
	return &Writer{inline: inline, marker: marker}
}

// Inline reports whether values are written as literals.
func (w *Writer) Inline() bool { return w.inline }

// Write appends s.
func (w *Writer) Write(s string) {
	w.buf.WriteString(s)
}

// Byte appends a single byte.
func (w *Writer) Byte(c byte) {
	w.buf.WriteByte(c)
}

// Rune appends a single rune.
func (w *Writer) Rune(r rune) {
	w.buf.WriteRune(r)
}

// Space appends a single space.
func (w *Writer) Space() {
	w.buf.WriteByte(' ')
}

// Bind appends the marker for the next parameter and records v.
func (w *Writer) Bind(v value.Value) {
	w.values = append(w.values, v)
	w.buf.WriteString(w.marker(len(w.values)))
}

// List calls each(i) for i in [0, n), writing sep between calls.
func (w *Writer) List(n int, sep string, each func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			w.buf.WriteString(sep)
		}
		each(i)
	}
}

// Fail records err. Only the first error is kept; rendering may continue
// but Result will report the error.
func (w *Writer) Fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Err returns the first recorded error.
func (w *Writer) Err() error { return w.err }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// String returns the text written so far.
func (w *Writer) String() string { return w.buf.String() }

// Values returns the collected parameters.
func (w *Writer) Values() value.Values { return w.values }

// Result returns the finished text and parameters, or the first error.
// A failed Writer never yields partial text.
func (w *Writer) Result() (string, value.Values, error) {
	if w.err != nil {
		return "", nil, w.err
	}
	return w.buf.String(), w.values, nil
}
