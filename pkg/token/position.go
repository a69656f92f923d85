package token

// Position represents a location in the tokenized input.
type Position struct {
	Offset int // 0-based byte offset
}

// Span represents a range in the tokenized input.
type Span struct {
	Start Position
	End   Position
}
