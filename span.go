package pcfgo

import "fmt"

// Span is a half-open interval [From, To) over token positions in an input
// sentence. 0 ≤ From < To ≤ sentence length for any span admitted into a
// chart.
type Span [2]uint64

// NewSpan builds a Span from start (inclusive) and end (exclusive) offsets.
func NewSpan(from, to uint64) Span {
	return Span{from, to}
}

// From returns the start offset of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end offset of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the number of positions covered by the span.
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d…%d)", s[0], s[1])
}
