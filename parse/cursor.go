package parse

// Offsetable reports how many elements have been consumed from the input.
type Offsetable interface {
	Offset() int
}

// Cursor is what every combinator needs from an input position: an O(1)
// clone and the consumed-element count. A rule owns the cursor it is
// handed; it may advance it freely, and the cursor carried by its result
// must reflect exactly the input it consumed. Callers that need to come
// back to the starting point clone before invoking.
type Cursor[C any] interface {
	Clone() C
	Offsetable
}

// Input is a Cursor that yields elements of type E. Next returns the
// element at the cursor and advances past it, or reports false at the end
// of the input without advancing.
type Input[C, E any] interface {
	Cursor[C]
	Next() (E, bool)
}

// Spanner materializes the portion of the source between two offsets.
type Spanner[S any] interface {
	Span(start, end int) S
}

// Seeker repositions a cursor at an absolute offset, clamped to the input
// bounds, and returns the offset actually reached.
type Seeker interface {
	Seek(offset int) int
}

// Peeker reports the next element without consuming it.
type Peeker[E any] interface {
	Peek() (E, bool)
}

// Positioned reports a 1-based line and column within text input. Errors
// built from a Positioned cursor carry both in their Position.
type Positioned interface {
	Line() int
	Column() int
}

// SpanCursor is the capability set of the scanning combinators Until and
// While: base cursor operations plus span extraction and seeking.
type SpanCursor[C, S any] interface {
	Cursor[C]
	Spanner[S]
	Seeker
}
