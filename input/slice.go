package input

import "github.com/dhamidi/parc/parse"

// Slice is a cursor over an element slice. It carries no text semantics:
// offsets count elements and there is no line/column tracking.
type Slice[E any] struct {
	src []E
	off int
}

// NewSlice returns a cursor at the start of src. The slice is not copied;
// the caller keeps ownership and must not mutate it while parsing.
func NewSlice[E any](src []E) *Slice[E] {
	return &Slice[E]{src: src}
}

// Clone returns an independent cursor at the same position.
func (c *Slice[E]) Clone() *Slice[E] {
	cp := *c
	return &cp
}

// Next returns the element at the cursor and advances past it, or reports
// false at the end of the input.
func (c *Slice[E]) Next() (E, bool) {
	if c.off >= len(c.src) {
		var zero E
		return zero, false
	}
	e := c.src[c.off]
	c.off++
	return e, true
}

// Peek returns the element at the cursor without advancing.
func (c *Slice[E]) Peek() (E, bool) {
	if c.off >= len(c.src) {
		var zero E
		return zero, false
	}
	return c.src[c.off], true
}

// Offset returns the number of elements consumed.
func (c *Slice[E]) Offset() int { return c.off }

// Span returns the sub-slice of the source between two offsets.
func (c *Slice[E]) Span(start, end int) []E {
	return c.src[start:end]
}

// Seek repositions the cursor at an absolute offset, clamped to the input
// bounds, and returns the offset reached.
func (c *Slice[E]) Seek(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.src) {
		offset = len(c.src)
	}
	c.off = offset
	return c.off
}

var (
	_ parse.Input[*Slice[byte], byte]        = (*Slice[byte])(nil)
	_ parse.SpanCursor[*Slice[byte], []byte] = (*Slice[byte])(nil)
	_ parse.Peeker[byte]                     = (*Slice[byte])(nil)
)
