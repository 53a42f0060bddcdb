package input

import "github.com/dhamidi/parc/parse"

// Text is a cursor over UTF-8 text. It yields bytes and tracks a 1-based
// line and column; consuming a newline advances the line and resets the
// column to 1. Columns count bytes, not runes.
type Text struct {
	src  string
	off  int
	line int
	col  int
}

// NewText returns a cursor at the start of src (line 1, column 1). The
// string is not copied.
func NewText(src string) *Text {
	return &Text{src: src, line: 1, col: 1}
}

// Clone returns an independent cursor at the same position.
func (c *Text) Clone() *Text {
	cp := *c
	return &cp
}

// Next returns the byte at the cursor and advances past it, or reports
// false at the end of the input.
func (c *Text) Next() (byte, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	b := c.src[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b, true
}

// Peek returns the byte at the cursor without advancing.
func (c *Text) Peek() (byte, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	return c.src[c.off], true
}

// Offset returns the number of bytes consumed.
func (c *Text) Offset() int { return c.off }

// Line returns the 1-based line of the cursor.
func (c *Text) Line() int { return c.line }

// Column returns the 1-based byte column of the cursor.
func (c *Text) Column() int { return c.col }

// Span returns the substring of the source between two offsets.
func (c *Text) Span(start, end int) string {
	return c.src[start:end]
}

// Seek repositions the cursor at an absolute offset, clamped to the input
// bounds, and returns the offset reached. Line and column stay accurate:
// the cursor walks forward to the target, restarting from the beginning of
// the input when seeking backward.
func (c *Text) Seek(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.src) {
		offset = len(c.src)
	}
	if offset < c.off {
		c.off, c.line, c.col = 0, 1, 1
	}
	for c.off < offset {
		c.Next()
	}
	return c.off
}

var (
	_ parse.Input[*Text, byte]        = (*Text)(nil)
	_ parse.SpanCursor[*Text, string] = (*Text)(nil)
	_ parse.Peeker[byte]              = (*Text)(nil)
	_ parse.Positioned                = (*Text)(nil)
)
