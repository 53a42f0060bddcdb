package parse

import "fmt"

// Position locates a point in the input. Offset counts consumed elements;
// Line and Column are 1-based and zero when the cursor does not track them.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("offset %d", p.Offset)
}

// Error is a mismatch at a position in the input. Enclosing rules add
// context by stacking a new error on top of the old one, forming a chain
// that points backward to the primitive mismatch that started it.
type Error struct {
	msg   string
	pos   Position
	cause *Error
}

// NewError builds an error at the current position of at. When at also
// tracks line and column, both are captured into the error's Position.
func NewError(msg string, at Offsetable) *Error {
	return &Error{msg: msg, pos: positionOf(at)}
}

// CausedBy builds an error at the current position of at with cause as its
// predecessor.
func CausedBy(msg string, cause *Error, at Offsetable) *Error {
	return &Error{msg: msg, pos: positionOf(at), cause: cause}
}

func positionOf(at Offsetable) Position {
	pos := Position{Offset: at.Offset()}
	if t, ok := at.(Positioned); ok {
		pos.Line = t.Line()
		pos.Column = t.Column()
	}
	return pos
}

// Error renders the message followed by each cause's message.
func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Message returns the topmost message without the cause chain.
func (e *Error) Message() string { return e.msg }

// Position returns where the error occurred.
func (e *Error) Position() Position { return e.pos }

// Cause returns the error this one wraps, or nil.
func (e *Error) Cause() *Error { return e.cause }

// Unwrap exposes the cause chain to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}
