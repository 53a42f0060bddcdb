package parse

// Kind identifies which of the four states a Result is in.
type Kind int

const (
	KindComplete Kind = iota
	KindIncomplete
	KindFail
	KindAbort
)

func (k Kind) String() string {
	switch k {
	case KindComplete:
		return "complete"
	case KindIncomplete:
		return "incomplete"
	case KindFail:
		return "fail"
	case KindAbort:
		return "abort"
	}
	return "unknown"
}

// Unit is the value of rules that match without producing anything.
type Unit struct{}

// Opt is an optionally-present value, produced by Optional and MakeOptional.
type Opt[O any] struct {
	V  O
	OK bool
}

// Some returns an Opt holding v.
func Some[O any](v O) Opt[O] { return Opt[O]{V: v, OK: true} }

// None returns an absent Opt.
func None[O any]() Opt[O] { return Opt[O]{} }

// Or returns the held value, or fallback when absent.
func (o Opt[O]) Or(fallback O) O {
	if o.OK {
		return o.V
	}
	return fallback
}

// Result is the outcome of running a rule over a cursor of type C:
//
//   - Complete: the rule matched. Rest has advanced past the consumed
//     input and Value holds the produced O.
//   - Incomplete: the input ran out before the rule could decide. Rest
//     sits at the exhaustion point.
//   - Fail: a recoverable mismatch. Alternation and friends may try
//     something else; Err carries the message and position.
//   - Abort: a fatal mismatch. Every combinator propagates it unchanged
//     until Trap or Deescalate is applied explicitly.
//
// Results are built through the four constructors only, keeping the set of
// states closed.
type Result[C, O any] struct {
	kind Kind
	rest C
	out  O
	err  *Error
}

// Complete returns a successful match: rest has consumed the matched input
// and out is the produced value.
func Complete[C, O any](rest C, out O) Result[C, O] {
	return Result[C, O]{kind: KindComplete, rest: rest, out: out}
}

// Incomplete reports that the input ran out before the rule could decide;
// rest sits at the exhaustion point.
func Incomplete[C, O any](rest C) Result[C, O] {
	return Result[C, O]{kind: KindIncomplete, rest: rest}
}

// Fail reports a recoverable mismatch.
func Fail[C, O any](err *Error) Result[C, O] {
	return Result[C, O]{kind: KindFail, err: err}
}

// Abort reports a fatal mismatch that no alternative may recover from.
func Abort[C, O any](err *Error) Result[C, O] {
	return Result[C, O]{kind: KindAbort, err: err}
}

// Kind returns which of the four states the result is in.
func (r Result[C, O]) Kind() Kind { return r.kind }

func (r Result[C, O]) IsComplete() bool   { return r.kind == KindComplete }
func (r Result[C, O]) IsIncomplete() bool { return r.kind == KindIncomplete }
func (r Result[C, O]) IsFail() bool       { return r.kind == KindFail }
func (r Result[C, O]) IsAbort() bool      { return r.kind == KindAbort }

// Value returns the produced value; it is the zero O unless the result is
// Complete.
func (r Result[C, O]) Value() O { return r.out }

// Rest returns the cursor carried by a Complete or Incomplete result; it
// is the zero C for Fail and Abort.
func (r Result[C, O]) Rest() C { return r.rest }

// Err returns the error of a Fail or Abort result, or nil.
func (r Result[C, O]) Err() *Error { return r.err }

// Invert flips a mismatch into a match and back: Fail becomes
// Complete(entry, Unit{}), Complete becomes Fail positioned at entry, and
// Incomplete and Abort pass through. entry must be the cursor from before
// the inverted rule ran.
func Invert[C Offsetable, O any](entry C, res Result[C, O]) Result[C, Unit] {
	switch res.kind {
	case KindComplete:
		return Fail[C, Unit](NewError("matched input that should not match", entry))
	case KindFail:
		return Complete(entry, Unit{})
	case KindIncomplete:
		return Incomplete[C, Unit](res.rest)
	default:
		return Abort[C, Unit](res.err)
	}
}

// Escalate turns a recoverable Fail into a fatal Abort, keeping the error.
func Escalate[C, O any](res Result[C, O]) Result[C, O] {
	if res.kind == KindFail {
		return Abort[C, O](res.err)
	}
	return res
}

// Deescalate turns an Abort back into a recoverable Fail, keeping the
// error.
func Deescalate[C, O any](res Result[C, O]) Result[C, O] {
	if res.kind == KindAbort {
		return Fail[C, O](res.err)
	}
	return res
}

// ForceComplete makes anything short of a match fatal: Fail becomes Abort
// with the original error, and Incomplete becomes Abort with a new error
// built from msg at the exhaustion point.
func ForceComplete[C Offsetable, O any](res Result[C, O], msg string) Result[C, O] {
	switch res.kind {
	case KindFail:
		return Abort[C, O](res.err)
	case KindIncomplete:
		return Abort[C, O](NewError(msg, res.rest))
	default:
		return res
	}
}

// SettleIncomplete downgrades running out of input to an ordinary
// mismatch: Incomplete becomes Fail with a new error built from msg;
// everything else passes through.
func SettleIncomplete[C Offsetable, O any](res Result[C, O], msg string) Result[C, O] {
	if res.kind == KindIncomplete {
		return Fail[C, O](NewError(msg, res.rest))
	}
	return res
}

// Wrap adds diagnostic context to a Fail or Abort: the result keeps its
// kind, but its error becomes a new one with msg on top, positioned at
// entry, with the original error as the cause. Complete and Incomplete
// pass through.
func Wrap[C Offsetable, O any](entry C, res Result[C, O], msg string) Result[C, O] {
	switch res.kind {
	case KindFail:
		return Fail[C, O](CausedBy(msg, res.err, entry))
	case KindAbort:
		return Abort[C, O](CausedBy(msg, res.err, entry))
	default:
		return res
	}
}

// MakeOptional absorbs a mismatch into an absent value: Complete(i, v)
// becomes Complete(i, Some(v)), Fail becomes Complete(entry, None), and
// Incomplete and Abort pass through.
func MakeOptional[C, O any](entry C, res Result[C, O]) Result[C, Opt[O]] {
	switch res.kind {
	case KindComplete:
		return Complete(res.rest, Some(res.out))
	case KindFail:
		return Complete(entry, None[O]())
	case KindIncomplete:
		return Incomplete[C, Opt[O]](res.rest)
	default:
		return Abort[C, Opt[O]](res.err)
	}
}

// Forward re-types a non-Complete result so a combinator can pass a
// sub-rule's Incomplete, Fail, or Abort through unchanged while producing
// a different output type. Forward panics on a Complete result.
func Forward[B, C, O any](res Result[C, O]) Result[C, B] {
	switch res.kind {
	case KindIncomplete:
		return Incomplete[C, B](res.rest)
	case KindFail:
		return Fail[C, B](res.err)
	case KindAbort:
		return Abort[C, B](res.err)
	}
	panic("parse: Forward called on a Complete result")
}
