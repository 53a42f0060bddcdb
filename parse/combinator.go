package parse

// Rule matches input at a cursor and produces a value of type O. Named
// rules are ordinary functions of this type, so grammars may reference
// each other recursively through plain Go declarations.
type Rule[C, O any] func(C) Result[C, O]

// Not is negative lookahead: it matches, consuming nothing, exactly when
// rule does not match at the cursor. An Abort from rule is de-escalated
// before inversion, so a fatal match still counts as a match.
func Not[C Cursor[C], O any](rule Rule[C, O]) Rule[C, Unit] {
	return func(in C) Result[C, Unit] {
		entry := in.Clone()
		return Invert(entry, Deescalate(rule(in)))
	}
}

// Peek is lookahead: it runs rule and, on a match, returns its value with
// the cursor still at the entry position, consuming nothing. Other
// outcomes pass through unchanged.
func Peek[C Cursor[C], O any](rule Rule[C, O]) Rule[C, O] {
	return func(in C) Result[C, O] {
		entry := in.Clone()
		res := rule(in)
		if res.kind == KindComplete {
			return Complete(entry, res.out)
		}
		return res
	}
}

// Must escalates a mismatch: any Fail from rule becomes Abort, so no
// enclosing alternation tries anything else.
func Must[C, O any](rule Rule[C, O]) Rule[C, O] {
	return func(in C) Result[C, O] {
		return Escalate(rule(in))
	}
}

// MustComplete escalates like Must and additionally makes running out of
// input fatal, with msg as the message for that case.
func MustComplete[C Offsetable, O any](rule Rule[C, O], msg string) Rule[C, O] {
	return func(in C) Result[C, O] {
		return ForceComplete(rule(in), msg)
	}
}

// Trap de-escalates: any Abort from rule becomes an ordinary Fail, making
// the mismatch recoverable again.
func Trap[C, O any](rule Rule[C, O]) Rule[C, O] {
	return func(in C) Result[C, O] {
		return Deescalate(rule(in))
	}
}

// Settle downgrades an Incomplete from rule to a Fail built from msg. Used
// when the input is known to be complete, so running out of it can only
// mean "no match".
func Settle[C Offsetable, O any](rule Rule[C, O], msg string) Rule[C, O] {
	return func(in C) Result[C, O] {
		return SettleIncomplete(rule(in), msg)
	}
}

// WrapErr adds context to mismatches: a Fail or Abort from rule keeps its
// kind but reports msg at the entry position, with the original error as
// its cause.
func WrapErr[C Cursor[C], O any](rule Rule[C, O], msg string) Rule[C, O] {
	return func(in C) Result[C, O] {
		entry := in.Clone()
		return Wrap(entry, rule(in), msg)
	}
}

// Discard matches rule and drops its value.
func Discard[C, O any](rule Rule[C, O]) Rule[C, Unit] {
	return func(in C) Result[C, Unit] {
		res := rule(in)
		if res.kind == KindComplete {
			return Complete(res.rest, Unit{})
		}
		return Forward[Unit](res)
	}
}

// Mark matches nothing and yields a snapshot of the cursor itself, for
// capturing positions mid-sequence.
func Mark[C Cursor[C]]() Rule[C, C] {
	return func(in C) Result[C, C] {
		return Complete(in, in.Clone())
	}
}

// Seq2 runs two rules against a single advancing cursor and combines their
// values. The first non-Complete outcome from any step is the whole
// sequence's result, unchanged; nothing is produced until every step
// matches.
func Seq2[C, A, B, O any](ra Rule[C, A], rb Rule[C, B], combine func(A, B) O) Rule[C, O] {
	return func(in C) Result[C, O] {
		resA := ra(in)
		if resA.kind != KindComplete {
			return Forward[O](resA)
		}
		resB := rb(resA.rest)
		if resB.kind != KindComplete {
			return Forward[O](resB)
		}
		return Complete(resB.rest, combine(resA.out, resB.out))
	}
}

// Seq3 is Seq2 for three rules.
func Seq3[C, A, B, D, O any](ra Rule[C, A], rb Rule[C, B], rc Rule[C, D], combine func(A, B, D) O) Rule[C, O] {
	return func(in C) Result[C, O] {
		resA := ra(in)
		if resA.kind != KindComplete {
			return Forward[O](resA)
		}
		resB := rb(resA.rest)
		if resB.kind != KindComplete {
			return Forward[O](resB)
		}
		resC := rc(resB.rest)
		if resC.kind != KindComplete {
			return Forward[O](resC)
		}
		return Complete(resC.rest, combine(resA.out, resB.out, resC.out))
	}
}

// Seq4 is Seq2 for four rules.
func Seq4[C, A, B, D, E, O any](ra Rule[C, A], rb Rule[C, B], rc Rule[C, D], rd Rule[C, E], combine func(A, B, D, E) O) Rule[C, O] {
	return func(in C) Result[C, O] {
		resA := ra(in)
		if resA.kind != KindComplete {
			return Forward[O](resA)
		}
		resB := rb(resA.rest)
		if resB.kind != KindComplete {
			return Forward[O](resB)
		}
		resC := rc(resB.rest)
		if resC.kind != KindComplete {
			return Forward[O](resC)
		}
		resD := rd(resC.rest)
		if resD.kind != KindComplete {
			return Forward[O](resD)
		}
		return Complete(resD.rest, combine(resA.out, resB.out, resC.out, resD.out))
	}
}

// Seq runs rules of one output type in order against a single advancing
// cursor, collecting their values.
func Seq[C, O any](rules ...Rule[C, O]) Rule[C, []O] {
	return func(in C) Result[C, []O] {
		out := make([]O, 0, len(rules))
		cur := in
		for _, rule := range rules {
			res := rule(cur)
			if res.kind != KindComplete {
				return Forward[[]O](res)
			}
			out = append(out, res.out)
			cur = res.rest
		}
		return Complete(cur, out)
	}
}

// Either tries alternatives in order, each against a fresh clone of the
// entry cursor, and returns the first Complete or Incomplete. A Fail moves
// on to the next alternative; when every alternative fails, the last Fail
// is returned. An Abort stops the search immediately, even if a later
// alternative would have matched.
func Either[C Cursor[C], O any](first, second Rule[C, O], rest ...Rule[C, O]) Rule[C, O] {
	alternatives := append([]Rule[C, O]{first, second}, rest...)
	return func(in C) Result[C, O] {
		var res Result[C, O]
		for _, alt := range alternatives {
			res = alt(in.Clone())
			if res.kind != KindFail {
				return res
			}
		}
		return res
	}
}

// Optional makes a mismatch acceptable: a match yields Some(value), a Fail
// yields None with the cursor back at the entry position, and Incomplete
// and Abort propagate. Optional never fails.
func Optional[C Cursor[C], O any](rule Rule[C, O]) Rule[C, Opt[O]] {
	return func(in C) Result[C, Opt[O]] {
		entry := in.Clone()
		return MakeOptional(entry, rule(in))
	}
}

// Repeat matches rule as many times as it will match, collecting the
// values. Zero matches is success: the first Fail or Incomplete stops the
// loop with the cursor just before that attempt and whatever was collected
// is returned Complete. An Abort discards the collected values and
// propagates.
func Repeat[C Cursor[C], O any](rule Rule[C, O]) Rule[C, []O] {
	return func(in C) Result[C, []O] {
		var out []O
		for {
			res := rule(in.Clone())
			switch res.kind {
			case KindComplete:
				out = append(out, res.out)
				in = res.rest
			case KindAbort:
				return Abort[C, []O](res.err)
			default:
				return Complete(in, out)
			}
		}
	}
}

// Separated matches item at least once, with sep between items. An empty
// list is a Fail, not a zero-length match. A trailing separator with no
// item after it is left unconsumed for a later rule.
func Separated[C Cursor[C], S, O any](sep Rule[C, S], item Rule[C, O]) Rule[C, []O] {
	tail := Repeat(Seq2(sep, item, func(_ S, it O) O { return it }))
	return func(in C) Result[C, []O] {
		head := item(in)
		if head.kind != KindComplete {
			return Forward[[]O](head)
		}
		rest := tail(head.rest)
		if rest.kind != KindComplete {
			return rest
		}
		return Complete(rest.rest, append([]O{head.out}, rest.out...))
	}
}

// Until scans forward until terminator matches and returns the span of
// everything before it; the cursor in the result sits exactly at the
// terminator, which is not consumed. A Fail of the terminator consumes one
// element and retries; its Abort and Incomplete propagate; running out of
// input before any match is Incomplete. S is the cursor's span type.
func Until[S, O any, C SpanCursor[C, S]](terminator Rule[C, O]) Rule[C, S] {
	return func(in C) Result[C, S] {
		start := in.Offset()
		for {
			res := terminator(in.Clone())
			switch res.kind {
			case KindComplete:
				return Complete(in, in.Span(start, in.Offset()))
			case KindAbort, KindIncomplete:
				return Forward[S](res)
			}
			at := in.Offset()
			if in.Seek(at+1) == at {
				return Incomplete[C, S](in)
			}
		}
	}
}

// While scans forward as long as rule keeps matching and returns the span
// consumed up to the first position where it fails, which is left
// unconsumed. Abort and Incomplete from rule propagate; running out of
// input before rule ever fails is Incomplete. S is the cursor's span type.
func While[S, O any, C SpanCursor[C, S]](rule Rule[C, O]) Rule[C, S] {
	return func(in C) Result[C, S] {
		start := in.Offset()
		for {
			res := rule(in.Clone())
			switch res.kind {
			case KindFail:
				return Complete(in, in.Span(start, in.Offset()))
			case KindAbort, KindIncomplete:
				return Forward[S](res)
			}
			at := in.Offset()
			if in.Seek(at+1) == at {
				return Incomplete[C, S](in)
			}
		}
	}
}
