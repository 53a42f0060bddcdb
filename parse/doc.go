// Package parse provides combinators for building recursive-descent
// parsers in which a mismatch is either recoverable or fatal, and the
// distinction is tracked by the type system rather than by convention.
//
// # Overview
//
// A parser is assembled from rules. A rule consumes input through a cursor
// and reports one of four outcomes:
//
//	Complete    the rule matched; the result carries the advanced cursor
//	            and the produced value
//	Incomplete  the input ran out before the rule could decide
//	Fail        a recoverable mismatch; combinators like Either may try
//	            something else
//	Abort       a fatal mismatch; every combinator propagates it until
//	            Trap de-escalates it explicitly
//
// The Fail/Abort split is the point of the package: grammars mark the
// places where a mismatch stops being "try the next alternative" and
// becomes "the input is malformed" by wrapping a sub-rule in Must. An
// Abort skips all pending alternatives on its way up, so error messages
// come from where the problem is, not from the last alternative tried.
//
// # Cursors
//
// Rules are generic over their cursor type. A cursor is any type with an
// O(1) Clone and an Offset; consuming matchers additionally need Next, and
// the scanning combinators need Span and Seek. The input package provides
// two: input.Slice for arbitrary element sequences and input.Text for
// UTF-8 text with line/column tracking.
//
// Ownership follows one convention throughout: a rule owns the cursor it
// is handed. It may advance it freely, and the cursor carried by its
// result must reflect exactly the input it consumed. Combinators clone
// before invoking a sub-rule whenever they may need the entry position
// back, which is what makes backtracking cheap and safe.
//
// # Writing rules
//
// A rule is a plain function, so named rules are Go declarations and may
// reference each other recursively. Grammar packages typically pin the
// cursor type once with a generic alias and small wrappers:
//
//	type rule[O any] = parse.Rule[*input.Text, O]
//
//	func token(text string) rule[string] {
//		return parse.Token[*input.Text](text)
//	}
//
//	func scheme(in *input.Text) parse.Result[*input.Text, string] {
//		return parse.Seq2(
//			parse.Until[string](token("://")),
//			parse.Must(token("://")),
//			func(name string, _ string) string { return name },
//		)(in)
//	}
//
// Running a rule is calling it:
//
//	res := scheme(input.NewText("http://example.com"))
//	if res.IsComplete() {
//		fmt.Println(res.Value()) // "http"
//	}
//
// # Errors
//
// Fail and Abort carry an *Error: a message, a Position (offset, and
// line/column when the cursor tracks text), and an optional cause. WrapErr
// stacks context onto sub-rule errors as the parse unwinds, producing
// chains like
//
//	parsing url: expected "://"
//
// Error implements error and Unwrap, so the chains compose with errors.Is
// and errors.As.
//
// # Thread Safety
//
// Evaluation is synchronous and side-effect-free; nothing in the package
// mutates shared state. Independent parse attempts over cursors derived
// from the same source may run concurrently. A single cursor lineage must
// not be shared across goroutines.
package parse
