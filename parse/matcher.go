package parse

import "fmt"

// Token matches text against consecutive bytes of the input and yields the
// matched text. On any mismatch, including running out of input partway
// through, it is a Fail positioned at the entry cursor, never Incomplete:
// a failed token match does not report as having consumed anything.
func Token[C Input[C, byte]](text string) Rule[C, string] {
	return func(in C) Result[C, string] {
		scan := in.Clone()
		for i := 0; i < len(text); i++ {
			b, ok := scan.Next()
			if !ok || b != text[i] {
				return Fail[C, string](NewError(fmt.Sprintf("expected %q", text), in))
			}
		}
		return Complete(scan, text)
	}
}

// Literal is Token for arbitrary comparable elements: it matches the
// elements of want in order and yields want. Mismatch behavior is the same
// as Token's.
func Literal[E comparable, C Input[C, E]](want []E) Rule[C, []E] {
	return func(in C) Result[C, []E] {
		scan := in.Clone()
		for _, e := range want {
			got, ok := scan.Next()
			if !ok || got != e {
				return Fail[C, []E](NewError(fmt.Sprintf("expected %v", want), in))
			}
		}
		return Complete(scan, want)
	}
}

// EOF matches the end of the input, consuming nothing. E is the input's
// element type (byte for text cursors).
func EOF[E any, C Input[C, E]]() Rule[C, Unit] {
	return func(in C) Result[C, Unit] {
		probe := in.Clone()
		if _, ok := probe.Next(); ok {
			return Fail[C, Unit](NewError("expected end of input", in))
		}
		return Complete(in, Unit{})
	}
}

// Class matches one byte for which pred holds and yields it. name appears
// in the error message on mismatch. Running out of input is a Fail too,
// not Incomplete, positioned before the consumption attempt.
func Class[C Input[C, byte]](name string, pred func(byte) bool) Rule[C, byte] {
	return func(in C) Result[C, byte] {
		entry := in.Clone()
		b, ok := in.Next()
		if !ok {
			return Fail[C, byte](NewError(fmt.Sprintf("expected %s, got end of input", name), entry))
		}
		if !pred(b) {
			return Fail[C, byte](NewError(fmt.Sprintf("expected %s", name), entry))
		}
		return Complete(in, b)
	}
}

// Whitespace matches one ASCII whitespace byte.
func Whitespace[C Input[C, byte]]() Rule[C, byte] {
	return Class[C]("whitespace", isSpace)
}

// Digit matches one ASCII digit.
func Digit[C Input[C, byte]]() Rule[C, byte] {
	return Class[C]("digit", isDigit)
}

// Alpha matches one ASCII letter.
func Alpha[C Input[C, byte]]() Rule[C, byte] {
	return Class[C]("letter", isAlpha)
}

// AlphaNum matches one ASCII letter or digit.
func AlphaNum[C Input[C, byte]]() Rule[C, byte] {
	return Class[C]("letter or digit", isAlphaNum)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}
