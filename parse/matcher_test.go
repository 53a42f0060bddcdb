package parse_test

import (
	"strings"
	"testing"

	"github.com/dhamidi/parc/input"
	"github.com/dhamidi/parc/parse"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		token    string
		wantKind parse.Kind
		wantRest int
	}{
		{"match at start", "foobar", "foo", parse.KindComplete, 3},
		{"mismatch", "foobar", "bar", parse.KindFail, 0},
		{"input runs out mid-token", "fo", "foo", parse.KindFail, 0},
		{"empty input", "", "x", parse.KindFail, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tok(tt.token)(text(tt.input))
			if res.Kind() != tt.wantKind {
				t.Fatalf("Token(%q) on %q = %s, want %s", tt.token, tt.input, res.Kind(), tt.wantKind)
			}
			if res.IsComplete() {
				if res.Value() != tt.token {
					t.Errorf("Value() = %q, want %q", res.Value(), tt.token)
				}
				if res.Rest().Offset() != tt.wantRest {
					t.Errorf("Rest().Offset() = %d, want %d", res.Rest().Offset(), tt.wantRest)
				}
				return
			}
			if got := res.Err().Position().Offset; got != 0 {
				t.Errorf("error offset = %d, want 0 (before the attempted match)", got)
			}
		})
	}
}

func TestTokenAfterConsumedInput(t *testing.T) {
	first := tok("foo")(text("foobaz"))
	if !first.IsComplete() {
		t.Fatalf("Token(foo) = %s, want complete", first.Kind())
	}

	res := tok("bar")(first.Rest())
	if !res.IsFail() {
		t.Fatalf("Token(bar) at offset 3 = %s, want fail", res.Kind())
	}
	if got := res.Err().Position().Offset; got != 3 {
		t.Errorf("error offset = %d, want 3", got)
	}
}

func TestLiteral(t *testing.T) {
	lit := parse.Literal[int, *input.Slice[int]]([]int{1, 2})

	res := lit(input.NewSlice([]int{1, 2, 3}))
	if !res.IsComplete() {
		t.Fatalf("Literal on match = %s, want complete", res.Kind())
	}
	if got := res.Value(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Value() = %v, want [1 2]", got)
	}
	if res.Rest().Offset() != 2 {
		t.Errorf("Rest().Offset() = %d, want 2", res.Rest().Offset())
	}

	res = lit(input.NewSlice([]int{1, 3}))
	if !res.IsFail() {
		t.Fatalf("Literal on mismatch = %s, want fail", res.Kind())
	}
	if got := res.Err().Position().Offset; got != 0 {
		t.Errorf("error offset = %d, want 0", got)
	}
}

func TestEOF(t *testing.T) {
	eoi := parse.EOF[byte, *input.Text]()

	res := eoi(text(""))
	if !res.IsComplete() {
		t.Fatalf("EOF on empty input = %s, want complete", res.Kind())
	}
	if res.Rest().Offset() != 0 {
		t.Errorf("Rest().Offset() = %d, want 0 (EOF must not consume)", res.Rest().Offset())
	}

	if res := eoi(at("ab", 2)); !res.IsComplete() {
		t.Errorf("EOF at end of input = %s, want complete", res.Kind())
	}

	res = eoi(text("ab"))
	if !res.IsFail() {
		t.Fatalf("EOF mid-input = %s, want fail", res.Kind())
	}
	if got := res.Err().Message(); got != "expected end of input" {
		t.Errorf("error message = %q", got)
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name  string
		rule  parse.Rule[*input.Text, byte]
		input string
		want  byte
		ok    bool
	}{
		{"whitespace space", parse.Whitespace[*input.Text](), " x", ' ', true},
		{"whitespace tab", parse.Whitespace[*input.Text](), "\tx", '\t', true},
		{"whitespace newline", parse.Whitespace[*input.Text](), "\nx", '\n', true},
		{"whitespace mismatch", parse.Whitespace[*input.Text](), "x", 0, false},
		{"digit", parse.Digit[*input.Text](), "5x", '5', true},
		{"digit mismatch", parse.Digit[*input.Text](), "x5", 0, false},
		{"alpha lower", parse.Alpha[*input.Text](), "a1", 'a', true},
		{"alpha upper", parse.Alpha[*input.Text](), "Z", 'Z', true},
		{"alpha mismatch", parse.Alpha[*input.Text](), "1a", 0, false},
		{"alphanum letter", parse.AlphaNum[*input.Text](), "g", 'g', true},
		{"alphanum digit", parse.AlphaNum[*input.Text](), "9", '9', true},
		{"alphanum mismatch", parse.AlphaNum[*input.Text](), "-", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.rule(text(tt.input))
			if tt.ok {
				if !res.IsComplete() {
					t.Fatalf("rule(%q) = %s, want complete", tt.input, res.Kind())
				}
				if res.Value() != tt.want {
					t.Errorf("Value() = %q, want %q", res.Value(), tt.want)
				}
				if res.Rest().Offset() != 1 {
					t.Errorf("Rest().Offset() = %d, want 1", res.Rest().Offset())
				}
				return
			}
			if !res.IsFail() {
				t.Fatalf("rule(%q) = %s, want fail", tt.input, res.Kind())
			}
			if got := res.Err().Position().Offset; got != 0 {
				t.Errorf("error offset = %d, want 0", got)
			}
		})
	}
}

func TestClassOnEmptyInput(t *testing.T) {
	res := parse.Digit[*input.Text]()(text(""))
	if !res.IsFail() {
		t.Fatalf("Digit on empty input = %s, want fail", res.Kind())
	}
	if msg := res.Err().Message(); !strings.Contains(msg, "end of input") {
		t.Errorf("error message = %q, want it to mention end of input", msg)
	}
}
