package input

import (
	"testing"
)

func TestSliceNext(t *testing.T) {
	cur := NewSlice([]int{10, 20})

	v, ok := cur.Next()
	if !ok || v != 10 {
		t.Errorf("Next() = %d, %v, want 10, true", v, ok)
	}
	v, ok = cur.Next()
	if !ok || v != 20 {
		t.Errorf("Next() = %d, %v, want 20, true", v, ok)
	}
	if _, ok := cur.Next(); ok {
		t.Error("Next() at end of input ok = true, want false")
	}
	if cur.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", cur.Offset())
	}
}

func TestSliceCloneIsIndependent(t *testing.T) {
	cur := NewSlice([]byte("abc"))
	cur.Next()

	cl := cur.Clone()
	cur.Next()

	if cl.Offset() != 1 {
		t.Errorf("clone Offset() = %d, want 1", cl.Offset())
	}
	if cur.Offset() != 2 {
		t.Errorf("original Offset() = %d, want 2", cur.Offset())
	}
}

func TestSlicePeek(t *testing.T) {
	cur := NewSlice([]int{7})

	v, ok := cur.Peek()
	if !ok || v != 7 {
		t.Errorf("Peek() = %d, %v, want 7, true", v, ok)
	}
	if cur.Offset() != 0 {
		t.Errorf("Offset() after Peek() = %d, want 0", cur.Offset())
	}

	cur.Next()
	if _, ok := cur.Peek(); ok {
		t.Error("Peek() at end of input ok = true, want false")
	}
}

func TestSliceSpan(t *testing.T) {
	cur := NewSlice([]byte("abcdef"))
	if got := string(cur.Span(2, 4)); got != "cd" {
		t.Errorf("Span(2, 4) = %q, want %q", got, "cd")
	}
}

func TestSliceSeekClamps(t *testing.T) {
	tests := []struct {
		to   int
		want int
	}{
		{-1, 0},
		{0, 0},
		{2, 2},
		{3, 3},
		{99, 3},
	}

	for _, tt := range tests {
		cur := NewSlice([]int{1, 2, 3})
		if got := cur.Seek(tt.to); got != tt.want {
			t.Errorf("Seek(%d) = %d, want %d", tt.to, got, tt.want)
		}
		if cur.Offset() != tt.want {
			t.Errorf("Offset() after Seek(%d) = %d, want %d", tt.to, cur.Offset(), tt.want)
		}
	}
}
