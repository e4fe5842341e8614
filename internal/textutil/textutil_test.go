package textutil

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 0, ""},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestClipCropLeft(t *testing.T) {
	if got := Clip("abcdef", 3); got != "abc" {
		t.Errorf("Clip = %q, want abc", got)
	}
	if got := CropLeft("abcdef", 2); got != "cdef" {
		t.Errorf("CropLeft = %q, want cdef", got)
	}
	if got := CropLeft("abc", 0); got != "abc" {
		t.Errorf("CropLeft(0) = %q, want abc", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abc" {
		t.Errorf("PadRight clips = %q", got)
	}
}

func TestFrame(t *testing.T) {
	lines := Frame("ab\ncdef", 3, 3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	want := []string{"ab ", "cde", "   "}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if strings.Join(Frame("", 2, 1), "") != "  " {
		t.Error("empty render should normalize to blanks")
	}
}
