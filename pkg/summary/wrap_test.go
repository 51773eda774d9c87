package summary

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		width  int
		indent string
		want   []string
	}{
		{
			name:  "zero width is identity",
			line:  strings.Repeat("x", 200),
			width: 0,
			want:  []string{strings.Repeat("x", 200)},
		},
		{
			name:  "fitting line unchanged",
			line:  "short line",
			width: 40,
			want:  []string{"short line"},
		},
		{
			name:  "fitting line keeps trailing space",
			line:  "IGRAPH U--- 4 5 -- ",
			width: 78,
			want:  []string{"IGRAPH U--- 4 5 -- "},
		},
		{
			name:  "greedy break at spaces",
			line:  "aa bb cc dd",
			width: 5,
			want:  []string{"aa bb", "cc dd"},
		},
		{
			name:  "break consumes whitespace run",
			line:  "aa    bb",
			width: 4,
			want:  []string{"aa", "bb"},
		},
		{
			name:  "hyphen is not a break opportunity",
			line:  "one two-three four",
			width: 8,
			want:  []string{"one", "two-thre", "e four"},
		},
		{
			name:   "continuation indent",
			line:   "+ attr: alpha (g), beta (v), gamma (e)",
			width:  20,
			indent: "  ",
			want:   []string{"+ attr: alpha (g),", "  beta (v), gamma", "  (e)"},
		},
		{
			name:  "long word hard break",
			line:  "abcdefghij",
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.line, tt.width, tt.indent)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrap(%q, %d, %q) = %q, want %q", tt.line, tt.width, tt.indent, got, tt.want)
			}
		})
	}
}

func TestWrapOversizedIndentStillProgresses(t *testing.T) {
	// An indent at least as wide as the line must not stall the wrapper;
	// every line is guaranteed one rune of content.
	got := wrap(strings.Repeat("a", 10), 3, "xxxx")

	want := []string{"aaa"}
	for i := 0; i < 7; i++ {
		want = append(want, "xxxxa")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrap() = %q, want %q", got, want)
	}
}

func TestSplitRuns(t *testing.T) {
	got := splitRuns("a  bc d")
	want := []string{"a", "  ", "bc", " ", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitRuns() = %q, want %q", got, want)
	}

	if joined := strings.Join(got, ""); joined != "a  bc d" {
		t.Errorf("runs do not reassemble: %q", joined)
	}
}
