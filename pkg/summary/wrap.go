package summary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wrap splits line into pieces of at most width runes using greedy
// word-wrap. A width of zero (or less) disables wrapping entirely, and a
// line that already fits is returned unchanged, trailing spaces included.
//
// Breaks happen only at whitespace runs; hyphens are never break
// opportunities. The whitespace run at a break point is consumed, interior
// runs are otherwise preserved. A single chunk longer than a whole line is
// hard-broken at the width boundary. Continuation lines are prefixed with
// indent, and every line makes at least one rune of progress regardless of
// how long the indent is.
func wrap(line string, width int, indent string) []string {
	if width <= 0 || utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	toks := splitRuns(line)
	var out []string
	prefix := ""
	var cur strings.Builder
	curLen := 0

	flush := func() {
		out = append(out, prefix+strings.TrimRight(cur.String(), " \t"))
		prefix = indent
		cur.Reset()
		curLen = 0
	}

	// avail is the room left for content on the current line, always at
	// least one rune so oversized indents cannot stall the loop.
	avail := func() int {
		a := width - utf8.RuneCountInString(prefix)
		if a < 1 {
			a = 1
		}
		return a
	}

	for i := 0; i < len(toks); {
		tok := toks[i]
		tokLen := utf8.RuneCountInString(tok)

		if curLen+tokLen <= avail() {
			cur.WriteString(tok)
			curLen += tokLen
			i++
			continue
		}

		if isSpaceRun(tok) {
			// Break here; the whitespace run is consumed.
			i++
			flush()
			continue
		}

		if strings.TrimRight(cur.String(), " \t") != "" {
			// Retry the word on a fresh line.
			flush()
			continue
		}

		// The word alone exceeds the line: hard break at the boundary.
		runes := []rune(tok)
		take := avail()
		if take > len(runes) {
			take = len(runes)
		}
		cur.WriteString(string(runes[:take]))
		toks[i] = string(runes[take:])
		if toks[i] == "" {
			i++
		}
		flush()
	}

	if strings.TrimRight(cur.String(), " \t") != "" {
		flush()
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

// splitRuns splits s into maximal runs of whitespace and non-whitespace.
// Concatenating the runs reproduces s exactly.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	prevSpace := false
	for i, r := range s {
		sp := unicode.IsSpace(r)
		if i == 0 {
			prevSpace = sp
			continue
		}
		if sp != prevSpace {
			runs = append(runs, s[start:i])
			start = i
			prevSpace = sp
		}
	}
	if start < len(s) {
		runs = append(runs, s[start:])
	}
	return runs
}

func isSpaceRun(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}
