package mdtok

import "bytes"

// Whitespace resolver (spec.md §4.4.6, grounded on
// micromark-util-resolve-all's resolveWhitespace and original_source/src/
// construct/partial_whitespace.rs): promotes two-or-more trailing spaces
// at the end of a text/string line into HardBreakTrailing, same as a
// backslash already does at parse time in hard_break_escape.go. Runs
// first in resolverOrder; it only ever looks at Data spans and the
// LineEnding that follows them.
func init() {
	registerResolver(resolverWhitespace, resolveWhitespace)
}

func resolveWhitespace(ps *ParseState, events []Event, edits *EditMap) {
	if !ps.Constructs.HardBreakTrailing {
		return
	}
	for i := 0; i+2 < len(events); i++ {
		if !(events[i].Kind == Enter && events[i].Name == Data &&
			events[i+1].Kind == Exit && events[i+1].Name == Data) {
			continue
		}
		// Skip the exits of the enclosing chunk and line tokens.
		j := i + 2
		for j < len(events) && events[j].Kind == Exit {
			j++
		}
		if !(j < len(events) && events[j].Kind == Enter && events[j].Name == LineEnding) {
			continue
		}
		start := events[i].Point.Index
		end := events[i+1].Point.Index
		if end <= start || end > len(ps.Bytes) {
			continue
		}
		raw := ps.Bytes[start:end]
		trimmed := bytes.TrimRight(raw, " ")
		trailing := len(raw) - len(trimmed)
		if trailing < 2 {
			continue
		}
		splitPoint := pointPlus(events[i+1].Point, -trailing)
		edits.Add(i+1, 1, []Event{
			{Kind: Exit, Name: Data, Point: splitPoint},
			{Kind: Enter, Name: HardBreakTrailing, Point: splitPoint},
			{Kind: Exit, Name: HardBreakTrailing, Point: events[i+1].Point},
		})
	}
}

// pointPlus shifts a Point by delta bytes along the same line, valid
// only when none of the shifted-over bytes are tabs or line endings
// (true for plain-space runs and single-byte marker sequences, the only
// callers of this helper).
func pointPlus(base Point, delta int) Point {
	return Point{Line: base.Line, Column: base.Column + delta, Index: base.Index + delta, VS: base.VS}
}
