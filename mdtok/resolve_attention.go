package mdtok

import (
	"unicode"
	"unicode/utf8"
)

// Attention resolver (spec.md §4.4.2, CommonMark's "delimiter run"
// algorithm per commonmark.js's inlines.js consumeAttention /
// original_source/src/construct/attention.rs resolve): pairs up the
// AttentionSequence runs attention.go recorded, in one left-to-right
// pass with a LIFO opener stack, using the surrounding bytes (not
// anything saved on the tokenizer, which is long gone by resolver time)
// to compute each run's left/right-flanking status.
//
// A pairing consumes at most two markers from either side, same as
// CommonMark: the rest of a longer run (e.g. `***`) stays on the stack
// (opener side) or keeps trying against the next-nearest opener (closer
// side) so it can pair again -- `***strong emph***` nests Strong inside
// Emphasis this way, each pairing peeling two then one marker off both
// ends. Markers that are still unconsumed once nothing more can pair
// against them are spliced in as literal Data.
func init() {
	registerResolver(resolverAttention, resolveAttention)
}

type attentionFrame struct {
	enterIdx          int
	basePoint         Point
	marker            byte
	start, end        int // remaining, not-yet-paired byte window
	canOpen, canClose bool
	committed         bool // whether a pairing has already spliced at enterIdx
}

func (f *attentionFrame) remaining() int { return f.end - f.start }

func resolveAttention(ps *ParseState, events []Event, edits *EditMap) {
	var stack []attentionFrame

	for i := 0; i < len(events); i++ {
		if !(events[i].Kind == Enter && events[i].Name == AttentionSequence) {
			continue
		}
		exitIdx := i + 1
		if exitIdx >= len(events) || events[exitIdx].Kind != Exit || events[exitIdx].Name != AttentionSequence {
			continue
		}
		start := events[i].Point.Index
		end := events[exitIdx].Point.Index
		if end <= start || start >= len(ps.Bytes) {
			continue
		}
		marker := ps.Bytes[start]
		before := runeBefore(ps.Bytes, start)
		after := runeAfter(ps.Bytes, end)

		leftFlank, rightFlank := flanking(before, after)
		canOpen, canClose := canOpenClose(marker, leftFlank, rightFlank, before, after)

		closer := attentionFrame{
			enterIdx:  i,
			basePoint: events[i].Point,
			marker:    marker, start: start, end: end,
			canOpen: canOpen, canClose: canClose,
		}

		if canClose {
			for closer.remaining() > 0 {
				j := findOpener(stack, marker, closer.remaining())
				if j < 0 {
					break
				}
				pairAttention(edits, &stack[j], &closer, marker)
				if stack[j].remaining() <= 0 {
					stack = append(stack[:j], stack[j+1:]...)
				}
			}
			if closer.committed {
				if closer.remaining() > 0 {
					edits.Add(closer.enterIdx, 0, []Event{
						{Kind: Enter, Name: Data, Point: pointAt(closer.basePoint, closer.start)},
						{Kind: Exit, Name: Data, Point: pointAt(closer.basePoint, closer.end)},
					})
				}
				continue
			}
		}
		if canOpen {
			stack = append(stack, closer)
		}
	}

	// Any opener left on the stack that was partly consumed still has a
	// genuine leftover on its text-distant side; nothing further will
	// ever pair against it once resolution is done scanning, so splice
	// it in as literal Data now.
	for i := range stack {
		f := &stack[i]
		if f.committed && f.remaining() > 0 {
			edits.AddBefore(f.enterIdx, 0, []Event{
				{Kind: Enter, Name: Data, Point: pointAt(f.basePoint, f.start)},
				{Kind: Exit, Name: Data, Point: pointAt(f.basePoint, f.end)},
			})
		}
	}
}

// findOpener returns the index in stack of the nearest (topmost)
// compatible opener for a closer of the given marker/size, honoring the
// "multiple of 3" rule for `*`/`_` (spec.md §4.4.2's edge case): when a
// run can both open and close, it may not pair with another such run if
// their combined size is a multiple of 3 unless both sizes are
// individually multiples of 3.
func findOpener(stack []attentionFrame, marker byte, closerSize int) int {
	for j := len(stack) - 1; j >= 0; j-- {
		f := &stack[j]
		if f.marker != marker {
			continue
		}
		if marker != '~' && f.canOpen && f.canClose {
			sum := f.remaining() + closerSize
			if sum%3 == 0 && !(f.remaining()%3 == 0 && closerSize%3 == 0) {
				continue
			}
		}
		return j
	}
	return -1
}

// pairAttention consumes one or two markers from the text-adjacent edge
// of both opener and closer -- the last n bytes of the opener's window,
// the first n bytes of the closer's -- splicing in the matching
// wrap/seq/text boundary events and shrinking both frames' windows in
// place. Either frame may already have been spliced once by an earlier,
// inner pairing (opener.committed / closer.committed), in which case
// this pairing's events are threaded in around the earlier ones rather
// than replacing them, so that e.g. an outer Emphasis ends up wrapping
// an already-resolved inner Strong.
func pairAttention(edits *EditMap, opener, closer *attentionFrame, marker byte) {
	n := 1
	if opener.remaining() >= 2 && closer.remaining() >= 2 {
		n = 2
	}

	var wrap, seq, text TokenName
	switch {
	case marker == '~':
		wrap, seq, text = GfmStrikethrough, GfmStrikethroughSequence, GfmStrikethroughText
	case n == 2:
		wrap, seq, text = Strong, StrongSequence, StrongText
	default:
		wrap, seq, text = Emphasis, EmphasisSequence, EmphasisText
	}

	oSplit := opener.end - n
	openerRepl := []Event{
		{Kind: Enter, Name: wrap, Point: pointAt(opener.basePoint, oSplit)},
		{Kind: Enter, Name: seq, Point: pointAt(opener.basePoint, oSplit)},
		{Kind: Exit, Name: seq, Point: pointAt(opener.basePoint, opener.end)},
		{Kind: Enter, Name: text, Point: pointAt(opener.basePoint, opener.end)},
	}
	if !opener.committed {
		edits.Add(opener.enterIdx, 2, openerRepl)
		opener.committed = true
	} else {
		edits.AddBefore(opener.enterIdx, 0, openerRepl)
	}
	opener.end = oSplit

	cSplit := closer.start + n
	closerRepl := []Event{
		{Kind: Exit, Name: text, Point: pointAt(closer.basePoint, closer.start)},
		{Kind: Enter, Name: seq, Point: pointAt(closer.basePoint, closer.start)},
		{Kind: Exit, Name: seq, Point: pointAt(closer.basePoint, cSplit)},
		{Kind: Exit, Name: wrap, Point: pointAt(closer.basePoint, cSplit)},
	}
	if !closer.committed {
		edits.Add(closer.enterIdx, 2, closerRepl)
		closer.committed = true
	} else {
		edits.Add(closer.enterIdx, 0, closerRepl)
	}
	closer.start = cSplit
}

// pointAt rebuilds a Point at a new byte index on the same line as base,
// valid because every caller stays within a single already-scanned
// AttentionSequence run (plain marker bytes, never a tab or line ending).
func pointAt(base Point, index int) Point {
	delta := index - base.Index
	return Point{Line: base.Line, Column: base.Column + delta, Index: index, VS: base.VS}
}

func runeBefore(bytes []byte, index int) rune {
	if index <= 0 {
		return '\n'
	}
	r, _ := utf8.DecodeLastRune(bytes[:index])
	if r == utf8.RuneError {
		return ' '
	}
	return r
}

func runeAfter(bytes []byte, index int) rune {
	if index >= len(bytes) {
		return '\n'
	}
	r, _ := utf8.DecodeRune(bytes[index:])
	if r == utf8.RuneError {
		return ' '
	}
	return r
}

func flanking(before, after rune) (left, right bool) {
	afterWs := isUnicodeWhitespace(after)
	afterPunct := isUnicodePunct(after)
	beforeWs := isUnicodeWhitespace(before)
	beforePunct := isUnicodePunct(before)

	left = !afterWs && (!afterPunct || beforeWs || beforePunct)
	right = !beforeWs && (!beforePunct || afterWs || afterPunct)
	return left, right
}

// isUnicodeWhitespace and isUnicodePunct classify the bytes surrounding
// a delimiter run per CommonMark's flanking rules (a superset of ASCII
// punctuation: any Unicode punctuation or symbol counts).
func isUnicodeWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isUnicodePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func canOpenClose(marker byte, left, right bool, before, after rune) (canOpen, canClose bool) {
	if marker != '_' {
		return left, right
	}
	beforePunct := isUnicodePunct(before)
	afterPunct := isUnicodePunct(after)
	canOpen = left && (!right || beforePunct)
	canClose = right && (!left || afterPunct)
	return canOpen, canClose
}
