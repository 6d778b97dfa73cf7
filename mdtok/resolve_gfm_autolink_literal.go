package mdtok

import (
	"regexp"
	"strings"
)

// GFM autolink literal resolver (spec.md §4.4.7, grounded on
// cmark-gfm's autolink extension and the note in text.go: matching
// depends on plain-text word-boundary context that's simplest to judge
// once a run's Data spans are flat, so this runs as a resolver instead
// of an inline construct). Recognizes bare `www.`/`http(s)://` URLs and
// bare emails inside Data text and wraps them the way an explicit
// <autolink> would.
//
// Simplification: trailing-punctuation trimming only strips one
// trailing ASCII punctuation run and one unmatched closing paren, not
// cmark-gfm's full character-entity-aware trimming.
func init() {
	registerResolver(resolverGfmAutolinkLiteral, resolveGfmAutolinkLiteral)
}

var (
	gfmWwwPattern   = regexp.MustCompile(`^www\.[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}(?:[/?#][^\s<]*)?`)
	gfmHttpPattern  = regexp.MustCompile(`^[Hh][Tt][Tt][Pp][Ss]?://[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}(?:[/?#][^\s<]*)?`)
	gfmEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9.\-_+]+@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)+`)
)

func resolveGfmAutolinkLiteral(ps *ParseState, events []Event, edits *EditMap) {
	if !ps.Constructs.GfmAutolinkLiteral {
		return
	}
	for i := 0; i+1 < len(events); i++ {
		if !(events[i].Kind == Enter && events[i].Name == Data &&
			events[i+1].Kind == Exit && events[i+1].Name == Data) {
			continue
		}
		start := events[i].Point.Index
		end := events[i+1].Point.Index
		if end <= start || end > len(ps.Bytes) {
			continue
		}
		raw := ps.Bytes[start:end]

		matchStart, matchEnd, wrap, ok := findGfmAutolinkLiteral(raw)
		if !ok {
			continue
		}

		absStart := start + matchStart
		absEnd := start + matchEnd

		var repl []Event
		if absStart > start {
			repl = append(repl,
				Event{Kind: Enter, Name: Data, Point: events[i].Point},
				Event{Kind: Exit, Name: Data, Point: pointAt(events[i].Point, absStart)},
			)
		}
		repl = append(repl,
			Event{Kind: Enter, Name: wrap, Point: pointAt(events[i].Point, absStart)},
			Event{Kind: Enter, Name: Data, Point: pointAt(events[i].Point, absStart)},
			Event{Kind: Exit, Name: Data, Point: pointAt(events[i].Point, absEnd)},
			Event{Kind: Exit, Name: wrap, Point: pointAt(events[i].Point, absEnd)},
		)
		if absEnd < end {
			repl = append(repl,
				Event{Kind: Enter, Name: Data, Point: pointAt(events[i].Point, absEnd)},
				Event{Kind: Exit, Name: Data, Point: events[i+1].Point},
			)
		}
		edits.Add(i, 2, repl)
	}
}

// findGfmAutolinkLiteral scans raw for the first valid www/http/email
// literal preceded by a word boundary, returning its byte offsets
// (after trailing-punctuation trimming) within raw.
func findGfmAutolinkLiteral(raw []byte) (start, end int, wrap TokenName, ok bool) {
	for i := 0; i < len(raw); i++ {
		if i > 0 && isWordByte(raw[i-1]) {
			continue
		}
		rest := raw[i:]
		var m string
		var w TokenName
		switch {
		case gfmHttpPattern.Match(rest):
			m = gfmHttpPattern.FindString(string(rest))
			w = GfmAutolinkLiteralHttp
		case gfmWwwPattern.Match(rest):
			m = gfmWwwPattern.FindString(string(rest))
			w = GfmAutolinkLiteralWww
		case gfmEmailPattern.Match(rest):
			m = gfmEmailPattern.FindString(string(rest))
			w = GfmAutolinkLiteralEmail
		default:
			continue
		}
		if m == "" {
			continue
		}
		m = trimGfmAutolinkTrailer(m)
		if m == "" {
			continue
		}
		return i, i + len(m), w, true
	}
	return 0, 0, 0, false
}

func isWordByte(b byte) bool {
	return isAsciiAlnum(b) || b == '_'
}

// trimGfmAutolinkTrailer strips one trailing run of ASCII punctuation
// and, failing that, a single unmatched closing paren, matching
// cmark-gfm's "a link can never end with punctuation" rule closely
// enough for common cases.
func trimGfmAutolinkTrailer(m string) string {
	for len(m) > 0 && strings.ContainsRune("?!.,:*_~'\"", rune(m[len(m)-1])) {
		m = m[:len(m)-1]
	}
	if strings.HasSuffix(m, ")") && strings.Count(m, "(") < strings.Count(m, ")") {
		m = m[:len(m)-1]
	}
	return m
}
