package mdtok

import (
	"testing"

	"github.com/russross/blackfriday"
	"github.com/stretchr/testify/require"
)

// blackfridayExtensions mirrors cmd/poc/main.go's own extension bitmask
// (jcorbin-soc/cmd/poc/main.go), reused here as a fixed reference
// configuration of what "GFM-ish" means rather than re-derived.
const blackfridayExtensions = 0 |
	blackfriday.NoIntraEmphasis |
	blackfriday.Tables |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough |
	blackfriday.SpaceHeadings |
	blackfriday.HeadingIDs |
	blackfriday.BackslashLineBreak

// countBlackfridayNodes walks a blackfriday AST counting each node type,
// the counterpart of countEnters below.
func countBlackfridayNodes(src string) map[blackfriday.NodeType]int {
	md := blackfriday.New(blackfriday.WithExtensions(blackfridayExtensions))
	root := md.Parse([]byte(src))
	counts := make(map[blackfriday.NodeType]int)
	root.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering {
			counts[n.Type]++
		}
		return blackfriday.GoToNext
	})
	return counts
}

func countEnters(events []Event, names ...TokenName) int {
	want := make(map[TokenName]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	n := 0
	for _, e := range events {
		if e.Kind == Enter && want[e.Name] {
			n++
		}
	}
	return n
}

// TestBlackfridayCrossConformance is a differential smoke test, not a
// conformance suite: for a handful of plain-CommonMark-plus-GFM inputs
// where both engines should agree on gross block/inline shape, mdtok's
// event counts are compared against blackfriday's node counts for the
// corresponding construct. It is intentionally limited to constructs
// blackfriday itself understands (no math, MDX, or footnotes).
func TestBlackfridayCrossConformance(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		bf    blackfriday.NodeType
		mdtok []TokenName
	}{
		{"heading", "# a\n\n## b\n", blackfriday.Heading, []TokenName{HeadingAtx, HeadingSetext}},
		{"emphasis", "a *b* c\n", blackfriday.Emphasis, []TokenName{Emphasis}},
		{"strong", "a **b** c\n", blackfriday.Strong, []TokenName{Strong}},
		{"strikethrough", "a ~~b~~ c\n", blackfriday.Del, []TokenName{GfmStrikethrough}},
		{"fenced code", "```go\nx\n```\n", blackfriday.CodeBlock, []TokenName{CodeFenced}},
		{"list", "- a\n- b\n", blackfriday.List, []TokenName{ListUnordered}},
		{"blockquote", "> a\n> b\n", blackfriday.BlockQuote, []TokenName{BlockQuote}},
		{"link", "[a](/b)\n", blackfriday.Link, []TokenName{Link}},
		{"thematic break", "---\n", blackfriday.HorizontalRule, []TokenName{ThematicBreak}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			events, msg := ToEvents([]byte(c.src), Options{Constructs: GFMConstructs()})
			require.Nil(t, msg)
			assertBalanced(t, events)

			got := countEnters(events, c.mdtok...)
			want := countBlackfridayNodes(c.src)[c.bf]
			require.Equal(t, want, got, "mdtok vs blackfriday node count for %q", c.src)
		})
	}
}
