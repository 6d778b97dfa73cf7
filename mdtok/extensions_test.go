package mdtok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mdxConstructs mirrors micromark-extension-mdx's own stance: JSX
// replaces raw HTML rather than coexisting with it, so html-flow/
// html-text are turned off alongside turning the MDX constructs on.
func mdxConstructs() ConstructsMask {
	c := GFMConstructs()
	c.HtmlFlow = false
	c.HtmlText = false
	c.MdxEsm = true
	c.MdxExpressionFlow = true
	c.MdxExpressionText = true
	c.MdxJsxFlow = true
	c.MdxJsxText = true
	return c
}

func TestToEventsMdxEsm(t *testing.T) {
	src := "import a from 'b'\n\n# c\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: mdxConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, MdxEsm))
}

func TestToEventsMdxExpressionFlow(t *testing.T) {
	src := "{1 + 1}\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: mdxConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, MdxExpressionFlow))
}

func TestToEventsMdxExpressionText(t *testing.T) {
	src := "a {b} c\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: mdxConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, MdxExpressionText))
}

func TestToEventsMdxJsxFlow(t *testing.T) {
	src := "<Foo bar=\"baz\" />\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: mdxConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, MdxJsxFlowTag))
}

func TestToEventsMdxJsxText(t *testing.T) {
	src := "a <b/> c\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: mdxConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, MdxJsxTextTag))
}

func TestToEventsFrontmatter(t *testing.T) {
	c := GFMConstructs()
	c.Frontmatter = true
	src := "---\ntitle: x\n---\n\n# body\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: c})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, Frontmatter))
	require.True(t, hasEnter(events, HeadingAtx))
}

func TestToEventsGfmFootnote(t *testing.T) {
	src := "a[^1]\n\n[^1]: note\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, GfmFootnoteCall))
	require.True(t, hasEnter(events, GfmFootnoteDefinition))
}

func TestToEventsGfmUndefinedFootnoteDegrades(t *testing.T) {
	src := "a[^missing]\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.False(t, hasEnter(events, GfmFootnoteCall))
}

func TestToEventsGfmTableAlignment(t *testing.T) {
	src := "|a|b|c|\n|:-|:-:|-:|\n|1|2|3|\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, GfmTable))
	require.True(t, hasEnter(events, GfmTableHead))
	require.True(t, hasEnter(events, GfmTableBody))
	require.True(t, hasEnter(events, GfmTableDelimiterRow))
}

func TestToEventsGfmTaskListItem(t *testing.T) {
	src := "- [ ] todo\n- [x] done\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, GfmTaskListItemValueUnchecked))
	require.True(t, hasEnter(events, GfmTaskListItemValueChecked))
}

func TestToEventsDefinition(t *testing.T) {
	src := "[foo]: /url \"title\"\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, Definition))
}

func TestToEventsHtmlFlowAndText(t *testing.T) {
	src := "<div>\n<p>hi</p>\n</div>\n\npara <em>x</em> end\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, HtmlFlow))
	require.True(t, hasEnter(events, HtmlText))
}

func TestToEventsCodeIndented(t *testing.T) {
	src := "para\n\n    code line\n    more\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, CodeIndented))
}

func TestToEventsMathFlowAndText(t *testing.T) {
	c := GFMConstructs()
	c.MathFlow = true
	c.MathText = true
	src := "$$\nx^2\n$$\n\ninline $y$ math\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: c, MathTextSingleDollar: true})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, MathFlow))
	require.True(t, hasEnter(events, MathText))
}

func TestToEventsBlockQuoteLazyContinuation(t *testing.T) {
	src := "> a\nb\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, BlockQuote))

	paragraphs := 0
	for _, e := range events {
		if e.Kind == Enter && e.Name == Paragraph {
			paragraphs++
		}
	}
	require.Equal(t, 1, paragraphs)
}

func TestToEventsOrderedListStartsAtValue(t *testing.T) {
	src := "3. a\n4. b\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, ListOrdered))
}

func TestToEventsThematicBreakInterruptsParagraph(t *testing.T) {
	// "* * *" cannot be mistaken for a setext underline (those allow only
	// a bare run of "-" or "=" bytes), so it unambiguously interrupts.
	src := "abc\n* * *\n"
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	assertBalanced(t, events)
	require.True(t, hasEnter(events, ThematicBreak))
	require.False(t, hasEnter(events, HeadingSetext))
}
