package mdtok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// assertBalanced walks events checking every Exit matches the most
// recently unmatched Enter of the same name, the structural invariant
// every resolver above promises to preserve (spec.md §3).
func assertBalanced(t *testing.T, events []Event) {
	t.Helper()
	var stack []TokenName
	for i, e := range events {
		switch e.Kind {
		case Enter:
			stack = append(stack, e.Name)
		case Exit:
			require.NotEmpty(t, stack, "unmatched Exit(%s) at %d", e.Name, i)
			top := stack[len(stack)-1]
			require.Equal(t, top, e.Name, "Exit(%s) at %d does not match open Enter(%s)", e.Name, i, top)
			stack = stack[:len(stack)-1]
		}
	}
	require.Empty(t, stack, "unclosed events: %v", stack)
}

func tokenizeGFM(t *testing.T, src string) []Event {
	t.Helper()
	events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg, "unexpected message: %v", msg)
	assertBalanced(t, events)
	return events
}

func hasEnter(events []Event, name TokenName) bool {
	for _, e := range events {
		if e.Kind == Enter && e.Name == name {
			return true
		}
	}
	return false
}

func TestToEventsParagraph(t *testing.T) {
	events := tokenizeGFM(t, "hello world\n")
	require.True(t, hasEnter(events, Paragraph))
}

func TestToEventsEmphasis(t *testing.T) {
	events := tokenizeGFM(t, "a *b* c\n")
	require.True(t, hasEnter(events, Emphasis))
}

func TestToEventsStrong(t *testing.T) {
	events := tokenizeGFM(t, "a **b** c\n")
	require.True(t, hasEnter(events, Strong))
}

func TestToEventsStrikethrough(t *testing.T) {
	events := tokenizeGFM(t, "a ~~b~~ c\n")
	require.True(t, hasEnter(events, GfmStrikethrough))
}

func TestToEventsShortcutReferenceLink(t *testing.T) {
	src := "[foo]\n\n[foo]: /url\n"
	events := tokenizeGFM(t, src)
	require.True(t, hasEnter(events, Link))
}

func TestToEventsUndefinedReferenceStaysLiteral(t *testing.T) {
	events := tokenizeGFM(t, "[foo]\n")
	require.False(t, hasEnter(events, Link))
	require.True(t, hasEnter(events, LabelLink))
}

func TestToEventsResourceLink(t *testing.T) {
	events := tokenizeGFM(t, "[foo](/url \"title\")\n")
	require.True(t, hasEnter(events, Link))
	require.True(t, hasEnter(events, Resource))
}

func TestToEventsImage(t *testing.T) {
	events := tokenizeGFM(t, "![alt](/img.png)\n")
	require.True(t, hasEnter(events, Image))
}

func TestToEventsSetextHeading(t *testing.T) {
	events := tokenizeGFM(t, "Title\n=====\n")
	require.True(t, hasEnter(events, HeadingSetext))
	require.False(t, hasEnter(events, Paragraph))
}

func TestToEventsAdjacentListItemsMerge(t *testing.T) {
	events := tokenizeGFM(t, "- a\n- b\n- c\n")
	count := 0
	for _, e := range events {
		if e.Kind == Enter && e.Name == ListUnordered {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestToEventsSeparateListsDoNotMerge(t *testing.T) {
	events := tokenizeGFM(t, "- a\n\nparagraph\n\n- b\n")
	count := 0
	for _, e := range events {
		if e.Kind == Enter && e.Name == ListUnordered {
			count++
		}
	}
	require.Equal(t, 2, count)
}

func TestToEventsHardBreakTrailing(t *testing.T) {
	events := tokenizeGFM(t, "a  \nb\n")
	require.True(t, hasEnter(events, HardBreakTrailing))
}

func TestToEventsGfmAutolinkLiteral(t *testing.T) {
	events := tokenizeGFM(t, "see https://example.com/path for more\n")
	require.True(t, hasEnter(events, GfmAutolinkLiteralHttp))
}
