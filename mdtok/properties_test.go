package mdtok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// assertMonotonic checks spec.md §8 property 2: event points never
// regress by byte index.
func assertMonotonic(t *testing.T, events []Event) {
	t.Helper()
	for i := 1; i < len(events); i++ {
		require.LessOrEqual(t, events[i-1].Point.Index, events[i].Point.Index,
			"point regression between events %d and %d", i-1, i)
	}
}

var corpus = []string{
	"",
	"\n",
	"hello world\n",
	"# a\n\n## b ##\n",
	"Title\nhere\n=====\n",
	"> a\nb\n",
	"- a\n- b\n- c\n",
	"1. a\n2. b\n",
	"```js\nconsole.log(1)\n```\n",
	"    indented\n    code\n",
	"a *b* **c** ~~d~~\n",
	"[a](/b \"t\")\n\n![x](/y)\n",
	"[foo]\n\n[foo]: /url \"title\"\n",
	"a  \nb\n",
	"<https://example.com>\n",
	"see https://example.com/path?q=1 and x@y.com\n",
	"|a|b|\n|-|-|\n|c|d|\n",
	"- [ ] todo\n- [x] done\n",
	"a\\*b\n",
	"&amp; &#65; &#x41;\n",
	"<div>\n<p>hi</p>\n</div>\n",
	"text <em>inline</em> more\n",
	"---\n",
	"***\n",
	"a^b^ [^1]\n\n[^1]: note\n",
}

func TestPropertiesAcrossCorpus(t *testing.T) {
	for _, src := range corpus {
		src := src
		t.Run(src, func(t *testing.T) {
			events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
			require.Nil(t, msg)
			assertBalanced(t, events)
			assertMonotonic(t, events)
		})
	}
}

func TestEmptyInputProducesNoEvents(t *testing.T) {
	events, msg := ToEvents(nil, Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	require.Empty(t, events)
}

func TestSingleLineEndingProducesOneEvent(t *testing.T) {
	events, msg := ToEvents([]byte("\n"), Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	require.Len(t, events, 2)
	require.Equal(t, Enter, events[0].Kind)
	require.Contains(t, []TokenName{LineEnding, BlankLineEnding}, events[0].Name)
}

func TestByteOrderMarkConsumed(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi\n")...)
	events, msg := ToEvents(src, Options{Constructs: GFMConstructs()})
	require.Nil(t, msg)
	require.True(t, hasEnter(events, ByteOrderMark))
	require.True(t, hasEnter(events, Paragraph))
}

func TestResolversAreIdempotent(t *testing.T) {
	for _, src := range corpus {
		src := src
		t.Run(src, func(t *testing.T) {
			events, msg := ToEvents([]byte(src), Options{Constructs: GFMConstructs()})
			require.Nil(t, msg)

			ps := NewParseState([]byte(src), Options{Constructs: GFMConstructs()})
			var entries []resolverEntry
			for _, name := range resolverOrder {
				if fn, ok := resolverTable[name]; ok {
					entries = append(entries, resolverEntry{name: name, fn: fn})
				}
			}
			again := runResolverPipeline(ps, append([]Event(nil), events...), entries)
			require.Equal(t, events, again)
		})
	}
}
