package main

import (
	"fmt"
	"strings"

	"github.com/google/renameio"
	"github.com/shurcooL/sanitized_anchor_name"

	"github.com/jcorbin/mdtok/internal/scanio"
	"github.com/jcorbin/mdtok/mdtok"
)

// renderEvents dumps one "Kind(Name)@line:col" line per event, the same
// terse form Event's own Format method produces, buffered through a
// ByteArena before being handed to the caller as a single string.
func renderEvents(events []mdtok.Event) string {
	var arena scanio.ByteArena
	for _, e := range events {
		fmt.Fprintf(&arena, "%v\n", e)
	}
	return arena.Take().Text()
}

// renderSlugs walks the event stream for heading text and prints each
// heading's rendered text next to the anchor slug a Markdown renderer
// would give it, grounded on the teacher's own transitive use of
// sanitized_anchor_name via blackfriday's heading-id logic.
func renderSlugs(src []byte, events []mdtok.Event) string {
	var arena scanio.ByteArena
	var headingKind mdtok.TokenName
	var textStart int
	inHeadingText := false

	for _, e := range events {
		switch {
		case e.Kind == mdtok.Enter && (e.Name == mdtok.HeadingAtxText || e.Name == mdtok.HeadingSetextText):
			headingKind = e.Name
			textStart = e.Point.Index
			inHeadingText = true
		case e.Kind == mdtok.Exit && e.Name == headingKind && inHeadingText:
			text := strings.TrimSpace(string(src[textStart:e.Point.Index]))
			fmt.Fprintf(&arena, "%s\t%s\n", text, sanitized_anchor_name.Create(text))
			inHeadingText = false
		}
	}
	return arena.Take().Text()
}

// writeAtomic writes dump to path without ever leaving a partially
// written file behind, grounded on the teacher's cmd/soc store rewrite.
func writeAtomic(path string, dump []byte) error {
	return renameio.WriteFile(path, dump, 0o644)
}
