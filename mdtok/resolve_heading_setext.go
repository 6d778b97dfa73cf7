package mdtok

// Setext heading resolver (spec.md §4.4.4, grounded on micromark's
// resolveAllLineSuffixes / resolve-heading-setext.js and
// original_source/src/construct/heading_setext.rs's `resolve`): a
// paragraph immediately followed by its own underline is rewritten into
// a HeadingSetext wrapping a HeadingSetextText, after the fact, since
// the underline construct itself can't tell it's a heading until the
// whole paragraph and underline have both matched.
func init() {
	registerResolver(resolverHeadingSetext, resolveHeadingSetext)
}

func resolveHeadingSetext(ps *ParseState, events []Event, edits *EditMap) {
	for i := 0; i+1 < len(events); i++ {
		if !(events[i].Kind == Exit && events[i].Name == Paragraph &&
			events[i+1].Kind == Enter && events[i+1].Name == HeadingSetextUnderline) {
			continue
		}
		enterIdx := -1
		depth := 0
		for j := i; j >= 0; j-- {
			switch {
			case events[j].Kind == Exit && events[j].Name == Paragraph:
				depth++
			case events[j].Kind == Enter && events[j].Name == Paragraph:
				depth--
				if depth == 0 {
					enterIdx = j
				}
			}
			if enterIdx >= 0 {
				break
			}
		}
		if enterIdx < 0 {
			continue
		}
		underlineExit := matchingExit(events, i+1)
		if underlineExit < 0 {
			continue
		}

		edits.Add(enterIdx, 1, []Event{
			{Kind: Enter, Name: HeadingSetext, Point: events[enterIdx].Point},
			{Kind: Enter, Name: HeadingSetextText, Point: events[enterIdx].Point},
		})
		edits.Add(i, 1, []Event{
			{Kind: Exit, Name: HeadingSetextText, Point: events[i].Point},
		})
		edits.Add(underlineExit+1, 0, []Event{
			{Kind: Exit, Name: HeadingSetext, Point: events[underlineExit].Point},
		})
	}
}
