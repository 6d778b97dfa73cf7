package mdtok

// Label resolver (spec.md §4.4.3, grounded on original_source/src/
// construct/label_end.rs's `resolve` and micromark's resolve-to-link.js):
// label_start.go and label_end.go only recognize `[`/`![`...`]` syntax;
// this pass decides whether each pair is really a link or image --
// matching a resource, a full/collapsed reference against
// ParseState.Definitions, or a shortcut reference -- and rewrites
// matched pairs into Link/Image/Label/LabelText wrappers. Unmatched
// pairs are left exactly as label_start/label_end produced them, which
// renders as their literal bracket and marker tokens (spec.md §6's
// unknown-token transparency contract).
//
// Label starts and ends are paired with a single LIFO scan over the
// whole (already subtokenized) event stream rather than the
// construct-time labelStartStack/labelEndStack, since those live on a
// per-chunk child Tokenizer that subtokenize throws away once its
// events are spliced into the parent.
func init() {
	registerResolver(resolverLabel, resolveLabel)
}

type labelOpener struct {
	enterIdx int
	inactive bool
}

func resolveLabel(ps *ParseState, events []Event, edits *EditMap) {
	var stack []labelOpener

	for i := 0; i < len(events); i++ {
		e := events[i]
		if e.Kind != Enter {
			continue
		}
		switch e.Name {
		case LabelLink, LabelImage:
			stack = append(stack, labelOpener{enterIdx: i})
		case LabelEnd:
			if len(stack) == 0 {
				continue
			}
			opener := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if opener.inactive {
				continue
			}
			if resolveLabelPair(ps, events, edits, opener.enterIdx, i) {
				if events[opener.enterIdx].Name == LabelLink {
					for j := range stack {
						if events[stack[j].enterIdx].Name == LabelLink {
							stack[j].inactive = true
						}
					}
				}
			}
		}
	}
}

// resolveLabelPair handles one matched [opener, LabelEnd] pair. It
// returns whether the pair resolved into a link/image (vs. staying
// literal), which matters to the caller for the "no links in links"
// rule.
func resolveLabelPair(ps *ParseState, events []Event, edits *EditMap, openerIdx, labelEndIdx int) bool {
	// A pair an earlier run already wrapped is left as it is.
	if openerIdx > 0 && events[openerIdx-1].Kind == Enter && events[openerIdx-1].Name == Label {
		return true
	}
	openerExit := matchingExit(events, openerIdx)
	labelEndExit := matchingExit(events, labelEndIdx)
	if openerExit < 0 || labelEndExit < 0 {
		return false
	}

	wrap := Link
	if events[openerIdx].Name == LabelImage {
		wrap = Image
	}

	labelTextStart := events[openerExit].Point.Index
	labelTextEnd := events[labelEndIdx].Point.Index
	rawLabel := normalizeIdentifier(string(ps.Bytes[labelTextStart:labelTextEnd]))

	destEndIdx := labelEndExit
	resource := false

	if next := labelEndExit + 1; next < len(events) && events[next].Kind == Enter {
		switch events[next].Name {
		case Resource:
			destEndIdx = matchingExit(events, next)
			resource = true
		case Reference:
			refExit := matchingExit(events, next)
			destEndIdx = refExit
			identifier := rawLabel
			if s, e, ok := findSpan(events, next, refExit, ReferenceString); ok && e > s {
				identifier = normalizeIdentifier(string(ps.Bytes[events[s].Point.Index:events[e].Point.Index]))
			}
			if !ps.Definitions[identifier] {
				return false
			}
		}
	}
	if destEndIdx == labelEndExit && !resource {
		if !ps.Definitions[rawLabel] {
			return false
		}
	}

	openerPoint := events[openerIdx].Point
	edits.Add(openerIdx, 0, []Event{
		{Kind: Enter, Name: wrap, Point: openerPoint},
		{Kind: Enter, Name: Label, Point: openerPoint},
	})
	if labelTextEnd > labelTextStart {
		edits.Add(openerExit+1, 0, []Event{{Kind: Enter, Name: LabelText, Point: events[openerExit+1].Point}})
		edits.Add(labelEndIdx, 0, []Event{{Kind: Exit, Name: LabelText, Point: events[labelEndIdx].Point}})
	}
	labelClosePoint := events[labelEndExit].Point
	if labelEndExit+1 < len(events) {
		labelClosePoint = events[labelEndExit+1].Point
	}
	edits.Add(labelEndExit+1, 0, []Event{{Kind: Exit, Name: Label, Point: labelClosePoint}})

	wrapClosePoint := events[destEndIdx].Point
	if destEndIdx+1 < len(events) {
		wrapClosePoint = events[destEndIdx+1].Point
	}
	edits.Add(destEndIdx+1, 0, []Event{{Kind: Exit, Name: wrap, Point: wrapClosePoint}})
	return true
}

// findSpan finds the first Enter/Exit pair of name within events[from:to]
// (exclusive of to), returning their indices.
func findSpan(events []Event, from, to int, name TokenName) (enterIdx, exitIdx int, ok bool) {
	for i := from; i < to; i++ {
		if events[i].Kind == Enter && events[i].Name == name {
			exit := matchingExit(events, i)
			if exit < 0 {
				return 0, 0, false
			}
			return i, exit, true
		}
	}
	return 0, 0, false
}
