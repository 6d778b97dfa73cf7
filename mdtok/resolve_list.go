package mdtok

// List resolver (spec.md §4.4.5, grounded on micromark's
// resolve-list-item.js): runDocument opens a fresh ListOrdered/
// ListUnordered wrapper around every single list item, since at
// construct time it can't know whether the next line will continue the
// same list, start a new item of the same list, or end it. Once the
// whole document is tokenized, adjacent wrappers of the same kind with
// nothing but blank-line/container-prefix bookkeeping between them are
// really one list and get merged into it here.
func init() {
	registerResolver(resolverList, resolveList)
}

func resolveList(ps *ParseState, events []Event, edits *EditMap) {
	for i := 0; i+1 < len(events); i++ {
		if events[i].Kind != Exit {
			continue
		}
		if events[i].Name != ListOrdered && events[i].Name != ListUnordered {
			continue
		}
		j := i + 1
		for j < len(events) && isListGapEvent(events[j]) {
			j++
		}
		if j >= len(events) || events[j].Kind != Enter || events[j].Name != events[i].Name {
			continue
		}
		enterI := matchingEnter(events, i)
		if enterI < 0 || !sameListDelimiter(ps, events, enterI, j) {
			continue
		}
		edits.Add(i, 1, nil)
		edits.Add(j, 1, nil)
	}
}

// matchingEnter returns the index of the Enter that balances the Exit at
// exitIdx, tracking only events of the same Name (other constructs may
// nest freely in between without affecting the count).
func matchingEnter(events []Event, exitIdx int) int {
	depth := 1
	name := events[exitIdx].Name
	for i := exitIdx - 1; i >= 0; i-- {
		if events[i].Name != name {
			continue
		}
		if events[i].Kind == Exit {
			depth++
		} else {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// sameListDelimiter compares the bullet (or ordered start-delimiter)
// byte of the list items opening two ListOrdered/ListUnordered wrappers,
// grounded on original_source/src/construct/list_item.rs:374-411's own
// resolve, which pulls the marker byte out of the raw bytes via the
// item's ListItemMarker token rather than carrying it on the event
// itself. A bullet change (`-` vs `*`) or ordered-delimiter change (`.`
// vs `)`) means the wrappers are genuinely separate lists even when
// adjacent; CommonMark does not require matching start numbers.
func sameListDelimiter(ps *ParseState, events []Event, firstEnter, secondEnter int) bool {
	d1, ok1 := listMarkerDelimiter(ps, events, firstEnter)
	d2, ok2 := listMarkerDelimiter(ps, events, secondEnter)
	if !ok1 || !ok2 {
		return true
	}
	return d1 == d2
}

// listMarkerDelimiter finds the ListItemMarker immediately preceding a
// ListOrdered/ListUnordered wrapper's Enter (emitted by the container's
// own Attempt before document.go wraps it -- see container_listitem.go's
// listMarker) and reads its single byte straight out of the source.
func listMarkerDelimiter(ps *ParseState, events []Event, wrapperEnterIdx int) (byte, bool) {
	for i := wrapperEnterIdx - 1; i >= 0; i-- {
		if events[i].Kind != Exit || events[i].Name != ListItemMarker {
			continue
		}
		enter := i - 1
		if enter < 0 || events[enter].Kind != Enter || events[enter].Name != ListItemMarker {
			return 0, false
		}
		idx := events[enter].Point.Index
		if idx < 0 || idx >= len(ps.Bytes) {
			return 0, false
		}
		return ps.Bytes[idx], true
	}
	return 0, false
}

// isListGapEvent reports whether an event between two list wrappers is
// transparent filler (a blank line, the line-ending that separates it
// from the next container prefix, or the block quote and list item
// prefix emitted ahead of the next wrapper) rather than real content,
// which would mean the two wrappers are genuinely separate lists.
func isListGapEvent(e Event) bool {
	switch e.Name {
	case BlankLine, BlankLineEnding, LineEnding,
		ListItemMarker, ListItemValue, SpaceOrTab,
		BlockQuotePrefix, BlockQuoteMarker, BlockQuotePrefixWhitespace:
		return true
	default:
		return false
	}
}
