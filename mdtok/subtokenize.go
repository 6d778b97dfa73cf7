package mdtok

// subtokenize walks every chunk-bearing Enter event (spec.md §4.5's
// content re-tokenization contract) and replaces its interior with a
// fresh tokenization of its own content tier, splicing the result back
// via an EditMap. A chunk chain (linked by Link.Previous/Next, e.g. one
// Data chunk per paragraph line) is walked and each link resolved
// independently against its own exact byte range, which keeps container
// prefixes (block-quote `>`, list indentation) that fall *between*
// chunks out of the re-tokenized bytes entirely -- only the global
// resolver pass that runs afterward needs to reason across chunk
// boundaries (attention pairing, label matching).
// subtokenize takes the top-level tokenizer only so that any resolver a
// chunk's own child tokenizer registers (attention, label matching --
// both only ever triggered from inline/string content, which always
// arrives here as a chunk) is merged back onto it: a child tokenizer's
// events survive into the parent's stream, but its resolvers field does
// not unless something copies it over explicitly.
func subtokenize(top *Tokenizer, events []Event) []Event {
	ps := top.parseState
	edits := NewEditMap()
	for i := 0; i < len(events); i++ {
		e := events[i]
		if e.Kind != Enter || e.Link == nil || e.Link.Content == ContentNone || e.Link.Previous != nil {
			continue
		}
		idx := i
		for {
			ev := events[idx]
			exitIdx := matchingExit(events, idx)
			if exitIdx < 0 {
				break
			}
			start := ev.Point.Index
			end := events[exitIdx].Point.Index
			if end > start {
				sub, subResolvers := tokenizeContent(ps, ps.Bytes[start:end], ev.Point, ev.Link.Content)
				top.mergeResolvers(subResolvers)
				sub = subtokenize(top, sub)
				edits.Add(idx+1, exitIdx-(idx+1), sub)
			}
			if ev.Link.Next == nil {
				break
			}
			idx = *ev.Link.Next
		}
	}
	return edits.Consume(events)
}

// mergeResolvers folds another tokenizer's registered resolvers into
// this one, deduplicating by name exactly as registerResolver does.
func (t *Tokenizer) mergeResolvers(other []resolverEntry) {
	for _, r := range other {
		t.registerResolver(r.name)
	}
}

// matchingExit finds the Exit event balancing the Enter at enterIdx,
// counting nested Enters/Exits of the same name (chunk tokens in
// practice never nest, so this is usually enterIdx+1).
func matchingExit(events []Event, enterIdx int) int {
	depth := 1
	name := events[enterIdx].Name
	for j := enterIdx + 1; j < len(events); j++ {
		if events[j].Name != name {
			continue
		}
		if events[j].Kind == Enter {
			depth++
		} else {
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// tokenizeContent re-tokenizes one chunk's bytes under the content tier
// its Link names, seeded so emitted Points carry correct absolute
// line/column/index (via at).
func tokenizeContent(ps *ParseState, bytes []byte, at Point, content ContentType) ([]Event, []resolverEntry) {
	var start StateName
	switch content {
	case ContentText:
		start = StateTextStart
	case ContentString:
		start = StateStringStart
	case ContentFlow:
		start = StateFlowStart
	default:
		return nil, nil
	}
	ct := NewChildTokenizer(ps, bytes, at)
	ct.textTier = content == ContentText || content == ContentString
	for !ct.AtEOF() {
		ct.lazy = false
		res := ct.run(start)
		if res.Kind == stepError {
			ct.message = res.Err
			break
		}
	}
	return ct.Events(), ct.resolvers
}
