package mdtok

// ToEvents is the public ingestion entry point (spec.md §6): it feeds
// bytes through the document tier, then subtokenizes chunk-bearing
// events and runs every resolver the matched constructs registered, in
// a fixed pipeline order (spec.md §4.4).
func ToEvents(bytes []byte, opts Options) ([]Event, *Message) {
	ps := NewParseState(bytes, opts)
	t := NewTokenizer(ps)

	attemptBom(t)
	t.registerDefaultResolvers()
	t.runDocument()

	if t.message != nil {
		return nil, t.message
	}

	events := subtokenize(t, t.events)
	events = runResolverPipeline(ps, events, t.resolvers)
	return events, nil
}

// registerDefaultResolvers marks the resolvers that always run
// regardless of which constructs matched: whitespace normalization is
// needed even for a document with no inline constructs at all (trailing
// hard breaks), so it isn't conditioned on a specific construct having
// registered it.
func (t *Tokenizer) registerDefaultResolvers() {
	t.registerResolver(resolverWhitespace)
	// resolverList has no construct of its own to register it from: list
	// items are wrapped directly by runDocument, not behind an attempt.
	t.registerResolver(resolverList)
	if t.parseState.Constructs.GfmAutolinkLiteral {
		t.registerResolver(resolverGfmAutolinkLiteral)
	}
}

// runResolverPipeline is Tokenizer.runResolvers lifted to operate on an
// already-subtokenized event slice (the tokenizer's own t.events field
// is stale once subtokenize has spliced chunk interiors in).
func runResolverPipeline(ps *ParseState, events []Event, resolvers []resolverEntry) []Event {
	edits := NewEditMap()
	want := make(map[resolverName]resolverFunc, len(resolvers))
	for _, r := range resolvers {
		want[r.name] = r.fn
	}
	for _, name := range resolverOrder {
		if fn, ok := want[name]; ok {
			fn(ps, events, edits)
		}
	}
	return edits.Consume(events)
}
