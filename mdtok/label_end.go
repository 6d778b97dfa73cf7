package mdtok

// Label end (spec.md §4.5, grounded on original_source/src/construct/
// label_end.rs): `]` optionally followed by a resource `(...)`, a full
// reference `[...]`, or a collapsed reference `[]`; bare `]` with
// neither is a shortcut reference using the label text itself.
//
// This construct only recognizes the syntax and records the pairing
// (label start index, label end index) onto t.labelEndStack. Deciding
// link-vs-image, matching a reference label against ParseState's
// definitions, wrapping the matched span in Link/Image, and disallowing
// link-in-link nesting all need the whole label-start/label-end history
// built up over a text run, so that semantic work is resolverLabel's,
// not this construct's (the split spec.md §4.4 calls for between a
// construct and its resolver).

func init() {
	registerState(StateLabelEndStart, labelEndStart)
	registerState(StateLabelEndAfter, labelEndAfter)
	registerState(StateLabelEndResourceStart, labelEndResourceStart)
	registerState(StateLabelEndResourceBefore, labelEndResourceBefore)
	registerState(StateLabelEndResourceOpen, labelEndResourceOpen)
	registerState(StateLabelEndResourceDestinationAfter, labelEndResourceDestinationAfter)
	registerState(StateLabelEndResourceBetween, labelEndResourceBetween)
	registerState(StateLabelEndResourceTitleAfter, labelEndResourceTitleAfter)
	registerState(StateLabelEndResourceEnd, labelEndResourceEnd)
	registerState(StateLabelEndReferenceFull, labelEndReferenceFull)
	registerState(StateLabelEndReferenceFullAfter, labelEndReferenceFullAfter)
	registerState(StateLabelEndReferenceCollapsed, labelEndReferenceCollapsed)
	registerState(StateLabelEndReferenceCollapsedOpen, labelEndReferenceCollapsedOpen)
}

func labelEndStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != ']' || len(t.labelStartStack) == 0 {
		return StepNok()
	}
	ls := t.labelStartStack[len(t.labelStartStack)-1]
	if ls.inactive {
		return StepNok()
	}
	t.scratch.LabelEndStartIndex = ls.eventIndex
	t.Enter(LabelEnd)
	t.Enter(LabelMarker)
	t.Consume()
	t.Exit(LabelMarker)
	t.Exit(LabelEnd)
	return StepNext(StateLabelEndAfter)
}

func labelEndAfter(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok {
		switch b {
		case '(':
			return StepRetry(StateLabelEndResourceStart)
		case '[':
			return StepRetry(StateLabelEndReferenceFull)
		}
	}
	return StepRetry(StateLabelEndReferenceCollapsed)
}

func labelEndFinish(t *Tokenizer) StepResult {
	endIdx := len(t.events) - 1
	t.labelEndStack = append(t.labelEndStack, labelEnd{startIndex: t.scratch.LabelEndStartIndex, endIndex: endIdx})
	t.labelStartStack = t.labelStartStack[:len(t.labelStartStack)-1]
	t.registerResolver(resolverLabel)
	return StepOk()
}

// --- resource: '(' [space_or_tab_eol] destination [space_or_tab_eol title] [space_or_tab_eol] ')'

func labelEndResourceStart(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); !ok || b != '(' {
		return StepNok()
	}
	t.Enter(Resource)
	t.Enter(ResourceMarker)
	t.Consume()
	t.Exit(ResourceMarker)
	return StepNext(StateLabelEndResourceBefore)
}

func labelEndResourceBefore(t *Tokenizer) StepResult {
	attemptSpaceOrTabEol(t)
	return StepRetry(StateLabelEndResourceOpen)
}

func labelEndResourceOpen(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == ')' {
		return StepRetry(StateLabelEndResourceEnd)
	}
	if attemptDestination(t, destinationTokens{
		Wrap: ResourceDestination, Literal: ResourceDestinationLiteral,
		LiteralMarker: ResourceDestinationLiteralMarker, Raw: ResourceDestinationRaw,
		String: ResourceDestinationString,
	}) {
		return StepRetry(StateLabelEndResourceDestinationAfter)
	}
	return StepNok()
}

func labelEndResourceDestinationAfter(t *Tokenizer) StepResult {
	if attemptSpaceOrTabEol(t) {
		return StepRetry(StateLabelEndResourceBetween)
	}
	return StepRetry(StateLabelEndResourceEnd)
}

func labelEndResourceBetween(t *Tokenizer) StepResult {
	if attemptTitle(t, titleTokens{Wrap: ResourceTitle, Marker: ResourceTitleMarker, String: ResourceTitleString}) {
		return StepNext(StateLabelEndResourceTitleAfter)
	}
	return StepRetry(StateLabelEndResourceEnd)
}

func labelEndResourceTitleAfter(t *Tokenizer) StepResult {
	attemptSpaceOrTabEol(t)
	return StepRetry(StateLabelEndResourceEnd)
}

func labelEndResourceEnd(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == ')' {
		t.Enter(ResourceMarker)
		t.Consume()
		t.Exit(ResourceMarker)
		t.Exit(Resource)
		return labelEndFinish(t)
	}
	return StepNok()
}

// --- full / collapsed reference

func labelEndReferenceFull(t *Tokenizer) StepResult {
	if !attemptLabel(t, labelTokens{Wrap: Reference, Marker: ReferenceMarker, String: ReferenceString}) {
		return StepRetry(StateLabelEndReferenceCollapsed)
	}
	return StepRetry(StateLabelEndReferenceFullAfter)
}

func labelEndReferenceFullAfter(t *Tokenizer) StepResult {
	return labelEndFinish(t)
}

func labelEndReferenceCollapsed(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '[' {
		return StepRetry(StateLabelEndReferenceCollapsedOpen)
	}
	return labelEndFinish(t)
}

func labelEndReferenceCollapsedOpen(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != '[' {
		return labelEndFinish(t)
	}
	save := t.snapshot()
	t.Enter(Reference)
	t.Enter(ReferenceMarker)
	t.Consume()
	t.Exit(ReferenceMarker)
	if b2, ok2 := t.Byte(); ok2 && b2 == ']' {
		t.Enter(ReferenceMarker)
		t.Consume()
		t.Exit(ReferenceMarker)
		t.Exit(Reference)
		return labelEndFinish(t)
	}
	t.restore(save)
	return labelEndFinish(t)
}
