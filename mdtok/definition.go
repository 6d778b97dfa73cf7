package mdtok

// Definition (spec.md §4.5): `[label]:` spaceOrTabEol destination
// [spaceOrTabEol title] spaceOrTab* line-ending-or-EOF. Reuses the
// label/destination/title partials shared with label-end resources;
// the label itself is resolved against use sites by prepass.go's
// scanDefinitions rather than anything here, so this construct only
// needs to emit a well-formed Definition subtree.

func init() {
	registerState(StateDefinitionStart, definitionStart)
	registerState(StateDefinitionBefore, definitionBefore)
	registerState(StateDefinitionLabelAfter, definitionLabelAfter)
	registerState(StateDefinitionMarkerAfter, definitionMarkerAfter)
	registerState(StateDefinitionDestinationBefore, definitionDestinationBefore)
	registerState(StateDefinitionDestinationAfter, definitionDestinationAfter)
	registerState(StateDefinitionDestinationMissing, definitionDestinationMissing)
	registerState(StateDefinitionTitleBefore, definitionTitleBefore)
	registerState(StateDefinitionAfter, definitionAfter)
	registerState(StateDefinitionTitleBeforeMarker, definitionTitleBeforeMarker)
	registerState(StateDefinitionTitleAfter, definitionTitleAfter)
	registerState(StateDefinitionTitleAfterOptionalWhitespace, definitionTitleAfterOptionalWhitespace)
}

func definitionStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	return StepRetry(StateDefinitionBefore)
}

func definitionBefore(t *Tokenizer) StepResult {
	t.Enter(Definition)
	if !attemptLabel(t, labelTokens{Wrap: DefinitionLabel, Marker: DefinitionLabelMarker, String: DefinitionLabelString}) {
		return StepNok()
	}
	return StepRetry(StateDefinitionLabelAfter)
}

func definitionLabelAfter(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); !ok || b != ':' {
		return StepNok()
	}
	t.Enter(DefinitionMarker)
	t.Consume()
	t.Exit(DefinitionMarker)
	return StepRetry(StateDefinitionMarkerAfter)
}

func definitionMarkerAfter(t *Tokenizer) StepResult {
	attemptSpaceOrTabEol(t)
	return StepRetry(StateDefinitionDestinationBefore)
}

var definitionDestinationTokens = destinationTokens{
	Wrap:          DefinitionDestination,
	Literal:       DefinitionDestinationLiteral,
	LiteralMarker: DefinitionDestinationLiteralMarker,
	Raw:           DefinitionDestinationRaw,
	String:        DefinitionDestinationString,
}

func definitionDestinationBefore(t *Tokenizer) StepResult {
	if !attemptDestination(t, definitionDestinationTokens) {
		return StepRetry(StateDefinitionDestinationMissing)
	}
	return StepRetry(StateDefinitionDestinationAfter)
}

func definitionDestinationMissing(t *Tokenizer) StepResult {
	return StepNok()
}

func definitionDestinationAfter(t *Tokenizer) StepResult {
	return StepRetry(StateDefinitionTitleBefore)
}

func definitionTitleBefore(t *Tokenizer) StepResult {
	if t.Attempt(StateDefinitionTitleBeforeMarker) {
		return StepRetry(StateDefinitionTitleAfter)
	}
	return StepRetry(StateDefinitionAfter)
}

func definitionTitleBeforeMarker(t *Tokenizer) StepResult {
	if !attemptSpaceOrTabEol(t) {
		return StepNok()
	}
	if !attemptTitle(t, titleTokens{Wrap: DefinitionTitle, Marker: DefinitionTitleMarker, String: DefinitionTitleString}) {
		return StepNok()
	}
	return StepOk()
}

func definitionTitleAfter(t *Tokenizer) StepResult {
	return StepRetry(StateDefinitionTitleAfterOptionalWhitespace)
}

func definitionTitleAfterOptionalWhitespace(t *Tokenizer) StepResult {
	attemptSpaceOrTab(t)
	return StepRetry(StateDefinitionAfter)
}

func definitionAfter(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b != '\n' {
		return StepNok()
	}
	if ok {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	t.Exit(Definition)
	return StepOk()
}
