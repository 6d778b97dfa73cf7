package mdtok

// Space-or-tab-eol (spec.md §4.5): optional leading whitespace, an
// optional single line ending, optional trailing whitespace. Forbids a
// second consecutive line ending (a blank line) in contexts that don't
// allow one, such as inside a link title or destination.

func init() {
	registerState(StateSpaceOrTabEolStart, spaceOrTabEolStart)
	registerState(StateSpaceOrTabEolAfterFirst, spaceOrTabEolAfterFirst)
	registerState(StateSpaceOrTabEolAfterEol, spaceOrTabEolAfterEol)
}

func attemptSpaceOrTabEol(t *Tokenizer) bool {
	return t.Attempt(StateSpaceOrTabEolStart)
}

func spaceOrTabEolStart(t *Tokenizer) StepResult {
	if attemptSpaceOrTab(t) {
		t.scratch.MarkerB = 1
	} else {
		t.scratch.MarkerB = 0
	}
	return StepRetry(StateSpaceOrTabEolAfterFirst)
}

func spaceOrTabEolAfterFirst(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '\n' {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
		return StepNext(StateSpaceOrTabEolAfterEol)
	}
	if t.scratch.MarkerB == 1 {
		return StepOk()
	}
	return StepNok()
}

func spaceOrTabEolAfterEol(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '\n' {
		return StepNok()
	}
	attemptSpaceOrTab(t)
	return StepOk()
}
