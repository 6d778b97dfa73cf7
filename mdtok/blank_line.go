package mdtok

// Blank line (spec.md §4.5): a line containing only space/tab bytes (or
// nothing at all), up to and including its line ending or EOF. Flow
// tries this first on every line: matching here always ends whatever
// paragraph was open (flowStart never re-enters StateParagraphStart for
// a blank line) without the paragraph construct needing to know about
// blank lines itself.

func init() {
	registerState(StateBlankLineStart, blankLineStart)
	registerState(StateBlankLineAfter, blankLineAfter)
}

func blankLineStart(t *Tokenizer) StepResult {
	attemptSpaceOrTab(t)
	b, ok := t.Byte()
	if ok && b != '\n' {
		return StepNok()
	}
	return StepRetry(StateBlankLineAfter)
}

func blankLineAfter(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '\n' {
		t.Enter(BlankLineEnding)
		t.Consume()
		t.Exit(BlankLineEnding)
	}
	return StepOk()
}
