package mdtok

// Hard break (escape) (spec.md §4.5): a backslash directly before a line
// ending. Hard break (trailing), the two-or-more-trailing-spaces variant,
// depends on lookahead past the line ending that this byte-at-a-time
// construct can't see cheaply, so it is handled by resolverWhitespace
// instead (a deliberate split from markdown-rs, which has it as its own
// inline construct).

func init() {
	registerState(StateHardBreakEscapeStart, hardBreakEscapeStart)
	registerState(StateHardBreakEscapeAfter, hardBreakEscapeAfter)
}

func hardBreakEscapeStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != '\\' {
		return StepNok()
	}
	t.Enter(HardBreakEscape)
	t.Consume()
	return StepNext(StateHardBreakEscapeAfter)
}

func hardBreakEscapeAfter(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '\n' {
		t.Exit(HardBreakEscape)
		return StepOk()
	}
	return StepNok()
}
