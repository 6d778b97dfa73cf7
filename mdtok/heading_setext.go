package mdtok

// Heading (setext) (spec.md §4.5): a line of one or more `=` or one or
// more `-` bytes (not mixed), with up to 3 leading spaces and any
// amount of trailing spaces, immediately following an open paragraph
// with no intervening blank line. This construct only recognizes the
// underline syntax and reclassifies the paragraph it closes as a
// HeadingSetextUnderline sibling; turning the paragraph itself into
// HeadingSetext/HeadingSetextText is resolverHeadingSetext's job (it
// needs to rewrite tokens already emitted, which a single forward pass
// can't do once the paragraph's own events are behind it).

func init() {
	registerState(StateHeadingSetextBefore, headingSetextBefore)
	registerState(StateHeadingSetextInside, headingSetextInside)
	registerState(StateHeadingSetextAfter, headingSetextAfter)
}

// headingSetextBefore only matches while interrupting an open paragraph
// on a non-lazy line (spec.md §4.2's laziness rule forbids a setext
// underline from a lazy continuation line). Exiting Paragraph here,
// before the underline is confirmed, is safe: a failed Attempt reverts
// both the event it appended and the stack pop uniformly.
func headingSetextBefore(t *Tokenizer) StepResult {
	if len(t.stack) == 0 || t.stack[len(t.stack)-1] != Paragraph || t.lazy {
		return StepNok()
	}
	attemptSpaceOrTabMax(t, 3)
	b, ok := t.Byte()
	if !ok || (b != '=' && b != '-') {
		return StepNok()
	}
	t.scratch.MarkerA = b
	t.Exit(Paragraph)
	t.Enter(HeadingSetextUnderline)
	t.Enter(HeadingSetextUnderlineSequence)
	t.Consume()
	return StepNext(StateHeadingSetextInside)
}

func headingSetextInside(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == t.scratch.MarkerA {
		t.Consume()
		return StepNext(StateHeadingSetextInside)
	}
	t.Exit(HeadingSetextUnderlineSequence)
	return StepRetry(StateHeadingSetextAfter)
}

func headingSetextAfter(t *Tokenizer) StepResult {
	attemptSpaceOrTab(t)
	b, ok := t.Byte()
	if ok && b != '\n' {
		return StepNok()
	}
	if ok {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	t.Exit(HeadingSetextUnderline)
	t.registerResolver(resolverHeadingSetext)
	return StepOk()
}
