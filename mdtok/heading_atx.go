package mdtok

// Heading (atx) (spec.md §4.5): up to 3 leading spaces, 1-6 `#` bytes,
// then a required space/tab or end-of-line, free text, and an optional
// closing sequence of `#` bytes (itself optionally preceded by spaces)
// that must be followed only by spaces through the end of the line.
// Detecting a genuine closing sequence needs to see past it to the end
// of the line; rather than adding a speculative state purely to look
// ahead, headingAtxClosingAhead inspects the remaining raw bytes
// directly (read-only, no events/position change, so no snapshot is
// needed) the way a hand-rolled line scanner would.

func init() {
	registerState(StateHeadingAtxStart, headingAtxStart)
	registerState(StateHeadingAtxBefore, headingAtxBefore)
	registerState(StateHeadingAtxSequenceOpen, headingAtxSequenceOpen)
	registerState(StateHeadingAtxAtBreak, headingAtxAtBreak)
	registerState(StateHeadingAtxSequenceFurther, headingAtxSequenceFurther)
	registerState(StateHeadingAtxData, headingAtxData)
}

func headingAtxStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	return StepRetry(StateHeadingAtxBefore)
}

func headingAtxBefore(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != '#' {
		return StepNok()
	}
	t.Enter(HeadingAtx)
	t.Enter(HeadingAtxSequence)
	t.scratch.Size = 0
	return StepRetry(StateHeadingAtxSequenceOpen)
}

func headingAtxSequenceOpen(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == '#' && t.scratch.Size < 6 {
		t.scratch.Size++
		t.Consume()
		return StepRetry(StateHeadingAtxSequenceOpen)
	}
	t.Exit(HeadingAtxSequence)
	if !ok || b == '\n' {
		t.Exit(HeadingAtx)
		return StepOk()
	}
	if b == ' ' || b == '\t' {
		return StepRetry(StateHeadingAtxAtBreak)
	}
	return StepNok()
}

// headingAtxClosingAhead reports whether, starting at the current
// position, the rest of the line is zero-or-more `#` followed by
// zero-or-more space/tab and then the line ending or EOF -- the
// signature of a genuine closing sequence rather than `#` bytes that
// happen to appear in the heading's own text.
func headingAtxClosingAhead(t *Tokenizer) bool {
	bytes := t.cur.bytes
	i := t.cur.index
	n := len(bytes)
	for i < n && bytes[i] == '#' {
		i++
	}
	for i < n && (bytes[i] == ' ' || bytes[i] == '\t') {
		i++
	}
	return i >= n || bytes[i] == '\n' || bytes[i] == '\r'
}

func headingAtxAtBreak(t *Tokenizer) StepResult {
	attemptSpaceOrTab(t)
	b, ok := t.Byte()
	if !ok || b == '\n' {
		t.Exit(HeadingAtx)
		return StepOk()
	}
	if b == '#' && headingAtxClosingAhead(t) {
		return StepRetry(StateHeadingAtxSequenceFurther)
	}
	t.scratch.MarkerB = 0
	return StepRetry(StateHeadingAtxData)
}

func headingAtxData(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == '\n' {
		if t.scratch.MarkerB == 1 {
			t.Exit(HeadingAtxText)
		}
		t.Exit(HeadingAtx)
		return StepOk()
	}
	// A `#` glued directly to preceding text (no whitespace before it) is
	// never a closing sequence -- that determination only belongs to
	// headingAtxAtBreak, reached here with previousByte already holding
	// whatever headingAtxAtBreak's own attemptSpaceOrTab consumed.
	if b == '#' && (t.previousByte == ' ' || t.previousByte == '\t') && headingAtxClosingAhead(t) {
		if t.scratch.MarkerB == 1 {
			t.Exit(HeadingAtxText)
		}
		return StepRetry(StateHeadingAtxSequenceFurther)
	}
	if t.scratch.MarkerB == 0 {
		t.EnterWithContent(HeadingAtxText, ContentText)
		t.scratch.MarkerB = 1
	}
	t.Consume()
	return StepRetry(StateHeadingAtxData)
}

func headingAtxSequenceFurther(t *Tokenizer) StepResult {
	t.Enter(HeadingAtxSequence)
	for {
		b, ok := t.Byte()
		if !ok || b != '#' {
			break
		}
		t.Consume()
	}
	t.Exit(HeadingAtxSequence)
	return StepRetry(StateHeadingAtxAtBreak)
}
