package mdtok

func init() {
	registerState(StateBlockQuoteStart, blockQuoteStart)
	registerState(StateBlockQuoteBefore, blockQuoteBefore)
	registerState(StateBlockQuoteContStart, blockQuoteContStart)
	registerState(StateBlockQuoteContBefore, blockQuoteContBefore)
}

// attemptBlockQuoteStart tries to open a new block quote container at
// the current position (up to 3 leading spaces, then `>`, then an
// optional single following space). On success it fills cs with the
// container's continuation width.
func attemptBlockQuoteStart(t *Tokenizer, cs *ContainerState) bool {
	t.scratch.DocumentContainerStack = append(t.scratch.DocumentContainerStack, ContainerState{})
	ok := t.Attempt(StateBlockQuoteStart)
	n := len(t.scratch.DocumentContainerStack)
	*cs = t.scratch.DocumentContainerStack[n-1]
	t.scratch.DocumentContainerStack = t.scratch.DocumentContainerStack[:n-1]
	return ok
}

func blockQuoteStart(t *Tokenizer) StepResult {
	t.scratch.Size = 0
	return StepRetry(StateBlockQuoteBefore)
}

func blockQuoteBefore(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	b, ok := t.Byte()
	if !ok || b != '>' {
		return StepNok()
	}
	t.Enter(BlockQuote)
	t.Enter(BlockQuotePrefix)
	t.Enter(BlockQuoteMarker)
	t.Consume()
	t.Exit(BlockQuoteMarker)
	size := 1
	if b2, ok := t.Byte(); ok && (b2 == ' ' || b2 == '\t') {
		t.Enter(BlockQuotePrefixWhitespace)
		t.Consume()
		t.Exit(BlockQuotePrefixWhitespace)
		size = 2
	}
	t.Exit(BlockQuotePrefix)
	n := len(t.scratch.DocumentContainerStack)
	t.scratch.DocumentContainerStack[n-1] = ContainerState{Kind: ContainerBlockQuote, Delim: '>', Size: size}
	return StepOk()
}

// attemptBlockQuoteContinuation tries to continue an already-open block
// quote container: same shape as the opener, but without re-entering
// BlockQuote itself (only its prefix).
func attemptBlockQuoteContinuation(t *Tokenizer, cs ContainerState) bool {
	t.scratch.SizeB = cs.Size
	return t.Attempt(StateBlockQuoteContStart)
}

func blockQuoteContStart(t *Tokenizer) StepResult {
	return StepRetry(StateBlockQuoteContBefore)
}

func blockQuoteContBefore(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	b, ok := t.Byte()
	if !ok || b != '>' {
		return StepNok()
	}
	t.Enter(BlockQuotePrefix)
	t.Enter(BlockQuoteMarker)
	t.Consume()
	t.Exit(BlockQuoteMarker)
	if b2, ok := t.Byte(); ok && (b2 == ' ' || b2 == '\t') {
		t.Enter(BlockQuotePrefixWhitespace)
		t.Consume()
		t.Exit(BlockQuotePrefixWhitespace)
	}
	t.Exit(BlockQuotePrefix)
	return StepOk()
}
