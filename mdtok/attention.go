package mdtok

// Attention (spec.md §4.5, emphasis/strong/gfm-strikethrough): the
// construct itself just records a run of `*`, `_`, or `~` as one
// AttentionSequence token; deciding which runs open, which close, and
// how they pair (CommonMark's "delimiter run" algorithm) needs every
// sequence in the text run at once, so that's resolverAttention's job.

func init() {
	registerState(StateAttentionStart, attentionStart)
	registerState(StateAttentionInside, attentionInside)
}

func attentionMarkerByte(t *Tokenizer, b byte) bool {
	c := t.parseState.Constructs
	switch b {
	case '*', '_':
		return c.Attention
	case '~':
		return c.GfmStrikethrough
	}
	return false
}

func attentionStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || !attentionMarkerByte(t, b) {
		return StepNok()
	}
	t.scratch.AttentionBefore = t.previousByte
	t.scratch.MarkerA = b
	t.Enter(AttentionSequence)
	t.Consume()
	return StepNext(StateAttentionInside)
}

func attentionInside(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == t.scratch.MarkerA {
		t.Consume()
		return StepNext(StateAttentionInside)
	}
	t.Exit(AttentionSequence)
	t.registerResolver(resolverAttention)
	return StepOk()
}
