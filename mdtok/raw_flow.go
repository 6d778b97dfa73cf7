package mdtok

// Raw flow (spec.md §4.5, grounded on original_source/src/construct/
// code_fenced.rs and math_flow.rs): fenced code and math flow share one
// "fence, info/meta, fenced lines, closing fence" machine keyed off the
// marker byte (`` ` ``, `~`, or `$`). Like code (indented), each
// subsequent line is its own turn: flowStart's stack-top dispatch
// resumes StateRawFlowWithinFence per line so runDocument can re-run
// container continuation between them. The closing fence is tried with
// Check first (a non-lazy continuation is required, and it must not be
// mistaken for a content line) before being consumed for real with Go.

type rawFlowTokens struct {
	Wrap          TokenName
	Fence         TokenName
	FenceSequence TokenName
	FenceInfo     TokenName
	FenceMeta     TokenName
	Chunk         TokenName
}

func rawFlowTokensFor(delim byte) rawFlowTokens {
	if delim == '$' {
		return rawFlowTokens{MathFlow, MathFlowFence, MathFlowFenceSequence, TokenNone, MathFlowFenceMeta, MathFlowChunk}
	}
	return rawFlowTokens{CodeFenced, CodeFencedFence, CodeFencedFenceSequence, CodeFencedFenceInfo, CodeFencedFenceMeta, CodeFlowChunk}
}

func rawFlowMinFenceSize(delim byte) int {
	if delim == '$' {
		return 2
	}
	return 3
}

func init() {
	registerState(StateRawFlowStart, rawFlowStart)
	registerState(StateRawFlowBeforeSequenceOpen, rawFlowBeforeSequenceOpen)
	registerState(StateRawFlowSequenceOpen, rawFlowSequenceOpen)
	registerState(StateRawFlowInfoBefore, rawFlowInfoBefore)
	registerState(StateRawFlowInfo, rawFlowInfo)
	registerState(StateRawFlowMetaBefore, rawFlowMetaBefore)
	registerState(StateRawFlowMeta, rawFlowMeta)
	registerState(StateRawFlowAtNonLazyBreak, rawFlowAtNonLazyBreak)
	registerState(StateRawFlowCloseStart, rawFlowCloseStart)
	registerState(StateRawFlowBeforeSequenceClose, rawFlowBeforeSequenceClose)
	registerState(StateRawFlowSequenceClose, rawFlowSequenceClose)
	registerState(StateRawFlowAfterSequenceClose, rawFlowAfterSequenceClose)
	registerState(StateRawFlowWithinFence, rawFlowWithinFence)
	registerState(StateRawFlowChunkStart, rawFlowChunkStart)
	registerState(StateRawFlowChunkInside, rawFlowChunkInside)
}

func rawFlowStart(t *Tokenizer) StepResult {
	ok := attemptSpaceOrTabMax(t, 3)
	indent := 0
	if ok {
		indent = t.scratch.SizeB
	}
	b, have := t.Byte()
	c := t.parseState.Constructs
	var delim byte
	switch {
	case have && (b == '`' || b == '~') && c.CodeFenced:
		delim = b
	case have && b == '$' && c.MathFlow:
		delim = '$'
	default:
		return StepNok()
	}
	t.scratch.RawFlowFenceDelim = delim
	t.scratch.RawFlowBasicIndent = indent
	t.scratch.Size = 0
	toks := rawFlowTokensFor(delim)
	t.Enter(toks.Wrap)
	t.Enter(toks.Fence)
	t.Enter(toks.FenceSequence)
	return StepRetry(StateRawFlowBeforeSequenceOpen)
}

func rawFlowBeforeSequenceOpen(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == t.scratch.RawFlowFenceDelim {
		t.scratch.Size++
		t.Consume()
		return StepNext(StateRawFlowBeforeSequenceOpen)
	}
	return StepRetry(StateRawFlowSequenceOpen)
}

func rawFlowSequenceOpen(t *Tokenizer) StepResult {
	toks := rawFlowTokensFor(t.scratch.RawFlowFenceDelim)
	if t.scratch.Size < rawFlowMinFenceSize(t.scratch.RawFlowFenceDelim) {
		return StepNok()
	}
	t.scratch.RawFlowFenceSize = t.scratch.Size
	t.Exit(toks.FenceSequence)
	return StepRetry(StateRawFlowInfoBefore)
}

func rawFlowInfoBefore(t *Tokenizer) StepResult {
	attemptSpaceOrTab(t)
	toks := rawFlowTokensFor(t.scratch.RawFlowFenceDelim)
	b, ok := t.Byte()
	if !ok || b == '\n' {
		t.Exit(toks.Fence)
		return StepRetry(StateRawFlowAtNonLazyBreak)
	}
	if toks.FenceInfo == TokenNone {
		return StepRetry(StateRawFlowMetaBefore)
	}
	t.EnterWithContent(toks.FenceInfo, ContentText)
	return StepRetry(StateRawFlowInfo)
}

func rawFlowInfo(t *Tokenizer) StepResult {
	toks := rawFlowTokensFor(t.scratch.RawFlowFenceDelim)
	b, ok := t.Byte()
	if t.scratch.RawFlowFenceDelim != '$' && ok && b == t.scratch.RawFlowFenceDelim {
		return StepNok()
	}
	if !ok || b == '\n' {
		t.Exit(toks.FenceInfo)
		t.Exit(toks.Fence)
		return StepRetry(StateRawFlowAtNonLazyBreak)
	}
	if b == ' ' || b == '\t' {
		t.Exit(toks.FenceInfo)
		return StepRetry(StateRawFlowMetaBefore)
	}
	t.Consume()
	return StepNext(StateRawFlowInfo)
}

func rawFlowMetaBefore(t *Tokenizer) StepResult {
	attemptSpaceOrTab(t)
	toks := rawFlowTokensFor(t.scratch.RawFlowFenceDelim)
	b, ok := t.Byte()
	if !ok || b == '\n' {
		t.Exit(toks.Fence)
		return StepRetry(StateRawFlowAtNonLazyBreak)
	}
	t.EnterWithContent(toks.FenceMeta, ContentText)
	return StepRetry(StateRawFlowMeta)
}

func rawFlowMeta(t *Tokenizer) StepResult {
	toks := rawFlowTokensFor(t.scratch.RawFlowFenceDelim)
	b, ok := t.Byte()
	if t.scratch.RawFlowFenceDelim != '$' && ok && b == t.scratch.RawFlowFenceDelim {
		return StepNok()
	}
	if !ok || b == '\n' {
		t.Exit(toks.FenceMeta)
		t.Exit(toks.Fence)
		return StepRetry(StateRawFlowAtNonLazyBreak)
	}
	t.Consume()
	return StepNext(StateRawFlowMeta)
}

func rawFlowAtNonLazyBreak(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '\n' {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	t.scratch.DocumentDataIndex = nil
	return StepOk()
}

// rawFlowWithinFence is the per-line resume point once the fence is
// open: it decides between a closing fence and an ordinary content
// line without committing to either until it knows which.
func rawFlowWithinFence(t *Tokenizer) StepResult {
	if t.Check(StateRawFlowCloseStart) {
		return t.Go(StateRawFlowCloseStart)
	}
	return StepRetry(StateRawFlowChunkStart)
}

func rawFlowCloseStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	b, ok := t.Byte()
	if !ok || b != t.scratch.RawFlowFenceDelim {
		return StepNok()
	}
	t.scratch.SizeB = 0
	return StepRetry(StateRawFlowBeforeSequenceClose)
}

func rawFlowBeforeSequenceClose(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == t.scratch.RawFlowFenceDelim {
		t.scratch.SizeB++
		t.Consume()
		return StepNext(StateRawFlowBeforeSequenceClose)
	}
	return StepRetry(StateRawFlowSequenceClose)
}

func rawFlowSequenceClose(t *Tokenizer) StepResult {
	if t.scratch.SizeB < t.scratch.RawFlowFenceSize {
		return StepNok()
	}
	return StepRetry(StateRawFlowAfterSequenceClose)
}

func rawFlowAfterSequenceClose(t *Tokenizer) StepResult {
	attemptSpaceOrTab(t)
	b, ok := t.Byte()
	if ok && b != '\n' {
		return StepNok()
	}
	toks := rawFlowTokensFor(t.scratch.RawFlowFenceDelim)
	if ok {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	t.Exit(toks.Wrap)
	return StepOk()
}

func rawFlowChunkStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, t.scratch.RawFlowBasicIndent)
	toks := rawFlowTokensFor(t.scratch.RawFlowFenceDelim)
	b, ok := t.Byte()
	if !ok {
		t.Exit(toks.Wrap)
		return StepOk()
	}
	if b == '\n' {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
		return StepOk()
	}
	idx := t.EnterChunk(toks.Chunk, ContentText, t.scratch.DocumentDataIndex)
	t.scratch.DocumentDataIndex = &idx
	return StepRetry(StateRawFlowChunkInside)
}

func rawFlowChunkInside(t *Tokenizer) StepResult {
	toks := rawFlowTokensFor(t.scratch.RawFlowFenceDelim)
	b, ok := t.Byte()
	if !ok || b == '\n' {
		t.Exit(toks.Chunk)
		if !ok {
			t.Exit(toks.Wrap)
			return StepOk()
		}
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
		return StepOk()
	}
	t.Consume()
	return StepNext(StateRawFlowChunkInside)
}
