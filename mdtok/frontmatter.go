package mdtok

// Frontmatter (spec.md §4.5, grounded on original_source/src/construct/
// partial_data.rs's sibling treatment of fenced metadata blocks): a
// fence of exactly 3 `-` (YAML) or `+` (TOML) bytes, alone on the very
// first line of the document, followed by raw lines until a matching
// closing fence. Unlike a fenced code block this only ever matches at
// byte 0 and is a single Attempt that scans its own multi-line body
// directly (no container can exist above it yet, so there's nothing
// for flowStart's per-line dispatch to preserve).

func init() {
	registerState(StateFrontmatterStart, frontmatterStart)
	registerState(StateFrontmatterSequenceOpen, frontmatterSequenceOpen)
	registerState(StateFrontmatterAtBreak, frontmatterAtBreak)
	registerState(StateFrontmatterInside, frontmatterInside)
	registerState(StateFrontmatterSequenceClose, frontmatterSequenceClose)
}

func frontmatterStart(t *Tokenizer) StepResult {
	if t.Point().Index != 0 {
		return StepNok()
	}
	b, ok := t.Byte()
	if !ok || (b != '-' && b != '+') {
		return StepNok()
	}
	t.scratch.MarkerA = b
	t.scratch.Size = 0
	t.Enter(Frontmatter)
	t.Enter(FrontmatterFence)
	t.Enter(FrontmatterSequence)
	return StepRetry(StateFrontmatterSequenceOpen)
}

func frontmatterSequenceOpen(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == t.scratch.MarkerA && t.scratch.Size < 3 {
		t.scratch.Size++
		t.Consume()
		return StepRetry(StateFrontmatterSequenceOpen)
	}
	if t.scratch.Size != 3 {
		return StepNok()
	}
	if b, ok := t.Byte(); ok && b == t.scratch.MarkerA {
		return StepNok()
	}
	t.Exit(FrontmatterSequence)
	return StepRetry(StateFrontmatterAtBreak)
}

func frontmatterAtBreak(t *Tokenizer) StepResult {
	attemptSpaceOrTab(t)
	b, ok := t.Byte()
	if ok && b != '\n' {
		return StepNok()
	}
	t.Exit(FrontmatterFence)
	if ok {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	t.scratch.DocumentDataIndex = nil
	return StepRetry(StateFrontmatterInside)
}

// frontmatterClosingAhead reports (read-only) whether the current line
// is exactly the matching closing fence: the same marker byte 3 times,
// then only space/tab through the line ending or EOF.
func frontmatterClosingAhead(t *Tokenizer) bool {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	for k := 0; k < 3; k++ {
		if i >= n || bytesSlice[i] != t.scratch.MarkerA {
			return false
		}
		i++
	}
	for i < n && (bytesSlice[i] == ' ' || bytesSlice[i] == '\t') {
		i++
	}
	return i >= n || bytesSlice[i] == '\n'
}

func frontmatterInside(t *Tokenizer) StepResult {
	if frontmatterClosingAhead(t) {
		return StepRetry(StateFrontmatterSequenceClose)
	}
	if _, ok := t.Byte(); !ok {
		return StepNok()
	}
	idx := t.EnterChunk(FrontmatterChunk, ContentNone, t.scratch.DocumentDataIndex)
	t.scratch.DocumentDataIndex = &idx
	for {
		b, ok := t.Byte()
		if !ok || b == '\n' {
			t.Exit(FrontmatterChunk)
			if !ok {
				return StepNok()
			}
			t.Enter(LineEnding)
			t.Consume()
			t.Exit(LineEnding)
			return StepRetry(StateFrontmatterInside)
		}
		t.Consume()
	}
}

func frontmatterSequenceClose(t *Tokenizer) StepResult {
	t.Enter(FrontmatterFence)
	t.Enter(FrontmatterSequence)
	for i := 0; i < 3; i++ {
		t.Consume()
	}
	t.Exit(FrontmatterSequence)
	attemptSpaceOrTab(t)
	if b, ok := t.Byte(); ok && b == '\n' {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	t.Exit(FrontmatterFence)
	t.Exit(Frontmatter)
	return StepOk()
}
