package mdtok

// Space-or-tab is CommonMark's ubiquitous "eat horizontal whitespace"
// partial, parameterized by scratch.Size as a maximum width (virtual
// tab stops count toward it), a negative Size (noSpaceMax) meaning "no
// maximum"; the width consumed is left in scratch.SizeB, and a match
// leaves both fields overwritten. Constructs call attemptSpaceOrTab / attemptSpaceOrTabMax
// rather than dispatching StateSpaceOrTabStart directly so the scratch
// setup can't be forgotten at a call site.

const noSpaceMax = -1

func attemptSpaceOrTab(t *Tokenizer) bool {
	return attemptSpaceOrTabMax(t, noSpaceMax)
}

func attemptSpaceOrTabMax(t *Tokenizer, max int) bool {
	t.scratch.Size = max
	t.scratch.SizeB = 0
	return t.Attempt(StateSpaceOrTabStart)
}

func init() {
	registerState(StateSpaceOrTabStart, spaceOrTabStart)
	registerState(StateSpaceOrTabInside, spaceOrTabInside)
}

func spaceOrTabStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || (b != ' ' && b != '\t') {
		return StepNok()
	}
	t.Enter(SpaceOrTab)
	return StepRetry(StateSpaceOrTabInside)
}

func spaceOrTabInside(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && (b == ' ' || b == '\t') && (t.scratch.Size < 0 || t.scratch.SizeB < t.scratch.Size) {
		width := 1
		if b == '\t' {
			width = TabSize - (t.cur.point.Column-1)%TabSize
		}
		t.scratch.SizeB += width
		t.Consume()
		return StepRetry(StateSpaceOrTabInside)
	}
	t.Exit(SpaceOrTab)
	return StepOk()
}
