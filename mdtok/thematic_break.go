package mdtok

// Thematic break (spec.md §4.5): up to 3 leading spaces, then 3 or more
// of the same `-`, `*`, or `_` byte, with any amount of space/tab
// (including none) between and after them, ending at a line ending or
// EOF. Unlike list items, a thematic break may always interrupt an open
// paragraph regardless of which marker byte it reuses.

func init() {
	registerState(StateThematicBreakStart, thematicBreakStart)
	registerState(StateThematicBreakBefore, thematicBreakBefore)
	registerState(StateThematicBreakSequence, thematicBreakSequence)
	registerState(StateThematicBreakAtBreak, thematicBreakAtBreak)
}

func isThematicBreakMarker(b byte) bool { return b == '-' || b == '*' || b == '_' }

func thematicBreakStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	return StepRetry(StateThematicBreakBefore)
}

func thematicBreakBefore(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || !isThematicBreakMarker(b) {
		return StepNok()
	}
	t.scratch.MarkerA = b
	t.scratch.Size = 0
	t.Enter(ThematicBreak)
	return StepRetry(StateThematicBreakAtBreak)
}

func thematicBreakAtBreak(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	switch {
	case !ok || b == '\n':
		if t.scratch.Size < 3 {
			return StepNok()
		}
		t.Exit(ThematicBreak)
		return StepOk()
	case b == t.scratch.MarkerA:
		return StepRetry(StateThematicBreakSequence)
	case b == ' ' || b == '\t':
		size := t.scratch.Size
		attemptSpaceOrTab(t)
		t.scratch.Size = size
		return StepRetry(StateThematicBreakAtBreak)
	default:
		return StepNok()
	}
}

func thematicBreakSequence(t *Tokenizer) StepResult {
	t.Enter(ThematicBreakSequence)
	for {
		b, ok := t.Byte()
		if !ok || b != t.scratch.MarkerA {
			break
		}
		t.scratch.Size++
		t.Consume()
	}
	t.Exit(ThematicBreakSequence)
	return StepRetry(StateThematicBreakAtBreak)
}
