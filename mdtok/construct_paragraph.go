package mdtok

func init() {
	registerState(StateParagraphStart, paragraphStart)
	registerState(StateParagraphInside, paragraphInside)
}

// paragraphStart is flow's fallback: any non-blank line that nothing
// else claimed becomes (a line of) a paragraph. It both opens a new
// paragraph and appends a line to an already-open one, since flowStart
// retries here either way.
func paragraphStart(t *Tokenizer) StepResult {
	if _, ok := t.Byte(); !ok {
		return StepNok()
	}
	if len(t.stack) == 0 || t.stack[len(t.stack)-1] != Paragraph {
		t.Enter(Paragraph)
		t.scratch.ParagraphChunkPrev = nil
	}
	t.Enter(ParagraphLine)
	t.scratch.MarkerA = 0
	return StepRetry(StateParagraphInside)
}

// paragraphInside emits one Data chunk per line (spec.md §3's chunk
// linking): each chunk's own byte range excludes whatever container
// prefix a sibling construct already stripped before handing the
// remainder of the line to flow, so subtokenize can re-tokenize each
// chunk independently without contaminating it with `> ` or list
// indentation from an intervening line.
func paragraphInside(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == '\n' {
		if t.scratch.MarkerA == 1 {
			t.Exit(Data)
		}
		t.Exit(ParagraphLine)
		if !ok {
			t.Exit(Paragraph)
			return StepOk()
		}
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
		return StepOk()
	}
	if t.scratch.MarkerA == 0 {
		idx := t.EnterChunk(Data, ContentText, t.scratch.ParagraphChunkPrev)
		t.scratch.ParagraphChunkPrev = intPtr(idx)
		t.scratch.MarkerA = 1
	}
	t.Consume()
	return StepRetry(StateParagraphInside)
}
