package mdtok

// Code (indented) (spec.md §4.5): any line indented at least 4 columns
// continues a code block, so long as it doesn't interrupt an open
// paragraph. Blank lines may appear inside the block, but trailing
// blank lines belong to whatever follows; furtherEnd peeks (read-only,
// across line endings) past a run of blank lines to see whether
// another indented line resumes the block before committing them.
//
// Like Paragraph, this construct only ever processes one line per
// turn and leaves CodeIndented open on the stack for flowStart's
// stack-top dispatch to resume on the next line -- that's what lets
// runDocument re-run container continuation between code-block lines.
// Ending the block mid-turn without consuming the line that ended it
// re-enters StateFlowStart so that line gets ordinary treatment.

func init() {
	registerState(StateCodeIndentedStart, codeIndentedStart)
	registerState(StateCodeIndentedAtBreak, codeIndentedAtBreak)
	registerState(StateCodeIndentedInside, codeIndentedInside)
	registerState(StateCodeIndentedFurtherStart, codeIndentedFurtherStart)
	registerState(StateCodeIndentedFurtherBegin, codeIndentedFurtherBegin)
	registerState(StateCodeIndentedFurtherEnd, codeIndentedFurtherEnd)
	registerState(StateCodeIndentedFurtherAfter, codeIndentedFurtherAfter)
}

func codeIndentedStart(t *Tokenizer) StepResult {
	if t.interrupt {
		return StepNok()
	}
	if ok := attemptSpaceOrTabMax(t, 4); !ok || t.scratch.SizeB < 4 {
		return StepNok()
	}
	t.Enter(CodeIndented)
	t.scratch.DocumentDataIndex = nil
	return StepRetry(StateCodeIndentedAtBreak)
}

func codeIndentedAtBreak(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok {
		t.Exit(CodeIndented)
		return StepOk()
	}
	if b == '\n' {
		return StepRetry(StateCodeIndentedFurtherStart)
	}
	idx := t.EnterChunk(CodeFlowChunk, ContentText, t.scratch.DocumentDataIndex)
	t.scratch.DocumentDataIndex = &idx
	return StepRetry(StateCodeIndentedInside)
}

func codeIndentedInside(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == '\n' {
		t.Exit(CodeFlowChunk)
		if !ok {
			t.Exit(CodeIndented)
			return StepOk()
		}
		return StepRetry(StateCodeIndentedFurtherStart)
	}
	t.Consume()
	return StepNext(StateCodeIndentedInside)
}

func codeIndentedFurtherStart(t *Tokenizer) StepResult {
	t.Enter(LineEnding)
	t.Consume()
	t.Exit(LineEnding)
	return StepOk()
}

// codeIndentedLineIndent scans (read-only) the current line's leading
// space/tab run, reporting its expanded width and whether the line is
// blank.
func codeIndentedLineIndent(t *Tokenizer) (indent int, blank bool) {
	bytes := t.cur.bytes
	i := t.cur.index
	n := len(bytes)
	col := t.cur.point_().Column
	for i < n && (bytes[i] == ' ' || bytes[i] == '\t') {
		if bytes[i] == '\t' {
			indent += TabSize - (col-1)%TabSize
		} else {
			indent++
		}
		col++
		i++
	}
	blank = i >= n || bytes[i] == '\n' || bytes[i] == '\r'
	return indent, blank
}

// codeIndentedBlankRunResumes reports whether, scanning forward
// (read-only) across a run of blank lines starting at the current
// position, the block resumes (a line indented >=4 follows) before it
// ends (EOF or an under-indented non-blank line).
func codeIndentedBlankRunResumes(t *Tokenizer) bool {
	bytes := t.cur.bytes
	i := t.cur.index
	n := len(bytes)
	for {
		col := 1
		indent := 0
		for i < n && (bytes[i] == ' ' || bytes[i] == '\t') {
			if bytes[i] == '\t' {
				indent += TabSize - (col-1)%TabSize
			} else {
				indent++
			}
			col++
			i++
		}
		if i >= n {
			return false
		}
		if bytes[i] == '\n' {
			i++
			continue
		}
		return indent >= 4
	}
}

func codeIndentedFurtherBegin(t *Tokenizer) StepResult {
	indent, blank := codeIndentedLineIndent(t)
	if blank {
		return StepRetry(StateCodeIndentedFurtherEnd)
	}
	if indent >= 4 {
		attemptSpaceOrTabMax(t, 4)
		return StepRetry(StateCodeIndentedAtBreak)
	}
	t.Exit(CodeIndented)
	return StepRetry(StateFlowStart)
}

func codeIndentedFurtherEnd(t *Tokenizer) StepResult {
	if !codeIndentedBlankRunResumes(t) {
		t.Exit(CodeIndented)
		return StepRetry(StateFlowStart)
	}
	attemptSpaceOrTab(t)
	return StepRetry(StateCodeIndentedFurtherAfter)
}

func codeIndentedFurtherAfter(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '\n' {
		t.Enter(BlankLineEnding)
		t.Consume()
		t.Exit(BlankLineEnding)
		return StepOk()
	}
	t.Exit(CodeIndented)
	return StepOk()
}
