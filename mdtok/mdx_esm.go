package mdtok

// MDX ESM (spec.md §7.2, grounded on
// micromark-extension-mdxjs-esm's tokenizeEsm): a run of lines whose
// first begins with the keyword `export` or `import` (not as a prefix
// of a longer identifier), continuing as opaque data through to the
// first blank line. Like the other multi-line flow constructs this
// processes exactly one line per turn and resumes via flowStart's
// stack-top dispatch, bailing out through StateFlowStart once a blank
// line ends the block so the ordinary blank-line construct handles it.

func init() {
	registerState(StateMdxEsmStart, mdxEsmStart)
	registerState(StateMdxEsmInside, mdxEsmInside)
	registerState(StateMdxEsmLineStart, mdxEsmLineStart)
}

func mdxEsmKeywordAhead(t *Tokenizer) bool {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	for _, kw := range [2]string{"export", "import"} {
		kb := len(kw)
		if i+kb > n || string(bytesSlice[i:i+kb]) != kw {
			continue
		}
		if i+kb < n {
			b := bytesSlice[i+kb]
			if isAsciiLetter(b) || (b >= '0' && b <= '9') || b == '_' || b == '$' {
				continue
			}
		}
		return true
	}
	return false
}

func mdxEsmStart(t *Tokenizer) StepResult {
	if t.interrupt {
		return StepNok()
	}
	if !mdxEsmKeywordAhead(t) {
		return StepNok()
	}
	t.Enter(MdxEsm)
	t.scratch.DocumentDataIndex = nil
	return StepRetry(StateMdxEsmInside)
}

func mdxEsmInside(t *Tokenizer) StepResult {
	if _, ok := t.Byte(); !ok {
		t.Exit(MdxEsm)
		return StepOk()
	}
	idx := t.EnterChunk(MdxEsmData, ContentNone, t.scratch.DocumentDataIndex)
	t.scratch.DocumentDataIndex = &idx
	for {
		b, ok := t.Byte()
		if !ok || b == '\n' {
			t.Exit(MdxEsmData)
			if ok {
				t.Enter(LineEnding)
				t.Consume()
				t.Exit(LineEnding)
			} else {
				t.Exit(MdxEsm)
			}
			return StepOk()
		}
		t.Consume()
	}
}

func mdxEsmBlankLineAhead(t *Tokenizer) bool {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	for i < n && (bytesSlice[i] == ' ' || bytesSlice[i] == '\t') {
		i++
	}
	return i >= n || bytesSlice[i] == '\n'
}

func mdxEsmLineStart(t *Tokenizer) StepResult {
	if mdxEsmBlankLineAhead(t) {
		t.Exit(MdxEsm)
		return StepRetry(StateFlowStart)
	}
	return StepRetry(StateMdxEsmInside)
}
