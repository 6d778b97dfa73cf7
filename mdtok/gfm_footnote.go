package mdtok

// GFM footnote (spec.md §6.4, grounded on
// micromark-extension-gfm-footnote): a call `[^label]` (text tier),
// recognized only when label is already known to name a definition
// (prepass.go's scanDefinitions populates GfmFootnoteDefinitions up
// front, the same cross-reference trick Definition/label-end use), and
// a definition `[^label]:` (flow tier). A definition's body here is
// kept to the rest of its opening line, wrapped as a single-line
// Paragraph: the full multi-paragraph, indentation-continued footnote
// body that GFM allows would need its own container kind in
// runDocument's continuation protocol, which is out of scope here.

func init() {
	registerState(StateGfmFootnoteCallStart, gfmFootnoteCallStart)
	registerState(StateGfmFootnoteCallInside, gfmFootnoteCallInside)
	registerState(StateGfmFootnoteDefinitionStart, gfmFootnoteDefinitionStart)
	registerState(StateGfmFootnoteDefinitionLabelAfter, gfmFootnoteDefinitionLabelAfter)
}

func gfmFootnoteCallStart(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); !ok || b != '[' {
		return StepNok()
	}
	if t.cur.index+1 >= len(t.cur.bytes) || t.cur.bytes[t.cur.index+1] != '^' {
		return StepNok()
	}
	t.Enter(GfmFootnoteCall)
	t.Enter(GfmFootnoteCallLabelMarker)
	t.Consume()
	t.Exit(GfmFootnoteCallLabelMarker)
	t.Enter(GfmFootnoteCallMarker)
	t.Consume()
	t.Exit(GfmFootnoteCallMarker)
	return StepRetry(StateGfmFootnoteCallInside)
}

func gfmFootnoteCallInside(t *Tokenizer) StepResult {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	start := i
	for i < n && bytesSlice[i] != ']' && bytesSlice[i] != '\n' {
		if bytesSlice[i] == '\\' && i+1 < n {
			i++
		}
		i++
	}
	if i >= n || bytesSlice[i] != ']' || i == start {
		t.Exit(GfmFootnoteCall)
		return StepNok()
	}
	label := string(bytesSlice[start:i])
	normalized := normalizeIdentifier(label)
	if normalized == "" || !t.parseState.GfmFootnoteDefinitions[normalized] {
		t.Exit(GfmFootnoteCall)
		return StepNok()
	}
	t.Enter(GfmFootnoteCallString)
	for t.cur.index < i {
		t.Consume()
	}
	t.Exit(GfmFootnoteCallString)
	t.Enter(GfmFootnoteCallLabelMarker)
	t.Consume()
	t.Exit(GfmFootnoteCallLabelMarker)
	t.Exit(GfmFootnoteCall)
	return StepOk()
}

func gfmFootnoteDefinitionStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	if b, ok := t.Byte(); !ok || b != '[' {
		return StepNok()
	}
	if t.cur.index+1 >= len(t.cur.bytes) || t.cur.bytes[t.cur.index+1] != '^' {
		return StepNok()
	}
	t.Enter(GfmFootnoteDefinition)
	t.Enter(GfmFootnoteDefinitionPrefix)
	t.Enter(GfmFootnoteDefinitionLabelMarker)
	t.Consume() // '['
	t.Consume() // '^'
	for {
		b, ok := t.Byte()
		if !ok || b == '\n' {
			t.Exit(GfmFootnoteDefinitionLabelMarker)
			t.Exit(GfmFootnoteDefinitionPrefix)
			t.Exit(GfmFootnoteDefinition)
			return StepNok()
		}
		if b == ']' {
			break
		}
		if b == '\\' {
			t.Consume()
			if _, ok2 := t.Byte(); ok2 {
				t.Consume()
			}
			continue
		}
		t.Consume()
	}
	t.Consume() // ']'
	t.Exit(GfmFootnoteDefinitionLabelMarker)
	return StepRetry(StateGfmFootnoteDefinitionLabelAfter)
}

func gfmFootnoteDefinitionLabelAfter(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); !ok || b != ':' {
		t.Exit(GfmFootnoteDefinitionPrefix)
		t.Exit(GfmFootnoteDefinition)
		return StepNok()
	}
	t.Enter(GfmFootnoteDefinitionMarker)
	t.Consume()
	t.Exit(GfmFootnoteDefinitionMarker)
	attemptSpaceOrTab(t)
	t.Exit(GfmFootnoteDefinitionPrefix)

	t.Enter(Paragraph)
	t.Enter(ParagraphLine)
	b, ok := t.Byte()
	if ok && b != '\n' {
		t.EnterWithContent(Data, ContentText)
		for {
			b, ok = t.Byte()
			if !ok || b == '\n' {
				break
			}
			t.Consume()
		}
		t.Exit(Data)
	}
	t.Exit(ParagraphLine)
	if ok {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	t.Exit(Paragraph)
	t.Exit(GfmFootnoteDefinition)
	return StepOk()
}
