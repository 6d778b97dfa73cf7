package mdtok

func init() {
	registerState(StateListStart, listStart)
	registerState(StateListBefore, listBefore)
	registerState(StateListValue, listValue)
	registerState(StateListMarker, listMarker)
	registerState(StateListMarkerAfter, listMarkerAfter)
	registerState(StateListAfter, listAfter)
	registerState(StateListContBlank, listContBlank)
	registerState(StateListContStart, listContStart)
	registerState(StateListContFilled, listContFilled)
}

func isListUnorderedMarker(b byte) bool { return b == '-' || b == '*' || b == '+' }

// attemptListStart tries to open a new list item at the current
// position. interruptingParagraph disables a blank-initial-line item
// and an ordered item whose start value is not 1. A `*` or `-` marker
// whose line also forms a thematic break never opens an item, whether
// interrupting or not: the thematic break takes the line.
func attemptListStart(t *Tokenizer, cs *ContainerState, interruptingParagraph bool) bool {
	t.scratch.DocumentInterruptBefore = interruptingParagraph
	t.scratch.DocumentContainerStack = append(t.scratch.DocumentContainerStack, ContainerState{})
	ok := t.Attempt(StateListStart)
	n := len(t.scratch.DocumentContainerStack)
	*cs = t.scratch.DocumentContainerStack[n-1]
	t.scratch.DocumentContainerStack = t.scratch.DocumentContainerStack[:n-1]
	return ok
}

func listStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	return StepRetry(StateListBefore)
}

func listBefore(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok {
		return StepNok()
	}
	if isListUnorderedMarker(b) {
		if (b == '*' || b == '-') && t.Check(StateThematicBreakStart) {
			return StepNok()
		}
		return StepRetry(StateListMarker)
	}
	if b >= '0' && b <= '9' {
		t.scratch.SizeC = 0
		t.scratch.Start = 0
		return StepRetry(StateListValue)
	}
	return StepNok()
}

func listValue(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b >= '0' && b <= '9' && t.scratch.SizeC < 10 {
		if t.scratch.SizeC == 0 {
			t.Enter(ListItemValue)
		}
		t.scratch.Start = t.scratch.Start*10 + int(b-'0')
		t.scratch.SizeC++
		t.Consume()
		return StepRetry(StateListValue)
	}
	if t.scratch.SizeC > 0 {
		t.Exit(ListItemValue)
	}
	if !ok || (b != '.' && b != ')') || t.scratch.SizeC == 0 {
		return StepNok()
	}
	if t.scratch.DocumentInterruptBefore && t.scratch.Start != 1 {
		return StepNok()
	}
	return StepRetry(StateListMarker)
}

func listMarker(t *Tokenizer) StepResult {
	b, _ := t.Byte()
	n := len(t.scratch.DocumentContainerStack)
	ordered := !isListUnorderedMarker(b)
	t.Enter(ListItemMarker)
	t.Consume()
	t.Exit(ListItemMarker)
	t.scratch.DocumentContainerStack[n-1] = ContainerState{
		Kind: ContainerListItem, Delim: b, Ordered: ordered, Start: t.scratch.Start,
	}
	return StepNext(StateListMarkerAfter)
}

func listMarkerAfter(t *Tokenizer) StepResult {
	// A marker with nothing after it but EOF/blank still opens an item
	// whose content column is one past the marker (CommonMark's "blank
	// line right after the marker" case), unless it would interrupt a
	// paragraph. Otherwise the width is the marker plus the whitespace
	// after it; attemptSpaceOrTabMax leaves SizeB at 0 when it fails.
	attemptSpaceOrTabMax(t, 4)
	n := len(t.scratch.DocumentContainerStack)
	cs := &t.scratch.DocumentContainerStack[n-1]
	width := t.scratch.SizeB
	if cs.Ordered {
		width += len(itoaSmall(cs.Start)) + 1
	} else {
		width++
	}
	b, ok := t.Byte()
	if !ok || b == '\n' {
		if t.scratch.DocumentInterruptBefore {
			return StepNok()
		}
		cs.BlankInitial = true
		width = 2
		if cs.Ordered {
			width = len(itoaSmall(cs.Start)) + 2
		}
	} else if t.scratch.SizeB == 0 {
		return StepNok()
	}
	cs.Size = width
	return StepOk()
}

func listAfter(t *Tokenizer) StepResult { return StepOk() }

func itoaSmall(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// attemptListContinuation tries to continue an already-open list item:
// either a blank line, which always continues the item (blank lines
// never end an item here, whether or not its first line was blank), or
// at least cs.Size columns of indentation.
func attemptListContinuation(t *Tokenizer, cs ContainerState) bool {
	t.scratch.ListItemSize = cs.Size
	return t.Attempt(StateListContStart)
}

func listContStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == '\n' {
		return StepRetry(StateListContBlank)
	}
	return StepRetry(StateListContFilled)
}

func listContBlank(t *Tokenizer) StepResult { return StepOk() }

func listContFilled(t *Tokenizer) StepResult {
	want := t.scratch.ListItemSize
	if !attemptSpaceOrTabMax(t, want) {
		return StepNok()
	}
	if t.scratch.SizeB < want {
		return StepNok()
	}
	return StepOk()
}
