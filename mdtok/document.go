package mdtok

// runDocument drives the top-level container-continuation protocol
// (spec.md §4.3): for every line, re-check each already-open
// container's continuation construct from the outside in, close any
// that stop matching, open any new containers at the resulting
// position, then hand the rest of the line to the flow tier. Flow
// content itself may span many lines (a paragraph, a fenced code
// block): runFlowChild handles one line, and a construct still open at
// its end is resumed on the next line by flowStart's stack-top switch.
func (t *Tokenizer) runDocument() {
	var stack []ContainerState
	var stackNames []TokenName
	// wrapNames[i] is the ListOrdered/ListUnordered name wrapping
	// stack[i] when that container is a list item, or TokenName(0)
	// otherwise. Each list item construct opens its own wrapper (see
	// attemptListStart below); resolverList merges adjacent same-kind
	// wrappers back into one list once the whole document is known.
	var wrapNames []TokenName

	for !t.AtEOF() {
		continued := 0
		for continued < len(stack) {
			cs := stack[continued]
			var ok bool
			switch cs.Kind {
			case ContainerBlockQuote:
				ok = attemptBlockQuoteContinuation(t, cs)
			case ContainerListItem:
				ok = attemptListContinuation(t, cs)
			}
			if !ok {
				break
			}
			continued++
		}

		lazy := false // the line joins an open paragraph without continuing every container
		if continued < len(stack) && t.scratch.DocumentParagraphBefore {
			snap := t.snapshot()
			var cs ContainerState
			lazy = !attemptBlockQuoteStart(t, &cs) && !attemptListStart(t, &cs, true)
			t.interrupt = true
			for _, name := range flowConstructs {
				lazy = lazy && (name == StateHeadingSetextBefore || !constructEnabled(t, name) || !t.Check(name))
			}
			t.restore(snap)
			if lazy {
				continued = len(stack)
			}
		}

		// Close containers that stopped matching, innermost first, along
		// with any flow construct still open inside them.
		for len(stack) > continued {
			last := len(stackNames) - 1
			for t.stack[len(t.stack)-1] != stackNames[last] {
				t.Exit(t.stack[len(t.stack)-1])
			}
			t.Exit(stackNames[last])
			if wrapNames[last] != TokenNone {
				t.Exit(wrapNames[last])
			}
			stack = stack[:last]
			stackNames = stackNames[:last]
			wrapNames = wrapNames[:last]
		}

		// Try to open new containers at the current position. A line
		// inside an open fenced code, math flow or HTML flow block is
		// raw content, so no container opens there.
		t.concrete = false
		if n := len(t.stack); n > 0 {
			switch t.stack[n-1] {
			case CodeFenced, MathFlow, HtmlFlow:
				t.concrete = true
			}
		}
		for !t.concrete {
			var cs ContainerState
			interruptingParagraph := t.scratch.DocumentParagraphBefore
			// A container start ends a paragraph left open by the
			// previous line; the paragraph stays open if none starts.
			snap := t.snapshot()
			if n := len(t.stack); n > 0 && t.stack[n-1] == Paragraph {
				t.Exit(Paragraph)
			}
			if attemptBlockQuoteStart(t, &cs) {
				stack = append(stack, cs)
				stackNames = append(stackNames, BlockQuote)
				wrapNames = append(wrapNames, TokenNone)
				continue
			}
			if attemptListStart(t, &cs, interruptingParagraph) {
				name := ListUnordered
				if cs.Ordered {
					name = ListOrdered
				}
				t.Enter(name)
				t.Enter(ListItem)
				stack = append(stack, cs)
				stackNames = append(stackNames, ListItem)
				wrapNames = append(wrapNames, name)
				continue
			}
			t.restore(snap)
			break
		}

		t.lazy = lazy
		t.runFlowChild()
	}

	// Close whatever is still open at EOF: flow constructs waiting on a
	// further line, then the containers and list wrappers around them.
	for len(t.stack) > 0 {
		t.Exit(t.stack[len(t.stack)-1])
	}
}

// runFlowChild tokenizes one flow-tier "turn": everything from the
// current position through the end of the current line (a construct
// that spans lines is left open and picked up again on the next
// turn), delegating byte-for-byte scanning to the
// flow state machine in the same Tokenizer rather than a separate
// child, since flow events interleave with container prefix events at
// exactly the granularity runDocument already manages per line.
func (t *Tokenizer) runFlowChild() {
	t.scratch.DocumentParagraphBefore = false
	res := t.run(StateFlowStart)
	if res.Kind == stepError {
		t.message = res.Err
	}
	if len(t.stack) > 0 && t.stack[len(t.stack)-1] == Paragraph {
		t.scratch.DocumentParagraphBefore = true
	}
}
