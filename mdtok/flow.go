package mdtok

func init() {
	registerState(StateFlowStart, flowStart)
}

// flowConstructs lists the flow tier's recognizers in CommonMark's
// precedence order (spec.md §4.2): the first one whose Attempt
// succeeds wins the line. A paragraph is the fallback that always
// succeeds, so it is tried last and is never itself in this list --
// flowStart handles it directly once every other attempt has failed.
var flowConstructs = []StateName{
	StateBlankLineStart,
	StateGfmTaskListItemCheckStart,
	StateFrontmatterStart,
	StateMdxEsmStart,
	StateHeadingAtxStart,
	StateHeadingSetextBefore,
	StateThematicBreakStart,
	StateCodeIndentedStart,
	StateRawFlowStart,
	StateHtmlFlowStart,
	StateMdxJsxStart,
	StateMdxExpressionStart,
	StateGfmTableStart,
	StateGfmFootnoteDefinitionStart,
	StateDefinitionStart,
}

func flowStart(t *Tokenizer) StepResult {
	// A paragraph already open from a previous line continues to
	// absorb lines until something above interrupts it (each construct
	// in flowConstructs is itself responsible for refusing to match
	// when cs.Constructs says it can't interrupt a paragraph, by
	// consulting t.interrupt). A multi-line construct that has already
	// committed (indented code, a fenced code/math block, an HTML flow
	// block) resumes its own continuation state directly instead of
	// being re-discovered by flowConstructs each line.
	if len(t.stack) > 0 {
		switch t.stack[len(t.stack)-1] {
		case Paragraph:
			t.interrupt = true
			for _, name := range flowConstructs {
				if !constructEnabled(t, name) {
					continue
				}
				if name == StateHeadingSetextBefore {
					// The underline closes the paragraph itself.
					if t.Attempt(name) {
						return StepOk()
					}
					continue
				}
				snap := t.snapshot()
				t.Exit(Paragraph)
				if t.Attempt(name) {
					return StepOk()
				}
				t.restore(snap)
			}
			t.interrupt = false
			return StepRetry(StateParagraphStart)
		case CodeIndented:
			return StepRetry(StateCodeIndentedFurtherBegin)
		case CodeFenced, MathFlow:
			return StepRetry(StateRawFlowWithinFence)
		case HtmlFlow:
			return StepRetry(StateHtmlFlowBlankLineBefore)
		case MdxEsm:
			return StepRetry(StateMdxEsmLineStart)
		case GfmTableBody:
			return StepRetry(StateGfmTableBodyRowStart)
		}
	}

	t.interrupt = false
	for _, name := range flowConstructs {
		if constructEnabled(t, name) && t.Attempt(name) {
			return StepOk()
		}
	}
	return StepRetry(StateParagraphStart)
}

// constructEnabled gates a flow construct's ConstructsMask flag before
// even trying it, so a disabled construct never shows up in a trace.
func constructEnabled(t *Tokenizer, name StateName) bool {
	c := t.parseState.Constructs
	switch name {
	case StateGfmTaskListItemCheckStart:
		return c.GfmTaskListItem
	case StateFrontmatterStart:
		return c.Frontmatter
	case StateMdxEsmStart:
		return c.MdxEsm
	case StateHeadingAtxStart:
		return c.HeadingAtx
	case StateHeadingSetextBefore:
		return c.HeadingSetext
	case StateThematicBreakStart:
		return c.ThematicBreak
	case StateCodeIndentedStart:
		return c.CodeIndented
	case StateRawFlowStart:
		return c.CodeFenced || c.MathFlow
	case StateHtmlFlowStart:
		return c.HtmlFlow
	case StateMdxJsxStart:
		return c.MdxJsxFlow
	case StateMdxExpressionStart:
		return c.MdxExpressionFlow
	case StateGfmTableStart:
		return c.GfmTable
	case StateGfmFootnoteDefinitionStart:
		return c.GfmFootnote
	case StateDefinitionStart:
		return c.Definition
	}
	return true
}
