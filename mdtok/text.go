package mdtok

func init() {
	registerState(StateTextStart, textStart)
}

// textConstructs lists the text tier's recognizers in precedence order
// (spec.md §4.2), grounded on markdown-rs's content/text.rs ordering and
// extended with this spec's label/attention/MDX constructs. GFM autolink
// literal is deliberately absent here: its matches depend on surrounding
// plain-text context (word boundaries) that is easier to recognize once
// the whole Data run is flat, so it runs as resolverGfmAutolinkLiteral
// instead of as an inline attempt (a simplification over upstream, which
// does dispatch it inline).
var textConstructs = []StateName{
	StateCharacterReferenceStart,
	StateCharacterEscapeStart,
	StateHardBreakEscapeStart,
	StateAutolinkStart,
	StateHtmlTextStart,
	StateRawTextStart,
	StateMdxExpressionStart,
	StateMdxJsxStart,
	StateGfmFootnoteCallStart,
	StateLabelStartImageStart,
	StateLabelStartLinkStart,
	StateLabelEndStart,
	StateAttentionStart,
}

func textConstructEnabled(t *Tokenizer, name StateName) bool {
	c := t.parseState.Constructs
	switch name {
	case StateAutolinkStart:
		return c.Autolink
	case StateHtmlTextStart:
		return c.HtmlText
	case StateRawTextStart:
		return c.CodeText || c.MathText
	case StateMdxExpressionStart:
		return c.MdxExpressionText
	case StateMdxJsxStart:
		return c.MdxJsxText
	case StateGfmFootnoteCallStart:
		return c.GfmFootnote
	case StateLabelStartImageStart:
		return c.LabelStartImage
	case StateLabelStartLinkStart:
		return c.LabelStartLink
	case StateLabelEndStart:
		return c.LabelStartImage || c.LabelStartLink
	case StateAttentionStart:
		return c.Attention
	}
	return true
}

// textStart dispatches text-tier constructs, falling back to a run of
// plain Data bytes (one token per run, not per byte) when nothing
// claims the current position. Every byte is re-offered to every
// construct, same as markdown-rs's text.rs: a marker byte that turns out
// not to start anything real (a lone `*`, an unmatched `&`) just joins
// the surrounding data run instead of getting special-cased.
func textStart(t *Tokenizer) StepResult {
	dataOpen := false
	for {
		if _, ok := t.Byte(); !ok {
			if dataOpen {
				t.Exit(Data)
			}
			return StepOk()
		}
		// Close the running data token first so a construct that starts
		// here is a sibling of it rather than nested inside it.
		if dataOpen {
			t.Exit(Data)
		}
		matched := false
		for _, name := range textConstructs {
			if textConstructEnabled(t, name) && t.Attempt(name) {
				matched = true
				break
			}
		}
		if matched {
			dataOpen = false
			continue
		}
		if dataOpen {
			// Nothing started here: reopen the run just closed.
			t.events = t.events[:len(t.events)-1]
			t.stack = append(t.stack, Data)
		} else {
			t.Enter(Data)
			dataOpen = true
		}
		t.Consume()
	}
}
