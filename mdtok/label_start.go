package mdtok

// Label start (link/image) (spec.md §4.5, grounded on original_source/
// src/construct/label_start_{link,image}.rs): these are leaf
// constructs, just `[` or `![` markers. The real work -- matching a
// label start to its closing `]`, deciding link vs image, checking
// balance and link-in-link nesting -- happens in label-end and the
// resolverLabel pass, since it needs the whole labelStartStack built up
// across the text run.

func init() {
	registerState(StateLabelStartLinkStart, labelStartLinkStart)
	registerState(StateLabelStartImageStart, labelStartImageStart)
	registerState(StateLabelStartImageOpen, labelStartImageOpen)
}

func labelStartLinkStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != '[' {
		return StepNok()
	}
	start := len(t.events)
	t.Enter(LabelLink)
	t.Enter(LabelMarker)
	t.Consume()
	t.Exit(LabelMarker)
	t.Exit(LabelLink)
	t.labelStartStack = append(t.labelStartStack, labelStart{eventIndex: start})
	t.registerResolver(resolverLabel)
	return StepOk()
}

func labelStartImageStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != '!' {
		return StepNok()
	}
	t.Enter(LabelImage)
	t.Enter(LabelImageMarker)
	t.Consume()
	t.Exit(LabelImageMarker)
	return StepNext(StateLabelStartImageOpen)
}

func labelStartImageOpen(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != '[' {
		return StepNok()
	}
	start := len(t.events) - 3 // Enter LabelImage, Enter+Exit LabelImageMarker already appended
	t.Enter(LabelMarker)
	t.Consume()
	t.Exit(LabelMarker)
	t.Exit(LabelImage)
	t.labelStartStack = append(t.labelStartStack, labelStart{eventIndex: start})
	t.registerResolver(resolverLabel)
	return StepOk()
}
