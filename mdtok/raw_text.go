package mdtok

// Raw text (spec.md §4.5, grounded on original_source/src/construct/
// code_text.rs): code (text) and math (text) share one "sequence, data,
// matching close sequence" machine, keyed off the marker byte (`` ` ``
// or `$`). A sequence is greedy: it must not be preceded or followed by
// more of the same marker, and the closing sequence's length must equal
// the opening one or the whole run is reinterpreted as data.

type rawTextTokens struct {
	Wrap       TokenName
	Sequence   TokenName
	Data       TokenName
	LineEnding TokenName
}

func rawTextTokensFor(delim byte) rawTextTokens {
	if delim == '`' {
		return rawTextTokens{CodeText, CodeTextSequence, CodeTextData, CodeTextLineEnding}
	}
	return rawTextTokens{MathText, MathTextSequence, MathTextData, LineEnding}
}

func init() {
	registerState(StateRawTextStart, rawTextStart)
	registerState(StateRawTextSequenceOpen, rawTextSequenceOpen)
	registerState(StateRawTextBetween, rawTextBetween)
	registerState(StateRawTextData, rawTextData)
	registerState(StateRawTextSequenceClose, rawTextSequenceClose)
}

func lastEventNameIs(t *Tokenizer, name TokenName) bool {
	n := len(t.events)
	return n > 0 && t.events[n-1].Name == name
}

func rawTextStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok {
		return StepNok()
	}
	c := t.parseState.Constructs
	var delim byte
	switch {
	case b == '`' && c.CodeText:
		delim = '`'
	case b == '$' && c.MathText:
		delim = '$'
	default:
		return StepNok()
	}
	if t.previousByte == delim && !lastEventNameIs(t, CharacterEscapeValue) {
		return StepNok()
	}
	toks := rawTextTokensFor(delim)
	t.scratch.MarkerA = delim
	t.Enter(toks.Wrap)
	t.Enter(toks.Sequence)
	t.scratch.Size = 0
	return StepRetry(StateRawTextSequenceOpen)
}

func rawTextSequenceOpen(t *Tokenizer) StepResult {
	toks := rawTextTokensFor(t.scratch.MarkerA)
	if b, ok := t.Byte(); ok && b == t.scratch.MarkerA {
		t.scratch.Size++
		t.Consume()
		return StepRetry(StateRawTextSequenceOpen)
	}
	if t.scratch.MarkerA == '$' && !t.parseState.Options.MathTextSingleDollar && t.scratch.Size < 2 {
		return StepNok()
	}
	t.Exit(toks.Sequence)
	return StepRetry(StateRawTextBetween)
}

func rawTextBetween(t *Tokenizer) StepResult {
	toks := rawTextTokensFor(t.scratch.MarkerA)
	b, ok := t.Byte()
	if !ok {
		t.scratch.Size = 0
		return StepNok()
	}
	if b == '\n' {
		t.Enter(toks.LineEnding)
		t.Consume()
		t.Exit(toks.LineEnding)
		return StepNext(StateRawTextBetween)
	}
	if b == t.scratch.MarkerA {
		t.Enter(toks.Sequence)
		return StepRetry(StateRawTextSequenceClose)
	}
	t.Enter(toks.Data)
	return StepRetry(StateRawTextData)
}

func rawTextData(t *Tokenizer) StepResult {
	toks := rawTextTokensFor(t.scratch.MarkerA)
	b, ok := t.Byte()
	if !ok || b == '\n' || b == t.scratch.MarkerA {
		t.Exit(toks.Data)
		return StepRetry(StateRawTextBetween)
	}
	t.Consume()
	return StepNext(StateRawTextData)
}

func rawTextSequenceClose(t *Tokenizer) StepResult {
	toks := rawTextTokensFor(t.scratch.MarkerA)
	if b, ok := t.Byte(); ok && b == t.scratch.MarkerA {
		t.scratch.SizeB++
		t.Consume()
		return StepNext(StateRawTextSequenceClose)
	}
	if t.scratch.Size == t.scratch.SizeB {
		t.Exit(toks.Sequence)
		t.Exit(toks.Wrap)
		t.scratch.Size = 0
		t.scratch.SizeB = 0
		return StepOk()
	}
	n := len(t.events)
	t.Exit(toks.Sequence)
	t.events[n-1].Name = toks.Data
	t.events[n].Name = toks.Data
	t.scratch.SizeB = 0
	return StepRetry(StateRawTextBetween)
}
