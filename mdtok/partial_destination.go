package mdtok

// Destination (spec.md §4.5) occurs in definitions and label-end
// resources: either an enclosed `<...>` form (limited escapes, no raw
// `<`/`>`/line-ending) or a raw form with balanced parens and no
// control/whitespace bytes. Token names are parameterized through
// scratch so both definition and resource callers share one machine.

func init() {
	registerState(StateDestinationStart, destinationStart)
	registerState(StateDestinationEnclosedBefore, destinationEnclosedBefore)
	registerState(StateDestinationEnclosed, destinationEnclosed)
	registerState(StateDestinationEnclosedEscape, destinationEnclosedEscape)
	registerState(StateDestinationRaw, destinationRaw)
	registerState(StateDestinationRawEscape, destinationRawEscape)
}

// destinationTokens names the wrap/literal/raw/string token set a
// caller wants destinationStart to emit.
type destinationTokens struct {
	Wrap          TokenName
	Literal       TokenName
	LiteralMarker TokenName
	Raw           TokenName
	String        TokenName
}

func attemptDestination(t *Tokenizer, toks destinationTokens) bool {
	t.scratch.DestTokWrap = toks.Wrap
	t.scratch.DestTokLiteral = toks.Literal
	t.scratch.DestTokLiteralMarker = toks.LiteralMarker
	t.scratch.DestTokRaw = toks.Raw
	t.scratch.DestTokString = toks.String
	t.scratch.DestBalance = 0
	return t.Attempt(StateDestinationStart)
}

func isAsciiControl(b byte) bool { return b < 0x20 || b == 0x7f }

func destinationStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == ')' || b == ' ' || b == '\t' || b == '\n' || isAsciiControl(b) {
		return StepNok()
	}
	if b == '<' {
		t.Enter(t.scratch.DestTokWrap)
		t.Enter(t.scratch.DestTokLiteral)
		t.Enter(t.scratch.DestTokLiteralMarker)
		t.Consume()
		t.Exit(t.scratch.DestTokLiteralMarker)
		return StepNext(StateDestinationEnclosedBefore)
	}
	t.Enter(t.scratch.DestTokWrap)
	t.Enter(t.scratch.DestTokRaw)
	t.EnterWithContent(t.scratch.DestTokString, ContentString)
	return StepRetry(StateDestinationRaw)
}

func destinationEnclosedBefore(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '>' {
		t.Enter(t.scratch.DestTokLiteralMarker)
		t.Consume()
		t.Exit(t.scratch.DestTokLiteralMarker)
		t.Exit(t.scratch.DestTokLiteral)
		t.Exit(t.scratch.DestTokWrap)
		return StepOk()
	}
	t.EnterWithContent(t.scratch.DestTokString, ContentString)
	return StepRetry(StateDestinationEnclosed)
}

func destinationEnclosed(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == '>' {
		t.Exit(t.scratch.DestTokString)
		return StepRetry(StateDestinationEnclosedBefore)
	}
	if !ok || b == '\n' || b == '<' {
		return StepNok()
	}
	if b == '\\' {
		t.Consume()
		return StepNext(StateDestinationEnclosedEscape)
	}
	t.Consume()
	return StepRetry(StateDestinationEnclosed)
}

func destinationEnclosedEscape(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && (b == '<' || b == '>' || b == '\\') {
		t.Consume()
		return StepNext(StateDestinationEnclosed)
	}
	return StepRetry(StateDestinationEnclosed)
}

func destinationRaw(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	switch {
	case ok && b == '(':
		t.scratch.DestBalance++
		t.Consume()
		return StepRetry(StateDestinationRaw)
	case ok && b == ')' && t.scratch.DestBalance == 0:
		t.Exit(t.scratch.DestTokString)
		t.Exit(t.scratch.DestTokRaw)
		t.Exit(t.scratch.DestTokWrap)
		return StepOk()
	case ok && b == ')':
		t.scratch.DestBalance--
		t.Consume()
		return StepRetry(StateDestinationRaw)
	case !ok || b == '\n' || b == ' ' || b == '\t':
		if t.scratch.DestBalance > 0 {
			return StepNok()
		}
		t.Exit(t.scratch.DestTokString)
		t.Exit(t.scratch.DestTokRaw)
		t.Exit(t.scratch.DestTokWrap)
		return StepOk()
	case isAsciiControl(b):
		return StepNok()
	case b == '\\':
		t.Consume()
		return StepNext(StateDestinationRawEscape)
	default:
		t.Consume()
		return StepRetry(StateDestinationRaw)
	}
}

func destinationRawEscape(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && (b == '(' || b == ')' || b == '\\') {
		t.Consume()
		return StepNext(StateDestinationRaw)
	}
	return StepRetry(StateDestinationRaw)
}
