package mdtok

func init() {
	registerState(StateNonLazyContinuationStart, nonLazyContinuationStart)
	registerState(StateNonLazyContinuationAfter, nonLazyContinuationAfter)
}

// attemptNonLazyContinuation succeeds only when the current line ends
// (EOF or line ending) at a position that is NOT a lazy continuation of
// an open container -- used by fenced code and HTML flow to refuse to
// swallow a line that a paragraph would otherwise lazily continue into
// them but that actually belongs to a sibling container.
func attemptNonLazyContinuation(t *Tokenizer) bool {
	return t.Check(StateNonLazyContinuationStart)
}

func nonLazyContinuationStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok {
		return StepOk()
	}
	if b != '\n' {
		return StepNok()
	}
	t.Consume()
	return StepNext(StateNonLazyContinuationAfter)
}

func nonLazyContinuationAfter(t *Tokenizer) StepResult {
	if t.lazy {
		return StepNok()
	}
	return StepOk()
}
