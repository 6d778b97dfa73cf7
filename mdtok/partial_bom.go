package mdtok

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

func init() {
	registerState(StateBomStart, bomStart)
	registerState(StateBomInside, bomInside)
}

// attemptBom consumes a UTF-8 byte order mark at the very start of the
// document, if present. Only ever worth attempting at Index 0.
func attemptBom(t *Tokenizer) bool {
	t.scratch.Size = 0
	return t.Attempt(StateBomStart)
}

func bomStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != byteOrderMark[0] {
		return StepNok()
	}
	t.Enter(ByteOrderMark)
	return StepRetry(StateBomInside)
}

func bomInside(t *Tokenizer) StepResult {
	if t.scratch.Size >= len(byteOrderMark) {
		t.Exit(ByteOrderMark)
		return StepOk()
	}
	b, ok := t.Byte()
	if !ok || b != byteOrderMark[t.scratch.Size] {
		return StepNok()
	}
	t.scratch.Size++
	t.Consume()
	return StepRetry(StateBomInside)
}
