package mdtok

func init() {
	registerState(StateStringStart, stringStart)
}

// stringConstructs is the string content type's recognizer set (spec.md
// §4.2): character escapes and references only, used inside destination/
// label/title chunks where no other inline construct applies.
var stringConstructs = []StateName{
	StateCharacterReferenceStart,
	StateCharacterEscapeStart,
}

func stringStart(t *Tokenizer) StepResult {
	dataOpen := false
	for {
		if _, ok := t.Byte(); !ok {
			if dataOpen {
				t.Exit(Data)
			}
			return StepOk()
		}
		matched := false
		for _, name := range stringConstructs {
			if t.Attempt(name) {
				matched = true
				break
			}
		}
		if matched {
			if dataOpen {
				t.Exit(Data)
				dataOpen = false
			}
			continue
		}
		if !dataOpen {
			t.Enter(Data)
			dataOpen = true
		}
		t.Consume()
	}
}
