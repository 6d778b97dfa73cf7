package mdtok

// Autolink (spec.md §4.5, grounded on original_source/src/construct/
// autolink.rs): `<` (url | email) `>`. Scheme and email forms share their
// first few bytes, so one machine handles both, committing to whichever
// once a `:` or `@` disambiguates it.

const autolinkSchemeSizeMax = 32
const autolinkDomainSizeMax = 63

func init() {
	registerState(StateAutolinkStart, autolinkStart)
	registerState(StateAutolinkOpen, autolinkOpen)
	registerState(StateAutolinkSchemeOrEmailAtext, autolinkSchemeOrEmailAtext)
	registerState(StateAutolinkSchemeInsideOrEmailAtext, autolinkSchemeInsideOrEmailAtext)
	registerState(StateAutolinkUrlInside, autolinkUrlInside)
	registerState(StateAutolinkEmailAtSignOrDot, autolinkEmailAtSignOrDot)
	registerState(StateAutolinkEmailAtext, autolinkEmailAtext)
	registerState(StateAutolinkEmailValue, autolinkEmailValue)
	registerState(StateAutolinkEmailLabel, autolinkEmailLabel)
}

func isAsciiAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAsciiAlnum(b byte) bool { return isAsciiAlpha(b) || (b >= '0' && b <= '9') }

func isAsciiAtext(b byte) bool {
	switch {
	case b >= '#' && b <= '\'':
		return true
	case b == '*':
		return true
	case b >= '-' && b <= '9': // '-' '.' '/' '0'-'9'
		return true
	case b == '=' || b == '?':
		return true
	case b >= '^' && b <= '~':
		return true
	case isAsciiAlpha(b):
		return true
	}
	return false
}

func autolinkStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != '<' {
		return StepNok()
	}
	t.Enter(Autolink)
	t.Enter(AutolinkMarker)
	t.Consume()
	t.Exit(AutolinkMarker)
	t.Enter(AutolinkProtocol)
	return StepNext(StateAutolinkOpen)
}

func autolinkOpen(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok {
		return StepNok()
	}
	if isAsciiAlpha(b) {
		t.Consume()
		return StepNext(StateAutolinkSchemeOrEmailAtext)
	}
	if isAsciiAtext(b) {
		return StepRetry(StateAutolinkEmailAtext)
	}
	return StepNok()
}

func autolinkSchemeOrEmailAtext(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && (b == '+' || b == '-' || b == '.' || isAsciiAlnum(b)) {
		t.scratch.AutolinkSize = 1
		return StepRetry(StateAutolinkSchemeInsideOrEmailAtext)
	}
	return StepRetry(StateAutolinkEmailAtext)
}

func autolinkSchemeInsideOrEmailAtext(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == ':' {
		t.Consume()
		return StepNext(StateAutolinkUrlInside)
	}
	if ok && (b == '+' || b == '-' || b == '.' || isAsciiAlnum(b)) && t.scratch.AutolinkSize < autolinkSchemeSizeMax {
		t.scratch.AutolinkSize++
		t.Consume()
		return StepRetry(StateAutolinkSchemeInsideOrEmailAtext)
	}
	return StepRetry(StateAutolinkEmailAtext)
}

func autolinkUrlInside(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == '>' {
		t.Exit(AutolinkProtocol)
		t.Enter(AutolinkMarker)
		t.Consume()
		t.Exit(AutolinkMarker)
		t.Exit(Autolink)
		return StepOk()
	}
	if !ok || b == ' ' || isAsciiControl(b) {
		return StepNok()
	}
	t.Consume()
	return StepRetry(StateAutolinkUrlInside)
}

func autolinkEmailAtext(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == '@' {
		t.Consume()
		t.scratch.AutolinkSize = 0
		return StepNext(StateAutolinkEmailAtSignOrDot)
	}
	if ok && isAsciiAtext(b) {
		t.Consume()
		return StepRetry(StateAutolinkEmailAtext)
	}
	return StepNok()
}

func autolinkEmailAtSignOrDot(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && isAsciiAlnum(b) {
		return StepRetry(StateAutolinkEmailValue)
	}
	return StepNok()
}

func autolinkEmailLabel(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == '.' {
		t.Consume()
		t.scratch.AutolinkSize = 0
		return StepNext(StateAutolinkEmailAtSignOrDot)
	}
	if ok && b == '>' {
		n := len(t.events)
		t.Exit(AutolinkProtocol)
		t.events[n-1].Name = AutolinkEmail
		t.events[n].Name = AutolinkEmail
		t.Enter(AutolinkMarker)
		t.Consume()
		t.Exit(AutolinkMarker)
		t.Exit(Autolink)
		return StepOk()
	}
	return StepRetry(StateAutolinkEmailValue)
}

func autolinkEmailValue(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == '-' && t.scratch.AutolinkSize < autolinkDomainSizeMax {
		t.scratch.AutolinkSize++
		t.Consume()
		return StepRetry(StateAutolinkEmailValue)
	}
	if ok && isAsciiAlnum(b) && t.scratch.AutolinkSize < autolinkDomainSizeMax {
		t.scratch.AutolinkSize++
		t.Consume()
		return StepRetry(StateAutolinkEmailLabel)
	}
	return StepNok()
}
