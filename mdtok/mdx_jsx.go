package mdtok

// MDX JSX (spec.md §7.4, grounded on micromark-extension-mdx-jsx's
// factory-mdx-tag-like): a (possibly self-closing, possibly closing)
// JSX tag `<Name.member:local attr="value" {...spread}>`, shared
// between flow (MdxJsxFlowTag, alone on its own line) and text
// (MdxJsxTextTag, inline) via t.textTier, the same switch mdx_expression.go
// uses. Attribute values reuse the same balanced-brace expression scan
// as a bare MDX expression. Whitespace between tag parts (including a
// line ending, since real-world JSX routinely wraps attributes across
// lines) is skipped raw rather than wrapped in its own token -- this
// construct's output is coarse on purpose, matching the HTML flow/text
// constructs: only the tag's name, attribute names, and attribute
// values are worth naming individually, not every delimiter.

func init() {
	registerState(StateMdxJsxStart, mdxJsxStart)
	registerState(StateMdxJsxTagStart, mdxJsxTagStart)
	registerState(StateMdxJsxTagClosingMarkerAfter, mdxJsxTagClosingMarkerAfter)
	registerState(StateMdxJsxTagNameBefore, mdxJsxTagNameBefore)
	registerState(StateMdxJsxTagNameInside, mdxJsxTagNameInside)
	registerState(StateMdxJsxTagNameAfter, mdxJsxTagNameAfter)
	registerState(StateMdxJsxTagAttributeBefore, mdxJsxTagAttributeBefore)
	registerState(StateMdxJsxTagAttributeNameInside, mdxJsxTagAttributeNameInside)
	registerState(StateMdxJsxTagAttributeNameAfter, mdxJsxTagAttributeNameAfter)
	registerState(StateMdxJsxTagAttributeValueBefore, mdxJsxTagAttributeValueBefore)
	registerState(StateMdxJsxTagAttributeValueQuoted, mdxJsxTagAttributeValueQuoted)
	registerState(StateMdxJsxTagAttributeValueExpression, mdxJsxTagAttributeValueExpression)
	registerState(StateMdxJsxTagEnd, mdxJsxTagEnd)
}

func mdxJsxSkipWs(t *Tokenizer) {
	for {
		b, ok := t.Byte()
		if !ok || (b != ' ' && b != '\t' && b != '\n' && b != '\r') {
			return
		}
		t.Consume()
	}
}

func isMdxJsxNameByte(b byte) bool {
	return isAsciiLetter(b) || (b >= '0' && b <= '9') || b == '_' || b == '$' || b == '-'
}

func mdxJsxStart(t *Tokenizer) StepResult {
	if !t.textTier {
		if t.interrupt {
			return StepNok()
		}
		attemptSpaceOrTabMax(t, 3)
	}
	if b, ok := t.Byte(); !ok || b != '<' {
		return StepNok()
	}
	wrap := MdxJsxTextTag
	if !t.textTier {
		wrap = MdxJsxFlowTag
	}
	t.Enter(wrap)
	t.Enter(MdxJsxTagMarker)
	t.Consume()
	t.Exit(MdxJsxTagMarker)
	t.scratch.MdxTagClosing = false
	t.scratch.MdxTagSelfClosing = false
	return StepRetry(StateMdxJsxTagStart)
}

func mdxJsxTagStart(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '/' {
		t.scratch.MdxTagClosing = true
		t.Enter(MdxJsxTagClosingMarker)
		t.Consume()
		t.Exit(MdxJsxTagClosingMarker)
	}
	return StepRetry(StateMdxJsxTagClosingMarkerAfter)
}

func mdxJsxTagClosingMarkerAfter(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && (isAsciiLetter(b) || b == '_' || b == '$') {
		return StepRetry(StateMdxJsxTagNameBefore)
	}
	if ok && b == '>' {
		return StepRetry(StateMdxJsxTagEnd)
	}
	wrap := t.stack[len(t.stack)-1]
	t.Exit(wrap)
	return StepNok()
}

func mdxJsxTagNameBefore(t *Tokenizer) StepResult {
	t.Enter(MdxJsxTagName)
	t.Enter(MdxJsxTagNamePrimary)
	t.scratch.MdxTagNameSeenDot = false
	t.scratch.MdxTagNameSeenColon = false
	return StepRetry(StateMdxJsxTagNameInside)
}

func mdxJsxTagNameInside(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && isMdxJsxNameByte(b) {
		t.Consume()
		return StepRetry(StateMdxJsxTagNameInside)
	}
	if ok && b == '.' && !t.scratch.MdxTagNameSeenDot && !t.scratch.MdxTagNameSeenColon {
		t.Exit(MdxJsxTagNamePrimary)
		t.scratch.MdxTagNameSeenDot = true
		t.Enter(MdxJsxTagNameMember)
		t.Consume()
		return StepRetry(StateMdxJsxTagNameInside)
	}
	if ok && b == ':' && !t.scratch.MdxTagNameSeenColon {
		if t.scratch.MdxTagNameSeenDot {
			t.Exit(MdxJsxTagNameMember)
		} else {
			t.Exit(MdxJsxTagNamePrimary)
		}
		t.scratch.MdxTagNameSeenColon = true
		t.Enter(MdxJsxTagNameLocal)
		t.Consume()
		return StepRetry(StateMdxJsxTagNameInside)
	}
	switch {
	case t.scratch.MdxTagNameSeenColon:
		t.Exit(MdxJsxTagNameLocal)
	case t.scratch.MdxTagNameSeenDot:
		t.Exit(MdxJsxTagNameMember)
	default:
		t.Exit(MdxJsxTagNamePrimary)
	}
	t.Exit(MdxJsxTagName)
	return StepRetry(StateMdxJsxTagNameAfter)
}

func mdxJsxTagNameAfter(t *Tokenizer) StepResult {
	mdxJsxSkipWs(t)
	b, ok := t.Byte()
	switch {
	case ok && b == '/':
		t.scratch.MdxTagSelfClosing = true
		t.Enter(MdxJsxTagSelfClosingMarker)
		t.Consume()
		t.Exit(MdxJsxTagSelfClosingMarker)
		return StepRetry(StateMdxJsxTagEnd)
	case ok && b == '>':
		return StepRetry(StateMdxJsxTagEnd)
	case ok && (isAsciiLetter(b) || b == '_' || b == '{'):
		return StepRetry(StateMdxJsxTagAttributeBefore)
	default:
		wrap := t.stack[len(t.stack)-1]
		t.Exit(wrap)
		return StepNok()
	}
}

func mdxJsxTagAttributeBefore(t *Tokenizer) StepResult {
	b, _ := t.Byte()
	if b == '{' {
		t.Enter(MdxJsxTagAttribute)
		t.Enter(MdxJsxTagAttributeInitializerMarker)
		t.Consume()
		t.Exit(MdxJsxTagAttributeInitializerMarker)
		end := mdxExpressionFindClose(t)
		if end < 0 {
			attr := t.stack[len(t.stack)-1]
			t.Exit(attr)
			wrap := t.stack[len(t.stack)-1]
			t.Exit(wrap)
			return StepNok()
		}
		if end > t.cur.index {
			t.Enter(MdxJsxTagAttributeValueExpression)
			for t.cur.index < end {
				t.Consume()
			}
			t.Exit(MdxJsxTagAttributeValueExpression)
		}
		t.Enter(MdxJsxTagAttributeInitializerMarker)
		t.Consume()
		t.Exit(MdxJsxTagAttributeInitializerMarker)
		t.Exit(MdxJsxTagAttribute)
		return StepRetry(StateMdxJsxTagNameAfter)
	}
	t.Enter(MdxJsxTagAttribute)
	t.Enter(MdxJsxTagAttributeName)
	t.Enter(MdxJsxTagAttributeNamePrimary)
	t.scratch.MdxTagNameSeenColon = false
	return StepRetry(StateMdxJsxTagAttributeNameInside)
}

func mdxJsxTagAttributeNameInside(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && isMdxJsxNameByte(b) {
		t.Consume()
		return StepRetry(StateMdxJsxTagAttributeNameInside)
	}
	if ok && b == ':' && !t.scratch.MdxTagNameSeenColon {
		t.Exit(MdxJsxTagAttributeNamePrimary)
		t.scratch.MdxTagNameSeenColon = true
		t.Enter(MdxJsxTagAttributeNameLocal)
		t.Consume()
		return StepRetry(StateMdxJsxTagAttributeNameInside)
	}
	if t.scratch.MdxTagNameSeenColon {
		t.Exit(MdxJsxTagAttributeNameLocal)
	} else {
		t.Exit(MdxJsxTagAttributeNamePrimary)
	}
	t.Exit(MdxJsxTagAttributeName)
	return StepRetry(StateMdxJsxTagAttributeNameAfter)
}

func mdxJsxTagAttributeNameAfter(t *Tokenizer) StepResult {
	mdxJsxSkipWs(t)
	if b, ok := t.Byte(); ok && b == '=' {
		t.Enter(MdxJsxTagAttributeInitializerMarker)
		t.Consume()
		t.Exit(MdxJsxTagAttributeInitializerMarker)
		mdxJsxSkipWs(t)
		return StepRetry(StateMdxJsxTagAttributeValueBefore)
	}
	t.Exit(MdxJsxTagAttribute)
	return StepRetry(StateMdxJsxTagNameAfter)
}

func mdxJsxTagAttributeValueBefore(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	switch {
	case ok && (b == '"' || b == '\''):
		t.scratch.MarkerA = b
		t.Enter(MdxJsxTagAttributeValueLiteral)
		t.Consume()
		return StepRetry(StateMdxJsxTagAttributeValueQuoted)
	case ok && b == '{':
		return StepRetry(StateMdxJsxTagAttributeValueExpression)
	default:
		attr := t.stack[len(t.stack)-1]
		t.Exit(attr)
		wrap := t.stack[len(t.stack)-1]
		t.Exit(wrap)
		return StepNok()
	}
}

func mdxJsxTagAttributeValueQuoted(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok {
		return StepNok()
	}
	if b == t.scratch.MarkerA {
		t.Consume()
		t.Exit(MdxJsxTagAttributeValueLiteral)
		t.Exit(MdxJsxTagAttribute)
		return StepRetry(StateMdxJsxTagNameAfter)
	}
	t.Consume()
	return StepRetry(StateMdxJsxTagAttributeValueQuoted)
}

func mdxJsxTagAttributeValueExpression(t *Tokenizer) StepResult {
	t.Enter(MdxJsxTagAttributeInitializerMarker)
	t.Consume()
	t.Exit(MdxJsxTagAttributeInitializerMarker)
	end := mdxExpressionFindClose(t)
	if end < 0 {
		attr := t.stack[len(t.stack)-1]
		t.Exit(attr)
		wrap := t.stack[len(t.stack)-1]
		t.Exit(wrap)
		return StepNok()
	}
	if end > t.cur.index {
		t.Enter(MdxJsxTagAttributeValueExpression)
		for t.cur.index < end {
			t.Consume()
		}
		t.Exit(MdxJsxTagAttributeValueExpression)
	}
	t.Enter(MdxJsxTagAttributeInitializerMarker)
	t.Consume()
	t.Exit(MdxJsxTagAttributeInitializerMarker)
	t.Exit(MdxJsxTagAttribute)
	return StepRetry(StateMdxJsxTagNameAfter)
}

func mdxJsxTagEnd(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b != '>' {
		wrap := t.stack[len(t.stack)-1]
		t.Exit(wrap)
		return StepNok()
	}
	t.Enter(MdxJsxTagMarker)
	t.Consume()
	t.Exit(MdxJsxTagMarker)
	wrap := t.stack[len(t.stack)-1]
	t.Exit(wrap)
	if t.textTier {
		return StepOk()
	}
	attemptSpaceOrTab(t)
	b, ok = t.Byte()
	if ok && b != '\n' {
		return StepNok()
	}
	if ok {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	return StepOk()
}
