package mdtok

// HTML (text) (spec.md §4.5, grounded on original_source/src/construct/
// html_text.rs): the inline counterpart of HTML flow, recognizing one
// well-formed comment/instruction/declaration/cdata/tag and consuming
// exactly it. Token output is opaque (HtmlText wrapping one
// HtmlTextData chunk), so -- as with HTML flow -- only the construct's
// extent needs to be determined, not its internal grammar; attribute
// scanning is done with a plain helper (htmlTextScanTag) rather than a
// full per-character state sequence, since nothing downstream consumes
// attribute-level tokens.
//
// A tag may not span more than one blank line; in this tokenizer's
// current per-chunk content re-tokenization (subtokenize splits each
// physical line's text into its own pass) a construct naturally can't
// observe more than one chunk's bytes anyway, so that limit is already
// enforced for free at the cost of not supporting HTML tags that
// literally split across source lines inside a paragraph.

func init() {
	registerState(StateHtmlTextStart, htmlTextStart)
	registerState(StateHtmlTextOpen, htmlTextOpen)
	registerState(StateHtmlTextDeclarationOpen, htmlTextDeclarationOpen)
	registerState(StateHtmlTextTagCloseStart, htmlTextTagCloseStart)
	registerState(StateHtmlTextTagClose, htmlTextFinish)
	registerState(StateHtmlTextTagCloseBetween, htmlTextFinish)
	registerState(StateHtmlTextTagOpen, htmlTextFinish)
	registerState(StateHtmlTextTagOpenBetween, htmlTextFinish)
	registerState(StateHtmlTextTagOpenAttributeName, htmlTextFinish)
	registerState(StateHtmlTextTagOpenAttributeNameAfter, htmlTextFinish)
	registerState(StateHtmlTextTagOpenAttributeValueBefore, htmlTextFinish)
	registerState(StateHtmlTextTagOpenAttributeValueQuoted, htmlTextFinish)
	registerState(StateHtmlTextTagOpenAttributeValueQuotedAfter, htmlTextFinish)
	registerState(StateHtmlTextTagOpenAttributeValueUnquoted, htmlTextFinish)
	registerState(StateHtmlTextCdata, htmlTextFinish)
	registerState(StateHtmlTextCdataClose, htmlTextFinish)
	registerState(StateHtmlTextCdataEnd, htmlTextFinish)
	registerState(StateHtmlTextCommentOpenInside, htmlTextCommentOpenInside)
	registerState(StateHtmlTextComment, htmlTextFinish)
	registerState(StateHtmlTextCommentClose, htmlTextFinish)
	registerState(StateHtmlTextDeclaration, htmlTextFinish)
	registerState(StateHtmlTextInstruction, htmlTextFinish)
	registerState(StateHtmlTextInstructionClose, htmlTextFinish)
	registerState(StateHtmlTextEnd, htmlTextEnd)
}

func htmlTextStart(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); !ok || b != '<' {
		return StepNok()
	}
	t.Enter(HtmlText)
	t.Consume()
	return StepRetry(StateHtmlTextOpen)
}

func htmlTextOpen(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	switch {
	case ok && b == '!':
		t.Consume()
		return StepRetry(StateHtmlTextDeclarationOpen)
	case ok && b == '?':
		return htmlTextScanUntil(t, "?>")
	case ok && b == '/':
		t.Consume()
		return StepRetry(StateHtmlTextTagCloseStart)
	case ok && isAsciiLetter(b):
		return htmlTextScanTag(t)
	default:
		t.Exit(HtmlText)
		return StepNok()
	}
}

func htmlTextDeclarationOpen(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	switch {
	case ok && b == '-':
		t.Consume()
		return StepRetry(StateHtmlTextCommentOpenInside)
	case ok && b == '[':
		return htmlTextScanUntil(t, "]]>")
	case ok && isAsciiLetter(b):
		return htmlTextScanUntil(t, ">")
	default:
		t.Exit(HtmlText)
		return StepNok()
	}
}

func htmlTextCommentOpenInside(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '-' {
		t.Consume()
		return htmlTextScanUntil(t, "-->")
	}
	t.Exit(HtmlText)
	return StepNok()
}

func htmlTextTagCloseStart(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); !ok || !isAsciiLetter(b) {
		t.Exit(HtmlText)
		return StepNok()
	}
	return htmlTextScanUntil(t, ">")
}

// htmlTextScanUntil consumes raw bytes (no embedded blank line allowed)
// up through the first occurrence of marker, emitting them as one
// HtmlTextData chunk.
func htmlTextScanUntil(t *Tokenizer, marker string) StepResult {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	mi := indexOf(bytesSlice[i:], marker)
	if mi < 0 {
		t.Exit(HtmlText)
		return StepNok()
	}
	end := i + mi + len(marker)
	if end > n {
		end = n
	}
	t.EnterWithContent(HtmlTextData, ContentNone)
	for t.cur.index < end {
		t.Consume()
	}
	t.Exit(HtmlTextData)
	t.Exit(HtmlText)
	return StepOk()
}

func indexOf(hay []byte, needle string) int {
	nb := []byte(needle)
	for i := 0; i+len(nb) <= len(hay); i++ {
		match := true
		for j := range nb {
			if hay[i+j] != nb[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// htmlTextScanTag consumes an opening tag name, its attributes, and its
// closing `>` or `/>`, respecting quoted attribute values so a `>`
// inside one doesn't end the tag early.
func htmlTextScanTag(t *Tokenizer) StepResult {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	for i < n && (isAsciiLetter(bytesSlice[i]) || (bytesSlice[i] >= '0' && bytesSlice[i] <= '9') || bytesSlice[i] == '-') {
		i++
	}
	var quote byte
	for i < n {
		b := bytesSlice[i]
		if quote != 0 {
			if b == quote {
				quote = 0
			}
			if b == '\n' {
				t.Exit(HtmlText)
				return StepNok()
			}
			i++
			continue
		}
		if b == '"' || b == '\'' {
			quote = b
			i++
			continue
		}
		if b == '>' {
			i++
			break
		}
		if b == '\n' {
			t.Exit(HtmlText)
			return StepNok()
		}
		i++
	}
	if quote != 0 || i > n {
		t.Exit(HtmlText)
		return StepNok()
	}
	t.EnterWithContent(HtmlTextData, ContentNone)
	for t.cur.index < i {
		t.Consume()
	}
	t.Exit(HtmlTextData)
	t.Exit(HtmlText)
	return StepOk()
}

func htmlTextFinish(t *Tokenizer) StepResult { return StepOk() }
func htmlTextEnd(t *Tokenizer) StepResult    { return StepOk() }
