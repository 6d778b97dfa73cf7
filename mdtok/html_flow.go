package mdtok

import "bytes"

// HTML (flow) (spec.md §4.5, grounded on original_source/src/construct/
// html_flow.rs): one of CommonMark's 7 basic HTML block productions,
// recognized by its opening line and then absorbing lines until its
// own closing condition -- not a nested tag/attribute grammar, since
// flow HTML's token output is opaque (HtmlFlow wrapping HtmlFlowData
// chunks): only the *extent* of the block needs parsing, not its
// internal structure.
//
// Kinds 1-5 (raw text elements, comment, instruction, declaration,
// cdata) end when their closing sequence is found anywhere on a line;
// blank lines don't end them. Kinds 6-7 (a recognized block tag name,
// or any complete tag alone on a line) end at the first blank line.
// Kind 7 additionally may never interrupt an open paragraph.

var htmlFlowBasicTagNames = map[string]bool{
	"address": true, "article": true, "aside": true, "base": true,
	"basefont": true, "blockquote": true, "body": true, "caption": true,
	"center": true, "col": true, "colgroup": true, "dd": true,
	"details": true, "dialog": true, "dir": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hr": true, "html": true, "iframe": true,
	"legend": true, "li": true, "link": true, "main": true, "menu": true,
	"menuitem": true, "nav": true, "noframes": true, "object": true,
	"ol": true, "optgroup": true, "option": true, "p": true, "param": true,
	"section": true, "summary": true, "table": true, "tbody": true,
	"td": true, "tfoot": true, "th": true, "thead": true, "title": true,
	"tr": true, "track": true, "ul": true,
}

var htmlFlowRawTagNames = map[string]bool{
	"script": true, "pre": true, "style": true, "textarea": true,
}

func init() {
	registerState(StateHtmlFlowStart, htmlFlowStart)
	registerState(StateHtmlFlowBefore, htmlFlowBefore)
	registerState(StateHtmlFlowDeclarationOpen, htmlFlowDeclarationOpen)
	registerState(StateHtmlFlowCommentOpenInside, htmlFlowCommentOpenInside)
	registerState(StateHtmlFlowCdataOpenInside, htmlFlowCdataOpenInside)
	registerState(StateHtmlFlowTagCloseStart, htmlFlowTagCloseStart)
	registerState(StateHtmlFlowTagName, htmlFlowTagName)
	registerState(StateHtmlFlowBasicSelfClosing, htmlFlowBasicSelfClosing)
	registerState(StateHtmlFlowCompleteClosingTagAfter, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowCompleteEnd, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowCompleteAttributeNameBefore, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowCompleteAttributeName, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowCompleteAttributeNameAfter, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowCompleteAttributeValueBefore, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowCompleteAttributeValueQuoted, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowCompleteAttributeValueUnquoted, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowCompleteAfterAttributeValueQuoted, htmlFlowCompleteEnd)
	registerState(StateHtmlFlowContinuation, htmlFlowContinuation)
	registerState(StateHtmlFlowContinuationDeclarationInside, htmlFlowContinuation)
	registerState(StateHtmlFlowContinuationAfter, htmlFlowContinuation)
	registerState(StateHtmlFlowContinuationStart, htmlFlowContinuation)
	registerState(StateHtmlFlowContinuationComment, htmlFlowContinuation)
	registerState(StateHtmlFlowContinuationRawTagOpen, htmlFlowContinuation)
	registerState(StateHtmlFlowContinuationCharacterDataInside, htmlFlowContinuation)
	registerState(StateHtmlFlowContinuationClose, htmlFlowContinuation)
	registerState(StateHtmlFlowBlankLineBefore, htmlFlowBlankLineBefore)
}

func isAsciiLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func htmlFlowStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	if b, ok := t.Byte(); !ok || b != '<' {
		return StepNok()
	}
	t.Enter(HtmlFlow)
	t.Consume()
	return StepRetry(StateHtmlFlowBefore)
}

func htmlFlowBefore(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	switch {
	case ok && b == '!':
		t.Consume()
		return StepRetry(StateHtmlFlowDeclarationOpen)
	case ok && b == '?':
		t.scratch.HtmlFlowKind = 3
		t.Consume()
		return StepRetry(StateHtmlFlowContinuation)
	case ok && b == '/':
		t.Consume()
		return StepRetry(StateHtmlFlowTagCloseStart)
	case ok && isAsciiLetter(b):
		t.scratch.Size = 0
		return StepRetry(StateHtmlFlowTagName)
	default:
		t.Exit(HtmlFlow)
		return StepNok()
	}
}

func htmlFlowDeclarationOpen(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	switch {
	case ok && b == '-':
		t.Consume()
		return StepRetry(StateHtmlFlowCommentOpenInside)
	case ok && b == '[':
		t.Consume()
		return StepRetry(StateHtmlFlowCdataOpenInside)
	case ok && isAsciiLetter(b):
		t.scratch.HtmlFlowKind = 4
		t.Consume()
		return StepRetry(StateHtmlFlowContinuation)
	default:
		t.Exit(HtmlFlow)
		return StepNok()
	}
}

func htmlFlowCommentOpenInside(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); ok && b == '-' {
		t.scratch.HtmlFlowKind = 2
		t.Consume()
		return StepRetry(StateHtmlFlowContinuation)
	}
	t.Exit(HtmlFlow)
	return StepNok()
}

func htmlFlowCdataOpenInside(t *Tokenizer) StepResult {
	want := "CDATA["
	bytes := t.cur.bytes
	i := t.cur.index
	if i+len(want) <= len(bytes) && string(bytes[i:i+len(want)]) == want {
		for range want {
			t.Consume()
		}
		t.scratch.HtmlFlowKind = 5
		return StepRetry(StateHtmlFlowContinuation)
	}
	t.Exit(HtmlFlow)
	return StepNok()
}

func htmlFlowTagCloseStart(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); !ok || !isAsciiLetter(b) {
		t.Exit(HtmlFlow)
		return StepNok()
	}
	t.scratch.Size = 0
	return StepRetry(StateHtmlFlowTagName)
}

// htmlFlowTagName consumes an ASCII tag name (read as raw bytes since
// only its identity -- not its structure -- matters) then classifies
// the block's kind from it.
func htmlFlowTagName(t *Tokenizer) StepResult {
	start := t.cur.index
	bytesSlice := t.cur.bytes
	i := start
	for i < len(bytesSlice) && (isAsciiLetter(bytesSlice[i]) || (bytesSlice[i] >= '0' && bytesSlice[i] <= '9') || bytesSlice[i] == '-') {
		i++
	}
	name := string(bytesSlice[start:i])
	for j := start; j < i; j++ {
		t.Consume()
	}
	lower := lowerASCII(name)
	switch {
	case htmlFlowRawTagNames[lower]:
		t.scratch.HtmlFlowKind = 1
	case htmlFlowBasicTagNames[lower]:
		t.scratch.HtmlFlowKind = 6
	default:
		t.scratch.HtmlFlowKind = 7
	}
	b, ok := t.Byte()
	if t.scratch.HtmlFlowKind == 7 {
		if !ok || b == ' ' || b == '\t' || b == '\n' || b == '>' {
			if t.interrupt {
				t.Exit(HtmlFlow)
				return StepNok()
			}
			return StepRetry(StateHtmlFlowBasicSelfClosing)
		}
		t.Exit(HtmlFlow)
		return StepNok()
	}
	return StepRetry(StateHtmlFlowContinuation)
}

func lowerASCII(s string) string {
	bs := []byte(s)
	for i, b := range bs {
		if b >= 'A' && b <= 'Z' {
			bs[i] = b + ('a' - 'A')
		}
	}
	return string(bs)
}

// htmlFlowBasicSelfClosing consumes the remainder of kind-6/7's opening
// tag line (attributes aren't validated, matching the coarse flow
// token output) up to its line ending or EOF.
func htmlFlowBasicSelfClosing(t *Tokenizer) StepResult {
	for {
		b, ok := t.Byte()
		if !ok || b == '\n' {
			break
		}
		t.Consume()
	}
	return StepRetry(StateHtmlFlowContinuation)
}

// htmlFlowContinuation drives the rest of the block, one line at a
// time: first the remainder of the opening line (chunked as
// HtmlFlowData), then, once that line ends, each subsequent line is
// its own turn via flowStart's stack-top dispatch.
func htmlFlowContinuation(t *Tokenizer) StepResult {
	lineStart := t.cur.index
	for {
		b, ok := t.Byte()
		if !ok {
			htmlFlowEmitLine(t, lineStart, t.cur.index)
			t.Exit(HtmlFlow)
			return StepOk()
		}
		if b == '\n' {
			break
		}
		t.Consume()
	}
	end := t.cur.index
	closed := htmlFlowClosesOnLine(t, t.cur.bytes[lineStart:end])
	htmlFlowEmitLine(t, lineStart, end)
	t.Enter(LineEnding)
	t.Consume()
	t.Exit(LineEnding)
	if closed {
		t.Exit(HtmlFlow)
	}
	return StepOk()
}

func htmlFlowEmitLine(t *Tokenizer, start, end int) {
	if end <= start {
		return
	}
	t.EnterWithContent(HtmlFlowData, ContentNone)
	t.events[len(t.events)-1].Point = pointBehind(t, start)
	t.Exit(HtmlFlowData)
}

// pointBehind is a best-effort Point for a byte index already behind the
// cursor on the current line (used only to backdate HtmlFlowData's
// Enter to where its content actually started).
func pointBehind(t *Tokenizer, index int) Point {
	p := t.Point()
	p.Column -= (p.Index - index)
	p.Index = index
	return p
}

func htmlFlowClosesOnLine(t *Tokenizer, line []byte) bool {
	switch t.scratch.HtmlFlowKind {
	case 1:
		for tag := range htmlFlowRawTagNames {
			if bytes.Contains(bytesToLowerASCII(line), []byte("</"+tag)) {
				return true
			}
		}
		return false
	case 2:
		return bytes.Contains(line, []byte("-->"))
	case 3:
		return bytes.Contains(line, []byte("?>"))
	case 4:
		return bytes.Contains(line, []byte(">"))
	case 5:
		return bytes.Contains(line, []byte("]]>"))
	default:
		return false
	}
}

func bytesToLowerASCII(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

// htmlFlowBlankLineBefore is every subsequent line's resume point
// (flowStart dispatches here while HtmlFlow is open): for kinds 6/7 a
// blank line ends the block instead of continuing it; other kinds
// only end via their own closing sequence, found inside
// htmlFlowContinuation.
func htmlFlowBlankLineBefore(t *Tokenizer) StepResult {
	if (t.scratch.HtmlFlowKind == 6 || t.scratch.HtmlFlowKind == 7) && t.Check(StateBlankLineStart) {
		t.Exit(HtmlFlow)
		return StepRetry(StateFlowStart)
	}
	return StepRetry(StateHtmlFlowContinuation)
}

func htmlFlowCompleteEnd(t *Tokenizer) StepResult {
	return StepRetry(StateHtmlFlowContinuation)
}
