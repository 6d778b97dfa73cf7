package mdtok

// StateName is a closed enumeration of step-function names. Construct
// files populate stateTable[name] from their own init(), so the
// dispatch table is assembled once at package load and never touched
// again: dispatch(name) is a plain array index, not a map lookup or a
// virtual call through a boxed closure.
type StateName int

// stepKind is the tag of a StepResult.
type stepKind int

// stepKind values.
const (
	stepOk stepKind = iota
	stepNok
	stepNext
	stepRetry
	stepError
)

// StepResult is what a step function returns: success, failure, "go on
// to this state having consumed the current byte", "go on to this state
// without consuming" (reprocess the current byte), or a fatal error.
type StepResult struct {
	Kind stepKind
	Name StateName
	Err  *Message
}

// StepOk reports that the current attempt succeeded at the current
// index.
func StepOk() StepResult { return StepResult{Kind: stepOk} }

// StepNok reports that the current attempt failed; the caller decides
// the fallback.
func StepNok() StepResult { return StepResult{Kind: stepNok} }

// StepNext continues with the named state after consuming the current
// byte.
func StepNext(name StateName) StepResult { return StepResult{Kind: stepNext, Name: name} }

// StepRetry continues with the named state without consuming: the
// current byte is reprocessed.
func StepRetry(name StateName) StepResult { return StepResult{Kind: stepRetry, Name: name} }

// StepErr reports a fatal error (used by MDX when a JS expression is
// unterminated at EOF).
func StepErr(msg *Message) StepResult { return StepResult{Kind: stepError, Err: msg} }

func (r StepResult) ok() bool    { return r.Kind == stepOk }
func (r StepResult) terminal() bool {
	return r.Kind == stepOk || r.Kind == stepNok || r.Kind == stepError
}

type stepFunc func(t *Tokenizer) StepResult

// State names. Each construct file registers its own step functions
// against a contiguous block of these in its init(). The zero value,
// StateNone, must never be dispatched.
const (
	StateNone StateName = iota

	// flow tier
	StateFlowStart

	// text/string tiers (the content tier is elided into flow: a chunk's
	// Link.Content says which of these two a subtokenize pass starts)
	StateTextStart
	StateStringStart

	// BOM partial
	StateBomStart
	StateBomInside

	// space-or-tab partials
	StateSpaceOrTabStart
	StateSpaceOrTabInside
	StateSpaceOrTabEolStart
	StateSpaceOrTabEolAfterFirst
	StateSpaceOrTabEolAfterEol

	// character escape / reference
	StateCharacterEscapeStart
	StateCharacterEscapeInside
	StateCharacterReferenceStart
	StateCharacterReferenceOpen
	StateCharacterReferenceNumeric
	StateCharacterReferenceValue

	// destination / label / title partials
	StateDestinationStart
	StateDestinationEnclosedBefore
	StateDestinationEnclosed
	StateDestinationEnclosedEscape
	StateDestinationRaw
	StateDestinationRawEscape
	StateLabelStart
	StateLabelAtBreak
	StateLabelEscape
	StateLabelInside
	StateTitleStart
	StateTitleBegin
	StateTitleAfterEol
	StateTitleAtBreak
	StateTitleEscape
	StateTitleInside

	// non-lazy continuation
	StateNonLazyContinuationStart
	StateNonLazyContinuationAfter

	// blank line
	StateBlankLineStart
	StateBlankLineAfter

	// thematic break
	StateThematicBreakStart
	StateThematicBreakBefore
	StateThematicBreakSequence
	StateThematicBreakAtBreak

	// heading atx
	StateHeadingAtxStart
	StateHeadingAtxBefore
	StateHeadingAtxSequenceOpen
	StateHeadingAtxAtBreak
	StateHeadingAtxSequenceFurther
	StateHeadingAtxData

	// heading setext
	StateHeadingSetextBefore
	StateHeadingSetextInside
	StateHeadingSetextAfter

	// code indented
	StateCodeIndentedStart
	StateCodeIndentedAtBreak
	StateCodeIndentedInside
	StateCodeIndentedFurtherStart
	StateCodeIndentedFurtherEnd
	StateCodeIndentedFurtherBegin
	StateCodeIndentedFurtherAfter

	// raw flow (fenced code / math flow)
	StateRawFlowStart
	StateRawFlowBeforeSequenceOpen
	StateRawFlowSequenceOpen
	StateRawFlowInfoBefore
	StateRawFlowInfo
	StateRawFlowMetaBefore
	StateRawFlowMeta
	StateRawFlowAtNonLazyBreak
	StateRawFlowCloseStart
	StateRawFlowBeforeSequenceClose
	StateRawFlowSequenceClose
	StateRawFlowAfterSequenceClose
	StateRawFlowWithinFence
	StateRawFlowChunkStart
	StateRawFlowChunkInside

	// raw text (code text / math text)
	StateRawTextStart
	StateRawTextSequenceOpen
	StateRawTextBetween
	StateRawTextData
	StateRawTextSequenceClose

	// html flow
	StateHtmlFlowStart
	StateHtmlFlowBefore
	StateHtmlFlowDeclarationOpen
	StateHtmlFlowCommentOpenInside
	StateHtmlFlowCdataOpenInside
	StateHtmlFlowTagCloseStart
	StateHtmlFlowTagName
	StateHtmlFlowBasicSelfClosing
	StateHtmlFlowCompleteClosingTagAfter
	StateHtmlFlowCompleteEnd
	StateHtmlFlowCompleteAttributeNameBefore
	StateHtmlFlowCompleteAttributeName
	StateHtmlFlowCompleteAttributeNameAfter
	StateHtmlFlowCompleteAttributeValueBefore
	StateHtmlFlowCompleteAttributeValueQuoted
	StateHtmlFlowCompleteAttributeValueUnquoted
	StateHtmlFlowCompleteAfterAttributeValueQuoted
	StateHtmlFlowContinuation
	StateHtmlFlowContinuationDeclarationInside
	StateHtmlFlowContinuationAfter
	StateHtmlFlowContinuationStart
	StateHtmlFlowContinuationComment
	StateHtmlFlowContinuationRawTagOpen
	StateHtmlFlowContinuationCharacterDataInside
	StateHtmlFlowContinuationClose
	StateHtmlFlowBlankLineBefore

	// html text
	StateHtmlTextStart
	StateHtmlTextOpen
	StateHtmlTextDeclarationOpen
	StateHtmlTextTagCloseStart
	StateHtmlTextTagClose
	StateHtmlTextTagCloseBetween
	StateHtmlTextTagOpen
	StateHtmlTextTagOpenBetween
	StateHtmlTextTagOpenAttributeName
	StateHtmlTextTagOpenAttributeNameAfter
	StateHtmlTextTagOpenAttributeValueBefore
	StateHtmlTextTagOpenAttributeValueQuoted
	StateHtmlTextTagOpenAttributeValueQuotedAfter
	StateHtmlTextTagOpenAttributeValueUnquoted
	StateHtmlTextCdata
	StateHtmlTextCdataClose
	StateHtmlTextCdataEnd
	StateHtmlTextCommentOpenInside
	StateHtmlTextComment
	StateHtmlTextCommentClose
	StateHtmlTextDeclaration
	StateHtmlTextInstruction
	StateHtmlTextInstructionClose
	StateHtmlTextEnd

	// autolink
	StateAutolinkStart
	StateAutolinkOpen
	StateAutolinkSchemeOrEmailAtext
	StateAutolinkSchemeInsideOrEmailAtext
	StateAutolinkUrlInside
	StateAutolinkEmailAtSignOrDot
	StateAutolinkEmailAtext
	StateAutolinkEmailValue
	StateAutolinkEmailLabel

	// hard break escape
	StateHardBreakEscapeStart
	StateHardBreakEscapeAfter

	// definition
	StateDefinitionStart
	StateDefinitionBefore
	StateDefinitionLabelAfter
	StateDefinitionMarkerAfter
	StateDefinitionDestinationBefore
	StateDefinitionDestinationAfter
	StateDefinitionDestinationMissing
	StateDefinitionTitleBefore
	StateDefinitionAfter
	StateDefinitionTitleBeforeMarker
	StateDefinitionTitleAfter
	StateDefinitionTitleAfterOptionalWhitespace

	// paragraph
	StateParagraphStart
	StateParagraphInside

	// label start / end
	StateLabelStartLinkStart
	StateLabelStartImageStart
	StateLabelStartImageOpen
	StateLabelEndStart
	StateLabelEndAfter
	StateLabelEndResourceStart
	StateLabelEndResourceBefore
	StateLabelEndResourceOpen
	StateLabelEndResourceDestinationAfter
	StateLabelEndResourceBetween
	StateLabelEndResourceTitleAfter
	StateLabelEndResourceEnd
	StateLabelEndReferenceFull
	StateLabelEndReferenceFullAfter
	StateLabelEndReferenceCollapsed
	StateLabelEndReferenceCollapsedOpen

	// attention
	StateAttentionStart
	StateAttentionInside

	// frontmatter
	StateFrontmatterStart
	StateFrontmatterSequenceOpen
	StateFrontmatterAtBreak
	StateFrontmatterInside
	StateFrontmatterSequenceClose

	// mdx esm
	StateMdxEsmStart
	StateMdxEsmInside
	StateMdxEsmLineStart

	// mdx expression (flow + text share the core brace machine)
	StateMdxExpressionStart
	StateMdxExpressionBefore
	StateMdxExpressionInside

	// mdx jsx (flow + text share the core tag machine)
	StateMdxJsxStart
	StateMdxJsxTagStart
	StateMdxJsxTagClosingMarkerAfter
	StateMdxJsxTagNameBefore
	StateMdxJsxTagNameInside
	StateMdxJsxTagNameAfter
	StateMdxJsxTagAttributeBefore
	StateMdxJsxTagAttributeNameInside
	StateMdxJsxTagAttributeNameAfter
	StateMdxJsxTagAttributeValueBefore
	StateMdxJsxTagAttributeValueQuoted
	StateMdxJsxTagAttributeValueExpression
	StateMdxJsxTagEnd

	// gfm autolink literal
	StateGfmAutolinkLiteralWwwStart
	StateGfmAutolinkLiteralHttpStart
	StateGfmAutolinkLiteralEmailAtext

	// gfm footnote
	StateGfmFootnoteCallStart
	StateGfmFootnoteCallInside
	StateGfmFootnoteDefinitionStart
	StateGfmFootnoteDefinitionLabelAfter

	// gfm task list item
	StateGfmTaskListItemCheckStart
	StateGfmTaskListItemCheckInside

	// gfm table
	StateGfmTableStart
	StateGfmTableHeadRowBefore
	StateGfmTableHeadRowStart
	StateGfmTableHeadRowBreak
	StateGfmTableHeadDelimiterStart
	StateGfmTableHeadDelimiterBefore
	StateGfmTableHeadDelimiterValueBefore
	StateGfmTableHeadDelimiterLeftAlignmentAfter
	StateGfmTableHeadDelimiterFiller
	StateGfmTableHeadDelimiterRightAlignmentAfter
	StateGfmTableHeadDelimiterCellAfter
	StateGfmTableHeadDelimiterNok
	StateGfmTableBodyRowStart
	StateGfmTableBodyRowBreak
	StateGfmTableBodyRowEscape
	StateGfmTableBodyRowData

	// block quote container
	StateBlockQuoteStart
	StateBlockQuoteBefore
	StateBlockQuoteContStart
	StateBlockQuoteContBefore

	// list item container
	StateListStart
	StateListBefore
	StateListValue
	StateListMarker
	StateListMarkerAfter
	StateListAfter
	StateListContBlank
	StateListContStart
	StateListContFilled

	stateNameCount
)

// stateTable is populated once by each construct file's init(). dispatch
// is a direct array index: no map lookup, no boxed closure, on the hot
// path.
var stateTable [stateNameCount]stepFunc

func registerState(name StateName, fn stepFunc) {
	if stateTable[name] != nil {
		panic("mdtok: duplicate state registration")
	}
	stateTable[name] = fn
}

func dispatch(name StateName) stepFunc {
	fn := stateTable[name]
	if fn == nil {
		panic("mdtok: unregistered state dispatched")
	}
	return fn
}
