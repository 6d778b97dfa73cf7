package mdtok

// TokenName is a closed enumeration of event names. Most are structural
// scaffolding a downstream compiler may elide; a TokenName is always
// meaningful only as the matched pair in an Enter/Exit Event.
type TokenName int

// TokenName values. Order has no semantic meaning beyond grouping related
// names together for readability; see tokenNames for display strings.
const (
	TokenNone TokenName = iota

	// Generic / shared
	Data
	LineEnding
	BlankLineEnding
	SpaceOrTab
	ByteOrderMark
	Whitespace
	EscapeMarker
	CharacterEscapeValue
	CharacterReferenceMarker
	CharacterReferenceMarkerNumeric
	CharacterReferenceMarkerHexadecimal
	CharacterReferenceValue

	// Blank line / document
	BlankLine
	LineEndingBlank

	// Thematic break
	ThematicBreak
	ThematicBreakSequence

	// Heading (atx)
	HeadingAtx
	HeadingAtxSequence
	HeadingAtxText

	// Heading (setext)
	HeadingSetext
	HeadingSetextText
	HeadingSetextUnderline
	HeadingSetextUnderlineSequence

	// Paragraph
	Paragraph
	ParagraphLine

	// Code (indented)
	CodeIndented
	CodeFlowChunk

	// Code (fenced) / Math (flow) -- shared "raw flow" machine
	CodeFenced
	CodeFencedFence
	CodeFencedFenceSequence
	CodeFencedFenceInfo
	CodeFencedFenceMeta
	MathFlow
	MathFlowFence
	MathFlowFenceSequence
	MathFlowFenceMeta
	MathFlowChunk

	// Code (text) / Math (text) -- shared "raw text" machine
	CodeText
	CodeTextSequence
	CodeTextData
	CodeTextLineEnding
	MathText
	MathTextSequence
	MathTextData

	// HTML (flow)
	HtmlFlow
	HtmlFlowData

	// HTML (text)
	HtmlText
	HtmlTextData

	// Autolink
	Autolink
	AutolinkMarker
	AutolinkProtocol
	AutolinkEmail

	// Hard break
	HardBreakEscape
	HardBreakTrailing

	// Definition
	Definition
	DefinitionMarker
	DefinitionLabel
	DefinitionLabelMarker
	DefinitionLabelString
	DefinitionLabelData
	DefinitionDestination
	DefinitionDestinationLiteral
	DefinitionDestinationLiteralMarker
	DefinitionDestinationRaw
	DefinitionDestinationString
	DefinitionTitle
	DefinitionTitleMarker
	DefinitionTitleString

	// Labels (link/image)
	LabelLink
	LabelImage
	LabelImageMarker
	LabelMarker
	Label
	LabelText
	LabelEnd

	Link
	Image
	Resource
	ResourceMarker
	ResourceDestination
	ResourceDestinationLiteral
	ResourceDestinationLiteralMarker
	ResourceDestinationRaw
	ResourceDestinationString
	ResourceTitle
	ResourceTitleMarker
	ResourceTitleString
	Reference
	ReferenceMarker
	ReferenceString

	// Attention (emphasis / strong / gfm strikethrough)
	AttentionSequence
	Emphasis
	EmphasisSequence
	EmphasisText
	Strong
	StrongSequence
	StrongText
	GfmStrikethrough
	GfmStrikethroughSequence
	GfmStrikethroughText

	// Container: block quote
	BlockQuote
	BlockQuoteMarker
	BlockQuotePrefix
	BlockQuotePrefixWhitespace

	// Container: list
	ListOrdered
	ListUnordered
	ListItem
	ListItemPrefix
	ListItemPrefixWhitespace
	ListItemMarker
	ListItemValue
	ListItemIndent

	// GFM task list item
	GfmTaskListItemCheck
	GfmTaskListItemMarker
	GfmTaskListItemValueUnchecked
	GfmTaskListItemValueChecked

	// GFM table
	GfmTable
	GfmTableHead
	GfmTableBody
	GfmTableRow
	GfmTableDelimiterRow
	GfmTableDelimiterCell
	GfmTableDelimiterCellValue
	GfmTableDelimiterMarker
	GfmTableDelimiterFiller
	GfmTableCell
	GfmTableCellText
	GfmTableCellDivider

	// GFM footnote
	GfmFootnoteCall
	GfmFootnoteCallLabelMarker
	GfmFootnoteCallMarker
	GfmFootnoteCallString
	GfmFootnoteDefinition
	GfmFootnoteDefinitionLabelMarker
	GfmFootnoteDefinitionMarker
	GfmFootnoteDefinitionPrefix

	// GFM autolink literal
	GfmAutolinkLiteralEmail
	GfmAutolinkLiteralWww
	GfmAutolinkLiteralHttp

	// Frontmatter
	Frontmatter
	FrontmatterFence
	FrontmatterSequence
	FrontmatterChunk

	// MDX
	MdxEsm
	MdxEsmData
	MdxExpressionFlow
	MdxExpressionText
	MdxExpressionMarker
	MdxExpressionData
	MdxJsxFlowTag
	MdxJsxTextTag
	MdxJsxTagMarker
	MdxJsxTagClosingMarker
	MdxJsxTagSelfClosingMarker
	MdxJsxTagName
	MdxJsxTagNamePrimary
	MdxJsxTagNameMember
	MdxJsxTagNameLocal
	MdxJsxTagAttribute
	MdxJsxTagAttributeName
	MdxJsxTagAttributeNamePrimary
	MdxJsxTagAttributeNameLocal
	MdxJsxTagAttributeInitializerMarker
	MdxJsxTagAttributeValueLiteral
	MdxJsxTagAttributeValueExpression

	tokenNameCount
)

var tokenNames = [tokenNameCount]string{
	TokenNone:                           "None",
	Data:                                "Data",
	LineEnding:                          "LineEnding",
	BlankLineEnding:                     "BlankLineEnding",
	SpaceOrTab:                          "SpaceOrTab",
	ByteOrderMark:                       "ByteOrderMark",
	Whitespace:                          "Whitespace",
	EscapeMarker:                        "EscapeMarker",
	CharacterEscapeValue:                "CharacterEscapeValue",
	CharacterReferenceMarker:            "CharacterReferenceMarker",
	CharacterReferenceMarkerNumeric:     "CharacterReferenceMarkerNumeric",
	CharacterReferenceMarkerHexadecimal: "CharacterReferenceMarkerHexadecimal",
	CharacterReferenceValue:             "CharacterReferenceValue",
	BlankLine:                           "BlankLine",
	LineEndingBlank:                     "LineEndingBlank",
	ThematicBreak:                       "ThematicBreak",
	ThematicBreakSequence:               "ThematicBreakSequence",
	HeadingAtx:                          "HeadingAtx",
	HeadingAtxSequence:                  "HeadingAtxSequence",
	HeadingAtxText:                      "HeadingAtxText",
	HeadingSetext:                       "HeadingSetext",
	HeadingSetextText:                   "HeadingSetextText",
	HeadingSetextUnderline:              "HeadingSetextUnderline",
	HeadingSetextUnderlineSequence:      "HeadingSetextUnderlineSequence",
	Paragraph:                           "Paragraph",
	ParagraphLine:                       "ParagraphLine",
	CodeIndented:                        "CodeIndented",
	CodeFlowChunk:                       "CodeFlowChunk",
	CodeFenced:                          "CodeFenced",
	CodeFencedFence:                     "CodeFencedFence",
	CodeFencedFenceSequence:             "CodeFencedFenceSequence",
	CodeFencedFenceInfo:                 "CodeFencedFenceInfo",
	CodeFencedFenceMeta:                 "CodeFencedFenceMeta",
	MathFlow:                            "MathFlow",
	MathFlowFence:                       "MathFlowFence",
	MathFlowFenceSequence:               "MathFlowFenceSequence",
	MathFlowFenceMeta:                   "MathFlowFenceMeta",
	MathFlowChunk:                       "MathFlowChunk",
	CodeText:                            "CodeText",
	CodeTextSequence:                    "CodeTextSequence",
	CodeTextData:                        "CodeTextData",
	CodeTextLineEnding:                  "CodeTextLineEnding",
	MathText:                            "MathText",
	MathTextSequence:                    "MathTextSequence",
	MathTextData:                        "MathTextData",
	HtmlFlow:                            "HtmlFlow",
	HtmlFlowData:                        "HtmlFlowData",
	HtmlText:                            "HtmlText",
	HtmlTextData:                        "HtmlTextData",
	Autolink:                            "Autolink",
	AutolinkMarker:                      "AutolinkMarker",
	AutolinkProtocol:                    "AutolinkProtocol",
	AutolinkEmail:                       "AutolinkEmail",
	HardBreakEscape:                     "HardBreakEscape",
	HardBreakTrailing:                   "HardBreakTrailing",
	Definition:                          "Definition",
	DefinitionMarker:                    "DefinitionMarker",
	DefinitionLabel:                     "DefinitionLabel",
	DefinitionLabelMarker:               "DefinitionLabelMarker",
	DefinitionLabelString:               "DefinitionLabelString",
	DefinitionLabelData:                 "DefinitionLabelData",
	DefinitionDestination:               "DefinitionDestination",
	DefinitionDestinationLiteral:        "DefinitionDestinationLiteral",
	DefinitionDestinationLiteralMarker:  "DefinitionDestinationLiteralMarker",
	DefinitionDestinationRaw:            "DefinitionDestinationRaw",
	DefinitionDestinationString:         "DefinitionDestinationString",
	DefinitionTitle:                     "DefinitionTitle",
	DefinitionTitleMarker:               "DefinitionTitleMarker",
	DefinitionTitleString:               "DefinitionTitleString",
	LabelLink:                           "LabelLink",
	LabelImage:                         "LabelImage",
	LabelImageMarker:                   "LabelImageMarker",
	LabelMarker:                        "LabelMarker",
	Label:                              "Label",
	LabelText:                          "LabelText",
	LabelEnd:                           "LabelEnd",
	Link:                               "Link",
	Image:                              "Image",
	Resource:                           "Resource",
	ResourceMarker:                     "ResourceMarker",
	ResourceDestination:                "ResourceDestination",
	ResourceDestinationLiteral:         "ResourceDestinationLiteral",
	ResourceDestinationLiteralMarker:   "ResourceDestinationLiteralMarker",
	ResourceDestinationRaw:             "ResourceDestinationRaw",
	ResourceDestinationString:          "ResourceDestinationString",
	ResourceTitle:                      "ResourceTitle",
	ResourceTitleMarker:                "ResourceTitleMarker",
	ResourceTitleString:                "ResourceTitleString",
	Reference:                          "Reference",
	ReferenceMarker:                    "ReferenceMarker",
	ReferenceString:                    "ReferenceString",
	AttentionSequence:                  "AttentionSequence",
	Emphasis:                           "Emphasis",
	EmphasisSequence:                   "EmphasisSequence",
	EmphasisText:                       "EmphasisText",
	Strong:                             "Strong",
	StrongSequence:                     "StrongSequence",
	StrongText:                         "StrongText",
	GfmStrikethrough:                   "GfmStrikethrough",
	GfmStrikethroughSequence:           "GfmStrikethroughSequence",
	GfmStrikethroughText:               "GfmStrikethroughText",
	BlockQuote:                         "BlockQuote",
	BlockQuoteMarker:                   "BlockQuoteMarker",
	BlockQuotePrefix:                   "BlockQuotePrefix",
	BlockQuotePrefixWhitespace:         "BlockQuotePrefixWhitespace",
	ListOrdered:                        "ListOrdered",
	ListUnordered:                      "ListUnordered",
	ListItem:                           "ListItem",
	ListItemPrefix:                     "ListItemPrefix",
	ListItemPrefixWhitespace:           "ListItemPrefixWhitespace",
	ListItemMarker:                     "ListItemMarker",
	ListItemValue:                      "ListItemValue",
	ListItemIndent:                     "ListItemIndent",
	GfmTaskListItemCheck:               "GfmTaskListItemCheck",
	GfmTaskListItemMarker:              "GfmTaskListItemMarker",
	GfmTaskListItemValueUnchecked:      "GfmTaskListItemValueUnchecked",
	GfmTaskListItemValueChecked:        "GfmTaskListItemValueChecked",
	GfmTable:                           "GfmTable",
	GfmTableHead:                       "GfmTableHead",
	GfmTableBody:                       "GfmTableBody",
	GfmTableRow:                        "GfmTableRow",
	GfmTableDelimiterRow:               "GfmTableDelimiterRow",
	GfmTableDelimiterCell:              "GfmTableDelimiterCell",
	GfmTableDelimiterCellValue:         "GfmTableDelimiterCellValue",
	GfmTableDelimiterMarker:            "GfmTableDelimiterMarker",
	GfmTableDelimiterFiller:            "GfmTableDelimiterFiller",
	GfmTableCell:                       "GfmTableCell",
	GfmTableCellText:                   "GfmTableCellText",
	GfmTableCellDivider:                "GfmTableCellDivider",
	GfmFootnoteCall:                    "GfmFootnoteCall",
	GfmFootnoteCallLabelMarker:         "GfmFootnoteCallLabelMarker",
	GfmFootnoteCallMarker:              "GfmFootnoteCallMarker",
	GfmFootnoteCallString:              "GfmFootnoteCallString",
	GfmFootnoteDefinition:              "GfmFootnoteDefinition",
	GfmFootnoteDefinitionLabelMarker:   "GfmFootnoteDefinitionLabelMarker",
	GfmFootnoteDefinitionMarker:        "GfmFootnoteDefinitionMarker",
	GfmFootnoteDefinitionPrefix:        "GfmFootnoteDefinitionPrefix",
	GfmAutolinkLiteralEmail:            "GfmAutolinkLiteralEmail",
	GfmAutolinkLiteralWww:              "GfmAutolinkLiteralWww",
	GfmAutolinkLiteralHttp:             "GfmAutolinkLiteralHttp",
	Frontmatter:                        "Frontmatter",
	FrontmatterFence:                   "FrontmatterFence",
	FrontmatterSequence:                "FrontmatterSequence",
	FrontmatterChunk:                   "FrontmatterChunk",
	MdxEsm:                             "MdxEsm",
	MdxEsmData:                         "MdxEsmData",
	MdxExpressionFlow:                  "MdxExpressionFlow",
	MdxExpressionText:                  "MdxExpressionText",
	MdxExpressionMarker:                "MdxExpressionMarker",
	MdxExpressionData:                  "MdxExpressionData",
	MdxJsxFlowTag:                      "MdxJsxFlowTag",
	MdxJsxTextTag:                      "MdxJsxTextTag",
	MdxJsxTagMarker:                    "MdxJsxTagMarker",
	MdxJsxTagClosingMarker:             "MdxJsxTagClosingMarker",
	MdxJsxTagSelfClosingMarker:         "MdxJsxTagSelfClosingMarker",
	MdxJsxTagName:                      "MdxJsxTagName",
	MdxJsxTagNamePrimary:               "MdxJsxTagNamePrimary",
	MdxJsxTagNameMember:                "MdxJsxTagNameMember",
	MdxJsxTagNameLocal:                 "MdxJsxTagNameLocal",
	MdxJsxTagAttribute:                 "MdxJsxTagAttribute",
	MdxJsxTagAttributeName:             "MdxJsxTagAttributeName",
	MdxJsxTagAttributeNamePrimary:      "MdxJsxTagAttributeNamePrimary",
	MdxJsxTagAttributeNameLocal:        "MdxJsxTagAttributeNameLocal",
	MdxJsxTagAttributeInitializerMarker: "MdxJsxTagAttributeInitializerMarker",
	MdxJsxTagAttributeValueLiteral:      "MdxJsxTagAttributeValueLiteral",
	MdxJsxTagAttributeValueExpression:   "MdxJsxTagAttributeValueExpression",
}

// String returns the token's display name, or "InvalidToken" for an
// out-of-range value -- mirrors scandown.BlockType's defensive default.
func (t TokenName) String() string {
	if t >= 0 && int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return "InvalidToken"
}

// isVoid reports whether a token's Enter and Exit always share a Point:
// it marks a single position rather than spanning a byte range.
func isVoid(t TokenName) bool {
	switch t {
	case LineEnding, BlankLineEnding:
		return true
	}
	return false
}
