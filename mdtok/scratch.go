package mdtok

// ScratchState is the tokenizer's named fixed-size workspace. Every field
// here is touched by at least one construct that may run inside an
// attempt/check. Attempt/check snapshot this whole struct along with
// events/stack/point/byte-position, so a failed attempt reverts it; a
// successful attempt keeps whatever it wrote, so a construct that keeps
// a field across a nested attempt is responsible for either clearing it
// before use or saving/restoring it itself.
//
// Grouping all such fields in one struct, rather than giving each
// construct its own heap allocation, keeps the hot path allocation-free
// (see spec.md §5's allocation discipline).
type ScratchState struct {
	// Generic one- and two-byte markers, reused across fence/rule/list/
	// quote constructs. Each construct documents which of these it reads.
	MarkerA byte
	MarkerB byte

	// Generic size counters (fence width, heading level, indent, etc).
	Size  int
	SizeB int
	SizeC int

	// Raw-flow (fenced code / math flow) in-progress state.
	RawFlowFenceDelim byte
	RawFlowFenceSize  int
	RawFlowBasicIndent int

	// Raw-text (code text / math text) in-progress state.
	RawTextSizeOpen int

	// HTML (flow) basic-production kind, 1-7 per CommonMark, or 0 before
	// it is known.
	HtmlFlowKind    int
	HtmlFlowQuote   byte
	HtmlSeenNonWhitespace bool

	// List item in-progress measurements.
	ListItemSize int
	Start        int

	// GFM table in-progress measurements.
	TableColumnCount   int
	TableColumnIndex   int
	TableAlignments    []TableAlign
	TableSawDelimiter  bool
	TableSawRightDelimiter bool

	// GFM task list item.
	TaskListChecked bool

	// MDX expression/JSX brace-depth and gnostic-parse bookkeeping.
	MdxBraceDepth int
	MdxTagSelfClosing bool
	MdxTagClosing     bool

	// Document/container-protocol child tokenizer plumbing (spec §4.3).
	ChildTokenizer        *Tokenizer
	DocumentChildState    StepResult
	DocumentContinued     int
	DocumentContainerStack []ContainerState
	DocumentDataIndex     *int
	DocumentInterruptBefore bool
	DocumentParagraphBefore bool

	// Frontmatter fence in-progress measurements.
	FrontmatterFenceSize int

	// Destination/label/title partials are shared by definition and label
	// end (resource link/image); these fields parameterize which
	// TokenNames a given call should use, set by the caller immediately
	// before Attempt.
	DestTokWrap         TokenName
	DestTokLiteral      TokenName
	DestTokLiteralMarker TokenName
	DestTokRaw          TokenName
	DestTokString       TokenName
	DestBalance         int

	LabelTokWrap   TokenName
	LabelTokMarker TokenName
	LabelTokString TokenName
	LabelSize      int
	LabelChunkPrev *int

	TitleTokWrap   TokenName
	TitleTokMarker TokenName
	TitleTokString TokenName
	TitleMarker    byte

	// Paragraph inline-chunk linking (spec.md §3 Link): the index of the
	// previously emitted Data chunk in the paragraph currently open, or
	// nil for the first line.
	ParagraphChunkPrev *int

	// Attention marker run in progress.
	AttentionBefore byte

	// Autolink in-progress measurements.
	AutolinkSize int

	// Label start/end bookkeeping local to a single attempt.
	LabelEndStartIndex int

	// MDX JSX tag name/attribute in-progress bookkeeping.
	MdxTagNameSeenDot   bool
	MdxTagNameSeenColon bool
}

// TableAlign is a GFM table column alignment, inferred from the
// delimiter row.
type TableAlign int

// TableAlign values.
const (
	TableAlignNone TableAlign = iota
	TableAlignLeft
	TableAlignRight
	TableAlignCenter
)
