package mdtok

// ConstructsMask enables or disables each construct. The zero value
// disables every construct, which is wrong for most callers, so
// DefaultConstructs returns the conventional "CommonMark on, GFM off"
// baseline; GFMConstructs additionally turns GFM extensions on.
type ConstructsMask struct {
	Attention           bool
	Autolink            bool
	BlockQuote          bool
	CharacterEscape     bool
	CharacterReference  bool
	CodeFenced          bool
	CodeIndented        bool
	CodeText            bool
	Definition          bool
	HardBreakTrailing   bool
	HeadingAtx          bool
	HeadingSetext       bool
	HtmlFlow            bool
	HtmlText            bool
	LabelEnd            bool
	LabelStartImage     bool
	LabelStartLink      bool
	ListItem            bool
	ThematicBreak        bool
	MathFlow             bool
	MathText             bool
	MdxEsm               bool
	MdxExpressionFlow    bool
	MdxExpressionText    bool
	MdxJsxFlow           bool
	MdxJsxText           bool
	Frontmatter          bool

	GfmAutolinkLiteral bool
	GfmFootnote        bool
	GfmStrikethrough   bool
	GfmTable           bool
	GfmTaskListItem    bool
}

// DefaultConstructs enables every CommonMark construct and disables
// every extension (GFM, math, MDX, frontmatter).
func DefaultConstructs() ConstructsMask {
	return ConstructsMask{
		Attention:          true,
		Autolink:           true,
		BlockQuote:         true,
		CharacterEscape:    true,
		CharacterReference: true,
		CodeFenced:         true,
		CodeIndented:       true,
		CodeText:           true,
		Definition:         true,
		HardBreakTrailing:  true,
		HeadingAtx:         true,
		HeadingSetext:      true,
		HtmlFlow:           true,
		HtmlText:           true,
		LabelEnd:           true,
		LabelStartImage:    true,
		LabelStartLink:     true,
		ListItem:           true,
		ThematicBreak:      true,
	}
}

// GFMConstructs returns DefaultConstructs with every GFM extension also
// enabled.
func GFMConstructs() ConstructsMask {
	c := DefaultConstructs()
	c.GfmAutolinkLiteral = true
	c.GfmFootnote = true
	c.GfmStrikethrough = true
	c.GfmTable = true
	c.GfmTaskListItem = true
	return c
}

// NamedEntityFunc resolves an HTML named character reference (e.g.
// "amp") to its replacement rune. The character-reference name table
// itself is an external collaborator (spec.md §1); mdtok only ships the
// five XML-predefined names and otherwise defers to an injected lookup.
type NamedEntityFunc func(name string) (rune, bool)

// ExpressionParseFunc validates an MDX expression's source, returning an
// error position+message on failure. Used for "gnostic" MDX mode; when
// nil, expressions are accepted structurally (balanced braces) without
// being parsed as JavaScript.
type ExpressionParseFunc func(value string) (offset int, message string, ok bool)

// Options configures a tokenization run.
type Options struct {
	Constructs ConstructsMask

	// MathTextSingleDollar allows a lone `$` to open math (text).
	MathTextSingleDollar bool

	// NamedEntity resolves named character references beyond the five
	// XML-predefined ones. May be nil.
	NamedEntity NamedEntityFunc

	// MdxExpressionParse, MdxESMParse validate MDX expression/ESM
	// fragments. May be nil (structural-only acceptance).
	MdxExpressionParse ExpressionParseFunc
	MdxESMParse        ExpressionParseFunc
}
