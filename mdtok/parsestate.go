package mdtok

// ParseState is shared across the parent tokenizer and any child
// tokenizers it spawns. Bytes and Options never change after creation;
// Definitions/GfmFootnoteDefinitions are filled by a first pass (see
// scanDefinitions) before the main tokenization pass runs, so reference
// resolution in the resolver pipeline is deterministic regardless of
// where in the document a reference appears relative to its definition.
type ParseState struct {
	Bytes      []byte
	Options    Options
	Constructs ConstructsMask

	Definitions             map[string]bool
	GfmFootnoteDefinitions  map[string]bool
}

// NewParseState scans bytes for definition and GFM footnote-definition
// starts (a cheap line-oriented pre-pass, not a full tokenization) to
// populate the identifier sets the label resolver consults.
func NewParseState(bytes []byte, opts Options) *ParseState {
	ps := &ParseState{
		Bytes:                  bytes,
		Options:                opts,
		Constructs:             opts.Constructs,
		Definitions:            map[string]bool{},
		GfmFootnoteDefinitions: map[string]bool{},
	}
	scanDefinitions(ps)
	return ps
}
