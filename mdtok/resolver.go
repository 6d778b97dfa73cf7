package mdtok

// resolverName identifies a post-hoc resolver pass (spec.md §4.4). A
// construct registers the resolvers its output needs by name;
// duplicate registrations collapse so each pass runs once regardless
// of how many times its construct matched.
type resolverName int

// resolverName values, one per resolver pass. resolverHeadingAtx,
// resolverGfmTable, and resolverGfmFootnote are never actually
// registered: their constructs (heading_atx.go, gfm_table.go,
// gfm_footnote.go) build final structure directly at tokenize time and
// have no ambiguity left to resolve after the fact. The names stay for
// symmetry with the rest of the enum and in case a later construct
// wants to defer work onto them.
const (
	resolverWhitespace resolverName = iota
	resolverAttention
	resolverLabel
	resolverHeadingAtx
	resolverHeadingSetext
	resolverList
	resolverGfmTable
	resolverGfmAutolinkLiteral
	resolverGfmFootnote
)

// resolverFunc rewrites the flat event stream via edits, consulting
// parse state (definitions, options) as needed. It never mutates
// events directly -- all changes go through the EditMap so that two
// resolvers touching overlapping ranges compose instead of racing.
type resolverFunc func(ps *ParseState, events []Event, edits *EditMap)

var resolverTable = map[resolverName]resolverFunc{}

func registerResolver(name resolverName, fn resolverFunc) {
	resolverTable[name] = fn
}

// registerResolver marks that name should run once resolution begins.
// Order among distinct names is fixed (see runResolvers), not
// insertion order, so repeated registration is simply idempotent.
func (t *Tokenizer) registerResolver(name resolverName) {
	for _, r := range t.resolvers {
		if r.name == name {
			return
		}
	}
	fn, ok := resolverTable[name]
	if !ok {
		panic("mdtok: unregistered resolver name")
	}
	t.resolvers = append(t.resolvers, resolverEntry{name: name, fn: fn})
}

// resolverOrder fixes the pipeline order described in spec.md §4.4:
// whitespace trimming first (so later passes see final token
// boundaries), then pairing passes, then the passes that consume
// pairing results.
var resolverOrder = []resolverName{
	resolverWhitespace,
	resolverAttention,
	resolverLabel,
	resolverHeadingAtx,
	resolverHeadingSetext,
	resolverList,
	resolverGfmTable,
	resolverGfmAutolinkLiteral,
	resolverGfmFootnote,
}

