package mdtok

import "fmt"

// EventKind distinguishes the start and end of a span.
type EventKind int

// EventKind values.
const (
	Enter EventKind = iota
	Exit
)

func (k EventKind) String() string {
	if k == Enter {
		return "Enter"
	}
	return "Exit"
}

// ContentType selects which content-tier a chunk-bearing event's
// descendants should be re-tokenized under.
type ContentType int

// ContentType values.
const (
	ContentNone ContentType = iota
	ContentFlow
	ContentText
	ContentString
)

func (c ContentType) String() string {
	switch c {
	case ContentFlow:
		return "Flow"
	case ContentText:
		return "Text"
	case ContentString:
		return "String"
	default:
		return "None"
	}
}

// ChunkLink threads sibling "chunk" events belonging to one logical inline
// or string span together, so a subtokenize pass can walk them as a single
// stream. Only present on Enter events of chunk-bearing tokens.
type ChunkLink struct {
	Previous *int
	Next     *int
	Content  ContentType
}

// Event is a typed span boundary: an Enter or Exit of a TokenName at a
// Point. Nesting is implicit: balanced Enter/Exit pairs of identical
// Name. VOID tokens have Enter and Exit at the same Point.
type Event struct {
	Kind  EventKind
	Name  TokenName
	Point Point
	Link  *ChunkLink
}

// Format writes a terse "Kind(Name)@point" form, or a verbose form under
// "%+v" that also prints link previous/next indices when present.
func (e Event) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		fmt.Fprintf(f, "%v(%v)@%v", e.Kind, e.Name, e.Point)
		if f.Flag('+') && e.Link != nil {
			fmt.Fprintf(f, " content=%v", e.Link.Content)
			if e.Link.Previous != nil {
				fmt.Fprintf(f, " prev=%d", *e.Link.Previous)
			}
			if e.Link.Next != nil {
				fmt.Fprintf(f, " next=%d", *e.Link.Next)
			}
		}
	default:
		fmt.Fprintf(f, "!(ERROR invalid format verb %%%s)", string(c))
	}
}

func intPtr(i int) *int { return &i }
