package mdtok

import "fmt"

// Tokenizer drives one content-tier's worth of byte-by-byte scanning: a
// document tokenizer, or a flow/content/text/string child tokenizer it
// spawns over a subslice of bytes (spec.md §4.1/§4.5). It owns the
// cursor, the open-token stack, the running event list, and the
// fixed-size ScratchState workspace that constructs share across an
// attempt boundary at their own risk.
type Tokenizer struct {
	parseState *ParseState

	cur *cursor

	previousByte byte
	currentByte  byte
	atEOF        bool

	events []Event
	stack  []TokenName

	scratch ScratchState

	// concrete records whether the current line belongs to an open
	// fenced code, math flow or HTML flow block: runDocument sets it per
	// line, and while it is true no new container is opened on the line.
	concrete bool

	// interrupt records whether the current flow construct is
	// interrupting a paragraph, which the constructs that may not do so
	// (indented code, HTML flow kind 7, the MDX flow constructs) consult
	// to refuse. List items use scratch.DocumentInterruptBefore instead.
	interrupt bool

	// lazy records whether the current line is a lazy continuation: it
	// would satisfy no open container's continuation construct, but a
	// paragraph in flow is willing to absorb it anyway.
	lazy bool

	// textTier records whether this tokenizer is running the text
	// content tier rather than flow, for the handful of constructs (MDX
	// expressions, MDX JSX) that are attempted from both tiers and need
	// to pick the right wrapper token and single-line-vs-multi-line
	// rules accordingly.
	textTier bool

	resolvers []resolverEntry

	labelStartStack []labelStart
	labelEndStack   []labelEnd

	message *Message
}

type resolverEntry struct {
	name resolverName
	fn   resolverFunc
}

// NewTokenizer creates a tokenizer over the full document, starting at
// the beginning of bytes.
func NewTokenizer(ps *ParseState) *Tokenizer {
	return NewChildTokenizer(ps, ps.Bytes, Point{Line: 1, Column: 1})
}

// NewChildTokenizer creates a tokenizer over a (possibly non-prefix)
// slice of the document, seeded at the given starting point so its
// events carry correct line/column without rescanning from byte 0 (see
// cursor.defineSkip).
func NewChildTokenizer(ps *ParseState, bytes []byte, at Point) *Tokenizer {
	t := &Tokenizer{
		parseState: ps,
		cur:        newCursor(bytes, at),
	}
	if len(bytes) > 0 {
		t.currentByte = bytes[0]
	} else {
		t.atEOF = true
	}
	return t
}

// Point is the tokenizer's current position.
func (t *Tokenizer) Point() Point { return t.cur.point_() }

// Index is the tokenizer's current byte offset into its own bytes.
func (t *Tokenizer) Index() int { return t.cur.index }

// AtEOF reports whether the cursor has exhausted its bytes.
func (t *Tokenizer) AtEOF() bool { return t.atEOF }

// Byte returns the current unconsumed byte and whether one exists.
func (t *Tokenizer) Byte() (byte, bool) {
	if t.atEOF {
		return 0, false
	}
	return t.currentByte, true
}

// Consume accepts the current byte into the most recently entered
// token, advances the cursor, and primes the next byte.
func (t *Tokenizer) Consume() {
	if t.atEOF {
		panic("mdtok: consume at EOF")
	}
	consumed, atEOF := t.cur.advance()
	t.previousByte = consumed
	if atEOF {
		t.atEOF = true
		t.currentByte = 0
		return
	}
	b, ok := t.cur.byteAt(t.cur.index)
	if !ok {
		t.atEOF = true
		t.currentByte = 0
		return
	}
	t.currentByte = b
}

// Enter pushes an open token and appends its Enter event at the
// current point.
func (t *Tokenizer) Enter(name TokenName) {
	t.EnterWithContent(name, ContentNone)
}

// EnterWithContent is Enter for a token whose subslice will itself be
// tokenized at a named content tier (spec.md §4.5's chunk linking).
func (t *Tokenizer) EnterWithContent(name TokenName, content ContentType) {
	t.stack = append(t.stack, name)
	var link *ChunkLink
	if content != ContentNone {
		link = &ChunkLink{Content: content}
	}
	t.events = append(t.events, Event{Kind: Enter, Name: name, Point: t.Point(), Link: link})
}

// EnterChunk is EnterWithContent but also threads this chunk onto a
// previous chunk of the same logical span (spec.md §3's Link.Previous/
// Next), returning this Enter event's index so the caller can pass it
// back in as prev for the next chunk. prev may be nil for the first
// chunk in a span.
func (t *Tokenizer) EnterChunk(name TokenName, content ContentType, prev *int) int {
	idx := len(t.events)
	t.EnterWithContent(name, content)
	if prev != nil {
		t.events[idx].Link.Previous = prev
		if pl := t.events[*prev].Link; pl != nil {
			pl.Next = intPtr(idx)
		}
	}
	return idx
}

// Exit pops the most recently entered token (which must match name)
// and appends its Exit event at the current point.
func (t *Tokenizer) Exit(name TokenName) {
	n := len(t.stack)
	if n == 0 || t.stack[n-1] != name {
		panic(fmt.Sprintf("mdtok: Exit(%v) does not match open token stack top", name))
	}
	t.stack = t.stack[:n-1]
	t.events = append(t.events, Event{Kind: Exit, Name: name, Point: t.Point()})
}

// Events returns the accumulated flat event stream.
func (t *Tokenizer) Events() []Event { return t.events }

// tokSnapshot is what Attempt/Check capture and can restore. It covers
// every field a backtrack must undo: position, open/emitted state, and
// (per the documented simplification in ScratchState) the entire
// scratch workspace, rather than requiring each construct to manually
// save just the fields it touches.
type tokSnapshot struct {
	cur          cursor
	previousByte byte
	currentByte  byte
	atEOF        bool
	eventsLen    int
	stack        []TokenName
	scratch      ScratchState
	concrete     bool
	interrupt    bool
	lazy         bool
}

func (t *Tokenizer) snapshot() tokSnapshot {
	return tokSnapshot{
		cur:          *t.cur,
		previousByte: t.previousByte,
		currentByte:  t.currentByte,
		atEOF:        t.atEOF,
		eventsLen:    len(t.events),
		stack:        append([]TokenName(nil), t.stack...),
		scratch:      t.scratch,
		concrete:     t.concrete,
		interrupt:    t.interrupt,
		lazy:         t.lazy,
	}
}

func (t *Tokenizer) restore(s tokSnapshot) {
	cur := s.cur
	t.cur = &cur
	t.previousByte = s.previousByte
	t.currentByte = s.currentByte
	t.atEOF = s.atEOF
	t.events = t.events[:s.eventsLen]
	t.stack = append(t.stack[:0], s.stack...)
	t.scratch = s.scratch
	t.concrete = s.concrete
	t.interrupt = s.interrupt
	t.lazy = s.lazy
}

// run dispatches name and every state it hands control to, until a
// terminal StepResult (Ok, Nok, or a fatal Error) comes back.
func (t *Tokenizer) run(name StateName) StepResult {
	for {
		res := dispatch(name)(t)
		if res.terminal() {
			return res
		}
		name = res.Name
	}
}

// Attempt runs the construct named by start; on success its events and
// position changes are kept, on failure they are rolled back.
func (t *Tokenizer) Attempt(start StateName) bool {
	snap := t.snapshot()
	res := t.run(start)
	if res.Kind == stepError {
		t.message = res.Err
		t.restore(snap)
		return false
	}
	if res.ok() {
		return true
	}
	t.restore(snap)
	return false
}

// Check runs the construct named by start purely to see whether it
// would succeed; position and events are always rolled back.
func (t *Tokenizer) Check(start StateName) bool {
	snap := t.snapshot()
	res := t.run(start)
	t.restore(snap)
	return res.Kind != stepNok && res.Kind != stepError
}

// Go runs the construct named by start to completion without ever
// rolling back: used once a construct is committed (e.g. a fenced code
// block's interior after its opening fence matched).
func (t *Tokenizer) Go(start StateName) StepResult {
	return t.run(start)
}

// Message returns the most recent fatal message recorded by a failed
// Attempt, if any.
func (t *Tokenizer) Message() *Message { return t.message }
