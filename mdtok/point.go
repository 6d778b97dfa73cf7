package mdtok

import "fmt"

// TabSize is the number of columns a tab stop advances to.
const TabSize = 4

// Point is a coordinate into the source byte buffer. It is always
// recoverable from (bytes, Index, VS): Line and Column are cached only
// because recomputing them from scratch on every Enter/Exit would mean
// rescanning from the start of the buffer.
type Point struct {
	// Line is the 1-indexed line number.
	Line int
	// Column is the 1-indexed visual column, expanding tabs to the next
	// multiple of TabSize.
	Column int
	// Index is the 0-indexed byte offset into the source buffer.
	Index int
	// VS is the virtual-space count (0-3) already consumed past a tab
	// byte at this point.
	VS int
}

// Format writes a terse "line:column" form, or a verbose form including
// the byte index and any pending virtual space under "%+v".
func (p Point) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		fmt.Fprintf(f, "%d:%d", p.Line, p.Column)
		if f.Flag('+') {
			fmt.Fprintf(f, "(index=%d", p.Index)
			if p.VS > 0 {
				fmt.Fprintf(f, " vs=%d", p.VS)
			}
			f.Write([]byte(")"))
		}
	default:
		fmt.Fprintf(f, "!(ERROR invalid format verb %%%s)", string(c))
	}
}

// cursor advances a Point through a byte buffer, normalizing CRLF/CR to a
// single line-ending byte ('\n') and expanding tabs into virtual space.
//
// A cursor only ever moves forward; attempt/check snapshot and restore a
// whole Point value instead of asking the cursor to move backward.
type cursor struct {
	bytes []byte
	point Point
	index int // current byte index into bytes; point_ adds it to point.Index

	// columnStart maps a relative line number (line - lineStart) to the
	// byte index immediately after that line's ending, as recorded by
	// recordLineStart and cursor.defineSkip. Nothing reads it back: a
	// child tokenizer seeded mid-buffer gets its line/column from the
	// Point it is seeded with.
	columnStart []int
	lineStart   int
}

func newCursor(bytes []byte, at Point) *cursor {
	return &cursor{bytes: bytes, point: at, lineStart: at.Line}
}

// byteAt returns the byte at the current index, or 0 with ok=false at EOF.
func (c *cursor) byteAt(i int) (b byte, ok bool) {
	if i < 0 || i >= len(c.bytes) {
		return 0, false
	}
	return c.bytes[i], true
}

// advance moves the cursor forward by exactly one logical unit: a single
// byte, or a CRLF pair collapsed to one line ending, or one virtual
// space past a tab. It returns the byte that was "consumed" from the
// caller's perspective (the raw byte, not the normalized one), mainly so
// callers can track previousByte.
func (c *cursor) advance() (consumed byte, atEOF bool) {
	b, ok := c.byteAt(c.index)
	if !ok {
		return 0, true
	}

	switch {
	case c.point.VS > 0:
		// Mid-expansion of a tab: consume one virtual space without
		// moving the real byte index.
		c.point.VS--
		c.point.Column++
		if c.point.VS == 0 {
			c.index++
		}
		return ' ', false

	case b == '\t':
		width := TabSize - ((c.point.Column - 1) % TabSize)
		if width <= 1 {
			c.index++
			c.point.Column++
			return b, false
		}
		c.point.VS = width - 1
		c.point.Column++
		return b, false

	case b == '\r':
		c.index++
		if nb, ok := c.byteAt(c.index); ok && nb == '\n' {
			c.index++
		}
		c.point.Line++
		c.point.Column = 1
		c.recordLineStart()
		return '\n', false

	case b == '\n':
		c.index++
		c.point.Line++
		c.point.Column = 1
		c.recordLineStart()
		return '\n', false

	default:
		c.index++
		c.point.Column++
		return b, false
	}
}

func (c *cursor) recordLineStart() {
	at := c.point.Line - c.lineStart
	for len(c.columnStart) <= at {
		c.columnStart = append(c.columnStart, c.index)
	}
	c.columnStart[at] = c.index
}

// defineSkip records a jump: being at `at` is equivalent to being at the
// byte index of `at` directly, letting a child tokenizer seeded on a
// sub-range report correct Line/Column without rescanning the parent
// buffer from byte 0. Grounded on markdown-rs's
// Tokenizer::define_skip/account_for_potential_skip.
func (c *cursor) defineSkip(at Point) {
	i := at.Line - c.lineStart
	for len(c.columnStart) <= i {
		c.columnStart = append(c.columnStart, at.Index)
	}
	c.columnStart[i] = at.Index
}

// point_ is the current position: point.Index holds the document offset
// of bytes[0], so the current byte's offset is that plus index.
func (c *cursor) point_() Point {
	p := c.point
	p.Index += c.index
	return p
}
