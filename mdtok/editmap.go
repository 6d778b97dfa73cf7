package mdtok

import (
	"fmt"
	"sort"
)

// editEntry is a single pending splice: remove `remove` events starting
// at the map key, then insert `add` in their place.
type editEntry struct {
	remove int
	add    []Event
}

// EditMap is an append-only record of (index, removeCount, insertedEvents)
// splices, applied once at drain time. Entries at the same index merge
// (their removes sum, their inserts concatenate in add-order, or insert-
// before-order for AddBefore) rather than overwrite, so independent
// resolvers can both touch the same boundary safely.
//
// Grounded on markdown-rs's util::edit_map (HashMap<usize,(usize,Vec
// <Event>)> plus a shift-computing consume pass), restyled after
// internal/scanio's Editor: an append-only structure operated on by
// index into "original" space, materialized once via a single pass.
type EditMap struct {
	consumed bool
	entries  map[int]editEntry
}

// NewEditMap returns a ready-to-use, empty EditMap.
func NewEditMap() *EditMap {
	return &EditMap{entries: make(map[int]editEntry)}
}

// Add records removing `remove` events at `index` and inserting `add`
// after any already-recorded insert at that index.
func (m *EditMap) Add(index, remove int, add []Event) {
	m.addImpl(index, remove, add, false)
}

// AddBefore is like Add, but `add` is inserted before any already-
// recorded insert at that index.
func (m *EditMap) AddBefore(index, remove int, add []Event) {
	m.addImpl(index, remove, add, true)
}

func (m *EditMap) addImpl(index, remove int, add []Event, before bool) {
	if m.consumed {
		panic("mdtok: cannot add to an EditMap after Consume")
	}
	if prior, ok := m.entries[index]; ok {
		remove += prior.remove
		if before {
			add = append(append([]Event{}, add...), prior.add...)
		} else {
			add = append(append([]Event{}, prior.add...), add...)
		}
	}
	m.entries[index] = editEntry{remove: remove, add: add}
}

// Consume applies every recorded splice to events, in index order, and
// returns the rewritten event stream. Link.Previous/Link.Next on events
// that survive the splice are remapped to their new indices. It is a
// programmer error to call Consume twice.
func (m *EditMap) Consume(events []Event) []Event {
	if m.consumed {
		panic("mdtok: EditMap already consumed")
	}
	m.consumed = true

	if len(m.entries) == 0 {
		return events
	}

	indices := make([]int, 0, len(m.entries))
	for i := range m.entries {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	// Precompute, for each edit boundary, the cumulative index shift
	// that applies to everything at-or-after it -- used to remap link
	// indices that may point across a splice.
	jumps := make([]struct {
		index int
		shift int
	}, len(indices))
	shift := 0
	for i, idx := range indices {
		e := m.entries[idx]
		shift += len(e.add) - e.remove
		jumps[i] = struct {
			index int
			shift int
		}{idx, shift}
	}
	shiftAt := func(before int) int {
		j := 0
		s := 0
		for j < len(jumps) && jumps[j].index <= before {
			s = jumps[j].shift
			j++
		}
		next := before + s
		if next < 0 {
			next = 0
		}
		return next
	}
	remap := func(evs []Event) {
		for i := range evs {
			if evs[i].Link == nil {
				continue
			}
			l := *evs[i].Link
			if l.Previous != nil {
				l.Previous = intPtr(shiftAt(*l.Previous))
			}
			if l.Next != nil {
				l.Next = intPtr(shiftAt(*l.Next))
			}
			evs[i].Link = &l
		}
	}

	out := make([]Event, 0, len(events))
	start := 0
	for _, idx := range indices {
		if start < idx {
			chunk := append([]Event{}, events[start:idx]...)
			remap(chunk)
			out = append(out, chunk...)
		}
		e := m.entries[idx]
		out = append(out, e.add...)
		start = idx + e.remove
	}
	if start < len(events) {
		chunk := append([]Event{}, events[start:]...)
		remap(chunk)
		out = append(out, chunk...)
	}
	return out
}

// Format writes the number of pending edits, or each one under "%+v".
func (m *EditMap) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		if !f.Flag('+') {
			fmt.Fprintf(f, "%d pending edits", len(m.entries))
			return
		}
		indices := make([]int, 0, len(m.entries))
		for i := range m.entries {
			indices = append(indices, i)
		}
		sort.Ints(indices)
		for i, idx := range indices {
			if i > 0 {
				f.Write([]byte("\n"))
			}
			e := m.entries[idx]
			fmt.Fprintf(f, "@%d: remove %d, insert %d", idx, e.remove, len(e.add))
		}
	default:
		fmt.Fprintf(f, "!(ERROR invalid format verb %%%s)", string(c))
	}
}
