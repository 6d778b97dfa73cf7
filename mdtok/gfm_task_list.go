package mdtok

// GFM task list item check (spec.md §6.3, grounded on
// micromark-extension-gfm-task-list-item's gfmTaskListItemCheck,
// restructured here as an ordinary flow construct gated on container
// position rather than a dedicated text-tier hook): `[ ]`, `[x]`, or
// `[X]` as the very first thing inside a freshly opened list item,
// followed by a space, tab, line ending, or EOF. On success it hands
// the rest of the line straight to paragraph start, the same way
// flowStart's own fallback does, since the checkbox is immediately
// followed by the item's ordinary paragraph content on the same line.
func init() {
	registerState(StateGfmTaskListItemCheckStart, gfmTaskListItemCheckStart)
	registerState(StateGfmTaskListItemCheckInside, gfmTaskListItemCheckInside)
}

func gfmTaskListItemCheckStart(t *Tokenizer) StepResult {
	if len(t.stack) == 0 || t.stack[len(t.stack)-1] != ListItem {
		return StepNok()
	}
	if b, ok := t.Byte(); !ok || b != '[' {
		return StepNok()
	}
	t.Enter(GfmTaskListItemCheck)
	t.Enter(GfmTaskListItemMarker)
	t.Consume()
	t.Exit(GfmTaskListItemMarker)
	return StepRetry(StateGfmTaskListItemCheckInside)
}

func gfmTaskListItemCheckInside(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok {
		return StepNok()
	}
	switch b {
	case ' ':
		t.Enter(GfmTaskListItemValueUnchecked)
		t.Consume()
		t.Exit(GfmTaskListItemValueUnchecked)
	case 'x', 'X':
		t.Enter(GfmTaskListItemValueChecked)
		t.Consume()
		t.Exit(GfmTaskListItemValueChecked)
		t.scratch.TaskListChecked = true
	default:
		return StepNok()
	}
	if b, ok := t.Byte(); !ok || b != ']' {
		return StepNok()
	}
	t.Enter(GfmTaskListItemMarker)
	t.Consume()
	t.Exit(GfmTaskListItemMarker)
	t.Exit(GfmTaskListItemCheck)
	if b, ok := t.Byte(); ok && b != ' ' && b != '\t' && b != '\n' {
		return StepNok()
	}
	return StepRetry(StateParagraphStart)
}
