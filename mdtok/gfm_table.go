package mdtok

// GFM table (spec.md §6.5, grounded on micromark-extension-gfm-table's
// tokenizeTable): a header row, a delimiter row of `-`/`:` cells fixing
// the column count and alignments, then zero or more body rows. The
// header and delimiter rows are validated together as one forward scan
// (the delimiter row is what turns an ordinary-looking first line into
// a table at all), so a mismatch anywhere -- wrong delimiter syntax,
// a column count that doesn't match the header -- fails the whole
// Attempt and reverts both rows' events, same as any other construct.
// Body rows resume per physical line via flowStart's stack-top switch,
// same pattern as the other multi-line flow constructs, ending the
// table at the first blank line.
//
// Cell splitting only treats a backslash-escaped `|` specially; a `|`
// inside an inline code span is not protected the way upstream's
// character-reference-aware splitter does, a simplification accepted
// here since splitting cells on raw text is otherwise identical to
// scanning a paragraph line for Data.

func init() {
	registerState(StateGfmTableStart, gfmTableStart)
	registerState(StateGfmTableHeadRowBefore, gfmTableHeadRowBefore)
	registerState(StateGfmTableHeadRowStart, gfmTableHeadRowStart)
	registerState(StateGfmTableHeadRowBreak, gfmTableHeadRowBreak)
	registerState(StateGfmTableHeadDelimiterStart, gfmTableHeadDelimiterStart)
	registerState(StateGfmTableHeadDelimiterBefore, gfmTableHeadDelimiterBefore)
	registerState(StateGfmTableHeadDelimiterValueBefore, gfmTableHeadDelimiterValueBefore)
	registerState(StateGfmTableHeadDelimiterLeftAlignmentAfter, gfmTableHeadDelimiterLeftAlignmentAfter)
	registerState(StateGfmTableHeadDelimiterFiller, gfmTableHeadDelimiterFiller)
	registerState(StateGfmTableHeadDelimiterRightAlignmentAfter, gfmTableHeadDelimiterRightAlignmentAfter)
	registerState(StateGfmTableHeadDelimiterCellAfter, gfmTableHeadDelimiterCellAfter)
	registerState(StateGfmTableHeadDelimiterNok, gfmTableHeadDelimiterNok)
	registerState(StateGfmTableBodyRowStart, gfmTableBodyRowStart)
	registerState(StateGfmTableBodyRowBreak, gfmTableBodyRowBreak)
	registerState(StateGfmTableBodyRowEscape, gfmTableBodyRowEscape)
	registerState(StateGfmTableBodyRowData, gfmTableBodyRowData)
}

func gfmTableHeaderHasPipe(t *Tokenizer) bool {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	for i < n && bytesSlice[i] != '\n' {
		if bytesSlice[i] == '\\' && i+1 < n {
			i += 2
			continue
		}
		if bytesSlice[i] == '|' {
			return true
		}
		i++
	}
	return false
}

func gfmTableBlankLineAhead(t *Tokenizer) bool {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	for i < n && (bytesSlice[i] == ' ' || bytesSlice[i] == '\t') {
		i++
	}
	return i >= n || bytesSlice[i] == '\n'
}

func gfmTableStart(t *Tokenizer) StepResult {
	if !gfmTableHeaderHasPipe(t) {
		return StepNok()
	}
	t.Enter(GfmTable)
	t.Enter(GfmTableHead)
	return StepRetry(StateGfmTableHeadRowBefore)
}

// --- header row: one GfmTableRow of cells split on unescaped `|` ---

func gfmTableHeadRowBefore(t *Tokenizer) StepResult {
	t.Enter(GfmTableRow)
	t.scratch.TableColumnIndex = 0
	t.scratch.MarkerA = 0
	return StepRetry(StateGfmTableHeadRowStart)
}

func gfmTableHeadRowStart(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == '\n' {
		return StepRetry(StateGfmTableHeadRowBreak)
	}
	if b == '|' && t.scratch.TableColumnIndex == 0 && t.scratch.MarkerA == 0 {
		t.Enter(GfmTableCellDivider)
		t.Consume()
		t.Exit(GfmTableCellDivider)
		return StepRetry(StateGfmTableHeadRowStart)
	}
	if t.scratch.MarkerA == 0 {
		t.Enter(GfmTableCell)
		t.EnterWithContent(GfmTableCellText, ContentText)
		t.scratch.MarkerA = 1
		t.scratch.TableColumnIndex++
	}
	return StepRetry(StateGfmTableHeadRowBreak)
}

func gfmTableHeadRowBreak(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == '\n' {
		if t.scratch.MarkerA == 1 {
			t.Exit(GfmTableCellText)
			t.Exit(GfmTableCell)
		}
		t.Exit(GfmTableRow)
		if t.scratch.TableColumnIndex == 0 {
			return StepNok()
		}
		t.scratch.TableColumnCount = t.scratch.TableColumnIndex
		t.Exit(GfmTableHead)
		if !ok {
			return StepNok()
		}
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
		return StepRetry(StateGfmTableHeadDelimiterStart)
	}
	if b == '\\' {
		t.Consume()
		if _, ok2 := t.Byte(); ok2 {
			t.Consume()
		}
		return StepRetry(StateGfmTableHeadRowBreak)
	}
	if b == '|' {
		t.Exit(GfmTableCellText)
		t.Exit(GfmTableCell)
		t.scratch.MarkerA = 0
		t.Enter(GfmTableCellDivider)
		t.Consume()
		t.Exit(GfmTableCellDivider)
		return StepRetry(StateGfmTableHeadRowStart)
	}
	t.Consume()
	return StepRetry(StateGfmTableHeadRowBreak)
}

// --- delimiter row: fixes column count and alignments ---

func gfmTableHeadDelimiterStart(t *Tokenizer) StepResult {
	attemptSpaceOrTabMax(t, 3)
	t.Enter(GfmTableDelimiterRow)
	t.scratch.TableColumnIndex = 0
	t.scratch.TableAlignments = nil
	return StepRetry(StateGfmTableHeadDelimiterBefore)
}

func gfmTableHeadDelimiterBefore(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == '|' && t.scratch.TableColumnIndex == 0 {
		t.Consume()
		return StepRetry(StateGfmTableHeadDelimiterBefore)
	}
	if !ok || b == '\n' {
		return StepRetry(StateGfmTableHeadDelimiterNok)
	}
	t.Enter(GfmTableDelimiterCell)
	t.scratch.TableSawDelimiter = false
	if b == ':' {
		t.Enter(GfmTableDelimiterMarker)
		t.Consume()
		t.Exit(GfmTableDelimiterMarker)
		return StepRetry(StateGfmTableHeadDelimiterLeftAlignmentAfter)
	}
	return StepRetry(StateGfmTableHeadDelimiterValueBefore)
}

func gfmTableHeadDelimiterLeftAlignmentAfter(t *Tokenizer) StepResult {
	t.scratch.TableSawDelimiter = true
	return StepRetry(StateGfmTableHeadDelimiterValueBefore)
}

func gfmTableHeadDelimiterValueBefore(t *Tokenizer) StepResult {
	if b, ok := t.Byte(); !ok || b != '-' {
		return StepRetry(StateGfmTableHeadDelimiterNok)
	}
	t.Enter(GfmTableDelimiterCellValue)
	t.Enter(GfmTableDelimiterFiller)
	return StepRetry(StateGfmTableHeadDelimiterFiller)
}

func gfmTableHeadDelimiterFiller(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if ok && b == '-' {
		t.Consume()
		return StepRetry(StateGfmTableHeadDelimiterFiller)
	}
	t.Exit(GfmTableDelimiterFiller)
	if ok && b == ':' {
		t.Enter(GfmTableDelimiterMarker)
		t.Consume()
		t.Exit(GfmTableDelimiterMarker)
		return StepRetry(StateGfmTableHeadDelimiterRightAlignmentAfter)
	}
	t.scratch.TableSawRightDelimiter = false
	return StepRetry(StateGfmTableHeadDelimiterCellAfter)
}

func gfmTableHeadDelimiterRightAlignmentAfter(t *Tokenizer) StepResult {
	t.scratch.TableSawRightDelimiter = true
	return StepRetry(StateGfmTableHeadDelimiterCellAfter)
}

func gfmTableHeadDelimiterCellAfter(t *Tokenizer) StepResult {
	t.Exit(GfmTableDelimiterCellValue)
	align := TableAlignNone
	switch {
	case t.scratch.TableSawDelimiter && t.scratch.TableSawRightDelimiter:
		align = TableAlignCenter
	case t.scratch.TableSawRightDelimiter:
		align = TableAlignRight
	case t.scratch.TableSawDelimiter:
		align = TableAlignLeft
	}
	t.scratch.TableAlignments = append(t.scratch.TableAlignments, align)
	t.scratch.TableColumnIndex++
	t.Exit(GfmTableDelimiterCell)

	if b, ok := t.Byte(); ok && b == '|' {
		t.Enter(GfmTableCellDivider)
		t.Consume()
		t.Exit(GfmTableCellDivider)
		if !gfmTableBlankLineAhead(t) {
			return StepRetry(StateGfmTableHeadDelimiterBefore)
		}
	}
	attemptSpaceOrTab(t)
	b, ok := t.Byte()
	if ok && b != '\n' {
		return StepRetry(StateGfmTableHeadDelimiterNok)
	}
	t.Exit(GfmTableDelimiterRow)
	if ok {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	if t.scratch.TableColumnIndex != t.scratch.TableColumnCount {
		return StepNok()
	}
	if t.AtEOF() {
		t.Exit(GfmTable)
		return StepOk()
	}
	t.Enter(GfmTableBody)
	return StepOk()
}

func gfmTableHeadDelimiterNok(t *Tokenizer) StepResult { return StepNok() }

// --- body rows: one per physical line, resumed via flowStart ---

func gfmTableBodyRowStart(t *Tokenizer) StepResult {
	if gfmTableBlankLineAhead(t) {
		t.Exit(GfmTableBody)
		t.Exit(GfmTable)
		return StepRetry(StateFlowStart)
	}
	if _, ok := t.Byte(); !ok {
		t.Exit(GfmTableBody)
		t.Exit(GfmTable)
		return StepOk()
	}
	t.Enter(GfmTableRow)
	t.scratch.MarkerA = 0
	return StepRetry(StateGfmTableBodyRowData)
}

func gfmTableBodyRowData(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == '\n' || b == '|' {
		return StepRetry(StateGfmTableBodyRowBreak)
	}
	if b == '\\' {
		return StepRetry(StateGfmTableBodyRowEscape)
	}
	if t.scratch.MarkerA == 0 {
		t.Enter(GfmTableCell)
		t.EnterWithContent(GfmTableCellText, ContentText)
		t.scratch.MarkerA = 1
	}
	t.Consume()
	return StepRetry(StateGfmTableBodyRowData)
}

func gfmTableBodyRowEscape(t *Tokenizer) StepResult {
	if t.scratch.MarkerA == 0 {
		t.Enter(GfmTableCell)
		t.EnterWithContent(GfmTableCellText, ContentText)
		t.scratch.MarkerA = 1
	}
	t.Consume()
	if _, ok := t.Byte(); ok {
		t.Consume()
	}
	return StepRetry(StateGfmTableBodyRowData)
}

func gfmTableBodyRowBreak(t *Tokenizer) StepResult {
	b, ok := t.Byte()
	if !ok || b == '\n' {
		if t.scratch.MarkerA == 1 {
			t.Exit(GfmTableCellText)
			t.Exit(GfmTableCell)
		}
		t.Exit(GfmTableRow)
		if ok {
			t.Enter(LineEnding)
			t.Consume()
			t.Exit(LineEnding)
		}
		return StepOk()
	}
	if t.scratch.MarkerA == 1 {
		t.Exit(GfmTableCellText)
		t.Exit(GfmTableCell)
		t.scratch.MarkerA = 0
	}
	t.Enter(GfmTableCellDivider)
	t.Consume()
	t.Exit(GfmTableCellDivider)
	return StepRetry(StateGfmTableBodyRowData)
}
