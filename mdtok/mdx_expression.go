package mdtok

// MDX expression (spec.md §7.3, grounded on
// micromark-factory-mdx-expression's tokenizeExpression): a balanced
// `{...}` span, shared between the flow tier (alone on its own line,
// wrapped in MdxExpressionFlow) and the text tier (inline, wrapped in
// MdxExpressionText) via t.textTier. The content between the braces is
// opaque -- this only finds the matching close brace, tracking nesting
// depth and skipping quoted strings/template literals so a `}` inside
// one doesn't end the expression early -- matching the coarse token
// output already used for HTML flow/text.
//
// The closing-brace search runs directly over the tokenizer's own
// remaining bytes rather than per line, so a flow expression may span
// multiple lines in a single pass; like frontmatter, this only strips
// container prefixes correctly when the expression sits at the top
// level of the document, not nested inside a block quote or list item.

func init() {
	registerState(StateMdxExpressionStart, mdxExpressionStart)
	registerState(StateMdxExpressionBefore, mdxExpressionBefore)
	registerState(StateMdxExpressionInside, mdxExpressionInside)
}

// mdxExpressionFindClose returns the index of the `}` matching the `{`
// already consumed at t.cur.index's start, or -1 if none is found
// before the tokenizer's own bytes run out.
func mdxExpressionFindClose(t *Tokenizer) int {
	bytesSlice := t.cur.bytes
	i := t.cur.index
	n := len(bytesSlice)
	depth := 1
	for i < n {
		b := bytesSlice[i]
		switch b {
		case '{':
			depth++
			i++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
			i++
		case '"', '\'', '`':
			q := b
			i++
			for i < n && bytesSlice[i] != q {
				if bytesSlice[i] == '\\' && i+1 < n {
					i++
				}
				i++
			}
			if i >= n {
				return -1
			}
			i++
		default:
			i++
		}
	}
	return -1
}

func mdxExpressionStart(t *Tokenizer) StepResult {
	if !t.textTier {
		if t.interrupt {
			return StepNok()
		}
		attemptSpaceOrTabMax(t, 3)
	}
	if b, ok := t.Byte(); !ok || b != '{' {
		return StepNok()
	}
	wrap := MdxExpressionText
	if !t.textTier {
		wrap = MdxExpressionFlow
	}
	t.Enter(wrap)
	t.Enter(MdxExpressionMarker)
	t.Consume()
	t.Exit(MdxExpressionMarker)
	return StepRetry(StateMdxExpressionBefore)
}

func mdxExpressionBefore(t *Tokenizer) StepResult {
	end := mdxExpressionFindClose(t)
	if end < 0 {
		p := t.Point()
		return StepErr(&Message{
			Reason: "unexpected end of file in expression, expected a closing brace for `{`",
			RuleID: RuleMdxExpressionUnterminated,
			Source: "mdtok",
			Place:  &p,
		})
	}
	if end > t.cur.index {
		t.Enter(MdxExpressionData)
		for t.cur.index < end {
			t.Consume()
		}
		t.Exit(MdxExpressionData)
	}
	return StepRetry(StateMdxExpressionInside)
}

func mdxExpressionInside(t *Tokenizer) StepResult {
	wrap := t.stack[len(t.stack)-1]
	t.Enter(MdxExpressionMarker)
	t.Consume()
	t.Exit(MdxExpressionMarker)
	t.Exit(wrap)
	if t.textTier {
		return StepOk()
	}
	attemptSpaceOrTab(t)
	b, ok := t.Byte()
	if ok && b != '\n' {
		return StepNok()
	}
	if ok {
		t.Enter(LineEnding)
		t.Consume()
		t.Exit(LineEnding)
	}
	return StepOk()
}
