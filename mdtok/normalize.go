package mdtok

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// normalizeIdentifier implements CommonMark's link label normalization:
// collapse runs of Unicode whitespace to a single space, trim the
// ends, and case-fold, so `[Foo Bar]`, `[foo   bar]`, and `[FOO BAR]`
// all resolve to the same definition.
func normalizeIdentifier(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	inSpace := false
	started := false
	for len(label) > 0 {
		r, size := utf8.DecodeRuneInString(label)
		label = label[size:]
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && started {
			b.WriteByte(' ')
		}
		inSpace = false
		started = true
		b.WriteRune(unicode.ToLower(unicode.ToUpper(r)))
	}
	return b.String()
}
