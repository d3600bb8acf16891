package tagger

// jamoConjoiningLow and jamoConjoiningHigh bound the Hangul "compatibility
// jamo" consonant block (U+3131..U+314E). A morpheme that begins with a rune
// in this range is a bare sub-syllable consonant marker that fuses into the
// preceding syllable rather than contributing a surface character of its own
// (e.g. the "ㅂ" in "이/Adjective + ㅂ니다/Eomi").
const (
	jamoConjoiningLow  = 0x3131
	jamoConjoiningHigh = 0x314E
)

// isConjoiningJamo reports whether r is a bare consonant jamo that fuses into
// a preceding syllable instead of occupying a surface position of its own.
func isConjoiningJamo(r rune) bool {
	return r >= jamoConjoiningLow && r <= jamoConjoiningHigh
}

// isASCIISpace reports whether r is one of the ASCII whitespace characters
// SentenceLookup splits eojeols on: the split is deliberately ASCII-only
// so that any Unicode space characters inside a dictionary entry are never
// mistaken for an eojeol boundary.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// splitEojeols splits sentence on runs of ASCII whitespace into
// whitespace-delimited eojeols, discarding empty fields exactly as
// strings.Fields would but restricted to the ASCII whitespace set.
func splitEojeols(sentence string) []string {
	var out []string
	runes := []rune(sentence)
	i := 0
	for i < len(runes) {
		for i < len(runes) && isASCIISpace(runes[i]) {
			i++
		}
		start := i
		for i < len(runes) && !isASCIISpace(runes[i]) {
			i++
		}
		if i > start {
			out = append(out, string(runes[start:i]))
		}
	}
	return out
}
