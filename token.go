package tagger

// Token is an immutable candidate segment of a sentence: a span of the
// concatenated (whitespace-removed) sentence, tagged with one or two
// morphemes. Tokens are produced by Dictionary.Lookup, the Lemmatizer, and
// EojeolLookup, and consumed by the BeamDecoder; nothing mutates a Token
// after construction.
type Token struct {
	// Surface is the contiguous substring of the concatenated sentence this
	// token covers.
	Surface string

	// Morph0/Tag0 is the primary morpheme and its tag. Every Token has one.
	Morph0 string
	Tag0   Tag

	// Morph1/Tag1 is an optional second morpheme (L+R decompositions: Noun+Josa,
	// stem+Eomi). Tag1 is the zero Tag when there is no second morpheme; it is
	// never set without Morph1 being non-empty.
	Morph1 string
	Tag1   Tag

	// Length is the number of character positions this token consumes in the
	// concatenated sentence, always the rune count of Surface. Length may be
	// less than len([]rune(Morph0))+len([]rune(Morph1)): a Morph1 beginning
	// with a conjoining jamo (see isConjoiningJamo) fuses into the final
	// syllable of Morph0, and a lemmatized stem+ending pair restores
	// characters that conjugation contracted out of the surface. The parts
	// Flatten produces are the exception: their Length follows the morpheme
	// rules described on Flatten, not the span they are given.
	Length int

	// Begin and End are the character-offset span in the concatenated
	// sentence; End == Begin+Length for every token except Flatten's parts.
	Begin, End int

	// IsLStart is true iff Begin is the first character of some
	// whitespace-separated eojeol.
	IsLStart bool
}

// HasMorph1 reports whether t carries a second morpheme.
func (t Token) HasMorph1() bool {
	return t.Morph1 != ""
}

// NewToken builds a single-morpheme Token covering [begin, begin+len) of the
// concatenated sentence, where len is the rune length of surface.
func NewToken(surface string, tag Tag, begin int, isLStart bool) Token {
	length := len([]rune(surface))
	return Token{
		Surface:  surface,
		Morph0:   surface,
		Tag0:     tag,
		Length:   length,
		Begin:    begin,
		End:      begin + length,
		IsLStart: isLStart,
	}
}

// NewCompositeToken builds a two-morpheme Token (e.g. Noun+Josa, stem+Eomi)
// covering the literal surface span [begin, begin+length), where length is
// the rune count of surface. The morphemes may be longer than the span they
// cover: a lemmatized stem+ending pair restores characters that conjugation
// contracted out of the surface (하+았다 over the two-character surface 했다).
func NewCompositeToken(surface, morph0 string, tag0 Tag, morph1 string, tag1 Tag, begin int, isLStart bool) Token {
	length := len([]rune(surface))
	return Token{
		Surface:  surface,
		Morph0:   morph0,
		Tag0:     tag0,
		Morph1:   morph1,
		Tag1:     tag1,
		Length:   length,
		Begin:    begin,
		End:      begin + length,
		IsLStart: isLStart,
	}
}

// Flatten splits every two-morpheme token in tokens into two single-morpheme
// tokens sharing the original span: the first covers [Begin, Begin+len0), the
// second the remainder, where len0 is morph0's rune count and the second
// morpheme's length is reduced by one when it begins with a conjoining jamo
// (the jamo fuses into the preceding syllable and has no surface position of
// its own). Single-morpheme tokens and sentinels pass through unchanged.
func Flatten(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.HasMorph1() {
			out = append(out, t)
			continue
		}
		len0 := len([]rune(t.Morph0))
		r1 := []rune(t.Morph1)
		len1 := len(r1)
		if isConjoiningJamo(r1[0]) {
			len1--
		}
		mid := t.Begin + len0
		if mid > t.End {
			mid = t.End
		}
		out = append(out,
			Token{Surface: t.Morph0, Morph0: t.Morph0, Tag0: t.Tag0, Length: len0, Begin: t.Begin, End: mid, IsLStart: t.IsLStart},
			Token{Surface: t.Morph1, Morph0: t.Morph1, Tag0: t.Tag1, Length: len1, Begin: mid, End: t.End})
	}
	return out
}

// newSentinel builds a zero-length BOS/EOS token at position pos.
func newSentinel(tag Tag, pos int) Token {
	return Token{Tag0: tag, Begin: pos, End: pos, IsLStart: false}
}

// newUnknownToken synthesizes a Token covering chars[begin:end] with tag
// Unknown, used by the BeamDecoder to bridge lattice gaps (with an empty
// dictionary, every position is such a gap).
func newUnknownToken(chars []rune, begin, end int, isLStart bool) Token {
	surface := string(chars[begin:end])
	return Token{
		Surface:  surface,
		Morph0:   surface,
		Tag0:     TagUnknown,
		Length:   end - begin,
		Begin:    begin,
		End:      end,
		IsLStart: isLStart,
	}
}
