package tagger

// Lattice is the per-position candidate-token index SentenceLookup builds for
// one sentence: Chars is the concatenated (whitespace-removed) sentence, and
// Bindex[b] holds every candidate Token whose Begin equals b.
// BOS/EOS are not part of Bindex; the BeamDecoder seeds and appends them
// directly.
type Lattice struct {
	Chars  []rune
	Bindex [][]Token

	// eojeolStart records every position that begins a whitespace-delimited
	// eojeol, so the decoder can set IsLStart correctly on Unknown tokens it
	// synthesizes to bridge lattice gaps.
	eojeolStart map[int]bool
}

// N is the concatenated sentence length.
func (lt Lattice) N() int { return len(lt.Chars) }

// IsEojeolStart reports whether position b is the first character of some
// whitespace-separated eojeol.
func (lt Lattice) IsEojeolStart(b int) bool {
	return lt.eojeolStart[b]
}

// BuildLattice splits sentence on ASCII whitespace into eojeols, looks each
// one up with lookup at its running concatenated-position offset, and
// buckets the resulting tokens by Begin position.
func BuildLattice(sentence string, lookup EojeolLookup) Lattice {
	eojeols := splitEojeols(sentence)

	var chars []rune
	var allTokens []Token
	eojeolStart := make(map[int]bool, len(eojeols))
	offset := 0
	for _, eo := range eojeols {
		eojeolStart[offset] = true
		allTokens = append(allTokens, lookup.Lookup(eo, offset)...)
		eoRunes := []rune(eo)
		chars = append(chars, eoRunes...)
		offset += len(eoRunes)
	}

	bindex := make([][]Token, len(chars))
	for _, t := range allTokens {
		if t.Begin >= 0 && t.Begin < len(bindex) {
			bindex[t.Begin] = append(bindex[t.Begin], t)
		}
	}
	return Lattice{Chars: chars, Bindex: bindex, eojeolStart: eojeolStart}
}
