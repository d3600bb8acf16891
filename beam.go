package tagger

import "sort"

// Sequence is an ordered, tiling list of tokens from BOS through the tokens
// decoded so far, plus a running score and the count of consecutive Unknown
// tokens at the tail (reset to 0 by any non-Unknown append).
type Sequence struct {
	Tokens           []Token
	Score            float64
	TrailingUnknowns int
}

// newSeedSequence builds the initial Sequence every beam search starts from:
// a single BOS token at position 0, score 0, no trailing unknowns.
func newSeedSequence() Sequence {
	return Sequence{Tokens: []Token{newSentinel(TagBOS, 0)}, Score: 0}
}

// Add returns a new Sequence with next appended and its score increased by
// increment. Sequences are copied rather than mutated in place (persistent
// style) since many candidate continuations branch from the same immature
// Sequence within one sweep step.
func (s Sequence) Add(next Token, increment float64) Sequence {
	tokens := make([]Token, len(s.Tokens)+1)
	copy(tokens, s.Tokens)
	tokens[len(s.Tokens)] = next

	trailing := 0
	if next.Tag0 == TagUnknown {
		trailing = s.TrailingUnknowns + 1
	}

	return Sequence{Tokens: tokens, Score: s.Score + increment, TrailingUnknowns: trailing}
}

// beam is the per-end-position collection the decoder keeps, always sorted
// by descending score and capped at k entries.
type beam struct {
	k         int
	sequences []Sequence
}

// append inserts candidates, sorts descending by score (ties broken by
// insertion order, i.e. a stable sort), and truncates to k.
func (b *beam) append(candidates []Sequence) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > b.k {
		candidates = candidates[:b.k]
	}
	b.sequences = candidates
}

const (
	defaultBeamSize    = 5
	defaultMaxTokenLen = 8
)

// BeamDecoder performs left-to-right, position-indexed beam search over a
// Lattice under a composite ScoreFunction.
type BeamDecoder struct {
	Scorer      ScoreFunction
	BeamSize    int
	MaxTokenLen int
}

// NewBeamDecoder builds a BeamDecoder with the given scorer and the default
// beam size (5) and max token length (8); override the fields directly to
// change them.
func NewBeamDecoder(scorer ScoreFunction) *BeamDecoder {
	return &BeamDecoder{Scorer: scorer, BeamSize: defaultBeamSize, MaxTokenLen: defaultMaxTokenLen}
}

func (d *BeamDecoder) beamSize() int {
	if d.BeamSize > 0 {
		return d.BeamSize
	}
	return defaultBeamSize
}

func (d *BeamDecoder) maxTokenLen() int {
	if d.MaxTokenLen > 0 {
		return d.MaxTokenLen
	}
	return defaultMaxTokenLen
}

// expansionsAt returns every token in lt.Bindex[b] ending exactly at e, or,
// when none exist, a single synthesized Unknown token covering chars[b:e).
func expansionsAt(lt Lattice, b, e int) []Token {
	var out []Token
	for _, t := range lt.Bindex[b] {
		if t.End == e {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		out = []Token{newUnknownToken(lt.Chars, b, e, lt.IsEojeolStart(b))}
	}
	return out
}

// Decode runs the beam sweep over lt and returns the surviving sequences at
// position N (sentence length), each terminated with an EOS token, sorted
// descending by score. It returns a *ConfigurationError if no sequence tiles
// the whole sentence (only possible when MaxTokenLen is too small).
func (d *BeamDecoder) Decode(lt Lattice) ([]Sequence, error) {
	n := lt.N()
	k := d.beamSize()
	maxLen := d.maxTokenLen()

	beams := make([]beam, n+1)
	beams[0] = beam{k: k, sequences: []Sequence{newSeedSequence()}}
	for e := 1; e <= n; e++ {
		beams[e] = beam{k: k}
	}

	for e := 1; e <= n; e++ {
		lowerBound := e - maxLen
		if lowerBound < 0 {
			lowerBound = 0
		}

		var grown []Sequence
		for b := lowerBound; b < e; b++ {
			immatures := beams[b].sequences
			if len(immatures) == 0 {
				continue
			}
			expansions := expansionsAt(lt, b, e)

			for i := range immatures {
				immature := immatures[i]
				for _, expansion := range expansions {
					// Admission rule: reject a second consecutive
					// Unknown unless the lower window boundary forces it.
					if immature.TrailingUnknowns > 0 && expansion.Tag0 == TagUnknown && b > lowerBound {
						continue
					}
					increment := d.Scorer.Score(&immature, &expansion)
					grown = append(grown, immature.Add(expansion, increment))
				}
			}
		}

		beams[e].append(grown)
	}

	if len(beams[n].sequences) == 0 {
		return nil, newConfigurationError("beam decoder: no tiling found for a sentence of length %d (max_token_len=%d too small?)", n, maxLen)
	}

	eos := newSentinel(TagEOS, n)
	final := make([]Sequence, len(beams[n].sequences))
	for i, seq := range beams[n].sequences {
		increment := d.Scorer.Score(&seq, &eos)
		final[i] = seq.Add(eos, increment)
	}
	sort.SliceStable(final, func(i, j int) bool { return final[i].Score > final[j].Score })
	return final, nil
}
