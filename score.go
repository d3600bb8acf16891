package tagger

// ScoreFunction is one additive scorer over (partial sequence, next token).
// Every concrete scorer below is a stateless value after construction, and
// CompositeScore is simply a slice of them rather than a registry of
// dynamically dispatched implementations.
type ScoreFunction interface {
	// Score returns the score contribution of appending next to seq.
	Score(seq *Sequence, next *Token) float64
	// Evaluate returns the total score contribution over a completed
	// sequence, recomputed from scratch rather than accumulated.
	Evaluate(seq *Sequence) float64
}

// RegularizationScore rewards longer known tokens, penalizes Unknown tokens,
// and penalizes single-syllable nouns (which are disproportionately likely to
// be spurious segmentations of a longer word).
type RegularizationScore struct {
	UnknownPenalty  float64
	KnownPreference float64
	SyllablePenalty float64
}

// NewRegularizationScore builds a RegularizationScore with the default
// weights.
func NewRegularizationScore() RegularizationScore {
	return RegularizationScore{
		UnknownPenalty:  -0.1,
		KnownPreference: 0.1,
		SyllablePenalty: -0.2,
	}
}

func (r RegularizationScore) scoreToken(t *Token) float64 {
	if t.Tag0 == TagUnknown {
		return r.UnknownPenalty
	}
	s := r.KnownPreference * float64(t.Length)
	if t.Tag0 == TagNoun && t.Length == 1 {
		s += r.SyllablePenalty
	}
	return s
}

func (r RegularizationScore) Score(_ *Sequence, next *Token) float64 {
	return r.scoreToken(next)
}

func (r RegularizationScore) Evaluate(seq *Sequence) float64 {
	var total float64
	for i := range seq.Tokens {
		t := &seq.Tokens[i]
		if t.Tag0 == TagBOS || t.Tag0 == TagEOS {
			continue
		}
		total += r.scoreToken(t)
	}
	return total
}

// MorphemePreferenceScore adds a per-(tag, morpheme) bonus, used to prefer
// morphemes known to be common for their tag. A composite token
// (stem+Eomi, Noun+Josa) is looked up twice, once per morpheme: the bonus
// for (Tag0, Morph0) plus, when the token HasMorph1, the bonus for
// (Tag1, Morph1).
type MorphemePreferenceScore struct {
	Table map[Tag]map[string]float64
}

// NewMorphemePreferenceScore builds a MorphemePreferenceScore over an
// explicit bonus table.
func NewMorphemePreferenceScore(table map[Tag]map[string]float64) MorphemePreferenceScore {
	return MorphemePreferenceScore{Table: table}
}

func (m MorphemePreferenceScore) lookup(tag Tag, morph string) float64 {
	byMorph := m.Table[tag]
	if byMorph == nil {
		return 0
	}
	return byMorph[morph]
}

func (m MorphemePreferenceScore) bonus(t *Token) float64 {
	total := m.lookup(t.Tag0, t.Morph0)
	if t.HasMorph1() {
		total += m.lookup(t.Tag1, t.Morph1)
	}
	return total
}

func (m MorphemePreferenceScore) Score(_ *Sequence, next *Token) float64 {
	return m.bonus(next)
}

func (m MorphemePreferenceScore) Evaluate(seq *Sequence) float64 {
	var total float64
	for i := range seq.Tokens {
		total += m.bonus(&seq.Tokens[i])
	}
	return total
}

// WordPreferenceScore adds a per-(tag, surface) bonus, the surface-form
// analogue of MorphemePreferenceScore.
type WordPreferenceScore struct {
	Table map[Tag]map[string]float64
}

// NewWordPreferenceScore builds a WordPreferenceScore over an explicit bonus
// table.
func NewWordPreferenceScore(table map[Tag]map[string]float64) WordPreferenceScore {
	return WordPreferenceScore{Table: table}
}

func (w WordPreferenceScore) bonus(t *Token) float64 {
	bySurface := w.Table[t.Tag0]
	if bySurface == nil {
		return 0
	}
	return bySurface[t.Surface]
}

func (w WordPreferenceScore) Score(_ *Sequence, next *Token) float64 {
	return w.bonus(next)
}

func (w WordPreferenceScore) Evaluate(seq *Sequence) float64 {
	var total float64
	for i := range seq.Tokens {
		total += w.bonus(&seq.Tokens[i])
	}
	return total
}

// TrigramFeatureScore scores a trigram expansion by summing the trained
// linear-model coefficients at every feature index the encoder returns for
// (token_{i-2}, token_{i-1}, token_i).
type TrigramFeatureScore struct {
	Encoder      *FeatureEncoder
	Coefficients []float64
}

// NewTrigramFeatureScore validates that encoder is trained and that
// coefficients has exactly one entry per trained feature index, returning a
// *ConfigurationError otherwise.
func NewTrigramFeatureScore(encoder *FeatureEncoder, coefficients []float64) (*TrigramFeatureScore, error) {
	if !encoder.IsTrained() {
		return nil, newConfigurationError("trigram feature score: encoder has no feature-index map installed")
	}
	if len(coefficients) != encoder.Len() {
		return nil, newConfigurationError(
			"trigram feature score: coefficient vector length %d does not match feature-index map size %d",
			len(coefficients), encoder.Len())
	}
	return &TrigramFeatureScore{Encoder: encoder, Coefficients: coefficients}, nil
}

func (s *TrigramFeatureScore) neighbors(seq *Sequence) (tokenI, tokenJ *Token) {
	n := len(seq.Tokens)
	if n >= 1 {
		tokenJ = &seq.Tokens[n-1]
	}
	if n >= 2 {
		tokenI = &seq.Tokens[n-2]
	}
	return
}

func (s *TrigramFeatureScore) Score(seq *Sequence, next *Token) float64 {
	tokenI, tokenJ := s.neighbors(seq)
	idxs, err := s.Encoder.EncodeWord(tokenI, tokenJ, next)
	if err != nil {
		return 0
	}
	var total float64
	for _, idx := range idxs {
		total += s.Coefficients[idx]
	}
	return total
}

func (s *TrigramFeatureScore) Evaluate(seq *Sequence) float64 {
	var total float64
	tmp := &Sequence{}
	for i := range seq.Tokens {
		t := seq.Tokens[i]
		if t.Tag0 == TagBOS || t.Tag0 == TagEOS {
			tmp.Tokens = append(tmp.Tokens, t)
			continue
		}
		total += s.Score(tmp, &t)
		tmp.Tokens = append(tmp.Tokens, t)
	}
	return total
}

// CompositeScore sums a slice of ScoreFunctions; it is itself pure and
// stateless across calls.
type CompositeScore []ScoreFunction

func (c CompositeScore) Score(seq *Sequence, next *Token) float64 {
	var total float64
	for _, f := range c {
		total += f.Score(seq, next)
	}
	return total
}

func (c CompositeScore) Evaluate(seq *Sequence) float64 {
	var total float64
	for _, f := range c {
		total += f.Evaluate(seq)
	}
	return total
}
