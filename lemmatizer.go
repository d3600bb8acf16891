package tagger

// LemmaCandidate is one (stem, ending) decomposition the Lemmatizer recovers
// for a conjugated surface form, together with the stem's recovered tag
// (Verb or Adjective). Both tags may be produced for the same split when the
// stem happens to be registered as both a verb and an adjective.
type LemmaCandidate struct {
	Stem    string
	StemTag Tag
	Ending  string
}

// morphSet is the minimal membership check the Lemmatizer needs against the
// verb/adjective/eomi dictionaries. *WordDictionary satisfies it directly;
// NewLemmatizer builds a trivial one from plain string sets.
type morphSet interface {
	Contains(morph string, tag Tag) bool
}

// Lemmatizer recovers dictionary (stem, ending) pairs from a conjugated
// surface form by applying inverse-conjugation rewrite rules at every
// candidate split point.
type Lemmatizer struct {
	dict  morphSet
	rules RuleTable
}

// NewLemmatizer builds a standalone Lemmatizer over explicit verb, adjective,
// and eomi (ending) word lists and a rule table. Use this when the
// verb/adjective/eomi sets are not already held by a MorphemeDictionary;
// NewMorphemeDictionary wires a Lemmatizer that reads those sets live from
// the dictionary itself instead.
func NewLemmatizer(verbs, adjectives, eomis []string, rules RuleTable) *Lemmatizer {
	entries := map[Tag][]string{
		TagVerb:      verbs,
		TagAdjective: adjectives,
		TagEomi:      eomis,
	}
	return &Lemmatizer{dict: NewWordDictionary(entries), rules: rules}
}

// newLemmatizerOverDictionary builds a Lemmatizer that checks candidate
// stems/endings directly against dict's own Verb/Adjective/Eomi tag sets, so
// that Dictionary.Add/Remove calls are immediately reflected in
// lemmatization without rebuilding anything.
func newLemmatizerOverDictionary(dict morphSet, rules RuleTable) *Lemmatizer {
	return &Lemmatizer{dict: dict, rules: rules}
}

// splitCandidate is an intermediate (stem, ending) pair before the
// verb/adjective/eomi membership filter is applied.
type splitCandidate struct {
	stem   string
	ending string
}

// candidates enumerates every (stem, ending) split of word under the rule
// table, without yet filtering by dictionary membership: at every split
// point i it tries the non-rewriting identity split, plus every 1-, 2-, and
// 3-syllable trigger rewrite registered at that point.
func (l *Lemmatizer) candidates(word string) []splitCandidate {
	runes := []rune(word)
	n := len(runes)
	if n == 0 {
		return nil
	}

	var out []splitCandidate
	for i := 0; i < n; i++ {
		left := string(runes[:i+1])
		right := string(runes[i+1:])
		leftMinus := string(runes[:i])

		// identity split: only meaningful when there is a non-empty right side
		if i < n-1 {
			out = append(out, splitCandidate{stem: left, ending: right})
		}

		// 1-syllable trigger: the single character at position i
		trigger1 := string(runes[i])
		for _, rule := range l.rules[trigger1] {
			out = append(out, splitCandidate{
				stem:   leftMinus + rule.StemSuffix,
				ending: rule.EndingPrefix + right,
			})
		}

		// 2- and 3-syllable triggers starting at position i: the overlap
		// consumes the matching leading syllables of the right half, so the
		// ending is built from what follows the trigger (runes[i+width:]).
		seen := make(map[string]bool, 2)
		for _, width := range [2]int{2, 3} {
			if i+width > n {
				continue
			}
			trigger := string(runes[i : i+width])
			if seen[trigger] {
				continue
			}
			seen[trigger] = true
			for _, rule := range l.rules[trigger] {
				rest := string(runes[i+width:])
				out = append(out, splitCandidate{
					stem:   leftMinus + rule.StemSuffix,
					ending: rule.EndingPrefix + rest,
				})
			}
		}
	}
	return out
}

// Analyze returns every (stem, ending) decomposition of word whose ending is
// a known Eomi and whose stem is a known Verb and/or Adjective. Both
// tags are produced when the stem is registered under both.
func (l *Lemmatizer) Analyze(word string) []LemmaCandidate {
	var out []LemmaCandidate
	for _, c := range l.candidates(word) {
		if !l.dict.Contains(c.ending, TagEomi) {
			continue
		}
		if l.dict.Contains(c.stem, TagVerb) {
			out = append(out, LemmaCandidate{Stem: c.stem, StemTag: TagVerb, Ending: c.ending})
		}
		if l.dict.Contains(c.stem, TagAdjective) {
			out = append(out, LemmaCandidate{Stem: c.stem, StemTag: TagAdjective, Ending: c.ending})
		}
	}
	return out
}
