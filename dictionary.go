package tagger

// RuleTable maps a trigger syllable (one to three characters) to the set of
// (stem-suffix, ending-prefix) rewrite pairs the Lemmatizer applies when it
// sees that trigger at a candidate split point.
type RuleTable map[string][]RulePair

// RulePair is one inverse-conjugation rewrite: a trigger is replaced by
// StemSuffix on the stem side and EndingPrefix on the ending side.
type RulePair struct {
	StemSuffix   string
	EndingPrefix string
}

// WordDictionary is a mapping tag -> set of morphemes. It is the base
// dictionary variant: lookups only ever return single-morpheme tokens.
// Built once from resource files (see package dictres), optionally mutated by
// Add/Remove before decoding, and read-only during decoding.
type WordDictionary struct {
	byTag map[Tag]map[string]bool
}

// NewWordDictionary builds an empty dictionary. entries, if non-nil, seeds it
// with tag -> morphemes, the shape the resource loaders in package dictres
// produce.
func NewWordDictionary(entries map[Tag][]string) *WordDictionary {
	d := &WordDictionary{byTag: make(map[Tag]map[string]bool)}
	for tag, morphs := range entries {
		set := make(map[string]bool, len(morphs))
		for _, m := range morphs {
			set[m] = true
		}
		d.byTag[tag] = set
	}
	return d
}

// TagsOf returns every tag whose set contains morph. Order is insertion order
// over allTags, which is stable for a given process but otherwise
// unspecified
func (d *WordDictionary) TagsOf(morph string) []Tag {
	var tags []Tag
	for _, t := range allTags {
		if d.byTag[t][morph] {
			tags = append(tags, t)
		}
	}
	return tags
}

// Contains reports whether morph is registered under tag.
func (d *WordDictionary) Contains(morph string, tag Tag) bool {
	return d.byTag[tag][morph]
}

// Lookup returns one Token per tag in TagsOf(morph), each a single-morpheme
// token spanning [begin, begin+len(morph)).
func (d *WordDictionary) Lookup(morph string, begin int, isLStart bool) []Token {
	tags := d.TagsOf(morph)
	tokens := make([]Token, 0, len(tags))
	for _, t := range tags {
		tokens = append(tokens, NewToken(morph, t, begin, isLStart))
	}
	return tokens
}

// Add registers morphs under tag. It fails with a *ConfigurationError when
// tag is not one of the closed tag-set names and force is false; on failure
// the dictionary is left unchanged.
func (d *WordDictionary) Add(morphs []string, tag Tag, force bool) error {
	if !force {
		if _, known := tagNames[tag]; !known {
			return newConfigurationError("dictionary: add: unknown tag %v", tag)
		}
	}
	set := d.byTag[tag]
	if set == nil {
		set = make(map[string]bool, len(morphs))
		d.byTag[tag] = set
	}
	for _, m := range morphs {
		set[m] = true
	}
	return nil
}

// Remove unregisters morphs from tag. It fails with a *ConfigurationError
// when tag is unknown; on failure the dictionary is left unchanged.
func (d *WordDictionary) Remove(morphs []string, tag Tag) error {
	if _, known := tagNames[tag]; !known {
		return newConfigurationError("dictionary: remove: unknown tag %v", tag)
	}
	set := d.byTag[tag]
	if set == nil {
		return nil
	}
	for _, m := range morphs {
		delete(set, m)
	}
	return nil
}

// MorphemeDictionary layers a rule table and a Lemmatizer on top of
// WordDictionary. Its Lookup additionally emits one two-morpheme Token per
// (stem, ending) candidate the Lemmatizer recovers from morph.
type MorphemeDictionary struct {
	*WordDictionary
	lemmatizer *Lemmatizer
}

// NewMorphemeDictionary builds a MorphemeDictionary over entries (tag ->
// morphemes, as NewWordDictionary) and rules (the trigger -> rewrite-pair
// table). The verb/adjective/eomi sets the Lemmatizer checks candidates
// against are read live from the dictionary's own Verb/Adjective/Eomi tag
// sets, so dictionary mutations via Add/Remove are immediately visible to
// subsequent lemmatization.
func NewMorphemeDictionary(entries map[Tag][]string, rules RuleTable) *MorphemeDictionary {
	wd := NewWordDictionary(entries)
	md := &MorphemeDictionary{WordDictionary: wd}
	md.lemmatizer = newLemmatizerOverDictionary(md, rules)
	return md
}

// Lookup returns every single-morpheme Token WordDictionary.Lookup would
// produce, plus one two-morpheme Token per (stem, ending) the Lemmatizer
// recovers from morph, each spanning [begin, begin+len(morph)) as a whole.
func (d *MorphemeDictionary) Lookup(morph string, begin int, isLStart bool) []Token {
	tokens := d.WordDictionary.Lookup(morph, begin, isLStart)
	for _, cand := range d.lemmatizer.Analyze(morph) {
		surface := morph
		tokens = append(tokens, NewCompositeToken(surface, cand.Stem, cand.StemTag, cand.Ending, TagEomi, begin, isLStart))
	}
	return tokens
}

// Lemmatize exposes the dictionary's Lemmatizer directly, for callers (such
// as EojeolLookup) that need stem/ending candidates without going through a
// full morpheme lookup.
func (d *MorphemeDictionary) Lemmatize(word string) []LemmaCandidate {
	return d.lemmatizer.Analyze(word)
}
