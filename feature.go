package tagger

import (
	"strconv"
	"strings"
)

// Feature is one categorical feature tuple from FeatureEncoder, canonically
// encoded as a comparable string so it can be used directly as a map key (in
// the trained feature->index map) or compared for equality (during training
// feature counting). The encoding packs a leading feature-class tag and its
// fields behind a unit-separator byte (0x1f) that cannot appear in ordinary
// sentence text, so distinct tuples never collide.
type Feature string

const featureSep = "\x1f"

func featureKey(class int, parts ...string) Feature {
	s := strconv.Itoa(class)
	for _, p := range parts {
		s += featureSep + p
	}
	return Feature(s)
}

// Class returns the leading feature-class tag (0-8) encoded at the
// front of f. Training-time indexing (package trainer) sorts features by
// class, then by descending count within a class.
func (f Feature) Class() int {
	head := string(f)
	if i := strings.Index(head, featureSep); i >= 0 {
		head = head[:i]
	}
	class, _ := strconv.Atoi(head)
	return class
}

// FeatureEncoder maps a (token_{i-2}, token_{i-1}, token_i) trigram to a
// list of categorical feature tuples and, once trained, to the subset of
// those tuples' integer indices in an installed feature->index map.
type FeatureEncoder struct {
	trained    bool
	featureDic map[Feature]int
}

// NewFeatureEncoder builds an untrained encoder: TransformWord and
// TransformSequence work immediately (for training-time feature counting),
// EncodeWord requires SetFeatureDic first.
func NewFeatureEncoder() *FeatureEncoder {
	return &FeatureEncoder{}
}

// IsTrained reports whether a feature->index map has been installed.
func (e *FeatureEncoder) IsTrained() bool {
	return e.trained
}

// Len returns the size of the installed feature->index map, or 0 if the
// encoder is untrained. TrigramFeatureScore validates a coefficient vector
// against this before accepting it.
func (e *FeatureEncoder) Len() int {
	return len(e.featureDic)
}

// SetFeatureDic installs the feature->index map produced by training (see
// package trainer) and switches the encoder into trained mode, after which
// TransformWord silently drops any tuple not present in dic and EncodeWord
// becomes usable. It returns e for chaining.
func (e *FeatureEncoder) SetFeatureDic(dic map[Feature]int) *FeatureEncoder {
	e.featureDic = dic
	e.trained = true
	return e
}

// TransformWord returns the raw feature tuples for the trigram (tokenI,
// tokenJ, tokenK), where tokenK is the token being scored, tokenJ its
// predecessor, and tokenI (possibly nil, at sentence start) the predecessor
// of tokenJ. When the encoder is trained, tuples absent from the installed
// feature->index map are dropped.
func (e *FeatureEncoder) TransformWord(tokenI, tokenJ, tokenK *Token) []Feature {
	feats := trigramFeatures(tokenI, tokenJ, tokenK)
	if e.trained {
		feats = e.filter(feats)
	}
	return feats
}

// EncodeWord returns the integer indices (in the installed feature->index
// map) of the feature tuples for (tokenI, tokenJ, tokenK). It returns a
// *StateError if the encoder has not been trained.
func (e *FeatureEncoder) EncodeWord(tokenI, tokenJ, tokenK *Token) ([]int, error) {
	if !e.trained {
		return nil, newStateError("feature encoder: encode called before SetFeatureDic")
	}
	feats := trigramFeatures(tokenI, tokenJ, tokenK)
	idxs := make([]int, 0, len(feats))
	for _, f := range feats {
		if idx, ok := e.featureDic[f]; ok {
			idxs = append(idxs, idx)
		}
	}
	return idxs, nil
}

// TransformSequence computes the per-token feature tuples for every "real"
// token of a full BOS..EOS sequence (i.e. excluding the BOS and EOS sentinels
// themselves, which never appear as the tokenK of a feature). It is used by
// package trainer to scan a gold corpus into feature counts.
func (e *FeatureEncoder) TransformSequence(words []Token) [][]Feature {
	if len(words) < 3 {
		return nil
	}
	out := make([][]Feature, 0, len(words)-2)
	for m := 1; m <= len(words)-2; m++ {
		var tokenI *Token
		if m-2 >= 0 {
			ti := words[m-2]
			tokenI = &ti
		}
		tj := words[m-1]
		tk := words[m]
		out = append(out, e.TransformWord(tokenI, &tj, &tk))
	}
	return out
}

func (e *FeatureEncoder) filter(feats []Feature) []Feature {
	out := feats[:0:0]
	for _, f := range feats {
		if _, ok := e.featureDic[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// trigramFeatures implements the nine numbered feature classes:
//
//	0: (word_j, word_k, tag_k)
//	1: (word_j, tag_k)
//	2: (tag_j, word_k, tag_k)
//	3: (tag_j, tag_k)
//	4: (length_k)
//	5: (word_k, tag_k, is_l_start_k)
//	6: (min(8, length_j)) — only when tag_j == Unknown
//	7: (word_i, word_j, word_k) — only when token_i exists
//	8: (morph_j, morph_k) or (morph_i, morph_k) — only when tag_k is contextual
func trigramFeatures(tokenI, tokenJ, tokenK *Token) []Feature {
	feats := make([]Feature, 0, 9)

	feats = append(feats,
		featureKey(0, tokenJ.Surface, tokenK.Surface, tokenK.Tag0.String()),
		featureKey(1, tokenJ.Surface, tokenK.Tag0.String()),
		featureKey(2, tokenJ.Tag0.String(), tokenK.Surface, tokenK.Tag0.String()),
		featureKey(3, tokenJ.Tag0.String(), tokenK.Tag0.String()),
		featureKey(4, strconv.Itoa(tokenK.Length)),
		featureKey(5, tokenK.Surface, tokenK.Tag0.String(), strconv.FormatBool(tokenK.IsLStart)),
	)

	if tokenJ.Tag0 == TagUnknown {
		capped := tokenJ.Length
		if capped > 8 {
			capped = 8
		}
		feats = append(feats, featureKey(6, strconv.Itoa(capped)))
	}

	if tokenI != nil {
		feats = append(feats, featureKey(7, tokenI.Surface, tokenJ.Surface, tokenK.Surface))
	}

	if contextualTags[tokenK.Tag0] {
		switch {
		case contextualTags[tokenJ.Tag0]:
			feats = append(feats, featureKey(8, tokenJ.Morph0, tokenK.Morph0))
		case tokenI != nil && contextualTags[tokenI.Tag0]:
			feats = append(feats, featureKey(8, tokenI.Morph0, tokenK.Morph0))
		}
	}

	return feats
}
