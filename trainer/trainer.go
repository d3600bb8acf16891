// Package trainer scans a gold corpus through a FeatureEncoder to build the
// feature -> index map TrigramFeatureScore needs.
//
// Parameter estimation is left unimplemented: FitParameters returns an
// error rather than silently handing back a zero vector that would look
// trained. Feature scanning and indexing are complete and tested.
package trainer

import (
	"sort"

	tagger "github.com/lattice-nlp/tagger"
	"github.com/lattice-nlp/tagger/corpus"
)

// ScanResult is the outcome of ScanFeatures: a trained feature -> index map
// ready for FeatureEncoder.SetFeatureDic, alongside the inverse index ->
// feature mapping and per-feature occurrence counts, kept for diagnostics.
type ScanResult struct {
	FeatureToIndex map[tagger.Feature]int
	IndexToFeature []tagger.Feature
	IndexToCount   []int
}

// ScanFeatures scans every (sentence, morph-annotation) pair in pairs
// through encoder's untrained Transform mode, counts occurrences of every
// resulting feature tuple, drops any tuple occurring fewer than minCount
// times, and indexes the survivors, sorted by ascending feature class then
// descending count within a class.
//
// A pair whose annotation is malformed (ParseWords returns an error) is
// skipped rather than aborting the whole scan: one bad sentence in a large
// hand-annotated corpus should not sink the scan. skipped carries one entry
// per skipped pair's error.
func ScanFeatures(pairs []corpus.Pair, encoder *tagger.FeatureEncoder, minCount int) (result ScanResult, skipped []error) {
	counts := make(map[tagger.Feature]int)

	for _, pair := range pairs {
		words, err := corpus.ParseWords(pair)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		// Composite gold words are flattened into their single-morpheme parts
		// before transforming, so a Noun+Josa word contributes the same
		// morpheme-level trigrams however the annotator chose to segment it.
		words = tagger.Flatten(words)
		for _, features := range encoder.TransformSequence(words) {
			for _, f := range features {
				counts[f]++
			}
		}
	}

	if minCount < 1 {
		minCount = 1
	}
	kept := make([]tagger.Feature, 0, len(counts))
	for f, c := range counts {
		if c >= minCount {
			kept = append(kept, f)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		ci, cj := kept[i].Class(), kept[j].Class()
		if ci != cj {
			return ci < cj
		}
		if counts[kept[i]] != counts[kept[j]] {
			return counts[kept[i]] > counts[kept[j]]
		}
		return kept[i] < kept[j]
	})

	result = ScanResult{
		FeatureToIndex: make(map[tagger.Feature]int, len(kept)),
		IndexToFeature: kept,
		IndexToCount:   make([]int, len(kept)),
	}
	for idx, f := range kept {
		result.FeatureToIndex[f] = idx
		result.IndexToCount[idx] = counts[f]
	}
	return result, skipped
}

// FitParameters is an explicit stub: which estimation scheme the linear
// model should use (perceptron-style averaging, margin-based, gradient
// descent against the beam's own score) is still an open decision, so this
// function returns an error rather than a plausible-looking all-zero or
// randomly initialized coefficient vector, and a caller cannot mistake
// "untrained" for "trained to predict nothing".
func FitParameters(pairs []corpus.Pair, encoder *tagger.FeatureEncoder, maxEpochs int) ([]float64, error) {
	return nil, tagger.NewConfigurationError(
		"trainer: FitParameters is not implemented (no parameter-estimation scheme has been chosen)")
}
