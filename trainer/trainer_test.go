package trainer

import (
	"testing"

	tagger "github.com/lattice-nlp/tagger"
	"github.com/lattice-nlp/tagger/corpus"
)

func samplePairs() []corpus.Pair {
	return []corpus.Pair{
		{
			Sentence: "너무너무너무  는  아이오아이  의  노래  입니다",
			Morph:    "너무너무너무/Noun  는/Josa  아이오아이/Noun  의/Josa  노래/Noun  이/Adjective+ㅂ니다/Eomi",
		},
		{
			Sentence: "빙수  고명으로",
			Morph:    "빙수/Noun  고명/Noun+으로/Josa",
		},
	}
}

func TestScanFeaturesIndexesByClassThenCount(t *testing.T) {
	enc := tagger.NewFeatureEncoder()
	result, skipped := ScanFeatures(samplePairs(), enc, 1)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped pairs: %v", skipped)
	}
	if len(result.IndexToFeature) == 0 {
		t.Fatal("expected at least one indexed feature")
	}
	if len(result.FeatureToIndex) != len(result.IndexToFeature) {
		t.Fatalf("FeatureToIndex has %d entries, IndexToFeature has %d", len(result.FeatureToIndex), len(result.IndexToFeature))
	}

	for i := 1; i < len(result.IndexToFeature); i++ {
		prevClass := result.IndexToFeature[i-1].Class()
		class := result.IndexToFeature[i].Class()
		if class < prevClass {
			t.Fatalf("feature classes out of order at index %d: %d then %d", i, prevClass, class)
		}
		if class == prevClass && result.IndexToCount[i] > result.IndexToCount[i-1] {
			t.Fatalf("counts not descending within class %d at index %d", class, i)
		}
	}

	for idx, f := range result.IndexToFeature {
		if result.FeatureToIndex[f] != idx {
			t.Errorf("FeatureToIndex[%v] = %d, want %d", f, result.FeatureToIndex[f], idx)
		}
	}
}

func TestScanFeaturesDropsBelowMinCount(t *testing.T) {
	enc := tagger.NewFeatureEncoder()
	result, _ := ScanFeatures(samplePairs(), enc, 1000)
	if len(result.IndexToFeature) != 0 {
		t.Errorf("expected no features to survive a min count of 1000, got %d", len(result.IndexToFeature))
	}
}

func TestScanFeaturesSkipsMalformedPairs(t *testing.T) {
	enc := tagger.NewFeatureEncoder()
	pairs := append(samplePairs(), corpus.Pair{Sentence: "가나다", Morph: "가/Noun+나/Josa+다/Eomi"})
	_, skipped := ScanFeatures(pairs, enc, 1)
	if len(skipped) != 1 {
		t.Fatalf("got %d skipped pairs, want 1", len(skipped))
	}
}

func TestFitParametersIsAnExplicitStub(t *testing.T) {
	enc := tagger.NewFeatureEncoder()
	_, err := FitParameters(samplePairs(), enc, 10)
	if err == nil {
		t.Fatal("expected FitParameters to return an error (unimplemented)")
	}
}
