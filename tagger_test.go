package tagger

import (
	"context"
	"testing"
)

// buildDemoTagger assembles a small dictionary sufficient to exercise the
// scenarios below, mirroring the shape of the demo resource set shipped in
// package dictres/demo but inlined here so this package's tests do not
// depend on dictres (avoiding an import cycle: dictres imports tagger).
func buildDemoTagger(t *testing.T) *Tagger {
	t.Helper()

	entries := map[Tag][]string{
		TagNoun:      {"너무너무너무", "아이오아이", "노래", "공연", "고양이", "파이썬"},
		TagJosa:      {"는", "의", "을", "가", "이", "에서"},
		TagVerb:      {"공연", "하"},
		TagAdjective: {"파랗", "있", "이"},
		TagEomi:      {"다", "았다", "ㅆ다", "습니다", "ㅂ니다"},
	}
	rules := RuleTable{
		"했": {{StemSuffix: "하", EndingPrefix: "았"}},
		"랬": {{StemSuffix: "랗", EndingPrefix: "았"}},
		"입": {{StemSuffix: "이", EndingPrefix: "ㅂ"}},
		"있": {{StemSuffix: "이", EndingPrefix: "ㅆ"}},
	}
	dict := NewMorphemeDictionary(entries, rules)
	scorer := CompositeScore{NewRegularizationScore()}
	return NewTagger(dict, scorer, Config{})
}

// morphtags renders a decoded sequence's non-sentinel tokens in the corpus
// annotation style ("이/Adjective+ㅂ니다/Eomi"), which keeps the expected
// tokenizations below readable.
func morphtags(seq Sequence) []string {
	var out []string
	for _, tok := range seq.Tokens {
		if tok.Tag0 == TagBOS || tok.Tag0 == TagEOS {
			continue
		}
		s := tok.Morph0 + "/" + tok.Tag0.String()
		if tok.HasMorph1() {
			s += "+" + tok.Morph1 + "/" + tok.Tag1.String()
		}
		out = append(out, s)
	}
	return out
}

func assertBest(t *testing.T, tg *Tagger, sentence string, want []string) {
	t.Helper()
	seqs, err := tg.Tag(context.Background(), sentence)
	if err != nil {
		t.Fatalf("Tag(%q): %v", sentence, err)
	}
	if len(seqs) == 0 {
		t.Fatalf("Tag(%q) returned no sequences", sentence)
	}
	got := morphtags(seqs[0])
	if len(got) != len(want) {
		t.Fatalf("Tag(%q) best = %v, want %v", sentence, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tag(%q) best = %v, want %v", sentence, got, want)
		}
	}
}

func TestTagEndToEndSentence(t *testing.T) {
	tg := buildDemoTagger(t)
	assertBest(t, tg, "너무너무너무는 아이오아이의 노래 입니다", []string{
		"너무너무너무/Noun",
		"는/Josa",
		"아이오아이/Noun",
		"의/Josa",
		"노래/Noun",
		"이/Adjective+ㅂ니다/Eomi",
	})
}

func TestTagLemmatizedVerb(t *testing.T) {
	tg := buildDemoTagger(t)
	assertBest(t, tg, "공연을했다", []string{
		"공연/Noun",
		"을/Josa",
		"하/Verb+았다/Eomi",
	})
}

func TestTagAdjectiveExactForm(t *testing.T) {
	tg := buildDemoTagger(t)
	// The lemmatizer yields both 있+다 and 이+ㅆ다 over the same span; the
	// identity split comes first in insertion order and the stable beam sort
	// keeps it on top at equal score.
	assertBest(t, tg, "있다", []string{"있/Adjective+다/Eomi"})
}

func TestTagLemmatizedTriggerSyllable(t *testing.T) {
	tg := buildDemoTagger(t)
	assertBest(t, tg, "파랬다", []string{"파랗/Adjective+았다/Eomi"})
}

func TestTagUnknownWord(t *testing.T) {
	tg := buildDemoTagger(t)
	seqs, err := tg.Tag(context.Background(), "xyz")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	sawUnknown := false
	for _, tok := range seqs[0].Tokens {
		if tok.Tag0 == TagUnknown {
			sawUnknown = true
		}
	}
	if !sawUnknown {
		t.Errorf("expected at least one Unknown token for an out-of-dictionary word, got %+v", seqs[0].Tokens)
	}
}

func TestTagExactMatchEojeol(t *testing.T) {
	dict := NewMorphemeDictionary(map[Tag][]string{
		TagNoun: {"아이오아이", "아이"},
	}, nil)
	tg := NewTagger(dict, CompositeScore{NewRegularizationScore()}, Config{PreferExactMatch: true})
	seqs, err := tg.Tag(context.Background(), "아이오아이")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	best := seqs[0]
	var nonSentinel int
	for _, tok := range best.Tokens {
		if tok.Tag0 != TagBOS && tok.Tag0 != TagEOS {
			nonSentinel++
		}
	}
	if nonSentinel != 1 {
		t.Errorf("expected a single whole-eojeol token for an exact dictionary match, got %d tokens", nonSentinel)
	}
}

func TestTagBatchPreservesOrder(t *testing.T) {
	tg := buildDemoTagger(t)
	sentences := []string{"노래", "공연", "xyz", "있다"}
	results := tg.TagBatch(context.Background(), sentences)
	if len(results) != len(sentences) {
		t.Fatalf("TagBatch returned %d results, want %d", len(results), len(sentences))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("sentence %d (%q): %v", i, sentences[i], r.Err)
		}
		if len(r.Sequences) == 0 {
			t.Errorf("sentence %d (%q): no sequences returned", i, sentences[i])
		}
	}
}

func TestTagBatchCancelledContext(t *testing.T) {
	tg := buildDemoTagger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := tg.TagBatch(ctx, []string{"노래"})
	if results[0].Err == nil {
		t.Error("expected an error from a pre-cancelled context")
	}
}

// A MaxTokenLen too short for any dictionary token leaves the lattice empty,
// and the admission rule then pins the Unknown chain to the window's lower
// bound: a continuation Unknown starting strictly above the bound is
// rejected, so [0,1)+[1,3) is the only two-token tiling of three characters
// under MaxTokenLen 2, never [0,2)+[2,3).
func TestDecodeUnknownChainPinnedToWindowBound(t *testing.T) {
	entries := map[Tag][]string{TagNoun: {"고양이"}}
	dict := NewMorphemeDictionary(entries, nil)
	scorer := CompositeScore{NewRegularizationScore()}
	tg := NewTagger(dict, scorer, Config{MaxTokenLen: 2})

	seqs, err := tg.Tag(context.Background(), "고양이")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	for _, seq := range seqs {
		var spans [][2]int
		for _, tok := range seq.Tokens {
			if tok.Tag0 == TagUnknown {
				spans = append(spans, [2]int{tok.Begin, tok.End})
			}
		}
		if len(spans) != 2 || spans[0] != [2]int{0, 1} || spans[1] != [2]int{1, 3} {
			t.Errorf("unknown spans = %v, want [[0 1] [1 3]]", spans)
		}
	}
}
