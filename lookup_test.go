package tagger

import "testing"

func newTestMorphemeDictionary() *MorphemeDictionary {
	return NewMorphemeDictionary(map[Tag][]string{
		TagNoun:      {"아이", "아이오아이", "노래", "공연"},
		TagJosa:      {"는", "의", "을"},
		TagVerb:      {"하"},
		TagAdjective: {"이"},
		TagEomi:      {"았다", "ㅂ니다"},
		TagAdverb:    {"너무"},
	}, RuleTable{
		"했": {{StemSuffix: "하", EndingPrefix: "았"}},
		"입": {{StemSuffix: "이", EndingPrefix: "ㅂ"}},
	})
}

func TestExactMatchBypassesSubstringExpansion(t *testing.T) {
	dict := newTestMorphemeDictionary()
	for _, lk := range []EojeolLookup{
		&LRLookup{Dict: dict, PreferExactMatch: true},
		&SubwordLookup{Dict: dict, PreferExactMatch: true},
		&MorphemeLookup{Dict: dict, PreferExactMatch: true},
	} {
		tokens := lk.Lookup("아이오아이", 0)
		if len(tokens) != 1 {
			t.Errorf("%T: exact match returned %d tokens, want 1", lk, len(tokens))
			continue
		}
		tok := tokens[0]
		if tok.Morph0 != "아이오아이" || tok.Tag0 != TagNoun || !tok.IsLStart {
			t.Errorf("%T: unexpected exact-match token: %+v", lk, tok)
		}
	}
}

func TestLRLookupNounJosaComposite(t *testing.T) {
	dict := newTestMorphemeDictionary()
	lk := &LRLookup{Dict: dict}

	tokens := lk.Lookup("아이오아이의", 7)
	if len(tokens) != 1 {
		t.Fatalf("Lookup(아이오아이의) = %v, want the single Noun+Josa composite", tokens)
	}
	tok := tokens[0]
	if tok.Morph0 != "아이오아이" || tok.Tag0 != TagNoun || tok.Morph1 != "의" || tok.Tag1 != TagJosa {
		t.Errorf("unexpected composite: %+v", tok)
	}
	if tok.Begin != 7 || tok.End != 13 || !tok.IsLStart {
		t.Errorf("composite span = [%d,%d), want [7,13): %+v", tok.Begin, tok.End, tok)
	}
}

func TestLRLookupIndependentHalves(t *testing.T) {
	dict := newTestMorphemeDictionary()
	lk := &LRLookup{Dict: dict}

	// 노래아이 splits into two nouns; neither half is a Josa, so both come
	// back as independent single-morpheme tokens.
	tokens := lk.Lookup("노래아이", 0)
	if len(tokens) != 2 {
		t.Fatalf("Lookup(노래아이) = %v, want two independent tokens", tokens)
	}
	if tokens[0].Morph0 != "노래" || tokens[0].Begin != 0 || !tokens[0].IsLStart {
		t.Errorf("unexpected left token: %+v", tokens[0])
	}
	if tokens[1].Morph0 != "아이" || tokens[1].Begin != 2 || tokens[1].IsLStart {
		t.Errorf("unexpected right token: %+v", tokens[1])
	}
}

func TestSubwordLookupEnumeratesEverySubstring(t *testing.T) {
	dict := newTestMorphemeDictionary()
	lk := &SubwordLookup{Dict: dict}

	tokens := lk.Lookup("아이오아이", 0)
	counts := map[string]int{}
	for _, tok := range tokens {
		counts[tok.Surface]++
	}
	if counts["아이오아이"] != 1 {
		t.Errorf("full-span noun emitted %d times, want 1", counts["아이오아이"])
	}
	// 아이 appears as a substring at [0,2) and [3,5).
	if counts["아이"] != 2 {
		t.Errorf("아이 emitted %d times, want 2", counts["아이"])
	}
}

func TestMorphemeLookupJosaRequiresNounEnd(t *testing.T) {
	dict := newTestMorphemeDictionary()
	lk := &MorphemeLookup{Dict: dict}

	// 노래는: 노래 is a noun ending at 2, so 는 at [2,3) is admitted.
	tokens := lk.Lookup("노래는", 0)
	var sawJosa bool
	for _, tok := range tokens {
		if tok.Tag0 == TagJosa && tok.Surface == "는" && tok.Begin == 2 {
			sawJosa = true
		}
	}
	if !sawJosa {
		t.Errorf("Lookup(노래는) = %v, want a 는/Josa token after the noun", tokens)
	}

	// 는아이: no noun ends at position 0, so the leading 는 is not admitted
	// as a Josa.
	tokens = lk.Lookup("는아이", 0)
	for _, tok := range tokens {
		if tok.Tag0 == TagJosa {
			t.Errorf("Lookup(는아이) admitted a Josa with no preceding noun: %+v", tok)
		}
	}
}

func TestMorphemeLookupEmitsLemmatizedComposites(t *testing.T) {
	dict := newTestMorphemeDictionary()
	lk := &MorphemeLookup{Dict: dict}

	tokens := lk.Lookup("공연을했다", 0)
	var composite *Token
	for i := range tokens {
		if tokens[i].HasMorph1() && tokens[i].Tag1 == TagEomi {
			composite = &tokens[i]
		}
	}
	if composite == nil {
		t.Fatalf("Lookup(공연을했다) = %v, want a lemmatized stem+Eomi composite", tokens)
	}
	if composite.Morph0 != "하" || composite.Tag0 != TagVerb || composite.Morph1 != "았다" {
		t.Errorf("unexpected composite: %+v", composite)
	}
	if composite.Begin != 3 || composite.End != 5 {
		t.Errorf("composite span = [%d,%d), want [3,5)", composite.Begin, composite.End)
	}
}

func TestMorphemeLookupStandaloneTagsOnly(t *testing.T) {
	dict := newTestMorphemeDictionary()
	lk := &MorphemeLookup{Dict: dict}

	// 하 is a Verb; Verb is not a standalone tag, so a bare 하 never appears
	// as a single-morpheme token.
	tokens := lk.Lookup("노래하", 0)
	for _, tok := range tokens {
		if tok.Tag0 == TagVerb && !tok.HasMorph1() {
			t.Errorf("Lookup emitted a bare Verb token: %+v", tok)
		}
	}

	// 너무 is an Adverb, which is standalone by default.
	tokens = lk.Lookup("너무", 0)
	var sawAdverb bool
	for _, tok := range tokens {
		if tok.Tag0 == TagAdverb {
			sawAdverb = true
		}
	}
	if !sawAdverb {
		t.Errorf("Lookup(너무) = %v, want an Adverb token", tokens)
	}
}

func TestMorphemeLookupHonorsMaxLen(t *testing.T) {
	dict := newTestMorphemeDictionary()
	lk := &MorphemeLookup{Dict: dict, MaxLen: 4}

	// 아이오아이 is five characters, one past MaxLen, so only its shorter
	// substrings are found.
	tokens := lk.Lookup("아이오아이", 0)
	for _, tok := range tokens {
		if tok.Length > 4 {
			t.Errorf("token longer than MaxLen: %+v", tok)
		}
	}
}
