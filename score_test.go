package tagger

import "testing"

func TestMorphemePreferenceScoreCompositeTokenSumsBothMorphemes(t *testing.T) {
	table := map[Tag]map[string]float64{
		TagVerb: {"하": 1.5},
		TagEomi: {"았다": 0.5},
	}
	score := NewMorphemePreferenceScore(table)

	composite := NewCompositeToken("했다", "하", TagVerb, "았다", TagEomi, 0, true)
	if got, want := score.Score(&Sequence{}, &composite), 2.0; got != want {
		t.Errorf("composite bonus = %v, want %v (morph0 + morph1)", got, want)
	}

	simple := NewToken("공연", TagNoun, 0, true)
	if got, want := score.Score(&Sequence{}, &simple), 0.0; got != want {
		t.Errorf("unrelated simple token bonus = %v, want %v", got, want)
	}
}

func TestMorphemePreferenceScoreEvaluateSumsAcrossSequence(t *testing.T) {
	table := map[Tag]map[string]float64{
		TagNoun: {"공연": 1.0},
		TagJosa: {"을": 0.25},
		TagVerb: {"하": 1.5},
		TagEomi: {"았다": 0.5},
	}
	score := NewMorphemePreferenceScore(table)

	seq := Sequence{Tokens: []Token{
		newSentinel(TagBOS, 0),
		NewToken("공연", TagNoun, 0, true),
		NewToken("을", TagJosa, 2, false),
		NewCompositeToken("했다", "하", TagVerb, "았다", TagEomi, 3, false),
		newSentinel(TagEOS, 6),
	}}

	if got, want := score.Evaluate(&seq), 1.0+0.25+1.5+0.5; got != want {
		t.Errorf("Evaluate = %v, want %v", got, want)
	}
}
