// Package corpus reads the blank-line-separated, eojeol/morph-annotated
// corpus format used for training feature scans: a Reader streams
// whole-sentence (eojeol-text, morph-annotation) Pairs out of a
// tab-separated corpus file, and ParseWords turns one such Pair into the
// tagger.Token sequence (BOS..EOS) its annotation encodes.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tagger "github.com/lattice-nlp/tagger"
)

// Pair is one whole sentence's accumulated eojeol text and morph annotation,
// with eojeols joined by a double space and the words inside one eojeol by a
// single space.
//
//	Sentence: "너무너무너무 는  아이오아이 의  노래  입니다"
//	Morph:    "너무너무너무/Noun 는/Josa  아이오아이/Noun 의/Josa  노래/Noun  이/Adjective+ㅂ니다/Eomi"
type Pair struct {
	Sentence string
	Morph    string
}

// Reader streams Pairs out of a tab-separated corpus file: every non-blank
// line holds one eojeol, its morph annotation at column MorphColumn
// (0-based); a blank line ends one sentence's run of accumulated eojeols.
type Reader struct {
	// MorphColumn is the 0-based column holding the morph annotation.
	// Zero selects the default, column 1.
	MorphColumn int
	// Sep is the column separator. Empty selects the default, "\t".
	Sep string
}

func (r Reader) morphColumn() int {
	if r.MorphColumn > 0 {
		return r.MorphColumn
	}
	return 1
}

func (r Reader) sep() string {
	if r.Sep != "" {
		return r.Sep
	}
	return "\t"
}

// ReadFile reads every sentence Pair out of the file at path.
func (r Reader) ReadFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	pairs, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pairs, nil
}

// Read streams Pairs out of src. A line whose column count does not reach
// MorphColumn, or whose eojeol or morph field is effectively empty, is
// skipped rather than treated as an error: hand-maintained corpora
// routinely carry short or malformed rows, and one bad row should not sink
// the whole scan (mirroring the skip-with-diagnostic posture of package
// dictres's rule-file loader).
func (r Reader) Read(src io.Reader) ([]Pair, error) {
	col := r.morphColumn()
	sep := r.sep()

	var pairs []Pair
	var eojeols, morphs []string

	flush := func() {
		if len(eojeols) == 0 {
			return
		}
		pairs = append(pairs, Pair{
			Sentence: strings.Join(eojeols, "  "),
			Morph:    strings.Join(morphs, "  "),
		})
		eojeols, morphs = nil, nil
	}

	sc := bufio.NewScanner(src)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		fields := strings.Split(line, sep)
		if len(fields) <= col {
			continue
		}
		eojeol, morph := fields[0], fields[col]
		if strings.TrimSpace(eojeol) == "" || len(strings.TrimSpace(morph)) < 3 {
			continue
		}
		eojeols = append(eojeols, eojeol)
		morphs = append(morphs, morph)
	}
	flush()
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}
	return pairs, nil
}

// splitMorphtag decodes one "morph/tag" segment of a morph annotation.
func splitMorphtag(morphtag string) (morph string, tag tagger.Tag, err error) {
	morph, tagName, ok := strings.Cut(morphtag, "/")
	if !ok {
		return "", 0, fmt.Errorf("corpus: malformed morph/tag segment %q", morphtag)
	}
	tag, ok = tagger.TagByName(tagName)
	if !ok {
		return "", 0, fmt.Errorf("corpus: unrecognized tag name %q in segment %q", tagName, morphtag)
	}
	return morph, tag, nil
}

// ParseWords decodes one Pair into the BOS..EOS Token sequence its
// annotation encodes. Every token's Length is taken directly from the
// corpus word's own rune count: gold corpus data already reflects the true
// surface span, conjugation contraction and conjoining jamo included.
//
// It returns a *tagger.InputError when any single eojeol word's annotation
// names three or more morphemes.
func ParseWords(p Pair) ([]tagger.Token, error) {
	eojeols := strings.Split(p.Sentence, "  ")
	morphEojeols := strings.Split(p.Morph, "  ")
	if len(eojeols) != len(morphEojeols) {
		return nil, fmt.Errorf("corpus: eojeol count %d does not match morph-annotation count %d", len(eojeols), len(morphEojeols))
	}

	tokens := []tagger.Token{{Tag0: tagger.TagBOS}}
	begin := 0
	for ei, eojeolWords := range eojeols {
		words := strings.Fields(eojeolWords)
		morphWords := strings.Fields(morphEojeols[ei])
		if len(words) != len(morphWords) {
			return nil, fmt.Errorf("corpus: eojeol %q has %d words but its annotation has %d", eojeolWords, len(words), len(morphWords))
		}

		for wi, word := range words {
			morphtags := strings.Split(morphWords[wi], "+")
			n := len([]rune(word))
			end := begin + n
			isLStart := wi == 0

			tok := tagger.Token{Surface: word, Begin: begin, End: end, Length: n, IsLStart: isLStart}
			switch len(morphtags) {
			case 1:
				morph0, tag0, err := splitMorphtag(morphtags[0])
				if err != nil {
					return nil, err
				}
				tok.Morph0, tok.Tag0 = morph0, tag0
			case 2:
				morph0, tag0, err := splitMorphtag(morphtags[0])
				if err != nil {
					return nil, err
				}
				morph1, tag1, err := splitMorphtag(morphtags[1])
				if err != nil {
					return nil, err
				}
				tok.Morph0, tok.Tag0 = morph0, tag0
				tok.Morph1, tok.Tag1 = morph1, tag1
			default:
				return nil, tagger.NewInputError("corpus: word %q consists of three or more morphemes (%q)", word, morphWords[wi])
			}

			tokens = append(tokens, tok)
			begin = end
		}
	}
	tokens = append(tokens, tagger.Token{Tag0: tagger.TagEOS, Begin: begin, End: begin})
	return tokens, nil
}
