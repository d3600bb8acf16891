// Package demo embeds a small but complete Korean dictionary and rule table,
// sufficient to exercise dictionary lookup, lemmatization, and decoding
// end to end without requiring a caller to supply resource files of their
// own.
package demo

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	tagger "github.com/lattice-nlp/tagger"
	"github.com/lattice-nlp/tagger/dictres"
)

//go:embed data/Noun.txt data/Josa.txt data/Verb.txt data/Adjective.txt data/Eomi.txt data/rules.json
var files embed.FS

// Entries returns the embedded demo dictionary's tag -> morphemes map. It
// ranges over tagger.MorphTags() and derives each resource's embedded path
// from the tag's own String(), the same "<tag>.txt" convention package
// dictres's on-disk loader uses; a tag with no embedded file is simply
// absent from the result.
func Entries() (map[tagger.Tag][]string, error) {
	entries := make(map[tagger.Tag][]string)
	for _, tag := range tagger.MorphTags() {
		name := tag.String() + ".txt"
		raw, err := files.ReadFile("data/" + name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", name, err)
		}
		var morphs []string
		for _, line := range strings.Split(string(raw), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			morphs = append(morphs, strings.Fields(line)[0])
		}
		entries[tag] = morphs
	}
	return entries, nil
}

// Rules returns the embedded demo rule table.
func Rules() (tagger.RuleTable, error) {
	raw, err := files.ReadFile("data/rules.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded rules.json: %w", err)
	}
	return dictres.ParseRuleTableJSON(raw)
}

// Dictionary builds the ready-to-use *tagger.MorphemeDictionary over the
// embedded demo data.
func Dictionary() (*tagger.MorphemeDictionary, error) {
	entries, err := Entries()
	if err != nil {
		return nil, err
	}
	rules, err := Rules()
	if err != nil {
		return nil, err
	}
	return tagger.NewMorphemeDictionary(entries, rules), nil
}

// Tagger builds a ready-to-use *tagger.Tagger over the embedded demo data
// and a RegularizationScore scorer, the minimum viable configuration for
// trying the tagger without any resource files on disk.
func Tagger() (*tagger.Tagger, error) {
	dict, err := Dictionary()
	if err != nil {
		return nil, err
	}
	scorer := tagger.CompositeScore{tagger.NewRegularizationScore()}
	return tagger.NewTagger(dict, scorer, tagger.Config{}), nil
}
