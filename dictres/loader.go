// Package dictres loads dictionary and rule-table resources from plain text
// and JSON files on disk into the shapes package tagger's constructors
// expect (map[tagger.Tag][]string and tagger.RuleTable). It deliberately
// returns diagnostics rather than logging directly, so a caller embedding
// the tagger in a server or batch job controls where warnings go.
package dictres

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tagger "github.com/lattice-nlp/tagger"
)

// Diagnostic is one non-fatal problem noticed while loading a resource file:
// a rule line with the wrong column count, or trailing columns on a
// dictionary line. Loading continues
// past a Diagnostic; it only stops on a hard I/O or format error.
type Diagnostic struct {
	File string
	Line int
	Msg  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Msg)
}

// LoadDictionaryEntries reads one morpheme-per-line *.txt file per tag out
// of dir (e.g. dir/Noun.txt, dir/Josa.txt, the tag's own tagger.Tag.String())
// and returns the tag -> morphemes map tagger.NewWordDictionary /
// tagger.NewMorphemeDictionary expect. Only the leading token of each line
// (before any whitespace) is taken, so a file may carry counts or notes in
// trailing columns. A missing file for a given tag is not an error: that tag
// is simply absent from the result. Blank lines and lines starting with "#"
// are skipped.
func LoadDictionaryEntries(dir string) (map[tagger.Tag][]string, []Diagnostic, error) {
	entries := make(map[tagger.Tag][]string)
	var diags []Diagnostic

	for _, tag := range tagger.MorphTags() {
		path := filepath.Join(dir, tag.String()+".txt")
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, diags, fmt.Errorf("open %s: %w", path, err)
		}

		morphs, fileDiags, err := scanMorphemeFile(path, f)
		f.Close()
		if err != nil {
			return nil, diags, err
		}
		diags = append(diags, fileDiags...)
		if len(morphs) > 0 {
			entries[tag] = morphs
		}
	}
	return entries, diags, nil
}

func scanMorphemeFile(path string, f *os.File) ([]string, []Diagnostic, error) {
	var morphs []string
	var diags []Diagnostic

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 1 {
			diags = append(diags, Diagnostic{File: path, Line: lineNo, Msg: "trailing columns ignored: " + line})
		}
		morphs = append(morphs, fields[0])
	}
	if err := sc.Err(); err != nil {
		return nil, diags, fmt.Errorf("scan %s: %w", path, err)
	}
	return morphs, diags, nil
}

// LoadRuleTableText reads a whitespace-delimited rule file, one rewrite per
// line, of the form:
//
//	<trigger> <stemSuffix> <endingPrefix>
//
// e.g. "했 하 았". A line with any column count other than three is reported
// as a Diagnostic and skipped rather than aborting the load, since a single
// bad line in a large hand-maintained rule file should not sink the whole
// resource.
func LoadRuleTableText(path string) (tagger.RuleTable, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	table := make(tagger.RuleTable)
	var diags []Diagnostic

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			diags = append(diags, Diagnostic{File: path, Line: lineNo, Msg: "want '<trigger> <stemSuffix> <endingPrefix>', got: " + line})
			continue
		}
		table[fields[0]] = append(table[fields[0]], tagger.RulePair{StemSuffix: fields[1], EndingPrefix: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, diags, fmt.Errorf("scan %s: %w", path, err)
	}
	return table, diags, nil
}

// WriteRuleTableText serializes table back into the three-column text format
// LoadRuleTableText reads, one rewrite per line.
func WriteRuleTableText(path string, table tagger.RuleTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for trigger, pairs := range table {
		for _, p := range pairs {
			fmt.Fprintf(w, "%s %s %s\n", trigger, p.StemSuffix, p.EndingPrefix)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ruleTableJSON is the on-disk shape ParseRuleTableJSON decodes: trigger ->
// list of "stemSuffix+endingPrefix" strings.
type ruleTableJSON map[string][]string

// ParseRuleTableJSON decodes a rule table expressed as JSON, e.g.:
//
//	{"했": ["하+았"], "랬": ["랗+았"]}
//
// This is the format package dictres/demo embeds, since it round-trips cleanly through encoding/json without the ambiguity a
// hand-edited text format invites. It takes raw bytes rather than a path so
// callers reading an embedded or otherwise in-memory resource (see
// dictres/demo) do not need a filesystem path of their own.
func ParseRuleTableJSON(raw []byte) (tagger.RuleTable, error) {
	var parsed ruleTableJSON
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse rule table json: %w", err)
	}

	table := make(tagger.RuleTable, len(parsed))
	for trigger, rewrites := range parsed {
		for _, rewrite := range rewrites {
			stem, ending, ok := strings.Cut(rewrite, "+")
			if !ok {
				return nil, fmt.Errorf("trigger %q: rewrite missing '+' separator: %q", trigger, rewrite)
			}
			table[trigger] = append(table[trigger], tagger.RulePair{StemSuffix: stem, EndingPrefix: ending})
		}
	}
	return table, nil
}

// LoadRuleTableJSON reads and parses a rule table from a JSON file at path.
func LoadRuleTableJSON(path string) (tagger.RuleTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	table, err := ParseRuleTableJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadDictionary is the all-in-one convenience entry point: it loads the
// per-tag *.txt files and a rules file (JSON if rulesPath ends in ".json",
// otherwise the whitespace-delimited text format) out of dir, and returns a
// ready-to-use *tagger.MorphemeDictionary.
func LoadDictionary(dir, rulesPath string) (*tagger.MorphemeDictionary, []Diagnostic, error) {
	entries, diags, err := LoadDictionaryEntries(dir)
	if err != nil {
		return nil, diags, err
	}

	var rules tagger.RuleTable
	if strings.HasSuffix(rulesPath, ".json") {
		rules, err = LoadRuleTableJSON(rulesPath)
	} else {
		var ruleDiags []Diagnostic
		rules, ruleDiags, err = LoadRuleTableText(rulesPath)
		diags = append(diags, ruleDiags...)
	}
	if err != nil {
		return nil, diags, err
	}

	return tagger.NewMorphemeDictionary(entries, rules), diags, nil
}
