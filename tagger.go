package tagger

// Tagger is the orchestration layer most callers use directly: it wires a
// MorphemeDictionary, an EojeolLookup, and a BeamDecoder together behind a
// single Tag/TagBatch API.

import (
	"context"
	"runtime"
	"sync"
)

// Config configures a Tagger. There is deliberately no package-level global
// equivalent to a filesystem install path: every setting a
// Tagger needs is threaded through this struct and the dictionary the caller
// constructs and passes in.
type Config struct {
	// BeamSize is the number of partial sequences kept per end-position.
	// Zero uses the default (5).
	BeamSize int
	// MaxTokenLen bounds the length, in runes, of any single token the
	// lookup or decoder will consider. Zero uses the default (8).
	MaxTokenLen int
	// StandaloneTags overrides MorphemeLookup's default standalone tag set
	// when non-nil.
	StandaloneTags map[Tag]bool
	// PreferExactMatch enables the whole-eojeol lookup bypass: when an
	// eojeol as a whole is in the dictionary, substring enumeration for it
	// is skipped entirely.
	PreferExactMatch bool
}

func (c Config) withDefaults() Config {
	if c.BeamSize <= 0 {
		c.BeamSize = defaultBeamSize
	}
	if c.MaxTokenLen <= 0 {
		c.MaxTokenLen = defaultMaxTokenLen
	}
	return c
}

// Tagger decodes sentences against a fixed dictionary and scorer snapshot.
// A Tagger is immutable after construction and safe for concurrent use by
// multiple goroutines: Tag/TagBatch never mutate the dictionary.
type Tagger struct {
	dict   *MorphemeDictionary
	lookup EojeolLookup
	decode *BeamDecoder
}

// NewTagger builds a Tagger over dict using MorphemeLookup, the richest and
// default EojeolLookup strategy, and the given composite scorer.
func NewTagger(dict *MorphemeDictionary, scorer ScoreFunction, cfg Config) *Tagger {
	cfg = cfg.withDefaults()
	lookup := &MorphemeLookup{
		Dict:             dict,
		MaxLen:           cfg.MaxTokenLen,
		PreferExactMatch: cfg.PreferExactMatch,
		StandaloneTags:   cfg.StandaloneTags,
	}
	return &Tagger{
		dict:   dict,
		lookup: lookup,
		decode: &BeamDecoder{Scorer: scorer, BeamSize: cfg.BeamSize, MaxTokenLen: cfg.MaxTokenLen},
	}
}

// NewTaggerWithLookup is the same as NewTagger but lets the caller choose an
// alternate EojeolLookup strategy (LRLookup or SubwordLookup) in place of
// the default MorphemeLookup.
func NewTaggerWithLookup(lookup EojeolLookup, scorer ScoreFunction, cfg Config) *Tagger {
	cfg = cfg.withDefaults()
	return &Tagger{
		lookup: lookup,
		decode: &BeamDecoder{Scorer: scorer, BeamSize: cfg.BeamSize, MaxTokenLen: cfg.MaxTokenLen},
	}
}

// Dictionary returns the dictionary this Tagger was built over (nil when
// constructed via NewTaggerWithLookup).
func (t *Tagger) Dictionary() *MorphemeDictionary {
	return t.dict
}

// Lattice builds and returns the lattice for sentence without decoding it,
// for callers that want to inspect bindex directly (e.g. the /api/lattice
// debug endpoint in cmd/server).
func (t *Tagger) Lattice(sentence string) Lattice {
	return BuildLattice(sentence, t.lookup)
}

// Tag decodes sentence and returns its beam of candidate sequences, best
// first. ctx is checked once before decoding begins; the beam sweep itself
// is a pure, uninterruptible computation
func (t *Tagger) Tag(ctx context.Context, sentence string) ([]Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lt := BuildLattice(sentence, t.lookup)
	return t.decode.Decode(lt)
}

// TagBest decodes sentence and returns only the top-scoring Sequence.
func (t *Tagger) TagBest(ctx context.Context, sentence string) (Sequence, error) {
	seqs, err := t.Tag(ctx, sentence)
	if err != nil {
		return Sequence{}, err
	}
	return seqs[0], nil
}

// BatchResult pairs a decoded Sequence list with any error, preserving the
// input order of TagBatch's sentences slice.
type BatchResult struct {
	Sequences []Sequence
	Err       error
}

// TagBatch decodes every sentence independently across a bounded worker
// pool, since decoding is embarrassingly parallel ctx is checked
// between sentences; a cancelled context short-circuits any sentence not yet
// started.
func (t *Tagger) TagBatch(ctx context.Context, sentences []string) []BatchResult {
	results := make([]BatchResult, len(sentences))

	workers := runtime.NumCPU()
	if workers > len(sentences) {
		workers = len(sentences)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				seqs, err := t.Tag(ctx, sentences[i])
				results[i] = BatchResult{Sequences: seqs, Err: err}
			}
		}()
	}

	for i := range sentences {
		select {
		case jobs <- i:
		case <-ctx.Done():
			results[i] = BatchResult{Err: ctx.Err()}
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
