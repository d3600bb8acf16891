// Package snapshot compiles a loaded dictionary and rule table into a single
// file and restores it by mapping that file into memory with
// github.com/edsrzf/mmap-go, avoiding a read() copy of the whole resource set
// on every process start. The payload itself is gob-encoded and
// gzip-compressed: unlike a flat fixed-layout format, a gob stream cannot be
// addressed directly out of the mapped bytes, so Open pays one decode pass
// at startup and keeps the mapping alive only to avoid the
// page-cache-defeating copy a plain os.ReadFile would make for a large
// resource file.
package snapshot

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	tagger "github.com/lattice-nlp/tagger"
)

// payload is the gob-encoded shape written to and read from disk.
type payload struct {
	Entries map[tagger.Tag][]string
	Rules   tagger.RuleTable
}

// Write compiles entries and rules into a single gzip-compressed gob stream
// at path, creating or truncating it.
func Write(path string, entries map[tagger.Tag][]string, rules tagger.RuleTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(payload{Entries: entries, Rules: rules}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return nil
}

// Snapshot is an open, memory-mapped snapshot file. Close releases the
// mapping; after Close, Entries and Rules returned by earlier calls remain
// valid since they were fully decoded at Open time.
type Snapshot struct {
	file    *os.File
	mapping mmap.MMap
	entries map[tagger.Tag][]string
	rules   tagger.RuleTable
}

// Open maps path into memory and decodes the gzip+gob payload it holds.
func Open(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	gz, err := gzip.NewReader(bytes.NewReader(m))
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, fmt.Errorf("gzip reader for %s: %w", path, err)
	}
	defer gz.Close()

	var p payload
	if err := gob.NewDecoder(gz).Decode(&p); err != nil && err != io.EOF {
		m.Unmap()
		f.Close()
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	return &Snapshot{file: f, mapping: m, entries: p.Entries, rules: p.Rules}, nil
}

// Entries returns the decoded tag -> morphemes map.
func (s *Snapshot) Entries() map[tagger.Tag][]string { return s.entries }

// Rules returns the decoded rule table.
func (s *Snapshot) Rules() tagger.RuleTable { return s.rules }

// Dictionary builds a *tagger.MorphemeDictionary directly from the decoded
// snapshot contents.
func (s *Snapshot) Dictionary() *tagger.MorphemeDictionary {
	return tagger.NewMorphemeDictionary(s.entries, s.rules)
}

// Close unmaps the underlying file and closes its descriptor.
func (s *Snapshot) Close() error {
	if err := s.mapping.Unmap(); err != nil {
		s.file.Close()
		return fmt.Errorf("unmap: %w", err)
	}
	return s.file.Close()
}
