// Command server exposes the lattice tagger as a JSON REST API.
//
// Endpoints:
//
//	POST /api/tag      body: {"sentences":["..."], "top_k": 1}
//	POST /api/lattice   body: {"sentence":"..."}
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"

	tagger "github.com/lattice-nlp/tagger"
	"github.com/lattice-nlp/tagger/dictres"
	"github.com/lattice-nlp/tagger/dictres/demo"
	"github.com/lattice-nlp/tagger/dictres/snapshot"
)

// ---- JSON response types --------------------------------------------------

type tokenJSON struct {
	Surface  string `json:"surface"`
	Morph0   string `json:"morph0"`
	Tag0     string `json:"tag0"`
	Morph1   string `json:"morph1,omitempty"`
	Tag1     string `json:"tag1,omitempty"`
	Begin    int    `json:"begin"`
	End      int    `json:"end"`
	IsLStart bool   `json:"is_l_start"`
}

func toTokenJSON(t tagger.Token) tokenJSON {
	tj := tokenJSON{
		Surface:  t.Surface,
		Morph0:   t.Morph0,
		Tag0:     t.Tag0.String(),
		Begin:    t.Begin,
		End:      t.End,
		IsLStart: t.IsLStart,
	}
	if t.HasMorph1() {
		tj.Morph1 = t.Morph1
		tj.Tag1 = t.Tag1.String()
	}
	return tj
}

type sequenceJSON struct {
	Tokens []tokenJSON `json:"tokens"`
	Score  float64     `json:"score"`
}

func toSequenceJSON(s tagger.Sequence) sequenceJSON {
	tokens := make([]tokenJSON, len(s.Tokens))
	for i, t := range s.Tokens {
		tokens[i] = toTokenJSON(t)
	}
	return sequenceJSON{Tokens: tokens, Score: s.Score}
}

type tagRequest struct {
	Sentences []string `json:"sentences"`
	TopK      int      `json:"top_k"`
	// Flatten splits composite Noun+Josa / stem+Eomi tokens into their
	// single-morpheme parts in the response.
	Flatten bool `json:"flatten"`
}

type tagResultJSON struct {
	Sentence  string         `json:"sentence"`
	Sequences []sequenceJSON `json:"sequences,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type tagResponse struct {
	Results []tagResultJSON `json:"results"`
}

type latticeRequest struct {
	Sentence string `json:"sentence"`
}

type bucketJSON struct {
	Begin  int         `json:"begin"`
	Tokens []tokenJSON `json:"tokens"`
}

type latticeResponse struct {
	Length int          `json:"length"`
	Bindex []bucketJSON `json:"bindex"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ---------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers ---------------------------------------------------------------

func handleTag(tg *tagger.Tagger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req tagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Sentences) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentences' array")
			return
		}
		topK := req.TopK
		if topK <= 0 {
			topK = 1
		}

		batch := tg.TagBatch(r.Context(), req.Sentences)
		results := make([]tagResultJSON, len(req.Sentences))
		for i, res := range batch {
			rj := tagResultJSON{Sentence: req.Sentences[i]}
			if res.Err != nil {
				rj.Error = res.Err.Error()
				results[i] = rj
				continue
			}
			seqs := res.Sequences
			if len(seqs) > topK {
				seqs = seqs[:topK]
			}
			sj := make([]sequenceJSON, len(seqs))
			for j, s := range seqs {
				if req.Flatten {
					s = tagger.Sequence{Tokens: tagger.Flatten(s.Tokens), Score: s.Score}
				}
				sj[j] = toSequenceJSON(s)
			}
			rj.Sequences = sj
			results[i] = rj
		}
		writeJSON(w, http.StatusOK, tagResponse{Results: results})
	}
}

func handleLattice(tg *tagger.Tagger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req latticeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Sentence == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
			return
		}

		lt := tg.Lattice(req.Sentence)
		buckets := make([]bucketJSON, len(lt.Bindex))
		for b, tokens := range lt.Bindex {
			tj := make([]tokenJSON, len(tokens))
			for i, t := range tokens {
				tj[i] = toTokenJSON(t)
			}
			buckets[b] = bucketJSON{Begin: b, Tokens: tj}
		}
		writeJSON(w, http.StatusOK, latticeResponse{Length: lt.N(), Bindex: buckets})
	}
}

// ---- main -------------------------------------------------------------------

func loadTagger(dataDir, snapshotPath string) (*tagger.Tagger, error) {
	if snapshotPath != "" {
		snap, err := snapshot.Open(snapshotPath)
		if err != nil {
			return nil, err
		}
		dict := snap.Dictionary()
		scorer := tagger.CompositeScore{tagger.NewRegularizationScore()}
		return tagger.NewTagger(dict, scorer, tagger.Config{PreferExactMatch: true}), nil
	}
	if dataDir == "" {
		log.Println("no -data or -snapshot given, using the embedded demo dictionary")
		return demo.Tagger()
	}

	dict, diags, err := dictres.LoadDictionary(dataDir, dataDir+"/rules.json")
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		log.Printf("dictionary load warning: %s", d)
	}
	scorer := tagger.CompositeScore{tagger.NewRegularizationScore()}
	return tagger.NewTagger(dict, scorer, tagger.Config{PreferExactMatch: true}), nil
}

func main() {
	dataDir := flag.String("data", "", "path to the *.txt/rules.json dictionary directory (overrides the embedded demo dictionary)")
	snapshotPath := flag.String("snapshot", "", "path to a compiled snapshot.Write file (overrides -data)")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	tg, err := loadTagger(*dataDir, *snapshotPath)
	if err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
	}
	log.Println("dictionary loaded")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tag", handleTag(tg))
	mux.HandleFunc("/api/lattice", handleLattice(tg))

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
