// Package api exposes the correction pipeline over HTTP.
//
// Two endpoints are served:
//
//	POST /v1/corrections        — correct a single text
//	POST /v1/corrections/batch  — correct several texts concurrently
//
// Requests may carry their own dictionary and tuning overrides; fields left
// unset fall back to the server's configured dictionary and defaults.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hearsay-tools/hearsay/internal/observe"
	"github.com/hearsay-tools/hearsay/internal/transcript"
)

const (
	// maxBodyBytes caps request body size. Correction inputs are short
	// utterances; anything near this limit is abuse or a client bug.
	maxBodyBytes = 1 << 20

	// maxBatchItems caps the number of texts in one batch request.
	maxBatchItems = 100

	// batchConcurrency bounds how many batch items are corrected in parallel.
	batchConcurrency = 8
)

// CorrectionRequest is the JSON body for POST /v1/corrections.
type CorrectionRequest struct {
	// Text is the transcript to correct.
	Text string `json:"text"`

	// Dictionary overrides the server's configured dictionary for this
	// request. Entry order matters: earlier entries win confidence ties.
	Dictionary []string `json:"dictionary,omitempty"`

	// Sensitivity overrides the configured fuzzy-match confidence floor.
	Sensitivity *float64 `json:"sensitivity,omitempty"`

	// MaxCorrections overrides the per-text substitution cap.
	MaxCorrections *int `json:"max_corrections,omitempty"`

	// PreserveOriginalCase overrides the casing-pattern behaviour.
	PreserveOriginalCase *bool `json:"preserve_original_case,omitempty"`

	// TimeoutMs overrides the per-call correction timeout.
	TimeoutMs *int `json:"timeout_ms,omitempty"`
}

// BatchRequest is the JSON body for POST /v1/corrections/batch.
type BatchRequest struct {
	Items []CorrectionRequest `json:"items"`
}

// BatchResponse is the JSON body returned from the batch endpoint. Results
// are in the same order as the request items.
type BatchResponse struct {
	Results []*transcript.Result `json:"results"`
}

// Server serves the correction API. Construct with [New]; it is safe for
// concurrent use.
type Server struct {
	corrector  *transcript.Corrector
	dictionary []string
	defaults   transcript.Config
}

// New creates a [Server] correcting against dictionary by default, using the
// given corrector and default per-call settings.
func New(corrector *transcript.Corrector, dictionary []string, defaults transcript.Config) *Server {
	dict := make([]string, len(dictionary))
	copy(dict, dictionary)
	return &Server{
		corrector:  corrector,
		dictionary: dict,
		defaults:   defaults,
	}
}

// Handler returns an [http.Handler] serving the correction endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

// Register adds the correction routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/corrections", s.handleCorrect)
	mux.HandleFunc("POST /v1/corrections/batch", s.handleBatch)
}

// handleCorrect handles POST /v1/corrections.
func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	var req CorrectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := s.correctOne(r, req)
	if err != nil {
		http.Error(w, "correction failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleBatch handles POST /v1/corrections/batch. Items are corrected
// concurrently with bounded parallelism; results keep request order.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "items is required", http.StatusBadRequest)
		return
	}
	if len(req.Items) > maxBatchItems {
		http.Error(w, "too many items", http.StatusBadRequest)
		return
	}

	results := make([]*transcript.Result, len(req.Items))
	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)

	for i, item := range req.Items {
		g.Go(func() error {
			res, err := s.correctOne(r, item)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		http.Error(w, "correction failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, BatchResponse{Results: results})
}

// correctOne resolves the request's overrides against the server defaults and
// runs one correction.
func (s *Server) correctOne(r *http.Request, req CorrectionRequest) (*transcript.Result, error) {
	dictionary := s.dictionary
	if req.Dictionary != nil {
		dictionary = req.Dictionary
	}

	cfg := s.defaults
	if req.Sensitivity != nil {
		cfg.Sensitivity = *req.Sensitivity
	}
	if req.MaxCorrections != nil {
		cfg.MaxCorrections = *req.MaxCorrections
	}
	if req.PreserveOriginalCase != nil {
		cfg.PreserveOriginalCase = *req.PreserveOriginalCase
	}
	if req.TimeoutMs != nil {
		cfg.Timeout = time.Duration(*req.TimeoutMs) * time.Millisecond
	}

	ctx, span := observe.StartSpan(r.Context(), "correct")
	defer span.End()

	return s.corrector.CorrectWithConfig(ctx, req.Text, dictionary, cfg)
}

// decodeJSON parses the request body into v, writing a 400 response and
// returning false on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON encodes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
