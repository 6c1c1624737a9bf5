package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hearsay-tools/hearsay/internal/api"
	"github.com/hearsay-tools/hearsay/internal/transcript"
)

func newTestServer(t *testing.T, dictionary []string) http.Handler {
	t.Helper()
	s := api.New(transcript.NewCorrector(), dictionary, transcript.DefaultConfig())
	return s.Handler()
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCorrections_UsesServerDictionary(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, []string{"Supabase"})

	rec := postJSON(t, h, "/v1/corrections", api.CorrectionRequest{Text: "supabase is great"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result transcript.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Corrected != "Supabase is great" {
		t.Errorf("corrected = %q, want %q", result.Corrected, "Supabase is great")
	}
	if len(result.Corrections) != 1 {
		t.Fatalf("got %d corrections, want 1", len(result.Corrections))
	}
	if result.Corrections[0].Method != transcript.MethodExact {
		t.Errorf("method = %q, want exact", result.Corrections[0].Method)
	}
}

func TestCorrections_RequestDictionaryOverrides(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, []string{"Supabase"})

	rec := postJSON(t, h, "/v1/corrections", api.CorrectionRequest{
		Text:       "call kethalkaya",
		Dictionary: []string{"Catalkaya"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result transcript.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Corrected != "call Catalkaya" {
		t.Errorf("corrected = %q, want %q", result.Corrected, "call Catalkaya")
	}
}

func TestCorrections_SensitivityOverride(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, []string{"Supra"})

	strict := 0.99
	rec := postJSON(t, h, "/v1/corrections", api.CorrectionRequest{
		Text:        "sibra",
		Sensitivity: &strict,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result transcript.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Corrected != "sibra" {
		t.Errorf("corrected = %q, want input unchanged at sensitivity 0.99", result.Corrected)
	}
}

func TestCorrections_MalformedBody(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	req := httptest.NewRequest("POST", "/v1/corrections", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCorrections_UnknownFieldRejected(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	req := httptest.NewRequest("POST", "/v1/corrections", strings.NewReader(`{"text":"hi","sensitvity":0.5}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestBatch_PreservesOrder(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, []string{"Supabase", "Catalkaya"})

	items := []api.CorrectionRequest{
		{Text: "supabase"},
		{Text: "kethalkaya"},
		{Text: "nothing here"},
	}
	rec := postJSON(t, h, "/v1/corrections/batch", api.BatchRequest{Items: items})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp api.BatchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != len(items) {
		t.Fatalf("got %d results, want %d", len(resp.Results), len(items))
	}
	want := []string{"Supabase", "Catalkaya", "nothing here"}
	for i := range want {
		if resp.Results[i].Corrected != want[i] {
			t.Errorf("results[%d].Corrected = %q, want %q", i, resp.Results[i].Corrected, want[i])
		}
	}
}

func TestBatch_EmptyItems(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := postJSON(t, h, "/v1/corrections/batch", api.BatchRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestBatch_TooManyItems(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	items := make([]api.CorrectionRequest, 101)
	for i := range items {
		items[i] = api.CorrectionRequest{Text: "hello"}
	}
	rec := postJSON(t, h, "/v1/corrections/batch", api.BatchRequest{Items: items})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCorrections_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	req := httptest.NewRequest("GET", "/v1/corrections", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
