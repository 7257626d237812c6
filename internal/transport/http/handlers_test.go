package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"cybershield-academy/internal/app"
	"cybershield-academy/internal/domain"
	"cybershield-academy/internal/infra/memory"
)

type fakeRenderer struct{}

func (fakeRenderer) Render(domain.Diploma, domain.Locale) ([]byte, error) {
	return []byte("\x89PNG fake"), nil
}

func (fakeRenderer) FileName(loc domain.Locale) string {
	if loc == domain.LocaleBG {
		return "Диплома-Киберсигурност.png"
	}
	return "Cybersecurity-Diploma.png"
}

type apiFixture struct {
	server  *httptest.Server
	results *memory.ResultStore
}

func newAPIFixture(t *testing.T, required []string) apiFixture {
	t.Helper()
	results := memory.NewResultStore()
	diplomas := app.NewDiplomaService(
		results,
		memory.NewDiplomaStore(),
		fakeRenderer{},
		required,
		zap.NewNop(),
		app.FixedClock{T: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)},
	)
	handler := NewHandler(diplomas, "admin-secret", zap.NewNop())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/progress", handler.GetProgress)
	mux.HandleFunc("/api/diploma", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			handler.IssueDiploma(w, r)
			return
		}
		handler.GetDiploma(w, r)
	})
	mux.HandleFunc("/api/diploma/download", handler.DownloadDiploma)
	mux.HandleFunc("/api/admin/diploma/name", handler.RenameDiploma)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return apiFixture{server: server, results: results}
}

func (f apiFixture) completeAll(t *testing.T, userID string, required []string) {
	t.Helper()
	for _, id := range required {
		err := f.results.Append(context.Background(), domain.QuizResult{
			UserID: userID, ModuleID: id, Score: 5, TotalQuestions: 5, Passed: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
}

func (f apiFixture) post(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(f.server.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (f apiFixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(f.server.URL + path)
	if err != nil {
		t.Fatalf("get %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestProgressEndpoint(t *testing.T) {
	required := []string{"m1", "m2"}
	f := newAPIFixture(t, required)
	f.completeAll(t, "u1", required[:1])

	resp := f.get(t, "/api/progress?userId=u1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var progress domain.Progress
	if err := json.NewDecoder(resp.Body).Decode(&progress); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if progress.CompletedCount != 1 || progress.AllCompleted {
		t.Fatalf("expected 1/2 incomplete, got %+v", progress)
	}

	resp = f.get(t, "/api/progress")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without userId, got %d", resp.StatusCode)
	}
}

func TestDiplomaIssueEndpoint(t *testing.T) {
	required := []string{"m1"}
	f := newAPIFixture(t, required)

	// Incomplete user is rejected.
	resp := f.post(t, "/api/diploma", `{"userId":"u1","fullName":"Ana Petrova"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 before completion, got %d", resp.StatusCode)
	}

	f.completeAll(t, "u1", required)

	resp = f.post(t, "/api/diploma", `{"userId":"u1","fullName":"Ana Petrova"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var issued diplomaResponse
	if err := json.NewDecoder(resp.Body).Decode(&issued); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if issued.FullName != "Ana Petrova" || !strings.HasPrefix(issued.CertID, "CS-") {
		t.Fatalf("unexpected diploma: %+v", issued)
	}

	// Second issue conflicts.
	resp = f.post(t, "/api/diploma", `{"userId":"u1","fullName":"Other"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	// Re-fetch returns the original.
	resp = f.get(t, "/api/diploma?userId=u1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var fetched diplomaResponse
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.CertID != issued.CertID || fetched.FullName != "Ana Petrova" {
		t.Fatalf("expected original diploma, got %+v", fetched)
	}
}

func TestDiplomaNotFound(t *testing.T) {
	f := newAPIFixture(t, []string{"m1"})
	resp := f.get(t, "/api/diploma?userId=nobody")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDiplomaDownload(t *testing.T) {
	required := []string{"m1"}
	f := newAPIFixture(t, required)
	f.completeAll(t, "u1", required)
	f.post(t, "/api/diploma", `{"userId":"u1","fullName":"Ana Petrova"}`)

	resp := f.get(t, "/api/diploma/download?userId=u1&locale=en")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "Cybersecurity-Diploma.png") {
		t.Fatalf("expected english filename, got %q", cd)
	}

	resp = f.get(t, "/api/diploma/download?userId=nobody")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRenameRequiresAdminToken(t *testing.T) {
	required := []string{"m1"}
	f := newAPIFixture(t, required)
	f.completeAll(t, "u1", required)
	f.post(t, "/api/diploma", `{"userId":"u1","fullName":"Ana Petrova"}`)

	resp := f.post(t, "/api/admin/diploma/name", `{"userId":"u1","fullName":"Ana Ivanova"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodPost, f.server.URL+"/api/admin/diploma/name",
		strings.NewReader(`{"userId":"u1","fullName":"Ana Ivanova"}`))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-Admin-Token", "admin-secret")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	fetched := f.get(t, "/api/diploma?userId=u1")
	var diploma diplomaResponse
	if err := json.NewDecoder(fetched.Body).Decode(&diploma); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diploma.FullName != "Ana Ivanova" {
		t.Fatalf("expected renamed diploma, got %q", diploma.FullName)
	}
}
