package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"seoagent/competitors"
	"seoagent/config"
	"seoagent/orchestrator"
	"seoagent/types"
)

const analyzeURL = "https://experienceleague.adobe.com/en/docs/experience-manager-cloud-service/content/forms/create-form"

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, url string, tr types.TimeRange) (types.PageContent, []types.KeywordRecord, error) {
	if url == analyzeURL {
		return types.PageContent{URL: url, Title: "Creating forms"},
			[]types.KeywordRecord{{Term: "online form", Volume: 3200}}, nil
	}
	return types.PageContent{}, nil, &types.FetchError{URL: url, StatusCode: 404}
}

type stubMatcher struct{}

func (stubMatcher) Identify(ctx context.Context, content types.PageContent) (types.Capability, error) {
	return types.Capability{Label: "form creation", Description: "building online forms"}, nil
}

func (stubMatcher) Locate(ctx context.Context, comp types.Competitor, cap types.Capability) (string, error) {
	return "", types.ErrNotFound
}

type stubRewriter struct{}

func (stubRewriter) Rewrite(ctx context.Context, content string, kws []string, tone string) (types.RewriteResult, error) {
	if strings.TrimSpace(content) == "" {
		return types.RewriteResult{}, types.NewValidationError("content", "no content provided")
	}
	return types.RewriteResult{RewrittenContent: "rewritten", Tone: tone, ChunkCount: 1}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	directory := competitors.NewDirectory(config.ProductCompetitors, config.ProductOrder)
	orch := orchestrator.New(directory, stubExtractor{}, stubMatcher{}, stubRewriter{}, nil, config.ProductURLPatterns)
	return NewRouter(orch)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := doRequest(t, newTestRouter(), http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
}

func TestListProducts(t *testing.T) {
	w := doRequest(t, newTestRouter(), http.MethodGet, "/api/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}

	var body struct {
		Products []string `json:"products"`
		Count    int      `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Count != 3 || len(body.Products) != 3 {
		t.Errorf("got %d products: %v", body.Count, body.Products)
	}
	if body.Products[0] != "Assets" {
		t.Errorf("products[0]=%q, want Assets", body.Products[0])
	}
}

func TestListCompetitors(t *testing.T) {
	w := doRequest(t, newTestRouter(), http.MethodGet, "/api/products/Forms/competitors", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}

	var body struct {
		Competitors []types.Competitor `json:"competitors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(body.Competitors) != 4 {
		t.Fatalf("got %d competitors, want 4", len(body.Competitors))
	}
}

func TestListCompetitorsUnknownProduct(t *testing.T) {
	w := doRequest(t, newTestRouter(), http.MethodGet, "/api/products/Screens/competitors", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	payload := `{"url": "` + analyzeURL + `", "product": "Forms", "time_range": "month"}`
	w := doRequest(t, newTestRouter(), http.MethodPost, "/api/analyze", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.Capability.Label != "form creation" {
		t.Errorf("Capability.Label=%q", result.Capability.Label)
	}
	if len(result.SuggestedKeywords) == 0 {
		t.Error("no suggested keywords in response")
	}
}

func TestAnalyzeValidationMapsTo400(t *testing.T) {
	payload := `{"url": "https://example.com/x", "product": "Forms", "time_range": "month"}`
	w := doRequest(t, newTestRouter(), http.MethodPost, "/api/analyze", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestAnalyzeBadJSON(t *testing.T) {
	w := doRequest(t, newTestRouter(), http.MethodPost, "/api/analyze", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestRewriteEndpoint(t *testing.T) {
	payload := `{"content": "Build forms faster.", "target_keywords": ["form builder"], "tone": "casual"}`
	w := doRequest(t, newTestRouter(), http.MethodPost, "/api/rewrite", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var result types.RewriteResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.RewrittenContent != "rewritten" {
		t.Errorf("RewrittenContent=%q", result.RewrittenContent)
	}
}

func TestRewriteValidationMapsTo400(t *testing.T) {
	payload := `{"content": "   ", "target_keywords": []}`
	w := doRequest(t, newTestRouter(), http.MethodPost, "/api/rewrite", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}
