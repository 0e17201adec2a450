//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("STRESSCHECK_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

func TestQuestionnaireJourneyIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	var created struct {
		SessionID  string `json:"session_id"`
		TotalItems int    `json:"total_items"`
	}
	doJSON(t, client, http.MethodPost, base+"/api/sessions", nil, &created)
	if created.SessionID == "" {
		t.Fatalf("unexpected session response: %+v", created)
	}
	if created.TotalItems == 0 {
		t.Fatalf("server has an empty catalog; cannot run the journey")
	}

	// Walk every questionnaire page and answer each item with the weakest
	// agreement option.
	var answers []map[string]string
	for page := 0; ; page++ {
		var q struct {
			Page     int `json:"page"`
			NumPages int `json:"num_pages"`
			Items    []struct {
				ID string `json:"id"`
			} `json:"items"`
		}
		doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/api/questionnaire?page=%d", base, page), nil, &q)
		for _, it := range q.Items {
			answers = append(answers, map[string]string{"item_id": it.ID, "option": "disagree"})
		}
		if page >= q.NumPages-1 {
			break
		}
	}
	if len(answers) != created.TotalItems {
		t.Fatalf("collected %d items over pages, expected %d", len(answers), created.TotalItems)
	}

	doJSON(t, client, http.MethodPost, fmt.Sprintf("%s/api/sessions/%s/answers", base, created.SessionID),
		map[string]any{"answers": answers}, nil)

	var progress struct {
		Answered int  `json:"answered"`
		Complete bool `json:"complete"`
	}
	doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/api/sessions/%s", base, created.SessionID), nil, &progress)
	if !progress.Complete {
		t.Fatalf("session not complete after answering everything: %+v", progress)
	}

	var result struct {
		HighStress  bool     `json:"high_stress"`
		Reasons     []string `json:"reasons"`
		Disclaimer  string   `json:"disclaimer"`
		ScaleScores []struct {
			ScaleID string `json:"scale_id"`
			Score   int    `json:"score"`
		} `json:"scale_scores"`
	}
	doJSON(t, client, http.MethodPost, fmt.Sprintf("%s/api/sessions/%s/submit", base, created.SessionID), nil, &result)
	if result.HighStress {
		t.Fatalf("all-weakest answers classified high stress: %+v", result)
	}
	if len(result.ScaleScores) != 18 {
		t.Fatalf("expected 18 scale scores, got %d", len(result.ScaleScores))
	}
	if result.Disclaimer == "" {
		t.Fatalf("result missing disclaimer")
	}

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/sessions/%s", base, created.SessionID), nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("reset request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reset status %d", resp.StatusCode)
	}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any, out any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http %s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}
