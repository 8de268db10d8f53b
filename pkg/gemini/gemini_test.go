package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-task-scheduler/pkg/gemini"
)

func TestConfigValidate(t *testing.T) {
	cfg := gemini.Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg = gemini.Config{APIKey: "key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != gemini.DefaultModel {
		t.Errorf("model = %q, want default", cfg.Model)
	}
	if cfg.APIURL != gemini.DefaultAPIURL {
		t.Errorf("apiURL = %q, want default", cfg.APIURL)
	}
	if cfg.HTTPClient == nil {
		t.Error("http client not defaulted")
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if _, ok := req["contents"]; !ok {
			t.Error("request missing contents")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hello "},{"text":"world"}]}}]}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: "be terse",
		Messages:          []gemini.Message{{Role: "user", Text: "hi"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text != "hello world" {
		t.Errorf("text = %q, want %q", resp.Text, "hello world")
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "test", APIURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Message{{Role: "user", Text: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
