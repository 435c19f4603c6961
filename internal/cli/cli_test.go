package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRunGeneratePipeline drives the whole pipeline against a local server
// serving the schedule fixture and checks the artifacts on disk.
func TestRunGeneratePipeline(t *testing.T) {
	fixture, err := os.ReadFile("../../testdata/fixtures/sample_schedule.html")
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/2025-12-13" {
			w.Write(fixture)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yml")
	cfgContent := "dates:\n  - \"2025-12-13\"\nschedule_url: \"" + server.URL + "/{date}\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	outPath := filepath.Join(dir, "papers.html")
	sidecarPath := filepath.Join(dir, "url.json")
	debugPath := filepath.Join(dir, "debug_raw.html")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"--config", cfgPath,
		"--out", outPath,
		"--sidecar", sidecarPath,
		"--debug-file", debugPath,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	// HTML artifact
	page, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output html: %v", err)
	}
	if !strings.Contains(string(page), "Foo Bar: A Study") {
		t.Error("output page should contain the extracted paper title")
	}
	if !strings.Contains(string(page), "3D Reconstruction &amp; Intelligent Geometry") {
		t.Error("output page should contain the mapped session name")
	}

	// Sidecar scaffold
	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		t.Fatalf("reading sidecar: %v", err)
	}
	var entries []struct {
		ID      string `json:"id"`
		Session string `json:"session"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("sidecar should be a JSON list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 sidecar entries, got %d", len(entries))
	}
	if entries[0].ID != "papers_0042" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}

	// Debug dump holds the raw fetched markup
	raw, err := os.ReadFile(debugPath)
	if err != nil {
		t.Fatalf("reading debug dump: %v", err)
	}
	if string(raw) != string(fixture) {
		t.Error("debug dump should be the verbatim fetched markup")
	}
}

// TestRunGenerateTotalFetchFailure checks that no artifacts are written when
// every date fails.
func TestRunGenerateTotalFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yml")
	cfgContent := "dates:\n  - \"2025-12-13\"\nschedule_url: \"" + server.URL + "/{date}\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	outPath := filepath.Join(dir, "papers.html")
	sidecarPath := filepath.Join(dir, "url.json")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"--config", cfgPath,
		"--out", outPath,
		"--sidecar", sidecarPath,
		"--debug-file", "none",
	})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error when no date fetches successfully")
	}

	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("output html should not be written on total fetch failure")
	}
	if _, err := os.Stat(sidecarPath); !os.IsNotExist(err) {
		t.Error("sidecar should not be written on total fetch failure")
	}
}
