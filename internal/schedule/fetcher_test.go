package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchAllConcatenatesBodies(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/snippets/2025-12-13.txt":
			w.Write([]byte("<p>day one</p>"))
		case "/snippets/2025-12-14.txt":
			w.Write([]byte("<p>day two</p>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL + "/snippets/{date}.txt")
	markup, results := client.FetchAll(context.Background(), []string{"2025-12-13", "2025-12-14"})

	if markup != "<p>day one</p><p>day two</p>" {
		t.Errorf("unexpected concatenation: %q", markup)
	}
	if gotUA != UserAgent {
		t.Errorf("expected User-Agent %q, got %q", UserAgent, gotUA)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("date %s: unexpected error: %v", r.Date, r.Err)
		}
		if r.Bytes == 0 {
			t.Errorf("date %s: expected non-zero byte count", r.Date)
		}
	}
}

func TestFetchAllToleratesPerDateFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/2025-12-14" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/{date}")
	markup, results := client.FetchAll(context.Background(), []string{"2025-12-13", "2025-12-14", "2025-12-15"})

	if markup != "okok" {
		t.Errorf("expected partial results %q, got %q", "okok", markup)
	}
	if results[1].Err == nil {
		t.Error("expected an error for the failing date")
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("surrounding dates should succeed")
	}
}

func TestFetchAllTotalFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL + "/{date}")
	markup, results := client.FetchAll(context.Background(), []string{"2025-12-13", "2025-12-14"})

	if markup != "" {
		t.Errorf("expected empty markup, got %q", markup)
	}
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("date %s: expected an error", r.Date)
		}
	}
}

func TestURLFor(t *testing.T) {
	client := NewClient("https://example.org/view_all_{date}.txt")
	got := client.URLFor("2025-12-16")
	want := "https://example.org/view_all_2025-12-16.txt"
	if got != want {
		t.Errorf("URLFor = %q, want %q", got, want)
	}
}
