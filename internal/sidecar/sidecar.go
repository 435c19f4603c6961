package sidecar

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pawpaw2022/siggraph2025/internal/logger"
	"github.com/pawpaw2022/siggraph2025/internal/session"
)

// Entry is the canonical sidecar record. The file holds a flat list of these
// so it stays easy to edit by hand.
type Entry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Session  string `json:"session"`
	URL      string `json:"url"`
	Abstract string `json:"abstract"`
}

// Meta holds the user-supplied fields of an entry
type Meta struct {
	URL      string
	Abstract string
}

// Store is the normalized in-memory view of the sidecar file
type Store struct {
	path string
	meta map[string]Meta
}

// Load reads the sidecar file at path. Both accepted shapes are normalized
// into an id -> meta map:
//
//   - the canonical list of entries
//   - a legacy map of id -> entry
//
// A missing file, a file that does not parse, or records with missing or
// wrong-typed fields never fail the pipeline; they degrade to an empty store
// or empty fields.
func Load(path string) *Store {
	s := &Store{path: path, meta: make(map[string]Meta)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read sidecar file", logger.Fields{"path": path, "error": err.Error()})
		}
		return s
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("sidecar file did not parse, treating as empty", logger.Fields{"path": path, "error": err.Error()})
		return s
	}

	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			rec, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			id, ok := rec["id"].(string)
			if !ok {
				continue
			}
			s.meta[id] = metaFromRecord(rec)
		}
	case map[string]interface{}:
		// Legacy shape, read-only compatibility
		for id, item := range v {
			rec, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			s.meta[id] = metaFromRecord(rec)
		}
	}

	return s
}

// metaFromRecord coerces the url/abstract fields, defaulting anything missing
// or wrong-typed to the empty string.
func metaFromRecord(rec map[string]interface{}) Meta {
	return Meta{
		URL:      stringField(rec, "url"),
		Abstract: stringField(rec, "abstract"),
	}
}

func stringField(rec map[string]interface{}, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

// WriteScaffold rewrites the full sidecar file with one entry per paper in
// the grouped output, carrying forward any previously stored url/abstract by
// id so manual edits survive re-scraping. Papers no longer present are
// dropped. The in-memory store is refreshed to match the written file.
func (s *Store) WriteScaffold(sessions []session.Session) ([]Entry, error) {
	entries := make([]Entry, 0)
	fresh := make(map[string]Meta)

	for _, sess := range sessions {
		for _, p := range sess.Papers {
			id := p.MetaID()
			prev := s.meta[id]
			entries = append(entries, Entry{
				ID:       id,
				Title:    p.Title,
				Session:  sess.Name,
				URL:      prev.URL,
				Abstract: prev.Abstract,
			})
			fresh[id] = prev
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return nil, err
	}

	s.meta = fresh
	return entries, nil
}

// URLs returns the id -> url map for rendering, non-blank values only.
func (s *Store) URLs() map[string]string {
	return s.filtered(func(m Meta) string { return m.URL })
}

// Abstracts returns the id -> abstract map for rendering, non-blank values only.
func (s *Store) Abstracts() map[string]string {
	return s.filtered(func(m Meta) string { return m.Abstract })
}

func (s *Store) filtered(field func(Meta) string) map[string]string {
	out := make(map[string]string)
	for id, m := range s.meta {
		if v := strings.TrimSpace(field(m)); v != "" {
			out[id] = v
		}
	}
	return out
}
