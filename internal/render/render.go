// Package render turns grouped papers into the final browsable page.
//
// Generate is a pure function over the grouped papers and the sidecar
// lookups: one self-contained HTML document, inline styles and script, no
// external assets beyond thumbnails. The page's edit affordances live
// entirely in the browser; the only server-shaped thing it touches is a
// relative fetch of the sidecar file during export.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/pawpaw2022/siggraph2025/internal/session"
)

// maxAuthorsShown truncates the author line on each card.
const maxAuthorsShown = 6

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("papers").Parse(pageTemplate))
}

type pageData struct {
	CSS           template.CSS
	JS            template.JS
	TotalPapers   int
	TotalSessions int
	SidecarFile   string
	Sessions      []sessionView
}

type sessionView struct {
	Name   string
	Papers []cardView
}

type cardView struct {
	MetaID   string
	Title    string
	Image    string
	Authors  string
	URL      string
	Abstract string
}

// Generate renders the full HTML document for the grouped papers. urls and
// abstracts map sidecar ids to non-empty values; absent ids render the
// add-link button and the abstract-missing placeholder. sidecarFile is the
// relative path the in-page export merges against.
func Generate(sessions []session.Session, urls, abstracts map[string]string, sidecarFile string) (string, error) {
	data := pageData{
		CSS:           template.CSS(pageCSS),
		JS:            template.JS(pageJS),
		TotalPapers:   session.TotalPapers(sessions),
		TotalSessions: len(sessions),
		SidecarFile:   sidecarFile,
	}

	for _, s := range sessions {
		sv := sessionView{Name: s.Name}
		for _, p := range s.Papers {
			id := p.MetaID()
			authors := p.Authors
			if len(authors) > maxAuthorsShown {
				authors = authors[:maxAuthorsShown]
			}
			sv.Papers = append(sv.Papers, cardView{
				MetaID:   id,
				Title:    p.Title,
				Image:    p.Image,
				Authors:  strings.Join(authors, ", "),
				URL:      urls[id],
				Abstract: abstracts[id],
			})
		}
		data.Sessions = append(data.Sessions, sv)
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}

	return buf.String(), nil
}
