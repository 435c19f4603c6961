package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pawpaw2022/siggraph2025/internal/logger"
	"github.com/pawpaw2022/siggraph2025/internal/paper"
)

var (
	// blockRe pairs each representative-image cell with the
	// title-and-speakers cell that immediately follows it. The schedule
	// snippets emit one such pair per paper row.
	blockRe = regexp.MustCompile(`(?s)<td class="representative-image-td">(.*?)</td>\s*<td class="title-speakers-td">(.*?)</td>`)

	// idSessRe matches the id+session query-string convention of the paper
	// detail link. A block whose title cell has no such anchor is not a
	// paper row.
	idSessRe = regexp.MustCompile(`id=papers_(\d+)&sess=(sess\d+)`)
)

// Extractor scans schedule markup for paper records
type Extractor struct {
	imageBase string
}

// New creates an Extractor. Root-relative thumbnail paths are rewritten onto
// imageBase.
func New(imageBase string) *Extractor {
	return &Extractor{imageBase: imageBase}
}

// Papers extracts all paper records from concatenated schedule markup.
//
// Records are deduplicated by decoded title, first occurrence wins. The
// source cross-lists some papers in multiple contexts; collapsing on title is
// a deliberate lossy policy, so two genuinely distinct papers sharing a title
// would also collapse.
func (e *Extractor) Papers(markup string) []*paper.Paper {
	papers := make([]*paper.Paper, 0)
	seenTitles := make(map[string]bool)

	for _, match := range blockRe.FindAllStringSubmatch(markup, -1) {
		imgCell := match[1]
		titleCell := match[2]

		p, ok := e.parseBlock(imgCell, titleCell)
		if !ok {
			continue
		}

		if seenTitles[p.Title] {
			logger.Debug("skipping duplicate title", logger.Fields{"title": p.Title, "id": p.ID})
			continue
		}
		seenTitles[p.Title] = true

		papers = append(papers, p)
	}

	return papers
}

// parseBlock turns one cell pair into a paper record. It reports false when
// the title cell has no paper detail anchor, which marks the block as
// malformed or irrelevant.
func (e *Extractor) parseBlock(imgCell, titleCell string) (*paper.Paper, bool) {
	titleDoc, err := goquery.NewDocumentFromReader(strings.NewReader(titleCell))
	if err != nil {
		return nil, false
	}

	var p *paper.Paper
	titleDoc.Find("a[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		m := idSessRe.FindStringSubmatch(href)
		if m == nil {
			return true
		}
		p = &paper.Paper{
			ID:        m[1],
			SessionID: m[2],
			Title:     strings.TrimSpace(sel.Text()),
		}
		return false
	})
	if p == nil {
		return nil, false
	}

	p.Authors = extractAuthors(titleDoc)
	p.Image = e.extractImage(imgCell)

	return p, true
}

// extractAuthors collects presenter names in document order.
func extractAuthors(doc *goquery.Document) []string {
	var authors []string
	doc.Find("div.presenter-name").Each(func(i int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("a").First().Text())
		if name != "" {
			authors = append(authors, name)
		}
	})
	return authors
}

// extractImage pulls the thumbnail URL from the image cell, if any,
// rewriting root-relative paths to absolute.
func (e *Extractor) extractImage(imgCell string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(imgCell))
	if err != nil {
		return ""
	}

	src, ok := doc.Find("img.representative-img").First().Attr("src")
	if !ok {
		return ""
	}
	if strings.HasPrefix(src, "/") {
		return e.imageBase + src
	}
	return src
}
