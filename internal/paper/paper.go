package paper

// Paper represents one technical paper extracted from the conference schedule
type Paper struct {
	ID        string   `json:"id"`
	SessionID string   `json:"session_id"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Image     string   `json:"image,omitempty"`
}

// MetaID returns the identifier used to key this paper in the url.json sidecar,
// e.g. "papers_0042" for paper ID "0042"
func (p *Paper) MetaID() string {
	return "papers_" + p.ID
}
