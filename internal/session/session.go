// Package session groups extracted papers into named program sessions.
package session

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pawpaw2022/siggraph2025/internal/paper"
)

// CatchAllName holds papers from unmapped sessions too small to stand alone.
const CatchAllName = "Other Papers"

// minSynthesized is the bucket size at which an unmapped session still gets
// its own synthesized heading instead of landing in the catch-all.
const minSynthesized = 3

// Session is a display bucket of papers in program order
type Session struct {
	Name   string
	Papers []*paper.Paper
}

// Group buckets papers by their source session identifier and resolves
// display names in three tiers: the static topic table, a synthesized
// "Session <n>" heading for unmapped sessions with at least three papers,
// and a trailing catch-all bucket for the rest. The catch-all is appended
// only when non-empty. Sessions are ordered by the numeric suffix of their
// identifier.
func Group(papers []*paper.Paper) []Session {
	byID := make(map[string][]*paper.Paper)
	ids := make([]string, 0)
	for _, p := range papers {
		if _, seen := byID[p.SessionID]; !seen {
			ids = append(ids, p.SessionID)
		}
		byID[p.SessionID] = append(byID[p.SessionID], p)
	}

	sort.SliceStable(ids, func(i, j int) bool {
		return numericID(ids[i]) < numericID(ids[j])
	})

	sessions := make([]Session, 0, len(ids))
	var misc []*paper.Paper

	for _, id := range ids {
		bucket := byID[id]
		if name, ok := Names[id]; ok {
			sessions = append(sessions, Session{Name: name, Papers: bucket})
		} else if len(bucket) >= minSynthesized {
			sessions = append(sessions, Session{
				Name:   fmt.Sprintf("Session %d", numericID(id)),
				Papers: bucket,
			})
		} else {
			misc = append(misc, bucket...)
		}
	}

	if len(misc) > 0 {
		sessions = append(sessions, Session{Name: CatchAllName, Papers: misc})
	}

	return sessions
}

// TotalPapers counts papers across all sessions.
func TotalPapers(sessions []Session) int {
	total := 0
	for _, s := range sessions {
		total += len(s.Papers)
	}
	return total
}

// numericID extracts the numeric suffix of a session identifier like
// "sess104". Unparseable identifiers sort first.
func numericID(sessionID string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(sessionID, "sess"))
	if err != nil {
		return 0
	}
	return n
}
