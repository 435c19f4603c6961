package session

import (
	"fmt"
	"testing"

	"github.com/pawpaw2022/siggraph2025/internal/paper"
)

func mkPapers(sessionID string, n int) []*paper.Paper {
	papers := make([]*paper.Paper, 0, n)
	for i := 0; i < n; i++ {
		papers = append(papers, &paper.Paper{
			ID:        fmt.Sprintf("%s-%d", sessionID, i),
			SessionID: sessionID,
			Title:     fmt.Sprintf("Paper %s %d", sessionID, i),
		})
	}
	return papers
}

func TestGroupUsesStaticNames(t *testing.T) {
	papers := mkPapers("sess104", 2)
	sessions := Group(papers)

	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].Name != "3D Reconstruction & Intelligent Geometry" {
		t.Errorf("expected mapped topic name, got %q", sessions[0].Name)
	}
	if len(sessions[0].Papers) != 2 {
		t.Errorf("expected 2 papers, got %d", len(sessions[0].Papers))
	}
}

func TestGroupSynthesizesNameForLargeUnmappedSession(t *testing.T) {
	sessions := Group(mkPapers("sess200", 3))

	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].Name != "Session 200" {
		t.Errorf("expected synthesized name, got %q", sessions[0].Name)
	}
}

func TestGroupDefersSmallUnmappedSessionsToCatchAll(t *testing.T) {
	papers := append(mkPapers("sess200", 1), mkPapers("sess201", 2)...)
	sessions := Group(papers)

	if len(sessions) != 1 {
		t.Fatalf("expected only the catch-all session, got %d", len(sessions))
	}
	if sessions[0].Name != CatchAllName {
		t.Errorf("expected catch-all name, got %q", sessions[0].Name)
	}
	if len(sessions[0].Papers) != 3 {
		t.Errorf("expected 3 deferred papers, got %d", len(sessions[0].Papers))
	}
}

func TestGroupNoCatchAllWhenEmpty(t *testing.T) {
	sessions := Group(mkPapers("sess104", 1))

	for _, s := range sessions {
		if s.Name == CatchAllName {
			t.Error("catch-all session should not appear when empty")
		}
	}
}

func TestGroupOrdersSessionsNumerically(t *testing.T) {
	var papers []*paper.Paper
	papers = append(papers, mkPapers("sess120", 1)...)
	papers = append(papers, mkPapers("sess105", 1)...)
	papers = append(papers, mkPapers("sess104", 1)...)

	sessions := Group(papers)
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}

	want := []string{
		Names["sess104"],
		Names["sess105"],
		Names["sess120"],
	}
	for i, name := range want {
		if sessions[i].Name != name {
			t.Errorf("session %d: expected %q, got %q", i, name, sessions[i].Name)
		}
	}
}

func TestGroupCatchAllComesLast(t *testing.T) {
	var papers []*paper.Paper
	papers = append(papers, mkPapers("sess300", 1)...) // unmapped, small
	papers = append(papers, mkPapers("sess104", 1)...)

	sessions := Group(papers)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[len(sessions)-1].Name != CatchAllName {
		t.Errorf("expected catch-all last, got %q", sessions[len(sessions)-1].Name)
	}
}

func TestTotalPapers(t *testing.T) {
	var papers []*paper.Paper
	papers = append(papers, mkPapers("sess104", 2)...)
	papers = append(papers, mkPapers("sess105", 3)...)

	if got := TotalPapers(Group(papers)); got != 5 {
		t.Errorf("expected 5 total papers, got %d", got)
	}
}
