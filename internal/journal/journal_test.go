package journal

import (
	"errors"
	"testing"

	"github.com/hollowedhq/seance/internal/ghost"
)

func TestNewJournalDefaults(t *testing.T) {
	j := New()
	if j.Limit() != 3 {
		t.Fatalf("expected default limit 3, got %d", j.Limit())
	}
	for _, e := range ghost.AllEvidence() {
		if j.Mark(e) != MarkUnknown {
			t.Fatalf("expected %s to start unknown, got %v", e.Label(), j.Mark(e))
		}
	}
}

func TestCycleRotation(t *testing.T) {
	j := New()

	mark, err := j.Cycle(ghost.EvidenceEMF)
	if err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if mark != MarkPresent {
		t.Fatalf("expected unknown to cycle to found, got %v", mark)
	}

	mark, err = j.Cycle(ghost.EvidenceEMF)
	if err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if mark != MarkAbsent {
		t.Fatalf("expected found to cycle to ruled out, got %v", mark)
	}

	mark, err = j.Cycle(ghost.EvidenceEMF)
	if err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if mark != MarkUnknown {
		t.Fatalf("expected ruled out to cycle to unknown, got %v", mark)
	}
}

func TestCycleHasPeriodThree(t *testing.T) {
	for _, e := range ghost.AllEvidence() {
		j := New()
		start := j.Mark(e)
		for i := 0; i < 3; i++ {
			if _, err := j.Cycle(e); err != nil {
				t.Fatalf("cycle %s: %v", e.Label(), err)
			}
		}
		if j.Mark(e) != start {
			t.Fatalf("expected %s to return to %v after three cycles, got %v", e.Label(), start, j.Mark(e))
		}
	}
}

func TestCycleRejectsUnknownEvidence(t *testing.T) {
	j := New()
	if _, err := j.Cycle(ghost.EvidenceUnspecified); !errors.Is(err, ErrUnknownEvidence) {
		t.Fatalf("expected unknown evidence error, got %v", err)
	}
}

func TestSetOverwritesMark(t *testing.T) {
	j := New()
	if err := j.Set(ghost.EvidenceSpiritBox, MarkAbsent); err != nil {
		t.Fatalf("set: %v", err)
	}
	if j.Mark(ghost.EvidenceSpiritBox) != MarkAbsent {
		t.Fatalf("expected spirit box ruled out, got %v", j.Mark(ghost.EvidenceSpiritBox))
	}
	if err := j.Set(ghost.EvidenceUnspecified, MarkPresent); !errors.Is(err, ErrUnknownEvidence) {
		t.Fatalf("expected unknown evidence error, got %v", err)
	}
}

func TestSetLimitBounds(t *testing.T) {
	j := New()
	for _, limit := range []int{1, 2, 3} {
		if err := j.SetLimit(limit); err != nil {
			t.Fatalf("set limit %d: %v", limit, err)
		}
		if j.Limit() != limit {
			t.Fatalf("expected limit %d, got %d", limit, j.Limit())
		}
	}
	for _, limit := range []int{0, 4, -1} {
		if err := j.SetLimit(limit); !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("expected invalid limit error for %d, got %v", limit, err)
		}
	}
	if j.Limit() != 3 {
		t.Fatalf("expected rejected limit to leave state unchanged, got %d", j.Limit())
	}
}

func TestMarksReturnsCopy(t *testing.T) {
	j := New()
	marks := j.Marks()
	marks[ghost.EvidenceGhostOrb] = MarkPresent
	if j.Mark(ghost.EvidenceGhostOrb) != MarkUnknown {
		t.Fatal("expected Marks to return a copy, not the journal's own map")
	}
}
