// Package journal tracks per-session evidence observations.
package journal

import (
	"fmt"

	"github.com/hollowedhq/seance/internal/ghost"
	apperrors "github.com/hollowedhq/seance/internal/platform/errors"
)

var (
	// ErrInvalidLimit indicates an evidence limit outside {1, 2, 3}.
	ErrInvalidLimit = apperrors.New(apperrors.CodeJournalInvalidEvidenceLimit, "evidence limit must be 1, 2 or 3")
	// ErrUnknownEvidence indicates an evidence value the journal does not track.
	ErrUnknownEvidence = apperrors.New(apperrors.CodeJournalUnknownEvidence, "unknown evidence kind")
)

// Mark is the observation state recorded for one evidence kind.
type Mark int

const (
	// MarkUnknown indicates evidence that has not been checked either way.
	MarkUnknown Mark = iota
	// MarkPresent indicates evidence confirmed found.
	MarkPresent
	// MarkAbsent indicates evidence confirmed ruled out.
	MarkAbsent
)

// Label returns the display label for a mark.
func (m Mark) Label() string {
	switch m {
	case MarkPresent:
		return "FOUND"
	case MarkAbsent:
		return "RULED OUT"
	default:
		return "UNKNOWN"
	}
}

// MaxEvidence is the number of evidence kinds a contract can surface at most.
const MaxEvidence = 3

// DefaultLimit is the evidence limit for a fresh journal.
const DefaultLimit = MaxEvidence

// Journal records the squad's observations for one investigation: a mark
// for every evidence kind plus the contract's evidence limit. A journal
// is owned by exactly one session controller and is not safe for
// concurrent mutation.
type Journal struct {
	marks map[ghost.Evidence]Mark
	limit int
}

// New creates a journal with every evidence kind unknown and the default
// evidence limit.
func New() *Journal {
	marks := make(map[ghost.Evidence]Mark, len(ghost.AllEvidence()))
	for _, e := range ghost.AllEvidence() {
		marks[e] = MarkUnknown
	}
	return &Journal{marks: marks, limit: DefaultLimit}
}

// Cycle rotates the mark for one evidence kind. The rotation order is
// ruled out -> unknown -> found -> ruled out; three cycles return the
// mark to its starting state.
func (j *Journal) Cycle(evidence ghost.Evidence) (Mark, error) {
	current, ok := j.marks[evidence]
	if !ok {
		return MarkUnknown, ErrUnknownEvidence
	}
	var next Mark
	switch current {
	case MarkAbsent:
		next = MarkUnknown
	case MarkUnknown:
		next = MarkPresent
	case MarkPresent:
		next = MarkAbsent
	}
	j.marks[evidence] = next
	return next, nil
}

// Set overwrites the mark for one evidence kind.
func (j *Journal) Set(evidence ghost.Evidence, mark Mark) error {
	if _, ok := j.marks[evidence]; !ok {
		return ErrUnknownEvidence
	}
	j.marks[evidence] = mark
	return nil
}

// SetLimit overwrites the evidence limit. Values outside {1, 2, 3} are
// rejected before any mutation.
func (j *Journal) SetLimit(limit int) error {
	if limit < 1 || limit > MaxEvidence {
		return apperrors.WithMetadata(
			apperrors.CodeJournalInvalidEvidenceLimit,
			fmt.Sprintf("evidence limit %d out of range", limit),
			map[string]string{"limit": fmt.Sprintf("%d", limit)},
		)
	}
	j.limit = limit
	return nil
}

// Limit returns the contract's evidence limit.
func (j *Journal) Limit() int {
	return j.limit
}

// Mark returns the recorded mark for one evidence kind.
func (j *Journal) Mark(evidence ghost.Evidence) Mark {
	return j.marks[evidence]
}

// Marks returns a copy of every recorded mark.
func (j *Journal) Marks() map[ghost.Evidence]Mark {
	marks := make(map[ghost.Evidence]Mark, len(j.marks))
	for e, m := range j.marks {
		marks[e] = m
	}
	return marks
}
