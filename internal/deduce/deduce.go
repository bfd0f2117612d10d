// Package deduce narrows the ghost catalog against journal observations.
package deduce

import (
	"github.com/hollowedhq/seance/internal/ghost"
	"github.com/hollowedhq/seance/internal/journal"
)

// PossibleGhosts returns the names of every catalog ghost still
// consistent with the journal, in catalog order. The function is pure:
// identical inputs always produce identical output and neither argument
// is mutated.
func PossibleGhosts(j *journal.Journal, catalog []ghost.Ghost) []string {
	present := make(map[ghost.Evidence]struct{})
	absent := make(map[ghost.Evidence]struct{})
	for evidence, mark := range j.Marks() {
		switch mark {
		case journal.MarkPresent:
			present[evidence] = struct{}{}
		case journal.MarkAbsent:
			absent[evidence] = struct{}{}
		}
	}

	names := make([]string, 0, len(catalog))
	for _, g := range catalog {
		if possible(g, present, absent, j.Limit()) {
			names = append(names, g.Name)
		}
	}
	return names
}

// possible applies the per-ghost consistency checks.
func possible(g ghost.Ghost, present, absent map[ghost.Evidence]struct{}, limit int) bool {
	// Fake evidence is excluded from real counting even when observed.
	realCount := 0
	for evidence := range present {
		if evidence == g.Fake && g.Fake != ghost.EvidenceUnspecified {
			continue
		}
		// Observed evidence the ghost cannot produce rules it out.
		if !g.Has(evidence) {
			return false
		}
		realCount++
	}

	if realCount > limit {
		return false
	}

	// The limit structurally disables 3-limit evidence kinds; more ruled-out
	// evidence than that cannot be explained by the limit alone.
	ruledOut := 0
	for _, evidence := range g.Evidence {
		if _, gone := absent[evidence]; gone {
			ruledOut++
		}
	}
	if ruledOut > journal.MaxEvidence-limit {
		return false
	}

	if g.Guaranteed != ghost.EvidenceUnspecified {
		if _, gone := absent[g.Guaranteed]; gone {
			return false
		}
		if _, found := present[g.Guaranteed]; !found && limit-realCount < 1 {
			// No capacity left to ever observe the guaranteed evidence.
			return false
		}
	}

	if g.Fake != ghost.EvidenceUnspecified {
		if _, gone := absent[g.Fake]; gone {
			return false
		}
	}

	return true
}
