package discord

import (
	"fmt"
	"strings"

	"github.com/hollowedhq/seance/internal/ghost"
)

// customIDPrefix namespaces every component the bot creates.
const customIDPrefix = "seance"

// evidenceCustomID builds the component ID for one evidence toggle button.
func evidenceCustomID(sessionID string, evidence ghost.Evidence) string {
	return fmt.Sprintf("%s:%s:evidence:%s", customIDPrefix, sessionID, evidence.Key())
}

// limitCustomID builds the component ID for the evidence limit select.
func limitCustomID(sessionID string) string {
	return fmt.Sprintf("%s:%s:limit", customIDPrefix, sessionID)
}

// componentRef identifies the session and control a component click
// belongs to.
type componentRef struct {
	sessionID string
	control   string
	evidence  ghost.Evidence
}

// parseCustomID decodes a component custom ID. It reports false for IDs
// the bot did not create.
func parseCustomID(customID string) (componentRef, bool) {
	parts := strings.Split(customID, ":")
	if len(parts) < 3 || parts[0] != customIDPrefix {
		return componentRef{}, false
	}
	ref := componentRef{sessionID: parts[1], control: parts[2]}
	switch ref.control {
	case "evidence":
		if len(parts) != 4 {
			return componentRef{}, false
		}
		ref.evidence = ghost.EvidenceFromKey(parts[3])
		if ref.evidence == ghost.EvidenceUnspecified {
			return componentRef{}, false
		}
	case "limit":
		if len(parts) != 3 {
			return componentRef{}, false
		}
	default:
		return componentRef{}, false
	}
	return ref, true
}
