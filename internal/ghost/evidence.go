package ghost

import "strings"

// Evidence identifies one of the binary-observable traits a ghost may
// leave behind during an investigation.
type Evidence int

const (
	// EvidenceUnspecified represents an invalid evidence value.
	EvidenceUnspecified Evidence = iota
	// EvidenceEMF indicates EMF Level 5 readings.
	EvidenceEMF
	// EvidenceDots indicates a D.O.T.S Projector silhouette.
	EvidenceDots
	// EvidenceUltraviolet indicates ultraviolet fingerprints or footprints.
	EvidenceUltraviolet
	// EvidenceGhostOrb indicates a ghost orb on video.
	EvidenceGhostOrb
	// EvidenceGhostWriting indicates writing in a ghost writing book.
	EvidenceGhostWriting
	// EvidenceSpiritBox indicates a spirit box response.
	EvidenceSpiritBox
	// EvidenceFreezing indicates freezing temperatures.
	EvidenceFreezing
)

// AllEvidence returns every evidence value in display order.
func AllEvidence() []Evidence {
	return []Evidence{
		EvidenceEMF,
		EvidenceDots,
		EvidenceUltraviolet,
		EvidenceGhostOrb,
		EvidenceGhostWriting,
		EvidenceSpiritBox,
		EvidenceFreezing,
	}
}

// Label returns the display label for an evidence value.
func (e Evidence) Label() string {
	switch e {
	case EvidenceEMF:
		return "EMF Level 5"
	case EvidenceDots:
		return "D.O.T.S Projector"
	case EvidenceUltraviolet:
		return "Ultraviolet"
	case EvidenceGhostOrb:
		return "Ghost Orb"
	case EvidenceGhostWriting:
		return "Ghost Writing"
	case EvidenceSpiritBox:
		return "Spirit Box"
	case EvidenceFreezing:
		return "Freezing Temperatures"
	default:
		return "UNSPECIFIED"
	}
}

// Key returns the stable machine-readable key for an evidence value.
func (e Evidence) Key() string {
	switch e {
	case EvidenceEMF:
		return "emf"
	case EvidenceDots:
		return "dots"
	case EvidenceUltraviolet:
		return "ultraviolet"
	case EvidenceGhostOrb:
		return "orb"
	case EvidenceGhostWriting:
		return "writing"
	case EvidenceSpiritBox:
		return "spiritbox"
	case EvidenceFreezing:
		return "freezing"
	default:
		return ""
	}
}

// EvidenceFromKey converts a machine-readable key to an Evidence value.
func EvidenceFromKey(key string) Evidence {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "emf":
		return EvidenceEMF
	case "dots":
		return EvidenceDots
	case "ultraviolet":
		return EvidenceUltraviolet
	case "orb":
		return EvidenceGhostOrb
	case "writing":
		return EvidenceGhostWriting
	case "spiritbox":
		return EvidenceSpiritBox
	case "freezing":
		return EvidenceFreezing
	default:
		return EvidenceUnspecified
	}
}
