// Package errors provides structured error handling for seance domains.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Session errors
	CodeSessionPermissionDenied Code = "SESSION_PERMISSION_DENIED"
	CodeSessionNotActive        Code = "SESSION_NOT_ACTIVE"
	CodeSessionRenderFailed     Code = "SESSION_RENDER_FAILED"
	CodeSessionSurfaceMissing   Code = "SESSION_SURFACE_MISSING"

	// Journal errors
	CodeJournalInvalidEvidenceLimit Code = "JOURNAL_INVALID_EVIDENCE_LIMIT"
	CodeJournalUnknownEvidence      Code = "JOURNAL_UNKNOWN_EVIDENCE"
)

// userMessages maps domain codes to player-facing text.
var userMessages = map[Code]string{
	CodeSessionPermissionDenied:     "You are not part of this investigation.",
	CodeSessionNotActive:            "This investigation has already ended.",
	CodeSessionRenderFailed:         "The investigation board could not be updated.",
	CodeSessionSurfaceMissing:       "The investigation board is unavailable.",
	CodeJournalInvalidEvidenceLimit: "The evidence limit must be between 1 and 3.",
	CodeJournalUnknownEvidence:      "That evidence kind is not in the journal.",
}

// UserMessage returns the player-facing message for a code.
func (c Code) UserMessage() string {
	if msg, ok := userMessages[c]; ok {
		return msg
	}
	return "Something went wrong."
}
