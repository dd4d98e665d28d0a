package errors

import "unicode"

// maxNodeIDLength bounds node identifiers to keep log lines and
// serialized snapshots readable.
const maxNodeIDLength = 256

// ValidateNodeID validates a node identifier read from external input.
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// Diagram semantics (uniqueness, edge references) are handled by the
// layout engine itself, which tolerates rather than rejects them.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node ID cannot be empty")
	}

	if len(id) > maxNodeIDLength {
		return New(ErrCodeInvalidInput, "node ID too long (max %d characters)", maxNodeIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node ID contains invalid control characters")
		}
	}

	return nil
}
