package schema

import "strings"

// ValidateSessionID ensures a session id matches [A-Za-z0-9._-] with no
// surrounding whitespace.
func ValidateSessionID(id SessionID) error {
	raw := string(id)
	if raw == "" {
		return ErrInvalidSession
	}
	if strings.TrimSpace(raw) != raw {
		return ErrInvalidSession
	}
	for _, r := range raw {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			continue
		}
		if r == '.' || r == '_' || r == '-' {
			continue
		}
		return ErrInvalidSession
	}
	return nil
}

// NormalizeSourceType folds a server-supplied source type onto the known
// constants; unrecognized values pass through unchanged.
func NormalizeSourceType(value string) SourceType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "table":
		return SourceTable
	case "image":
		return SourceImage
	case "text", "":
		return SourceText
	default:
		return SourceType(value)
	}
}
