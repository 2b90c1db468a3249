package schema

// MaxUploadBytes is the client-side upload ceiling, checked before any
// request is issued. Matches the backend's own 20MB limit.
const MaxUploadBytes = 20 * 1024 * 1024

// QueryFallbackText is appended as an assistant message when the chat
// backend fails, preserving conversational continuity.
const QueryFallbackText = "Sorry, I encountered an error. Please try again."

// DefaultHistoryMax is the default submitted-draft history limit.
const DefaultHistoryMax = 200

// ServiceConfig defines defaults and limits for the session service.
// The timeline itself is never capped: it is append-only for the lifetime
// of the process.
type ServiceConfig struct {
	SessionID SessionID
	// HistoryMax caps the submitted-draft history ring.
	HistoryMax int
}

// NormalizeServiceConfig applies defaults and validates the config.
func NormalizeServiceConfig(cfg ServiceConfig) (ServiceConfig, error) {
	if err := ValidateSessionID(cfg.SessionID); err != nil {
		return ServiceConfig{}, err
	}
	if cfg.HistoryMax <= 0 {
		cfg.HistoryMax = DefaultHistoryMax
	}
	return cfg, nil
}
